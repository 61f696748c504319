package core

import (
	"testing"

	"github.com/pirakansa/contract/schema"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeBranchProtection(t *testing.T) {
	reports := []schema.BranchProtectionReport{
		{
			Target: "main",
			Details: []schema.BranchProtectionDetail{
				{Path: "enforce_admins", Passed: true},
				{Path: "required_status_checks.enabled", Passed: false, Severity: schema.SeverityError},
				{Path: "allow_force_pushes", Passed: false, Severity: schema.SeverityWarning},
			},
		},
		{
			Target: "develop",
			Details: []schema.BranchProtectionDetail{
				{Path: "branch_protection", Passed: false, Severity: schema.SeverityError},
			},
		},
	}

	summary := SummarizeBranchProtection(reports)

	assert.Equal(t, 2, summary.Error)
	assert.Equal(t, 1, summary.Warning)
	assert.Equal(t, 0, summary.Info)
}

func TestDiffBranchProtection_ValueMismatch(t *testing.T) {
	reports := []schema.BranchProtectionReport{
		{
			Target: "main",
			Details: []schema.BranchProtectionDetail{
				{Path: "enforce_admins", Passed: true},
				{
					Path:     "required_status_checks.strict",
					Expected: schema.BoolValue(true),
					Actual:   schema.BoolValue(false),
					Passed:   false,
					Severity: schema.SeverityWarning,
				},
			},
		},
	}

	diffs := DiffBranchProtection(reports)

	if assert.Len(t, diffs, 1) {
		diff := diffs[0]
		assert.Equal(t, schema.RuleBranchProtection, diff.Rule)
		assert.Equal(t, schema.DiffValueMismatch, diff.DiffType)
		assert.Equal(t, "main", diff.Target)
		assert.Equal(t, "required_status_checks.strict", diff.Path)
		assert.Equal(t, "true", diff.Expected.String())
		assert.Equal(t, "false", diff.Actual.String())
	}
}

func TestDiffBranchProtection_ArrayDiff(t *testing.T) {
	reports := []schema.BranchProtectionReport{
		{
			Target: "main",
			Details: []schema.BranchProtectionDetail{
				{
					Path:     "required_status_checks.checks",
					Expected: schema.StringListValue([]string{"ci", "lint"}),
					Actual:   schema.StringListValue([]string{"ci", "nightly"}),
					Missing:  []string{"lint"},
					Extra:    []string{"nightly"},
					Passed:   false,
					Severity: schema.SeverityError,
				},
			},
		},
	}

	diffs := DiffBranchProtection(reports)

	if assert.Len(t, diffs, 1) {
		assert.Equal(t, schema.DiffArrayDiff, diffs[0].DiffType)
		assert.Equal(t, []string{"lint"}, diffs[0].Missing)
		assert.Equal(t, []string{"nightly"}, diffs[0].Extra)
	}
}

func TestDiffBranchProtection_EmptySetsStillArrayDiff(t *testing.T) {
	// A checks verdict always carries non-nil sets, even when one side is
	// empty; the aggregator must still classify it as a set comparison.
	reports := []schema.BranchProtectionReport{
		{
			Target: "main",
			Details: []schema.BranchProtectionDetail{
				{
					Path:     "required_status_checks.checks",
					Expected: schema.StringListValue([]string{"ci"}),
					Actual:   schema.StringListValue([]string{"ci", "nightly"}),
					Missing:  []string{},
					Extra:    []string{"nightly"},
					Passed:   false,
					Severity: schema.SeverityWarning,
				},
			},
		},
	}

	diffs := DiffBranchProtection(reports)

	if assert.Len(t, diffs, 1) {
		assert.Equal(t, schema.DiffArrayDiff, diffs[0].DiffType)
	}
}

func TestDiffRequiredFiles(t *testing.T) {
	checks := []schema.RequiredFileCheck{
		{Path: "README.md", Exists: true, Severity: schema.SeverityError},
		{Path: "LICENSE", Exists: false, Severity: schema.SeverityError},
		{Path: "CHANGELOG.md", Exists: false, Severity: schema.SeverityWarning},
	}

	report := DiffRequiredFiles(checks)

	if assert.Len(t, report.Diffs, 2) {
		assert.Equal(t, schema.RuleRequiredFiles, report.Diffs[0].Rule)
		assert.Equal(t, schema.DiffMissingFile, report.Diffs[0].DiffType)
		assert.Equal(t, "LICENSE", report.Diffs[0].Path)
		assert.Nil(t, report.Diffs[0].Expected)
		assert.Nil(t, report.Diffs[0].Actual)
	}
	assert.Equal(t, 1, report.Summary.Error)
	assert.Equal(t, 1, report.Summary.Warning)
}
