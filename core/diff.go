package core

import "github.com/pirakansa/contract/schema"

// SummarizeBranchProtection counts failing verdicts by severity across all
// branch reports.
func SummarizeBranchProtection(reports []schema.BranchProtectionReport) schema.Summary {
	var summary schema.Summary
	for _, report := range reports {
		for _, detail := range report.Details {
			if detail.Passed {
				continue
			}
			summary.Count(detail.Severity)
		}
	}
	return summary
}

// DiffBranchProtection maps every failing verdict to a diff entry. Set-valued
// verdicts become array_diff entries, everything else value_mismatch.
func DiffBranchProtection(reports []schema.BranchProtectionReport) []schema.DiffEntry {
	var diffs []schema.DiffEntry
	for _, report := range reports {
		for _, detail := range report.Details {
			if detail.Passed {
				continue
			}
			diffType := schema.DiffValueMismatch
			if detail.Missing != nil || detail.Extra != nil {
				diffType = schema.DiffArrayDiff
			}
			expected := detail.Expected
			actual := detail.Actual
			diffs = append(diffs, schema.DiffEntry{
				Rule:     schema.RuleBranchProtection,
				Path:     detail.Path,
				DiffType: diffType,
				Target:   report.Target,
				Expected: &expected,
				Actual:   &actual,
				Missing:  detail.Missing,
				Extra:    detail.Extra,
			})
		}
	}
	return diffs
}

// DiffRequiredFiles maps every missing required file to a missing_file entry.
// Existence is boolean by nature, so only path and severity are populated.
func DiffRequiredFiles(checks []schema.RequiredFileCheck) *schema.DiffReport {
	report := &schema.DiffReport{Summary: &schema.Summary{}}
	for _, check := range checks {
		if check.Exists {
			continue
		}
		report.Summary.Count(check.Severity)
		report.Diffs = append(report.Diffs, schema.DiffEntry{
			Rule:     schema.RuleRequiredFiles,
			Path:     check.Path,
			DiffType: schema.DiffMissingFile,
			Severity: check.Severity,
		})
	}
	return report
}
