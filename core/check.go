package core

import (
	"context"
	"slices"

	"github.com/pirakansa/contract/schema"
)

// RunOptions carries the fully resolved inputs for one evaluation run. The
// provider is only consulted when the branch_protection rule is selected and
// the contract configures it.
type RunOptions struct {
	Contract *schema.Contract
	Root     string
	Rules    []schema.RuleName
	Repo     string
	Provider StateProvider
	Lister   FileLister
}

// CheckResult is the combined outcome of a check run.
type CheckResult struct {
	Branch  []schema.BranchProtectionReport
	Files   *schema.RequiredFilesReport
	Summary schema.Summary
}

// RunCheck evaluates the selected rules, branch by branch in sequence, and
// accumulates one summary across both rule kinds.
func (o *RunOptions) RunCheck(ctx context.Context) (*CheckResult, error) {
	result := &CheckResult{}

	if o.hasRule(schema.RuleBranchProtection) && o.Contract.BranchProtection != nil {
		reports, err := CheckBranchProtection(ctx, o.Provider, o.Repo, o.Contract.BranchProtection)
		if err != nil {
			return nil, err
		}
		result.Branch = reports
		result.Summary.Add(SummarizeBranchProtection(reports))
	}

	if o.hasRule(schema.RuleRequiredFiles) {
		files, err := o.Lister.ListFiles(o.Root)
		if err != nil {
			return nil, err
		}
		report, err := CheckRequiredFiles(o.Root, files, o.Contract.RequiredFiles)
		if err != nil {
			return nil, err
		}
		result.Files = report
		result.Summary.Add(report.Summary)
	}

	return result, nil
}

// RunDiff evaluates the selected rules and reduces the failing verdicts into
// a single diff report. The summary covers required files only, matching the
// check summary shape of that rule.
func (o *RunOptions) RunDiff(ctx context.Context) (*schema.DiffReport, error) {
	report := &schema.DiffReport{}

	if o.hasRule(schema.RuleRequiredFiles) {
		files, err := o.Lister.ListFiles(o.Root)
		if err != nil {
			return nil, err
		}
		filesReport, err := CheckRequiredFiles(o.Root, files, o.Contract.RequiredFiles)
		if err != nil {
			return nil, err
		}
		fileDiffs := DiffRequiredFiles(filesReport.Checks)
		report.Diffs = append(report.Diffs, fileDiffs.Diffs...)
		summary := filesReport.Summary
		report.Summary = &summary
	}

	if o.hasRule(schema.RuleBranchProtection) && o.Contract.BranchProtection != nil {
		reports, err := CheckBranchProtection(ctx, o.Provider, o.Repo, o.Contract.BranchProtection)
		if err != nil {
			return nil, err
		}
		report.Diffs = append(report.Diffs, DiffBranchProtection(reports)...)
	}

	return report, nil
}

func (o *RunOptions) hasRule(rule schema.RuleName) bool {
	return slices.Contains(o.Rules, rule)
}
