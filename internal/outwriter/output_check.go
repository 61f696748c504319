package outwriter

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/pirakansa/contract/core"
	"github.com/pirakansa/contract/schema"
)

// WriteCheckResults renders a check run, dispatching on the output format.
func WriteCheckResults(w io.Writer, result *core.CheckResult, format schema.OutputFormat, valid bool) error {
	switch format {
	case schema.JSONFormat:
		return writeCheckJSON(w, result, valid)
	default:
		return writeCheckHuman(w, result)
	}
}

// writeCheckHuman prints per-branch verdicts with icons, the required-files
// table and the severity summary.
func writeCheckHuman(w io.Writer, result *core.CheckResult) error {
	for _, report := range result.Branch {
		fmt.Fprintf(w, "Branch Protection [%s]\n", report.Target)
		if len(report.Details) == 0 {
			fmt.Fprintf(w, "  %s No checks configured\n\n", passIcon())
			continue
		}
		for _, detail := range report.Details {
			if detail.Passed {
				fmt.Fprintf(w, "  %s %s: %s\n", passIcon(), detail.Path, detail.Expected)
			} else {
				fmt.Fprintf(w, "  %s %s: %s\n", severityIcon(detail.Severity), detail.Path, detail.Message)
			}
		}
		fmt.Fprintln(w)
	}

	if result.Files != nil {
		if err := writeRequiredFilesTable(w, result.Files.Checks); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, formatSummary(result.Summary))
	return nil
}

// writeRequiredFilesTable renders required-file outcomes as a table.
func writeRequiredFilesTable(w io.Writer, checks []schema.RequiredFileCheck) error {
	fmt.Fprintln(w, "Required Files")
	table := tablewriter.NewWriter(w)
	table.Header([]string{"", "Path", "Status", "Severity"})

	pathWidth := maxPathWidth()
	var data [][]string
	for _, check := range checks {
		icon := passIcon()
		status := "Found"
		if !check.Exists {
			icon = severityIcon(check.Severity)
			status = "Not found"
		}
		data = append(data, []string{
			icon,
			truncatePath(check.Path, pathWidth),
			status,
			string(check.Severity),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCheckJSON emits the machine-readable check report: one result object
// per rule kind, plus the combined summary.
func writeCheckJSON(w io.Writer, result *core.CheckResult, valid bool) error {
	type branchResult struct {
		Rule    schema.RuleName                `json:"rule"`
		Target  string                         `json:"target"`
		Checks  []schema.BranchProtectionCheck `json:"checks"`
	}
	type filesResult struct {
		Rule   schema.RuleName            `json:"rule"`
		Checks []schema.RequiredFileCheck `json:"checks"`
	}

	var results []any
	for _, report := range result.Branch {
		results = append(results, branchResult{
			Rule:   schema.RuleBranchProtection,
			Target: report.Target,
			Checks: report.Checks,
		})
	}
	if result.Files != nil {
		results = append(results, filesResult{
			Rule:   schema.RuleRequiredFiles,
			Checks: result.Files.Checks,
		})
	}

	return writeJSON(w, map[string]any{
		"valid":   valid,
		"results": results,
		"summary": result.Summary,
	})
}
