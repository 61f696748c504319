package outwriter

import (
	"fmt"
	"io"

	"github.com/pirakansa/contract/schema"
)

// WriteDiffReport renders a diff report, dispatching on the output format.
func WriteDiffReport(w io.Writer, report *schema.DiffReport, format schema.OutputFormat) error {
	switch format {
	case schema.JSONFormat:
		return writeJSON(w, map[string]any{"diffs": diffsOrEmpty(report)})
	case schema.YAMLFormat:
		return writeYAML(w, diffsOrEmpty(report))
	default:
		writeDiffHuman(w, report)
		return nil
	}
}

func diffsOrEmpty(report *schema.DiffReport) []schema.DiffEntry {
	if report == nil || report.Diffs == nil {
		return []schema.DiffEntry{}
	}
	return report.Diffs
}

// writeDiffHuman prints branch-protection diffs grouped by target branch,
// then the missing required files.
func writeDiffHuman(w io.Writer, report *schema.DiffReport) {
	if report == nil || len(report.Diffs) == 0 {
		fmt.Fprintln(w, "No differences found.")
		return
	}

	// Group while preserving first-seen branch order.
	var targets []string
	branchGroups := make(map[string][]schema.DiffEntry)
	var fileDiffs []schema.DiffEntry
	for _, diff := range report.Diffs {
		switch diff.Rule {
		case schema.RuleBranchProtection:
			target := diff.Target
			if target == "" {
				target = "unknown"
			}
			if _, seen := branchGroups[target]; !seen {
				targets = append(targets, target)
			}
			branchGroups[target] = append(branchGroups[target], diff)
		case schema.RuleRequiredFiles:
			fileDiffs = append(fileDiffs, diff)
		}
	}

	for _, target := range targets {
		fmt.Fprintf(w, "Branch Protection [%s]\n", target)
		for _, diff := range branchGroups[target] {
			if diff.DiffType == schema.DiffArrayDiff {
				fmt.Fprintf(w, "  %s:\n", diff.Path)
				for _, value := range diff.Missing {
					fmt.Fprintf(w, "    + %s (missing)\n", value)
				}
				for _, value := range diff.Extra {
					fmt.Fprintf(w, "    - %s (extra)\n", value)
				}
			} else {
				fmt.Fprintf(w, "  %s: expected %s, got %s\n",
					diff.Path, formatDiffValue(diff.Expected), formatDiffValue(diff.Actual))
			}
		}
		fmt.Fprintln(w)
	}

	if len(fileDiffs) > 0 {
		fmt.Fprintln(w, "Required Files:")
		for _, diff := range fileDiffs {
			severity := diff.Severity
			if severity == "" {
				severity = schema.SeverityError
			}
			fmt.Fprintf(w, "  + %s (missing, severity: %s)\n", diff.Path, severity)
		}
	}
}

func formatDiffValue(value *schema.Value) string {
	if value == nil {
		return "-"
	}
	return value.String()
}
