package outwriter

import (
	"fmt"
	"io"

	"github.com/pirakansa/contract/schema"
)

// WriteValidationReports renders schema-validation reports, dispatching on
// the output format.
func WriteValidationReports(w io.Writer, reports []schema.ValidationReport, format schema.OutputFormat) error {
	if format == schema.JSONFormat {
		valid := true
		for _, report := range reports {
			valid = valid && report.Valid
		}
		return writeJSON(w, map[string]any{
			"valid": valid,
			"files": reports,
		})
	}

	errorCount := 0
	for _, report := range reports {
		if report.Valid {
			fmt.Fprintf(w, "%s %s: Valid\n", passIcon(), report.Path)
			continue
		}
		fmt.Fprintf(w, "%s %s: Invalid\n", severityIcon(schema.SeverityError), report.Path)
		for _, issue := range report.Errors {
			fmt.Fprintf(w, "  - %s\n", issue.Message)
		}
		errorCount += len(report.Errors)
	}
	fmt.Fprintf(w, "Validated %d files, %d errors\n", len(reports), errorCount)
	return nil
}
