// Package outwriter renders validation, check and diff results in the
// configured output format.
package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pirakansa/contract/schema"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Color variables for console output.
var (
	passColor  = color.New(color.FgGreen)
	errorColor = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow)
	infoColor  = color.New(color.FgCyan)
)

// passIcon is the marker for a passing check.
func passIcon() string {
	return passColor.Sprint("✓")
}

// severityIcon returns the colored marker for a failing check.
func severityIcon(severity schema.Severity) string {
	switch severity {
	case schema.SeverityWarning:
		return warnColor.Sprint("⚠")
	case schema.SeverityInfo:
		return infoColor.Sprint("ℹ")
	default:
		return errorColor.Sprint("✗")
	}
}

// writeJSON writes any value as indented JSON.
func writeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// writeYAML writes any value as a YAML document.
func writeYAML(w io.Writer, value any) error {
	encoder := yaml.NewEncoder(w)
	defer func() { _ = encoder.Close() }()
	return encoder.Encode(value)
}

// maxPathWidth calculates how much room the path column of the required-files
// table gets, based on the terminal width and the fixed columns.
func maxPathWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth <= 0 {
		// Conservative default for narrow terminals and CI.
		termWidth = 80
	}

	// Status + Severity columns plus borders and padding.
	available := termWidth - 35
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}

// truncatePath shortens a path from the left so the tail stays visible.
func truncatePath(path string, width int) string {
	if len(path) <= width {
		return path
	}
	if width <= 1 {
		return "…"
	}
	return "…" + path[len(path)-width+1:]
}

// formatSummary renders the severity counters in a single line.
func formatSummary(summary schema.Summary) string {
	return fmt.Sprintf("Summary: %d error, %d warning, %d info",
		summary.Error, summary.Warning, summary.Info)
}
