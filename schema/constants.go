package schema

// Custom string types for type safety.
type (
	// Severity classifies how a failed check affects the run outcome.
	Severity string

	// RuleName identifies one of the contract rule kinds.
	RuleName string

	// DiffType describes the shape of a single diff entry.
	DiffType string

	// OutputFormat represents the rendering format of a command.
	OutputFormat string
)

// All severities supported.
const (
	SeverityError   Severity = "error" // default
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// All rule kinds supported.
const (
	RuleRequiredFiles    RuleName = "required_files"
	RuleBranchProtection RuleName = "branch_protection"
)

// All diff entry shapes produced by the aggregator.
const (
	DiffValueMismatch DiffType = "value_mismatch"
	DiffArrayDiff     DiffType = "array_diff"
	DiffMissingFile   DiffType = "missing_file"
)

// All output formats supported.
const (
	HumanFormat OutputFormat = "human" // default
	JSONFormat  OutputFormat = "json"
	YAMLFormat  OutputFormat = "yaml"
)

// DefaultRules is the rule selection used when none is configured.
var DefaultRules = []RuleName{RuleRequiredFiles, RuleBranchProtection}

// ValidSeverities lists all valid severities.
var ValidSeverities = map[Severity]struct{}{
	SeverityError:   {},
	SeverityWarning: {},
	SeverityInfo:    {},
}

// ValidRuleNames lists all valid rule kinds.
var ValidRuleNames = map[RuleName]struct{}{
	RuleRequiredFiles:    {},
	RuleBranchProtection: {},
}
