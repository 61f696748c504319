package schema

// RequiredFileCheck is the outcome of evaluating one required-file rule.
type RequiredFileCheck struct {
	Path        string   `json:"path" yaml:"path"`
	Exists      bool     `json:"exists" yaml:"exists"`
	Severity    Severity `json:"severity" yaml:"severity"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// RequiredFilesReport collects all required-file outcomes with their summary.
type RequiredFilesReport struct {
	Checks  []RequiredFileCheck `json:"checks" yaml:"checks"`
	Summary Summary             `json:"summary" yaml:"summary"`
}

// Summary counts failed checks by severity across all rule groups and targets.
type Summary struct {
	Error   int `json:"error" yaml:"error"`
	Warning int `json:"warning" yaml:"warning"`
	Info    int `json:"info" yaml:"info"`
}

// Count records one failed check of the given severity.
func (s *Summary) Count(severity Severity) {
	switch severity {
	case SeverityWarning:
		s.Warning++
	case SeverityInfo:
		s.Info++
	default:
		s.Error++
	}
}

// Add accumulates another summary into this one.
func (s *Summary) Add(other Summary) {
	s.Error += other.Error
	s.Warning += other.Warning
	s.Info += other.Info
}

// BranchProtectionDetail is the verdict for one evaluated field or field
// group. Missing and Extra are only set for set-valued comparisons. Message is
// empty when the verdict passed.
type BranchProtectionDetail struct {
	Path     string
	Expected Value
	Actual   Value
	Missing  []string
	Extra    []string
	Passed   bool
	Severity Severity
	Message  string
}

// BranchProtectionCheck is the serialized form of a failing verdict.
type BranchProtectionCheck struct {
	Path     string   `json:"path" yaml:"path"`
	Expected Value    `json:"expected" yaml:"expected"`
	Actual   Value    `json:"actual" yaml:"actual"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
}

// BranchProtectionReport holds the verdicts for one evaluated branch.
// Checks carries only the failing verdicts for serialization; Details retains
// every verdict for summaries and diffs.
type BranchProtectionReport struct {
	Target  string                   `json:"target" yaml:"target"`
	Checks  []BranchProtectionCheck  `json:"checks" yaml:"checks"`
	Details []BranchProtectionDetail `json:"-" yaml:"-"`
}

// DiffEntry is one structured difference between the contract and the
// repository state. Target is only set for branch-protection entries.
type DiffEntry struct {
	Rule     RuleName `json:"rule" yaml:"rule"`
	Path     string   `json:"path" yaml:"path"`
	DiffType DiffType `json:"type" yaml:"type"`
	Severity Severity `json:"severity,omitempty" yaml:"severity,omitempty"`
	Target   string   `json:"target,omitempty" yaml:"target,omitempty"`
	Expected *Value   `json:"expected,omitempty" yaml:"expected,omitempty"`
	Actual   *Value   `json:"actual,omitempty" yaml:"actual,omitempty"`
	Missing  []string `json:"missing,omitempty" yaml:"missing,omitempty"`
	Extra    []string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// DiffReport aggregates diff entries from all rule kinds.
type DiffReport struct {
	Diffs   []DiffEntry `json:"diffs" yaml:"diffs"`
	Summary *Summary    `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// ValidationIssue is a single schema-validation failure.
type ValidationIssue struct {
	Message      string `json:"message" yaml:"message"`
	InstancePath string `json:"instance_path,omitempty" yaml:"instance_path,omitempty"`
}

// ValidationReport is the schema-validation outcome for one document.
type ValidationReport struct {
	Path   string            `json:"path" yaml:"path"`
	Valid  bool              `json:"valid" yaml:"valid"`
	Errors []ValidationIssue `json:"errors" yaml:"errors"`
}
