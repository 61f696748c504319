// Package schema has the contract model, report types and shared constants
// for all parts of the contract CLI.
package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Contract is the declarative document describing required files and expected
// branch-protection settings for a repository. A contract with neither
// branch_protection nor required_files is valid and evaluates to no checks.
type Contract struct {
	Version          string            `yaml:"version" json:"version"`
	Profile          string            `yaml:"profile,omitempty" json:"profile,omitempty"`
	Language         string            `yaml:"language,omitempty" json:"language,omitempty"`
	BranchProtection *BranchProtection `yaml:"branch_protection,omitempty" json:"branch_protection,omitempty"`
	RequiredFiles    []RequiredFile    `yaml:"required_files,omitempty" json:"required_files,omitempty"`
	Metadata         map[string]any    `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// MergeProfile layers a specialization contract onto the base contract.
// Required files are concatenated (base first, no deduplication), while
// branch_protection and metadata are replaced wholesale when the profile
// provides them. All other fields come from the base.
func (c *Contract) MergeProfile(profile *Contract) *Contract {
	merged := *c
	merged.RequiredFiles = append(append([]RequiredFile{}, c.RequiredFiles...), profile.RequiredFiles...)
	if profile.BranchProtection != nil {
		merged.BranchProtection = profile.BranchProtection
	}
	if profile.Metadata != nil {
		merged.Metadata = profile.Metadata
	}
	return &merged
}

// RequiredFile declares a single file expectation. Exactly one of Path or
// Pattern must be set; this is enforced at evaluation time, not here.
type RequiredFile struct {
	Path            string   `yaml:"path,omitempty" json:"path,omitempty"`
	Pattern         string   `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Description     string   `yaml:"description,omitempty" json:"description,omitempty"`
	Alternatives    []string `yaml:"alternatives,omitempty" json:"alternatives,omitempty"`
	Severity        Severity `yaml:"severity,omitempty" json:"severity"`
	CaseInsensitive bool     `yaml:"case_insensitive,omitempty" json:"case_insensitive,omitempty"`
}

// UnmarshalYAML applies the default severity when the document omits it.
func (r *RequiredFile) UnmarshalYAML(value *yaml.Node) error {
	type plain RequiredFile
	tmp := plain{Severity: SeverityError}
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*r = RequiredFile(tmp)
	return nil
}

// UnmarshalYAML rejects severities outside the known set.
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed := Severity(raw)
	if _, ok := ValidSeverities[parsed]; !ok {
		return fmt.Errorf("unknown severity: %q", raw)
	}
	*s = parsed
	return nil
}

// InvalidConfigError reports a contract or tool configuration that cannot be
// evaluated, such as a required-file rule with neither path nor pattern.
type InvalidConfigError struct {
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}
