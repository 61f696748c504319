package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pirakansa/contract/schema"
	"gopkg.in/yaml.v3"
)

const schemaURL = "https://pirakansa.github.io/contract/schemas/v1.json"

// InitOptions controls contract scaffolding.
type InitOptions struct {
	OutputPath string
	Profile    string
	FromRepo   bool
	Force      bool
}

// InitOutcome lists the files written by Scaffold.
type InitOutcome struct {
	Created []string
}

// AlreadyExistsError reports a scaffold target that exists and was not forced.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return "file already exists: " + e.Path
}

type contractTemplate struct {
	Schema        string                 `yaml:"$schema,omitempty"`
	Version       string                 `yaml:"version"`
	Profile       string                 `yaml:"profile,omitempty"`
	Language      string                 `yaml:"language,omitempty"`
	RequiredFiles []requiredFileTemplate `yaml:"required_files,omitempty"`
}

type requiredFileTemplate struct {
	Path     string          `yaml:"path"`
	Severity schema.Severity `yaml:"severity,omitempty"`
}

// Scaffold writes a starter contract document and, when a profile is named,
// the matching profile document next to it.
func Scaffold(root string, options InitOptions) (*InitOutcome, error) {
	outcome := &InitOutcome{}

	var required []requiredFileTemplate
	if options.FromRepo {
		required = requiredFilesFromRepo(root)
	} else {
		required = defaultRequiredFiles()
	}

	base := contractTemplate{
		Schema:        schemaURL,
		Version:       "1.0",
		Profile:       options.Profile,
		RequiredFiles: required,
	}
	if err := writeYAML(options.OutputPath, &base, options.Force); err != nil {
		return nil, err
	}
	outcome.Created = append(outcome.Created, options.OutputPath)

	if options.Profile != "" {
		profilePath := profilePathFor(options.OutputPath, options.Profile)
		profile := contractTemplate{
			Schema:        schemaURL,
			Version:       "1.0",
			Language:      options.Profile,
			RequiredFiles: profileRequiredFiles(options.Profile),
		}
		if err := writeYAML(profilePath, &profile, options.Force); err != nil {
			return nil, err
		}
		outcome.Created = append(outcome.Created, profilePath)
	}

	return outcome, nil
}

func writeYAML(path string, value any, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return &AlreadyExistsError{Path: path}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	content, err := yaml.Marshal(value)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func profilePathFor(basePath, profile string) string {
	return filepath.Join(filepath.Dir(basePath), fmt.Sprintf("contract.%s.yml", profile))
}

func defaultRequiredFiles() []requiredFileTemplate {
	return []requiredFileTemplate{
		{Path: "README.md"},
		{Path: "LICENSE"},
		{Path: ".gitignore"},
		{Path: "AGENTS.md", Severity: schema.SeverityInfo},
	}
}

// requiredFilesFromRepo seeds the template with the well-known files that are
// actually present in the repository.
func requiredFilesFromRepo(root string) []requiredFileTemplate {
	candidates := []requiredFileTemplate{
		{Path: "README.md"},
		{Path: "LICENSE"},
		{Path: "CONTRIBUTING.md", Severity: schema.SeverityWarning},
		{Path: "CHANGELOG.md", Severity: schema.SeverityWarning},
		{Path: "SECURITY.md", Severity: schema.SeverityWarning},
		{Path: ".gitignore"},
		{Path: "AGENTS.md", Severity: schema.SeverityInfo},
	}
	var found []requiredFileTemplate
	for _, candidate := range candidates {
		if _, err := os.Stat(filepath.Join(root, candidate.Path)); err == nil {
			found = append(found, candidate)
		}
	}
	return found
}

func profileRequiredFiles(profile string) []requiredFileTemplate {
	switch profile {
	case "go":
		return []requiredFileTemplate{
			{Path: "go.mod"},
			{Path: "main.go", Severity: schema.SeverityWarning},
			{Path: ".golangci.yml", Severity: schema.SeverityWarning},
		}
	case "rust":
		return []requiredFileTemplate{
			{Path: "Cargo.toml"},
			{Path: "src/main.rs", Severity: schema.SeverityWarning},
			{Path: "rust-toolchain.toml", Severity: schema.SeverityWarning},
		}
	default:
		return nil
	}
}
