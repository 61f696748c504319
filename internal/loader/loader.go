// Package loader reads contract documents, resolves profile layering and
// validates documents against the embedded JSON schema.
package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pirakansa/contract/schema"
	"gopkg.in/yaml.v3"
)

// LoadOptions controls contract loading.
type LoadOptions struct {
	ConfigPath     string
	IncludeProfile bool
}

// LoadedContract is a parsed contract with its source paths. Contract already
// has the profile merged in when one was declared and loading included it.
type LoadedContract struct {
	BasePath    string
	ProfilePath string
	Contract    *schema.Contract
}

// ProfileNotFoundError reports a declared profile whose document is missing.
type ProfileNotFoundError struct {
	Path string
}

func (e *ProfileNotFoundError) Error() string {
	return "profile file not found: " + e.Path
}

// LoadContract parses the base document and, when requested, merges the
// declared profile document onto it. A declared but missing profile is fatal
// before any evaluation begins.
func LoadContract(options LoadOptions) (*LoadedContract, error) {
	base, err := readContract(options.ConfigPath)
	if err != nil {
		return nil, err
	}
	loaded := &LoadedContract{BasePath: options.ConfigPath, Contract: base}

	if !options.IncludeProfile || base.Profile == "" {
		return loaded, nil
	}

	profilePath := ProfilePath(options.ConfigPath, base.Profile)
	if _, err := os.Stat(profilePath); err != nil {
		return nil, &ProfileNotFoundError{Path: profilePath}
	}
	profile, err := readContract(profilePath)
	if err != nil {
		return nil, err
	}
	loaded.ProfilePath = profilePath
	loaded.Contract = base.MergeProfile(profile)
	return loaded, nil
}

// ProfilePath locates a profile document next to the base document, following
// the contract.<name>.yml convention.
func ProfilePath(basePath, profile string) string {
	return filepath.Join(filepath.Dir(basePath), fmt.Sprintf("contract.%s.yml", profile))
}

// ProfileName reads only the profile declaration of a document, without
// decoding the rest of the contract.
func ProfileName(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var header struct {
		Profile string `yaml:"profile"`
	}
	if err := yaml.Unmarshal(content, &header); err != nil {
		return "", fmt.Errorf("parse %s: %w", path, err)
	}
	return header.Profile, nil
}

func readContract(path string) (*schema.Contract, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var contract schema.Contract
	if err := yaml.Unmarshal(content, &contract); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &contract, nil
}
