package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestContractUnmarshal_Minimal(t *testing.T) {
	var contract Contract
	err := yaml.Unmarshal([]byte("version: \"1.0\"\n"), &contract)

	assert.NoError(t, err)
	assert.Equal(t, "1.0", contract.Version)
	assert.Nil(t, contract.BranchProtection)
	assert.Empty(t, contract.RequiredFiles)
}

func TestRequiredFileUnmarshal_DefaultSeverity(t *testing.T) {
	doc := `
required_files:
  - path: README.md
  - path: CONTRIBUTING.md
    severity: warning
  - path: AGENTS.md
    severity: info
`
	var contract Contract
	err := yaml.Unmarshal([]byte(doc), &contract)

	assert.NoError(t, err)
	assert.Len(t, contract.RequiredFiles, 3)
	assert.Equal(t, SeverityError, contract.RequiredFiles[0].Severity)
	assert.Equal(t, SeverityWarning, contract.RequiredFiles[1].Severity)
	assert.Equal(t, SeverityInfo, contract.RequiredFiles[2].Severity)
}

func TestSeverityUnmarshal_Unknown(t *testing.T) {
	doc := `
required_files:
  - path: README.md
    severity: critical
`
	var contract Contract
	err := yaml.Unmarshal([]byte(doc), &contract)

	assert.ErrorContains(t, err, "unknown severity")
}

func TestMergeProfile_ConcatenatesRequiredFiles(t *testing.T) {
	base := &Contract{
		Version:       "1.0",
		Profile:       "go",
		RequiredFiles: []RequiredFile{{Path: "README.md"}, {Path: "LICENSE"}},
	}
	profile := &Contract{
		Version:       "1.0",
		Language:      "go",
		RequiredFiles: []RequiredFile{{Path: "go.mod"}},
	}

	merged := base.MergeProfile(profile)

	assert.Len(t, merged.RequiredFiles, 3)
	assert.Equal(t, "README.md", merged.RequiredFiles[0].Path)
	assert.Equal(t, "go.mod", merged.RequiredFiles[2].Path)
	// The base must stay untouched.
	assert.Len(t, base.RequiredFiles, 2)
}

func TestMergeProfile_ReplacesBranchProtectionAndMetadata(t *testing.T) {
	base := &Contract{
		Version:          "1.0",
		BranchProtection: &BranchProtection{Branches: []string{"main"}},
		Metadata:         map[string]any{"team": "platform"},
	}
	profile := &Contract{
		Version:          "1.0",
		BranchProtection: &BranchProtection{Branches: []string{"main", "release/*"}},
		Metadata:         map[string]any{"team": "runtime"},
	}

	merged := base.MergeProfile(profile)

	assert.Equal(t, []string{"main", "release/*"}, merged.BranchProtection.Branches)
	assert.Equal(t, "runtime", merged.Metadata["team"])
}

func TestMergeProfile_KeepsBaseWhenProfileOmits(t *testing.T) {
	base := &Contract{
		Version:          "1.0",
		BranchProtection: &BranchProtection{Branches: []string{"main"}},
		Metadata:         map[string]any{"team": "platform"},
	}
	profile := &Contract{Version: "1.0"}

	merged := base.MergeProfile(profile)

	assert.Equal(t, []string{"main"}, merged.BranchProtection.Branches)
	assert.Equal(t, "platform", merged.Metadata["team"])
}
