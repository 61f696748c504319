// Package core evaluates a contract against the actual repository state and
// reduces the verdicts into reports, summaries and diffs.
package core

import (
	"context"
	"errors"

	"github.com/pirakansa/contract/schema"
	"github.com/stretchr/testify/mock"
)

// ErrViolation signals that evaluation completed but the repository does not
// satisfy the contract. Commands map it to exit code 1.
var ErrViolation = errors.New("contract violations found")

// StateProvider supplies the observed repository state. Implementations fail
// on transport errors; a branch without protection yields (nil, nil).
type StateProvider interface {
	// ListBranches returns the branch names of the repository.
	ListBranches(ctx context.Context, repo string) ([]string, error)

	// GetBranchProtection returns the protection rules of a branch, or nil
	// when protection is not enabled for it.
	GetBranchProtection(ctx context.Context, repo, branch string) (*schema.BranchProtectionRules, error)
}

// FileLister supplies the relative, forward-slash-normalized file paths under
// a root, already filtered of VCS and build-output directories.
type FileLister interface {
	ListFiles(root string) ([]string, error)
}

// --- MockStateProvider Implementation ---

// MockStateProvider is a mock type for the StateProvider type.
type MockStateProvider struct {
	mock.Mock
}

var _ StateProvider = &MockStateProvider{} // Compile-time check

// ListBranches implements the StateProvider interface.
func (m *MockStateProvider) ListBranches(ctx context.Context, repo string) ([]string, error) {
	ret := m.Called(ctx, repo)
	branches, _ := ret.Get(0).([]string)
	return branches, ret.Error(1)
}

// GetBranchProtection implements the StateProvider interface.
func (m *MockStateProvider) GetBranchProtection(ctx context.Context, repo, branch string) (*schema.BranchProtectionRules, error) {
	ret := m.Called(ctx, repo, branch)
	rules, _ := ret.Get(0).(*schema.BranchProtectionRules)
	return rules, ret.Error(1)
}

// --- MockFileLister Implementation ---

// MockFileLister is a mock type for the FileLister type.
type MockFileLister struct {
	mock.Mock
}

var _ FileLister = &MockFileLister{} // Compile-time check

// ListFiles implements the FileLister interface.
func (m *MockFileLister) ListFiles(root string) ([]string, error) {
	ret := m.Called(root)
	files, _ := ret.Get(0).([]string)
	return files, ret.Error(1)
}
