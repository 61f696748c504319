package core

import (
	"context"
	"testing"

	"github.com/pirakansa/contract/schema"
	"github.com/stretchr/testify/assert"
)

// protectedRules returns an observed-side state that satisfies the
// expected-side defaults plus the given status checks.
func protectedRules(checks ...schema.StatusCheck) *schema.BranchProtectionRules {
	return &schema.BranchProtectionRules{
		RequiredPullRequestReviews: schema.RequiredPullRequestReviews{
			Enabled:                      true,
			RequiredApprovingReviewCount: 1,
			DismissStaleReviews:          true,
		},
		RequiredStatusChecks: schema.RequiredStatusChecks{
			Enabled: true,
			Strict:  true,
			Checks:  checks,
		},
	}
}

func detailByPath(details []schema.BranchProtectionDetail, path string) *schema.BranchProtectionDetail {
	for i := range details {
		if details[i].Path == path {
			return &details[i]
		}
	}
	return nil
}

func TestEvaluateBranchProtection_AllPassing(t *testing.T) {
	expected := schema.DefaultBranchProtectionRules()
	actual := protectedRules()

	details := EvaluateBranchProtection(&expected, actual)

	for _, detail := range details {
		assert.True(t, detail.Passed, "expected %s to pass", detail.Path)
		assert.Empty(t, detail.Message)
	}
}

func TestEvaluateBranchProtection_MissingStatusCheck(t *testing.T) {
	expected := schema.DefaultBranchProtectionRules()
	expected.RequiredStatusChecks.Checks = []schema.StatusCheck{
		{Context: "ci"}, {Context: "lint"},
	}
	actual := protectedRules(schema.StatusCheck{Context: "ci"})

	details := EvaluateBranchProtection(&expected, actual)
	checks := detailByPath(details, "required_status_checks.checks")

	if assert.NotNil(t, checks) {
		assert.False(t, checks.Passed)
		assert.Equal(t, schema.SeverityError, checks.Severity)
		assert.Equal(t, []string{"lint"}, checks.Missing)
		assert.Empty(t, checks.Extra)
		assert.Equal(t, "Missing required status check: lint", checks.Message)
	}
}

func TestEvaluateBranchProtection_ExtraStatusCheckIsWarning(t *testing.T) {
	expected := schema.DefaultBranchProtectionRules()
	expected.RequiredStatusChecks.Checks = []schema.StatusCheck{{Context: "ci"}}
	actual := protectedRules(
		schema.StatusCheck{Context: "ci"},
		schema.StatusCheck{Context: "nightly"},
	)

	details := EvaluateBranchProtection(&expected, actual)
	checks := detailByPath(details, "required_status_checks.checks")

	if assert.NotNil(t, checks) {
		assert.False(t, checks.Passed)
		assert.Equal(t, schema.SeverityWarning, checks.Severity)
		assert.Empty(t, checks.Missing)
		assert.Equal(t, []string{"nightly"}, checks.Extra)
		assert.Equal(t, "Unexpected status checks: nightly", checks.Message)
	}
}

func TestEvaluateBranchProtection_StatusCheckOrderIndependent(t *testing.T) {
	expected := schema.DefaultBranchProtectionRules()
	expected.RequiredStatusChecks.Checks = []schema.StatusCheck{
		{Context: "ci"}, {Context: "lint"},
	}
	actual := protectedRules(
		schema.StatusCheck{Context: "lint"},
		schema.StatusCheck{Context: "ci"},
	)

	details := EvaluateBranchProtection(&expected, actual)
	checks := detailByPath(details, "required_status_checks.checks")

	if assert.NotNil(t, checks) {
		assert.True(t, checks.Passed)
	}
}

func TestEvaluateBranchProtection_ReviewCountIsFloor(t *testing.T) {
	expected := schema.DefaultBranchProtectionRules()
	expected.RequiredPullRequestReviews.RequiredApprovingReviewCount = 2

	low := protectedRules()
	low.RequiredPullRequestReviews.RequiredApprovingReviewCount = 1
	details := EvaluateBranchProtection(&expected, low)
	count := detailByPath(details, "required_pull_request_reviews.required_approving_review_count")
	if assert.NotNil(t, count) {
		assert.False(t, count.Passed)
		assert.Equal(t, schema.SeverityError, count.Severity)
		assert.Equal(t, "required_approving_review_count: expected 2, got 1", count.Message)
	}

	high := protectedRules()
	high.RequiredPullRequestReviews.RequiredApprovingReviewCount = 3
	details = EvaluateBranchProtection(&expected, high)
	count = detailByPath(details, "required_pull_request_reviews.required_approving_review_count")
	if assert.NotNil(t, count) {
		assert.True(t, count.Passed)
	}
}

func TestEvaluateBranchProtection_EnabledMismatchSeverity(t *testing.T) {
	// Demanded but absent: error.
	expected := schema.DefaultBranchProtectionRules()
	actual := protectedRules()
	actual.RequiredPullRequestReviews = schema.RequiredPullRequestReviews{}

	details := EvaluateBranchProtection(&expected, actual)
	enabled := detailByPath(details, "required_pull_request_reviews.enabled")
	if assert.NotNil(t, enabled) {
		assert.False(t, enabled.Passed)
		assert.Equal(t, schema.SeverityError, enabled.Severity)
	}

	// Present but not demanded: warning.
	expected.RequiredPullRequestReviews.Enabled = false
	actual = protectedRules()
	details = EvaluateBranchProtection(&expected, actual)
	enabled = detailByPath(details, "required_pull_request_reviews.enabled")
	if assert.NotNil(t, enabled) {
		assert.False(t, enabled.Passed)
		assert.Equal(t, schema.SeverityWarning, enabled.Severity)
	}
}

func TestEvaluateBranchProtection_SubFieldsGatedOnEnabled(t *testing.T) {
	expected := schema.DefaultBranchProtectionRules()
	expected.RequiredPullRequestReviews.Enabled = false
	expected.RequiredStatusChecks.Enabled = false
	actual := &schema.BranchProtectionRules{}

	details := EvaluateBranchProtection(&expected, actual)

	assert.Nil(t, detailByPath(details, "required_pull_request_reviews.required_approving_review_count"))
	assert.Nil(t, detailByPath(details, "required_status_checks.strict"))
	// The six independent booleans are still compared.
	assert.NotNil(t, detailByPath(details, "enforce_admins"))
	assert.NotNil(t, detailByPath(details, "required_signatures"))
}

func TestEvaluateBranchProtection_ReviewSubFieldMessages(t *testing.T) {
	expected := schema.DefaultBranchProtectionRules()
	actual := protectedRules()
	actual.RequiredPullRequestReviews.DismissStaleReviews = false

	details := EvaluateBranchProtection(&expected, actual)
	dismiss := detailByPath(details, "required_pull_request_reviews.dismiss_stale_reviews")
	if assert.NotNil(t, dismiss) {
		assert.False(t, dismiss.Passed)
		assert.Equal(t, schema.SeverityWarning, dismiss.Severity)
		assert.Equal(t, "dismiss_stale_reviews: expected true, got false", dismiss.Message)
	}
}

func TestMissingStatusChecks_AppIDAsymmetry(t *testing.T) {
	appA := int64(100)
	appB := int64(200)

	// Expected pins an app: the actual entry must carry the same one.
	expected := []schema.StatusCheck{{Context: "ci", AppID: &appA}}
	assert.Equal(t, []string{"ci"},
		MissingStatusChecks(expected, []schema.StatusCheck{{Context: "ci"}}))
	assert.Equal(t, []string{"ci"},
		MissingStatusChecks(expected, []schema.StatusCheck{{Context: "ci", AppID: &appB}}))
	assert.Empty(t,
		MissingStatusChecks(expected, []schema.StatusCheck{{Context: "ci", AppID: &appA}}))

	// Expected without an app accepts any actual app.
	expected = []schema.StatusCheck{{Context: "ci"}}
	assert.Empty(t,
		MissingStatusChecks(expected, []schema.StatusCheck{{Context: "ci", AppID: &appB}}))

	// The extra direction matches by context alone.
	assert.Empty(t,
		ExtraStatusChecks(
			[]schema.StatusCheck{{Context: "ci", AppID: &appA}},
			[]schema.StatusCheck{{Context: "ci", AppID: &appB}},
		))
}

func TestMatchBranchPatterns(t *testing.T) {
	branches := []string{"main", "develop", "release/1.0", "release/2.0", "feature/x"}

	targets, err := MatchBranchPatterns([]string{"main", "release/*"}, branches)
	assert.NoError(t, err)
	assert.Equal(t, []string{"main", "release/1.0", "release/2.0"}, targets)

	targets, err = MatchBranchPatterns(nil, branches)
	assert.NoError(t, err)
	assert.Empty(t, targets)

	_, err = MatchBranchPatterns([]string{"release/["}, branches)
	var invalid *schema.InvalidConfigError
	assert.ErrorAs(t, err, &invalid)
}

func TestCheckBranchProtection_UnprotectedBranch(t *testing.T) {
	ctx := context.Background()
	provider := &MockStateProvider{}
	provider.On("ListBranches", ctx, "acme/widgets").Return([]string{"main"}, nil)
	provider.On("GetBranchProtection", ctx, "acme/widgets", "main").Return((*schema.BranchProtectionRules)(nil), nil)

	config := &schema.BranchProtection{
		Branches: []string{"main"},
		Rules:    schema.DefaultBranchProtectionRules(),
	}
	reports, err := CheckBranchProtection(ctx, provider, "acme/widgets", config)

	assert.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, "main", reports[0].Target)
	if assert.Len(t, reports[0].Details, 1) {
		detail := reports[0].Details[0]
		assert.Equal(t, "branch_protection", detail.Path)
		assert.Equal(t, schema.SeverityError, detail.Severity)
		assert.Equal(t, "Branch protection is not enabled", detail.Message)
	}
	provider.AssertExpectations(t)
}

func TestCheckBranchProtection_MultipleBranches(t *testing.T) {
	ctx := context.Background()
	provider := &MockStateProvider{}
	provider.On("ListBranches", ctx, "acme/widgets").Return([]string{"main", "develop"}, nil)
	provider.On("GetBranchProtection", ctx, "acme/widgets", "main").Return(protectedRules(), nil)
	provider.On("GetBranchProtection", ctx, "acme/widgets", "develop").Return((*schema.BranchProtectionRules)(nil), nil)

	config := &schema.BranchProtection{
		Branches: []string{"main", "develop"},
		Rules:    schema.DefaultBranchProtectionRules(),
	}
	reports, err := CheckBranchProtection(ctx, provider, "acme/widgets", config)

	assert.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Empty(t, reports[0].Checks) // main satisfies the defaults
	assert.Len(t, reports[1].Checks, 1)
	provider.AssertExpectations(t)
}
