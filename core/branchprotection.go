package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pirakansa/contract/schema"
)

// CheckBranchProtection fetches and evaluates protection for every branch
// matching the configured patterns, one branch at a time. A provider failure
// aborts the whole run; a branch without protection yields a single synthetic
// error verdict instead.
func CheckBranchProtection(ctx context.Context, provider StateProvider, repo string, config *schema.BranchProtection) ([]schema.BranchProtectionReport, error) {
	branches, err := provider.ListBranches(ctx, repo)
	if err != nil {
		return nil, err
	}
	targets, err := MatchBranchPatterns(config.Branches, branches)
	if err != nil {
		return nil, err
	}

	var reports []schema.BranchProtectionReport
	for _, target := range targets {
		actual, err := provider.GetBranchProtection(ctx, repo, target)
		if err != nil {
			return nil, err
		}
		var details []schema.BranchProtectionDetail
		if actual != nil {
			details = EvaluateBranchProtection(&config.Rules, actual)
		} else {
			details = []schema.BranchProtectionDetail{missingProtectionDetail()}
		}
		reports = append(reports, schema.BranchProtectionReport{
			Target:  target,
			Checks:  failedChecks(details),
			Details: details,
		})
	}
	return reports, nil
}

// MatchBranchPatterns filters live branch names through the configured glob
// patterns. An empty pattern list selects no branches.
func MatchBranchPatterns(patterns, branches []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, &schema.InvalidConfigError{Reason: fmt.Sprintf("invalid branch pattern: %q", pattern)}
		}
	}
	var targets []string
	for _, branch := range branches {
		for _, pattern := range patterns {
			if ok, _ := doublestar.Match(pattern, branch); ok {
				targets = append(targets, branch)
				break
			}
		}
	}
	return targets, nil
}

// EvaluateBranchProtection structurally compares the expected rules against
// the observed ones, producing one verdict per checked field or group.
// Sub-fields of a group are only compared when the expected side enables the
// group; the six independent booleans are always compared.
func EvaluateBranchProtection(expected, actual *schema.BranchProtectionRules) []schema.BranchProtectionDetail {
	var details []schema.BranchProtectionDetail

	reviewsExpected := expected.RequiredPullRequestReviews
	reviewsActual := actual.RequiredPullRequestReviews
	details = append(details, boolDetail(
		"required_pull_request_reviews.enabled",
		reviewsExpected.Enabled, reviewsActual.Enabled,
		enabledSeverity(reviewsExpected.Enabled, reviewsActual.Enabled),
	))
	if reviewsExpected.Enabled {
		// The review count is a floor: a repository may demand more
		// approvals than the contract does.
		countPassed := reviewsActual.RequiredApprovingReviewCount >= reviewsExpected.RequiredApprovingReviewCount
		details = append(details, newDetail(
			"required_pull_request_reviews.required_approving_review_count",
			schema.NumberValue(reviewsExpected.RequiredApprovingReviewCount),
			schema.NumberValue(reviewsActual.RequiredApprovingReviewCount),
			countPassed,
			schema.SeverityError,
			fmt.Sprintf("required_approving_review_count: expected %d, got %d",
				reviewsExpected.RequiredApprovingReviewCount, reviewsActual.RequiredApprovingReviewCount),
		))
		details = append(details,
			labeledBoolDetail("required_pull_request_reviews.dismiss_stale_reviews", "dismiss_stale_reviews",
				reviewsExpected.DismissStaleReviews, reviewsActual.DismissStaleReviews, schema.SeverityWarning),
			labeledBoolDetail("required_pull_request_reviews.require_code_owner_reviews", "require_code_owner_reviews",
				reviewsExpected.RequireCodeOwnerReviews, reviewsActual.RequireCodeOwnerReviews, schema.SeverityWarning),
			labeledBoolDetail("required_pull_request_reviews.require_last_push_approval", "require_last_push_approval",
				reviewsExpected.RequireLastPushApproval, reviewsActual.RequireLastPushApproval, schema.SeverityWarning),
		)
	}

	statusExpected := expected.RequiredStatusChecks
	statusActual := actual.RequiredStatusChecks
	details = append(details, boolDetail(
		"required_status_checks.enabled",
		statusExpected.Enabled, statusActual.Enabled,
		enabledSeverity(statusExpected.Enabled, statusActual.Enabled),
	))
	if statusExpected.Enabled {
		details = append(details, boolDetail("required_status_checks.strict",
			statusExpected.Strict, statusActual.Strict, schema.SeverityWarning))
		if len(statusExpected.Checks) > 0 {
			details = append(details, statusChecksDetail(statusExpected.Checks, statusActual.Checks))
		}
	}

	details = append(details,
		boolDetail("enforce_admins", expected.EnforceAdmins, actual.EnforceAdmins, schema.SeverityWarning),
		boolDetail("required_linear_history", expected.RequiredLinearHistory, actual.RequiredLinearHistory, schema.SeverityWarning),
		boolDetail("allow_force_pushes", expected.AllowForcePushes, actual.AllowForcePushes, schema.SeverityWarning),
		boolDetail("allow_deletions", expected.AllowDeletions, actual.AllowDeletions, schema.SeverityWarning),
		boolDetail("required_conversation_resolution", expected.RequiredConversationResolution, actual.RequiredConversationResolution, schema.SeverityWarning),
		boolDetail("required_signatures", expected.RequiredSignatures, actual.RequiredSignatures, schema.SeverityWarning),
	)

	return details
}

// MissingStatusChecks returns every expected check without a compatible match
// in the actual list. A match requires an equal context, and when the expected
// entry pins an app_id the actual entry must carry the same one; an expected
// entry without app_id accepts any.
func MissingStatusChecks(expected, actual []schema.StatusCheck) []string {
	var missing []string
	for _, want := range expected {
		if !hasStatusCheck(want, actual) {
			missing = append(missing, want.Context)
		}
	}
	return missing
}

// ExtraStatusChecks returns every actual check whose context does not appear
// in the expected list. This direction matches by context alone; app_id is
// intentionally ignored (asymmetric by policy).
func ExtraStatusChecks(expected, actual []schema.StatusCheck) []string {
	contexts := make(map[string]struct{}, len(expected))
	for _, want := range expected {
		contexts[want.Context] = struct{}{}
	}
	var extra []string
	for _, got := range actual {
		if _, ok := contexts[got.Context]; !ok {
			extra = append(extra, got.Context)
		}
	}
	return extra
}

func hasStatusCheck(want schema.StatusCheck, actual []schema.StatusCheck) bool {
	for _, got := range actual {
		if got.Context != want.Context {
			continue
		}
		if want.AppID == nil {
			return true
		}
		if got.AppID != nil && *got.AppID == *want.AppID {
			return true
		}
	}
	return false
}

// statusChecksDetail builds the single combined verdict for the check lists.
// Missing checks are an error; extras alone are a warning.
func statusChecksDetail(expected, actual []schema.StatusCheck) schema.BranchProtectionDetail {
	missing := MissingStatusChecks(expected, actual)
	extra := ExtraStatusChecks(expected, actual)
	passed := len(missing) == 0 && len(extra) == 0

	severity := schema.SeverityWarning
	if len(missing) > 0 {
		severity = schema.SeverityError
	}

	var message string
	switch {
	case passed:
	case len(missing) > 0 && len(extra) > 0:
		message = fmt.Sprintf("Missing required status check: %s (extra: %s)",
			strings.Join(missing, ", "), strings.Join(extra, ", "))
	case len(missing) > 0:
		message = fmt.Sprintf("Missing required status check: %s", strings.Join(missing, ", "))
	default:
		message = fmt.Sprintf("Unexpected status checks: %s", strings.Join(extra, ", "))
	}

	return schema.BranchProtectionDetail{
		Path:     "required_status_checks.checks",
		Expected: schema.StringListValue(checkContexts(expected)),
		Actual:   schema.StringListValue(checkContexts(actual)),
		Missing:  emptyIfNil(missing),
		Extra:    emptyIfNil(extra),
		Passed:   passed,
		Severity: severity,
		Message:  message,
	}
}

func checkContexts(checks []schema.StatusCheck) []string {
	contexts := make([]string, len(checks))
	for i, check := range checks {
		contexts[i] = check.Context
	}
	return contexts
}

// emptyIfNil keeps set-valued fields present (non-nil) on the checks verdict
// even when empty, so the aggregator can tell a set comparison from a value
// comparison.
func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

// missingProtectionDetail is the synthetic verdict for a branch whose
// protection is disabled entirely. No field-level comparison follows it.
func missingProtectionDetail() schema.BranchProtectionDetail {
	return schema.BranchProtectionDetail{
		Path:     "branch_protection",
		Expected: schema.BoolValue(true),
		Actual:   schema.BoolValue(false),
		Passed:   false,
		Severity: schema.SeverityError,
		Message:  "Branch protection is not enabled",
	}
}

// enabledSeverity classifies an enabled-flag mismatch: a gate the contract
// demands but the remote lacks is an error; any other mismatch is a warning.
func enabledSeverity(expected, actual bool) schema.Severity {
	if expected && !actual {
		return schema.SeverityError
	}
	return schema.SeverityWarning
}

func boolDetail(path string, expected, actual bool, severity schema.Severity) schema.BranchProtectionDetail {
	return labeledBoolDetail(path, path, expected, actual, severity)
}

// labeledBoolDetail lets the message label differ from the dotted path, for
// fields reported under their short name.
func labeledBoolDetail(path, label string, expected, actual bool, severity schema.Severity) schema.BranchProtectionDetail {
	return newDetail(path,
		schema.BoolValue(expected), schema.BoolValue(actual),
		expected == actual, severity,
		fmt.Sprintf("%s: expected %t, got %t", label, expected, actual),
	)
}

func newDetail(path string, expected, actual schema.Value, passed bool, severity schema.Severity, message string) schema.BranchProtectionDetail {
	if passed {
		message = ""
	}
	return schema.BranchProtectionDetail{
		Path:     path,
		Expected: expected,
		Actual:   actual,
		Passed:   passed,
		Severity: severity,
		Message:  message,
	}
}

func failedChecks(details []schema.BranchProtectionDetail) []schema.BranchProtectionCheck {
	var checks []schema.BranchProtectionCheck
	for _, detail := range details {
		if detail.Passed {
			continue
		}
		checks = append(checks, schema.BranchProtectionCheck{
			Path:     detail.Path,
			Expected: detail.Expected,
			Actual:   detail.Actual,
			Severity: detail.Severity,
			Message:  detail.Message,
		})
	}
	return checks
}
