// Package ghclient implements the repository state provider on top of the
// GitHub REST API.
package ghclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v69/github"
	"github.com/pirakansa/contract/schema"
)

// Client fetches branch and protection state from GitHub. It implements
// core.StateProvider.
type Client struct {
	gh *github.Client
}

// NewClient builds a client against api.github.com. An empty token makes
// unauthenticated requests.
func NewClient(token string) *Client {
	gh := github.NewClient(nil)
	if token != "" {
		gh = gh.WithAuthToken(token)
	}
	return &Client{gh: gh}
}

// NewClientWithBaseURL builds a client against a custom API endpoint, for
// GitHub Enterprise or tests.
func NewClientWithBaseURL(token, baseURL string) (*Client, error) {
	gh, err := NewClient(token).gh.WithEnterpriseURLs(baseURL, baseURL)
	if err != nil {
		return nil, fmt.Errorf("configure base URL: %w", err)
	}
	return &Client{gh: gh}, nil
}

// ListBranches returns all branch names of an owner/name repository,
// following pagination.
func (c *Client) ListBranches(ctx context.Context, repo string) ([]string, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}
	opts := &github.BranchListOptions{ListOptions: github.ListOptions{PerPage: 100}}
	var names []string
	for {
		branches, resp, err := c.gh.Repositories.ListBranches(ctx, owner, name, opts)
		if err != nil {
			return nil, fmt.Errorf("list branches for %s: %w", repo, err)
		}
		for _, branch := range branches {
			names = append(names, branch.GetName())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return names, nil
}

// GetBranchProtection returns the protection rules of a branch, or nil when
// the branch has no protection. Any response other than success or not-found
// is an error that aborts the run.
func (c *Client) GetBranchProtection(ctx context.Context, repo, branch string) (*schema.BranchProtectionRules, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}
	protection, resp, err := c.gh.Repositories.GetBranchProtection(ctx, owner, name, branch)
	if err != nil {
		if errors.Is(err, github.ErrBranchNotProtected) {
			return nil, nil
		}
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch protection for %s@%s: %w", repo, branch, err)
	}
	rules := convertProtection(protection)
	return &rules, nil
}

func splitRepo(repo string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return "", "", &schema.InvalidConfigError{Reason: fmt.Sprintf("repository must be owner/name, got %q", repo)}
	}
	return owner, name, nil
}

// convertProtection maps the API snapshot onto the contract rule shape.
// Groups absent from the remote side convert to disabled with zeroed fields,
// the opposite of the expected-side defaults.
func convertProtection(protection *github.Protection) schema.BranchProtectionRules {
	rules := schema.BranchProtectionRules{
		RequiredPullRequestReviews: convertPullRequestReviews(protection.RequiredPullRequestReviews),
		RequiredStatusChecks:       convertStatusChecks(protection.RequiredStatusChecks),
	}
	if protection.EnforceAdmins != nil {
		rules.EnforceAdmins = protection.EnforceAdmins.Enabled
	}
	if protection.RequireLinearHistory != nil {
		rules.RequiredLinearHistory = protection.RequireLinearHistory.Enabled
	}
	if protection.AllowForcePushes != nil {
		rules.AllowForcePushes = protection.AllowForcePushes.Enabled
	}
	if protection.AllowDeletions != nil {
		rules.AllowDeletions = protection.AllowDeletions.Enabled
	}
	if protection.RequiredConversationResolution != nil {
		rules.RequiredConversationResolution = protection.RequiredConversationResolution.Enabled
	}
	if protection.RequiredSignatures != nil {
		rules.RequiredSignatures = protection.RequiredSignatures.GetEnabled()
	}
	return rules
}

func convertPullRequestReviews(reviews *github.PullRequestReviewsEnforcement) schema.RequiredPullRequestReviews {
	if reviews == nil {
		return schema.RequiredPullRequestReviews{}
	}
	return schema.RequiredPullRequestReviews{
		Enabled:                      true,
		RequiredApprovingReviewCount: reviews.RequiredApprovingReviewCount,
		DismissStaleReviews:          reviews.DismissStaleReviews,
		RequireCodeOwnerReviews:      reviews.RequireCodeOwnerReviews,
		RequireLastPushApproval:      reviews.RequireLastPushApproval,
	}
}

// convertStatusChecks merges the legacy contexts list and the checks list,
// contexts first, preserving order.
func convertStatusChecks(checks *github.RequiredStatusChecks) schema.RequiredStatusChecks {
	if checks == nil {
		return schema.RequiredStatusChecks{}
	}
	var merged []schema.StatusCheck
	if checks.Contexts != nil {
		for _, context := range *checks.Contexts {
			merged = append(merged, schema.StatusCheck{Context: context})
		}
	}
	if checks.Checks != nil {
		for _, check := range *checks.Checks {
			merged = append(merged, schema.StatusCheck{Context: check.Context, AppID: check.AppID})
		}
	}
	return schema.RequiredStatusChecks{
		Enabled: true,
		Strict:  checks.Strict,
		Checks:  merged,
	}
}
