package schema

import "gopkg.in/yaml.v3"

// BranchProtection pairs the branch patterns to evaluate with the expected
// protection configuration.
type BranchProtection struct {
	Branches []string              `yaml:"branches" json:"branches"`
	Rules    BranchProtectionRules `yaml:"rules" json:"rules"`
}

// UnmarshalYAML applies the default branch list and rule baseline when the
// document omits them.
func (b *BranchProtection) UnmarshalYAML(value *yaml.Node) error {
	type plain BranchProtection
	tmp := plain{Rules: DefaultBranchProtectionRules()}
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	if tmp.Branches == nil {
		tmp.Branches = []string{"main"}
	}
	*b = BranchProtection(tmp)
	return nil
}

// BranchProtectionRules is the fixed set of protection settings compared
// between the expected (contract) side and the observed (remote) side.
//
// The expected-side defaults are deliberately permissive-but-present: absent
// groups still demand reviews and status checks. The remote conversion in
// ghclient uses the opposite defaults (everything disabled).
type BranchProtectionRules struct {
	RequiredPullRequestReviews     RequiredPullRequestReviews `yaml:"required_pull_request_reviews" json:"required_pull_request_reviews"`
	RequiredStatusChecks           RequiredStatusChecks       `yaml:"required_status_checks" json:"required_status_checks"`
	EnforceAdmins                  bool                       `yaml:"enforce_admins" json:"enforce_admins"`
	RequiredLinearHistory          bool                       `yaml:"required_linear_history" json:"required_linear_history"`
	AllowForcePushes               bool                       `yaml:"allow_force_pushes" json:"allow_force_pushes"`
	AllowDeletions                 bool                       `yaml:"allow_deletions" json:"allow_deletions"`
	RequiredConversationResolution bool                       `yaml:"required_conversation_resolution" json:"required_conversation_resolution"`
	RequiredSignatures             bool                       `yaml:"required_signatures" json:"required_signatures"`
}

// DefaultBranchProtectionRules returns the expected-side baseline applied when
// a contract omits fields or whole groups.
func DefaultBranchProtectionRules() BranchProtectionRules {
	return BranchProtectionRules{
		RequiredPullRequestReviews: DefaultRequiredPullRequestReviews(),
		RequiredStatusChecks:       DefaultRequiredStatusChecks(),
	}
}

// UnmarshalYAML layers the document over the expected-side defaults.
func (r *BranchProtectionRules) UnmarshalYAML(value *yaml.Node) error {
	type plain BranchProtectionRules
	tmp := plain(DefaultBranchProtectionRules())
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*r = BranchProtectionRules(tmp)
	return nil
}

// RequiredPullRequestReviews describes the pull-request review gate.
type RequiredPullRequestReviews struct {
	Enabled                      bool `yaml:"enabled" json:"enabled"`
	RequiredApprovingReviewCount int  `yaml:"required_approving_review_count" json:"required_approving_review_count"`
	DismissStaleReviews          bool `yaml:"dismiss_stale_reviews" json:"dismiss_stale_reviews"`
	RequireCodeOwnerReviews      bool `yaml:"require_code_owner_reviews" json:"require_code_owner_reviews"`
	RequireLastPushApproval      bool `yaml:"require_last_push_approval" json:"require_last_push_approval"`
}

// DefaultRequiredPullRequestReviews returns the expected-side review defaults.
func DefaultRequiredPullRequestReviews() RequiredPullRequestReviews {
	return RequiredPullRequestReviews{
		Enabled:                      true,
		RequiredApprovingReviewCount: 1,
		DismissStaleReviews:          true,
	}
}

// UnmarshalYAML layers the document over the review defaults.
func (r *RequiredPullRequestReviews) UnmarshalYAML(value *yaml.Node) error {
	type plain RequiredPullRequestReviews
	tmp := plain(DefaultRequiredPullRequestReviews())
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*r = RequiredPullRequestReviews(tmp)
	return nil
}

// RequiredStatusChecks describes the status-check gate.
type RequiredStatusChecks struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	Strict  bool          `yaml:"strict" json:"strict"`
	Checks  []StatusCheck `yaml:"checks,omitempty" json:"checks,omitempty"`
}

// DefaultRequiredStatusChecks returns the expected-side status-check defaults.
func DefaultRequiredStatusChecks() RequiredStatusChecks {
	return RequiredStatusChecks{Enabled: true, Strict: true}
}

// UnmarshalYAML layers the document over the status-check defaults.
func (r *RequiredStatusChecks) UnmarshalYAML(value *yaml.Node) error {
	type plain RequiredStatusChecks
	tmp := plain(DefaultRequiredStatusChecks())
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*r = RequiredStatusChecks(tmp)
	return nil
}

// StatusCheck is a named CI gate, optionally scoped to a GitHub app.
type StatusCheck struct {
	Context string `yaml:"context" json:"context"`
	AppID   *int64 `yaml:"app_id,omitempty" json:"app_id,omitempty"`
}
