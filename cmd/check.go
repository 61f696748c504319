package cmd

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/pirakansa/contract/core"
	"github.com/pirakansa/contract/internal/ghclient"
	"github.com/pirakansa/contract/internal/loader"
	"github.com/pirakansa/contract/internal/outwriter"
	"github.com/pirakansa/contract/internal/repofs"
	"github.com/pirakansa/contract/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// checkCmd evaluates the contract and reports every verdict.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate the repository against its contract",
	Long: `Check evaluates the repository against the contract file: required files
on the local working tree and branch protection against the GitHub API.
Exits 1 when any error-severity verdict fails (warnings too with --strict).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := resolveFormat(schema.HumanFormat, schema.JSONFormat)
		if err != nil {
			return err
		}
		rules, err := parseRules()
		if err != nil {
			return err
		}

		remote := viper.GetString("remote")
		if remote != "" && hasRule(rules, schema.RuleRequiredFiles) {
			return &schema.InvalidConfigError{
				Reason: "required_files cannot be evaluated against a remote repository; use --rules branch_protection",
			}
		}

		configPath := resolveConfigPath()
		if err := requireContractFile(configPath); err != nil {
			return err
		}
		loaded, err := loader.LoadContract(loader.LoadOptions{ConfigPath: configPath, IncludeProfile: true})
		if err != nil {
			return err
		}

		options := &core.RunOptions{
			Contract: loaded.Contract,
			Root:     filepath.Dir(configPath),
			Rules:    rules,
			Lister:   &repofs.Lister{},
		}
		if hasRule(rules, schema.RuleBranchProtection) && loaded.Contract.BranchProtection != nil {
			repo, err := ghclient.ResolveRepository(remote)
			if err != nil {
				return err
			}
			options.Repo = repo
			options.Provider = ghclient.NewClient(resolveGithubToken())
		}

		result, err := options.RunCheck(rootCtx)
		if err != nil {
			return err
		}

		hasError := result.Summary.Error > 0
		if viper.GetBool("strict") && result.Summary.Warning > 0 {
			hasError = true
		}

		if !suppressOutput(viper.GetBool("quiet"), result.Summary) {
			if err := outwriter.WriteCheckResults(os.Stdout, result, format, !hasError); err != nil {
				return err
			}
		}

		if hasError {
			return core.ErrViolation
		}
		return nil
	},
}

func hasRule(rules []schema.RuleName, rule schema.RuleName) bool {
	return slices.Contains(rules, rule)
}

// suppressOutput reports whether a quiet run may skip rendering entirely.
// Only a run without errors and warnings stays silent; info-level findings do
// not force output.
func suppressOutput(quiet bool, summary schema.Summary) bool {
	return quiet && summary.Error == 0 && summary.Warning == 0
}
