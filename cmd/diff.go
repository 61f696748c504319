package cmd

import (
	"os"
	"path/filepath"

	"github.com/pirakansa/contract/core"
	"github.com/pirakansa/contract/internal/ghclient"
	"github.com/pirakansa/contract/internal/loader"
	"github.com/pirakansa/contract/internal/outwriter"
	"github.com/pirakansa/contract/internal/repofs"
	"github.com/pirakansa/contract/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// diffCmd shows what would have to change for the contract to pass.
var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show the differences between the contract and reality",
	Long: `Diff evaluates the contract and reduces the failing verdicts into a
structured list of differences: mismatched settings, missing or extra
list entries, and missing required files. Exits 1 when any difference
is found.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := resolveFormat(schema.HumanFormat, schema.JSONFormat, schema.YAMLFormat)
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

		report, err := options.RunDiff(rootCtx)
		if err != nil {
			return err
		}

		if !viper.GetBool("quiet") || len(report.Diffs) > 0 || format != schema.HumanFormat {
			if err := outwriter.WriteDiffReport(os.Stdout, report, format); err != nil {
				return err
			}
		}

		if len(report.Diffs) > 0 {
			return core.ErrViolation
		}
		return nil
	},
}
