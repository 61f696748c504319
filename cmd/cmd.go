// Package cmd defines the command-line interface for contract.
package cmd

import (
	"github.com/pirakansa/contract/internal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add subcommands to the root command
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the contract file (default contract.yml)")
	rootCmd.PersistentFlags().StringP("format", "f", "", "Output format: human or json (diff also supports yaml)")
	rootCmd.PersistentFlags().StringP("remote", "r", "", "GitHub repository as owner/name or remote URL")
	rootCmd.PersistentFlags().String("rules", "", "Comma-separated rules to evaluate: required_files, branch_protection")
	rootCmd.PersistentFlags().BoolP("strict", "s", false, "Treat warnings as failures")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress output when the result is clean")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		internal.FatalError("Error binding root flags", err)
	}

	// Bind all flags of validateCmd to Viper
	validateCmd.Flags().BoolP("with-profile", "p", false, "Also validate the referenced profile document")
	if err := viper.BindPFlags(validateCmd.Flags()); err != nil {
		internal.FatalError("Error binding validate flags", err)
	}

	// Bind all flags of initCmd to Viper
	initCmd.Flags().StringP("output", "o", "contract.yml", "Path of the contract file to create")
	initCmd.Flags().String("profile", "", "Language profile to scaffold alongside the contract")
	initCmd.Flags().Bool("from-repo", false, "Seed required files from what exists in the repository")
	initCmd.Flags().Bool("force", false, "Overwrite existing files")
	if err := viper.BindPFlags(initCmd.Flags()); err != nil {
		internal.FatalError("Error binding init flags", err)
	}
}
