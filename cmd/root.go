package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pirakansa/contract/core"
	"github.com/pirakansa/contract/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "contract",
	Short:              "Declare and enforce repository contracts.",
	Long:               `Contract checks a repository against a declarative contract: required files and expected GitHub branch-protection settings.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if viper.GetBool("no-color") {
			color.NoColor = true
		}
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Set config file name and paths
	viper.SetConfigName(".contract") // Name of config file (without extension)
	viper.SetConfigType("yaml")      // We'll use YAML format
	viper.AddConfigPath(".")         // Look in the current directory
	viper.AddConfigPath("$HOME")     // Look in the home directory

	// Set environment variable prefix
	viper.SetEnvPrefix("CONTRACT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("config", "contract.yml")
	viper.SetDefault("format", string(schema.HumanFormat))
	viper.SetDefault("rules", "")
	viper.SetDefault("strict", false)
	viper.SetDefault("remote", "")
	viper.SetDefault("github-token", "")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			// Config file was found but another error was produced
			fmt.Fprintf(os.Stderr, "error reading config file: %v\n", err)
			os.Exit(2)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}
}

// Execute runs the root command and maps errors to exit codes: 0 for a clean
// run, 1 for contract violations, 2 for configuration or transport failures.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, core.ErrViolation) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	return 0
}
