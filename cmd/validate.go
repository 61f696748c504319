package cmd

import (
	"os"

	"github.com/pirakansa/contract/core"
	"github.com/pirakansa/contract/internal/loader"
	"github.com/pirakansa/contract/internal/outwriter"
	"github.com/pirakansa/contract/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// validateCmd checks contract documents against the embedded JSON schema.
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a contract file against the schema",
	Long: `Validate checks that a contract file is well-formed YAML and conforms to
the contract schema. With --with-profile the declared profile document is
validated as well. Exits 1 when any document is invalid.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveFormat(schema.HumanFormat, schema.JSONFormat)
		if err != nil {
			return err
		}

		configPath := resolveConfigPath()
		if len(args) == 1 {
			configPath = args[0]
		}
		if err := requireContractFile(configPath); err != nil {
			return err
		}

		paths := []string{configPath}
		if viper.GetBool("with-profile") {
			profile, err := loader.ProfileName(configPath)
			if err != nil {
				return err
			}
			if profile != "" {
				profilePath := loader.ProfilePath(configPath, profile)
				if _, err := os.Stat(profilePath); err != nil {
					return &loader.ProfileNotFoundError{Path: profilePath}
				}
				paths = append(paths, profilePath)
			}
		}

		var reports []schema.ValidationReport
		valid := true
		for _, path := range paths {
			report, err := loader.ValidateContractFile(path)
			if err != nil {
				return err
			}
			valid = valid && report.Valid
			reports = append(reports, *report)
		}

		if !viper.GetBool("quiet") || !valid || format == schema.JSONFormat {
			if err := outwriter.WriteValidationReports(os.Stdout, reports, format); err != nil {
				return err
			}
		}

		if !valid {
			return core.ErrViolation
		}
		return nil
	},
}
