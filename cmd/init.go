package cmd

import (
	"errors"

	"github.com/pirakansa/contract/core"
	"github.com/pirakansa/contract/internal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd scaffolds a starter contract in the working directory.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter contract file",
	Long: `Init writes a starter contract file into the current directory. With
--from-repo the required files are seeded from what already exists; with
--profile a matching profile document is created alongside.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		outcome, err := core.Scaffold(".", core.InitOptions{
			OutputPath: viper.GetString("output"),
			Profile:    viper.GetString("profile"),
			FromRepo:   viper.GetBool("from-repo"),
			Force:      viper.GetBool("force"),
		})
		if err != nil {
			var exists *core.AlreadyExistsError
			if errors.As(err, &exists) {
				internal.Warning(exists.Error() + " (use --force to overwrite)")
				return core.ErrViolation
			}
			return err
		}
		for _, path := range outcome.Created {
			cmd.Printf("Created: %s\n", path)
		}
		return nil
	},
}
