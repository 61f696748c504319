package cmd

import (
	"github.com/pirakansa/contract/internal/loader"
	"github.com/spf13/cobra"
)

// schemaCmd prints the contract JSON schema for editor integration.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the contract JSON schema",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Print(loader.SchemaJSON())
	},
}
