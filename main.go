// main is the entrypoint for the contract CLI.
package main

import (
	"os"

	"github.com/pirakansa/contract/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
