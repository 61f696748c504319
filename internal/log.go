// Package internal has helpers shared by the contract commands.
package internal

import (
	"fmt"
	"io"
	"os"
)

// stderr is swappable for tests.
var stderr io.Writer = os.Stderr

// FatalError reports an unrecoverable setup failure and exits with the
// configuration-failure code.
func FatalError(msg string, err error) {
	fmt.Fprintf(stderr, "contract: %s: %v\n", msg, err)
	os.Exit(2)
}

// Warning prints a warning without affecting the run outcome.
func Warning(msg string) {
	fmt.Fprintf(stderr, "contract: warning: %s\n", msg)
}
