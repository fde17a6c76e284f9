// Command estreeparse is the CLI driver: parse one or more ECMAScript
// source files and either print their ESTree JSON or report the first
// syntax error.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := rootCmd.Execute(); err != nil {
		// errSilent means a diagnostic was already printed by printDiagnostic.
		if err != errSilent {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
