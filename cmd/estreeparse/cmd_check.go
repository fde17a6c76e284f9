package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func runCheck(cmd *cobra.Command, args []string) error {
	anyFailed := false

	for _, path := range args {
		contents, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		if _, err := parseWithSourceType(string(contents), "auto"); err != nil {
			anyFailed = true
			printDiagnostic(path, string(contents), errors.WithMessage(err, path))
			continue
		}

		if verbose {
			log.Info().Str("file", path).Msg("ok")
		}
	}

	if anyFailed {
		return errSilent
	}
	return nil
}
