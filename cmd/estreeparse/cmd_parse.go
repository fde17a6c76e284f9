package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jimmyhmiller/estree-go/internal/ast"
	"github.com/jimmyhmiller/estree-go/internal/diag"
	"github.com/jimmyhmiller/estree-go/internal/logger"
	"github.com/jimmyhmiller/estree-go/pkg/estree"
	"github.com/jimmyhmiller/estree-go/pkg/estreejson"
)

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	contents, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	prog, err := parseWithSourceType(string(contents), parseSourceType)
	if err != nil {
		wrapped := errors.WithMessage(err, path)
		printDiagnostic(path, string(contents), wrapped)
		return errSilent
	}

	var out []byte
	if parsePretty {
		out, err = estreejson.MarshalIndent(prog, "", "  ")
	} else {
		out, err = estreejson.Marshal(prog)
	}
	if err != nil {
		return err
	}

	if verbose {
		log.Info().Str("file", path).Int("bodyLen", len(prog.Body)).Msg("parsed")
	}

	fmt.Println(string(out))
	return nil
}

func parseWithSourceType(src, sourceType string) (*ast.Program, error) {
	switch sourceType {
	case "script":
		return estree.ParseScript(src)
	case "module":
		return estree.ParseModule(src)
	default:
		return estree.ParseAutoDetect(src)
	}
}

// errSilent signals that the error has already been printed to stderr in
// diagnostic form, so cobra/main should just exit non-zero without
// printing it again.
var errSilent = errors.New("")

func printDiagnostic(path, contents string, err error) {
	var de *diag.Error
	cause := errors.Cause(err)
	if e, ok := cause.(*diag.Error); ok {
		de = e
	} else {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
		return
	}

	source := &logger.Source{PrettyPath: path, Contents: contents}
	info := logger.GetTerminalInfo(os.Stderr)
	fmt.Fprint(os.Stderr, logger.Render(source, de, info, logger.ColorIfTerminal))

	if verbose {
		log.Error().Str("file", path).Str("id", de.ID()).Int("line", de.Line).Int("column", de.Column).Msg(de.Message)
	}
}
