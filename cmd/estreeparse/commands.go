package main

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "estreeparse",
	Short: "Parse ECMAScript source into ESTree JSON",
	Long: `estreeparse parses JavaScript source text and either prints the
resulting ESTree-shaped syntax tree as JSON or reports the first syntax
error it finds.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var (
	parseSourceType string
	parsePretty     bool

	parseCmd = &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and print its ESTree JSON to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse, // defined in cmd_parse.go
	}

	checkCmd = &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse each file, reporting syntax errors without printing the tree",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheck, // defined in cmd_check.go
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "emit a one-line structured log entry per file")

	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVar(&parseSourceType, "source-type", "auto", "script | module | auto")
	parseCmd.Flags().BoolVar(&parsePretty, "pretty", false, "indent the printed JSON")

	rootCmd.AddCommand(checkCmd)
}
