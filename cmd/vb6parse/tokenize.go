package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vb6parse/internal/diagfmt"
	"vb6parse/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file>",
	Short: "Tokenize a VB6 source file",
	Long:  `Tokenize breaks a VB6 source file into tokens, trivia included unless --no-trivia is set`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("no-trivia", false, "omit whitespace, newlines, comments and line continuations")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	skipTrivia, err := cmd.Flags().GetBool("no-trivia")
	if err != nil {
		return fmt.Errorf("failed to get no-trivia flag: %w", err)
	}
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}

	fileSet, result, err := driver.Tokenize(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if result == nil {
		return fmt.Errorf("%s: not a VB6 source file", args[0])
	}
	results := []*driver.Result{result}
	if err := printDiagnostics(cmd, fileSet, results); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		err = diagfmt.FormatTokensPretty(out, result.Tokens, fileSet, skipTrivia)
	case "json":
		err = diagfmt.FormatTokensJSON(out, result.Tokens, skipTrivia)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	return failOnErrors(results)
}
