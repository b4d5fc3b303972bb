package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"vb6parse/internal/diagfmt"
	"vb6parse/internal/driver"
	"vb6parse/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file|directory|->...",
	Short: "Parse VB6 sources and print their syntax trees",
	Long: `Parse builds the lossless syntax tree of each VB6 file (or every source
under a directory) and prints it. "-" reads a single file from stdin.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json|msgpack)")
	parseCmd.Flags().Bool("spans", false, "print byte ranges in tree output")
	parseCmd.Flags().Bool("no-trivia", false, "hide trivia tokens in tree output")
	parseCmd.Flags().Int("max-depth", 0, "limit tree output depth (0=unlimited)")
	parseCmd.Flags().Bool("resources", false, "resolve .frx references of forms and controls")
	parseCmd.Flags().String("stdin-name", "stdin.bas", "file name used for diagnostics when reading stdin")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}

	var (
		fileSet *source.FileSet
		results []*driver.Result
	)
	if len(args) == 1 && args[0] == "-" {
		name, _ := cmd.Flags().GetString("stdin-name")
		content, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		var r *driver.Result
		fileSet, r, err = driver.ParseBytes(cmd.Context(), name, content, opts)
		results = []*driver.Result{r}
	} else {
		fileSet, results, err = driver.ParseFiles(cmd.Context(), args, opts)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if err := printDiagnostics(cmd, fileSet, results); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "tree":
		err = printTrees(cmd, out, fileSet, results)
	case "json", "msgpack":
		ef, _ := driver.ParseExportFormat(format)
		err = driver.Export(out, fileSet, results, ef)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	return failOnErrors(results)
}

func printTrees(cmd *cobra.Command, out io.Writer, fileSet *source.FileSet, results []*driver.Result) error {
	flags := cmd.Flags()
	spans, _ := flags.GetBool("spans")
	noTrivia, _ := flags.GetBool("no-trivia")
	maxDepth, _ := flags.GetInt("max-depth")
	opts := diagfmt.TreeOpts{
		Color:    useColor(cmd, out),
		Trivia:   !noTrivia,
		Spans:    spans,
		MaxDepth: maxDepth,
	}
	multi := len(results) > 1
	for i, r := range results {
		if r == nil || r.Tree == nil {
			continue
		}
		if multi && !quiet(cmd) {
			if err := writeHeader(out, displayPath(cmd, fileSet, r), i == 0); err != nil {
				return err
			}
		}
		if err := diagfmt.FormatTree(out, r.Tree, opts); err != nil {
			return err
		}
	}
	return nil
}
