package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vb6parse/internal/diag"
	"vb6parse/internal/diagfmt"
	"vb6parse/internal/driver"
	"vb6parse/internal/observ"
	"vb6parse/internal/source"
	"vb6parse/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file|directory>...",
	Short: "Report diagnostics for VB6 sources",
	Long: `Check parses every given file and every VB6 source under the given
directories and reports lexical, syntax and resource diagnostics.
The exit status is 1 when any error was found.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|sarif)")
	checkCmd.Flags().Bool("resources", false, "resolve .frx references of forms and controls")
	checkCmd.Flags().Bool("cache", false, "reuse diagnostics of unchanged files")
	checkCmd.Flags().String("cache-dir", "", "cache directory (default: $XDG_CACHE_HOME/vb6parse)")
	checkCmd.Flags().Bool("clear-cache", false, "drop the cache before checking")
	mode := uiModeAuto
	checkCmd.Flags().Var(&mode, "ui", "progress view for directories (auto|on|off)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	format, err := flags.GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "sarif":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}
	if opts.Cache, err = openCache(cmd); err != nil {
		return err
	}
	mode := *flags.Lookup("ui").Value.(*uiMode)

	files, err := driver.Collect(args)
	if err != nil {
		return err
	}

	var (
		fileSet *source.FileSet
		results []*driver.Result
	)
	if progressView(mode, len(files), format, quiet(cmd), stderrIsTerminal()) {
		fileSet, results, err = runCheckWithUI(cmd.Context(), "checking", files, opts)
	} else {
		fileSet, results, err = driver.ParseFiles(cmd.Context(), args, opts)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		pm, pmErr := pathMode(cmd)
		if pmErr != nil {
			return pmErr
		}
		err = diagfmt.JSON(out, mergedBag(results), fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pm,
			IncludeNotes:     true,
			IncludeFixes:     true,
		})
	case "sarif":
		err = diagfmt.Sarif(out, mergedBag(results), fileSet, diagfmt.SarifRunMeta{
			ToolName:       "vb6parse",
			ToolVersion:    version.Version,
			InvocationArgs: os.Args[1:],
		})
	default:
		if err = printDiagnostics(cmd, fileSet, results); err == nil && !quiet(cmd) {
			err = printSummary(cmd, results, opts.Timings)
		}
	}
	if err != nil {
		return err
	}
	return failOnErrors(results)
}

func openCache(cmd *cobra.Command) (*driver.DiskCache, error) {
	flags := cmd.Flags()
	enabled, _ := flags.GetBool("cache")
	dropCache, _ := flags.GetBool("clear-cache")
	if !enabled && !dropCache {
		return nil, nil
	}
	dir, _ := flags.GetString("cache-dir")
	cache, err := driver.OpenDiskCache(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	if dropCache {
		if err := cache.DropAll(); err != nil {
			return nil, fmt.Errorf("failed to clear cache: %w", err)
		}
	}
	if !enabled {
		return nil, nil
	}
	return cache, nil
}

func printSummary(cmd *cobra.Command, results []*driver.Result, timings bool) error {
	var errs, warns, cached int
	reports := make([]observ.Report, 0, len(results))
	for _, r := range results {
		if r == nil {
			continue
		}
		for _, d := range r.Bag.Items() {
			switch d.Severity {
			case diag.SevError:
				errs++
			case diag.SevWarning:
				warns++
			}
		}
		if r.Cached {
			cached++
		}
		if r.Timing != nil {
			reports = append(reports, *r.Timing)
		}
	}
	w := cmd.ErrOrStderr()
	line := fmt.Sprintf("%d files, %d errors, %d warnings", len(results), errs, warns)
	if cached > 0 {
		line += fmt.Sprintf(" (%d cached)", cached)
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	if timings && len(reports) > 0 {
		total := observ.Aggregate(reports)
		if _, err := fmt.Fprintln(w, total.Summary()); err != nil {
			return err
		}
	}
	return nil
}
