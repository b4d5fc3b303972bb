package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vb6parse/internal/diag"
	"vb6parse/internal/diagfmt"
	"vb6parse/internal/driver"
	"vb6parse/internal/source"
)

// setupColor переключает fatih/color глобально; diagfmt получает тот же
// выбор через PrettyOpts.Color.
func setupColor(cmd *cobra.Command) {
	color.NoColor = !useColor(cmd, os.Stdout)
}

// useColor решает для конкретного writer: auto включает цвет только на
// терминале.
func useColor(cmd *cobra.Command, w io.Writer) bool {
	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return false
	}
	switch strings.ToLower(colorFlag) {
	case "on", "always":
		return true
	case "off", "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f) && os.Getenv("NO_COLOR") == ""
}

func driverOptions(cmd *cobra.Command) (driver.Options, error) {
	flags := cmd.Flags()
	var opts driver.Options
	var err error
	if opts.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if opts.MaxErrors, err = flags.GetUint("max-errors"); err != nil {
		return opts, fmt.Errorf("failed to get max-errors flag: %w", err)
	}
	if opts.Jobs, err = flags.GetInt("jobs"); err != nil {
		return opts, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if opts.Timings, err = flags.GetBool("timings"); err != nil {
		return opts, fmt.Errorf("failed to get timings flag: %w", err)
	}
	enc, err := flags.GetString("encoding")
	if err != nil {
		return opts, fmt.Errorf("failed to get encoding flag: %w", err)
	}
	if opts.Encoding, err = driver.ParseEncoding(enc); err != nil {
		return opts, err
	}
	if flags.Lookup("resources") != nil {
		if opts.Resources, err = flags.GetBool("resources"); err != nil {
			return opts, fmt.Errorf("failed to get resources flag: %w", err)
		}
	}
	return opts, nil
}

func pathMode(cmd *cobra.Command) (diagfmt.PathMode, error) {
	s, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return diagfmt.PathModeAuto, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	mode, ok := diagfmt.ParsePathMode(s)
	if !ok {
		return diagfmt.PathModeAuto, fmt.Errorf("invalid --path-mode value %q (expected auto|absolute|relative|basename)", s)
	}
	return mode, nil
}

func prettyOpts(cmd *cobra.Command) (diagfmt.PrettyOpts, error) {
	mode, err := pathMode(cmd)
	if err != nil {
		return diagfmt.PrettyOpts{}, err
	}
	return diagfmt.PrettyOpts{
		Color:     useColor(cmd, cmd.ErrOrStderr()),
		Context:   2,
		PathMode:  mode,
		ShowNotes: true,
		ShowFixes: true,
	}, nil
}

func quiet(cmd *cobra.Command) bool {
	q, err := cmd.Flags().GetBool("quiet")
	return err == nil && q
}

// printDiagnostics выводит диагностику всех файлов в stderr.
func printDiagnostics(cmd *cobra.Command, fileSet *source.FileSet, results []*driver.Result) error {
	opts, err := prettyOpts(cmd)
	if err != nil {
		return err
	}
	for _, r := range results {
		if r == nil || r.Bag.Len() == 0 {
			continue
		}
		if quiet(cmd) && !r.Bag.HasErrors() {
			continue
		}
		diagfmt.Pretty(cmd.ErrOrStderr(), r.Bag, fileSet, opts)
	}
	return nil
}

// mergedBag собирает диагностику всех файлов для JSON и SARIF.
func mergedBag(results []*driver.Result) *diag.Bag {
	bag := diag.NewBag(0)
	for _, r := range results {
		if r != nil {
			bag.Merge(r.Bag)
		}
	}
	bag.Sort()
	return bag
}

func displayPath(cmd *cobra.Command, fileSet *source.FileSet, r *driver.Result) string {
	if !r.Loaded {
		return r.Path
	}
	mode, err := pathMode(cmd)
	if err != nil {
		mode = diagfmt.PathModeAuto
	}
	return fileSet.Get(r.FileID).FormatPath(mode.String(), fileSet.BaseDir())
}

func writeHeader(w io.Writer, path string, first bool) error {
	if !first {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "== %s ==\n", path)
	return err
}

// failOnErrors превращает ошибки в исходниках в код выхода 1.
func failOnErrors(results []*driver.Result) error {
	if driver.CountErrors(results) > 0 {
		return exitError{code: 1}
	}
	return nil
}
