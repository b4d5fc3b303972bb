package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"vb6parse/internal/diag"
	"vb6parse/internal/driver"
	"vb6parse/internal/fix"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file|directory>...",
	Short: "Apply suggested fixes, such as missing block terminators",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply every fix instead of the first one")
	fixCmd.Flags().String("id", "", "apply only the fix with this id")
	fixCmd.Flags().Bool("dry-run", false, "print the fixed text instead of writing files")
	fixCmd.Flags().Bool("list", false, "list available fixes and their ids")
}

func runFix(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	all, _ := flags.GetBool("all")
	id, _ := flags.GetString("id")
	dryRun, _ := flags.GetBool("dry-run")
	list, _ := flags.GetBool("list")

	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}
	fileSet, results, err := driver.ParseFiles(cmd.Context(), args, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	var diagnostics []diag.Diagnostic
	for _, r := range results {
		if r != nil && r.Loaded {
			diagnostics = append(diagnostics, r.Bag.Items()...)
		}
	}

	out := cmd.OutOrStdout()
	if list {
		for _, d := range diagnostics {
			for i, f := range d.Fixes {
				start, _ := fileSet.Resolve(d.Primary)
				path := fileSet.Get(d.Primary.File).FormatPath("auto", fileSet.BaseDir())
				if _, err := fmt.Fprintf(out, "%s  %s:%d  %s\n", fix.FixID(d, i), path, start.Line, f.Title); err != nil {
					return err
				}
			}
		}
		return nil
	}

	applyOpts := fix.ApplyOptions{Mode: fix.ApplyModeOnce, DryRun: dryRun}
	switch {
	case id != "":
		applyOpts.Mode, applyOpts.TargetID = fix.ApplyModeID, id
	case all:
		applyOpts.Mode = fix.ApplyModeAll
	}
	res, err := fix.Apply(fileSet, diagnostics, applyOpts)
	errOut := cmd.ErrOrStderr()
	for _, s := range res.Skipped {
		fmt.Fprintf(errOut, "skipped %s: %s\n", s.ID, s.Reason)
	}
	if errors.Is(err, fix.ErrNoFixes) {
		if !quiet(cmd) {
			fmt.Fprintln(errOut, "no fixes applied")
		}
		return nil
	}
	if err != nil {
		return err
	}
	if !quiet(cmd) {
		for _, a := range res.Applied {
			fmt.Fprintf(errOut, "applied %s: %s (%s)\n", a.ID, a.Title, a.PrimaryPath)
		}
	}
	for i, ch := range res.FileChanges {
		if dryRun {
			if len(res.FileChanges) > 1 {
				if err := writeHeader(out, ch.Path, i == 0); err != nil {
					return err
				}
			}
			if _, err := out.Write(ch.Content); err != nil {
				return err
			}
			continue
		}
		if !quiet(cmd) {
			fmt.Fprintf(errOut, "%s: %d edits\n", ch.Path, ch.EditCount)
		}
	}
	return nil
}
