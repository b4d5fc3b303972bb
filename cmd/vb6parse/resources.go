package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"vb6parse/internal/diag"
	"vb6parse/internal/driver"
	"vb6parse/internal/frx"
	"vb6parse/internal/source"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources [flags] <form|directory|file.frx>...",
	Short: "List binary resources referenced by forms",
	Long: `Resources resolves the "X.frx":offset property values of forms, user
controls and property pages. Arguments ending in .frx, .ctx, .dsx, .pgx or
.dox are scanned directly and every record in them is listed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResources,
}

func init() {
	resourcesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

// resourceRow: одна строка вывода: ссылка из формы или запись из .frx.
type resourceRow struct {
	Source  string   `json:"source"`
	Line    uint32   `json:"line,omitempty"`
	Control string   `json:"control,omitempty"`
	Key     string   `json:"key,omitempty"`
	File    string   `json:"file"`
	Offset  int      `json:"offset"`
	Kind    string   `json:"kind"`
	Size    int      `json:"size"`
	Items   []string `json:"items,omitempty"`
	Text    string   `json:"text,omitempty"`
}

func isResourceFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".frx", ".ctx", ".dsx", ".pgx", ".dox":
		return true
	}
	return false
}

func runResources(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	var forms, blobs []string
	for _, a := range args {
		if isResourceFile(a) {
			blobs = append(blobs, a)
		} else {
			forms = append(forms, a)
		}
	}

	var rows []resourceRow
	failed := false
	for _, path := range blobs {
		bag := diag.NewBag(0)
		rf, openErr := frx.Open(path, diag.BagReporter{Bag: bag})
		if openErr != nil {
			return openErr
		}
		for _, e := range rf.Entries() {
			rows = append(rows, entryRow(path, path, e))
		}
		for _, d := range bag.Items() {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s %s: %s\n", path, d.Severity, d.Code.ID(), d.Message)
		}
		failed = failed || bag.HasErrors()
	}

	if len(forms) > 0 {
		opts, optErr := driverOptions(cmd)
		if optErr != nil {
			return optErr
		}
		opts.Resources = true
		fileSet, results, parseErr := driver.ParseFiles(cmd.Context(), forms, opts)
		if parseErr != nil {
			return fmt.Errorf("parsing failed: %w", parseErr)
		}
		if err := printDiagnostics(cmd, fileSet, results); err != nil {
			return err
		}
		rows = append(rows, formRows(cmd, fileSet, results)...)
		failed = failed || driver.CountErrors(results) > 0
	}

	if err := writeRows(cmd.OutOrStdout(), rows, format); err != nil {
		return err
	}
	if failed {
		return exitError{code: 1}
	}
	return nil
}

func formRows(cmd *cobra.Command, fileSet *source.FileSet, results []*driver.Result) []resourceRow {
	var rows []resourceRow
	for _, r := range results {
		if r == nil || !r.Loaded {
			continue
		}
		src := displayPath(cmd, fileSet, r)
		for _, res := range r.Resources {
			row := entryRow(src, res.File, res.Entry)
			start, _ := fileSet.Resolve(res.Span)
			row.Line = start.Line
			row.Control = res.Control
			row.Key = res.Key
			rows = append(rows, row)
		}
	}
	return rows
}

func entryRow(src, file string, e frx.Entry) resourceRow {
	row := resourceRow{
		Source: src,
		File:   file,
		Offset: e.Offset,
		Kind:   e.Kind.String(),
		Size:   e.Size,
		Items:  e.Items,
	}
	if e.Kind != frx.KindList && len(e.Data) > 0 && isPrintable(e.Data) {
		if text, err := frx.DecodeText(e.Data); err == nil {
			row.Text = text
		}
	}
	return row
}

// isPrintable: подписи и тексты показываем, картинки нет.
func isPrintable(b []byte) bool {
	for _, c := range b {
		if c < 0x20 && c != '\t' && c != '\r' && c != '\n' {
			return false
		}
	}
	return true
}

func writeRows(w io.Writer, rows []resourceRow, format string) error {
	if format == "json" {
		if rows == nil {
			rows = []resourceRow{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	for _, r := range rows {
		where := r.Source
		if r.Line > 0 {
			where = fmt.Sprintf("%s:%d %s.%s", r.Source, r.Line, r.Control, r.Key)
		}
		if _, err := fmt.Fprintf(w, "%s -> %s@0x%04X %s %d bytes", where, filepath.Base(r.File), r.Offset, r.Kind, r.Size); err != nil {
			return err
		}
		var extra string
		switch {
		case len(r.Items) > 0:
			extra = fmt.Sprintf(" %q", r.Items)
		case r.Text != "":
			extra = fmt.Sprintf(" %q", r.Text)
		}
		if _, err := fmt.Fprintln(w, extra); err != nil {
			return err
		}
	}
	return nil
}
