package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"vb6parse/internal/diag"
	"vb6parse/internal/source"
)

type palette struct {
	err, warn, info, code, path, gutter, caret, note, fix, del, add *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan, color.Bold),
		code:   mk(color.Bold),
		path:   mk(color.Bold),
		gutter: mk(color.FgBlue),
		caret:  mk(color.FgRed, color.Bold),
		note:   mk(color.FgCyan),
		fix:    mk(color.FgGreen),
		del:    mk(color.FgRed),
		add:    mk(color.FgGreen),
	}
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty печатает диагностики bag в порядке Items (bag.Sort() заранее):
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  12 | If x Then
//	     |    ^
//
// затем заметки, исправления и превью по опциям.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, &d, fs, opts, p)
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "\n... %d more diagnostics not shown\n", n)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	if !validSpan(fs, d.Primary) {
		fmt.Fprintf(w, "%s %s: %s\n", p.severity(d.Severity).Sprint(d.Severity), p.code.Sprint(d.Code.ID()), d.Message)
		return
	}
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		p.path.Sprintf("%s:%d:%d", displayPath(fs, f, opts.PathMode), start.Line, start.Col),
		p.severity(d.Severity).Sprint(d.Severity),
		p.code.Sprint(d.Code.ID()),
		d.Message)
	if len(f.Content) > 0 {
		snippet(w, f, start, end, opts, p)
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			if !validSpan(fs, n.Span) {
				fmt.Fprintf(w, "%s %s\n", p.note.Sprint("note:"), n.Msg)
				continue
			}
			nf := fs.Get(n.Span.File)
			pos, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "%s %s:%d:%d: %s\n", p.note.Sprint("note:"), displayPath(fs, nf, opts.PathMode), pos.Line, pos.Col, n.Msg)
		}
	}

	if opts.ShowFixes {
		for i, fix := range d.Fixes {
			fmt.Fprintf(w, "%s %s\n", p.fix.Sprintf("fix #%d:", i+1), fix.Title)
			for _, e := range fix.Edits {
				if !validSpan(fs, e.Span) {
					continue
				}
				a, b := fs.Resolve(e.Span)
				fmt.Fprintf(w, "    edit %d:%d-%d:%d apply=%q\n", a.Line, a.Col, b.Line, b.Col, e.NewText)
				if !opts.ShowPreview {
					continue
				}
				prev, err := buildFixEditPreview(fs, e)
				if err != nil {
					continue
				}
				fmt.Fprintln(w, "    preview:")
				for _, l := range prev.before {
					fmt.Fprintf(w, "      %s\n", p.del.Sprint("- "+l))
				}
				for _, l := range prev.after {
					fmt.Fprintf(w, "      %s\n", p.add.Sprint("+ "+l))
				}
			}
		}
	}
}

func validSpan(fs *source.FileSet, sp source.Span) bool {
	return fs != nil && int(sp.File) < fs.Len()
}

// snippet печатает строки start..end с контекстом и подчёркивание первой
// строки. Колонка каретки учитывает ширину символов.
func snippet(w io.Writer, f *source.File, start, end source.LineCol, opts PrettyOpts, p palette) {
	ctx := uint32(max(opts.Context, 0))
	first := start.Line
	if first > ctx {
		first -= ctx
	} else {
		first = 1
	}
	last := end.Line + ctx
	if end.Col == 1 && end.Line > start.Line {
		// спан заканчивается переводом строки
		last--
	}
	lines := uint32(len(f.LineIdx) + 1)
	last = min(last, lines)
	gw := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		text := strings.ReplaceAll(f.GetLine(ln), "\t", "    ")
		if opts.Width > 0 {
			text = runewidth.Truncate(text, int(opts.Width), "…")
		}
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gw+1, ln), text)
		if ln != start.Line {
			continue
		}
		raw := f.GetLine(ln)
		prefix := raw[:min(int(start.Col-1), len(raw))]
		pad := runewidth.StringWidth(strings.ReplaceAll(prefix, "\t", "    "))
		width := 1
		if end.Line == start.Line && end.Col > start.Col {
			seg := raw[min(int(start.Col-1), len(raw)):min(int(end.Col-1), len(raw))]
			width = max(1, runewidth.StringWidth(strings.ReplaceAll(seg, "\t", "    ")))
		}
		marker := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprintf("%*s |", gw+1, ""), strings.Repeat(" ", pad), p.caret.Sprint(marker))
	}
}
