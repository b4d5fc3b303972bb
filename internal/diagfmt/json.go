package diagfmt

import (
	"encoding/json"
	"io"

	"vb6parse/internal/diag"
	"vb6parse/internal/source"
)

type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

type FixEditJSON struct {
	Location    LocationJSON `json:"location"`
	NewText     string       `json:"new_text"`
	OldText     string       `json:"old_text,omitempty"`
	BeforeLines []string     `json:"before_lines,omitempty"`
	AfterLines  []string     `json:"after_lines,omitempty"`
}

type FixJSON struct {
	Title string        `json:"title"`
	Edits []FixEditJSON `json:"edits,omitempty"`
}

type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
	Fixes    []FixJSON    `json:"fixes,omitempty"`
}

type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Dropped     int              `json:"dropped,omitempty"`
}

func makeLocation(span source.Span, fs *source.FileSet, opts JSONOpts) LocationJSON {
	loc := LocationJSON{StartByte: span.Start, EndByte: span.End}
	if !validSpan(fs, span) {
		return loc
	}
	loc.File = displayPath(fs, fs.Get(span.File), opts.PathMode)
	if opts.IncludePositions {
		s, e := fs.Resolve(span)
		loc.StartLine, loc.StartCol = s.Line, s.Col
		loc.EndLine, loc.EndCol = e.Line, e.Col
	}
	return loc
}

// BuildDiagnosticsOutput собирает структуру вывода без сериализации.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	n := len(items)
	if opts.Max > 0 && opts.Max < n {
		n = opts.Max
	}
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, n), Dropped: bag.Dropped()}
	for _, d := range items[:n] {
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, fs, opts),
		}
		// заметка таймингов: это сам отчёт, её выводим всегда
		if opts.IncludeNotes || d.Code == diag.ObsTimings {
			for _, note := range d.Notes {
				dj.Notes = append(dj.Notes, NoteJSON{Message: note.Msg, Location: makeLocation(note.Span, fs, opts)})
			}
		}
		if opts.IncludeFixes {
			for _, fix := range d.Fixes {
				dj.Fixes = append(dj.Fixes, buildFixJSON(fix, fs, opts))
			}
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}
	out.Count = len(out.Diagnostics)
	return out
}

func buildFixJSON(fix diag.Fix, fs *source.FileSet, opts JSONOpts) FixJSON {
	fj := FixJSON{Title: fix.Title}
	for _, e := range fix.Edits {
		ej := FixEditJSON{Location: makeLocation(e.Span, fs, opts), NewText: e.NewText}
		if validSpan(fs, e.Span) {
			ej.OldText = string(fs.Get(e.Span.File).Slice(e.Span))
		}
		if opts.IncludePreviews {
			if prev, err := buildFixEditPreview(fs, e); err == nil {
				ej.BeforeLines, ej.AfterLines = prev.before, prev.after
			}
		}
		fj.Edits = append(fj.Edits, ej)
	}
	return fj
}

// JSON пишет диагностики одним объектом {"diagnostics": [...], "count": n}.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}
