package diag

import "vb6parse/internal/source"

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// Insertion is a zero-width edit placing text at the start of at.
// Parser fixes are insertions of missing closing lines ("End If").
func Insertion(at source.Span, text string) FixEdit {
	return FixEdit{Span: source.Span{File: at.File, Start: at.Start, End: at.Start}, NewText: text}
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}
