package lexer

import (
	"vb6parse/internal/diag"
	"vb6parse/internal/source"
)

// Options настраивает лексер. Reporter может быть nil: тогда ошибки
// лексики видны только как Unknown-токены.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	// после Reset повторно не репортим то, что уже было отправлено
	if sp.Start < lx.reported {
		return
	}
	lx.reported = sp.End
	if sp.Empty() {
		lx.reported = sp.End + 1
	}
	diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
}
