package parser

import (
	"vb6parse/internal/diag"
	"vb6parse/internal/source"
	"vb6parse/internal/syntax"
)

// recoverRest репортит ошибку и заворачивает остаток оператора (до ':' или
// конца строки) в узел Unknown.
func (p *Parser) recoverRest(code diag.Code, msg string) {
	sp := p.getDiagnosticSpan()
	p.errAt(code, sp, msg)
	p.skipUnknown()
	p.traceRecovery(msg, sp)
}

// skipUnknown молча заворачивает остаток оператора в Unknown.
func (p *Parser) skipUnknown() {
	if p.atStmtEnd() {
		return
	}
	p.startNode(syntax.Unknown)
	for !p.atStmtEnd() {
		p.bump()
	}
	p.finishNode()
}

// recoverLine используется, когда оператор не распознан вовсе: вся
// строка до ':' или перевода строки становится Unknown-оператором.
func (p *Parser) recoverLine(code diag.Code, msg string) {
	sp := p.cur().Span
	p.errAt(code, sp, msg)
	p.startNode(syntax.Unknown)
	p.bump()
	for !p.atStmtEnd() {
		p.bump()
	}
	p.endStatement()
	p.finishNode()
	p.traceRecovery(msg, sp)
}

// closeUnclosed репортит блок, не закрытый до конца файла или до
// терминатора внешнего блока, и предлагает вставить закрывающую строку.
func (p *Parser) closeUnclosed(header source.Span, what, closing string) {
	at := p.getDiagnosticSpan()
	fix := &diag.Fix{
		Title: "insert '" + closing + "'",
		Edits: []diag.FixEdit{diag.Insertion(at, closing+"\n")},
	}
	p.report(diag.SynUnclosedBlock, diag.SevError, header, what+" is not closed, expected '"+closing+"'", fix)
	p.traceRecovery("unclosed "+what, header)
}
