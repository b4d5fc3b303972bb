package parser

import (
	"strconv"
	"time"

	"vb6parse/internal/diag"
	"vb6parse/internal/source"
	"vb6parse/internal/syntax"
	"vb6parse/internal/trace"
)

// getDiagnosticSpan: лучший span для диагностики: текущий токен, а на
// конце строки или файла: пустая позиция сразу после последнего токена.
func (p *Parser) getDiagnosticSpan() source.Span {
	cur := p.cur()
	if cur.Kind == syntax.EOF || cur.Kind == syntax.Newline {
		if p.lastSpan.End > 0 {
			return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
		}
	}
	return cur.Span
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.getDiagnosticSpan(), msg, nil)
}

func (p *Parser) errAt(code diag.Code, sp source.Span, msg string) {
	p.report(code, diag.SevError, sp, msg, nil)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string, fix *diag.Fix) {
	if sev == diag.SevError {
		p.errors++
	}
	if p.opts.Reporter == nil || p.capHit {
		return
	}
	if p.opts.MaxErrors > 0 && p.errors > p.opts.MaxErrors {
		p.capHit = true
		diag.ReportError(p.opts.Reporter, diag.SynTooManyErrors, sp,
			"too many syntax errors, further errors in this file are not reported").Emit()
		return
	}
	rb := diag.NewReportBuilder(p.opts.Reporter, sev, code, sp, msg)
	if fix != nil {
		rb.WithFix(fix.Title, fix.Edits...)
	}
	rb.Emit()
}

// traceRecovery отправляет point-событие о восстановлении после ошибки.
func (p *Parser) traceRecovery(what string, sp source.Span) {
	tr := p.opts.Tracer
	if tr == nil || !tr.Level().ShouldEmit(trace.ScopeNode) {
		return
	}
	tr.Emit(&trace.Event{
		Time:     time.Now(),
		Seq:      trace.NextSeq(),
		Kind:     trace.KindPoint,
		Scope:    trace.ScopeNode,
		ParentID: p.opts.Trace.SpanID,
		Name:     "recover",
		Detail:   what,
		Extra: p.opts.Trace.Annotate(map[string]string{
			"start": strconv.FormatUint(uint64(sp.Start), 10),
			"end":   strconv.FormatUint(uint64(sp.End), 10),
		}),
	})
}
