package parser

import (
	"vb6parse/internal/diag"
	"vb6parse/internal/syntax"
)

// parseAssignOrCall: оператор без ключевого слова: разбираем голову
// выражения и смотрим на '='.
//
//	x = 1           AssignmentStatement
//	obj.Prop(i) = v AssignmentStatement
//	MsgBox "hi", 1  CallStatement с неявными аргументами
//	Form1.Show      CallStatement
func (p *Parser) parseAssignOrCall() {
	if p.atReserved() {
		p.recoverLine(diag.SynUnexpectedToken, "unexpected keyword "+describe(p.cur())+" at start of statement")
		return
	}
	p.eatTrivia()
	cp := p.b.Checkpoint()
	p.parsePostfixExpr(true)
	if p.at(syntax.Equal) {
		p.b.StartNodeAt(cp, syntax.AssignmentStatement)
		p.bump()
		p.parseExpr()
	} else {
		p.b.StartNodeAt(cp, syntax.CallStatement)
		if !p.atStmtEnd() {
			p.parseImplicitArgs()
		}
	}
	p.endStatement()
	p.finishNode()
}

// Call Foo(a, b)
func (p *Parser) parseCallStatement() {
	p.startNode(syntax.CallStatement)
	p.bumpKeyword(syntax.CallKeyword)
	p.parsePostfixExpr(false)
	p.endStatement()
	p.finishNode()
}

// Set x = e / Let x = e
func (p *Parser) parseSetLetStatement(node, kw syntax.Kind) {
	p.startNode(node)
	p.bumpKeyword(kw)
	p.parsePostfixExpr(false)
	if p.expect(syntax.Equal, "'='") {
		p.parseExpr()
	}
	p.endStatement()
	p.finishNode()
}

// RaiseEvent Name[(args)]
func (p *Parser) parseRaiseEventStatement() {
	p.startNode(syntax.RaiseEventStatement)
	p.bumpKeyword(syntax.RaiseEventKeyword)
	if p.expectName("event name") && p.at(syntax.LeftParen) {
		p.parseArgumentList()
	}
	p.endStatement()
	p.finishNode()
}
