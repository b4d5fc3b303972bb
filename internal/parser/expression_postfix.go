package parser

import (
	"vb6parse/internal/cst"
	"vb6parse/internal/diag"
	"vb6parse/internal/syntax"
)

// parsePostfixExpr: первичное выражение и цепочка вызовов/членов.
// head=true: голова оператора. Тогда "(" или "." после пробела уже
// начинают аргументы неявного вызова: MsgBox (x), y / Foo .Bar
func (p *Parser) parsePostfixExpr(head bool) bool {
	p.eatTrivia()
	cp := p.b.Checkpoint()
	if !p.parsePrimaryExpr() {
		return false
	}
	p.parsePostfixOps(cp, head)
	return true
}

func (p *Parser) parsePostfixOps(cp cst.Checkpoint, head bool) {
	for {
		switch p.cur().Kind {
		case syntax.LeftParen:
			if head && p.spaceBefore() {
				return
			}
			p.b.StartNodeAt(cp, syntax.CallExpression)
			p.parseArgumentList()
			p.finishNode()
		case syntax.Period, syntax.Bang:
			if head && p.spaceBefore() {
				return
			}
			p.b.StartNodeAt(cp, syntax.MemberAccessExpression)
			p.bump()
			p.bumpMemberName()
			p.finishNode()
		default:
			return
		}
	}
}

// bumpMemberName: имя после '.' или '!' всегда Identifier, даже если это
// ключевое слово (obj.Name, rs!Type, frm.Print).
func (p *Parser) bumpMemberName() {
	if p.atWord() && !p.spaceBefore() {
		p.bump()
		return
	}
	p.err(diag.SynExpectIdentifier, "expected member name, got "+describe(p.cur()))
}

// parseArgumentList: ( [arg] {, [arg]} ) с пропусками: f(a, , c).
func (p *Parser) parseArgumentList() {
	p.startNode(syntax.ArgumentList)
	p.bump() // (
	p.parseArgs(func() bool { return p.at(syntax.RightParen) }, false)
	p.expect(syntax.RightParen, "')'")
	p.finishNode()
}

// parseImplicitArgs: аргументы вызова без скобок до конца оператора.
// Разделители ',' и ';' (Debug.Print a; b).
func (p *Parser) parseImplicitArgs() {
	p.startNode(syntax.ArgumentList)
	p.parseArgs(func() bool { return false }, true)
	p.finishNode()
}

func (p *Parser) parseArgs(stop func() bool, semis bool) {
	for {
		if p.at(syntax.Comma) || (semis && p.at(syntax.Semicolon)) {
			p.bump()
			continue
		}
		if stop() || p.atStmtEnd() {
			return
		}
		before := p.consumed
		p.parseArgument()
		if p.consumed == before {
			return
		}
		if !p.at(syntax.Comma) && !(semis && p.at(syntax.Semicolon)) {
			return
		}
	}
}

// parseArgument: [ByVal|ByRef] e | name := e | #e
// Файловый номер "#1" встречается в функциях ввода: Input(n, #1), EOF(#1).
func (p *Parser) parseArgument() {
	p.startNode(syntax.Argument)
	switch {
	case p.atWord() && p.peekSig(1).Kind == syntax.ColonEqual:
		p.bump()
		p.bump()
	case p.atKeyword(syntax.ByValKeyword), p.atKeyword(syntax.ByRefKeyword):
		p.bumpCurrentKeyword()
	case p.at(syntax.Hash):
		p.bump()
	}
	p.parseExpr()
	p.finishNode()
}
