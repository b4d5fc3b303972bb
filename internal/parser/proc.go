package parser

import (
	"vb6parse/internal/diag"
	"vb6parse/internal/syntax"
)

// parseProcedure: [mods] Sub|Function|Property Get|Let|Set name [(params)] [As T]
// ... End Sub|Function|Property
func (p *Parser) parseProcedure() {
	header := p.cur().Span
	i := 0
	for isModifier(p.kwAt(i)) {
		i++
	}
	kw := p.kwAt(i)
	node, bk := syntax.SubStatement, blockSub
	switch kw {
	case syntax.FunctionKeyword:
		node, bk = syntax.FunctionStatement, blockFunction
	case syntax.PropertyKeyword:
		node, bk = syntax.PropertyStatement, blockProperty
	}

	p.startNode(node)
	p.bumpModifiers()
	p.bumpKeyword(kw)
	if kw == syntax.PropertyKeyword {
		if !p.eatKeyword(syntax.GetKeyword) && !p.eatKeyword(syntax.LetKeyword) && !p.eatKeyword(syntax.SetKeyword) {
			p.err(diag.SynExpectKeyword, "expected 'Get', 'Let' or 'Set', got "+describe(p.cur()))
		}
	}
	p.expectName("procedure name")
	if p.at(syntax.LeftParen) {
		p.parseParameterList()
	}
	if p.atKeyword(syntax.AsKeyword) {
		p.parseTypeClause()
	}
	header = header.Cover(p.lastSpan)
	p.endStatement()

	if p.parseBody(bk, header) {
		p.bumpKeyword(syntax.EndKeyword)
		p.bumpKeyword(kw)
		p.endStatement()
	} else {
		name := kwName(kw)
		p.closeUnclosed(header, "'"+name+"'", "End "+name)
	}
	p.finishNode()
}

// parseParameterList: ( [param {, param}] )
func (p *Parser) parseParameterList() {
	p.startNode(syntax.ParameterList)
	p.bump() // (
	if !p.at(syntax.RightParen) {
		for {
			p.parseParameter()
			if !p.eat(syntax.Comma) {
				break
			}
		}
	}
	if !p.expect(syntax.RightParen, "')'") {
		p.skipToParen()
	}
	p.finishNode()
}

// parseParameter: [Optional] [ByVal|ByRef] [ParamArray] name[()] [As T] [= default]
func (p *Parser) parseParameter() {
	p.startNode(syntax.Parameter)
	p.eatKeyword(syntax.OptionalKeyword)
	if !p.eatKeyword(syntax.ByValKeyword) {
		p.eatKeyword(syntax.ByRefKeyword)
	}
	p.eatKeyword(syntax.ParamArrayKeyword)
	if p.expectName("parameter name") {
		if p.at(syntax.LeftParen) && p.peekSig(1).Kind == syntax.RightParen {
			p.bump()
			p.bump()
		}
		if p.atKeyword(syntax.AsKeyword) {
			p.parseTypeClause()
		}
		if p.eat(syntax.Equal) {
			p.parseExpr()
		}
	}
	p.finishNode()
}

// skipToParen заворачивает мусор в списке параметров в Unknown до ')' или конца строки.
func (p *Parser) skipToParen() {
	if p.atStmtEnd() {
		return
	}
	p.startNode(syntax.Unknown)
	for !p.atStmtEnd() && !p.at(syntax.RightParen) {
		p.bump()
	}
	p.finishNode()
	p.eat(syntax.RightParen)
}
