package parser

import (
	"vb6parse/internal/diag"
	"vb6parse/internal/source"
	"vb6parse/internal/syntax"
)

// bumpModifiers съедает Public/Private/Friend/Global/Static подряд.
func (p *Parser) bumpModifiers() {
	for isModifier(p.kwAt(0)) {
		p.bumpCurrentKeyword()
	}
}

// parseModifiedStatement смотрит за модификаторы и выбирает грамматику:
// Private Sub, Public Const, Private Type, Public WithEvents x As Foo...
func (p *Parser) parseModifiedStatement() {
	i := 0
	for isModifier(p.kwAt(i)) {
		i++
	}
	switch p.kwAt(i) {
	case syntax.SubKeyword, syntax.FunctionKeyword, syntax.PropertyKeyword:
		p.parseProcedure()
	case syntax.DeclareKeyword:
		p.parseDeclareStatement()
	case syntax.EventKeyword:
		p.parseEventStatement()
	case syntax.EnumKeyword:
		p.parseEnumStatement()
	case syntax.TypeKeyword:
		p.parseTypeStatement()
	case syntax.ConstKeyword:
		p.parseConstStatement()
	default:
		p.parseDimStatement()
	}
}

// Dim / Private / Public / Global / Static x [(bounds)] [As [New] T], ...
func (p *Parser) parseDimStatement() {
	p.startNode(syntax.DimStatement)
	p.bumpModifiers()
	p.eatKeyword(syntax.DimKeyword)
	p.parseVariableDeclarations()
	p.endStatement()
	p.finishNode()
}

func (p *Parser) parseVariableDeclarations() {
	for {
		p.parseVariableDeclaration()
		if !p.eat(syntax.Comma) {
			return
		}
	}
}

func (p *Parser) parseVariableDeclaration() {
	p.startNode(syntax.VariableDeclaration)
	p.eatKeyword(syntax.WithEventsKeyword)
	if p.expectName("variable name") {
		if p.at(syntax.LeftParen) {
			p.parseArrayBounds()
		}
		if p.atKeyword(syntax.AsKeyword) {
			p.parseTypeClause()
		}
	}
	p.finishNode()
}

// parseArrayBounds: ( [lo To] hi, ... ) или пустые скобки для динамического массива.
func (p *Parser) parseArrayBounds() {
	p.startNode(syntax.ArrayBounds)
	p.bump() // (
	for !p.at(syntax.RightParen) && !p.atStmtEnd() {
		p.startNode(syntax.BoundRange)
		p.parseExpr()
		if p.eatKeyword(syntax.ToKeyword) {
			p.parseExpr()
		}
		p.finishNode()
		if !p.eat(syntax.Comma) {
			break
		}
	}
	p.expect(syntax.RightParen, "')'")
	p.finishNode()
}

// parseTypeClause: As [New] T [* len] [()]
func (p *Parser) parseTypeClause() {
	p.startNode(syntax.TypeClause)
	p.bumpKeyword(syntax.AsKeyword)
	p.eatKeyword(syntax.NewKeyword)
	if p.parseTypeName() {
		if p.eat(syntax.Star) {
			p.parseUnaryExpr()
		}
		if p.at(syntax.LeftParen) && p.peekSig(1).Kind == syntax.RightParen {
			p.bump()
			p.bump()
		}
	}
	p.finishNode()
}

// ReDim [Preserve] a(bounds) [As T], ...
func (p *Parser) parseReDimStatement() {
	p.startNode(syntax.ReDimStatement)
	p.bumpKeyword(syntax.ReDimKeyword)
	p.eatKeyword(syntax.PreserveKeyword)
	for {
		p.startNode(syntax.VariableDeclaration)
		p.parsePostfixTarget()
		if p.at(syntax.LeftParen) {
			p.parseArrayBounds()
		} else {
			p.err(diag.SynUnexpectedToken, "expected array bounds, got "+describe(p.cur()))
		}
		if p.atKeyword(syntax.AsKeyword) {
			p.parseTypeClause()
		}
		p.finishNode()
		if !p.eat(syntax.Comma) {
			break
		}
	}
	p.endStatement()
	p.finishNode()
}

// parsePostfixTarget: имя с цепочкой членов без вызовов (m.arr в ReDim m.arr(5)).
func (p *Parser) parsePostfixTarget() {
	if !p.expectName("array name") {
		return
	}
	for (p.at(syntax.Period) || p.at(syntax.Bang)) && !p.spaceBefore() {
		p.bump()
		p.bumpMemberName()
	}
}

// Erase a, b
func (p *Parser) parseEraseStatement() {
	p.startNode(syntax.EraseStatement)
	p.bumpKeyword(syntax.EraseKeyword)
	for {
		p.parseExpr()
		if !p.eat(syntax.Comma) {
			break
		}
	}
	p.endStatement()
	p.finishNode()
}

// [mods] Const a [As T] = e, ...
func (p *Parser) parseConstStatement() {
	p.startNode(syntax.ConstStatement)
	p.bumpModifiers()
	p.bumpKeyword(syntax.ConstKeyword)
	for {
		p.startNode(syntax.ConstDeclaration)
		if p.expectName("constant name") {
			if p.atKeyword(syntax.AsKeyword) {
				p.parseTypeClause()
			}
			if p.expect(syntax.Equal, "'='") {
				p.parseExpr()
			}
		}
		p.finishNode()
		if !p.eat(syntax.Comma) {
			break
		}
	}
	p.endStatement()
	p.finishNode()
}

// [mods] Type Name ... End Type
func (p *Parser) parseTypeStatement() {
	p.startNode(syntax.TypeStatement)
	header := p.cur().Span
	p.bumpModifiers()
	p.bumpKeyword(syntax.TypeKeyword)
	p.expectName("type name")
	header = header.Cover(p.lastSpan)
	p.endStatement()
	p.parseMembers(syntax.TypeKeyword, func() {
		p.startNode(syntax.TypeMember)
		p.bump()
		if p.at(syntax.LeftParen) {
			p.parseArrayBounds()
		}
		if p.atKeyword(syntax.AsKeyword) {
			p.parseTypeClause()
		} else {
			p.err(diag.SynExpectKeyword, "expected 'As' in type member, got "+describe(p.cur()))
		}
		p.endStatement()
		p.finishNode()
	})
	p.closeMembers(syntax.TypeKeyword, header, "'Type'", "End Type")
	p.finishNode()
}

// [mods] Enum Name ... End Enum
func (p *Parser) parseEnumStatement() {
	p.startNode(syntax.EnumStatement)
	header := p.cur().Span
	p.bumpModifiers()
	p.bumpKeyword(syntax.EnumKeyword)
	p.expectName("enum name")
	header = header.Cover(p.lastSpan)
	p.endStatement()
	p.parseMembers(syntax.EnumKeyword, func() {
		p.startNode(syntax.EnumMember)
		p.bump()
		if p.eat(syntax.Equal) {
			p.parseExpr()
		}
		p.endStatement()
		p.finishNode()
	})
	p.closeMembers(syntax.EnumKeyword, header, "'Enum'", "End Enum")
	p.finishNode()
}

// parseMembers: тело Type/Enum: по члену на строку до End <kw>.
// Любой другой End или заголовок процедуры тоже останавливает цикл.
func (p *Parser) parseMembers(kw syntax.Kind, member func()) {
	for {
		p.eatTrivia()
		if p.atEOF() || p.atEnd(kw) {
			return
		}
		switch p.cur().Kind {
		case syntax.Newline, syntax.Comment, syntax.RemComment, syntax.Colon:
			p.bump()
			continue
		}
		if p.atKeyword(syntax.EndKeyword) || p.atProcedureHeader() {
			return
		}
		if p.atWord() && !p.atReserved() {
			member()
			continue
		}
		p.recoverLine(diag.SynUnexpectedStatement, "unexpected "+describe(p.cur())+" in "+kwName(kw)+" body")
	}
}

func (p *Parser) closeMembers(kw syntax.Kind, header source.Span, what, closing string) {
	if p.atEnd(kw) {
		p.bumpKeyword(syntax.EndKeyword)
		p.bumpKeyword(kw)
		p.endStatement()
		return
	}
	p.closeUnclosed(header, what, closing)
}

// [mods] Declare Sub|Function name Lib "dll" [Alias "x"] [(params)] [As T]
func (p *Parser) parseDeclareStatement() {
	p.startNode(syntax.DeclareStatement)
	p.bumpModifiers()
	p.bumpKeyword(syntax.DeclareKeyword)
	isFunc := p.atKeyword(syntax.FunctionKeyword)
	if isFunc || p.atKeyword(syntax.SubKeyword) {
		p.bumpCurrentKeyword()
	} else {
		p.err(diag.SynExpectKeyword, "expected 'Sub' or 'Function', got "+describe(p.cur()))
	}
	p.expectName("procedure name")
	if p.expectKeyword(syntax.LibKeyword) {
		p.expectString("library name")
	}
	if p.eatKeyword(syntax.AliasKeyword) {
		p.expectString("alias")
	}
	if p.at(syntax.LeftParen) {
		p.parseParameterList()
	}
	if p.atKeyword(syntax.AsKeyword) {
		p.parseTypeClause()
	}
	p.endStatement()
	p.finishNode()
}

func (p *Parser) expectString(what string) {
	if !p.eat(syntax.StringLiteral) {
		p.err(diag.SynUnexpectedToken, "expected "+what+" string, got "+describe(p.cur()))
	}
}

// [mods] Event Name[(params)]
func (p *Parser) parseEventStatement() {
	p.startNode(syntax.EventStatement)
	p.bumpModifiers()
	p.bumpKeyword(syntax.EventKeyword)
	p.expectName("event name")
	if p.at(syntax.LeftParen) {
		p.parseParameterList()
	}
	p.endStatement()
	p.finishNode()
}

// Implements IFoo
func (p *Parser) parseImplementsStatement() {
	p.startNode(syntax.ImplementsStatement)
	p.bumpKeyword(syntax.ImplementsKeyword)
	p.parseTypeName()
	p.endStatement()
	p.finishNode()
}

// DefInt A-Z, I-N
func (p *Parser) parseDefTypeStatement() {
	p.startNode(syntax.DefTypeStatement)
	p.bumpCurrentKeyword()
	for {
		p.startNode(syntax.LetterRange)
		p.expectName("letter")
		if p.eat(syntax.Minus) {
			p.expectName("letter")
		}
		p.finishNode()
		if !p.eat(syntax.Comma) {
			break
		}
	}
	p.endStatement()
	p.finishNode()
}
