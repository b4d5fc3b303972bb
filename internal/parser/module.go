package parser

import (
	"vb6parse/internal/diag"
	"vb6parse/internal/syntax"
)

// Заголовок модуля: VERSION, Object = ..., Begin ... End, Attribute, Option.

// Option Explicit | Option Base n | Option Compare Text|Binary|Database | Option Private Module
func (p *Parser) parseOptionStatement() {
	p.startNode(syntax.OptionStatement)
	p.bumpKeyword(syntax.OptionKeyword)
	switch p.kwAt(0) {
	case syntax.ExplicitKeyword:
		p.bumpCurrentKeyword()
	case syntax.BaseKeyword:
		p.bumpCurrentKeyword()
		if p.cur().Kind.IsNumericLiteral() {
			p.literal(syntax.NumericLiteralExpression)
		} else {
			p.err(diag.SynExpectExpression, "expected 0 or 1 after 'Option Base', got "+describe(p.cur()))
		}
	case syntax.CompareKeyword:
		p.bumpCurrentKeyword()
		if !p.eatKeyword(syntax.TextKeyword) && !p.eatKeyword(syntax.BinaryKeyword) && !p.eatKeyword(syntax.DatabaseKeyword) {
			p.err(diag.SynExpectKeyword, "expected 'Text', 'Binary' or 'Database', got "+describe(p.cur()))
		}
	case syntax.PrivateKeyword:
		p.bumpCurrentKeyword()
		p.expectKeyword(syntax.ModuleKeyword)
	default:
		p.err(diag.SynExpectKeyword, "unknown option "+describe(p.cur()))
	}
	p.endStatement()
	p.finishNode()
}

// Attribute VB_Name = "Form1"
// Attribute Value.VB_UserMemId = 0
// Attribute VB_Ext_KEY = "SavedWithClassBuilder6" ,"Yes"
func (p *Parser) parseAttributeStatement() {
	p.startNode(syntax.AttributeStatement)
	p.bumpKeyword(syntax.AttributeKeyword)
	p.bump()
	for p.at(syntax.Period) && !p.spaceBefore() {
		p.bump()
		p.bumpMemberName()
	}
	if p.expect(syntax.Equal, "'='") {
		for {
			p.parseExpr()
			if !p.eat(syntax.Comma) {
				break
			}
		}
	}
	p.endStatement()
	p.finishNode()
}

// VERSION 5.00 | VERSION 1.0 CLASS
func (p *Parser) parseVersionStatement() {
	p.startNode(syntax.VersionStatement)
	p.bumpKeyword(syntax.VersionKeyword)
	if p.cur().Kind.IsNumericLiteral() {
		p.literal(syntax.NumericLiteralExpression)
	} else {
		p.errExpectExpr()
	}
	if p.atWord() {
		p.bump()
	}
	p.endStatement()
	p.finishNode()
}

// Object = "{GUID}#2.0#0"; "MSCOMCTL.OCX": строка хранится как есть.
func (p *Parser) parseObjectStatement() {
	p.startNode(syntax.ObjectStatement)
	p.bumpKeyword(syntax.ObjectKeyword)
	p.bumpRawLine()
	p.endStatement()
	p.finishNode()
}

// bumpRawLine съедает токены до конца физической строки без разбора.
// ':' здесь не разделитель: "Form1.frx":0000.
func (p *Parser) bumpRawLine() {
	for !p.atLineEnd() {
		p.bump()
	}
}

// parsePropertiesBlock разбирает описание формы или класса:
//
//	Begin VB.Form Form1
//	   Caption = "Form1"
//	   BeginProperty Font {...}
//	      Name = "MS Sans Serif"
//	   EndProperty
//	   Begin VB.CommandButton Command1
//	   End
//	End
func (p *Parser) parsePropertiesBlock() {
	p.startNode(syntax.PropertiesBlock)
	header := p.cur().Span
	p.bumpKeyword(syntax.BeginKeyword)
	if !p.atLineEnd() {
		p.parseTypeName()
		if p.atWord() {
			p.bump()
		}
	}
	header = header.Cover(p.lastSpan)
	p.endStatement()
	p.parsePropertyItems(func() bool { return p.atKeyword(syntax.EndKeyword) && p.peekSig(1).Kind != syntax.Equal })
	if p.atKeyword(syntax.EndKeyword) {
		p.bumpKeyword(syntax.EndKeyword)
		p.endStatement()
	} else {
		p.closeUnclosed(header, "'Begin'", "End")
	}
	p.finishNode()
}

// parsePropertyGroup: BeginProperty Name [{GUID}] ... EndProperty
func (p *Parser) parsePropertyGroup() {
	p.startNode(syntax.PropertyGroup)
	header := p.cur().Span
	p.bumpKeyword(syntax.BeginPropertyKeyword)
	p.bumpRawLine()
	header = header.Cover(p.lastSpan)
	p.endStatement()
	p.parsePropertyItems(func() bool { return p.atKeyword(syntax.EndPropertyKeyword) })
	if p.eatKeyword(syntax.EndPropertyKeyword) {
		p.endStatement()
	} else {
		p.closeUnclosed(header, "'BeginProperty'", "EndProperty")
	}
	p.finishNode()
}

func (p *Parser) parsePropertyItems(stop func() bool) {
	for {
		p.eatTrivia()
		if p.atEOF() || stop() {
			return
		}
		switch p.cur().Kind {
		case syntax.Newline, syntax.Comment, syntax.RemComment:
			p.bump()
			continue
		}
		before := p.consumed
		switch {
		case p.atKeyword(syntax.BeginPropertyKeyword):
			p.parsePropertyGroup()
		case p.atKeyword(syntax.BeginKeyword) && p.peekSig(1).Kind != syntax.Equal:
			p.parsePropertiesBlock()
		case p.atKeyword(syntax.EndPropertyKeyword), p.atKeyword(syntax.EndKeyword) && p.peekSig(1).Kind != syntax.Equal:
			// чужой терминатор: закрываем текущий уровень
			return
		default:
			p.parsePropertyLine()
		}
		if p.consumed == before {
			p.recoverLine(diag.SynUnexpectedToken, "unexpected "+describe(p.cur())+" in properties block")
		}
	}
}

// parsePropertyLine: Key[(i)][.Sub] = value: обе части сохраняются сырыми токенами.
func (p *Parser) parsePropertyLine() {
	p.startNode(syntax.PropertyLine)
	for !p.atLineEnd() && !p.at(syntax.Equal) {
		p.bump()
	}
	if p.expect(syntax.Equal, "'=' in property line") {
		p.bumpRawLine()
	}
	p.endStatement()
	p.finishNode()
}
