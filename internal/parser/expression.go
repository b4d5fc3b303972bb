package parser

import (
	"vb6parse/internal/diag"
	"vb6parse/internal/syntax"
	"vb6parse/internal/token"
)

// parseExpr - главная точка входа для парсинга выражений.
// false означает, что выражения нет; диагностика уже отправлена.
func (p *Parser) parseExpr() bool {
	return p.parseBinaryExpr(0)
}

// parseBinaryExpr реализует Pratt parsing для бинарных операторов.
// Левый операнд заворачивается в BinaryExpression задним числом через checkpoint.
func (p *Parser) parseBinaryExpr(minPrec int) bool {
	p.eatTrivia()
	cp := p.b.Checkpoint()
	if !p.parseUnaryExpr() {
		return false
	}
	for {
		prec, right, kind := binaryOp(p.cur())
		if prec < 0 || prec < minPrec {
			break
		}
		p.b.StartNodeAt(cp, syntax.BinaryExpression)
		p.bumpAs(kind)
		next := prec + 1
		if right {
			next = prec
		}
		p.parseBinaryExpr(next)
		p.finishNode()
	}
	return true
}

// parseUnaryExpr: - + Not. Операнд связывается сильнее умножения, но слабее ^:
// -2^2 это -(2^2).
func (p *Parser) parseUnaryExpr() bool {
	switch {
	case p.at(syntax.Minus), p.at(syntax.Plus):
		p.startNode(syntax.UnaryExpression)
		p.bump()
		p.parseBinaryExpr(precPower)
		p.finishNode()
		return true
	case p.atKeyword(syntax.NotKeyword):
		p.startNode(syntax.UnaryExpression)
		p.bumpKeyword(syntax.NotKeyword)
		p.parseBinaryExpr(precPower)
		p.finishNode()
		return true
	}
	return p.parsePostfixExpr(false)
}

// parsePrimaryExpr: литералы, слова, скобки и ".member" внутри With.
func (p *Parser) parsePrimaryExpr() bool {
	t := p.cur()
	switch {
	case t.Kind.IsNumericLiteral():
		p.literal(syntax.NumericLiteralExpression)
	case t.Kind == syntax.StringLiteral:
		p.literal(syntax.StringLiteralExpression)
	case t.Kind == syntax.DateLiteral:
		p.literal(syntax.DateLiteralExpression)
	case t.Kind == syntax.LeftParen:
		p.parseParenExpr()
	case t.Kind == syntax.Period || t.Kind == syntax.Bang:
		p.startNode(syntax.MemberAccessExpression)
		p.bump()
		p.bumpMemberName()
		p.finishNode()
	case t.Kind == syntax.Identifier:
		return p.parseWordExpr(t)
	default:
		p.errExpectExpr()
		return false
	}
	return true
}

func (p *Parser) literal(k syntax.Kind) {
	p.startNode(k)
	p.bump()
	p.finishNode()
}

func (p *Parser) literalAs(node, tok syntax.Kind) {
	p.startNode(node)
	p.bumpAs(tok)
	p.finishNode()
}

func (p *Parser) parseWordExpr(t token.Token) bool {
	kw, _ := token.LookupKeyword(t.Text)
	switch kw {
	case syntax.TrueKeyword, syntax.FalseKeyword:
		p.literalAs(syntax.BooleanLiteralExpression, kw)
	case syntax.NothingKeyword, syntax.NullKeyword, syntax.EmptyKeyword:
		p.literalAs(syntax.LiteralExpression, kw)
	case syntax.MeKeyword:
		p.literalAs(syntax.IdentifierExpression, kw)
	case syntax.NewKeyword:
		p.startNode(syntax.NewExpression)
		p.bumpKeyword(kw)
		p.parseTypeName()
		p.finishNode()
	case syntax.AddressOfKeyword:
		p.startNode(syntax.AddressOfExpression)
		p.bumpKeyword(kw)
		p.parsePostfixExpr(false)
		p.finishNode()
	case syntax.TypeOfKeyword:
		p.startNode(syntax.TypeOfExpression)
		p.bumpKeyword(kw)
		p.parsePostfixExpr(false)
		if p.expectKeyword(syntax.IsKeyword) {
			p.parseTypeName()
		}
		p.finishNode()
	default:
		if token.IsReserved(t.Text) {
			p.errExpectExpr()
			return false
		}
		p.literal(syntax.IdentifierExpression)
	}
	return true
}

// parseParenExpr: ( e ) и ( e, e ) для графических методов вида PSet (x, y).
func (p *Parser) parseParenExpr() {
	p.startNode(syntax.ParenthesizedExpression)
	p.bump()
	p.parseExpr()
	for p.eat(syntax.Comma) {
		p.parseExpr()
	}
	p.expect(syntax.RightParen, "')'")
	p.finishNode()
}

// errExpectExpr репортит отсутствие выражения. Один посторонний токен
// заворачивается в Unknown; границы оператора, закрывающие скобки,
// разделители и зарезервированные слова не трогаются.
func (p *Parser) errExpectExpr() {
	t := p.cur()
	p.err(diag.SynExpectExpression, "expected expression, got "+describe(t))
	if p.atStmtEnd() {
		return
	}
	switch t.Kind {
	case syntax.RightParen, syntax.Comma, syntax.Semicolon:
		return
	case syntax.Identifier:
		if token.IsReserved(t.Text) {
			return
		}
	}
	p.startNode(syntax.Unknown)
	p.bump()
	p.finishNode()
}

// parseTypeName: встроенный тип (Integer, String...) как ключевое слово,
// иначе квалифицированное имя Lib.Class.
func (p *Parser) parseTypeName() bool {
	t := p.cur()
	if t.Kind == syntax.Identifier {
		if k, ok := token.TypeKeyword(t.Text); ok {
			p.bumpKeyword(k)
			return true
		}
	}
	if !p.expectName("type name") {
		return false
	}
	for p.at(syntax.Period) && !p.spaceBefore() && p.peekSig(1).Kind == syntax.Identifier {
		p.bump()
		p.bump()
	}
	return true
}
