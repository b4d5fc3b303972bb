package parser

import (
	"strings"

	"vb6parse/internal/diag"
	"vb6parse/internal/syntax"
	"vb6parse/internal/token"
)

// ===== Поток токенов =====

// fill гарантирует, что в очереди есть хотя бы n+1 сырых токенов.
func (p *Parser) fill(n int) {
	for len(p.buf) <= n {
		p.buf = append(p.buf, p.lx.Next())
	}
}

// nth возвращает n-й сырой токен (с тривиями).
func (p *Parser) nth(n int) token.Token {
	p.fill(n)
	return p.buf[n]
}

// skippable: тривии внутри логической строки. Комментарии и переводы
// строк значимы: они заканчивают оператор.
func skippable(k syntax.Kind) bool {
	return k == syntax.Whitespace || k == syntax.LineContinuation
}

// peekSig возвращает n-й значимый токен начиная с текущего.
func (p *Parser) peekSig(n int) token.Token {
	for i := 0; ; i++ {
		t := p.nth(i)
		if t.Kind == syntax.EOF {
			return t
		}
		if skippable(t.Kind) {
			continue
		}
		if n == 0 {
			return t
		}
		n--
	}
}

func (p *Parser) cur() token.Token { return p.peekSig(0) }

func (p *Parser) at(k syntax.Kind) bool { return p.cur().Kind == k }

// spaceBefore: перед текущим значимым токеном есть пробелы.
func (p *Parser) spaceBefore() bool { return skippable(p.nth(0).Kind) }

func (p *Parser) atEOF() bool { return p.cur().Kind == syntax.EOF }

// atLineEnd: перевод строки, комментарий или конец файла.
func (p *Parser) atLineEnd() bool {
	switch p.cur().Kind {
	case syntax.Newline, syntax.EOF, syntax.Comment, syntax.RemComment:
		return true
	}
	return false
}

// atStmtEnd дополнительно учитывает ':' и Else однострочного If.
func (p *Parser) atStmtEnd() bool {
	if p.atLineEnd() || p.at(syntax.Colon) {
		return true
	}
	return p.inline > 0 && p.atKeyword(syntax.ElseKeyword)
}

// bumpRaw переносит первый сырой токен очереди в текущий узел.
func (p *Parser) bumpRaw() token.Token {
	t := p.nth(0)
	if t.Kind == syntax.EOF {
		return t
	}
	p.buf = p.buf[1:]
	p.b.Token(t)
	p.consumed++
	switch {
	case t.Kind == syntax.Newline:
		p.lineStart = true
	case skippable(t.Kind):
	default:
		p.lineStart = false
		if !t.Kind.IsTrivia() {
			p.lastSpan = t.Span
		}
	}
	return t
}

// eatTrivia съедает пробелы и продолжения строк в текущий узел.
func (p *Parser) eatTrivia() {
	for skippable(p.nth(0).Kind) {
		p.bumpRaw()
	}
}

// bump съедает текущий значимый токен вместе с пробелами перед ним.
func (p *Parser) bump() token.Token {
	p.eatTrivia()
	return p.bumpRaw()
}

// bumpAs перетегирует текущий значимый токен в k и съедает его.
func (p *Parser) bumpAs(k syntax.Kind) token.Token {
	p.eatTrivia()
	if p.nth(0).Kind != syntax.EOF {
		p.buf[0] = p.buf[0].WithKind(k)
	}
	return p.bumpRaw()
}

func (p *Parser) eat(k syntax.Kind) bool {
	if p.at(k) {
		p.bump()
		return true
	}
	return false
}

// startNode открывает узел после пробелов: пробелы остаются родителю.
func (p *Parser) startNode(k syntax.Kind) {
	p.eatTrivia()
	p.b.StartNode(k)
}

func (p *Parser) finishNode() { p.b.FinishNode() }

// ===== Ключевые слова по запросу грамматики =====

// kwAt возвращает ключевое слово, которым записан n-й значимый токен,
// или Invalid. Токен при этом не меняется.
func (p *Parser) kwAt(n int) syntax.Kind {
	t := p.peekSig(n)
	if t.Kind != syntax.Identifier {
		return syntax.Invalid
	}
	k, _ := token.LookupKeyword(t.Text)
	return k
}

func (p *Parser) atKeyword(k syntax.Kind) bool { return p.kwAt(0) == k }

func (p *Parser) atAnyKeyword(ks ...syntax.Kind) bool {
	cur := p.kwAt(0)
	for _, k := range ks {
		if cur == k {
			return true
		}
	}
	return false
}

// bumpKeyword съедает текущее слово как ключевое слово k.
func (p *Parser) bumpKeyword(k syntax.Kind) { p.bumpAs(k) }

func (p *Parser) eatKeyword(k syntax.Kind) bool {
	if p.atKeyword(k) {
		p.bumpAs(k)
		return true
	}
	return false
}

// bumpCurrentKeyword съедает текущее слово как то ключевое слово, которым оно записано.
func (p *Parser) bumpCurrentKeyword() syntax.Kind {
	k := p.kwAt(0)
	p.bumpAs(k)
	return k
}

// atEnd: "End <k>", например End If.
func (p *Parser) atEnd(k syntax.Kind) bool {
	return p.atKeyword(syntax.EndKeyword) && p.kwAt(1) == k
}

// atWord: текущий токен: слово (идентификатор любой формы).
func (p *Parser) atWord() bool { return p.at(syntax.Identifier) }

// atReserved: текущее слово: зарезервированное и не может быть именем.
func (p *Parser) atReserved() bool {
	t := p.cur()
	return t.Kind == syntax.Identifier && token.IsReserved(t.Text)
}

// expectName съедает имя (переменной, параметра, процедуры, члена Type/Enum).
// Мягкие ключевые слова (Name, Text, Width...) здесь всегда Identifier;
// зарезервированные слова именем быть не могут.
func (p *Parser) expectName(what string) bool {
	if p.atWord() && !p.atReserved() {
		p.bump()
		return true
	}
	p.err(diag.SynExpectIdentifier, "expected "+what+", got "+describe(p.cur()))
	return false
}

func (p *Parser) expectKeyword(k syntax.Kind) bool {
	if p.eatKeyword(k) {
		return true
	}
	p.err(diag.SynExpectKeyword, "expected '"+kwName(k)+"', got "+describe(p.cur()))
	return false
}

func (p *Parser) expect(k syntax.Kind, what string) bool {
	if p.eat(k) {
		return true
	}
	code := diag.SynUnexpectedToken
	switch k {
	case syntax.RightParen:
		code = diag.SynExpectRightParen
	case syntax.Equal:
		code = diag.SynExpectEquals
	}
	p.err(code, "expected "+what+", got "+describe(p.cur()))
	return false
}

// kwName: IfKeyword -> If
func kwName(k syntax.Kind) string {
	return strings.TrimSuffix(k.String(), "Keyword")
}

func describe(t token.Token) string {
	switch t.Kind {
	case syntax.EOF:
		return "end of file"
	case syntax.Newline:
		return "end of line"
	case syntax.Comment, syntax.RemComment:
		return "comment"
	}
	return "'" + t.Text + "'"
}
