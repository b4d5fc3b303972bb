package lexer

import (
	"strings"

	"vb6parse/internal/diag"
	"vb6parse/internal/syntax"
	"vb6parse/internal/token"
)

// scanString: "..." с удвоенной кавычкой "" внутри. Строка не может
// пересекать перевод строки: незакрытый литерал заканчивается на конце строки.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.atLineEnd() {
		if lx.cursor.Bump() != '"' {
			continue
		}
		if lx.cursor.Peek() == '"' {
			lx.cursor.Bump()
			continue
		}
		return lx.emit(syntax.StringLiteral, start)
	}
	tok := lx.emit(syntax.StringLiteral, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}

// maxDateBody: самый длинный литерал "#12/31/1999 12:59:59 PM#" заметно короче.
const maxDateBody = 40

// scanHashOrDate пробует литерал даты #1/2/1999# или #12:30 PM#.
// Если содержимое не разбирается как дата или время, выдаётся одиночный
// Hash (файловые номера "#1", директивы "#If").
func (lx *Lexer) scanHashOrDate() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	body := lx.cursor.Mark()
	for n := 0; n < maxDateBody && !lx.atLineEnd() && lx.cursor.Peek() != '#'; n++ {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '#' && isDateBody(lx.src[body:lx.cursor.Off]) {
		lx.cursor.Bump()
		return lx.emit(syntax.DateLiteral, start)
	}
	lx.cursor.Reset(body)
	return lx.emit(syntax.Hash, start)
}

// isDateBody принимает "date", "time" и "date time", где
// date = n/n[/n] или n-n[-n], time = h:mm[:ss] [AM|PM] или h AM|PM.
func isDateBody(s string) bool {
	d := dateScan{s: strings.Trim(s, " \t")}
	if d.s == "" {
		return false
	}
	if d.date() {
		if d.done() {
			return true
		}
		if !d.blanks() {
			return false
		}
	}
	return d.time() && d.done()
}

type dateScan struct {
	s   string
	pos int
}

func (d *dateScan) done() bool { return d.pos == len(d.s) }

func (d *dateScan) blanks() bool {
	at := d.pos
	for d.pos < len(d.s) && (d.s[d.pos] == ' ' || d.s[d.pos] == '\t') {
		d.pos++
	}
	return d.pos > at
}

// digits съедает от 1 до 4 цифр.
func (d *dateScan) digits() bool {
	at := d.pos
	for d.pos < len(d.s) && d.pos-at < 4 && isDec(d.s[d.pos]) {
		d.pos++
	}
	return d.pos > at
}

func (d *dateScan) date() bool {
	at := d.pos
	if !d.digits() || d.pos == len(d.s) {
		d.pos = at
		return false
	}
	sep := d.s[d.pos]
	if sep != '/' && sep != '-' {
		d.pos = at
		return false
	}
	d.pos++
	if !d.digits() {
		d.pos = at
		return false
	}
	if d.pos < len(d.s) && d.s[d.pos] == sep {
		d.pos++
		if !d.digits() {
			d.pos = at
			return false
		}
	}
	return true
}

func (d *dateScan) time() bool {
	if !d.digits() {
		return false
	}
	clock := false
	for i := 0; i < 2 && d.pos < len(d.s) && d.s[d.pos] == ':'; i++ {
		d.pos++
		if !d.digits() {
			return false
		}
		clock = true
	}
	mark := d.pos
	d.blanks()
	if d.meridiem() {
		return true
	}
	d.pos = mark
	return clock
}

// meridiem: AM, PM, A или P в любом регистре.
func (d *dateScan) meridiem() bool {
	rest := strings.ToUpper(d.s[d.pos:])
	for _, m := range []string{"AM", "PM", "A", "P"} {
		if rest == m {
			d.pos = len(d.s)
			return true
		}
	}
	return false
}

// scanBracketName: [Escaped Name] до ']' на той же строке даёт Identifier.
// Без закрывающей скобки выдаётся LeftBracket.
func (lx *Lexer) scanBracketName() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	body := lx.cursor.Mark()
	for !lx.atLineEnd() && lx.cursor.Peek() != ']' {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == ']' && lx.cursor.Off > uint32(body) {
		lx.cursor.Bump()
		return lx.emit(syntax.Identifier, start)
	}
	lx.cursor.Reset(body)
	tok := lx.emit(syntax.LeftBracket, start)
	lx.errLex(diag.LexUnterminatedName, tok.Span, "'[' without matching ']' on the same line")
	return tok
}
