package lexer

import (
	"vb6parse/internal/diag"
	"vb6parse/internal/syntax"
	"vb6parse/internal/token"
)

// scanNewline: "\r\n", "\n" или одиночный "\r".
func (lx *Lexer) scanNewline() token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.Bump() == '\r' {
		lx.cursor.Eat('\n')
	}
	return lx.emit(syntax.Newline, start)
}

func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isBlankByte(b) {
			lx.cursor.Bump()
			continue
		}
		if b < 0x80 {
			break
		}
		r, _ := lx.peekRune()
		if !isBlankRune(r) {
			break
		}
		lx.bumpRune()
	}
	return lx.emit(syntax.Whitespace, start)
}

// skipToLineEnd двигает курсор до перевода строки, не включая его.
func (lx *Lexer) skipToLineEnd() {
	for !lx.atLineEnd() {
		lx.cursor.Bump()
	}
}

// scanComment: апостроф и всё до конца строки.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.skipToLineEnd()
	return lx.emit(syntax.Comment, start)
}

// scanUnderscore различает продолжение строки (" _" + пробелы + перевод строки)
// и одиночное подчёркивание. Перевод строки входит в LineContinuation.
func (lx *Lexer) scanUnderscore() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	if isIdentContinueByte(lx.cursor.Peek()) {
		// "_foo" не идентификатор в VB6, но и не продолжение
		return lx.emit(syntax.Underscore, start)
	}
	after := lx.cursor.Mark()
	for isBlankByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	switch lx.cursor.Peek() {
	case '\r':
		lx.cursor.Bump()
		lx.cursor.Eat('\n')
		return lx.emit(syntax.LineContinuation, start)
	case '\n':
		lx.cursor.Bump()
		return lx.emit(syntax.LineContinuation, start)
	}
	lx.cursor.Reset(after)
	return lx.emit(syntax.Underscore, start)
}

// scanUnknown выдаёт одну руну (или один байт невалидного UTF-8) как Unknown.
func (lx *Lexer) scanUnknown() token.Token {
	start := lx.cursor.Mark()
	lx.bumpRune()
	tok := lx.emit(syntax.Unknown, start)
	lx.errLex(diag.LexUnknownChar, tok.Span, "unexpected character "+quoteChar(tok.Text))
	return tok
}
