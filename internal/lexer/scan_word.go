package lexer

import (
	"vb6parse/internal/syntax"
	"vb6parse/internal/token"
)

// scanWord читает идентификатор с необязательным суффиксом типа ($ % & ! # @).
// Суффикс приклеивается, только если за ним не идёт буква или цифра:
// "s$" и "n&" слитно, "rs!Field" и "a&b" раздельно.
// Слово Rem с пробелом или концом строки открывает комментарий до конца строки.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()
	lx.bumpRune()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < 0x80 {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, _ := lx.peekRune()
		if !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}

	if lx.isRemAt(start) {
		lx.skipToLineEnd()
		return lx.emit(syntax.RemComment, start)
	}

	switch lx.cursor.Peek() {
	case '$', '%', '&', '!', '#', '@':
		next := lx.cursor.PeekAt(1)
		if !isIdentContinueByte(next) && next < 0x80 && next != '#' && next != '"' {
			lx.cursor.Bump()
		}
	}
	return lx.emit(syntax.Identifier, start)
}

func (lx *Lexer) isRemAt(start Mark) bool {
	if lx.cursor.Off-uint32(start) != 3 {
		return false
	}
	w := lx.src[start:lx.cursor.Off]
	if toLowerASCII(w[0]) != 'r' || toLowerASCII(w[1]) != 'e' || toLowerASCII(w[2]) != 'm' {
		return false
	}
	return lx.atLineEnd() || isBlankByte(lx.cursor.Peek()) || lx.cursor.Peek() == ':'
}
