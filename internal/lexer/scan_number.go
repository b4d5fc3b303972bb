package lexer

import (
	"vb6parse/internal/diag"
	"vb6parse/internal/syntax"
	"vb6parse/internal/token"
)

// scanNumber читает десятичный литерал: 12, 1.5, .5, 1E10, 2.5D-3 и суффиксы
// % & ! # @. Без суффикса: точка или E дают Single, D даёт Double, иначе Integer.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := syntax.IntegerLiteral

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		kind = syntax.SingleLiteral
	}

	// экспонента только если за ней есть цифры
	if e := toLowerASCII(lx.cursor.Peek()); e == 'e' || e == 'd' {
		n := uint32(1)
		if s := lx.cursor.PeekAt(1); s == '+' || s == '-' {
			n = 2
		}
		if isDec(lx.cursor.PeekAt(n)) {
			for i := uint32(0); i < n; i++ {
				lx.cursor.Bump()
			}
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			kind = syntax.SingleLiteral
			if e == 'd' {
				kind = syntax.DoubleLiteral
			}
		}
	}

	if k, ok := lx.numberSuffix(); ok {
		kind = k
	}
	return lx.emit(kind, start)
}

// numberSuffix съедает суффикс типа, если за ним не продолжается слово.
func (lx *Lexer) numberSuffix() (syntax.Kind, bool) {
	var k syntax.Kind
	switch lx.cursor.Peek() {
	case '%':
		k = syntax.IntegerLiteral
	case '&':
		k = syntax.LongLiteral
	case '!':
		k = syntax.SingleLiteral
	case '#':
		k = syntax.DoubleLiteral
	case '@':
		k = syntax.CurrencyLiteral
	default:
		return syntax.Invalid, false
	}
	next := lx.cursor.PeekAt(1)
	if isIdentContinueByte(next) || next == '#' {
		return syntax.Invalid, false
	}
	lx.cursor.Bump()
	return k, true
}

// isRadixPrefix: &H / &O с подходящей цифрой или &7 (восьмеричный без буквы).
func (lx *Lexer) isRadixPrefix() bool {
	b1 := lx.cursor.PeekAt(1)
	switch toLowerASCII(b1) {
	case 'h':
		return isHex(lx.cursor.PeekAt(2))
	case 'o':
		return isOct(lx.cursor.PeekAt(2))
	}
	return isOct(b1)
}

// scanRadixNumber: &HFF, &O17, &17, с необязательным суффиксом & (Long) или %.
func (lx *Lexer) scanRadixNumber() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '&'
	digit := isOct
	switch toLowerASCII(lx.cursor.Peek()) {
	case 'h':
		lx.cursor.Bump()
		digit = isHex
	case 'o':
		lx.cursor.Bump()
	}
	digits := 0
	for digit(lx.cursor.Peek()) {
		lx.cursor.Bump()
		digits++
	}
	kind := syntax.IntegerLiteral
	switch lx.cursor.Peek() {
	case '&':
		lx.cursor.Bump()
		kind = syntax.LongLiteral
	case '%':
		lx.cursor.Bump()
	}
	tok := lx.emit(kind, start)
	if digits == 0 {
		lx.errLex(diag.LexBadNumber, tok.Span, "radix literal without digits")
	}
	return tok
}
