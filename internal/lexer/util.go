package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
)

// ===== Работа с рунами поверх Cursor =====

// peekRune читает руну в текущей позиции. Невалидный UTF-8 даёт RuneError размером 1.
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRune(lx.file.Content[lx.cursor.Off:lx.cursor.Limit])
}

// bumpRune перемещает курсор на размер текущей руны
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

// ===== Классификаторы =====

func isIdentStartByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b) || b == '_'
}
func isIdentStartRune(r rune) bool {
	return r != utf8.RuneError && unicode.IsLetter(r)
}
func isIdentContinueRune(r rune) bool {
	return r == '_' || isIdentStartRune(r) || unicode.IsDigit(r)
}

// isBlankByte: пробел, таб, \f и \v. Переводы строк сюда не входят.
func isBlankByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\f' || b == '\v'
}

// isBlankRune дополнительно принимает BOM и неразрывный пробел.
func isBlankRune(r rune) bool {
	return (r < utf8.RuneSelf && isBlankByte(byte(r))) || r == '\uFEFF' || r == '\u00A0'
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
func isOct(b byte) bool { return b >= '0' && b <= '7' }
func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

func toLowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// atLineEnd: конец файла или начало перевода строки.
func (lx *Lexer) atLineEnd() bool {
	b := lx.cursor.Peek()
	return lx.cursor.EOF() || b == '\r' || b == '\n'
}

// try2 пробует "съесть" 2 байта, если совпадает.
func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

// quoteChar печатает символ для сообщения; невидимые и не-UTF-8: как %q.
func quoteChar(s string) string {
	if len(s) == 1 && (s[0] < 0x20 || s[0] >= 0x7f) {
		return fmt.Sprintf("0x%02X", s[0])
	}
	return fmt.Sprintf("%q", s)
}
