package lexer

import (
	"vb6parse/internal/syntax"
	"vb6parse/internal/token"
)

var singlePunct = [128]syntax.Kind{
	'(':  syntax.LeftParen,
	')':  syntax.RightParen,
	'{':  syntax.LeftBrace,
	'}':  syntax.RightBrace,
	']':  syntax.RightBracket,
	',':  syntax.Comma,
	';':  syntax.Semicolon,
	':':  syntax.Colon,
	'.':  syntax.Period,
	'!':  syntax.Bang,
	'$':  syntax.Dollar,
	'%':  syntax.Percent,
	'@':  syntax.At,
	'&':  syntax.Ampersand,
	'+':  syntax.Plus,
	'-':  syntax.Minus,
	'*':  syntax.Star,
	'/':  syntax.Slash,
	'\\': syntax.Backslash,
	'^':  syntax.Caret,
	'=':  syntax.Equal,
	'<':  syntax.Less,
	'>':  syntax.Greater,
}

// Жадность: сначала двухсимвольные (<> <= >= :=), затем односимвольные.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	switch {
	case lx.try2('<', '>'):
		return lx.emit(syntax.NotEqual, start)
	case lx.try2('<', '='):
		return lx.emit(syntax.LessEqual, start)
	case lx.try2('>', '='):
		return lx.emit(syntax.GreaterEqual, start)
	case lx.try2(':', '='):
		return lx.emit(syntax.ColonEqual, start)
	}
	if k := singlePunct[lx.cursor.Peek()&0x7f]; k != syntax.Invalid {
		lx.cursor.Bump()
		return lx.emit(k, start)
	}
	return lx.scanUnknown()
}
