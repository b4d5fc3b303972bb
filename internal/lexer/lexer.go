package lexer

import (
	"vb6parse/internal/source"
	"vb6parse/internal/syntax"
	"vb6parse/internal/token"
)

// Lexer превращает байты файла в поток токенов без потерь: каждый байт
// попадает ровно в один токен, включая пробелы, переводы строк и комментарии.
// Ключевые слова не распознаются: любое слово выдаётся как Identifier,
// решение принимает парсер.
type Lexer struct {
	file     *source.File
	src      string
	cursor   Cursor
	opts     Options
	look     *token.Token
	reported uint32
}

// New creates a lexer positioned at the start of file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		src:    string(file.Content),
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// File returns the file being scanned.
func (lx *Lexer) File() *source.File { return lx.file }

// Next возвращает следующий токен. После конца ввода всегда возвращает EOF
// с пустым спаном в позиции len(content).
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		t := *lx.look
		lx.look = nil
		return t
	}
	return lx.scan()
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		t := lx.scan()
		lx.look = &t
	}
	return *lx.look
}

// Reset перезапускает лексер с начала файла. Повторное сканирование даёт
// ту же последовательность токенов; уже отправленные диагностики не дублируются.
func (lx *Lexer) Reset() {
	lx.cursor.Reset(0)
	lx.look = nil
}

// All сканирует остаток файла и возвращает все токены без EOF.
func (lx *Lexer) All() []token.Token {
	var out []token.Token
	for {
		t := lx.Next()
		if t.Kind == syntax.EOF {
			return out
		}
		out = append(out, t)
	}
}

func (lx *Lexer) scan() token.Token {
	if lx.cursor.EOF() {
		return token.Token{
			Kind: syntax.EOF,
			Span: source.Span{File: lx.file.ID, Start: lx.cursor.Limit, End: lx.cursor.Limit},
		}
	}

	b := lx.cursor.Peek()
	switch {
	case b == '\r' || b == '\n':
		return lx.scanNewline()
	case isBlankByte(b):
		return lx.scanWhitespace()
	case b == '\'':
		return lx.scanComment()
	case b == '"':
		return lx.scanString()
	case isDec(b):
		return lx.scanNumber()
	case b == '.' && isDec(lx.cursor.PeekAt(1)):
		return lx.scanNumber()
	case b == '&' && lx.isRadixPrefix():
		return lx.scanRadixNumber()
	case b == '#':
		return lx.scanHashOrDate()
	case b == '[':
		return lx.scanBracketName()
	case b == '_':
		return lx.scanUnderscore()
	case isIdentStartByte(b):
		return lx.scanWord()
	case b >= 0x80:
		r, _ := lx.peekRune()
		if isBlankRune(r) {
			return lx.scanWhitespace()
		}
		if isIdentStartRune(r) {
			return lx.scanWord()
		}
		return lx.scanUnknown()
	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) emit(k syntax.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: lx.src[sp.Start:sp.End]}
}
