package parser

import (
	"vb6parse/internal/cst"
	"vb6parse/internal/diag"
	"vb6parse/internal/lexer"
	"vb6parse/internal/source"
	"vb6parse/internal/syntax"
	"vb6parse/internal/token"
	"vb6parse/internal/trace"
)

type Options struct {
	// MaxErrors ограничивает число синтаксических ошибок; 0: без ограничения.
	// После лимита разбор продолжается, но диагностики больше не отправляются.
	MaxErrors uint
	Reporter  diag.Reporter
	// Tracer получает point-события восстановления (scope node).
	Tracer trace.Tracer
	// Trace: родительский спан и файл для этих событий.
	Trace trace.SpanContext
}

type Result struct {
	Tree   *cst.Tree
	Errors uint
}

// Parser: состояние парсера на один файл
type Parser struct {
	lx   *lexer.Lexer
	b    *cst.Builder
	file *source.File
	opts Options

	buf      []token.Token // очередь просмотренных вперёд токенов
	lastSpan source.Span   // span последнего значимого съеденного токена
	consumed uint64        // счётчик съеденных токенов, для гарантии прогресса

	lineStart bool // ещё не было значимых токенов на текущей строке
	inline    int  // глубина однострочного If: переводы строк не съедаются
	blocks    []block
	open      [blockKinds]int // открытые блоки по видам
	nextCarry int             // "Next i, j": сколько внешних For уже закрыто

	errors uint
	capHit bool
}

// ParseFile: входная точка для разбора одного файла.
// Дерево строится всегда, даже для мусорного ввода.
func ParseFile(file *source.File, opts Options) Result {
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	p := &Parser{
		lx:        lx,
		b:         cst.NewBuilder(file, cst.Hints{Tokens: uint(len(file.Content) / 3)}),
		file:      file,
		opts:      opts,
		lineStart: true,
	}
	p.parseModule()
	return Result{Tree: p.b.Finish(), Errors: p.errors}
}

// parseModule: корень: заголовок и тело модуля вперемешку, до EOF.
func (p *Parser) parseModule() {
	p.b.StartNode(syntax.Root)
	p.parseStatements()
	// хвостовые пробелы без перевода строки
	p.eatTrivia()
	p.b.FinishNode()
}
