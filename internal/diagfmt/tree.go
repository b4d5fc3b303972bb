package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"vb6parse/internal/cst"
)

type TreeOpts struct {
	Color bool
	// Trivia включает пробелы, переводы строк и комментарии.
	Trivia bool
	// Spans добавляет байтовые диапазоны.
	Spans bool
	// MaxDepth обрезает вывод; 0 без ограничения.
	MaxDepth int
}

// FormatTree печатает дерево с отступом в два пробела на уровень.
// С Trivia и без Spans вывод совпадает с Tree.DebugTree.
func FormatTree(w io.Writer, t *cst.Tree, opts TreeOpts) error {
	node := color.New(color.FgBlue, color.Bold)
	tok := color.New(color.FgGreen)
	dim := color.New(color.Faint)
	for _, c := range []*color.Color{node, tok, dim} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	var err error
	t.Walk(func(e cst.Element, depth int) bool {
		if err != nil {
			return false
		}
		if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
			return false
		}
		kind := t.Kind(e)
		if !opts.Trivia && kind.IsTrivia() {
			return false
		}
		var sb strings.Builder
		sb.WriteString(strings.Repeat("  ", depth))
		if e.IsNode() {
			sb.WriteString(node.Sprint(kind))
		} else {
			sb.WriteString(tok.Sprint(kind))
			sb.WriteByte(' ')
			sb.WriteString(fmt.Sprintf("%q", t.ElementText(e)))
		}
		if opts.Spans {
			sp := t.Span(e)
			sb.WriteString(dim.Sprintf(" @%d..%d", sp.Start, sp.End))
		}
		sb.WriteByte('\n')
		_, err = io.WriteString(w, sb.String())
		return true
	})
	return err
}
