package lexer_test

import (
	"strings"
	"testing"

	"vb6parse/internal/diag"
	"vb6parse/internal/lexer"
	"vb6parse/internal/source"
	"vb6parse/internal/syntax"
	"vb6parse/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.bas", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(0)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx, bag
}

func kindsOf(toks []token.Token) []syntax.Kind {
	out := make([]syntax.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func expectKinds(t *testing.T, input string, want ...syntax.Kind) []token.Token {
	t.Helper()
	lx, _ := makeTestLexer(input)
	toks := lx.All()
	got := kindsOf(toks)
	if len(got) != len(want) {
		t.Fatalf("%q: got %d tokens %v, want %d %v", input, len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d (%q) is %v, want %v", input, i, toks[i].Text, got[i], want[i])
		}
	}
	return toks
}

func concat(toks []token.Token) string {
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(t.Text)
	}
	return sb.String()
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"Attribute VB_Name = \"Module1\"\r\nOption Explicit\r\n",
		"x = 1 + _\r\n    2 ' comment\nRem another\n",
		"Dim s$, n&, d#\n",
		"If a <> b Then Print #1, \"a\"\"b\"; x\n",
		"d = #1/1/2000# : h = &HFF& : o = &O17\n",
		"\ufeffSub Main()\n\tMsgBox \"unterminated\nEnd Sub",
		"x = [my name] + rs!Field\r",
		"? ~ \x00 \xff",
		"Привет = 1\n",
	}
	for _, in := range inputs {
		lx, _ := makeTestLexer(in)
		toks := lx.All()
		if got := concat(toks); got != in {
			t.Fatalf("round trip mismatch:\n got %q\nwant %q", got, in)
		}
		var off uint32
		for _, tok := range toks {
			if tok.Span.Start != off {
				t.Fatalf("%q: gap before %q at %d (expected %d)", in, tok.Text, tok.Span.Start, off)
			}
			if tok.Span.Empty() {
				t.Fatalf("%q: empty token %v", in, tok.Kind)
			}
			off = tok.Span.End
		}
	}
}

func TestWordsAreIdentifiers(t *testing.T) {
	toks := expectKinds(t, "Dim x As Integer",
		syntax.Identifier, syntax.Whitespace, syntax.Identifier, syntax.Whitespace,
		syntax.Identifier, syntax.Whitespace, syntax.Identifier)
	if toks[0].Text != "Dim" {
		t.Fatalf("unexpected text %q", toks[0].Text)
	}
}

func TestTrivia(t *testing.T) {
	expectKinds(t, "a \t b\r\nc\rd\n",
		syntax.Identifier, syntax.Whitespace, syntax.Identifier, syntax.Newline,
		syntax.Identifier, syntax.Newline, syntax.Identifier, syntax.Newline)

	toks := expectKinds(t, "x ' note\ny",
		syntax.Identifier, syntax.Whitespace, syntax.Comment, syntax.Newline, syntax.Identifier)
	if toks[2].Text != "' note" {
		t.Fatalf("comment text %q", toks[2].Text)
	}

	toks = expectKinds(t, "REM hello world\nRemark",
		syntax.RemComment, syntax.Newline, syntax.Identifier)
	if toks[0].Text != "REM hello world" {
		t.Fatalf("rem text %q", toks[0].Text)
	}
	expectKinds(t, "Rem", syntax.RemComment)
}

func TestLineContinuation(t *testing.T) {
	toks := expectKinds(t, "a _  \r\nb",
		syntax.Identifier, syntax.Whitespace, syntax.LineContinuation, syntax.Identifier)
	if toks[2].Text != "_  \r\n" {
		t.Fatalf("continuation text %q", toks[2].Text)
	}
	expectKinds(t, "a _ b", syntax.Identifier, syntax.Whitespace, syntax.Underscore, syntax.Whitespace, syntax.Identifier)
	expectKinds(t, "snake_case", syntax.Identifier)
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		in   string
		kind syntax.Kind
	}{
		{"42", syntax.IntegerLiteral},
		{"42%", syntax.IntegerLiteral},
		{"42&", syntax.LongLiteral},
		{"1.5", syntax.SingleLiteral},
		{".5", syntax.SingleLiteral},
		{"1.5!", syntax.SingleLiteral},
		{"1.5#", syntax.DoubleLiteral},
		{"1E10", syntax.SingleLiteral},
		{"2.5D-3", syntax.DoubleLiteral},
		{"9.99@", syntax.CurrencyLiteral},
		{"&HFF", syntax.IntegerLiteral},
		{"&hFF&", syntax.LongLiteral},
		{"&O17", syntax.IntegerLiteral},
		{"&17", syntax.IntegerLiteral},
	}
	for _, tt := range tests {
		toks := expectKinds(t, tt.in, tt.kind)
		if toks[0].Text != tt.in {
			t.Fatalf("%q: text %q", tt.in, toks[0].Text)
		}
	}
	// экспонента без цифр не съедается
	expectKinds(t, "1E", syntax.IntegerLiteral, syntax.Identifier)
	expectKinds(t, "a & b", syntax.Identifier, syntax.Whitespace, syntax.Ampersand, syntax.Whitespace, syntax.Identifier)
}

func TestTypeSuffixes(t *testing.T) {
	toks := expectKinds(t, "s$ = Left$(n&)",
		syntax.Identifier, syntax.Whitespace, syntax.Equal, syntax.Whitespace,
		syntax.Identifier, syntax.LeftParen, syntax.Identifier, syntax.RightParen)
	if toks[0].Text != "s$" || toks[4].Text != "Left$" || toks[6].Text != "n&" {
		t.Fatalf("unexpected suffix split: %q %q %q", toks[0].Text, toks[4].Text, toks[6].Text)
	}
	expectKinds(t, "rs!Name", syntax.Identifier, syntax.Bang, syntax.Identifier)
	expectKinds(t, "Print#1", syntax.Identifier, syntax.Hash, syntax.IntegerLiteral)
}

func TestStringsAndDates(t *testing.T) {
	toks := expectKinds(t, `"say ""hi"""`, syntax.StringLiteral)
	if toks[0].Text != `"say ""hi"""` {
		t.Fatalf("string text %q", toks[0].Text)
	}
	expectKinds(t, "#1/15/2000#", syntax.DateLiteral)
	expectKinds(t, "#12:30:00 PM#", syntax.DateLiteral)
	expectKinds(t, "#2000-01-15#", syntax.DateLiteral)
	expectKinds(t, "#1, x", syntax.Hash, syntax.IntegerLiteral, syntax.Comma, syntax.Whitespace, syntax.Identifier)
	expectKinds(t, "#If", syntax.Hash, syntax.Identifier)
	expectKinds(t, "#1/2/1999 12:30:05 AM#", syntax.DateLiteral)
	expectKinds(t, "#3 PM#", syntax.DateLiteral)
}

func TestFileNumberBeforeSeparator(t *testing.T) {
	expectKinds(t, "Close #1: Close #2",
		syntax.Identifier, syntax.Whitespace, syntax.Hash, syntax.IntegerLiteral, syntax.Colon,
		syntax.Whitespace, syntax.Identifier, syntax.Whitespace, syntax.Hash, syntax.IntegerLiteral)
	expectKinds(t, "Lock #1: Unlock #1",
		syntax.Identifier, syntax.Whitespace, syntax.Hash, syntax.IntegerLiteral, syntax.Colon,
		syntax.Whitespace, syntax.Identifier, syntax.Whitespace, syntax.Hash, syntax.IntegerLiteral)
	expectKinds(t, "#1/x #", syntax.Hash, syntax.IntegerLiteral, syntax.Slash, syntax.Identifier, syntax.Whitespace, syntax.Hash)
	expectKinds(t, "#12:#", syntax.Hash, syntax.IntegerLiteral, syntax.Colon, syntax.Hash)
}

func TestOperators(t *testing.T) {
	expectKinds(t, "<><=>=:=<>=",
		syntax.NotEqual, syntax.LessEqual, syntax.GreaterEqual, syntax.ColonEqual,
		syntax.NotEqual, syntax.Equal)
	expectKinds(t, `a\b^c`, syntax.Identifier, syntax.Backslash, syntax.Identifier, syntax.Caret, syntax.Identifier)
	expectKinds(t, "[Escaped Name]", syntax.Identifier)
}

func TestDiagnostics(t *testing.T) {
	lx, bag := makeTestLexer("x = \"open\ny = ~")
	toks := lx.All()
	if concat(toks) != "x = \"open\ny = ~" {
		t.Fatalf("round trip failed")
	}
	if toks[len(toks)-1].Kind != syntax.Unknown {
		t.Fatalf("expected trailing Unknown, got %v", toks[len(toks)-1].Kind)
	}
	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(items))
	}
	if items[0].Code != diag.LexUnterminatedString || items[1].Code != diag.LexUnknownChar {
		t.Fatalf("unexpected codes %v %v", items[0].Code, items[1].Code)
	}
}

func TestResetIsDeterministic(t *testing.T) {
	lx, bag := makeTestLexer("Sub A()\n  x = ~1\nEnd Sub\n")
	first := lx.All()
	lx.Reset()
	second := lx.All()
	if len(first) != len(second) {
		t.Fatalf("token count differs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("token %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
	if bag.Len() != 1 {
		t.Fatalf("diagnostics duplicated after reset: %d", bag.Len())
	}
}

func TestPeekAndEOF(t *testing.T) {
	lx, _ := makeTestLexer("a")
	if lx.Peek().Kind != syntax.Identifier {
		t.Fatalf("peek: %v", lx.Peek().Kind)
	}
	if lx.Next().Text != "a" {
		t.Fatalf("next after peek lost token")
	}
	for i := 0; i < 3; i++ {
		eof := lx.Next()
		if eof.Kind != syntax.EOF || eof.Span.Start != 1 || !eof.Span.Empty() {
			t.Fatalf("unexpected EOF token %+v", eof)
		}
	}
}
