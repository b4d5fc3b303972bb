package vb6_test

import (
	"errors"
	"strings"
	"testing"

	"vb6parse/internal/diag"
	"vb6parse/internal/syntax"
	"vb6parse/vb6"
)

func TestFromSourceClean(t *testing.T) {
	src := "Attribute VB_Name = \"Module1\"\r\nOption Explicit\r\n\r\nPublic Sub Main()\r\n    MsgBox \"hi\"\r\nEnd Sub\r\n"
	tree, err := vb6.FromSource("Module1.bas", src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.RootKind() != syntax.Root {
		t.Fatalf("root kind %v", tree.RootKind())
	}
	if tree.Text() != src {
		t.Fatalf("text mismatch")
	}
	if tree.ChildCount() != 4 {
		t.Fatalf("root children %d\n%s", tree.ChildCount(), tree.DebugTree())
	}
}

func TestFromSourceError(t *testing.T) {
	src := "Sub Main()\n  Class Foo\n  End Class\nEnd Sub\n"
	tree, err := vb6.FromSource("bad.bas", src)
	if err == nil {
		t.Fatalf("expected error")
	}
	if tree == nil || tree.Text() != src {
		t.Fatalf("tree must be returned with the error")
	}
	var perr *vb6.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *vb6.ParseError", err)
	}
	if len(perr.Diagnostics) < 2 {
		t.Fatalf("expected at least 2 diagnostics, got %d", len(perr.Diagnostics))
	}
	if !strings.HasPrefix(err.Error(), "bad.bas: ") || !strings.Contains(err.Error(), "more") {
		t.Fatalf("error text %q", err.Error())
	}
	var d diag.Diagnostic
	if !errors.As(err, &d) || d.Code != diag.SynUnexpectedStatement {
		t.Fatalf("first unwrapped diagnostic %v", d.Code)
	}
}

func TestFromTextTolerant(t *testing.T) {
	inputs := []string{"", "\n", "' only a comment", "End If\n", "\x00\xff", "If x Then\n"}
	for _, in := range inputs {
		tree, _ := vb6.FromText("t.bas", in)
		if tree == nil {
			t.Fatalf("%q: nil tree", in)
		}
		if tree.Text() != in {
			t.Fatalf("%q: text %q", in, tree.Text())
		}
		if tree.RootKind() != syntax.Root {
			t.Fatalf("%q: root kind %v", in, tree.RootKind())
		}
	}
}

func TestDiagnosticsSorted(t *testing.T) {
	_, diags := vb6.FromText("t.bas", "x = \ny = )\nNext\n")
	if len(diags) < 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(diags))
	}
	for i := 1; i < len(diags); i++ {
		if diags[i].Primary.Start < diags[i-1].Primary.Start {
			t.Fatalf("diagnostics not sorted: %v", diags)
		}
	}
}

func TestParseMaxErrors(t *testing.T) {
	r := vb6.Parse("t.bas", strings.Repeat("@\n", 10), vb6.Options{MaxErrors: 3})
	if !r.HasErrors() {
		t.Fatalf("expected errors")
	}
	if len(r.Diagnostics) != 4 {
		t.Fatalf("expected 3 errors and a cap notice, got %d", len(r.Diagnostics))
	}
}

func TestDebugTreeComment(t *testing.T) {
	tree, diags := vb6.FromText("t.bas", "' hi")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics %v", diags)
	}
	if got, want := tree.DebugTree(), "Root\n  Comment \"' hi\"\n"; got != want {
		t.Fatalf("debug tree %q, want %q", got, want)
	}
}

func TestFromSourceFileNumberArguments(t *testing.T) {
	src := "Sub T()\n    content = Input(100, #1)\n    Close #1: Close #2\nEnd Sub\n"
	tree, err := vb6.FromSource("io.bas", src)
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, tree.DebugTree())
	}
	if n := len(tree.Find(syntax.CloseStatement)); n != 2 {
		t.Fatalf("expected 2 Close statements, got %d\n%s", n, tree.DebugTree())
	}
}
