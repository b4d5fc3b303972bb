package token

import (
	"testing"

	"vb6parse/internal/syntax"
)

func TestLookupKeyword_CaseInsensitive(t *testing.T) {
	cases := map[string]syntax.Kind{
		"If":          syntax.IfKeyword,
		"if":          syntax.IfKeyword,
		"IF":          syntax.IfKeyword,
		"ElseIf":      syntax.ElseIfKeyword,
		"lock":        syntax.LockKeyword,
		"AppActivate": syntax.AppActivateKeyword,
		"WITHEVENTS":  syntax.WithEventsKeyword,
		"Mid$":        syntax.MidKeyword,
		"Width":       syntax.WidthKeyword,
		"ÎF":          syntax.Invalid, // не ASCII
	}
	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if want == syntax.Invalid {
			if ok {
				t.Fatalf("LookupKeyword(%q) = %v, want !ok", lexeme, got)
			}
			continue
		}
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{"x", "Caption", "Left$", "Debug", "ifx", "_if", ""}
	for _, s := range notKw {
		if k, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) = %v, want !ok", s, k)
		}
	}
}

func TestKeywordTableCoversEveryKeywordKind(t *testing.T) {
	seen := make(map[syntax.Kind]bool)
	for _, k := range keywords {
		seen[k] = true
	}
	for k := syntax.AccessKeyword; k <= syntax.XorKeyword; k++ {
		if !seen[k] {
			t.Errorf("keyword kind %v has no spelling", k)
		}
	}
}

func TestSoftKeywordsAreNotReserved(t *testing.T) {
	for _, w := range []string{"Name", "Width", "Text", "Line", "Step", "Type", "Input", "Get"} {
		if IsReserved(w) {
			t.Errorf("%q must be usable as an identifier", w)
		}
	}
	for _, w := range []string{"Then", "End", "Dim", "Next", "And"} {
		if !IsReserved(w) {
			t.Errorf("%q must be reserved", w)
		}
	}
}

func TestTypeKeyword(t *testing.T) {
	if k, ok := TypeKeyword("string"); !ok || k != syntax.StringKeyword {
		t.Fatalf("TypeKeyword(string) = %v, %v", k, ok)
	}
	if _, ok := TypeKeyword("Collection"); ok {
		t.Fatal("Collection is not a built-in type keyword")
	}
	if k, ok := DefTypeKeyword("DefInt"); !ok || k != syntax.DefIntKeyword {
		t.Fatalf("DefTypeKeyword(DefInt) = %v, %v", k, ok)
	}
}
