package testkit_test

import (
	"path/filepath"
	"testing"

	"vb6parse/internal/lexer"
	"vb6parse/internal/parser"
	"vb6parse/internal/source"
	"vb6parse/internal/testkit"
	"vb6parse/internal/token"
)

func TestProjectInvariants(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "testdata", "project", "*.*"))
	if err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	n := 0
	for _, p := range paths {
		if filepath.Ext(p) == ".frx" {
			continue
		}
		id, err := fs.Load(p)
		if err != nil {
			t.Fatal(err)
		}
		n++
		t.Run(filepath.Base(p), func(t *testing.T) {
			if err := testkit.CheckAll(fs.Get(id)); err != nil {
				t.Fatal(err)
			}
		})
	}
	if n == 0 {
		t.Fatalf("no sources under testdata/project")
	}
}

func TestGarbageInvariants(t *testing.T) {
	inputs := []string{
		"",
		"\r\n\r\n",
		"End If\nLoop\nNext\nWend\n",
		"Sub (\n  If If If\n",
		"x = \"unterminated\n_\n_",
		"Begin VB.Form\n  BeginProperty\n",
		"#If x Then\n&H&O&\n[bad ident\n",
		"\xff\xfe garbage \x00\x01\n",
	}
	fs := source.NewFileSet()
	for _, in := range inputs {
		f := fs.Get(fs.AddVirtual("garbage.bas", []byte(in)))
		if err := testkit.CheckAll(f); err != nil {
			t.Fatalf("%q: %v", in, err)
		}
	}
}

func TestCheckCoverageDetectsGap(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("a.bas", []byte("x = 1\n")))
	toks := lexer.New(f, lexer.Options{}).All()
	if err := testkit.CheckCoverage(toks, f); err != nil {
		t.Fatalf("valid stream rejected: %v", err)
	}
	gap := append([]token.Token(nil), toks[:1]...)
	gap = append(gap, toks[2:]...)
	if err := testkit.CheckCoverage(gap, f); err == nil {
		t.Fatalf("gap not detected")
	}
}

func TestCheckLosslessDetectsMismatch(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("a.bas", []byte("x = 1\n")))
	tree := parser.ParseFile(f, parser.Options{}).Tree
	if err := testkit.CheckLossless(tree, []byte("x = 2\n")); err == nil {
		t.Fatalf("mismatch not detected")
	}
}
