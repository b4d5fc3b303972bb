package form_test

import (
	"os"
	"path/filepath"
	"testing"

	"vb6parse/internal/cst"
	"vb6parse/internal/diag"
	"vb6parse/internal/form"
	"vb6parse/internal/frx"
	"vb6parse/internal/parser"
	"vb6parse/internal/source"
)

const formSrc = "VERSION 5.00\r\n" +
	"Begin VB.Form Form1\r\n" +
	"   Caption         =   \"Form1\"\r\n" +
	"   Icon            =   \"Form1.frx\":0000\r\n" +
	"   Begin VB.ListBox List1\r\n" +
	"      ItemData        =   \"Form1.frx\":0010\r\n" +
	"      List            =   \"Form1.frx\":0004\r\n" +
	"   End\r\n" +
	"End\r\n"

func parseForm(t *testing.T, text string) *cst.Tree {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("Form1.frm", []byte(text)))
	bag := diag.NewBag(0)
	res := parser.ParseFile(f, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	return res.Tree
}

func TestReferences(t *testing.T) {
	refs := form.References(parseForm(t, formSrc))
	want := []struct {
		control, key string
		offset       int
	}{
		{"Form1", "Icon", 0},
		{"List1", "ItemData", 0x10},
		{"List1", "List", 4},
	}
	if len(refs) != len(want) {
		t.Fatalf("got %d refs: %+v", len(refs), refs)
	}
	for i, w := range want {
		r := refs[i]
		if r.Control != w.control || r.Key != w.key || r.Offset != w.offset || r.File != "Form1.frx" {
			t.Fatalf("ref %d = %+v, want %+v", i, r, w)
		}
	}
}

func TestParseValue(t *testing.T) {
	cases := []struct {
		in     string
		file   string
		offset int
		ok     bool
	}{
		{`"Form1.frx":01AB`, "Form1.frx", 0x1AB, true},
		{`"ctl.CTX":0`, "ctl.CTX", 0, true},
		{`"Form1"`, "", 0, false},
		{`"a.bmp":0010`, "", 0, false},
		{`"Form1.frx":zz`, "", 0, false},
		{`3195`, "", 0, false},
	}
	for _, tc := range cases {
		file, off, ok := form.ParseValue(tc.in)
		if ok != tc.ok || file != tc.file || off != tc.offset {
			t.Fatalf("ParseValue(%q) = %q, %d, %v", tc.in, file, off, ok)
		}
	}
}

func TestResolveAll(t *testing.T) {
	// 0x00: одна короткая запись "ab", дополненная до 4 байт
	buf := []byte{3, 'a', 'b', 'c'}
	// 0x04: список из двух элементов
	buf = append(buf, 2, 0, 3, 0, 1, 0, 'x', 2, 0, 'y', 'z')
	// 0x0F: мусор, ItemData указывает за конец файла
	buf = append(buf, 0)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Form1.frx"), buf, 0o600); err != nil {
		t.Fatal(err)
	}
	tree := parseForm(t, formSrc)
	bag := diag.NewBag(0)
	res := form.NewResolver(dir).ResolveAll(tree, diag.BagReporter{Bag: bag})
	if len(res) != 2 {
		t.Fatalf("resolved %d: %+v", len(res), res)
	}
	if string(res[0].Entry.Data) != "abc" {
		t.Fatalf("icon data = %q", res[0].Entry.Data)
	}
	if res[1].Entry.Kind != frx.KindList || len(res[1].Entry.Items) != 2 || res[1].Entry.Items[1] != "yz" {
		t.Fatalf("list = %+v", res[1].Entry)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.ResOffsetOutOfBounds {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
}

func TestResolveMissingFile(t *testing.T) {
	tree := parseForm(t, formSrc)
	bag := diag.NewBag(0)
	res := form.NewResolver(t.TempDir()).ResolveAll(tree, diag.BagReporter{Bag: bag})
	if len(res) != 0 {
		t.Fatalf("expected nothing resolved, got %+v", res)
	}
	if bag.Len() != 3 {
		t.Fatalf("expected one diagnostic per reference, got %v", bag.Items())
	}
	for _, d := range bag.Items() {
		if d.Code != diag.ResMissingFile {
			t.Fatalf("code = %v", d.Code)
		}
	}
}
