package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("Module1.bas", []byte("Dim a"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}
	id2 := fs.Add("Module1.bas", []byte("Dim b"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	// GetLatest указывает на последнюю версию
	latestID, exists := fs.GetLatest("Module1.bas")
	if !exists || latestID != id2 {
		t.Fatalf("Expected latest ID %d, got %d (exists=%v)", id2, latestID, exists)
	}
	if got := string(fs.Get(id1).Content); got != "Dim a" {
		t.Errorf("old version lost: %q", got)
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.bas", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestCRLFIsKeptVerbatim(t *testing.T) {
	fs := NewFileSet()
	src := []byte("Sub A()\r\nEnd Sub\r\n")
	id := fs.AddVirtual("crlf.bas", src)
	file := fs.Get(id)

	if string(file.Content) != string(src) {
		t.Fatalf("content was rewritten: %q", file.Content)
	}
	if file.Flags&FileHasCRLF == 0 {
		t.Error("Expected FileHasCRLF flag")
	}
	if got := file.GetLine(1); got != "Sub A()" {
		t.Errorf("GetLine(1) = %q", got)
	}
	if got := file.GetLine(2); got != "End Sub" {
		t.Errorf("GetLine(2) = %q", got)
	}
}

func TestBOMIsKeptVerbatim(t *testing.T) {
	fs := NewFileSet()
	src := []byte("\xEF\xBB\xBFOption Explicit\n")
	id := fs.AddVirtual("bom.bas", src)
	file := fs.Get(id)
	if len(file.Content) != len(src) {
		t.Fatalf("BOM was stripped")
	}
	if file.Flags&FileHadBOM == 0 {
		t.Error("Expected FileHadBOM flag")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.bas", []byte("ab\ncd\n"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // сам \n принадлежит первой строке
		{3, LineCol{2, 1}},
		{4, LineCol{2, 2}},
		{6, LineCol{3, 1}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("offset %d: got %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestSliceClamps(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("s.bas", []byte("hello"))
	f := fs.Get(id)
	if got := string(f.Slice(Span{File: id, Start: 1, End: 3})); got != "el" {
		t.Errorf("Slice = %q", got)
	}
	if got := string(f.Slice(Span{File: id, Start: 3, End: 99})); got != "lo" {
		t.Errorf("clamped Slice = %q", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Form1.frm")
	content := "VERSION 5.00\r\nBegin VB.Form Form1\r\nEnd\r\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)
	if string(file.Content) != content {
		t.Errorf("Load changed content: %q", file.Content)
	}
	if file.Flags&FileVirtual != 0 {
		t.Error("loaded file must not be virtual")
	}
	if _, ok := fs.GetByPath(path); !ok {
		t.Error("GetByPath did not find loaded file")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got.Start != 2 || got.End != 8 {
		t.Errorf("Cover = %v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("cross-file Cover changed span: %v", got)
	}
	if !a.Contains(4) || a.Contains(8) {
		t.Error("Contains must be half-open")
	}
}

func TestRelativePath(t *testing.T) {
	base := t.TempDir()
	p := filepath.Join(base, "src", "Module1.bas")
	rel, err := RelativePath(p, base)
	if err != nil {
		t.Fatal(err)
	}
	if rel != "src/Module1.bas" {
		t.Errorf("RelativePath = %q", rel)
	}
}
