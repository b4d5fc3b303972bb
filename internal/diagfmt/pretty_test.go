package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"vb6parse/internal/diag"
	"vb6parse/internal/source"
)

func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("x = \"unterminated string\n")
	fileID := fs.AddVirtual("/home/user/project/src/Module1.bas", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 4, End: 24}, "Unterminated string literal"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/src/Module1.bas:1:5"},
		{"relative", PathModeRelative, "src/Module1.bas:1:5"},
		{"basename", PathModeBasename, "Module1.bas:1:5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: tt.mode})
			out := buf.String()
			for _, want := range []string{tt.contains, "ERROR", "LEX1002", "Unterminated string"} {
				if !strings.Contains(out, want) {
					t.Fatalf("output lacks %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestPathModeAuto(t *testing.T) {
	fs := source.NewFileSet()
	tests := []struct {
		path, expected string
	}{
		{"Module1.bas", "Module1.bas:1:5"},
		{"/very/long/absolute/path/to/some/nested/directory/Form1.frm", "Form1.frm:1:5"},
	}
	for _, tt := range tests {
		fileID := fs.AddVirtual(tt.path, []byte("x = 42\n"))
		bag := diag.NewBag(10)
		bag.Add(diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{File: fileID, Start: 4, End: 6}, "Test warning"))

		var buf bytes.Buffer
		Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeAuto})
		if out := buf.String(); !strings.Contains(out, tt.expected) || strings.Contains(out, "/very") {
			t.Fatalf("%s: got\n%s", tt.path, out)
		}
	}
}

func TestPrettyCaret(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.bas", []byte("Sub A()\n\tx = @@\nEnd Sub\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: fileID, Start: 13, End: 15}, "unexpected '@@'"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("short output:\n%s", buf.String())
	}
	if lines[1] != " 2 |     x = @@" {
		t.Fatalf("source line = %q", lines[1])
	}
	if lines[2] != "   |         ^~" {
		t.Fatalf("caret line = %q", lines[2])
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.bas", []byte("If x Then\n"))

	d := diag.NewError(diag.SynUnclosedBlock, source.Span{File: fileID, Start: 0, End: 9}, "'If' is not closed")
	d = d.WithNote(source.Span{File: fileID, Start: 5, End: 9}, "block opened here")
	d = d.WithFix("insert 'End If'", diag.FixEdit{Span: source.Span{File: fileID, Start: 10, End: 10}, NewText: "End If\n"})
	bag := diag.NewBag(4)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true, ShowFixes: true, ShowPreview: true})
	out := buf.String()
	for _, want := range []string{
		"note: test.bas:1:6: block opened here",
		"fix #1: insert 'End If'",
		`apply="End If\n"`,
		"preview:",
		"+ End If",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestPrettyFixPreview(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("example.bas", []byte("x = (1 + 2 ' missing paren"))

	insert := source.Span{File: fileID, Start: 10, End: 10}
	d := diag.New(diag.SevWarning, diag.SynUnexpectedToken, insert, "missing ')'").
		WithFix("insert ')'", diag.FixEdit{Span: insert, NewText: ")"})
	bag := diag.NewBag(2)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowFixes: true, ShowPreview: true})
	out := buf.String()
	if !strings.Contains(out, "- x = (1 + 2 ' missing paren") || !strings.Contains(out, "+ x = (1 + 2) ' missing paren") {
		t.Fatalf("preview missing:\n%s", out)
	}
}

func TestPrettyDropped(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.bas", []byte("@@@\n"))
	bag := diag.NewBag(1)
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: fileID, Start: i, End: i + 1}, "unknown character"))
	}
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.Contains(buf.String(), "2 more diagnostics not shown") {
		t.Fatalf("got:\n%s", buf.String())
	}
}
