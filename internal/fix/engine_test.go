package fix

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"vb6parse/internal/diag"
	"vb6parse/internal/parser"
	"vb6parse/internal/source"
)

func insertDiag(file source.FileID, header, at uint32, text string) diag.Diagnostic {
	return diag.NewError(diag.SynUnclosedBlock, source.Span{File: file, Start: header, End: header + 1}, "not closed").
		WithFix("insert '"+text+"'", diag.FixEdit{Span: source.Span{File: file, Start: at, End: at}, NewText: text + "\n"})
}

func TestApplyNestedInsertionsInnerFirst(t *testing.T) {
	fs := source.NewFileSet()
	src := "Sub A()\nIf x Then\n"
	id := fs.AddVirtual("a.bas", []byte(src))
	end := uint32(len(src))
	diags := []diag.Diagnostic{
		insertDiag(id, 0, end, "End Sub"),
		insertDiag(id, 8, end, "End If"),
	}
	res, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeAll, DryRun: true})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 2 || len(res.FileChanges) != 1 {
		t.Fatalf("result = %+v", res)
	}
	want := src + "End If\nEnd Sub\n"
	if got := string(res.FileChanges[0].Content); got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
}

func TestApplyStartsInsertionOnFreshLine(t *testing.T) {
	fs := source.NewFileSet()
	src := "Sub A()\r\n  x = 1"
	id := fs.AddVirtual("a.bas", []byte(src))
	diags := []diag.Diagnostic{insertDiag(id, 0, uint32(len(src)), "End Sub")}
	res, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeOnce, DryRun: true})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := src + "\r\nEnd Sub\r\n"
	if got := string(res.FileChanges[0].Content); got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
}

func TestApplySkipsConflicts(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.bas", []byte("abcdef\n"))
	replace := func(start, end uint32, text string) diag.Diagnostic {
		return diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: start, End: end}, "bad").
			WithFix("replace", diag.FixEdit{Span: source.Span{File: id, Start: start, End: end}, NewText: text})
	}
	diags := []diag.Diagnostic{replace(0, 3, "X"), replace(2, 5, "Y"), replace(5, 6, "Z")}
	res, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeAll, DryRun: true})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 2 || len(res.Skipped) != 1 {
		t.Fatalf("applied %d skipped %d", len(res.Applied), len(res.Skipped))
	}
	if got := string(res.FileChanges[0].Content); got != "XdeZ\n" {
		t.Fatalf("content = %q", got)
	}
}

func TestApplyByID(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.bas", []byte("Sub A()\n"))
	d := insertDiag(id, 0, 8, "End Sub")
	res, err := Apply(fs, []diag.Diagnostic{d}, ApplyOptions{Mode: ApplyModeID, TargetID: "nope", DryRun: true})
	if !errors.Is(err, ErrNoFixes) || len(res.Skipped) != 1 || res.Skipped[0].Reason != "fix id not found" {
		t.Fatalf("unexpected result %+v, %v", res, err)
	}
	res, err = Apply(fs, []diag.Diagnostic{d}, ApplyOptions{Mode: ApplyModeID, TargetID: FixID(d, 0), DryRun: true})
	if err != nil || len(res.Applied) != 1 {
		t.Fatalf("apply by id: %+v, %v", res, err)
	}
}

func TestApplyRefusesVirtualWrite(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.bas", []byte("Sub A()\n"))
	res, err := Apply(fs, []diag.Diagnostic{insertDiag(id, 0, 8, "End Sub")}, ApplyOptions{Mode: ApplyModeAll})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("expected ErrNoFixes, got %v", err)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Reason != "target file is virtual" {
		t.Fatalf("skipped = %+v", res.Skipped)
	}
}

func TestGatherCandidatesSkipsEmptyFixes(t *testing.T) {
	d := diag.NewError(diag.SynUnexpectedToken, source.Span{}, "bad").WithFix("nothing")
	cands, skips := gatherCandidates([]diag.Diagnostic{d})
	if len(cands) != 0 || len(skips) != 1 || skips[0].Reason != "fix has no edits" {
		t.Fatalf("cands %d, skips %+v", len(cands), skips)
	}
}

func TestParserFixesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Mod.bas")
	src := "Sub Main()\n    If x Then\n        y = 1\n"
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	bag := diag.NewBag(0)
	parser.ParseFile(fs.Get(id), parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	bag.Sort()
	if _, err := Apply(fs, bag.Items(), ApplyOptions{Mode: ApplyModeAll}); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	fixed, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	fs2 := source.NewFileSet()
	bag2 := diag.NewBag(0)
	parser.ParseFile(fs2.Get(fs2.AddVirtual("Mod.bas", fixed)), parser.Options{Reporter: diag.BagReporter{Bag: bag2}})
	if bag2.HasErrors() {
		t.Fatalf("fixed source still has errors:\n%s\n%v", fixed, bag2.Items())
	}
}
