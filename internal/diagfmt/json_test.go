package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"vb6parse/internal/diag"
	"vb6parse/internal/lexer"
	"vb6parse/internal/parser"
	"vb6parse/internal/source"
)

func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("Module1.bas", []byte("Sub Main()\n\tx = \"unterminated\nEnd Sub\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 16, End: 29}, "Unterminated string literal"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, PathMode: PathModeBasename}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "LEX1002" || d.Location.File != "Module1.bas" {
		t.Fatalf("unexpected diagnostic: %+v", d)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 6 || d.Location.EndByte != 29 {
		t.Fatalf("unexpected location: %+v", d.Location)
	}
}

func TestJSONMaxAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.bas", []byte("If x Then\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynUnclosedBlock, source.Span{File: fileID, Start: 0, End: 9}, "'If' is not closed").
		WithFix("insert 'End If'", diag.FixEdit{Span: source.Span{File: fileID, Start: 10, End: 10}, NewText: "End If\n"}))
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: fileID, Start: 3, End: 4}, "second"))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1, IncludeFixes: true, IncludePreviews: true})
	if out.Count != 1 {
		t.Fatalf("Max ignored: %d", out.Count)
	}
	fixes := out.Diagnostics[0].Fixes
	if len(fixes) != 1 || len(fixes[0].Edits) != 1 {
		t.Fatalf("fixes = %+v", fixes)
	}
	e := fixes[0].Edits[0]
	if e.NewText != "End If\n" || e.OldText != "" || len(e.AfterLines) != 1 || e.AfterLines[0] != "End If" {
		t.Fatalf("edit = %+v", e)
	}

	out = BuildDiagnosticsOutput(bag, fs, JSONOpts{})
	if out.Diagnostics[0].Fixes != nil {
		t.Fatalf("fixes included without IncludeFixes")
	}
}

func TestTimingsNotesAlwaysIncluded(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.bas", []byte("x = 1\n"))
	bag := diag.NewBag(0)
	sp := source.Span{File: fileID}
	bag.Add(diag.New(diag.SevInfo, diag.ObsTimings, sp, "timings").WithNote(sp, `{"kind":"file"}`))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{})
	if len(out.Diagnostics[0].Notes) != 1 {
		t.Fatalf("timings note dropped")
	}
}

func TestSarif(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.bas", []byte("x = @\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: fileID, Start: 4, End: 5}, "unknown character '@'"))

	var buf bytes.Buffer
	if err := Sarif(&buf, bag, fs, SarifRunMeta{ToolName: "vb6parse", ToolVersion: "test", InvocationArgs: []string{"check", "a.bas"}}); err != nil {
		t.Fatal(err)
	}
	var log struct {
		Version string `json:"version"`
		Runs    []struct {
			Results []struct {
				RuleID    string `json:"ruleId"`
				Level     string `json:"level"`
				Locations []struct {
					PhysicalLocation struct {
						Region struct {
							StartColumn uint32 `json:"startColumn"`
						} `json:"region"`
					} `json:"physicalLocation"`
				} `json:"locations"`
			} `json:"results"`
			Invocations []struct {
				ExecutionSuccessful bool `json:"executionSuccessful"`
			} `json:"invocations"`
		} `json:"runs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("invalid SARIF: %v", err)
	}
	if log.Version != "2.1.0" || len(log.Runs) != 1 || len(log.Runs[0].Results) != 1 {
		t.Fatalf("unexpected SARIF:\n%s", buf.String())
	}
	r := log.Runs[0].Results[0]
	if r.RuleID != "LEX1001" || r.Level != "error" || r.Locations[0].PhysicalLocation.Region.StartColumn != 5 {
		t.Fatalf("result = %+v", r)
	}
	if log.Runs[0].Invocations[0].ExecutionSuccessful {
		t.Fatalf("run with errors reported as successful")
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("a.bas", []byte("x = 1\n")))
	toks := lexer.New(f, lexer.Options{}).All()

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs, true); err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(buf.String(), "\n"); lines != 3 {
		t.Fatalf("expected 3 significant tokens:\n%s", buf.String())
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, toks, false); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != len(toks) || !out[1].Trivia || out[0].Text != "x" {
		t.Fatalf("tokens = %+v", out)
	}
}

func TestFormatTree(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("a.bas", []byte("x = 1 ' c\n")))
	tree := parser.ParseFile(f, parser.Options{}).Tree

	var buf bytes.Buffer
	if err := FormatTree(&buf, tree, TreeOpts{Trivia: true}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != tree.DebugTree() {
		t.Fatalf("FormatTree differs from DebugTree:\n%s\nvs\n%s", buf.String(), tree.DebugTree())
	}

	buf.Reset()
	if err := FormatTree(&buf, tree, TreeOpts{Spans: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "Whitespace") || strings.Contains(out, "Comment") || !strings.Contains(out, "Root @0..10") {
		t.Fatalf("unexpected tree:\n%s", out)
	}
}
