package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"vb6parse/internal/source"
)

type bufCloser struct {
	bytes.Buffer
	closed bool
}

func (b *bufCloser) Close() error {
	b.closed = true
	return nil
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"off", LevelOff, true},
		{"PHASE", LevelPhase, true},
		{"Debug", LevelDebug, true},
		{"verbose", LevelOff, false},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if (err == nil) != tc.ok || got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, %v", tc.in, got, err)
		}
	}
}

func TestLevelScopes(t *testing.T) {
	if LevelPhase.ShouldEmit(ScopeFile) || !LevelPhase.ShouldEmit(ScopePass) {
		t.Fatalf("phase level must stop at passes")
	}
	if !LevelDetail.ShouldEmit(ScopeFile) || LevelDetail.ShouldEmit(ScopeNode) {
		t.Fatalf("detail level must stop at files")
	}
	if LevelError.ShouldEmit(ScopeDriver) {
		t.Fatalf("error level streams nothing")
	}
	if !LevelError.Captures(ScopeFile) || LevelError.Captures(ScopeNode) {
		t.Fatalf("error level must capture up to files")
	}
}

func TestRingKeepsLastEvents(t *testing.T) {
	ring := NewRingTracer(3, LevelDebug)
	for i := 1; i <= 5; i++ {
		ring.Emit(&Event{Seq: uint64(i), Kind: KindPoint, Scope: ScopeNode, Name: "p"})
	}
	snap := ring.Snapshot()
	if len(snap) != 3 || snap[0].Seq != 3 || snap[2].Seq != 5 {
		t.Fatalf("snapshot = %+v", snap)
	}
	var buf bytes.Buffer
	if err := ring.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Fatalf("dump:\n%s", buf.String())
	}
}

func TestStreamNDJSON(t *testing.T) {
	var out bufCloser
	tr := NewStreamTracer(&out, LevelPhase, FormatNDJSON)
	sp := Begin(tr, ScopePass, "parse", 0)
	Point(tr, ScopeNode, "recover", "skipped", sp.ID())
	sp.WithExtra("nodes", "12").End("ok")
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
	if !out.closed {
		t.Fatalf("writer not closed")
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected begin and end only, got:\n%s", out.String())
	}
	var end struct {
		Kind  string            `json:"kind"`
		Name  string            `json:"name"`
		Extra map[string]string `json:"extra"`
	}
	if err := json.Unmarshal([]byte(lines[1]), &end); err != nil {
		t.Fatal(err)
	}
	if end.Kind != "end" || end.Name != "parse" || end.Extra["nodes"] != "12" {
		t.Fatalf("end event = %+v", end)
	}
}

func TestStreamChromeIsValidJSON(t *testing.T) {
	var out bufCloser
	tr := NewStreamTracer(&out, LevelDebug, FormatChrome)
	sp := Begin(tr, ScopeFile, "file:A.bas", 0)
	Point(tr, ScopeNode, "recover", "", sp.ID())
	sp.End("")
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
	var doc struct {
		TraceEvents []struct {
			Ph string `json:"ph"`
		} `json:"traceEvents"`
	}
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("invalid chrome trace: %v\n%s", err, out.String())
	}
	var phs []string
	for _, e := range doc.TraceEvents {
		phs = append(phs, e.Ph)
	}
	if strings.Join(phs, "") != "BiE" {
		t.Fatalf("phases = %v", phs)
	}
}

func TestNewSelectsTracer(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr != Nop {
		t.Fatalf("off level must give Nop, got %T %v", tr, err)
	}
	var out bytes.Buffer
	tr, err = New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &out})
	if err != nil {
		t.Fatal(err)
	}
	multi, ok := tr.(*MultiTracer)
	if !ok || multi.Ring() == nil {
		t.Fatalf("both mode = %T", tr)
	}
	Begin(tr, ScopeDriver, "run", 0).End("")
	if len(multi.Ring().Snapshot()) != 2 || out.Len() == 0 {
		t.Fatalf("events not fanned out")
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatalf("empty context must give Nop")
	}
	ring := NewRingTracer(8, LevelDebug)
	ctx := WithSpanContext(WithTracer(context.Background(), ring), SpanContext{SpanID: 42})
	if FromContext(ctx) != ring || CurrentSpan(ctx).SpanID != 42 {
		t.Fatalf("context lost tracer or span")
	}
}

func TestSpanContextCarriesFile(t *testing.T) {
	ring := NewRingTracer(8, LevelDebug)
	file := &source.File{ID: 3, Path: "forms/Main.frm"}
	run := Begin(ring, ScopeDriver, "run", 0)
	sc := SpanContext{}.Under(run).ForFile(file)
	if sc.SpanID != run.ID() || sc.File != 3 {
		t.Fatalf("span context = %+v", sc)
	}
	fileSpan := Begin(ring, ScopeFile, "file:Main.frm", sc.SpanID)
	child := sc.Under(fileSpan)
	if child.SpanID != fileSpan.ID() || child.Path != file.Path {
		t.Fatalf("re-parented context lost file: %+v", child)
	}
	if got := child.Annotate(nil)["file"]; got != "forms/Main.frm" {
		t.Fatalf("annotate = %q", got)
	}
	if extra := (SpanContext{SpanID: 1}).Annotate(nil); extra != nil {
		t.Fatalf("run-level context must not add a file: %v", extra)
	}
}

func TestDisabledSpanIsNoop(t *testing.T) {
	ring := NewRingTracer(8, LevelPhase)
	sp := Begin(ring, ScopeNode, "deep", 0)
	sp.WithExtra("k", "v").End("")
	if sp.ID() != 0 || len(ring.Snapshot()) != 0 {
		t.Fatalf("node scope leaked at phase level")
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"run.ndjson": FormatNDJSON,
		"run.json":   FormatChrome,
		"run.log":    FormatText,
		"":           FormatText,
	}
	for path, want := range cases {
		if got := formatFromPath(path); got != want {
			t.Fatalf("formatFromPath(%q) = %v, want %v", path, got, want)
		}
	}
}
