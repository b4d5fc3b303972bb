package observ_test

import (
	"strings"
	"testing"

	"vb6parse/internal/observ"
)

func TestTimerReport(t *testing.T) {
	tm := observ.NewTimer()
	i := tm.Begin("lex")
	tm.End(i, "12 tokens")
	j := tm.Begin("parse")
	tm.End(j, "")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 || r.Phases[0].Name != "lex" || r.Phases[0].Note != "12 tokens" {
		t.Fatalf("unexpected report: %+v", r)
	}
	if r.TotalMS < r.Phases[0].DurationMS {
		t.Fatalf("total %.3f below phase %.3f", r.TotalMS, r.Phases[0].DurationMS)
	}
	if s := r.Summary(); !strings.Contains(s, "lex") || !strings.Contains(s, "total") {
		t.Fatalf("summary missing rows:\n%s", s)
	}
}

func TestAggregate(t *testing.T) {
	a := observ.Report{TotalMS: 3, Phases: []observ.PhaseReport{{Name: "parse", DurationMS: 2}, {Name: "resources", DurationMS: 1}}}
	b := observ.Report{TotalMS: 4, Phases: []observ.PhaseReport{{Name: "parse", DurationMS: 4}}}
	got := observ.Aggregate([]observ.Report{a, b})
	if got.TotalMS != 7 {
		t.Fatalf("total = %v", got.TotalMS)
	}
	if len(got.Phases) != 2 || got.Phases[0].DurationMS != 6 || got.Phases[0].Note != "2 files" {
		t.Fatalf("phases = %+v", got.Phases)
	}
	if s := got.Slowest(1); len(s) != 1 || s[0].Name != "parse" {
		t.Fatalf("slowest = %+v", s)
	}
}
