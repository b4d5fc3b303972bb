package diag

import (
	"testing"

	"vb6parse/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := range 4 {
		b.Add(NewError(SynUnexpectedToken, source.Span{Start: uint32(i), End: uint32(i + 1)}, "x"))
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
	if b.Dropped() != 2 {
		t.Fatalf("Dropped = %d, want 2", b.Dropped())
	}
}

func TestBagUnlimited(t *testing.T) {
	b := NewBag(0)
	for range 200 {
		if !b.Add(New(SevWarning, SynExpectLineEnd, source.Span{}, "w")) {
			t.Fatal("unlimited bag refused a diagnostic")
		}
	}
	if b.HasErrors() || !b.HasWarnings() {
		t.Fatal("severity summary is wrong")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(10)
	b.Add(NewError(SynExpectExpression, source.Span{Start: 5, End: 6}, "b"))
	b.Add(New(SevWarning, SynExpectLineEnd, source.Span{Start: 1, End: 2}, "a"))
	b.Add(NewError(SynExpectExpression, source.Span{Start: 5, End: 6}, "b again"))
	b.Sort()
	b.Dedup()

	items := b.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items after dedup, got %d", len(items))
	}
	if items[0].Primary.Start != 1 || items[1].Code != SynExpectExpression {
		t.Fatalf("unexpected order: %+v", items)
	}
	if b.ErrorCount() != 1 {
		t.Fatalf("ErrorCount = %d", b.ErrorCount())
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{Start: 3, End: 4}
	ReportError(r, LexUnknownChar, sp, "unknown character '?'").Emit()
	ReportError(r, LexUnknownChar, sp, "unknown character '?'").Emit()
	ReportWarning(r, LexUnknownChar, sp, "other message").
		WithNote(sp, "here").
		WithFix("remove", FixEdit{Span: sp}).
		Emit()

	if bag.Len() != 2 {
		t.Fatalf("bag has %d items, want 2", bag.Len())
	}
	if r.Suppressed() != 1 {
		t.Fatalf("Suppressed = %d", r.Suppressed())
	}
	if d := bag.Items()[1]; len(d.Notes) != 1 || len(d.Fixes) != 1 {
		t.Fatalf("notes/fixes lost: %+v", d)
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar:       "LEX1001",
		SynUnclosedBlock:     "SYN2007",
		ResOffsetOutOfBounds: "RES3001",
		IOLoadFileError:      "IO4001",
		UnknownCode:          "E0000",
	}
	for c, want := range cases {
		if got := c.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", c, got, want)
		}
	}
}

func TestSeverityLevels(t *testing.T) {
	tests := []struct {
		sev   Severity
		name  string
		sarif string
	}{
		{SevInfo, "INFO", "note"},
		{SevWarning, "WARNING", "warning"},
		{SevError, "ERROR", "error"},
		{Severity(9), "UNKNOWN", "note"},
	}
	for _, tt := range tests {
		if tt.sev.String() != tt.name || tt.sev.SarifLevel() != tt.sarif {
			t.Fatalf("%d: got %s/%s", tt.sev, tt.sev, tt.sev.SarifLevel())
		}
	}
	if !(SevInfo < SevWarning && SevWarning < SevError) {
		t.Fatalf("severities are not ordered")
	}
}

func TestInsertionFixEmittedOnce(t *testing.T) {
	bag := NewBag(0)
	at := source.Span{File: 1, Start: 10, End: 14}
	rb := ReportError(BagReporter{Bag: bag}, SynUnclosedBlock, at, "'If' is not closed").
		WithInsertion("insert 'End If'", at, "End If\n")
	rb.Emit()
	rb.Emit()
	if bag.Len() != 1 {
		t.Fatalf("emitted %d times", bag.Len())
	}
	edit := bag.Items()[0].Fixes[0].Edits[0]
	if edit.Span.Start != 10 || edit.Span.End != 10 || edit.NewText != "End If\n" {
		t.Fatalf("insertion edit = %+v", edit)
	}
}
