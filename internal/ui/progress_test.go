package ui

import (
	"fmt"
	"strings"
	"testing"

	"vb6parse/internal/driver"
)

func TestProgressModel(t *testing.T) {
	ch := make(chan driver.Event)
	m := NewProgressModel("parsing", []string{"a.bas", "b.frm"}, ch).(*progressModel)

	m.applyEvent(driver.Event{File: "a.bas", Stage: driver.StageParse, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.frm", Stage: driver.StageResources, Status: driver.StatusWorking})
	m.applyEvent(driver.Event{File: "other.bas", Stage: driver.StageParse, Status: driver.StatusError})

	if got := m.percent(); got < 0.89 || got > 0.91 {
		t.Fatalf("percent = %v", got)
	}
	if m.items[1].status != "resources" {
		t.Fatalf("status = %q", m.items[1].status)
	}

	m.applyEvent(driver.Event{File: "b.frm", Stage: driver.StageParse, Status: driver.StatusError})
	m.done = true
	view := m.View()
	if !strings.Contains(view, "1 with errors") || !strings.Contains(view, "b.frm") {
		t.Fatalf("view:\n%s", view)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Module1.bas", 8); got != "Modul..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate = %q", got)
	}
}

func TestViewHidesFinishedFiles(t *testing.T) {
	files := make([]string, 0, maxRows+5)
	for i := range maxRows + 5 {
		files = append(files, fmt.Sprintf("Module%02d.bas", i))
	}
	m := NewProgressModel("parsing", files, nil).(*progressModel)
	m.applyEvent(driver.Event{File: files[0], Stage: driver.StageParse, Status: driver.StatusDone})
	for _, f := range files[1:] {
		m.applyEvent(driver.Event{File: f, Stage: driver.StageLex, Status: driver.StatusWorking})
	}
	view := m.View()
	if strings.Contains(view, files[0]) {
		t.Fatalf("finished file is listed:\n%s", view)
	}
	if !strings.Contains(view, fmt.Sprintf("1/%d", len(files))) || !strings.Contains(view, "... 4 more") {
		t.Fatalf("view:\n%s", view)
	}
}
