package driver

import (
	"encoding/json"
	"fmt"

	"vb6parse/internal/diag"
	"vb6parse/internal/observ"
	"vb6parse/internal/source"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// appendTimings кладёт отчёт таймера в bag как OBS6001, заметка: JSON.
func appendTimings(bag *diag.Bag, file source.FileID, path string, report observ.Report) {
	payload := timingPayload{Kind: "file", Path: path, TotalMS: report.TotalMS, Phases: report.Phases}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	sp := source.Span{File: file}
	d := diag.New(diag.SevInfo, diag.ObsTimings, sp, fmt.Sprintf("timings: total %.2f ms", report.TotalMS)).
		WithNote(sp, string(data))
	if !bag.Add(d) {
		// bag переполнен, таймингам место найдётся всегда
		overflow := diag.NewBag(1)
		overflow.Add(d)
		bag.Merge(overflow)
	}
}
