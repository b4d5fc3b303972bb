// Package fix applies the edits attached to diagnostics back to the files
// they were reported in.
package fix

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"vb6parse/internal/diag"
	"vb6parse/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode determines selection strategy for fixes.
type ApplyMode uint8

const (
	ApplyModeOnce ApplyMode = iota // первый по порядку
	ApplyModeAll
	ApplyModeID
)

// ApplyOptions configures how fixes are selected.
type ApplyOptions struct {
	Mode     ApplyMode
	TargetID string
	// DryRun computes new contents without writing files.
	DryRun bool
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	ID          string
	Title       string
	Code        diag.Code
	Message     string
	PrimaryPath string
	EditCount   int
}

// SkippedFix captures a skipped or failed fix with a reason.
type SkippedFix struct {
	ID     string
	Title  string
	Reason string
}

// FileChange summarises modifications performed on a file.
type FileChange struct {
	Path      string
	EditCount int
	// Content is the text after all edits, also filled on dry runs.
	Content []byte
}

// ApplyResult aggregates applied fixes, skipped ones, and file changes.
type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	id    string
	order int
}

// FixID is the stable identifier printed next to a fix: code, file,
// offset and the index among the diagnostic's fixes.
func FixID(d diag.Diagnostic, idx int) string {
	return fmt.Sprintf("%s-%d-%d-%d", d.Code.ID(), d.Primary.File, d.Primary.Start, idx)
}

// Apply collects fixes from diagnostics, selects a subset according to
// opts, and applies them. All spans refer to the loaded contents, so one
// call edits each file in a single pass.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}

	candidates, skips := gatherCandidates(diagnostics)
	result.Skipped = append(result.Skipped, skips...)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)

	selected, skips := selectCandidates(candidates, opts)
	result.Skipped = append(result.Skipped, skips...)
	if len(selected) == 0 {
		return result, ErrNoFixes
	}

	applied, skips, changes, err := applyCandidates(fs, selected, opts.DryRun)
	result.Applied = applied
	result.Skipped = append(result.Skipped, skips...)
	result.FileChanges = changes
	if err != nil {
		return result, err
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	return result, nil
}

func gatherCandidates(diagnostics []diag.Diagnostic) ([]candidate, []SkippedFix) {
	var cands []candidate
	var skips []SkippedFix
	seen := make(map[string]bool)
	order := 0
	for _, d := range diagnostics {
		for idx, f := range d.Fixes {
			id := FixID(d, idx)
			switch {
			case len(f.Edits) == 0:
				skips = append(skips, SkippedFix{ID: id, Title: f.Title, Reason: "fix has no edits"})
				continue
			case seen[id]:
				skips = append(skips, SkippedFix{ID: id, Title: f.Title, Reason: "duplicate fix id"})
				continue
			}
			seen[id] = true
			cands = append(cands, candidate{diag: d, fix: f, id: id, order: order})
			order++
		}
	}
	return cands, skips
}

// sortCandidates orders by file, then primary span, then insertion order.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].diag, candidates[j].diag
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		return candidates[i].order < candidates[j].order
	})
}

func selectCandidates(candidates []candidate, opts ApplyOptions) ([]candidate, []SkippedFix) {
	switch opts.Mode {
	case ApplyModeID:
		for _, cand := range candidates {
			if cand.id == opts.TargetID {
				return []candidate{cand}, nil
			}
		}
		return nil, []SkippedFix{{ID: opts.TargetID, Reason: "fix id not found"}}
	case ApplyModeAll:
		return candidates, nil
	case ApplyModeOnce:
		return candidates[:1], nil
	}
	return nil, nil
}

// placedEdit: правка вместе с порядком вставки для совпадающих позиций.
type placedEdit struct {
	diag.FixEdit
	// nest: у внутреннего блока заголовок дальше, его закрытие идёт первым.
	nest uint32
}

func applyCandidates(fs *source.FileSet, selected []candidate, dryRun bool) ([]AppliedFix, []SkippedFix, []FileChange, error) {
	accepted := make(map[source.FileID][]placedEdit)
	fileEditCount := make(map[source.FileID]int)
	var applied []AppliedFix
	var skipped []SkippedFix

	for _, cand := range selected {
		reason := ""
		staged := make(map[source.FileID][]placedEdit)
		for _, e := range cand.fix.Edits {
			if int(e.Span.File) >= fs.Len() {
				reason = "edit targets an unknown file"
				break
			}
			file := fs.Get(e.Span.File)
			switch {
			case file.Flags&source.FileVirtual != 0 && !dryRun:
				reason = "target file is virtual"
			case file.Flags&source.FileDecoded1252 != 0 && !dryRun:
				reason = "target file was transcoded from windows-1252"
			case e.Span.Start > e.Span.End || int(e.Span.End) > len(file.Content):
				reason = "edit span out of range"
			case conflicts(accepted[e.Span.File], e) || conflicts(staged[e.Span.File], e):
				reason = fmt.Sprintf("conflicts with previously applied edits in %s", file.FormatPath("auto", fs.BaseDir()))
			}
			if reason != "" {
				break
			}
			staged[e.Span.File] = append(staged[e.Span.File], placedEdit{FixEdit: e, nest: cand.diag.Primary.Start})
		}
		if reason != "" {
			skipped = append(skipped, SkippedFix{ID: cand.id, Title: cand.fix.Title, Reason: reason})
			continue
		}
		for id, edits := range staged {
			accepted[id] = append(accepted[id], edits...)
			fileEditCount[id] += len(edits)
		}
		applied = append(applied, AppliedFix{
			ID:          cand.id,
			Title:       cand.fix.Title,
			Code:        cand.diag.Code,
			Message:     cand.diag.Message,
			PrimaryPath: formatFilePath(fs, cand.diag.Primary.File),
			EditCount:   len(cand.fix.Edits),
		})
	}

	ids := make([]source.FileID, 0, len(accepted))
	for id := range accepted {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	changes := make([]FileChange, 0, len(ids))
	for _, id := range ids {
		file := fs.Get(id)
		buf := rewrite(file, accepted[id])
		if !dryRun {
			mode := os.FileMode(0o644)
			if info, err := os.Stat(file.Path); err == nil {
				mode = info.Mode()
			}
			if err := os.WriteFile(file.Path, buf, mode); err != nil {
				return applied, skipped, changes, fmt.Errorf("write %s: %w", file.Path, err)
			}
		}
		changes = append(changes, FileChange{
			Path:      file.FormatPath("relative", fs.BaseDir()),
			EditCount: fileEditCount[id],
			Content:   buf,
		})
	}
	return applied, skipped, changes, nil
}

// rewrite applies non-overlapping edits in one left-to-right pass. Line
// insertions follow the file's line endings and start on a fresh line.
func rewrite(file *source.File, edits []placedEdit) []byte {
	sort.SliceStable(edits, func(i, j int) bool {
		a, b := edits[i], edits[j]
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		if a.Span.End != b.Span.End {
			return a.Span.End < b.Span.End
		}
		return a.nest > b.nest
	})
	src := file.Content
	crlf := file.Flags&source.FileHasCRLF != 0
	var sb strings.Builder
	sb.Grow(len(src) + 64)
	cur := uint32(0)
	for _, e := range edits {
		sb.Write(src[cur:e.Span.Start])
		text := e.NewText
		if e.Span.Empty() && strings.HasSuffix(text, "\n") && e.Span.Start > 0 && src[e.Span.Start-1] != '\n' && !endsWithNewline(sb.String()) {
			text = "\n" + text
		}
		if crlf {
			text = strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\n", "\r\n")
		}
		sb.WriteString(text)
		cur = e.Span.End
	}
	sb.Write(src[cur:])
	return []byte(sb.String())
}

func endsWithNewline(s string) bool {
	return strings.HasSuffix(s, "\n")
}

func conflicts(existing []placedEdit, e diag.FixEdit) bool {
	for _, prev := range existing {
		if spansConflict(prev.Span, e.Span) {
			return true
		}
	}
	return false
}

// spansConflict treats spans as half-open intervals. Two insertions never
// conflict; an insertion conflicts with a span strictly containing it.
func spansConflict(a, b source.Span) bool {
	if a.Empty() && b.Empty() {
		return false
	}
	if a.Empty() {
		return b.Start < a.Start && a.Start < b.End
	}
	if b.Empty() {
		return a.Start < b.Start && b.Start < a.End
	}
	return a.Start < b.End && b.Start < a.End
}

func formatFilePath(fs *source.FileSet, fileID source.FileID) string {
	if int(fileID) >= fs.Len() {
		return ""
	}
	return fs.Get(fileID).FormatPath("auto", fs.BaseDir())
}
