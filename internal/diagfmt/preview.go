package diagfmt

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"vb6parse/internal/diag"
	"vb6parse/internal/source"
)

type fixEditPreview struct {
	before []string
	after  []string
}

// buildFixEditPreview применяет правку к затронутым строкам целиком.
func buildFixEditPreview(fs *source.FileSet, edit diag.FixEdit) (fixEditPreview, error) {
	if !validSpan(fs, edit.Span) {
		return fixEditPreview{}, fmt.Errorf("file %d not in FileSet", edit.Span.File)
	}
	file := fs.Get(edit.Span.File)
	size, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fixEditPreview{}, fmt.Errorf("file too large: %w", err)
	}
	if edit.Span.End > size || edit.Span.Start > edit.Span.End {
		return fixEditPreview{}, fmt.Errorf("edit span %s outside file", edit.Span)
	}
	startPos, endPos := fs.Resolve(edit.Span)
	blockStart := lineStart(file, startPos.Line, size)
	blockEnd := min(max(lineEnd(file, max(endPos.Line, startPos.Line), size), blockStart), size)

	original := file.Content[blockStart:blockEnd]
	relStart := int(edit.Span.Start - blockStart)
	relEnd := int(edit.Span.End - blockStart)

	after := make([]byte, 0, len(original)+len(edit.NewText))
	after = append(after, original[:relStart]...)
	after = append(after, edit.NewText...)
	after = append(after, original[relEnd:]...)

	return fixEditPreview{before: splitLines(original), after: splitLines(after)}, nil
}

// splitLines режет по \n, отбрасывая \r и последний пустой хвост.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	text := strings.TrimRight(string(content), "\r\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func lineStart(f *source.File, line, size uint32) uint32 {
	if line <= 1 {
		return 0
	}
	if idx := int(line - 2); idx < len(f.LineIdx) {
		return f.LineIdx[idx] + 1
	}
	return size
}

// lineEnd: смещение после перевода строки line (включительно).
func lineEnd(f *source.File, line, size uint32) uint32 {
	if line == 0 {
		return 0
	}
	if idx := int(line - 1); idx < len(f.LineIdx) {
		return f.LineIdx[idx] + 1
	}
	return size
}
