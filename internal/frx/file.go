package frx

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"fortio.org/safecast"

	"vb6parse/internal/diag"
	"vb6parse/internal/source"
)

// ResourceFile is a fully scanned .frx/.ctx file. Scanning never fails:
// an unreadable region is reported and skipped one byte at a time.
type ResourceFile struct {
	Name    string
	buf     []byte
	entries map[int]Entry
}

// Parse scans buf from offset 0. Problems go to rep with RES codes;
// rep may be nil.
func Parse(name string, buf []byte, rep diag.Reporter) *ResourceFile {
	f := &ResourceFile{Name: name, buf: buf, entries: make(map[int]Entry)}
	for off := 0; off < len(buf); {
		e, err := readEntry(buf, off)
		if err != nil {
			report(rep, off, err)
			if e.Size > 0 && off+e.Size <= len(buf) {
				// заголовок понятен, содержимое битое: пропускаем запись целиком
				off += e.Size
			} else {
				off++
			}
			continue
		}
		f.entries[off] = e
		off += e.Size
	}
	return f
}

// Open reads and scans the file at path.
func Open(path string, rep diag.Reporter) (*ResourceFile, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open resource file: %w", err)
	}
	return Parse(filepath.Base(path), buf, rep), nil
}

func report(rep diag.Reporter, off int, err error) {
	if rep == nil {
		return
	}
	// спаны указывают в байты ресурсного файла, а не исходника
	start, convErr := safecast.Conv[uint32](off)
	if convErr != nil {
		start = 0
	}
	sp := source.Span{Start: start, End: start + 1}
	diag.ReportWarning(rep, Code(err), sp, err.Error()).Emit()
}

// Entry returns the entry that starts exactly at offset.
func (f *ResourceFile) Entry(offset int) (Entry, bool) {
	e, ok := f.entries[offset]
	return e, ok
}

// Entries returns all entries ordered by offset.
func (f *ResourceFile) Entries() []Entry {
	out := make([]Entry, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out
}

// Len is the file size in bytes.
func (f *ResourceFile) Len() int { return len(f.buf) }

// Resolve looks up the record at offset, like the package-level Resolve
// but without touching the disk again.
func (f *ResourceFile) Resolve(offset int) ([]byte, error) {
	return resolveBytes(f.buf, offset)
}

// EntryAt returns the entry at offset, decoding it directly when the scan
// did not land on that offset.
func (f *ResourceFile) EntryAt(offset int) (Entry, error) {
	if e, ok := f.entries[offset]; ok {
		return e, nil
	}
	return readEntry(f.buf, offset)
}
