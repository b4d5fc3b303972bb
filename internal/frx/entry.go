package frx

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"fortio.org/safecast"
)

// Kind is the header layout of one entry.
type Kind uint8

const (
	KindEmpty   Kind = iota // 12-byte header with no payload
	KindBlob12              // size+8, "lt\0\0", size: pictures and icons
	KindRecord3             // 0xFF, u16 size
	KindList                // u16 count, 0x0003|0x0007, {u16 len, bytes}
	KindRecord4             // u32 size: long text
	KindRecord1             // u8 size: short text
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindBlob12:
		return "blob"
	case KindRecord3:
		return "record16"
	case KindList:
		return "list"
	case KindRecord4:
		return "text"
	case KindRecord1:
		return "record8"
	}
	return "unknown"
}

// Entry is one self-delimited record of a resource file.
type Entry struct {
	Kind   Kind
	Offset int
	Size   int      // header and payload
	Data   []byte   // payload, nil for lists and empty entries
	Items  []string // list items, KindList only
}

var blobSignature = []byte("lt\x00\x00")

var listSignatures = [][]byte{{0x03, 0x00}, {0x07, 0x00}}

// identify определяет формат записи по смещению и её полный размер.
// Порядок проверок важен: 12-байтный заголовок, 0xFF, список, u32, u8.
func identify(buf []byte, off int) (Kind, int, error) {
	n := len(buf)
	if off < 0 || off >= n {
		return 0, 0, fmt.Errorf("%w: offset %d, file length %d", ErrOffsetOutOfBounds, off, n)
	}
	if off+12 <= n && bytes.Equal(buf[off+4:off+8], blobSignature) {
		size1 := binary.LittleEndian.Uint32(buf[off:])
		size2 := binary.LittleEndian.Uint32(buf[off+8:])
		if size1 == 8 && size2 == 0 {
			return KindEmpty, 12, nil
		}
		total, err := addSize(12, size2)
		if err != nil {
			return 0, 0, err
		}
		return KindBlob12, total, nil
	}
	if buf[off] == 0xFF && off+3 <= n {
		size := int(binary.LittleEndian.Uint16(buf[off+1:]))
		if off+3+size > n && size > 0 {
			// последний байт у некоторых записей обрезан
			size--
		}
		return KindRecord3, 3 + size, nil
	}
	if off+4 <= n && isListSignature(buf[off+2:off+4]) {
		count := int(binary.LittleEndian.Uint16(buf[off:]))
		cur := off + 4
		for i := 0; i < count; i++ {
			if cur+2 > n {
				return 0, 0, fmt.Errorf("%w: item %d header at %d out of bounds", ErrCorruptList, i, cur)
			}
			cur += 2 + int(binary.LittleEndian.Uint16(buf[cur:]))
			if cur > n {
				return 0, 0, fmt.Errorf("%w: item %d data out of bounds", ErrCorruptList, i)
			}
		}
		return KindList, cur - off, nil
	}
	if off+4 <= n && bytes.IndexByte(buf[off:off+4], 0) >= 0 {
		total, err := addSize(4, binary.LittleEndian.Uint32(buf[off:]))
		if err != nil {
			return 0, 0, err
		}
		return KindRecord4, total, nil
	}
	size := int(buf[off])
	if off+1+size > n && size > 0 {
		size--
	}
	return KindRecord1, 1 + size, nil
}

func addSize(header int, size uint32) (int, error) {
	s, err := safecast.Conv[int](size)
	if err != nil {
		return 0, fmt.Errorf("%w: record size %d: %w", ErrSizeMismatch, size, err)
	}
	return header + s, nil
}

func isListSignature(b []byte) bool {
	for _, sig := range listSignatures {
		if bytes.Equal(b, sig) {
			return true
		}
	}
	return false
}

// readEntry разбирает запись по смещению, проверяя границы.
func readEntry(buf []byte, off int) (Entry, error) {
	kind, total, err := identify(buf, off)
	if err != nil {
		return Entry{}, err
	}
	e := Entry{Kind: kind, Offset: off, Size: total}
	end := off + total
	if end > len(buf) {
		return e, fmt.Errorf("%w: %s record at %d ends at %d, file length %d", ErrOffsetOutOfBounds, kind, off, end, len(buf))
	}
	switch kind {
	case KindEmpty:
	case KindBlob12:
		size1 := binary.LittleEndian.Uint32(buf[off:])
		size2 := binary.LittleEndian.Uint32(buf[off+8:])
		if size1 < 8 || size2 != size1-8 {
			return e, fmt.Errorf("%w: blob at %d declares %d and %d", ErrSizeMismatch, off, size1, size2)
		}
		e.Data = buf[off+12 : end]
	case KindRecord3:
		e.Data = buf[off+3 : end]
	case KindRecord4:
		e.Data = buf[off+4 : end]
	case KindRecord1:
		e.Data = buf[off+1 : end]
	case KindList:
		items, err := ResolveList(buf[off:end])
		if err != nil {
			return e, err
		}
		e.Items = items
	}
	return e, nil
}
