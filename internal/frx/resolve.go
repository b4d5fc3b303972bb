package frx

import (
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/text/encoding/charmap"
)

// Resolve reads the resource file at path and returns the record that
// starts at offset. Pictures and text records come back without their
// header. A list record comes back whole, ready for ResolveList.
func Resolve(path string, offset int) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read resource file: %w", err)
	}
	return resolveBytes(buf, offset)
}

func resolveBytes(buf []byte, offset int) ([]byte, error) {
	e, err := readEntry(buf, offset)
	if err != nil {
		return nil, err
	}
	if e.Kind == KindList {
		return buf[e.Offset : e.Offset+e.Size], nil
	}
	return e.Data, nil
}

// ResolveList decodes a list record (ListBox.List, ComboBox.ItemData):
// u16 item count, a 0x0003 or 0x0007 signature, then length-prefixed
// Windows-1252 strings.
func ResolveList(b []byte) ([]string, error) {
	if len(b) < 4 {
		return nil, fmt.Errorf("%w: list header needs 4 bytes, got %d", ErrHeaderTruncated, len(b))
	}
	if !isListSignature(b[2:4]) {
		return nil, fmt.Errorf("%w: list signature % x", ErrBadSignature, b[2:4])
	}
	count := int(binary.LittleEndian.Uint16(b))
	dec := charmap.Windows1252.NewDecoder()
	items := make([]string, 0, count)
	cur := 4
	for i := 0; i < count; i++ {
		if cur+2 > len(b) {
			return items, fmt.Errorf("%w: item %d header out of bounds", ErrCorruptList, i)
		}
		size := int(binary.LittleEndian.Uint16(b[cur:]))
		start, end := cur+2, cur+2+size
		if end > len(b) {
			return items, fmt.Errorf("%w: item %d data out of bounds", ErrCorruptList, i)
		}
		s, err := dec.Bytes(b[start:end])
		if err != nil {
			return items, fmt.Errorf("%w: item %d: %w", ErrCorruptList, i, err)
		}
		items = append(items, string(s))
		cur = end
	}
	return items, nil
}

// DecodeText decodes a text record payload (Caption, Text, Tag) from Windows-1252.
func DecodeText(data []byte) (string, error) {
	s, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(s), nil
}
