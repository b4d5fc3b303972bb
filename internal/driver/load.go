package driver

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"vb6parse/internal/source"
)

// SourceExts are the file kinds that carry VB6 code.
var SourceExts = []string{".bas", ".cls", ".frm", ".ctl", ".dob", ".dsr", ".pag"}

func isSource(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SourceExts {
		if ext == e {
			return true
		}
	}
	return false
}

// Collect expands directories to the VB6 sources under them. Explicit file
// arguments are kept whatever their extension. The result is sorted and
// free of duplicates.
func Collect(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, root := range paths {
		root = filepath.Clean(root)
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isSource(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(out)
	return out, nil
}

// decode turns file bytes into source text; transcoded reports a
// Windows-1252 conversion.
func decode(content []byte, enc Encoding) (text []byte, transcoded bool, err error) {
	switch enc {
	case EncodingUTF8:
		return content, false, nil
	case EncodingAuto:
		if utf8.Valid(content) {
			return content, false, nil
		}
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(content)
	if err != nil {
		return nil, false, fmt.Errorf("decode windows-1252: %w", err)
	}
	return out, true, nil
}

// load reads path into fileSet. Not safe for concurrent use: callers load
// every file before fanning out.
func load(fileSet *source.FileSet, path string, enc Encoding) (source.FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return addDecoded(fileSet, path, content, enc, 0)
}

func addDecoded(fileSet *source.FileSet, path string, content []byte, enc Encoding, flags source.FileFlags) (source.FileID, error) {
	text, transcoded, err := decode(content, enc)
	if err != nil {
		return 0, err
	}
	if transcoded {
		flags |= source.FileDecoded1252
	}
	return fileSet.Add(path, text, flags), nil
}
