package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	maxSeedBytes = 64 << 10
	maxFuzzInput = 1 << 16
)

var sourceExts = map[string]bool{
	".bas": true, ".cls": true, ".frm": true, ".ctl": true, ".dob": true, ".dsr": true, ".pag": true,
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range edgeSeeds {
		f.Add([]byte(s))
	}
}

// edgeSeeds: входы, на которых ломалось восстановление.
var edgeSeeds = []string{
	"",
	"Sub A(\n",
	"If x Then y = 1 Else If z Then\n",
	"Next j, i\n",
	"For i = 1 To 10: For j = 1 To 2: Next j, i\n",
	"Select Case x\nCase Is\nEnd Select\n",
	"x = ((((((((((1\n",
	"Begin VB.Form F\n BeginProperty Font\n End\n",
	"Private Private Sub\n",
	"Dim a(1 To , ) As\n",
	"x = 1 _\n",
	"On Error Resume\n",
	"On Error GoTo -\n",
	"Close #1: Close #2 #1/2/2000 12:30 PM#\n",
	"x = Input(1, #",
	"Declare Function F Lib\n",
	"With\nEnd With\nEnd With\n",
	"Property Get\nEnd Property\n",
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !sourceExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clamp(src, maxSeedBytes))
		return nil
	})
}

func clamp(input []byte, n int) []byte {
	if len(input) > n {
		input = input[:n]
	}
	return append([]byte(nil), input...)
}

func truncateForLog(input []byte, n int) []byte {
	if len(input) <= n {
		return input
	}
	return append(append([]byte(nil), input[:n]...), "..."...)
}
