package fuzztests

import (
	"testing"
	"time"

	"vb6parse/internal/diag"
	"vb6parse/internal/parser"
	"vb6parse/internal/source"
	"vb6parse/internal/testkit"
)

// parseTimeout: дольше: почти наверняка зацикливание восстановления.
const parseTimeout = 5 * time.Second

func FuzzParserRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input, maxFuzzInput)
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.bas", input))

		bag := diag.NewBag(128)
		tree := parser.ParseFile(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}, MaxErrors: 128}).Tree
		if err := testkit.CheckLossless(tree, input); err != nil {
			t.Fatalf("%v\ninput: %q", err, truncateForLog(input, 200))
		}
		if err := testkit.CheckSpans(tree); err != nil {
			t.Fatalf("%v\ninput: %q", err, truncateForLog(input, 200))
		}
	})
}

func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input, maxFuzzInput)
		done := make(chan struct{})
		go func() {
			defer close(done)
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.bas", input))
			_ = parser.ParseFile(file, parser.Options{MaxErrors: 128})
		}()
		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang: no result after %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}
