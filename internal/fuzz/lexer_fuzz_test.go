package fuzztests

import (
	"testing"

	"vb6parse/internal/diag"
	"vb6parse/internal/lexer"
	"vb6parse/internal/source"
	"vb6parse/internal/testkit"
)

func FuzzLexerCoverage(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input, maxFuzzInput)
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.bas", input))

		bag := diag.NewBag(64)
		toks := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}}).All()
		if err := testkit.CheckCoverage(toks, file); err != nil {
			t.Fatalf("%v\ninput: %q", err, truncateForLog(input, 200))
		}
	})
}
