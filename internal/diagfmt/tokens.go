package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"vb6parse/internal/source"
	"vb6parse/internal/token"
)

type TokenOutput struct {
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Start  uint32 `json:"start"`
	End    uint32 `json:"end"`
	Trivia bool   `json:"trivia,omitempty"`
}

// FormatTokensPretty: "  n: Kind  "text" at l:c-l:c"; trivia are shown
// unless skipTrivia.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet, skipTrivia bool) error {
	n := 0
	for _, tok := range tokens {
		if skipTrivia && tok.IsTrivia() {
			continue
		}
		n++
		s, e := fs.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%4d: %-18s %-20q at %d:%d-%d:%d\n", n, tok.Kind, tok.Text, s.Line, s.Col, e.Line, e.Col); err != nil {
			return err
		}
	}
	return nil
}

func FormatTokensJSON(w io.Writer, tokens []token.Token, skipTrivia bool) error {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		if skipTrivia && tok.IsTrivia() {
			continue
		}
		out = append(out, TokenOutput{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Start:  tok.Span.Start,
			End:    tok.Span.End,
			Trivia: tok.IsTrivia(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
