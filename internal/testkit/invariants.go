// Package testkit holds structural checks shared by the lexer, parser and
// fuzz tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"vb6parse/internal/cst"
	"vb6parse/internal/parser"
	"vb6parse/internal/source"
	"vb6parse/internal/token"
)

// CheckLossless verifies that the leaves of t concatenate to src.
func CheckLossless(t *cst.Tree, src []byte) error {
	if got := t.Text(); got != string(src) {
		return fmt.Errorf("tree text differs from source: got %d bytes, want %d", len(got), len(src))
	}
	return nil
}

// CheckCoverage verifies that tokens tile the file: contiguous, non-empty,
// starting at 0 and ending at len(content), each Text equal to its bytes.
func CheckCoverage(tokens []token.Token, f *source.File) error {
	size, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		return fmt.Errorf("content length: %w", err)
	}
	var at uint32
	for i, tok := range tokens {
		if tok.Span.Start != at {
			return fmt.Errorf("token %d (%s) starts at %d, expected %d", i, tok.Kind, tok.Span.Start, at)
		}
		if tok.Span.End <= tok.Span.Start {
			return fmt.Errorf("token %d (%s) is empty at %d", i, tok.Kind, at)
		}
		if tok.Span.End > size {
			return fmt.Errorf("token %d (%s) ends past the file: %d > %d", i, tok.Kind, tok.Span.End, size)
		}
		if raw := string(f.Content[tok.Span.Start:tok.Span.End]); raw != tok.Text {
			return fmt.Errorf("token %d (%s) text %q differs from source %q", i, tok.Kind, tok.Text, raw)
		}
		at = tok.Span.End
	}
	if at != size {
		return fmt.Errorf("tokens end at %d, file has %d bytes", at, size)
	}
	return nil
}

// CheckSpans verifies that every node span is the union of its children,
// children are ordered and adjacent, and token spans are non-empty.
func CheckSpans(t *cst.Tree) error {
	var err error
	t.Walk(func(e cst.Element, _ int) bool {
		if err != nil || !e.IsNode() {
			return false
		}
		sp := t.Span(e)
		kids := t.Children(e.Node)
		if len(kids) == 0 {
			if !sp.Empty() {
				err = fmt.Errorf("childless %s has span %s", t.Kind(e), sp)
			}
			return false
		}
		at := sp.Start
		for _, k := range kids {
			ks := t.Span(k)
			if ks.Start != at {
				err = fmt.Errorf("%s: child %s at %s, expected start %d", t.Kind(e), t.Kind(k), ks, at)
				return false
			}
			if k.IsToken() && ks.Empty() {
				err = fmt.Errorf("%s: empty token %s at %d", t.Kind(e), t.Kind(k), ks.Start)
				return false
			}
			at = ks.End
		}
		if at != sp.End {
			err = fmt.Errorf("%s: children end at %d, node ends at %d", t.Kind(e), at, sp.End)
		}
		return true
	})
	return err
}

// CheckIdempotent parses f twice and compares the debug dumps.
func CheckIdempotent(f *source.File) error {
	a := parser.ParseFile(f, parser.Options{}).Tree.DebugTree()
	b := parser.ParseFile(f, parser.Options{}).Tree.DebugTree()
	if a != b {
		return fmt.Errorf("two parses of %s differ", f.Path)
	}
	return nil
}

// CheckAll runs every tree check on a fresh parse of f.
func CheckAll(f *source.File) error {
	tree := parser.ParseFile(f, parser.Options{}).Tree
	if err := CheckLossless(tree, f.Content); err != nil {
		return err
	}
	if err := CheckCoverage(tree.Tokens(), f); err != nil {
		return err
	}
	if err := CheckSpans(tree); err != nil {
		return err
	}
	return CheckIdempotent(f)
}
