package vb6

import (
	"fmt"
	"strings"

	"vb6parse/internal/cst"
	"vb6parse/internal/diag"
	"vb6parse/internal/parser"
	"vb6parse/internal/source"
	"vb6parse/internal/syntax"
)

type (
	// Tree is the lossless syntax tree of one source buffer.
	Tree = cst.Tree
	// Diagnostic is one lexical or syntactic problem, stored beside the tree.
	Diagnostic = diag.Diagnostic
	// Kind tags every node and token of a Tree.
	Kind = syntax.Kind
	// Severity of a Diagnostic.
	Severity = diag.Severity
)

// Options tune a parse. The zero value parses with no diagnostic limit.
type Options struct {
	// MaxErrors caps reported syntax errors; 0 means unlimited.
	MaxErrors uint
}

// Result is the outcome of Parse.
type Result struct {
	Tree        *Tree
	Diagnostics []Diagnostic
}

// HasErrors reports whether any diagnostic has error severity.
func (r Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

// Parse runs the lexer and parser over text. Diagnostics are sorted by position.
func Parse(path, text string, opts Options) Result {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(path, []byte(text)))
	bag := diag.NewBag(0)
	res := parser.ParseFile(file, parser.Options{
		MaxErrors: opts.MaxErrors,
		Reporter:  diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
	})
	bag.Sort()
	return Result{Tree: res.Tree, Diagnostics: bag.Items()}
}

// FromText parses text and returns the tree together with every diagnostic.
// The tree is never nil.
func FromText(path, text string) (*Tree, []Diagnostic) {
	r := Parse(path, text, Options{})
	return r.Tree, r.Diagnostics
}

// FromSource parses text and returns a *ParseError when it has syntax or
// lexical errors. The tree is returned either way.
func FromSource(path, text string) (*Tree, error) {
	r := Parse(path, text, Options{})
	if r.HasErrors() {
		return r.Tree, &ParseError{Path: path, Diagnostics: r.Diagnostics}
	}
	return r.Tree, nil
}

// ParseError carries the diagnostics of a failed FromSource call.
type ParseError struct {
	Path        string
	Diagnostics []Diagnostic
}

func (e *ParseError) Error() string {
	var errs []Diagnostic
	for _, d := range e.Diagnostics {
		if d.Severity == diag.SevError {
			errs = append(errs, d)
		}
	}
	if len(errs) == 0 {
		return e.Path + ": parse failed"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s", e.Path, errs[0].Error())
	if len(errs) > 1 {
		fmt.Fprintf(&sb, " (and %d more)", len(errs)-1)
	}
	return sb.String()
}

// Unwrap exposes each error diagnostic to errors.Is / errors.As.
func (e *ParseError) Unwrap() []error {
	out := make([]error, 0, len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		if d.Severity == diag.SevError {
			out = append(out, d)
		}
	}
	return out
}
