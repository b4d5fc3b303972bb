package driver

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"vb6parse/internal/cst"
	"vb6parse/internal/source"
)

// ExportFormat is the encoding of Export.
type ExportFormat uint8

const (
	ExportJSON ExportFormat = iota
	ExportMsgpack
)

func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(s) {
	case "json":
		return ExportJSON, nil
	case "msgpack", "mp":
		return ExportMsgpack, nil
	}
	return ExportJSON, fmt.Errorf("unknown export format %q (expected json|msgpack)", s)
}

// Element is the serialized form of a tree element. Tokens carry Text,
// nodes carry Children.
type Element struct {
	Kind     string    `json:"kind" msgpack:"k"`
	Start    uint32    `json:"start" msgpack:"s"`
	End      uint32    `json:"end" msgpack:"e"`
	Text     string    `json:"text,omitempty" msgpack:"t,omitempty"`
	Children []Element `json:"children,omitempty" msgpack:"c,omitempty"`
}

type ExportedDiagnostic struct {
	Severity string `json:"severity" msgpack:"sev"`
	Code     string `json:"code" msgpack:"code"`
	Message  string `json:"message" msgpack:"msg"`
	Line     uint32 `json:"line" msgpack:"line"`
	Col      uint32 `json:"col" msgpack:"col"`
	Start    uint32 `json:"start" msgpack:"s"`
	End      uint32 `json:"end" msgpack:"e"`
}

type ExportedFile struct {
	Path        string               `json:"path" msgpack:"path"`
	Root        *Element             `json:"root,omitempty" msgpack:"root,omitempty"`
	Diagnostics []ExportedDiagnostic `json:"diagnostics" msgpack:"diags"`
}

// Snapshot converts the subtree at id.
func Snapshot(t *cst.Tree, id cst.NodeID) Element {
	return snapshot(t, cst.Element{Node: id, Token: cst.NoTokenID})
}

func snapshot(t *cst.Tree, e cst.Element) Element {
	sp := t.Span(e)
	out := Element{Kind: t.Kind(e).String(), Start: sp.Start, End: sp.End}
	if e.IsToken() {
		out.Text = t.ElementText(e)
		return out
	}
	kids := t.Children(e.Node)
	out.Children = make([]Element, 0, len(kids))
	for _, k := range kids {
		out.Children = append(out.Children, snapshot(t, k))
	}
	return out
}

func exportFile(fileSet *source.FileSet, r *Result) ExportedFile {
	ef := ExportedFile{Path: r.Path, Diagnostics: make([]ExportedDiagnostic, 0, r.Bag.Len())}
	if r.Tree != nil {
		root := Snapshot(r.Tree, r.Tree.Root())
		ef.Root = &root
	}
	for _, d := range r.Bag.Items() {
		ed := ExportedDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		if r.Loaded {
			lc, _ := fileSet.Resolve(d.Primary)
			ed.Line, ed.Col = lc.Line, lc.Col
		}
		ef.Diagnostics = append(ef.Diagnostics, ed)
	}
	return ef
}

// Export writes results as one document: a JSON array or a msgpack array.
func Export(w io.Writer, fileSet *source.FileSet, results []*Result, format ExportFormat) error {
	files := make([]ExportedFile, 0, len(results))
	for _, r := range results {
		if r != nil {
			files = append(files, exportFile(fileSet, r))
		}
	}
	switch format {
	case ExportMsgpack:
		return msgpack.NewEncoder(w).Encode(files)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(files)
	}
}

// CountErrors sums error diagnostics across results.
func CountErrors(results []*Result) int {
	n := 0
	for _, r := range results {
		if r != nil {
			n += r.Bag.ErrorCount()
		}
	}
	return n
}
