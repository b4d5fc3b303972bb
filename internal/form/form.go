// Package form extracts binary resource references from the property
// blocks of .frm/.ctl/.dob files and resolves them against the
// accompanying .frx/.ctx file.
package form

import (
	"strconv"
	"strings"

	"vb6parse/internal/cst"
	"vb6parse/internal/source"
	"vb6parse/internal/syntax"
)

// Reference is a property value of the form "Form1.frx":01AB.
type Reference struct {
	Control string // имя из заголовка ближайшего Begin
	Key     string // Picture, List, Caption...
	File    string
	Offset  int
	Span    source.Span // вся строка свойства
	Node    cst.NodeID
}

// References returns every resource reference in tree in source order.
func References(tree *cst.Tree) []Reference {
	var out []Reference
	for _, id := range tree.Find(syntax.PropertyLine) {
		key, value, ok := splitLine(tree, id)
		if !ok {
			continue
		}
		file, off, ok := ParseValue(value)
		if !ok {
			continue
		}
		out = append(out, Reference{
			Control: controlName(tree, id),
			Key:     key,
			File:    file,
			Offset:  off,
			Span:    tree.Span(cst.Element{Node: id, Token: cst.NoTokenID}),
			Node:    id,
		})
	}
	return out
}

func splitLine(tree *cst.Tree, id cst.NodeID) (key, value string, ok bool) {
	var k, v strings.Builder
	seen := false
	for _, e := range tree.Children(id) {
		kind := tree.Kind(e)
		if !seen && kind == syntax.Equal {
			seen = true
			continue
		}
		if kind == syntax.Newline || kind == syntax.Comment || kind == syntax.RemComment {
			break
		}
		if seen {
			v.WriteString(tree.ElementText(e))
		} else {
			k.WriteString(tree.ElementText(e))
		}
	}
	return strings.TrimSpace(k.String()), strings.TrimSpace(v.String()), seen
}

// controlName берёт третье слово заголовка "Begin VB.Type Name".
func controlName(tree *cst.Tree, id cst.NodeID) string {
	block := tree.Ancestor(id, syntax.PropertiesBlock)
	if !block.IsValid() {
		return ""
	}
	header := tree.NodeText(block)
	if i := strings.IndexAny(header, "\r\n"); i >= 0 {
		header = header[:i]
	}
	fields := strings.Fields(header)
	if len(fields) < 3 {
		return ""
	}
	return fields[2]
}

// ParseValue splits "Form1.frx":01AB into the file name and the hex
// offset. Anything else is not a reference.
func ParseValue(value string) (file string, offset int, ok bool) {
	if len(value) < 4 || value[0] != '"' {
		return "", 0, false
	}
	end := strings.IndexByte(value[1:], '"')
	if end < 0 {
		return "", 0, false
	}
	file = value[1 : end+1]
	rest := value[end+2:]
	if !strings.HasPrefix(rest, ":") || !isResourceFile(file) {
		return "", 0, false
	}
	n, err := strconv.ParseUint(rest[1:], 16, 31)
	if err != nil {
		return "", 0, false
	}
	return file, int(n), true
}

func isResourceFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range []string{".frx", ".ctx", ".dsx", ".pgx", ".dox"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
