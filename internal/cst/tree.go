package cst

import (
	"fmt"
	"strings"
	"sync"

	"vb6parse/internal/source"
	"vb6parse/internal/syntax"
	"vb6parse/internal/token"
)

// Tree: конкретное синтаксическое дерево одного файла. Листья в порядке
// обхода дают исходный текст байт в байт. После Builder.Finish дерево
// неизменяемо и безопасно для чтения из нескольких горутин.
type Tree struct {
	file   *source.File
	nodes  *Arena[Node]
	tokens *Arena[token.Token]
	elems  []Element
	root   NodeID

	parentsOnce sync.Once
	nodeParent  []NodeID
	tokParent   []NodeID
}

func (t *Tree) File() *source.File { return t.file }

func (t *Tree) Root() NodeID { return t.root }

// RootKind returns the kind of the root node (Root for parsed files).
func (t *Tree) RootKind() syntax.Kind {
	if n := t.Node(t.root); n != nil {
		return n.Kind
	}
	return syntax.Invalid
}

// ChildCount returns the number of direct children of the root.
func (t *Tree) ChildCount() int {
	if n := t.Node(t.root); n != nil {
		return n.ChildCount()
	}
	return 0
}

func (t *Tree) Node(id NodeID) *Node { return t.nodes.Get(uint32(id)) }

func (t *Tree) Token(id TokenID) *token.Token { return t.tokens.Get(uint32(id)) }

// NodeCount returns the number of nodes in the tree.
func (t *Tree) NodeCount() int { return int(t.nodes.Len()) }

// Tokens returns every leaf in source order. READONLY.
func (t *Tree) Tokens() []token.Token { return t.tokens.Slice() }

// Children returns the direct children of id. READONLY.
func (t *Tree) Children(id NodeID) []Element {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	return t.elems[n.first : n.first+n.count]
}

// Kind returns the syntax kind of either side of an element.
func (t *Tree) Kind(e Element) syntax.Kind {
	if e.IsNode() {
		return t.Node(e.Node).Kind
	}
	if tok := t.Token(e.Token); tok != nil {
		return tok.Kind
	}
	return syntax.Invalid
}

// Span returns the source span of an element.
func (t *Tree) Span(e Element) source.Span {
	if e.IsNode() {
		return t.Node(e.Node).Span
	}
	if tok := t.Token(e.Token); tok != nil {
		return tok.Span
	}
	return source.Span{}
}

// Text восстанавливает исходный текст всего файла.
func (t *Tree) Text() string {
	return t.NodeText(t.root)
}

// NodeText concatenates the tokens of the subtree rooted at id.
func (t *Tree) NodeText(id NodeID) string {
	n := t.Node(id)
	if n == nil {
		return ""
	}
	toks := t.tokens.Slice()[n.tokFirst-1 : n.tokEnd-1]
	if t.file != nil && len(toks) > 0 {
		// токены идут подряд без дыр, так что можно взять срез исходника
		return string(t.file.Content[n.Span.Start:n.Span.End])
	}
	var sb strings.Builder
	for i := range toks {
		sb.WriteString(toks[i].Text)
	}
	return sb.String()
}

// ElementText returns the text of a node or token element.
func (t *Tree) ElementText(e Element) string {
	if e.IsNode() {
		return t.NodeText(e.Node)
	}
	if tok := t.Token(e.Token); tok != nil {
		return tok.Text
	}
	return ""
}

func (t *Tree) buildParents() {
	t.parentsOnce.Do(func() {
		t.nodeParent = make([]NodeID, t.nodes.Len()+1)
		t.tokParent = make([]NodeID, t.tokens.Len()+1)
		for id := range t.nodes.All() {
			for _, e := range t.Children(NodeID(id)) {
				if e.IsNode() {
					t.nodeParent[e.Node] = NodeID(id)
				} else {
					t.tokParent[e.Token] = NodeID(id)
				}
			}
		}
	})
}

// Parent returns the parent of a node, NoNodeID for the root.
func (t *Tree) Parent(id NodeID) NodeID {
	t.buildParents()
	if int(id) >= len(t.nodeParent) {
		return NoNodeID
	}
	return t.nodeParent[id]
}

// TokenParent returns the node that directly contains a token.
func (t *Tree) TokenParent(id TokenID) NodeID {
	t.buildParents()
	if int(id) >= len(t.tokParent) {
		return NoNodeID
	}
	return t.tokParent[id]
}

// Walk обходит дерево в прямом порядке. fn возвращает false, чтобы не
// спускаться в детей текущего узла.
func (t *Tree) Walk(fn func(e Element, depth int) bool) {
	if !t.root.IsValid() {
		return
	}
	t.walk(Element{Node: t.root}, 0, fn)
}

func (t *Tree) walk(e Element, depth int, fn func(Element, int) bool) {
	if !fn(e, depth) || !e.IsNode() {
		return
	}
	for _, c := range t.Children(e.Node) {
		t.walk(c, depth+1, fn)
	}
}

// Find returns every node of the given kind in pre-order.
func (t *Tree) Find(kind syntax.Kind) []NodeID {
	var out []NodeID
	t.Walk(func(e Element, _ int) bool {
		if e.IsNode() && t.Node(e.Node).Kind == kind {
			out = append(out, e.Node)
		}
		return true
	})
	return out
}

// FirstChild returns the first direct child node of the given kind.
func (t *Tree) FirstChild(id NodeID, kind syntax.Kind) NodeID {
	for _, e := range t.Children(id) {
		if e.IsNode() && t.Node(e.Node).Kind == kind {
			return e.Node
		}
	}
	return NoNodeID
}

// FirstChildToken returns the first direct child token of the given kind.
func (t *Tree) FirstChildToken(id NodeID, kind syntax.Kind) TokenID {
	for _, e := range t.Children(id) {
		if e.IsToken() && t.Token(e.Token).Kind == kind {
			return e.Token
		}
	}
	return NoTokenID
}

// Significant returns the direct children of id that are not trivia.
func (t *Tree) Significant(id NodeID) []Element {
	kids := t.Children(id)
	out := make([]Element, 0, len(kids))
	for _, e := range kids {
		if !t.Kind(e).IsTrivia() {
			out = append(out, e)
		}
	}
	return out
}

// Ancestor returns the closest proper ancestor of id with the given kind.
func (t *Tree) Ancestor(id NodeID, kind syntax.Kind) NodeID {
	for p := t.Parent(id); p.IsValid(); p = t.Parent(p) {
		if t.Node(p).Kind == kind {
			return p
		}
	}
	return NoNodeID
}

// DebugTree печатает дерево с отступом в два пробела: узлы по имени вида,
// токены с текстом в кавычках.
func (t *Tree) DebugTree() string {
	var sb strings.Builder
	t.Walk(func(e Element, depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth))
		if e.IsNode() {
			sb.WriteString(t.Node(e.Node).Kind.String())
		} else {
			tok := t.Token(e.Token)
			fmt.Fprintf(&sb, "%s %q", tok.Kind, tok.Text)
		}
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}
