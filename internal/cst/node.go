package cst

import (
	"vb6parse/internal/source"
	"vb6parse/internal/syntax"
)

// Node: внутренний узел дерева. Дети лежат в общем срезе Tree.elems,
// токены поддерева образуют непрерывный диапазон [tokFirst, tokEnd).
type Node struct {
	Kind syntax.Kind
	Span source.Span

	first, count     uint32
	tokFirst, tokEnd uint32
}

// ChildCount returns the number of direct children, tokens included.
func (n *Node) ChildCount() int { return int(n.count) }

// TokenCount returns the number of tokens in the subtree.
func (n *Node) TokenCount() int { return int(n.tokEnd - n.tokFirst) }
