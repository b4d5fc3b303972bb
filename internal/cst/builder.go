package cst

import (
	"fmt"

	"vb6parse/internal/source"
	"vb6parse/internal/syntax"
	"vb6parse/internal/token"
)

// Hints задают начальные ёмкости арен.
type Hints struct{ Nodes, Tokens uint }

type frame struct {
	kind       syntax.Kind
	childStart int
	tokFirst   uint32
}

// Builder собирает дерево в стиле start/finish: парсер открывает узел,
// добавляет токены и вложенные узлы, затем закрывает его. Checkpoint
// позволяет задним числом обернуть уже добавленных детей в новый узел
// (левый операнд бинарного выражения).
type Builder struct {
	tree    *Tree
	stack   []frame
	pending []Element
	off     uint32
}

// Checkpoint: позиция в списке детей открытого узла.
type Checkpoint struct {
	pending int
	tok     uint32
}

func NewBuilder(file *source.File, hints Hints) *Builder {
	if hints.Tokens == 0 {
		hints.Tokens = 1 << 8
	}
	if hints.Nodes == 0 {
		hints.Nodes = hints.Tokens / 2
	}
	return &Builder{
		tree: &Tree{
			file:   file,
			nodes:  NewArena[Node](hints.Nodes),
			tokens: NewArena[token.Token](hints.Tokens),
		},
	}
}

// StartNode открывает узел kind; последующие элементы становятся его детьми.
func (b *Builder) StartNode(kind syntax.Kind) {
	b.stack = append(b.stack, frame{
		kind:       kind,
		childStart: len(b.pending),
		tokFirst:   b.tree.tokens.Len() + 1,
	})
}

// Checkpoint запоминает текущую позицию для StartNodeAt.
func (b *Builder) Checkpoint() Checkpoint {
	return Checkpoint{pending: len(b.pending), tok: b.tree.tokens.Len() + 1}
}

// StartNodeAt открывает узел, забирая в него всех детей, добавленных после cp.
func (b *Builder) StartNodeAt(cp Checkpoint, kind syntax.Kind) {
	if n := len(b.stack); n > 0 && cp.pending < b.stack[n-1].childStart {
		panic(fmt.Sprintf("cst: checkpoint %d precedes open node %s", cp.pending, b.stack[n-1].kind))
	}
	if cp.pending > len(b.pending) {
		panic("cst: checkpoint is ahead of builder")
	}
	b.stack = append(b.stack, frame{kind: kind, childStart: cp.pending, tokFirst: cp.tok})
}

// Token добавляет лист в текущий открытый узел.
func (b *Builder) Token(t token.Token) TokenID {
	if len(b.stack) == 0 {
		panic("cst: token outside of any node")
	}
	id := TokenID(b.tree.tokens.Allocate(t))
	b.pending = append(b.pending, Element{Token: id})
	b.off = t.Span.End
	return id
}

// FinishNode закрывает последний открытый узел.
func (b *Builder) FinishNode() NodeID {
	n := len(b.stack)
	if n == 0 {
		panic("cst: FinishNode without StartNode")
	}
	fr := b.stack[n-1]
	b.stack = b.stack[:n-1]

	kids := b.pending[fr.childStart:]
	first := uint32(len(b.tree.elems))
	b.tree.elems = append(b.tree.elems, kids...)
	b.pending = b.pending[:fr.childStart]

	tokEnd := b.tree.tokens.Len() + 1
	sp := source.Span{File: b.fileID(), Start: b.off, End: b.off}
	if tokEnd > fr.tokFirst {
		sp.Start = b.tree.tokens.Get(fr.tokFirst).Span.Start
		sp.End = b.tree.tokens.Get(tokEnd - 1).Span.End
	}

	id := NodeID(b.tree.nodes.Allocate(Node{
		Kind:     fr.kind,
		Span:     sp,
		first:    first,
		count:    uint32(len(kids)),
		tokFirst: fr.tokFirst,
		tokEnd:   tokEnd,
	}))
	if len(b.stack) == 0 {
		b.tree.root = id
	} else {
		b.pending = append(b.pending, Element{Node: id})
	}
	return id
}

// Depth returns the number of open nodes.
func (b *Builder) Depth() int { return len(b.stack) }

// CurrentKind returns the kind of the innermost open node, or Invalid.
func (b *Builder) CurrentKind() syntax.Kind {
	if len(b.stack) == 0 {
		return syntax.Invalid
	}
	return b.stack[len(b.stack)-1].kind
}

// Finish закрывает все открытые узлы и возвращает дерево.
// Builder после этого использовать нельзя.
func (b *Builder) Finish() *Tree {
	for len(b.stack) > 0 {
		b.FinishNode()
	}
	t := b.tree
	b.tree = nil
	return t
}

func (b *Builder) fileID() source.FileID {
	if b.tree.file == nil {
		return 0
	}
	return b.tree.file.ID
}
