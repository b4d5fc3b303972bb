package cst

import "vb6parse/internal/syntax"

// WithTarget для обращения к члену без объекта (".Caption" внутри With)
// возвращает целевое выражение ближайшего объемлющего With.
// Для всего остального возвращает NoNodeID.
func (t *Tree) WithTarget(id NodeID) NodeID {
	n := t.Node(id)
	if n == nil || n.Kind != syntax.MemberAccessExpression {
		return NoNodeID
	}
	sig := t.Significant(id)
	if len(sig) == 0 || !sig[0].IsToken() {
		return NoNodeID
	}
	if k := t.Kind(sig[0]); k != syntax.Period && k != syntax.Bang {
		return NoNodeID
	}
	for with := t.Ancestor(id, syntax.WithStatement); with.IsValid(); with = t.Ancestor(with, syntax.WithStatement) {
		target := t.withExpr(with)
		if !target.IsValid() {
			continue
		}
		// "With .Font" внутри внешнего With: цель самого With ищется снаружи
		if target == id || t.isDescendant(id, target) {
			continue
		}
		return target
	}
	return NoNodeID
}

func (t *Tree) withExpr(with NodeID) NodeID {
	for _, e := range t.Children(with) {
		if e.IsNode() && t.Node(e.Node).Kind.IsExpression() {
			return e.Node
		}
	}
	return NoNodeID
}

func (t *Tree) isDescendant(id, of NodeID) bool {
	for p := t.Parent(id); p.IsValid(); p = t.Parent(p) {
		if p == of {
			return true
		}
	}
	return false
}
