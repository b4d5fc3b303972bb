package parser

import (
	"vb6parse/internal/source"
	"vb6parse/internal/syntax"
)

type blockKind uint8

const (
	blockSub blockKind = iota + 1
	blockFunction
	blockProperty
	blockIf
	blockCase
	blockFor
	blockDo
	blockWhile
	blockWith

	blockKinds
)

type block struct {
	kind   blockKind
	header source.Span
}

func (p *Parser) pushBlock(k blockKind, header source.Span) {
	p.blocks = append(p.blocks, block{kind: k, header: header})
	p.open[k]++
}

func (p *Parser) popBlock() {
	p.open[p.blocks[len(p.blocks)-1].kind]--
	p.blocks = p.blocks[:len(p.blocks)-1]
}

func (p *Parser) inProcedure() bool {
	return p.open[blockSub]+p.open[blockFunction]+p.open[blockProperty] > 0
}

// atTerminator: текущий оператор закрывает блок k (или продолжает его
// следующей ветвью, как ElseIf и Case).
func (p *Parser) atTerminator(k blockKind) bool {
	switch k {
	case blockSub:
		return p.atEnd(syntax.SubKeyword)
	case blockFunction:
		return p.atEnd(syntax.FunctionKeyword)
	case blockProperty:
		return p.atEnd(syntax.PropertyKeyword)
	case blockIf:
		return p.atAnyKeyword(syntax.ElseIfKeyword, syntax.ElseKeyword) || p.atEnd(syntax.IfKeyword)
	case blockCase:
		return p.atKeyword(syntax.CaseKeyword) || p.atEnd(syntax.SelectKeyword)
	case blockFor:
		return p.nextCarry > 0 || p.atKeyword(syntax.NextKeyword)
	case blockDo:
		return p.atKeyword(syntax.LoopKeyword)
	case blockWhile:
		return p.atKeyword(syntax.WendKeyword)
	case blockWith:
		return p.atEnd(syntax.WithKeyword)
	}
	return false
}

// atAnyTerminator проверяет терминаторы всех открытых блоков: чужой
// терминатор закрывает внутренние блоки с диагностикой.
// Заголовок новой процедуры тоже закрывает всё, что открыто.
// Стоимость не зависит от глубины вложенности: проверяются виды блоков
// по счётчикам open, а не весь стек.
func (p *Parser) atAnyTerminator() bool {
	if p.nextCarry > 0 && p.open[blockFor] > 0 {
		return true
	}
	if p.peekSig(0).Kind != syntax.Identifier {
		return false
	}
	for k := blockSub; k < blockKinds; k++ {
		if p.open[k] > 0 && p.atTerminator(k) {
			return true
		}
	}
	return p.inProcedure() && p.atProcedureHeader()
}

// atProcedureHeader: [Public|Private|Friend|Static]... Sub|Function|Property Get|Let|Set
func (p *Parser) atProcedureHeader() bool {
	i := 0
	for isModifier(p.kwAt(i)) {
		i++
	}
	switch p.kwAt(i) {
	case syntax.SubKeyword, syntax.FunctionKeyword:
		return true
	case syntax.PropertyKeyword:
		switch p.kwAt(i + 1) {
		case syntax.GetKeyword, syntax.LetKeyword, syntax.SetKeyword:
			return true
		}
	}
	return false
}

func isModifier(k syntax.Kind) bool {
	switch k {
	case syntax.PublicKeyword, syntax.PrivateKeyword, syntax.FriendKeyword,
		syntax.GlobalKeyword, syntax.StaticKeyword:
		return true
	}
	return false
}

// parseBody: тело блока: StatementList до собственного терминатора,
// чужого терминатора или EOF. Возвращает true, если стоим на своём терминаторе.
func (p *Parser) parseBody(k blockKind, header source.Span) bool {
	p.pushBlock(k, header)
	p.startNode(syntax.StatementList)
	p.parseStatements()
	p.finishNode()
	p.popBlock()
	return p.atTerminator(k)
}
