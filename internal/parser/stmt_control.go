package parser

import (
	"vb6parse/internal/diag"
	"vb6parse/internal/syntax"
)

// ===== If =====

// parseIfStatement разбирает блочную и однострочную формы.
// Блочная: после Then конец строки (или комментарий).
func (p *Parser) parseIfStatement() {
	p.startNode(syntax.IfStatement)
	header := p.cur().Span
	p.bumpKeyword(syntax.IfKeyword)
	p.parseExpr()
	p.expectKeyword(syntax.ThenKeyword)
	header = header.Cover(p.lastSpan)

	if !p.atLineEnd() {
		p.parseInlineIf()
		p.finishNode()
		return
	}

	p.endStatement()
	p.parseBody(blockIf, header)
	seenElse := false
	for {
		switch {
		case p.atKeyword(syntax.ElseIfKeyword):
			if seenElse {
				p.err(diag.SynUnexpectedToken, "'ElseIf' after 'Else'")
			}
			p.startNode(syntax.ElseIfClause)
			p.bumpKeyword(syntax.ElseIfKeyword)
			p.parseExpr()
			p.expectKeyword(syntax.ThenKeyword)
			p.endStatement()
			p.parseBody(blockIf, header)
			p.finishNode()
			continue
		case p.atKeyword(syntax.ElseKeyword):
			if seenElse {
				p.err(diag.SynUnexpectedToken, "duplicate 'Else'")
			}
			seenElse = true
			p.startNode(syntax.ElseClause)
			p.bumpKeyword(syntax.ElseKeyword)
			if p.atStmtEnd() {
				p.endStatement()
			}
			p.parseBody(blockIf, header)
			p.finishNode()
			continue
		}
		break
	}
	if p.atEnd(syntax.IfKeyword) {
		p.bumpKeyword(syntax.EndKeyword)
		p.bumpKeyword(syntax.IfKeyword)
		p.endStatement()
	} else {
		p.closeUnclosed(header, "'If'", "End If")
	}
	p.finishNode()
}

// parseInlineIf: If c Then s1: s2 Else s3: всё на одной логической строке.
func (p *Parser) parseInlineIf() {
	p.inline++
	p.parseInlineStatements()
	if p.atKeyword(syntax.ElseKeyword) {
		p.startNode(syntax.ElseClause)
		p.bumpKeyword(syntax.ElseKeyword)
		p.parseInlineStatements()
		p.finishNode()
	}
	p.inline--
	p.endStatement()
}

func (p *Parser) parseInlineStatements() {
	p.startNode(syntax.StatementList)
	for {
		p.eatTrivia()
		if p.atLineEnd() || p.atKeyword(syntax.ElseKeyword) {
			break
		}
		if p.at(syntax.Colon) {
			p.bump()
			continue
		}
		before := p.consumed
		p.parseStatement()
		if p.consumed == before {
			p.recoverLine(diag.SynUnexpectedToken, "unexpected "+describe(p.cur()))
		}
	}
	p.finishNode()
}

// ===== Select Case =====

func (p *Parser) parseSelectStatement() {
	p.startNode(syntax.SelectCaseStatement)
	header := p.cur().Span
	p.bumpKeyword(syntax.SelectKeyword)
	p.expectKeyword(syntax.CaseKeyword)
	p.parseExpr()
	header = header.Cover(p.lastSpan)
	p.endStatement()

	seenElse := false
	for {
		p.eatTrivia()
		if p.atEOF() || p.atEnd(syntax.SelectKeyword) {
			break
		}
		switch p.cur().Kind {
		case syntax.Newline, syntax.Comment, syntax.RemComment, syntax.Colon:
			p.bump()
			continue
		}
		if p.atKeyword(syntax.CaseKeyword) {
			if seenElse {
				p.err(diag.SynUnexpectedToken, "'Case' after 'Case Else'")
			}
			if p.kwAt(1) == syntax.ElseKeyword {
				seenElse = true
			}
			p.parseCaseClause()
			continue
		}
		if (len(p.blocks) > 0 && p.atAnyTerminator()) || p.atProcedureHeader() {
			break
		}
		p.recoverLine(diag.SynUnexpectedStatement, "expected 'Case', got "+describe(p.cur()))
	}
	if p.atEnd(syntax.SelectKeyword) {
		p.bumpKeyword(syntax.EndKeyword)
		p.bumpKeyword(syntax.SelectKeyword)
		p.endStatement()
	} else {
		p.closeUnclosed(header, "'Select Case'", "End Select")
	}
	p.finishNode()
}

// parseCaseClause: Case cond {, cond} | Case Else, затем тело.
func (p *Parser) parseCaseClause() {
	header := p.cur().Span
	if p.kwAt(1) == syntax.ElseKeyword {
		p.startNode(syntax.CaseElseClause)
		p.bumpKeyword(syntax.CaseKeyword)
		p.bumpKeyword(syntax.ElseKeyword)
	} else {
		p.startNode(syntax.CaseClause)
		p.bumpKeyword(syntax.CaseKeyword)
		for {
			p.parseCaseCondition()
			if !p.eat(syntax.Comma) {
				break
			}
		}
	}
	header = header.Cover(p.lastSpan)
	p.endStatement()
	p.parseBody(blockCase, header)
	p.finishNode()
}

// parseCaseCondition: Is op e | e To e | e
func (p *Parser) parseCaseCondition() {
	if p.atKeyword(syntax.IsKeyword) {
		p.startNode(syntax.CaseIsCondition)
		p.bumpKeyword(syntax.IsKeyword)
		if _, _, kind := binaryOp(p.cur()); isRelationalOp(kind) {
			p.bumpAs(kind)
		} else {
			p.err(diag.SynUnexpectedToken, "expected comparison operator after 'Is', got "+describe(p.cur()))
		}
		p.parseExpr()
		p.finishNode()
		return
	}
	p.eatTrivia()
	cp := p.b.Checkpoint()
	if !p.parseExpr() {
		return
	}
	if p.atKeyword(syntax.ToKeyword) {
		p.b.StartNodeAt(cp, syntax.CaseRange)
		p.bumpKeyword(syntax.ToKeyword)
		p.parseExpr()
		p.finishNode()
	}
}

// ===== Циклы =====

// parseForStatement: For v = a To b [Step s] ... Next [v {, v}]
// и For Each v In coll ... Next [v].
// "Next j, i" закрывает и внешний цикл: лишние имена копятся в nextCarry.
func (p *Parser) parseForStatement() {
	header := p.cur().Span
	node := syntax.ForStatement
	if p.kwAt(1) == syntax.EachKeyword {
		node = syntax.ForEachStatement
	}
	p.startNode(node)
	p.bumpKeyword(syntax.ForKeyword)
	if node == syntax.ForEachStatement {
		p.bumpKeyword(syntax.EachKeyword)
		p.parsePostfixExpr(false)
		if p.expectKeyword(syntax.InKeyword) {
			p.parseExpr()
		}
	} else {
		p.parsePostfixExpr(false)
		if p.expect(syntax.Equal, "'='") {
			p.parseExpr()
			if p.expectKeyword(syntax.ToKeyword) {
				p.parseExpr()
			}
			if p.eatKeyword(syntax.StepKeyword) {
				p.parseExpr()
			}
		}
	}
	header = header.Cover(p.lastSpan)
	p.endStatement()

	switch {
	case !p.parseBody(blockFor, header):
		p.closeUnclosed(header, "'For'", "Next")
	case p.nextCarry > 0:
		// закрыт предыдущим "Next j, i"
		p.nextCarry--
	default:
		p.parseNext()
	}
	p.finishNode()
}

func (p *Parser) parseNext() {
	p.bumpKeyword(syntax.NextKeyword)
	if p.atStmtEnd() {
		p.endStatement()
		return
	}
	p.expectName("loop variable")
	extra := 0
	for p.eat(syntax.Comma) {
		p.expectName("loop variable")
		extra++
	}
	if open := p.openFors(); extra > open {
		p.errAt(diag.SynUnexpectedBlockEnd, p.lastSpan, "'Next' closes more loops than are open")
		extra = open
	}
	p.nextCarry = extra
	p.endStatement()
}

func (p *Parser) openFors() int {
	return p.open[blockFor]
}

// parseDoStatement: Do [While|Until c] ... Loop [While|Until c]
func (p *Parser) parseDoStatement() {
	p.startNode(syntax.DoStatement)
	header := p.cur().Span
	p.bumpKeyword(syntax.DoKeyword)
	p.parseLoopCondition()
	header = header.Cover(p.lastSpan)
	p.endStatement()
	if p.parseBody(blockDo, header) {
		p.bumpKeyword(syntax.LoopKeyword)
		p.parseLoopCondition()
		p.endStatement()
	} else {
		p.closeUnclosed(header, "'Do'", "Loop")
	}
	p.finishNode()
}

func (p *Parser) parseLoopCondition() {
	if p.eatKeyword(syntax.WhileKeyword) || p.eatKeyword(syntax.UntilKeyword) {
		p.parseExpr()
	}
}

// parseWhileStatement: While c ... Wend
func (p *Parser) parseWhileStatement() {
	p.startNode(syntax.WhileStatement)
	header := p.cur().Span
	p.bumpKeyword(syntax.WhileKeyword)
	p.parseExpr()
	header = header.Cover(p.lastSpan)
	p.endStatement()
	if p.parseBody(blockWhile, header) {
		p.bumpKeyword(syntax.WendKeyword)
		p.endStatement()
	} else {
		p.closeUnclosed(header, "'While'", "Wend")
	}
	p.finishNode()
}

// parseWithStatement: With obj ... End With
func (p *Parser) parseWithStatement() {
	p.startNode(syntax.WithStatement)
	header := p.cur().Span
	p.bumpKeyword(syntax.WithKeyword)
	p.parseExpr()
	header = header.Cover(p.lastSpan)
	p.endStatement()
	if p.parseBody(blockWith, header) {
		p.bumpKeyword(syntax.EndKeyword)
		p.bumpKeyword(syntax.WithKeyword)
		p.endStatement()
	} else {
		p.closeUnclosed(header, "'With'", "End With")
	}
	p.finishNode()
}

// ===== Переходы =====

// GoTo label | GoSub label; метка: имя или номер строки.
func (p *Parser) parseJumpStatement(node, kw syntax.Kind) {
	p.startNode(node)
	p.bumpKeyword(kw)
	p.parseLabelRef()
	p.endStatement()
	p.finishNode()
}

func (p *Parser) parseLabelRef() {
	if p.cur().Kind.IsNumericLiteral() {
		p.bump()
		return
	}
	p.expectName("label")
}

func (p *Parser) parseReturnStatement() {
	p.startNode(syntax.ReturnStatement)
	p.bumpKeyword(syntax.ReturnKeyword)
	p.endStatement()
	p.finishNode()
}

// Resume | Resume Next | Resume label
func (p *Parser) parseResumeStatement() {
	p.startNode(syntax.ResumeStatement)
	p.bumpKeyword(syntax.ResumeKeyword)
	if !p.eatKeyword(syntax.NextKeyword) && !p.atStmtEnd() {
		p.parseLabelRef()
	}
	p.endStatement()
	p.finishNode()
}

// Exit Do|For|Function|Property|Sub
func (p *Parser) parseExitStatement() {
	p.startNode(syntax.ExitStatement)
	p.bumpKeyword(syntax.ExitKeyword)
	if p.atAnyKeyword(syntax.DoKeyword, syntax.ForKeyword, syntax.FunctionKeyword,
		syntax.PropertyKeyword, syntax.SubKeyword) {
		p.bumpCurrentKeyword()
	} else {
		p.err(diag.SynExpectKeyword, "expected 'Do', 'For', 'Function', 'Property' or 'Sub' after 'Exit', got "+describe(p.cur()))
	}
	p.endStatement()
	p.finishNode()
}

// parseEndStatement: голый End завершает программу. "End X" здесь
// означает, что блок X не открыт.
func (p *Parser) parseEndStatement() {
	if !p.endIsBare() {
		what := p.peekSig(1).Text
		p.recoverLine(diag.SynUnexpectedBlockEnd, "'End "+what+"' without matching '"+what+"'")
		return
	}
	p.startNode(syntax.EndStatement)
	p.bumpKeyword(syntax.EndKeyword)
	p.endStatement()
	p.finishNode()
}

func (p *Parser) endIsBare() bool {
	next := p.peekSig(1)
	switch next.Kind {
	case syntax.Newline, syntax.EOF, syntax.Comment, syntax.RemComment, syntax.Colon:
		return true
	case syntax.Identifier:
		return p.inline > 0 && p.kwAt(1) == syntax.ElseKeyword
	}
	return false
}

// ===== On ... =====

// parseOnStatement: On [Local] Error GoTo label|0|-1, On Error Resume Next,
// On e GoTo l1, l2 и On e GoSub l1, l2.
func (p *Parser) parseOnStatement() {
	i := 1
	if lowerASCII(p.peekSig(1).Text) == "local" {
		i = 2
	}
	if p.kwAt(i) == syntax.ErrorKeyword {
		p.parseOnError(i == 2)
		return
	}

	p.eatTrivia()
	cp := p.b.Checkpoint()
	p.bumpKeyword(syntax.OnKeyword)
	p.parseExpr()
	node, kw := syntax.OnGoToStatement, syntax.GoToKeyword
	if p.atKeyword(syntax.GoSubKeyword) {
		node, kw = syntax.OnGoSubStatement, syntax.GoSubKeyword
	}
	p.b.StartNodeAt(cp, node)
	if p.expectKeyword(kw) {
		for {
			p.parseLabelRef()
			if !p.eat(syntax.Comma) {
				break
			}
		}
	}
	p.endStatement()
	p.finishNode()
}

func (p *Parser) parseOnError(local bool) {
	p.startNode(syntax.OnErrorStatement)
	p.bumpKeyword(syntax.OnKeyword)
	if local {
		p.bump()
	}
	p.bumpKeyword(syntax.ErrorKeyword)
	switch {
	case p.eatKeyword(syntax.GoToKeyword):
		if p.at(syntax.Minus) {
			p.startNode(syntax.UnaryExpression)
			p.bump()
			if p.cur().Kind.IsNumericLiteral() {
				p.literal(syntax.NumericLiteralExpression)
			} else {
				p.errExpectExpr()
			}
			p.finishNode()
		} else {
			p.parseLabelRef()
		}
	case p.eatKeyword(syntax.ResumeKeyword):
		p.expectKeyword(syntax.NextKeyword)
	default:
		p.err(diag.SynExpectKeyword, "expected 'GoTo' or 'Resume' after 'On Error', got "+describe(p.cur()))
	}
	p.endStatement()
	p.finishNode()
}
