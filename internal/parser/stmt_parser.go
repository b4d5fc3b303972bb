package parser

import (
	"vb6parse/internal/diag"
	"vb6parse/internal/syntax"
	"vb6parse/internal/token"
)

// parseStatements: цикл списка операторов. Пустые строки, комментарии и
// одиночные ':' становятся прямыми детьми текущего узла. Останавливается на
// EOF или на терминаторе любого открытого блока.
func (p *Parser) parseStatements() {
	for {
		p.eatTrivia()
		if p.atEOF() || (len(p.blocks) > 0 && p.atAnyTerminator()) {
			return
		}
		switch p.cur().Kind {
		case syntax.Newline, syntax.Comment, syntax.RemComment, syntax.Colon:
			p.bump()
			continue
		}
		before := p.consumed
		p.parseStatement()
		if p.consumed == before {
			p.recoverLine(diag.SynUnexpectedToken, "unexpected "+describe(p.cur()))
		}
	}
}

// parseStatement выбирает грамматику оператора по первому токену.
func (p *Parser) parseStatement() {
	t := p.cur()
	switch {
	case t.Kind == syntax.Identifier:
		p.parseWordStatement(t)
	case t.Kind == syntax.IntegerLiteral || t.Kind == syntax.LongLiteral:
		if p.inline > 0 {
			// If x Then 100: переход на номер строки
			p.startNode(syntax.GotoStatement)
			p.bump()
			p.endStatement()
			p.finishNode()
			return
		}
		p.parseLineNumber()
	case t.Kind == syntax.Period || t.Kind == syntax.Bang || t.Kind == syntax.LeftParen:
		p.parseAssignOrCall()
	default:
		p.recoverLine(diag.SynUnexpectedToken, "unexpected "+describe(t)+" at start of statement")
	}
}

// unsupportedDecls: объявления из других диалектов Basic, которых в VB6 нет.
var unsupportedDecls = map[string]bool{
	"class": true, "structure": true, "interface": true, "namespace": true,
}

func (p *Parser) parseWordStatement(t token.Token) {
	// Label:: только в начале строки и не в однострочном If
	if p.lineStart && p.inline == 0 && p.peekSig(1).Kind == syntax.Colon && !token.IsReserved(t.Text) {
		p.parseLabel()
		return
	}
	if kw, ok := token.LookupKeyword(t.Text); ok {
		if fn := p.keywordStatement(kw); fn != nil {
			fn()
			return
		}
	}
	if unsupportedDecls[lowerASCII(t.Text)] && p.peekSig(1).Kind == syntax.Identifier {
		p.recoverLine(diag.SynUnexpectedStatement, "'"+t.Text+"' declarations are not supported")
		return
	}
	p.parseAssignOrCall()
}

// keywordStatement возвращает разборщик оператора для ключевого слова kw
// или nil, если в этой позиции слово: обычный идентификатор.
func (p *Parser) keywordStatement(kw syntax.Kind) func() {
	switch kw {
	// объявления
	case syntax.DimKeyword, syntax.PublicKeyword, syntax.PrivateKeyword,
		syntax.GlobalKeyword, syntax.FriendKeyword, syntax.StaticKeyword:
		return p.parseModifiedStatement
	case syntax.ConstKeyword:
		return p.parseConstStatement
	case syntax.ReDimKeyword:
		return p.parseReDimStatement
	case syntax.EraseKeyword:
		return p.parseEraseStatement
	case syntax.EnumKeyword:
		return p.parseEnumStatement
	case syntax.DeclareKeyword:
		return p.parseDeclareStatement
	case syntax.EventKeyword:
		return p.parseEventStatement
	case syntax.ImplementsKeyword:
		return p.parseImplementsStatement
	case syntax.OptionKeyword:
		return p.parseOptionStatement
	case syntax.TypeKeyword:
		if p.peekSig(1).Kind == syntax.Identifier && p.softStatement(false) {
			return p.parseTypeStatement
		}
	case syntax.AttributeKeyword:
		if p.peekSig(1).Kind == syntax.Identifier {
			return p.parseAttributeStatement
		}
	case syntax.VersionKeyword:
		if p.peekSig(1).Kind.IsNumericLiteral() {
			return p.parseVersionStatement
		}
	case syntax.BeginKeyword:
		if len(p.blocks) == 0 && p.softStatement(true) {
			return p.parsePropertiesBlock
		}
	case syntax.ObjectKeyword:
		if len(p.blocks) == 0 && p.peekSig(1).Kind == syntax.Equal && p.peekSig(2).Kind == syntax.StringLiteral {
			return p.parseObjectStatement
		}

	// процедуры
	case syntax.SubKeyword, syntax.FunctionKeyword:
		return p.parseProcedure
	case syntax.PropertyKeyword:
		if p.atProcedureHeader() {
			return p.parseProcedure
		}

	// управление
	case syntax.IfKeyword:
		return p.parseIfStatement
	case syntax.SelectKeyword:
		return p.parseSelectStatement
	case syntax.ForKeyword:
		return p.parseForStatement
	case syntax.DoKeyword:
		return p.parseDoStatement
	case syntax.WhileKeyword:
		return p.parseWhileStatement
	case syntax.WithKeyword:
		return p.parseWithStatement
	case syntax.GoToKeyword:
		return func() { p.parseJumpStatement(syntax.GotoStatement, kw) }
	case syntax.GoSubKeyword:
		return func() { p.parseJumpStatement(syntax.GoSubStatement, kw) }
	case syntax.ReturnKeyword:
		return p.parseReturnStatement
	case syntax.ResumeKeyword:
		return p.parseResumeStatement
	case syntax.ExitKeyword:
		return p.parseExitStatement
	case syntax.EndKeyword:
		return p.parseEndStatement
	case syntax.OnKeyword:
		return p.parseOnStatement
	case syntax.ElseIfKeyword, syntax.ElseKeyword, syntax.CaseKeyword,
		syntax.LoopKeyword, syntax.NextKeyword, syntax.WendKeyword:
		return func() { p.parseStrayTerminator(kw) }

	// объектные операторы
	case syntax.CallKeyword:
		return p.parseCallStatement
	case syntax.SetKeyword:
		return func() { p.parseSetLetStatement(syntax.SetStatement, kw) }
	case syntax.LetKeyword:
		return func() { p.parseSetLetStatement(syntax.LetStatement, kw) }
	case syntax.RaiseEventKeyword:
		return p.parseRaiseEventStatement
	}

	if _, ok := token.DefTypeKeyword(p.cur().Text); ok && p.softStatement(false) {
		return p.parseDefTypeStatement
	}
	return p.builtinStatement(kw)
}

// softStatement: мягкое ключевое слово начинает оператор, только если
// следующий токен не превращает его в выражение: "Width = 5", "Name.Text",
// "rs!Name", "Width(1) = 2". allowEmpty: оператор допустим без операндов.
func (p *Parser) softStatement(allowEmpty bool) bool {
	next := p.peekSig(1)
	switch next.Kind {
	case syntax.Equal, syntax.Period, syntax.Bang, syntax.ColonEqual:
		return false
	case syntax.LeftParen:
		return !p.adjacentNext()
	case syntax.Newline, syntax.EOF, syntax.Comment, syntax.RemComment, syntax.Colon:
		return allowEmpty
	}
	if p.inline > 0 && next.Kind == syntax.Identifier {
		if k, _ := token.LookupKeyword(next.Text); k == syntax.ElseKeyword {
			return allowEmpty
		}
	}
	return true
}

// adjacentNext: следующий значимый токен идёт сразу за текущим, без пробелов.
func (p *Parser) adjacentNext() bool {
	i := 0
	for skippable(p.nth(i).Kind) {
		i++
	}
	return !skippable(p.nth(i + 1).Kind)
}

// endStatement завершает оператор: ':' или комментарий и перевод строки.
// Посторонние токены до конца оператора уходят в Unknown.
// В однострочном If перевод строки остаётся внешнему If.
func (p *Parser) endStatement() {
	if !p.atStmtEnd() {
		p.recoverRest(diag.SynExpectLineEnd, "expected end of statement, got "+describe(p.cur()))
	}
	p.eatTrivia()
	if p.eat(syntax.Colon) || p.inline > 0 {
		return
	}
	if p.at(syntax.Comment) || p.at(syntax.RemComment) {
		p.bump()
	}
	p.eat(syntax.Newline)
}

// parseLabel: Name:
func (p *Parser) parseLabel() {
	p.startNode(syntax.LabelStatement)
	p.bump()
	p.bump() // ':'
	if p.atLineEnd() {
		p.endStatement()
	}
	p.finishNode()
}

// parseLineNumber: 100 [:]: номер строки перед оператором.
func (p *Parser) parseLineNumber() {
	p.startNode(syntax.LabelStatement)
	p.bump()
	p.eat(syntax.Colon)
	if p.atLineEnd() {
		p.endStatement()
	}
	p.finishNode()
}

// parseStrayTerminator: Next без For, Loop без Do и т.п.
func (p *Parser) parseStrayTerminator(kw syntax.Kind) {
	owner := map[syntax.Kind]string{
		syntax.ElseIfKeyword: "If", syntax.ElseKeyword: "If", syntax.CaseKeyword: "Select Case",
		syntax.LoopKeyword: "Do", syntax.NextKeyword: "For", syntax.WendKeyword: "While",
	}[kw]
	p.recoverLine(diag.SynUnexpectedBlockEnd, "'"+kwName(kw)+"' without matching '"+owner+"'")
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
