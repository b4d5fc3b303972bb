package parser

import (
	"vb6parse/internal/diag"
	"vb6parse/internal/syntax"
)

type builtinSpec struct {
	node       syntax.Kind
	allowEmpty bool
}

// builtins: встроенные операторы с общей грамматикой:
// Kw [#]arg {,|; [#][arg]} с пропусками, To-диапазонами и '='.
var builtins = map[syntax.Kind]builtinSpec{
	syntax.AppActivateKeyword:   {syntax.AppActivateStatement, false},
	syntax.BeepKeyword:          {syntax.BeepStatement, true},
	syntax.ChDirKeyword:         {syntax.ChDirStatement, false},
	syntax.ChDriveKeyword:       {syntax.ChDriveStatement, false},
	syntax.CloseKeyword:         {syntax.CloseStatement, true},
	syntax.DeleteSettingKeyword: {syntax.DeleteSettingStatement, false},
	syntax.ErrorKeyword:         {syntax.ErrorStatement, false},
	syntax.FileCopyKeyword:      {syntax.FileCopyStatement, false},
	syntax.GetKeyword:           {syntax.GetStatement, false},
	syntax.PutKeyword:           {syntax.PutStatement, false},
	syntax.InputKeyword:         {syntax.InputStatement, false},
	syntax.KillKeyword:          {syntax.KillStatement, false},
	syntax.LoadKeyword:          {syntax.LoadStatement, false},
	syntax.UnloadKeyword:        {syntax.UnloadStatement, false},
	syntax.LockKeyword:          {syntax.LockStatement, false},
	syntax.UnlockKeyword:        {syntax.UnlockStatement, false},
	syntax.MkDirKeyword:         {syntax.MkDirStatement, false},
	syntax.RmDirKeyword:         {syntax.RmDirStatement, false},
	syntax.PrintKeyword:         {syntax.PrintStatement, true},
	syntax.WriteKeyword:         {syntax.WriteStatement, true},
	syntax.RandomizeKeyword:     {syntax.RandomizeStatement, true},
	syntax.ResetKeyword:         {syntax.ResetStatement, true},
	syntax.SavePictureKeyword:   {syntax.SavePictureStatement, false},
	syntax.SaveSettingKeyword:   {syntax.SaveSettingStatement, false},
	syntax.SeekKeyword:          {syntax.SeekStatement, false},
	syntax.SendKeysKeyword:      {syntax.SendKeysStatement, false},
	syntax.SetAttrKeyword:       {syntax.SetAttrStatement, false},
	syntax.WidthKeyword:         {syntax.WidthStatement, false},
}

// builtinStatement: разборщик встроенного оператора или nil.
func (p *Parser) builtinStatement(kw syntax.Kind) func() {
	if spec, ok := builtins[kw]; ok {
		if !p.softStatement(spec.allowEmpty) {
			return nil
		}
		return func() { p.parseBuiltinStatement(kw, spec.node) }
	}
	switch kw {
	case syntax.LineKeyword:
		if p.kwAt(1) == syntax.InputKeyword {
			return p.parseLineInputStatement
		}
	case syntax.MidKeyword, syntax.MidBKeyword:
		if p.peekSig(1).Kind == syntax.LeftParen {
			return p.parseMidStatement
		}
	case syntax.LSetKeyword:
		if p.softStatement(false) {
			return func() { p.parseLetLikeBuiltin(syntax.LSetStatement, kw) }
		}
	case syntax.RSetKeyword:
		if p.softStatement(false) {
			return func() { p.parseLetLikeBuiltin(syntax.RSetStatement, kw) }
		}
	case syntax.DateKeyword:
		if p.peekSig(1).Kind == syntax.Equal {
			return func() { p.parseSystemClock(syntax.DateStatement, kw) }
		}
	case syntax.TimeKeyword:
		if p.peekSig(1).Kind == syntax.Equal {
			return func() { p.parseSystemClock(syntax.TimeStatement, kw) }
		}
	case syntax.OpenKeyword:
		if p.softStatement(false) {
			return p.parseOpenStatement
		}
	case syntax.NameKeyword:
		if p.softStatement(false) {
			return p.parseNameStatement
		}
	case syntax.StopKeyword:
		if p.softStatement(true) {
			return p.parseStopStatement
		}
	}
	return nil
}

func (p *Parser) parseBuiltinStatement(kw, node syntax.Kind) {
	p.startNode(node)
	p.bumpKeyword(kw)
	p.parseBuiltinArgs()
	p.endStatement()
	p.finishNode()
}

// parseBuiltinArgs: общий помощник: аргументы идут прямыми детьми
// оператора, без ArgumentList.
func (p *Parser) parseBuiltinArgs() {
	for !p.atStmtEnd() {
		switch {
		case p.at(syntax.Comma), p.at(syntax.Semicolon), p.at(syntax.Hash), p.at(syntax.Equal):
			p.bump()
		case p.atKeyword(syntax.ToKeyword):
			p.bumpKeyword(syntax.ToKeyword)
		default:
			before := p.consumed
			p.parseExpr()
			if p.consumed == before {
				return
			}
		}
	}
}

// Line Input #n, var
func (p *Parser) parseLineInputStatement() {
	p.startNode(syntax.LineInputStatement)
	p.bumpKeyword(syntax.LineKeyword)
	p.bumpKeyword(syntax.InputKeyword)
	p.parseBuiltinArgs()
	p.endStatement()
	p.finishNode()
}

// Mid(s, start[, len]) = e / MidB(...) = e
func (p *Parser) parseMidStatement() {
	kw := p.kwAt(0)
	node := syntax.MidStatement
	if kw == syntax.MidBKeyword {
		node = syntax.MidBStatement
	}
	p.startNode(node)
	p.bumpKeyword(kw)
	p.parseArgumentList()
	if p.expect(syntax.Equal, "'='") {
		p.parseExpr()
	}
	p.endStatement()
	p.finishNode()
}

// LSet a = b / RSet a = b
func (p *Parser) parseLetLikeBuiltin(node, kw syntax.Kind) {
	p.startNode(node)
	p.bumpKeyword(kw)
	p.parsePostfixExpr(false)
	if p.expect(syntax.Equal, "'='") {
		p.parseExpr()
	}
	p.endStatement()
	p.finishNode()
}

// Date = e / Time = e
func (p *Parser) parseSystemClock(node, kw syntax.Kind) {
	p.startNode(node)
	p.bumpKeyword(kw)
	p.bump() // '='
	p.parseExpr()
	p.endStatement()
	p.finishNode()
}

// Open path For mode [Access a] [lock] As [#]n [Len = reclen]
func (p *Parser) parseOpenStatement() {
	p.startNode(syntax.OpenStatement)
	p.bumpKeyword(syntax.OpenKeyword)
	p.parseExpr()
	if p.expectKeyword(syntax.ForKeyword) {
		if p.atAnyKeyword(syntax.InputKeyword, syntax.OutputKeyword, syntax.AppendKeyword,
			syntax.RandomKeyword, syntax.BinaryKeyword) {
			p.bumpCurrentKeyword()
		} else {
			p.err(diag.SynExpectKeyword, "expected file mode (Input, Output, Append, Random or Binary), got "+describe(p.cur()))
		}
	}
	if p.eatKeyword(syntax.AccessKeyword) {
		p.eatKeyword(syntax.ReadKeyword)
		p.eatKeyword(syntax.WriteKeyword)
	}
	if !p.eatKeyword(syntax.SharedKeyword) && p.eatKeyword(syntax.LockKeyword) {
		p.eatKeyword(syntax.ReadKeyword)
		p.eatKeyword(syntax.WriteKeyword)
	}
	if p.expectKeyword(syntax.AsKeyword) {
		p.eat(syntax.Hash)
		p.parseExpr()
	}
	if p.eatKeyword(syntax.LenKeyword) {
		if p.expect(syntax.Equal, "'='") {
			p.parseExpr()
		}
	}
	p.endStatement()
	p.finishNode()
}

// Name old As new
func (p *Parser) parseNameStatement() {
	p.startNode(syntax.NameStatement)
	p.bumpKeyword(syntax.NameKeyword)
	p.parseExpr()
	if p.expectKeyword(syntax.AsKeyword) {
		p.parseExpr()
	}
	p.endStatement()
	p.finishNode()
}

func (p *Parser) parseStopStatement() {
	p.startNode(syntax.StopStatement)
	p.bumpKeyword(syntax.StopKeyword)
	p.endStatement()
	p.finishNode()
}
