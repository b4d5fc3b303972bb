package syntax

// IsTrivia reports whitespace, newlines, comments and line continuations.
func (k Kind) IsTrivia() bool { return k > triviaBegin && k < triviaEnd }

// IsLiteral reports string, numeric and date literal tokens.
func (k Kind) IsLiteral() bool { return k > literalBegin && k < literalEnd }

// IsNumericLiteral reports integer, long, single, double and currency literals.
func (k Kind) IsNumericLiteral() bool { return k >= IntegerLiteral && k <= CurrencyLiteral }

// IsPunct reports punctuation and operator tokens.
func (k Kind) IsPunct() bool { return k > punctBegin && k < punctEnd }

// IsKeyword reports keyword tokens.
func (k Kind) IsKeyword() bool { return k > keywordBegin && k < keywordEnd }

// IsToken reports kinds that label leaves. Unknown is both a token and a node kind.
func (k Kind) IsToken() bool {
	return k == Unknown || k == Identifier || k.IsTrivia() || k.IsLiteral() || k.IsPunct() || k.IsKeyword()
}

// IsNode reports kinds that label interior nodes.
func (k Kind) IsNode() bool { return k == Unknown || (k > nodeBegin && k < nodeEnd) }

// IsExpression reports expression node kinds.
func (k Kind) IsExpression() bool { return k >= BinaryExpression && k <= TypeOfExpression }

// IsLineEnd reports tokens that terminate a logical line.
func (k Kind) IsLineEnd() bool { return k == Newline || k == EOF }
