package token

import (
	"vb6parse/internal/source"
	"vb6parse/internal/syntax"
)

// Token is one lexeme. Text is the exact source slice covered by Span.
type Token struct {
	Kind syntax.Kind
	Span source.Span
	Text string
}

// IsTrivia reports whitespace, newlines, comments and line continuations.
func (t Token) IsTrivia() bool { return t.Kind.IsTrivia() }

// IsWord reports identifier-shaped tokens: identifiers and keyword-retagged identifiers.
func (t Token) IsWord() bool { return t.Kind == syntax.Identifier || t.Kind.IsKeyword() }

// IsEOF reports the end-of-input marker.
func (t Token) IsEOF() bool { return t.Kind == syntax.EOF }

// Len returns the byte length of the token.
func (t Token) Len() uint32 { return t.Span.Len() }

// WithKind returns a copy retagged as k. Text and Span are unchanged.
func (t Token) WithKind(k syntax.Kind) Token {
	t.Kind = k
	return t
}
