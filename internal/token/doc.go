// Package token defines the Token value and the keyword tables.
// Invariants:
//   - Token.Text is the exact slice of the source covered by Token.Span.
//   - The lexer emits Identifier for every word. Keyword kinds are assigned later by the
//     parser through LookupKeyword, and only where its grammar asks for that keyword.
//   - The tables in this package are plain read-only maps; nothing registers keywords at run time.
package token
