// Package fuzztests holds the fuzz harnesses for the lexer and parser.
// Every input must lex to a gap-free token stream, parse to a tree that
// prints back byte for byte, and finish within parseTimeout.
//
// Seeds come from testdata/ and a handful of recovery edge cases.
package fuzztests
