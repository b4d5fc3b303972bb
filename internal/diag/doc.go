// Package diag defines the diagnostic model shared by the lexer, the parser,
// the resource decoder and the driver.
//
// A Diagnostic carries a Severity, a numeric Code with a stable string ID
// (LEX1001, SYN2007, RES3001, ...), a short message, a primary source.Span and
// optional notes and fixes. Diagnostics never live inside a syntax tree; producers
// push them through a Reporter and callers read them back from a Bag.
//
// Nothing here is fatal. Lexical errors, syntax errors, unclosed blocks and damaged
// resource entries are all reported and parsing carries on.
//
// Package diag does no formatting beyond the one-line golden form used in tests;
// human-readable and JSON rendering lives in internal/diagfmt.
package diag
