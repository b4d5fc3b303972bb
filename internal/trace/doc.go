// Package trace records where vb6parse spends its time.
//
// Events are grouped by scope: the driver run as a whole, a pass over
// one file (load, lex, parse, resources), the file itself, and single
// recovery points inside the parser. The level selects how deep to go:
//
//	vb6parse parse --trace=- --trace-level=detail ./src
//
// Three sinks exist: a stream that writes every event as it happens, a
// ring that keeps the last N events for a dump after a failure, and a
// fan-out combining both. A tracer travels through context:
//
//	ctx = trace.WithTracer(ctx, tr)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
package trace
