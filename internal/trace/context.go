package trace

import (
	"context"

	"vb6parse/internal/source"
)

type ctxKey struct{}

// FromContext returns the tracer stored by WithTracer, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(ctxKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, ctxKey{}, t)
}

// SpanContext is the open span events should hang under, plus the source
// file being processed when there is one. Path is empty for run-level spans.
type SpanContext struct {
	SpanID uint64
	File   source.FileID
	Path   string
}

// Under re-parents sc to span and keeps the file.
func (sc SpanContext) Under(span *Span) SpanContext {
	sc.SpanID = span.ID()
	return sc
}

// ForFile returns sc bound to file.
func (sc SpanContext) ForFile(file *source.File) SpanContext {
	sc.File, sc.Path = file.ID, file.Path
	return sc
}

// Annotate adds the file path to extra (creating it when nil) so events from
// parallel files can be told apart in a merged trace.
func (sc SpanContext) Annotate(extra map[string]string) map[string]string {
	if sc.Path == "" {
		return extra
	}
	if extra == nil {
		extra = make(map[string]string, 1)
	}
	extra["file"] = sc.Path
	return extra
}

type spanCtxKey struct{}

// CurrentSpan returns the span context stored by WithSpanContext; zero if none.
func CurrentSpan(ctx context.Context) SpanContext {
	if ctx == nil {
		return SpanContext{}
	}
	sc, _ := ctx.Value(spanCtxKey{}).(SpanContext)
	return sc
}

func WithSpanContext(ctx context.Context, sc SpanContext) context.Context {
	return context.WithValue(ctx, spanCtxKey{}, sc)
}
