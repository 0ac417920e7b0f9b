package tracer

import (
	"context"
)

// Tracer is the pluggable tracing facility that the resolver locates.
// Any implementation may be registered as a candidate; *TracerClient and the
// value returned by Noop are the ones shipped with this module.
type Tracer interface {
	// StartSpan creates a span named name as a child of any span already in ctx.
	// Always call span.End() when the operation completes.
	StartSpan(ctx context.Context, name string) (context.Context, Span)

	// GetCarrier returns the trace context of ctx as propagation headers.
	GetCarrier(ctx context.Context) map[string]string

	// SetCarrierOnContext returns ctx carrying the trace context found in carrier.
	SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context
}

// Span is a single traced operation.
type Span interface {
	// End completes the span.
	End()

	// SetAttributes adds key/value attributes. Strings, ints, int64s, float64s
	// and bools keep their type; anything else is recorded with fmt.Sprint.
	SetAttributes(attrs map[string]interface{})

	// RecordError records err on the span and marks it failed.
	RecordError(err error)
}
