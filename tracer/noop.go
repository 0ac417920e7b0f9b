package tracer

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// NoopTracer is a Tracer that records nothing. Its spans are non-recording and
// its carriers are always empty.
type NoopTracer struct {
	tracer trace.Tracer
}

var noopInstance = &NoopTracer{tracer: tracenoop.NewTracerProvider().Tracer("noop")}

// Noop returns the shared NoopTracer.
func Noop() *NoopTracer {
	return noopInstance
}

// IsNoop reports whether t is a NoopTracer.
func IsNoop(t Tracer) bool {
	_, ok := t.(*NoopTracer)
	return ok
}

func (n *NoopTracer) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	ctx, span := n.tracer.Start(ctx, name)
	return ctx, &spanImpl{span: span}
}

func (n *NoopTracer) GetCarrier(ctx context.Context) map[string]string {
	return map[string]string{}
}

func (n *NoopTracer) SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context {
	return ctx
}

func (n *NoopTracer) String() string {
	return "NoopTracer"
}
