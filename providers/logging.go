package providers

import (
	"context"
	"fmt"

	"github.com/aalemi-dev/tracerresolver/logger"
	"github.com/aalemi-dev/tracerresolver/tracer"
)

// LoggingConverter wraps the resolved tracer in a LoggingTracer.
type LoggingConverter struct {
	Logger logger.Logger
}

func (c *LoggingConverter) Convert(existing tracer.Tracer) (tracer.Tracer, error) {
	if c.Logger == nil {
		return existing, nil
	}
	if lt, ok := existing.(*LoggingTracer); ok {
		return lt, nil
	}
	return &LoggingTracer{Tracer: existing, log: c.Logger}, nil
}

func (c *LoggingConverter) Priority() int { return LoggingPriority }

// LoggingTracer logs each started span at debug level and delegates everything to Tracer.
type LoggingTracer struct {
	tracer.Tracer
	log logger.Logger
}

func (t *LoggingTracer) StartSpan(ctx context.Context, name string) (context.Context, tracer.Span) {
	t.log.Debug("span started", nil, map[string]interface{}{
		"span":   name,
		"tracer": fmt.Sprintf("%T", t.Tracer),
	})
	return t.Tracer.StartSpan(ctx, name)
}

// Unwrap returns the wrapped tracer.
func (t *LoggingTracer) Unwrap() tracer.Tracer {
	return t.Tracer
}

func (t *LoggingTracer) String() string {
	return fmt.Sprintf("LoggingTracer(%v)", t.Tracer)
}
