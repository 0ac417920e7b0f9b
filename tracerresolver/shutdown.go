package tracerresolver

import (
	"context"
	"fmt"
	"time"

	"github.com/aalemi-dev/tracerresolver/tracer"
)

// discardShutdownTimeout bounds the shutdown of a tracer dropped by the
// conversion chain.
const discardShutdownTimeout = 5 * time.Second

// Shutdowner is implemented by tracers holding exporters or other resources,
// such as *tracer.TracerClient.
type Shutdowner interface {
	Shutdown(ctx context.Context) error
}

// Unwrapper is implemented by tracers decorating another tracer.
type Unwrapper interface {
	Unwrap() tracer.Tracer
}

// Shutdown releases t. Decorators implementing Unwrapper are followed until a
// tracer implementing Shutdowner is found. Tracers holding nothing are left alone.
func Shutdown(ctx context.Context, t tracer.Tracer) error {
	for !isNone(t) {
		if s, ok := t.(Shutdowner); ok {
			return s.Shutdown(ctx)
		}
		u, ok := t.(Unwrapper)
		if !ok {
			return nil
		}
		t = u.Unwrap()
	}
	return nil
}

// discard shuts down a tracer built during resolution that will not be returned.
func (r *Resolver) discard(t tracer.Tracer, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), discardShutdownTimeout)
	defer cancel()

	fields := map[string]interface{}{
		"name": name,
		"type": typeName(t),
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Warn("failed to shut down discarded tracer", fmt.Errorf("panic: %v", rec), fields)
		}
	}()
	if err := Shutdown(ctx, t); err != nil {
		r.log.Warn("failed to shut down discarded tracer", err, fields)
		return
	}
	r.log.Debug("discarded tracer shut down", nil, fields)
}
