package tracerresolver

import (
	"fmt"
	"reflect"
	"time"

	"github.com/aalemi-dev/tracerresolver/discovery"
	"github.com/aalemi-dev/tracerresolver/priority"
	"github.com/aalemi-dev/tracerresolver/properties"
	"github.com/aalemi-dev/tracerresolver/tracer"
)

// ResolveTracer runs one resolution pass and returns the tracer, or nil when
// none was found. See the package documentation for the order of the steps.
func (r *Resolver) ResolveTracer() tracer.Tracer {
	t, _ := r.resolveObserved()
	return t
}

// resolveObserved runs and reports one pass, returning where the tracer came from.
func (r *Resolver) resolveObserved() (tracer.Tracer, string) {
	start := time.Now()
	t, source := r.resolve()
	r.observeOperation(OperationResolve, source, typeName(t), time.Since(start), nil, 0)
	return t, source
}

func (r *Resolver) resolve() (tracer.Tracer, string) {
	if t, ok := r.registeredGlobal(); ok {
		r.log.Debug("using globally registered tracer", nil, map[string]interface{}{
			"type": typeName(t),
		})
		return t, SourceGlobal
	}

	if properties.Disabled(r.props, r.getenv) {
		r.log.Debug("tracer resolution disabled", nil, map[string]interface{}{
			"property": properties.DisabledProperty,
			"env":      properties.DisabledEnv,
		})
		return nil, SourceDisabled
	}

	for _, kind := range []discovery.Kind{discovery.KindFactory, discovery.KindResolver, discovery.KindTracer} {
		t, name := r.firstOf(kind)
		if t == nil {
			continue
		}
		r.log.Debug("tracer resolved", nil, map[string]interface{}{
			"source": kind.String(),
			"name":   name,
			"type":   typeName(t),
		})

		converted := r.convert(t)
		if converted == nil {
			r.discard(t, name)
			return nil, SourceNone
		}
		return converted, kind.String()
	}

	r.log.Debug("no tracer resolved", nil)
	return nil, SourceNone
}

// registeredGlobal checks the global override. A missing or panicking
// override counts as nothing registered.
func (r *Resolver) registeredGlobal() (t tracer.Tracer, ok bool) {
	if r.global == nil {
		return nil, false
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Debug("global tracer unavailable", fmt.Errorf("panic: %v", rec))
			t, ok = nil, false
		}
	}()

	t, ok = r.global.TryGet()
	if !ok || isNone(t) {
		return nil, false
	}
	return t, true
}

// firstOf returns the first candidate of kind that yields a tracer.
func (r *Resolver) firstOf(kind discovery.Kind) (tracer.Tracer, string) {
	for _, c := range r.Candidates(kind) {
		t, err := r.call(OperationInvoke, kind, c.Name, func() (tracer.Tracer, error) {
			return produce(kind, c.Instance)
		})
		if err != nil {
			r.log.Warn("tracer candidate failed, skipping", err, map[string]interface{}{
				"kind": kind.String(),
				"name": c.Name,
			})
			continue
		}
		if !isNone(t) {
			return t, c.Name
		}
	}
	return nil, ""
}

func produce(kind discovery.Kind, instance any) (tracer.Tracer, error) {
	switch kind {
	case discovery.KindFactory:
		if f, ok := instance.(TracerFactory); ok {
			return f.Tracer()
		}
	case discovery.KindResolver:
		if res, ok := instance.(TracerResolver); ok {
			return res.Resolve()
		}
	case discovery.KindTracer:
		if t, ok := instance.(tracer.Tracer); ok {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %T is not a %s", ErrCandidateType, instance, kind)
}

// Candidates discovers the candidates of kind in the order they are tried.
// A failing discoverer yields no candidates.
func (r *Resolver) Candidates(kind discovery.Kind) (out []discovery.Candidate) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Warn("candidate discovery failed", fmt.Errorf("panic: %v", rec), map[string]interface{}{
				"kind": kind.String(),
			})
			out = nil
		}
	}()

	found := r.discoverer.Discover(kind)
	return priority.PrioritizeBy(found, func(c discovery.Candidate) any { return c.Instance }, r.lookup)
}

// call runs fn inside a failure boundary. A returned error or a panic comes
// back as a *CandidateError and the tracer is dropped.
func (r *Resolver) call(operation string, kind discovery.Kind, name string, fn func() (tracer.Tracer, error)) (t tracer.Tracer, err error) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			t, err = nil, &CandidateError{Kind: kind, Name: name, Err: fmt.Errorf("%w: %v", ErrCandidatePanic, rec)}
		}
		r.observeOperation(operation, kind.String(), name, time.Since(start), err, 0)
	}()

	t, err = fn()
	if err != nil {
		return nil, &CandidateError{Kind: kind, Name: name, Err: err}
	}
	return t, nil
}

// isNone reports whether t is nil, including a nil pointer stored in the interface.
func isNone(t tracer.Tracer) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

func typeName(t tracer.Tracer) string {
	if t == nil {
		return ""
	}
	return fmt.Sprintf("%T", t)
}
