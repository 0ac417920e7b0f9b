// Package globaltracer holds an explicitly registered, process-wide Tracer.
//
// When a tracer is registered here, the tracer resolver returns it as-is and
// skips discovery and conversion entirely.
//
//	client, _ := tracer.NewClient(cfg)
//	if err := globaltracer.Register(client); err != nil {
//	    log.Warn("global tracer already registered", err)
//	}
package globaltracer

import (
	"errors"
	"sync/atomic"

	"github.com/aalemi-dev/tracerresolver/tracer"
)

var (
	// ErrNilTracer is returned when registering a nil tracer.
	ErrNilTracer = errors.New("globaltracer: tracer is nil")

	// ErrAlreadyRegistered is returned when a tracer is already registered.
	ErrAlreadyRegistered = errors.New("globaltracer: a tracer is already registered")
)

type holder struct {
	tracer tracer.Tracer
}

// Registry stores at most one registered tracer. It is safe for concurrent use.
type Registry struct {
	current atomic.Pointer[holder]
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Default is the process-wide registry.
var Default = New()

// Register stores t. Only the first registration succeeds until Reset is called.
func (r *Registry) Register(t tracer.Tracer) error {
	if t == nil {
		return ErrNilTracer
	}
	if !r.current.CompareAndSwap(nil, &holder{tracer: t}) {
		return ErrAlreadyRegistered
	}
	return nil
}

// IsRegistered reports whether a tracer has been registered.
func (r *Registry) IsRegistered() bool {
	return r.current.Load() != nil
}

// Get returns the registered tracer, or the noop tracer when there is none.
func (r *Registry) Get() tracer.Tracer {
	if t, ok := r.TryGet(); ok {
		return t
	}
	return tracer.Noop()
}

// TryGet returns the registered tracer and true, or nil and false.
func (r *Registry) TryGet() (tracer.Tracer, bool) {
	h := r.current.Load()
	if h == nil {
		return nil, false
	}
	return h.tracer, true
}

// Reset forgets the registered tracer.
func (r *Registry) Reset() {
	r.current.Store(nil)
}

// Register stores t in Default.
func Register(t tracer.Tracer) error {
	return Default.Register(t)
}

// IsRegistered reports whether Default holds a tracer.
func IsRegistered() bool {
	return Default.IsRegistered()
}

// Get returns the tracer held by Default, or the noop tracer.
func Get() tracer.Tracer {
	return Default.Get()
}

// TryGet returns the tracer held by Default, if any.
func TryGet() (tracer.Tracer, bool) {
	return Default.TryGet()
}
