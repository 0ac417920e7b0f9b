package tracerresolver

import (
	"github.com/aalemi-dev/tracerresolver/tracer"
)

// TracerFactory produces a tracer. A nil tracer means the factory had nothing to offer.
type TracerFactory interface {
	Tracer() (tracer.Tracer, error)
}

// TracerResolver produces a tracer when its preconditions are met, and nil otherwise.
type TracerResolver interface {
	Resolve() (tracer.Tracer, error)
}

// TracerConverter turns a resolved tracer into another one, typically a wrapper.
// Returning nil discards the tracer and ends the conversion chain.
type TracerConverter interface {
	Convert(existing tracer.Tracer) (tracer.Tracer, error)
}

// Global is the optional global override. *globaltracer.Registry implements it.
type Global interface {
	TryGet() (tracer.Tracer, bool)
}

// FactoryFunc adapts a function to TracerFactory.
type FactoryFunc func() (tracer.Tracer, error)

func (f FactoryFunc) Tracer() (tracer.Tracer, error) { return f() }

// ResolverFunc adapts a function to TracerResolver.
type ResolverFunc func() (tracer.Tracer, error)

func (f ResolverFunc) Resolve() (tracer.Tracer, error) { return f() }

// ConverterFunc adapts a function to TracerConverter.
type ConverterFunc func(existing tracer.Tracer) (tracer.Tracer, error)

func (f ConverterFunc) Convert(existing tracer.Tracer) (tracer.Tracer, error) { return f(existing) }
