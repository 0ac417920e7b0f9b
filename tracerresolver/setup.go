package tracerresolver

import (
	"context"
	"os"

	"github.com/aalemi-dev/tracerresolver/discovery"
	"github.com/aalemi-dev/tracerresolver/globaltracer"
	"github.com/aalemi-dev/tracerresolver/logger"
	"github.com/aalemi-dev/tracerresolver/observability"
	"github.com/aalemi-dev/tracerresolver/priority"
	"github.com/aalemi-dev/tracerresolver/properties"
)

// Resolver runs resolution passes against its collaborators. It holds no
// resolution state and is safe for concurrent use.
type Resolver struct {
	discoverer discovery.Discoverer
	registry   *discovery.Registry
	global     Global
	props      properties.Source
	getenv     properties.Getenv
	lookup     priority.Lookup
	log        logger.Logger
	observer   observability.Observer
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithDiscoverer sets where candidates come from. It takes precedence over
// Config.ManifestPath and WithRegistry. A nil discoverer keeps the default.
func WithDiscoverer(d discovery.Discoverer) Option {
	return func(r *Resolver) { r.discoverer = d }
}

// WithRegistry sets the registry the default discoverer reads. Defaults to discovery.Default.
func WithRegistry(reg *discovery.Registry) Option {
	return func(r *Resolver) {
		if reg != nil {
			r.registry = reg
		}
	}
}

// WithGlobal sets the global override. A nil Global means the override does
// not exist at all, which resolves exactly like an empty one.
func WithGlobal(g Global) Option {
	return func(r *Resolver) { r.global = g }
}

// WithProperties sets where the disable property is read. A nil source is skipped.
func WithProperties(src properties.Source) Option {
	return func(r *Resolver) { r.props = src }
}

// WithGetenv sets how the disable environment variable is read. Defaults to os.LookupEnv.
func WithGetenv(getenv properties.Getenv) Option {
	return func(r *Resolver) { r.getenv = getenv }
}

// WithPriorityLookup sets how candidate priorities are found. A nil lookup
// disables ordering and candidates run in discovery order.
func WithPriorityLookup(lookup priority.Lookup) Option {
	return func(r *Resolver) { r.lookup = lookup }
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// WithObserver sets the observer notified of every operation.
func WithObserver(o observability.Observer) Option {
	return func(r *Resolver) { r.observer = o }
}

// New returns a Resolver.
//
// Without options it reads discovery.Default, globaltracer.Default,
// properties.Default and the process environment, orders by priority.Default
// and logs nothing.
//
// Example:
//
//	r := tracerresolver.New(tracerresolver.Config{
//	    ManifestPath:   "/etc/app/tracers.yaml",
//	    CacheDiscovery: true,
//	}, tracerresolver.WithLogger(log))
//	t := r.ResolveTracer()
func New(cfg Config, opts ...Option) *Resolver {
	r := &Resolver{
		registry: discovery.Default,
		global:   globaltracer.Default,
		props:    properties.Default,
		getenv:   os.LookupEnv,
		lookup:   priority.Default,
		log:      logger.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.discoverer == nil {
		discovererOpts := []discovery.Option{discovery.WithLogger(r.log)}
		if cfg.CacheDiscovery {
			discovererOpts = append(discovererOpts, discovery.WithCache(0, 0))
		}
		r.discoverer = discovery.NewManifestDiscoverer(r.registry, cfg.ManifestPath, discovererOpts...)
	}
	return r
}

// Discoverer returns the discoverer candidates come from.
func (r *Resolver) Discoverer() discovery.Discoverer {
	return r.discoverer
}

// Watch purges the manifest cache whenever the manifest changes, until ctx is
// done or the watcher is closed. It fails with ErrNotWatchable unless the
// resolver reads a manifest.
func (r *Resolver) Watch(ctx context.Context, opts ...discovery.WatchOption) (*discovery.Watcher, error) {
	md, ok := r.discoverer.(*discovery.ManifestDiscoverer)
	if !ok || md.Path() == "" {
		return nil, ErrNotWatchable
	}
	return md.Watch(ctx, opts...)
}
