package tracerresolver

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/tracerresolver/discovery"
	"github.com/aalemi-dev/tracerresolver/logger"
	"github.com/aalemi-dev/tracerresolver/observability"
	"github.com/aalemi-dev/tracerresolver/tracer"
)

// FXModule provides *Resolver and the resolved tracer.Tracer.
//
// The tracer is resolved once when first requested. When nothing resolves the
// module provides tracer.Noop(), so consumers always get a usable Tracer.
// A resolved tracer is shut down on stop.
// Do not combine it with tracer.FXModule, which also provides tracer.Tracer.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracerresolver.FXModule,
//	    fx.Supply(
//	        logger.Config{Level: logger.Info, ServiceName: "api"},
//	        tracerresolver.Config{ManifestPath: "/etc/app/tracers.yaml"},
//	    ),
//	)
var FXModule = fx.Module("tracerresolver",
	fx.Provide(
		NewResolverWithDI,
		ProvideTracer,
	),
	fx.Invoke(RegisterResolverLifecycle),
)

// ResolverParams groups the dependencies of NewResolverWithDI.
type ResolverParams struct {
	fx.In

	Config   Config
	Logger   logger.Logger          `optional:"true"`
	Observer observability.Observer `optional:"true"`
	Registry *discovery.Registry    `optional:"true"`
}

// NewResolverWithDI builds a Resolver from injected dependencies. The logger,
// observer and registry are optional.
//
// Parameters:
//   - params: The Config plus the optional Logger, Observer and Registry
//
// Returns a Resolver that discovers candidates from Config.ManifestPath, or from
// the whole registry when no manifest is configured.
func NewResolverWithDI(params ResolverParams) *Resolver {
	opts := []Option{
		WithLogger(params.Logger),
		WithRegistry(params.Registry),
	}
	if params.Observer != nil {
		opts = append(opts, WithObserver(params.Observer))
	}
	return New(params.Config, opts...)
}

// ProvideTracer resolves a tracer, falling back to tracer.Noop().
//
// A tracer built by a candidate is shut down when the application stops, which
// flushes any spans still buffered by its exporter. A globally registered
// tracer belongs to whoever registered it and is left running.
//
// Parameters:
//   - lc: The fx lifecycle to register the shutdown hook with
//   - r: The resolver to run
//
// Returns the resolved tracer, never nil.
func ProvideTracer(lc fx.Lifecycle, r *Resolver) tracer.Tracer {
	t, source := r.resolveObserved()
	if t == nil {
		return tracer.Noop()
	}
	if source == SourceGlobal {
		return t
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return Shutdown(ctx, t)
		},
	})
	return t
}

// ResolverLifecycleParams groups the dependencies of RegisterResolverLifecycle.
type ResolverLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    Config
	Resolver  *Resolver
	Logger    logger.Logger `optional:"true"`
}

// RegisterResolverLifecycle watches the manifest while the application runs
// when Config.WatchManifest and Config.CacheDiscovery are both set.
func RegisterResolverLifecycle(params ResolverLifecycleParams) {
	cfg := params.Config
	if !cfg.WatchManifest || !cfg.CacheDiscovery || cfg.ManifestPath == "" {
		return
	}

	var watcher *discovery.Watcher
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			w, err := params.Resolver.Watch(context.Background())
			if err != nil {
				return err
			}
			watcher = w
			if params.Logger != nil {
				params.Logger.Info("watching tracer provider manifest", nil, map[string]interface{}{
					"path": cfg.ManifestPath,
				})
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if watcher == nil {
				return nil
			}
			return watcher.Close()
		},
	})
}
