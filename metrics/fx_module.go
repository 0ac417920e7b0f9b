package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"

	"go.uber.org/fx"

	"github.com/aalemi-dev/tracerresolver/logger"
	"github.com/aalemi-dev/tracerresolver/observability"
)

// FXModule provides *Metrics, MetricsCollector and an observability.Observer
// recording resolver operations, and runs the metrics server while the
// application is running.
//
// Usage:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    tracerresolver.FXModule,
//	    fx.Supply(metrics.Config{ServiceName: "checkout"}, tracerresolver.Config{}),
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		fx.Annotate(
			func(m *Metrics) MetricsCollector { return m },
			fx.As(new(MetricsCollector)),
		),
		fx.Annotate(
			func(m MetricsCollector) observability.Observer { return NewObserver(m) },
			fx.As(new(observability.Observer)),
		),
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// MetricsLifecycleParams groups the dependencies of RegisterMetricsLifecycle.
type MetricsLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Metrics   *Metrics
	Logger    logger.Logger `optional:"true"`
}

// RegisterMetricsLifecycle listens on OnStart, so a bad address fails startup,
// serves in the background and shuts the server down on OnStop.
func RegisterMetricsLifecycle(params MetricsLifecycleParams) {
	m := params.Metrics
	if m.Server == nil {
		return
	}
	log := params.Logger
	if log == nil {
		log = logger.NewNop()
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", m.Server.Addr)
			if err != nil {
				return err
			}
			m.Server.Addr = ln.Addr().String()
			log.Info("starting metrics server", nil, map[string]interface{}{
				"address": m.Server.Addr,
			})
			go func() {
				if err := m.Server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("metrics server failed", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down metrics server", nil, nil)
			return m.Server.Shutdown(ctx)
		},
	})
}
