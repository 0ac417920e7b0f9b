package tracer

import (
	"context"

	"go.uber.org/fx"
)

// FXModule builds a TracerClient from a tracer.Config and provides it both as
// *TracerClient and as Tracer. The provider is shut down, flushing pending spans,
// when the application stops.
//
// Applications that want the tracer located at runtime instead should use
// tracerresolver.FXModule, which also provides Tracer; do not include both.
//
//	app := fx.New(
//	    tracer.FXModule,
//	    fx.Supply(tracer.Config{ServiceName: "api", Exporter: tracer.ExporterOTLP}),
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
		fx.Annotate(
			func(t *TracerClient) Tracer { return t },
			fx.As(new(Tracer)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle shuts the client down on stop.
func RegisterTracerLifecycle(lc fx.Lifecycle, client *TracerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Shutdown(ctx)
		},
	})
}
