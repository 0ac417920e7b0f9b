package tracer

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/aalemi-dev/tracerresolver/tracer"

// TracerClient is the OpenTelemetry SDK backed Tracer.
// It is safe for concurrent use.
type TracerClient struct {
	provider   *sdktrace.TracerProvider
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
	exporter   string
}

// NewClient builds a TracerClient from cfg.
//
// The OTLP exporter connects lazily, so NewClient succeeds without a reachable
// collector; spans fail at export time instead. An unknown exporter name is an error.
//
// Parameters:
//   - cfg: Service identity, exporter selection and sampling for the provider
//
// Returns:
//   - *TracerClient: A tracer backed by an SDK provider; call Shutdown to flush it
//   - error: When the exporter is unknown or cannot be created
//
// Example:
//
//	client, err := tracer.NewClient(tracer.Config{
//	    ServiceName: "checkout",
//	    AppEnv:      "production",
//	    Exporter:    tracer.ExporterOTLP,
//	})
//	if err != nil {
//	    return err
//	}
//	defer client.Shutdown(context.Background())
func NewClient(cfg Config) (*TracerClient, error) {
	return newClientWithContext(context.Background(), cfg)
}

func newClientWithContext(ctx context.Context, cfg Config) (*TracerClient, error) {
	exporter, err := newExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}

	options := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.DeploymentEnvironment(cfg.AppEnv),
			attribute.String("environment", cfg.AppEnv),
		)),
		sdktrace.WithSampler(newSampler(cfg.SampleRatio)),
	}

	switch {
	case exporter == nil:
	case cfg.Exporter == ExporterStdout:
		// Export synchronously so output shows up as soon as a span ends.
		options = append(options, sdktrace.WithSyncer(exporter))
	default:
		options = append(options, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(options...)
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})

	if cfg.SetGlobal {
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagator)
	}

	exporterName := cfg.Exporter
	if exporterName == "" {
		exporterName = ExporterNone
	}

	return &TracerClient{
		provider:   tp,
		tracer:     tp.Tracer(instrumentationName),
		propagator: propagator,
		exporter:   exporterName,
	}, nil
}

// newExporter returns nil for ExporterNone.
func newExporter(ctx context.Context, cfg Config) (sdktrace.SpanExporter, error) {
	switch cfg.Exporter {
	case "", ExporterNone:
		return nil, nil

	case ExporterStdout:
		w := cfg.Writer
		if w == nil {
			w = os.Stdout
		}
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, fmt.Errorf("%w: stdout: %w", ErrExporterInit, err)
		}
		return exp, nil

	case ExporterOTLP:
		exp, err := otlptrace.New(ctx, otlptracehttp.NewClient())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OTLP exporter: %w", err)
		}
		return exp, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExporter, cfg.Exporter)
	}
}

func newSampler(ratio float64) sdktrace.Sampler {
	if ratio <= 0 || ratio >= 1 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}

// Provider exposes the underlying OpenTelemetry provider for code that needs
// the raw otel API.
func (t *TracerClient) Provider() trace.TracerProvider {
	return t.provider
}

// Exporter returns the name of the configured exporter.
func (t *TracerClient) Exporter() string {
	return t.exporter
}

// ForceFlush exports all ended spans that have not been exported yet.
func (t *TracerClient) ForceFlush(ctx context.Context) error {
	return t.provider.ForceFlush(ctx)
}

// Shutdown flushes and stops the provider. Spans started afterwards are dropped.
func (t *TracerClient) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}

// String describes the client in log output.
func (t *TracerClient) String() string {
	return fmt.Sprintf("TracerClient{exporter=%s}", t.exporter)
}
