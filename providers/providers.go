package providers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aalemi-dev/tracerresolver/discovery"
	"github.com/aalemi-dev/tracerresolver/logger"
	"github.com/aalemi-dev/tracerresolver/priority"
	"github.com/aalemi-dev/tracerresolver/tracer"
	"github.com/aalemi-dev/tracerresolver/tracerresolver"
)

// Provider names.
const (
	NameOTelEnv = "otel-env"
	NameNoop    = "noop"
	NameLogging = "logging"
	NameStdout  = "stdout"
)

// Environment variables read by the otel-env resolver.
const (
	EnvTracesExporter = "OTEL_TRACES_EXPORTER"
	EnvEndpoint       = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvTracesEndpoint = "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"
	EnvServiceName    = "OTEL_SERVICE_NAME"
	EnvSamplerArg     = "OTEL_TRACES_SAMPLER_ARG"
	EnvAppEnv         = "APP_ENV"
)

// Priorities of the built-in candidates.
const (
	OTelEnvPriority = 100
	NoopPriority    = 1 << 20
	LoggingPriority = 1000
)

// ErrUnsupportedExporter is returned by the otel-env resolver for an
// OTEL_TRACES_EXPORTER value other than "otlp", "console" or "none".
var ErrUnsupportedExporter = errors.New("providers: unsupported OTEL_TRACES_EXPORTER")

type options struct {
	log    logger.Logger
	getenv func(string) string
}

// Option configures Register.
type Option func(*options)

// WithLogger enables the logging converter, writing through l.
func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithGetenv sets how the otel-env resolver reads the environment. Defaults to os.Getenv.
func WithGetenv(getenv func(string) string) Option {
	return func(o *options) {
		if getenv != nil {
			o.getenv = getenv
		}
	}
}

// Register adds the built-in candidates to reg. A nil reg means discovery.Default.
func Register(reg *discovery.Registry, opts ...Option) error {
	if reg == nil {
		reg = discovery.Default
	}
	o := &options{getenv: os.Getenv}
	for _, opt := range opts {
		opt(o)
	}

	priority.Annotate[*tracer.NoopTracer](NoopPriority)

	errs := []error{
		reg.Register(discovery.KindResolver, NameOTelEnv, func() any {
			return &EnvResolver{Getenv: o.getenv}
		}),
		reg.Register(discovery.KindTracer, NameNoop, func() any {
			return tracer.Noop()
		}),
	}
	if o.log != nil {
		errs = append(errs, reg.Register(discovery.KindConverter, NameLogging, func() any {
			return &LoggingConverter{Logger: o.log}
		}))
	}
	return errors.Join(errs...)
}

// RegisterStdout adds the stdout factory to reg, writing spans to w (stdout when nil).
func RegisterStdout(reg *discovery.Registry, serviceName string, w io.Writer) error {
	if reg == nil {
		reg = discovery.Default
	}
	return reg.Register(discovery.KindFactory, NameStdout, func() any {
		return tracerresolver.FactoryFunc(func() (tracer.Tracer, error) {
			client, err := tracer.NewClient(tracer.Config{
				ServiceName: serviceName,
				Exporter:    tracer.ExporterStdout,
				Writer:      w,
			})
			if err != nil {
				return nil, err
			}
			return client, nil
		})
	})
}

// EnvResolver builds a TracerClient from the OpenTelemetry environment.
//
// OTEL_TRACES_EXPORTER selects the exporter: "otlp", "console" or "none".
// When it is unset an OTLP client is built only if an OTLP endpoint variable
// is set; otherwise there is nothing to resolve.
type EnvResolver struct {
	Getenv func(string) string
}

func (r *EnvResolver) Resolve() (tracer.Tracer, error) {
	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := tracer.Config{
		ServiceName: getenv(EnvServiceName),
		AppEnv:      getenv(EnvAppEnv),
	}
	if ratio, err := strconv.ParseFloat(getenv(EnvSamplerArg), 64); err == nil {
		cfg.SampleRatio = ratio
	}

	switch exporter := strings.ToLower(strings.TrimSpace(getenv(EnvTracesExporter))); exporter {
	case "none":
		return nil, nil
	case "console":
		cfg.Exporter = tracer.ExporterStdout
	case "otlp":
		cfg.Exporter = tracer.ExporterOTLP
	case "":
		if getenv(EnvEndpoint) == "" && getenv(EnvTracesEndpoint) == "" {
			return nil, nil
		}
		cfg.Exporter = tracer.ExporterOTLP
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}

	client, err := tracer.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (r *EnvResolver) Priority() int { return OTelEnvPriority }
