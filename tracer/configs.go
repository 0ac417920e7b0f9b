package tracer

import "io"

// Exporter names accepted by Config.Exporter.
const (
	// ExporterNone records spans in-process but exports nothing.
	ExporterNone = "none"

	// ExporterStdout writes finished spans as JSON to Config.Writer (stdout by default).
	ExporterStdout = "stdout"

	// ExporterOTLP sends spans to an OTLP/HTTP collector. The endpoint is taken from
	// the standard OTEL_EXPORTER_OTLP_ENDPOINT / OTEL_EXPORTER_OTLP_TRACES_ENDPOINT
	// variables.
	ExporterOTLP = "otlp"
)

// Config defines how a TracerClient is built.
type Config struct {
	// ServiceName identifies the service in every span's resource.
	ServiceName string `yaml:"service_name" envconfig:"OTEL_SERVICE_NAME"`

	// AppEnv is recorded as the "deployment.environment" and "environment" resource
	// attributes, e.g. "development", "staging", "production".
	AppEnv string `yaml:"app_env" envconfig:"APP_ENV"`

	// Exporter selects where spans go: "none" (or empty), "stdout" or "otlp".
	Exporter string `yaml:"exporter" envconfig:"TRACER_EXPORTER"`

	// SampleRatio is the fraction of traces sampled. Zero and values >= 1 sample
	// everything.
	SampleRatio float64 `yaml:"sample_ratio" envconfig:"TRACER_SAMPLE_RATIO"`

	// SetGlobal also installs the provider and the W3C propagators as the
	// OpenTelemetry globals.
	SetGlobal bool `yaml:"set_global" envconfig:"TRACER_SET_GLOBAL"`

	// Writer is the destination of the stdout exporter. Defaults to os.Stdout.
	Writer io.Writer `yaml:"-"`
}
