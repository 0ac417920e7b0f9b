package providers

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aalemi-dev/tracerresolver/discovery"
	"github.com/aalemi-dev/tracerresolver/logger"
	"github.com/aalemi-dev/tracerresolver/priority"
	"github.com/aalemi-dev/tracerresolver/tracer"
	"github.com/aalemi-dev/tracerresolver/tracerresolver"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func shutdown(t *testing.T, tr tracer.Tracer) {
	t.Helper()
	client, ok := tr.(*tracer.TracerClient)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = client.Shutdown(ctx)
}

func newResolver(reg *discovery.Registry) *tracerresolver.Resolver {
	return tracerresolver.New(tracerresolver.Config{},
		tracerresolver.WithRegistry(reg),
		tracerresolver.WithGlobal(nil),
		tracerresolver.WithProperties(nil),
		tracerresolver.WithGetenv(nil),
	)
}

func TestEnvResolver(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		exporter string
		wantErr  error
	}{
		{name: "nothing configured", env: map[string]string{}},
		{name: "explicit none", env: map[string]string{EnvTracesExporter: "none", EnvEndpoint: "http://collector:4318"}},
		{name: "endpoint implies otlp", env: map[string]string{EnvEndpoint: "http://localhost:4318"}, exporter: tracer.ExporterOTLP},
		{name: "traces endpoint implies otlp", env: map[string]string{EnvTracesEndpoint: "http://localhost:4318/v1/traces"}, exporter: tracer.ExporterOTLP},
		{name: "explicit otlp", env: map[string]string{EnvTracesExporter: "OTLP"}, exporter: tracer.ExporterOTLP},
		{name: "console", env: map[string]string{EnvTracesExporter: "console"}, exporter: tracer.ExporterStdout},
		{name: "unsupported", env: map[string]string{EnvTracesExporter: "zipkin"}, wantErr: ErrUnsupportedExporter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &EnvResolver{Getenv: env(tt.env)}

			got, err := r.Resolve()
			defer shutdown(t, got)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if tt.exporter == "" {
				assert.Nil(t, got)
				return
			}
			client, ok := got.(*tracer.TracerClient)
			require.True(t, ok)
			assert.Equal(t, tt.exporter, client.Exporter())
		})
	}
}

func TestRegister(t *testing.T) {
	reg := discovery.NewRegistry()
	require.NoError(t, Register(reg))

	assert.Equal(t, []string{NameOTelEnv}, reg.Names(discovery.KindResolver))
	assert.Equal(t, []string{NameNoop}, reg.Names(discovery.KindTracer))
	assert.Empty(t, reg.Names(discovery.KindConverter), "logging converter needs a logger")
	assert.Empty(t, reg.Names(discovery.KindFactory))

	p, ok := priority.Default(tracer.Noop())
	require.True(t, ok)
	assert.Equal(t, NoopPriority, p)

	assert.Error(t, Register(reg), "registering twice reports duplicates")
}

func TestRegister_ResolvesNoopWithoutEnvironment(t *testing.T) {
	reg := discovery.NewRegistry()
	require.NoError(t, Register(reg, WithGetenv(env(map[string]string{}))))

	got := newResolver(reg).ResolveTracer()

	assert.True(t, tracer.IsNoop(got))
}

func TestRegister_ResolvesOTLPFromEnvironment(t *testing.T) {
	reg := discovery.NewRegistry()
	require.NoError(t, Register(reg, WithGetenv(env(map[string]string{
		EnvEndpoint:    "http://localhost:4318",
		EnvServiceName: "checkout",
	}))))

	got := newResolver(reg).ResolveTracer()
	defer shutdown(t, got)

	client, ok := got.(*tracer.TracerClient)
	require.True(t, ok)
	assert.Equal(t, tracer.ExporterOTLP, client.Exporter())
}

func TestRegister_LoggingConverterWrapsResult(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewFromZap(zap.New(core))

	reg := discovery.NewRegistry()
	require.NoError(t, Register(reg, WithLogger(log), WithGetenv(env(map[string]string{}))))

	got := newResolver(reg).ResolveTracer()

	lt, ok := got.(*LoggingTracer)
	require.True(t, ok)
	assert.True(t, tracer.IsNoop(lt.Unwrap()))
	assert.Equal(t, "LoggingTracer(NoopTracer)", lt.String())

	_, span := lt.StartSpan(context.Background(), "checkout")
	span.End()

	entries := logs.FilterMessage("span started").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "checkout", entries[0].ContextMap()["span"])
}

func TestLoggingConverter(t *testing.T) {
	base := tracer.Noop()

	got, err := (&LoggingConverter{}).Convert(base)
	require.NoError(t, err)
	assert.Same(t, base, got, "without a logger the tracer is returned unchanged")

	c := &LoggingConverter{Logger: logger.NewNop()}
	once, err := c.Convert(base)
	require.NoError(t, err)
	twice, err := c.Convert(once)
	require.NoError(t, err)
	assert.Same(t, once, twice, "already wrapped tracers are not wrapped again")
}

func TestRegisterStdout_WinsAsFactory(t *testing.T) {
	var buf bytes.Buffer
	reg := discovery.NewRegistry()
	require.NoError(t, Register(reg, WithGetenv(env(map[string]string{EnvEndpoint: "http://localhost:4318"}))))
	require.NoError(t, RegisterStdout(reg, "cli", &buf))

	got := newResolver(reg).ResolveTracer()
	defer shutdown(t, got)

	client, ok := got.(*tracer.TracerClient)
	require.True(t, ok)
	assert.Equal(t, tracer.ExporterStdout, client.Exporter())

	_, span := client.StartSpan(context.Background(), "stdout-factory-span")
	span.End()
	assert.Contains(t, buf.String(), "stdout-factory-span")
}
