package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the Prometheus registry and, unless disabled, the HTTP server exposing it.
type Metrics struct {
	// Server serves /metrics. Nil when Config.Address is empty.
	Server *http.Server

	// Registry holds every metric created through this instance.
	Registry *prometheus.Registry

	// registerer adds the service label.
	registerer prometheus.Registerer
}

// NewMetrics builds the registry and, when an address is configured, the server.
// The server is started by FXModule or by calling Serve.
//
// Parameters:
//   - cfg: Server address, service label and whether to add Go runtime collectors
//
// Returns:
//   - *Metrics: The registry, and the server when Config.Address is not empty
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "checkout"})
//	r := tracerresolver.New(cfg, tracerresolver.WithObserver(metrics.NewObserver(m)))
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	registerer := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)
	if cfg.RuntimeMetrics {
		registerer.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &Metrics{
		Registry:   registry,
		registerer: registerer,
	}

	addr := DefaultAddress
	if cfg.Address != nil {
		addr = *cfg.Address
	}
	if addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		m.Server = &http.Server{
			Addr:    addr,
			Handler: mux,
		}
	}
	return m
}
