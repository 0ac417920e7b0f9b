package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// CreateCounter creates and registers a counter vector.
func (m *Metrics) CreateCounter(name, help string, labels []string) Counter {
	vec := register(m.registerer, prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: name, Help: help},
		labels,
	))
	return &counterVec{vec: vec}
}

// CreateHistogram creates and registers a histogram vector.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) Histogram {
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}
	vec := register(m.registerer, prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: name, Help: help, Buckets: buckets},
		labels,
	))
	return &histogramVec{vec: vec}
}

// register adds c to r, returning the collector already registered under the
// same description if there is one. Any other registration error panics, as
// with MustRegister.
func register[C prometheus.Collector](r prometheus.Registerer, c C) C {
	err := r.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing
		}
	}
	panic(err)
}
