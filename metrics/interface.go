package metrics

// MetricsCollector creates metrics registered on the service-labelled registry.
//
// Creating a metric that already exists returns the existing one, so several
// components may ask for the same metric.
type MetricsCollector interface {
	// CreateCounter creates a counter vector.
	//
	// Example:
	//   counter := m.CreateCounter("candidates_total", "Candidates considered", []string{"kind"})
	//   counter.WithLabelValues("resolver").Inc()
	CreateCounter(name, help string, labels []string) Counter

	// CreateHistogram creates a histogram vector. Nil buckets mean prometheus.DefBuckets.
	//
	// Example:
	//   hist := m.CreateHistogram("resolve_seconds", "Resolution latency", []string{"source"}, nil)
	//   hist.WithLabelValues("factory").Observe(0.002)
	CreateHistogram(name, help string, labels []string, buckets []float64) Histogram
}
