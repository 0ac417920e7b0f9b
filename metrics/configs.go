package metrics

// DefaultAddress is where the metrics server listens when Config.Address is nil.
const DefaultAddress = ":9090"

// Config defines how resolution metrics are collected and exposed.
type Config struct {
	// Address is where the /metrics HTTP server listens.
	//
	// Example values:
	//   - ":9090"          → all interfaces, port 9090
	//   - "127.0.0.1:9090" → localhost only
	//   - nil              → DefaultAddress
	//
	// An empty string disables the server; metrics are still collected in Registry.
	Address *string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// ServiceName is added as a constant "service" label to every metric.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`

	// RuntimeMetrics also registers the Go runtime and process collectors.
	RuntimeMetrics bool `yaml:"runtime_metrics" envconfig:"METRICS_RUNTIME"`
}

// Ptr returns a pointer to s.
//
//	cfg := metrics.Config{Address: metrics.Ptr("")} // no HTTP server
func Ptr(s string) *string {
	return &s
}
