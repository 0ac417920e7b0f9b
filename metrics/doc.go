// Package metrics exposes tracer resolution metrics through Prometheus.
//
// NewObserver returns an observability.Observer that counts resolver operations
// and records their duration. Pass it to the resolver directly:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "checkout", Address: metrics.Ptr("")})
//	r := tracerresolver.New(tracerresolver.Config{}, tracerresolver.WithObserver(metrics.NewObserver(m)))
//
// or let fx wire it: FXModule provides the Observer that tracerresolver.FXModule
// picks up.
//
// Every metric carries a constant "service" label taken from Config.ServiceName.
// The registry is served on /metrics at Config.Address (":9090" by default).
//
// Exported series:
//
//	tracerresolver_operations_total{service,component,operation,resource,outcome}
//	tracerresolver_operation_duration_seconds{service,component,operation}
//
// operation is "resolve", "invoke" or "convert". For "resolve", resource is the
// winning source ("global", "factory", "resolver", "tracer", "disabled" or
// "none"); otherwise it is the candidate kind.
package metrics
