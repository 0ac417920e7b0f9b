package metrics

import (
	"github.com/aalemi-dev/tracerresolver/observability"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var durationBuckets = []float64{.0001, .0005, .001, .0025, .005, .01, .025, .05, .1, .5, 1}

// ResolutionObserver turns resolver operations into Prometheus metrics:
//
//	tracerresolver_operations_total{component,operation,resource,outcome}
//	tracerresolver_operation_duration_seconds{component,operation}
type ResolutionObserver struct {
	operations Counter
	durations  Histogram
}

// NewObserver creates the resolution metrics on m.
func NewObserver(m MetricsCollector) *ResolutionObserver {
	return &ResolutionObserver{
		operations: m.CreateCounter(
			"tracerresolver_operations_total",
			"Resolver operations by resource and outcome.",
			[]string{"component", "operation", "resource", "outcome"},
		),
		durations: m.CreateHistogram(
			"tracerresolver_operation_duration_seconds",
			"Duration of resolver operations in seconds.",
			[]string{"component", "operation"},
			durationBuckets,
		),
	}
}

// ObserveOperation records ctx.
func (o *ResolutionObserver) ObserveOperation(ctx observability.OperationContext) {
	outcome := OutcomeSuccess
	if ctx.Error != nil {
		outcome = OutcomeError
	}
	o.operations.WithLabelValues(ctx.Component, ctx.Operation, ctx.Resource, outcome).Inc()
	o.durations.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())
}
