package observability

import "time"

// Observer receives an event each time an instrumented operation completes.
// The resolver reports whole resolution passes, every candidate invocation and
// every conversion step through it.
//
// Observers are optional: a nil Observer is simply not called.
type Observer interface {
	// ObserveOperation is called synchronously when an operation completes.
	// Implementations must be cheap and must not panic.
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes a completed operation.
type OperationContext struct {
	// Component identifies the package that performed the operation, e.g. "tracerresolver".
	Component string

	// Operation is what was done: "resolve", "invoke" or "convert".
	Operation string

	// Resource is the primary subject. For "resolve" it is the source that won
	// ("global", "factory", "resolver", "tracer", "disabled" or "none"); for
	// "invoke" and "convert" it is the candidate kind.
	Resource string

	// SubResource is the candidate name, when there is one.
	SubResource string

	// Duration is how long the operation took.
	Duration time.Duration

	// Error is set when the operation failed.
	Error error

	// Size is an operation specific count, such as the number of candidates considered.
	Size int64

	// Metadata carries anything else worth recording.
	Metadata map[string]interface{}
}
