package tracerresolver

import (
	"time"

	"github.com/aalemi-dev/tracerresolver/observability"
)

// Operation names reported to the Observer.
const (
	OperationResolve = "resolve"
	OperationInvoke  = "invoke"
	OperationConvert = "convert"
)

// Sources reported as the Resource of a resolve operation.
const (
	SourceGlobal   = "global"
	SourceDisabled = "disabled"
	SourceNone     = "none"
)

// observeOperation calls the observer if there is one. A panicking observer is ignored.
func (r *Resolver) observeOperation(operation, resource, subResource string, duration time.Duration, err error, size int64) {
	if r.observer == nil {
		return
	}
	defer func() { _ = recover() }()
	r.observer.ObserveOperation(observability.OperationContext{
		Component:   "tracerresolver",
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Size:        size,
	})
}
