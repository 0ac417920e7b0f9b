// Package observability defines the optional Observer hook through which the
// tracer resolver reports what it did.
//
// Each resolution pass emits:
//
//   - one "invoke" operation per factory or resolver candidate that was called,
//     with Error set when the candidate failed or panicked;
//   - one "convert" operation per converter that ran;
//   - one "resolve" operation for the pass, whose Resource names the source of
//     the returned tracer ("global", "factory", "resolver", "tracer") or why
//     none was returned ("disabled", "none").
//
// Applications plug in metrics (see the metrics package), logging or anything
// else by implementing Observer:
//
//	type auditObserver struct{ log logger.Logger }
//
//	func (o *auditObserver) ObserveOperation(ctx observability.OperationContext) {
//	    if ctx.Error != nil {
//	        o.log.Warn("candidate failed", ctx.Error, map[string]interface{}{
//	            "kind": ctx.Resource,
//	            "name": ctx.SubResource,
//	        })
//	    }
//	}
//
// Several observers can be combined with Multi. Recorder keeps operations in
// memory and is handy in tests.
package observability
