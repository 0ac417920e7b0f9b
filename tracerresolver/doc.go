// Package tracerresolver locates the Tracer an application should use at runtime,
// without the caller knowing at compile time which implementation is present.
//
// # Resolution
//
// ResolveTracer runs one resolution pass. The steps run in this order and stop
// at the first success:
//
//  1. A tracer registered with the global override (package globaltracer) is
//     returned as-is. Nothing else runs, including conversion.
//  2. If the "tracerresolver.disabled" property, or when it is unset the
//     TRACERRESOLVER_DISABLED environment variable, is "true" (any case) or "1",
//     the result is nil.
//  3. Factory candidates are invoked in priority order.
//  4. Resolver candidates are invoked in priority order.
//  5. Ready-made Tracer candidates are taken in priority order.
//  6. Otherwise the result is nil.
//
// A tracer found in steps 3 to 5 then runs through the converter candidates,
// again in priority order. A converter that fails leaves the tracer unchanged;
// a converter that returns nil ends the chain and the result is nil.
//
// # Failure isolation
//
// Every candidate call runs inside its own boundary. Returned errors and
// panics are logged at warn level, reported to the Observer as a *CandidateError
// and the candidate is skipped. No error ever reaches the caller: the worst
// outcome is a nil Tracer and a log entry.
//
// # Candidates
//
// Candidates come from a discovery.Discoverer, by default the discovery.Default
// registry, optionally narrowed by a manifest (Config.ManifestPath). Priorities
// come from package priority: lower values run first and candidates without a
// priority run last, in discovery order.
//
//	discovery.MustRegister(discovery.KindResolver, "vendor", func() any {
//	    return tracerresolver.ResolverFunc(func() (tracer.Tracer, error) {
//	        if os.Getenv("VENDOR_ENDPOINT") == "" {
//	            return nil, nil
//	        }
//	        return newVendorTracer()
//	    })
//	})
//
//	t := tracerresolver.ResolveTracer()
//	if t == nil {
//	    t = tracer.Noop()
//	}
//
// Each pass discovers afresh and nothing is memoized apart from the optional
// manifest cache, so changes to the switch or the global override take effect
// on the next call. A Resolver is safe for concurrent use.
//
// # FX Integration
//
// FXModule provides *Resolver and a Tracer that is never nil: the resolved
// tracer, or tracer.Noop() when nothing resolved. The resolved tracer is shut
// down when the application stops unless it was registered globally.
package tracerresolver
