// Package priority orders candidates by an optional integer priority attached
// to their concrete type. Lower values come first; candidates without a
// priority come after every candidate that has one; ties keep their input order.
//
// A priority is attached in one of two ways:
//
//	// implementing Prioritized on the type
//	func (*otlpResolver) Priority() int { return 10 }
//
//	// or annotating a type you do not own
//	priority.Annotate[*tracer.NoopTracer](priority.Lowest - 1)
//
// Ordering is done with Prioritize (or PrioritizeBy when the values being sorted
// wrap the candidate). A nil Lookup means the priority capability is unavailable,
// in which case the input is returned untouched.
package priority
