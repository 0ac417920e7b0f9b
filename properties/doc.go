// Package properties holds in-process configuration properties and evaluates
// the tracer resolver's disable switch.
//
// Properties are dotted keys stored in a koanf instance, so they can be set one
// by one or loaded from YAML/JSON:
//
//	properties.Default.Set(properties.DisabledProperty, "true")
//
//	// or, from a file containing
//	//   tracerresolver:
//	//     disabled: true
//	err := properties.Default.LoadFile("/etc/app/properties.yaml")
//
// Disabled reads the "tracerresolver.disabled" property and, only when it is not
// set at all, the TRACERRESOLVER_DISABLED environment variable. The values "1"
// and "true" (any case) switch resolution off; anything else leaves it on.
package properties
