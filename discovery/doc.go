// Package discovery enumerates the candidates a tracer resolver considers.
//
// Providers are registered in a Registry under a Kind and a name. Each call to
// Discover constructs fresh instances in registration order; nothing is cached
// between calls.
//
//	discovery.MustRegister(discovery.KindFactory, "stdout", func() any {
//	    return myFactory{}
//	})
//
// A ManifestDiscoverer narrows a registry to the names listed in a YAML or
// JSON manifest, in manifest order:
//
//	factory: [stdout]
//	resolver: [otel-env]
//	tracer: [noop]
//	converter: [logging]
//
// The parsed manifest may be cached with WithCache; instances never are. Watch
// purges that cache when the manifest file changes.
package discovery
