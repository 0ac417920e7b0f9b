package tracerresolver

import (
	"github.com/aalemi-dev/tracerresolver/tracer"
)

// ResolveTracer runs one resolution pass with every default collaborator.
// It returns nil when no tracer was found.
func ResolveTracer() tracer.Tracer {
	return New(Config{}).ResolveTracer()
}

// Reload does nothing. Every pass discovers candidates afresh.
//
// Deprecated: there is no cached resolution state left to reload.
func Reload() {}

// Reload does nothing. Every pass discovers candidates afresh.
//
// Deprecated: there is no cached resolution state left to reload. Use
// Watch, or Purge on the discovery.ManifestDiscoverer, to refresh a cached manifest.
func (r *Resolver) Reload() {
	r.log.Debug("tracer resolver reload requested, nothing is cached", nil)
}
