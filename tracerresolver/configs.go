package tracerresolver

// Config controls where candidates are discovered.
type Config struct {
	// ManifestPath points at a YAML or JSON file listing the enabled providers
	// per kind. When empty every provider in the registry is a candidate.
	ManifestPath string `yaml:"manifest_path" envconfig:"TRACERRESOLVER_MANIFEST"`

	// CacheDiscovery keeps the parsed manifest between passes. Candidate
	// instances and the resolved tracer are never cached.
	CacheDiscovery bool `yaml:"cache_discovery" envconfig:"TRACERRESOLVER_CACHE_DISCOVERY"`

	// WatchManifest purges the manifest cache when the file changes.
	// Only used by FXModule, and only together with CacheDiscovery.
	WatchManifest bool `yaml:"watch_manifest" envconfig:"TRACERRESOLVER_WATCH_MANIFEST"`
}
