package discovery

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/aalemi-dev/tracerresolver/logger"
)

// ManifestDiscoverer enumerates only the registry providers a manifest enables.
// With an empty path it enumerates the whole registry.
type ManifestDiscoverer struct {
	registry *Registry
	path     string
	log      logger.Logger
	cache    *expirable.LRU[Kind, []string]
	group    singleflight.Group
}

// Option configures a ManifestDiscoverer.
type Option func(*ManifestDiscoverer)

// WithLogger sets the logger used for manifest problems.
func WithLogger(l logger.Logger) Option {
	return func(d *ManifestDiscoverer) {
		if l != nil {
			d.log = l
		}
	}
}

// WithCache memoizes the parsed manifest names per kind. A ttl of zero keeps
// entries until Purge is called. Constructed instances are never cached.
func WithCache(size int, ttl time.Duration) Option {
	return func(d *ManifestDiscoverer) {
		if size <= 0 {
			size = len(kindNames)
		}
		d.cache = expirable.NewLRU[Kind, []string](size, nil, ttl)
	}
}

// NewManifestDiscoverer returns a discoverer over registry filtered by the
// manifest at path. A nil registry means Default.
func NewManifestDiscoverer(registry *Registry, path string, opts ...Option) *ManifestDiscoverer {
	if registry == nil {
		registry = Default
	}
	d := &ManifestDiscoverer{
		registry: registry,
		path:     path,
		log:      logger.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Path returns the manifest path.
func (d *ManifestDiscoverer) Path() string {
	return d.path
}

// Discover constructs the providers of kind that the manifest enables, in
// manifest order. When the manifest cannot be read nothing is returned and the
// failure is logged; failures are not cached.
func (d *ManifestDiscoverer) Discover(kind Kind) []Candidate {
	if d.path == "" {
		return d.registry.Discover(kind)
	}

	names, err := d.names(kind)
	if err != nil {
		d.log.Warn("failed to read provider manifest", err, map[string]interface{}{
			"kind": kind.String(),
			"path": d.path,
		})
		return nil
	}
	return d.registry.Instantiate(kind, names)
}

// Purge drops every cached manifest entry.
func (d *ManifestDiscoverer) Purge() {
	if d.cache != nil {
		d.cache.Purge()
	}
}

func (d *ManifestDiscoverer) names(kind Kind) ([]string, error) {
	if d.cache == nil {
		return d.load(kind)
	}
	if names, ok := d.cache.Get(kind); ok {
		return names, nil
	}

	v, err, _ := d.group.Do(kind.String(), func() (interface{}, error) {
		names, err := d.load(kind)
		if err != nil {
			return nil, err
		}
		d.cache.Add(kind, names)
		return names, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

func (d *ManifestDiscoverer) load(kind Kind) ([]string, error) {
	m, err := LoadManifest(d.path)
	if err != nil {
		return nil, err
	}
	return m.Names(kind), nil
}
