package discovery

import (
	"fmt"
	"slices"
	"sync"

	"github.com/aalemi-dev/tracerresolver/logger"
)

// Constructor builds a new candidate instance. A nil result means the provider
// has nothing to offer and is skipped.
type Constructor func() any

// Candidate is one discovered instance together with the name it was registered under.
type Candidate struct {
	Name     string
	Instance any
}

// Discoverer enumerates candidates of a kind, in discovery order.
type Discoverer interface {
	Discover(kind Kind) []Candidate
}

// DiscovererFunc adapts a function to Discoverer.
type DiscovererFunc func(kind Kind) []Candidate

func (f DiscovererFunc) Discover(kind Kind) []Candidate {
	return f(kind)
}

type entry struct {
	name string
	ctor Constructor
}

// Registry holds provider constructors per kind in registration order.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[Kind][]entry
	log     logger.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used to report failing constructors.
func WithRegistryLogger(l logger.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry returns an empty Registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		entries: make(map[Kind][]entry),
		log:     logger.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default is the process-wide registry. Providers usually register into it from init.
var Default = NewRegistry()

// SetLogger replaces the logger used to report failing constructors.
func (r *Registry) SetLogger(l logger.Logger) {
	if l == nil {
		return
	}
	r.mu.Lock()
	r.log = l
	r.mu.Unlock()
}

// Register adds a provider. Names are unique per kind.
func (r *Registry) Register(kind Kind, name string, ctor Constructor) error {
	switch {
	case !kind.Valid():
		return fmt.Errorf("%w: %d", ErrInvalidKind, int(kind))
	case name == "":
		return ErrEmptyName
	case ctor == nil:
		return fmt.Errorf("%w: %s/%s", ErrNilConstructor, kind, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(kind, name) >= 0 {
		return fmt.Errorf("%w: %s/%s", ErrDuplicateName, kind, name)
	}
	r.entries[kind] = append(r.entries[kind], entry{name: name, ctor: ctor})
	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(kind Kind, name string, ctor Constructor) {
	if err := r.Register(kind, name, ctor); err != nil {
		panic(err)
	}
}

// Unregister removes a provider and reports whether it was present.
func (r *Registry) Unregister(kind Kind, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(kind, name)
	if i < 0 {
		return false
	}
	r.entries[kind] = slices.Delete(r.entries[kind], i, i+1)
	return true
}

// Names returns the registered names of kind in registration order.
func (r *Registry) Names(kind Kind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries[kind]))
	for _, e := range r.entries[kind] {
		names = append(names, e.name)
	}
	return names
}

// Discover constructs every provider of kind, in registration order.
func (r *Registry) Discover(kind Kind) []Candidate {
	r.mu.RLock()
	entries := slices.Clone(r.entries[kind])
	log := r.log
	r.mu.RUnlock()

	out := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		if c, ok := construct(log, kind, e); ok {
			out = append(out, c)
		}
	}
	return out
}

// Instantiate constructs the providers of kind named in names, in that order.
// Unknown names are logged and skipped.
func (r *Registry) Instantiate(kind Kind, names []string) []Candidate {
	r.mu.RLock()
	entries := make([]entry, 0, len(names))
	var unknown []string
	for _, name := range names {
		if i := r.indexOf(kind, name); i >= 0 {
			entries = append(entries, r.entries[kind][i])
		} else {
			unknown = append(unknown, name)
		}
	}
	log := r.log
	r.mu.RUnlock()

	for _, name := range unknown {
		log.Warn("unknown provider in manifest", nil, map[string]interface{}{
			"kind": kind.String(),
			"name": name,
		})
	}

	out := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		if c, ok := construct(log, kind, e); ok {
			out = append(out, c)
		}
	}
	return out
}

func (r *Registry) indexOf(kind Kind, name string) int {
	return slices.IndexFunc(r.entries[kind], func(e entry) bool { return e.name == name })
}

func construct(log logger.Logger, kind Kind, e entry) (c Candidate, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Warn("provider constructor panicked", fmt.Errorf("panic: %v", rec), map[string]interface{}{
				"kind": kind.String(),
				"name": e.name,
			})
			ok = false
		}
	}()

	instance := e.ctor()
	if instance == nil {
		return Candidate{}, false
	}
	return Candidate{Name: e.name, Instance: instance}, true
}

// Register adds a provider to Default.
func Register(kind Kind, name string, ctor Constructor) error {
	return Default.Register(kind, name, ctor)
}

// MustRegister adds a provider to Default and panics on error.
func MustRegister(kind Kind, name string, ctor Constructor) {
	Default.MustRegister(kind, name, ctor)
}
