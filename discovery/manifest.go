package discovery

import (
	"fmt"
	"os"
	"slices"

	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/aalemi-dev/tracerresolver/properties"
)

// Manifest lists the enabled provider names per kind.
//
// A kind missing from the manifest has no enabled providers.
type Manifest struct {
	names map[Kind][]string
}

// LoadManifest reads a YAML or JSON manifest. The format follows the file extension.
func LoadManifest(path string) (*Manifest, error) {
	format, err := properties.DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestLoad, err)
	}
	return ParseManifest(data, format)
}

// ParseManifest parses a manifest document.
//
// Each top-level key must be a kind name and hold a list of provider names (a
// single string is accepted as a one element list). Duplicate names keep their
// first position.
func ParseManifest(data []byte, format properties.Format) (*Manifest, error) {
	parser, err := properties.ParserFor(format)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrManifestParse, err)
		}
	}

	m := &Manifest{names: make(map[Kind][]string)}
	for key, value := range k.Raw() {
		kind, err := ParseKind(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrManifestParse, err)
		}
		names, err := toNames(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrManifestParse, key, err)
		}
		m.names[kind] = names
	}
	return m, nil
}

// Names returns the provider names enabled for kind, in manifest order.
func (m *Manifest) Names(kind Kind) []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.names[kind])
}

func toNames(value any) ([]string, error) {
	var raw []any
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		raw = []any{v}
	case []any:
		raw = v
	default:
		return nil, fmt.Errorf("expected a list of names, got %T", value)
	}

	names := make([]string, 0, len(raw))
	for _, item := range raw {
		name, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("expected a name, got %T", item)
		}
		if name == "" || slices.Contains(names, name) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
