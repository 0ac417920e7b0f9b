package properties

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format of a properties document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

const delim = "."

// Source looks up a property by key.
type Source interface {
	Lookup(key string) (string, bool)
}

// Properties is a concurrency-safe property store backed by koanf.
type Properties struct {
	mu sync.RWMutex
	k  *koanf.Koanf
}

// New returns an empty Properties.
func New() *Properties {
	return &Properties{k: koanf.New(delim)}
}

// Default is the process-wide property store read by the resolver.
var Default = New()

// Set stores value under key.
func (p *Properties) Set(key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.k.Set(key, value)
}

// Unset removes key, and everything below it.
func (p *Properties) Unset(key string) {
	p.mu.Lock()
	p.k.Delete(key)
	p.mu.Unlock()
}

// Lookup returns the string form of the value stored under key.
// Non-string values (a YAML boolean, a number) are formatted with %v.
func (p *Properties) Lookup(key string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.k.Exists(key) {
		return "", false
	}
	return p.k.String(key), true
}

// Keys returns every leaf key currently set.
func (p *Properties) Keys() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.k.Keys()
}

// LoadFile merges a YAML or JSON file into the store. The format is taken from
// the extension (.yaml, .yml or .json).
func (p *Properties) LoadFile(path string) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return p.LoadBytes(data, format)
}

// LoadBytes merges a YAML or JSON document into the store.
// Keys already present are overwritten.
func (p *Properties) LoadBytes(data []byte, format Format) error {
	parser, err := ParserFor(format)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.k.Load(rawbytes.Provider(data), parser); err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return nil
}

// Reset drops every property.
func (p *Properties) Reset() {
	p.mu.Lock()
	p.k = koanf.New(delim)
	p.mu.Unlock()
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ParserFor returns the koanf parser for format.
func ParserFor(format Format) (koanf.Parser, error) {
	switch format {
	case FormatYAML:
		return yaml.Parser(), nil
	case FormatJSON:
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
