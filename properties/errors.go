package properties

import "errors"

var (
	// ErrUnsupportedFormat is returned for formats other than YAML and JSON.
	ErrUnsupportedFormat = errors.New("properties: unsupported format")

	// ErrLoadFailed wraps read errors.
	ErrLoadFailed = errors.New("properties: failed to load")

	// ErrParseFailed wraps parser errors.
	ErrParseFailed = errors.New("properties: failed to parse")

	// ErrEmptyKey is returned when setting a property with an empty key.
	ErrEmptyKey = errors.New("properties: empty key")
)
