package discovery

import "errors"

var (
	// ErrInvalidKind is returned for a Kind outside the known set.
	ErrInvalidKind = errors.New("discovery: invalid kind")

	// ErrEmptyName is returned when registering without a name.
	ErrEmptyName = errors.New("discovery: empty provider name")

	// ErrNilConstructor is returned when registering a nil constructor.
	ErrNilConstructor = errors.New("discovery: nil constructor")

	// ErrDuplicateName is returned when a name is already registered for a kind.
	ErrDuplicateName = errors.New("discovery: provider already registered")

	// ErrManifestLoad wraps errors reading a manifest file.
	ErrManifestLoad = errors.New("discovery: failed to load manifest")

	// ErrManifestParse wraps errors parsing a manifest document.
	ErrManifestParse = errors.New("discovery: failed to parse manifest")

	// ErrNoManifest is returned by Watch when the discoverer has no manifest path.
	ErrNoManifest = errors.New("discovery: no manifest configured")
)
