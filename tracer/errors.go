package tracer

import "errors"

var (
	// ErrUnknownExporter is returned by NewClient when Config.Exporter is not recognised.
	ErrUnknownExporter = errors.New("unknown tracer exporter")

	// ErrExporterInit wraps failures while setting up an exporter.
	ErrExporterInit = errors.New("failed to initialize exporter")
)
