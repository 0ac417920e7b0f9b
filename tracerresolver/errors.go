package tracerresolver

import (
	"errors"
	"fmt"

	"github.com/aalemi-dev/tracerresolver/discovery"
)

var (
	// ErrCandidatePanic is wrapped when a candidate panics.
	ErrCandidatePanic = errors.New("tracerresolver: candidate panicked")

	// ErrCandidateType is wrapped when a candidate does not implement the role it was discovered for.
	ErrCandidateType = errors.New("tracerresolver: candidate does not implement its role")

	// ErrNotWatchable is returned by Watch when the resolver has no manifest to watch.
	ErrNotWatchable = errors.New("tracerresolver: discoverer has no manifest to watch")
)

// CandidateError describes one failed candidate call.
type CandidateError struct {
	Kind discovery.Kind
	Name string
	Err  error
}

func (e *CandidateError) Error() string {
	return fmt.Sprintf("tracerresolver: %s %q: %v", e.Kind, e.Name, e.Err)
}

func (e *CandidateError) Unwrap() error {
	return e.Err
}
