package priority

import (
	"math"
	"reflect"
	"slices"
	"sync"
)

// Lowest is the ordering key of a candidate with no priority. It sorts after
// every explicit priority below it.
const Lowest = math.MaxInt

// Prioritized is implemented by candidates that carry their own priority.
type Prioritized interface {
	Priority() int
}

// Lookup returns the priority of candidate and whether it has one.
// A nil Lookup means priorities are unavailable.
type Lookup func(candidate any) (int, bool)

var annotations = struct {
	sync.RWMutex
	byType map[reflect.Type]int
}{byType: make(map[reflect.Type]int)}

// Annotate attaches p to the concrete type T.
func Annotate[T any](p int) {
	AnnotateType(reflect.TypeFor[T](), p)
}

// AnnotateType attaches p to t. A nil t is ignored.
func AnnotateType(t reflect.Type, p int) {
	if t == nil {
		return
	}
	annotations.Lock()
	annotations.byType[t] = p
	annotations.Unlock()
}

// RemoveAnnotation drops any priority attached to t.
func RemoveAnnotation(t reflect.Type) {
	annotations.Lock()
	delete(annotations.byType, t)
	annotations.Unlock()
}

// Annotated returns the priority attached to t, if any.
func Annotated(t reflect.Type) (int, bool) {
	annotations.RLock()
	defer annotations.RUnlock()
	p, ok := annotations.byType[t]
	return p, ok
}

// Default checks the Prioritized interface first and then the annotation on the
// candidate's concrete type. It never panics: a panicking Priority method counts
// as no priority.
func Default(candidate any) (p int, ok bool) {
	if candidate == nil {
		return 0, false
	}
	defer func() {
		if recover() != nil {
			p, ok = 0, false
		}
	}()
	if pr, isPrioritized := candidate.(Prioritized); isPrioritized {
		return pr.Priority(), true
	}
	return Annotated(reflect.TypeOf(candidate))
}

// Of returns the ordering key of candidate under lookup: its priority, or Lowest.
func Of(candidate any, lookup Lookup) int {
	if lookup == nil {
		return Lowest
	}
	p, ok := safeLookup(lookup, candidate)
	if !ok {
		return Lowest
	}
	return p
}

func safeLookup(lookup Lookup, candidate any) (p int, ok bool) {
	defer func() {
		if recover() != nil {
			p, ok = 0, false
		}
	}()
	return lookup(candidate)
}

// Prioritize returns candidates in priority order. See PrioritizeBy.
func Prioritize[T any](candidates []T, lookup Lookup) []T {
	return PrioritizeBy(candidates, func(c T) any { return c }, lookup)
}

// PrioritizeBy sorts candidates by the priority of subject(candidate).
//
// The result is a new slice and the sort is stable. When lookup is nil the
// input slice itself is returned unchanged.
func PrioritizeBy[T any](candidates []T, subject func(T) any, lookup Lookup) []T {
	if lookup == nil || len(candidates) == 0 {
		return candidates
	}

	type keyed struct {
		key   int
		value T
	}
	items := make([]keyed, len(candidates))
	for i, c := range candidates {
		items[i] = keyed{key: Of(subject(c), lookup), value: c}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		switch {
		case a.key < b.key:
			return -1
		case a.key > b.key:
			return 1
		default:
			return 0
		}
	})

	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.value
	}
	return out
}
