package discovery

import (
	"fmt"
	"strings"
)

// Kind is the role a candidate plays during resolution.
type Kind int

const (
	KindFactory Kind = iota + 1
	KindResolver
	KindTracer
	KindConverter
)

var kindNames = map[Kind]string{
	KindFactory:   "factory",
	KindResolver:  "resolver",
	KindTracer:    "tracer",
	KindConverter: "converter",
}

// Kinds returns every Kind in resolution order.
func Kinds() []Kind {
	return []Kind{KindFactory, KindResolver, KindTracer, KindConverter}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind maps a name such as "factory" back to its Kind. Case is ignored.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
}
