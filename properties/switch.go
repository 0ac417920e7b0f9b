package properties

import (
	"os"
	"strings"
)

const (
	// DisabledProperty switches tracer resolution off when truthy.
	DisabledProperty = "tracerresolver.disabled"

	// DisabledEnv is consulted when DisabledProperty is not set.
	DisabledEnv = "TRACERRESOLVER_DISABLED"
)

// Getenv looks up an environment variable. os.LookupEnv satisfies it.
type Getenv func(key string) (string, bool)

// Disabled reports whether tracer resolution is switched off.
//
// The property wins whenever it is set, even to a falsy value; the environment
// is only read when it is absent. A nil src or getenv is skipped.
func Disabled(src Source, getenv Getenv) bool {
	if src != nil {
		if v, ok := src.Lookup(DisabledProperty); ok {
			return IsTruthy(v)
		}
	}
	if getenv != nil {
		if v, ok := getenv(DisabledEnv); ok {
			return IsTruthy(v)
		}
	}
	return false
}

// DisabledFromEnvironment is Disabled over Default and the process environment.
func DisabledFromEnvironment() bool {
	return Disabled(Default, os.LookupEnv)
}

// IsTruthy reports whether v is "1" or, ignoring case, "true".
// Surrounding whitespace is not trimmed.
func IsTruthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}
