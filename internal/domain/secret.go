package domain

import (
	"log/slog"
	"strings"
)

// redactedVisible is the number of trailing characters shown when a secret is printed.
const redactedVisible = 4

// Secret holds an API key. It never renders its value through fmt or slog.
type Secret struct {
	value string
}

// NewSecret wraps a raw key. Surrounding whitespace is dropped.
func NewSecret(value string) Secret {
	return Secret{value: strings.TrimSpace(value)}
}

// Value returns the raw key for transport and persistence.
func (s Secret) Value() string { return s.value }

// IsZero reports whether no key is held.
func (s Secret) IsZero() bool { return s.value == "" }

// Equal compares two secrets by value.
func (s Secret) Equal(other Secret) bool { return s.value == other.value }

// String returns a redacted form such as "****abcd".
func (s Secret) String() string {
	if s.value == "" {
		return ""
	}
	if len(s.value) <= redactedVisible {
		return "****"
	}
	return "****" + s.value[len(s.value)-redactedVisible:]
}

// GoString keeps %#v redacted as well.
func (s Secret) GoString() string { return s.String() }

// LogValue implements slog.LogValuer.
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(s.String())
}
