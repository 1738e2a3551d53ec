// Package testutil provides test utilities and constructors with pre-injected dependencies.
package testutil

import (
	"log/slog"
	"strings"

	"trackr/internal/logging"
)

// keyLength is the length of the random part of an API key.
const keyLength = 40

// Logger returns a test logger for use in tests.
func Logger() *slog.Logger {
	return logging.NewTestLogger()
}

// APIKey returns a well-formed key built by repeating fill.
func APIKey(fill string) string {
	if fill == "" {
		fill = "0"
	}
	return strings.Repeat(fill, keyLength)[:keyLength]
}
