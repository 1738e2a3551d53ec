package domain_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"trackr/internal/domain"
)

func TestSecret_Redaction(t *testing.T) {
	s := domain.NewSecret("  abcdefghijklmnop  ")

	assert.Equal(t, "abcdefghijklmnop", s.Value())
	assert.Equal(t, "****mnop", s.String())
	assert.Equal(t, "****mnop", fmt.Sprintf("%v", s))
	assert.Equal(t, "****mnop", fmt.Sprintf("%#v", s))
	assert.Equal(t, "****", domain.NewSecret("abc").String())
	assert.Empty(t, domain.Secret{}.String())
}

func TestSecret_LogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("login", "key", domain.NewSecret("abcdefghijklmnop"))

	assert.Contains(t, buf.String(), "key=****mnop")
	assert.NotContains(t, buf.String(), "abcdefghijklmnop")
}

func TestSecret_Equality(t *testing.T) {
	assert.True(t, domain.NewSecret("k").Equal(domain.NewSecret(" k ")))
	assert.False(t, domain.NewSecret("k").Equal(domain.NewSecret("j")))
	assert.True(t, domain.NewSecret("   ").IsZero())
}
