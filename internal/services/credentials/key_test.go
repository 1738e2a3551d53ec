package credentials_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "trackr/internal/errors"
	"trackr/internal/services/credentials"
	"trackr/internal/testutil"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		wantReason string
		wantMsg    string
	}{
		{name: "plain key", key: testutil.APIKey("a")},
		{name: "prefixed key", key: "local-" + testutil.APIKey("a")},
		{name: "empty", key: "", wantReason: apperrors.ReasonEmptyKey},
		{
			name:       "too short",
			key:        "abc",
			wantReason: apperrors.ReasonInvalidKey,
			wantMsg:    "API key must be 40 characters long, yours was 3",
		},
		{
			name:       "prefix with short suffix",
			key:        "local-" + strings.Repeat("a", 39),
			wantReason: apperrors.ReasonInvalidKey,
			wantMsg:    "yours was 39",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := credentials.ValidateKey(tt.key)
			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperrors.IsUsage(err))
			assert.Equal(t, tt.wantReason, apperrors.UsageReason(err))
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
