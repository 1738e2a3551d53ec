package credentials

import (
	"fmt"
	"strings"

	"trackr/internal/errors"
)

// keyLength is the length of a key after its optional "prefix-".
const keyLength = 40

// ValidateKey checks the "[prefix-]<40 characters>" key format.
func ValidateKey(key string) error {
	if key == "" {
		return errors.NewUsageError(errors.ReasonEmptyKey, "API key must not be empty", nil)
	}

	secret := key
	if _, rest, found := strings.Cut(key, "-"); found {
		secret = rest
	}

	if len(secret) != keyLength {
		return errors.NewUsageError(
			errors.ReasonInvalidKey,
			fmt.Sprintf("API key must be %d characters long, yours was %d", keyLength, len(secret)),
			nil,
		)
	}

	return nil
}
