package domain

import (
	"net/url"
	"strings"
)

// DefaultBaseURL is the hosted API used when nothing else names a host.
const DefaultBaseURL = "https://api.trackr.dev"

// AnonymousPolicy governs whether an anonymous key may be issued.
type AnonymousPolicy string

const (
	AnonymousUnset AnonymousPolicy = ""
	AnonymousMust  AnonymousPolicy = "must"
	AnonymousAllow AnonymousPolicy = "allow"
	AnonymousNever AnonymousPolicy = "never"
)

// ParseAnonymousPolicy maps a raw value onto a policy. Legacy boolean values
// from old settings files are accepted ("true" is allow, "false" is never).
// Anything unrecognized is unset.
func ParseAnonymousPolicy(value string) AnonymousPolicy {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "must":
		return AnonymousMust
	case "allow", "true":
		return AnonymousAllow
	case "never", "false":
		return AnonymousNever
	default:
		return AnonymousUnset
	}
}

// Settings is the effective configuration for one login attempt.
// It is built once and passed by value.
type Settings struct {
	BaseURL     string
	Offline     bool
	Relogin     bool
	Force       bool
	Anonymous   AnonymousPolicy
	Interactive bool
	Notebook    bool

	// APIKey is an in-memory key set by a previous login in this process.
	// It belongs to APIKeyHost only.
	APIKey     Secret
	APIKeyHost string
	// EnvAPIKey is the key read from the environment.
	EnvAPIKey Secret
}

// Host returns the credential key for the configured base URL.
func (s Settings) Host() string {
	return NormalizeHost(s.BaseURL)
}

// ProcessKey returns the in-memory key when it was set for this host.
func (s Settings) ProcessKey() (Secret, bool) {
	if s.APIKey.IsZero() || NormalizeHost(s.APIKeyHost) != s.Host() {
		return Secret{}, false
	}
	return s.APIKey, true
}

// NormalizeBaseURL adds a scheme to bare hosts and drops trailing slashes.
func NormalizeBaseURL(baseURL string) string {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return ""
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	return strings.TrimRight(trimmed, "/")
}

// NormalizeHost extracts host[:port] from a base URL, lowercased.
func NormalizeHost(baseURL string) string {
	normalized := NormalizeBaseURL(baseURL)
	if normalized == "" {
		return ""
	}
	parsed, err := url.Parse(normalized)
	if err != nil || parsed.Host == "" {
		// Fallback to the raw value without scheme.
		_, rest, _ := strings.Cut(normalized, "://")
		return strings.ToLower(rest)
	}
	return strings.ToLower(parsed.Host)
}
