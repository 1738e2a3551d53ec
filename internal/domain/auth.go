package domain

import (
	"context"
	"time"
)

// CredentialSource names where a resolved key came from.
type CredentialSource string

const (
	SourceOverride    CredentialSource = "override"
	SourceEnvironment CredentialSource = "environment"
	SourceFile        CredentialSource = "file"
)

// CredentialLookup is a key found for a host.
type CredentialLookup struct {
	Host      string
	Key       Secret
	Source    CredentialSource
	Anonymous bool
}

// CredentialStore persists one API key per host.
type CredentialStore interface {
	HasCredential(ctx context.Context, settings Settings) bool
	Lookup(ctx context.Context, settings Settings) (CredentialLookup, bool, error)
	Write(ctx context.Context, settings Settings, key Secret, anonymous bool) error
}

// Identity is the account a key belongs to.
type Identity struct {
	Entity   string
	Username string
}

// Name returns the entity, falling back to the username.
func (i Identity) Name() string {
	if i.Entity != "" {
		return i.Entity
	}
	return i.Username
}

// AuthAPI is the remote side of authentication.
type AuthAPI interface {
	CreateAnonymousKey(ctx context.Context, baseURL string) (Secret, error)
	Viewer(ctx context.Context, baseURL string, key Secret) (Identity, error)
}

// Heartbeat is the payload an agent sends on each tick.
type Heartbeat struct {
	SessionID   string    `json:"session_id"`
	Utilization *float64  `json:"utilization,omitempty"`
	SentAt      time.Time `json:"sent_at"`
}

// Heartbeater reports agent liveness to the remote service.
type Heartbeater interface {
	Heartbeat(ctx context.Context, baseURL string, key Secret, beat Heartbeat) error
}

// StoredCredential is one persisted key. At most one exists per host.
type StoredCredential struct {
	Host      string    `yaml:"host"`
	Login     string    `yaml:"login"`
	Key       string    `yaml:"key"`
	Anonymous bool      `yaml:"anonymous,omitempty"`
	UpdatedAt time.Time `yaml:"updated_at,omitempty"`
}
