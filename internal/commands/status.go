package commands

import (
	"context"
	"fmt"
	"log/slog"

	"trackr/internal/domain"
	"trackr/internal/services/settings"
)

// StatusCommand handles `trackr status`. It never changes settings or the store.
type StatusCommand struct {
	global *settings.Global
	source settings.Source
	store  domain.CredentialStore
	logger *slog.Logger
}

// NewStatusCommand creates a new status command.
func NewStatusCommand(
	global *settings.Global,
	source settings.Source,
	store domain.CredentialStore,
	logger *slog.Logger,
) *StatusCommand {
	return &StatusCommand{
		global: global,
		source: source,
		store:  store,
		logger: logger,
	}
}

// StatusRequest contains the parameters for the status command.
type StatusRequest struct {
	Host string
}

// Status describes the credential state for one host.
type Status struct {
	BaseURL       string
	Host          string
	Offline       bool
	HasCredential bool
	Source        domain.CredentialSource
	Anonymous     bool
	// Key is the redacted form of the key.
	Key string
}

// Execute runs the status command.
func (c *StatusCommand) Execute(ctx context.Context, req StatusRequest) (Status, error) {
	var prior *domain.Settings
	if snap, ok := c.global.Snapshot(); ok {
		prior = &snap
	}

	s := settings.Resolve(settings.Overrides{BaseURL: req.Host}, prior, c.source)
	status := Status{
		BaseURL: s.BaseURL,
		Host:    s.Host(),
		Offline: s.Offline,
	}

	found, ok, err := c.store.Lookup(ctx, s)
	if err != nil {
		return status, fmt.Errorf("failed to read credentials: %w", err)
	}

	if ok {
		status.HasCredential = true
		status.Source = found.Source
		status.Anonymous = found.Anonymous
		status.Key = found.Key.String()
	}

	c.logger.DebugContext(ctx, "Resolved status", "host", status.Host, "credential", status.HasCredential)
	return status, nil
}
