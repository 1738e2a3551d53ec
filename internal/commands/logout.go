package commands

import (
	"context"
	"fmt"
	"log/slog"

	"trackr/internal/domain"
	"trackr/internal/services/settings"
)

// CredentialClearer removes a stored credential.
type CredentialClearer interface {
	Clear(ctx context.Context, host string) error
}

// LogoutCommand handles `trackr logout`.
type LogoutCommand struct {
	global *settings.Global
	source settings.Source
	store  CredentialClearer
	logger *slog.Logger
}

// NewLogoutCommand creates a new logout command.
func NewLogoutCommand(
	global *settings.Global,
	source settings.Source,
	store CredentialClearer,
	logger *slog.Logger,
) *LogoutCommand {
	return &LogoutCommand{
		global: global,
		source: source,
		store:  store,
		logger: logger,
	}
}

// LogoutRequest contains the parameters for the logout command.
type LogoutRequest struct {
	Host string
}

// Execute removes the stored credential for the resolved host and returns
// that host.
func (c *LogoutCommand) Execute(ctx context.Context, req LogoutRequest) (string, error) {
	var prior *domain.Settings
	if snap, ok := c.global.Snapshot(); ok {
		prior = &snap
	}
	host := settings.Resolve(settings.Overrides{BaseURL: req.Host}, prior, c.source).Host()

	if err := c.store.Clear(ctx, host); err != nil {
		return host, fmt.Errorf("failed to remove credential: %w", err)
	}

	c.logger.DebugContext(ctx, "Logged out", "host", host)
	return host, nil
}
