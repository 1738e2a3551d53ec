// Package session holds the agent's long-lived channel to the API and the
// propagator that hands it newly resolved keys.
package session

import (
	"context"
	"log/slog"
	"time"

	"trackr/internal/domain"
	"trackr/internal/errors"
)

// DefaultNotifyTimeout bounds one credential notification.
const DefaultNotifyTimeout = 5 * time.Second

// Propagator forwards a resolved key to an attached session channel.
type Propagator struct {
	timeout time.Duration
	logger  *slog.Logger
}

// NewPropagator creates a propagator. A non-positive timeout uses DefaultNotifyTimeout.
func NewPropagator(timeout time.Duration, logger *slog.Logger) *Propagator {
	if timeout <= 0 {
		timeout = DefaultNotifyTimeout
	}
	return &Propagator{
		timeout: timeout,
		logger:  logger,
	}
}

// Propagate notifies ch of key. A nil channel is a no-op. Failures are
// returned as *errors.NotificationFailure and never invalidate a login.
func (p *Propagator) Propagate(ctx context.Context, ch domain.SessionChannel, key domain.Secret) error {
	if ch == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := ch.NotifyCredential(ctx, key); err != nil {
		return errors.NewNotificationFailure(err)
	}

	p.logger.DebugContext(ctx, "Credential propagated to session channel", "key", key)
	return nil
}
