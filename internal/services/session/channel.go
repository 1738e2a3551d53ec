package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"trackr/internal/domain"
	"trackr/internal/errors"
)

// DefaultInterval is the pause between heartbeats.
const DefaultInterval = 30 * time.Second

const identityLookupTimeout = 10 * time.Second

// UtilizationSource exposes the last utilization sample.
type UtilizationSource interface {
	Last() (float64, bool)
}

type credentialUpdate struct {
	key domain.Secret
	ack chan struct{}
}

type identityReply struct {
	identity string
	ok       bool
}

// Channel is the agent's background path to the API. One goroutine owns all
// of its state; other goroutines only send it credentials or ask for the
// active identity.
type Channel struct {
	baseURL     string
	heartbeater domain.Heartbeater
	identities  domain.AuthAPI
	utilization UtilizationSource
	interval    time.Duration
	sessionID   string
	logger      *slog.Logger

	updates chan credentialUpdate
	queries chan chan identityReply
	stop    chan struct{}
	done    chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
}

var _ domain.SessionChannel = (*Channel)(nil)

// Option configures a Channel.
type Option func(*Channel)

// WithInterval sets the heartbeat interval.
func WithInterval(interval time.Duration) Option {
	return func(c *Channel) {
		if interval > 0 {
			c.interval = interval
		}
	}
}

// WithIdentityLookup resolves the identity of each new key through api.
func WithIdentityLookup(api domain.AuthAPI) Option {
	return func(c *Channel) {
		c.identities = api
	}
}

// WithUtilization attaches utilization samples to heartbeats.
func WithUtilization(source UtilizationSource) Option {
	return func(c *Channel) {
		c.utilization = source
	}
}

// WithSessionID fixes the session id instead of generating one.
func WithSessionID(id string) Option {
	return func(c *Channel) {
		c.sessionID = id
	}
}

// NewChannel creates a channel for baseURL. It does nothing until Start.
func NewChannel(baseURL string, heartbeater domain.Heartbeater, logger *slog.Logger, opts ...Option) *Channel {
	c := &Channel{
		baseURL:     baseURL,
		heartbeater: heartbeater,
		interval:    DefaultInterval,
		sessionID:   uuid.NewString(),
		logger:      logger,
		updates:     make(chan credentialUpdate),
		queries:     make(chan chan identityReply),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SessionID identifies this channel in heartbeats.
func (c *Channel) SessionID() string {
	return c.sessionID
}

// Start launches the owner goroutine. Later calls do nothing.
func (c *Channel) Start(ctx context.Context) {
	c.startOnce.Do(func() {
		go c.run(ctx)
	})
}

// Stop ends the owner goroutine and waits for it.
func (c *Channel) Stop() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
	// A channel that was never started has no owner to close done.
	c.startOnce.Do(func() {
		close(c.done)
	})
	<-c.done
}

// NotifyCredential hands key to the owner goroutine. It returns once the key
// is in use.
func (c *Channel) NotifyCredential(ctx context.Context, key domain.Secret) error {
	update := credentialUpdate{key: key, ack: make(chan struct{})}

	select {
	case c.updates <- update:
	case <-c.done:
		return errors.ErrChannelClosed
	case <-ctx.Done():
		return fmt.Errorf("credential not delivered: %w", ctx.Err())
	}

	select {
	case <-update.ack:
		return nil
	case <-c.done:
		return errors.ErrChannelClosed
	case <-ctx.Done():
		return fmt.Errorf("credential not acknowledged: %w", ctx.Err())
	}
}

// ActiveIdentity returns the identity of the key in use, if known.
func (c *Channel) ActiveIdentity(ctx context.Context) (string, bool) {
	reply := make(chan identityReply, 1)

	select {
	case c.queries <- reply:
	case <-c.done:
		return "", false
	case <-ctx.Done():
		return "", false
	}

	select {
	case r := <-reply:
		return r.identity, r.ok
	case <-c.done:
		return "", false
	case <-ctx.Done():
		return "", false
	}
}

func (c *Channel) run(ctx context.Context) {
	defer close(c.done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	var (
		key      domain.Secret
		identity string
	)

	c.logger.DebugContext(ctx, "Session channel started", "session", c.sessionID, "interval", c.interval)

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stop:
			c.logger.DebugContext(ctx, "Session channel stopped", "session", c.sessionID)
			return
		case update := <-c.updates:
			key = update.key
			identity = ""
			close(update.ack)
			c.logger.InfoContext(ctx, "Session channel credential updated", "session", c.sessionID, "key", key)
			identity = c.lookupIdentity(ctx, key)
			c.beat(ctx, key)
		case reply := <-c.queries:
			reply <- identityReply{identity: identity, ok: identity != ""}
		case <-ticker.C:
			if !key.IsZero() {
				c.beat(ctx, key)
			}
		}
	}
}

func (c *Channel) lookupIdentity(ctx context.Context, key domain.Secret) string {
	if c.identities == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, identityLookupTimeout)
	defer cancel()

	identity, err := c.identities.Viewer(ctx, c.baseURL, key)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to resolve session identity", "error", err)
		return ""
	}
	return identity.Name()
}

func (c *Channel) beat(ctx context.Context, key domain.Secret) {
	beat := domain.Heartbeat{
		SessionID: c.sessionID,
		SentAt:    time.Now().UTC(),
	}
	if c.utilization != nil {
		if value, ok := c.utilization.Last(); ok {
			beat.Utilization = &value
		}
	}

	if err := c.heartbeater.Heartbeat(ctx, c.baseURL, key, beat); err != nil {
		c.logger.WarnContext(ctx, "Heartbeat failed", "session", c.sessionID, "error", err)
	}
}
