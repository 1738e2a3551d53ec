package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"trackr/internal/domain"
	"trackr/internal/services/sampler"
	"trackr/internal/services/session"
	"trackr/internal/services/settings"
)

// LoginFactory builds a Loginer bound to a session channel.
type LoginFactory func(ch domain.SessionChannel) Loginer

// AgentCommand handles `trackr agent`: it runs the session channel and the
// utilization sampler, logs in with the channel attached, and blocks until
// the context ends.
type AgentCommand struct {
	global      *settings.Global
	source      settings.Source
	heartbeater domain.Heartbeater
	identities  domain.AuthAPI
	gauge       sampler.Gauge
	newLogin    LoginFactory
	session     SessionStore
	logger      *slog.Logger
}

// NewAgentCommand creates a new agent command.
func NewAgentCommand(
	global *settings.Global,
	source settings.Source,
	heartbeater domain.Heartbeater,
	identities domain.AuthAPI,
	gauge sampler.Gauge,
	newLogin LoginFactory,
	state SessionStore,
	logger *slog.Logger,
) *AgentCommand {
	return &AgentCommand{
		global:      global,
		source:      source,
		heartbeater: heartbeater,
		identities:  identities,
		gauge:       gauge,
		newLogin:    newLogin,
		session:     state,
		logger:      logger,
	}
}

// AgentRequest contains the parameters for the agent command.
type AgentRequest struct {
	Login             LoginRequest
	HeartbeatInterval time.Duration
	SampleInterval    time.Duration
	// Started is called once the agent is logged in and running.
	Started func(sessionID string)
}

// Execute runs the agent until ctx is cancelled.
func (c *AgentCommand) Execute(ctx context.Context, req AgentRequest) error {
	var prior *domain.Settings
	if snap, ok := c.global.Snapshot(); ok {
		prior = &snap
	}
	s := settings.Resolve(settings.Overrides{BaseURL: req.Login.Host}, prior, c.source)
	if s.Offline {
		c.logger.InfoContext(ctx, "Offline mode, agent not started")
		return nil
	}

	utilization := sampler.New(c.gauge, req.SampleInterval, c.logger)
	utilization.Start(ctx)
	defer utilization.Stop()

	channel := session.NewChannel(s.BaseURL, c.heartbeater, c.logger,
		session.WithInterval(req.HeartbeatInterval),
		session.WithIdentityLookup(c.identities),
		session.WithUtilization(utilization),
	)
	channel.Start(ctx)
	defer channel.Stop()

	outcome, state, err := c.newLogin(channel).Login(ctx, c.session.Load(), req.Login.toLogin())
	if err != nil {
		return fmt.Errorf("agent login failed: %w", err)
	}
	if !outcome.Resolved {
		c.session.Store(state)
		c.logger.InfoContext(ctx, "Offline mode selected, agent not started")
		return nil
	}

	state.Live = true
	c.session.Store(state)
	defer func() {
		state.Live = false
		c.session.Store(state)
	}()

	c.logger.InfoContext(ctx, "Agent running",
		"session", channel.SessionID(),
		"host", s.Host(),
		"identity", state.Identity)
	if req.Started != nil {
		req.Started(channel.SessionID())
	}

	<-ctx.Done()
	c.logger.InfoContext(ctx, "Agent stopping", "session", channel.SessionID())
	return nil
}
