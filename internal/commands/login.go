package commands

import (
	"context"
	"fmt"
	"log/slog"

	"trackr/internal/domain"
	"trackr/internal/services/login"
)

// Loginer runs one login attempt.
type Loginer interface {
	Login(ctx context.Context, state domain.SessionState, req login.Request) (login.Outcome, domain.SessionState, error)
}

// SessionStore keeps the session state between logins in one process.
type SessionStore interface {
	Load() domain.SessionState
	Store(state domain.SessionState)
}

// LoginCommand handles `trackr login`.
type LoginCommand struct {
	loginer Loginer
	session SessionStore
	logger  *slog.Logger
}

// NewLoginCommand creates a new login command.
func NewLoginCommand(loginer Loginer, state SessionStore, logger *slog.Logger) *LoginCommand {
	return &LoginCommand{
		loginer: loginer,
		session: state,
		logger:  logger,
	}
}

// LoginRequest contains the parameters for the login command.
type LoginRequest struct {
	Key       string
	Anonymous string
	Host      string
	Relogin   bool
	Force     bool
	Verify    bool
}

func (r LoginRequest) toLogin() login.Request {
	return login.Request{
		Anonymous: r.Anonymous,
		Key:       r.Key,
		Host:      r.Host,
		Relogin:   r.Relogin,
		Force:     r.Force,
		Verify:    r.Verify,
	}
}

// LoginResult reports whether a key is configured. The key itself stays in
// the process.
type LoginResult struct {
	Resolved bool
	Identity string
}

// Execute runs the login command.
func (c *LoginCommand) Execute(ctx context.Context, req LoginRequest) (LoginResult, error) {
	c.logger.DebugContext(ctx, "Starting login",
		"host", req.Host,
		"anonymous", req.Anonymous,
		"relogin", req.Relogin,
		"force", req.Force,
		"explicitKey", req.Key != "")

	outcome, state, err := c.loginer.Login(ctx, c.session.Load(), req.toLogin())
	if err != nil {
		return LoginResult{}, fmt.Errorf("login failed: %w", err)
	}
	c.session.Store(state)

	c.logger.DebugContext(ctx, "Login finished", "resolved", outcome.Resolved)
	return LoginResult{Resolved: outcome.Resolved, Identity: state.Identity}, nil
}
