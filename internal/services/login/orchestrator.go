// Package login decides, once per process, which API key is used and
// whether the operator has to be asked for one.
package login

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"trackr/internal/domain"
	"trackr/internal/errors"
	"trackr/internal/services/session"
	"trackr/internal/services/settings"
)

const identityQueryTimeout = 5 * time.Second

const (
	reloginHint  = "use `trackr login --relogin` to force relogin"
	notebookHint = "If you're specifying your API key in code, ensure this code is not shared publicly. " +
		"Consider setting the TRACKR_API_KEY environment variable, or running `trackr login` from the command line."
)

// Printer shows operator-facing messages.
type Printer interface {
	Log(format string, args ...any)
	LogOnce(format string, args ...any)
	Warn(format string, args ...any)
	WarnOnce(format string, args ...any)
	Highlight(s string) string
}

// Propagator hands a resolved key to a session channel.
type Propagator interface {
	Propagate(ctx context.Context, ch domain.SessionChannel, key domain.Secret) error
}

// Request holds the caller's options for one login attempt. Empty strings
// and false values leave the environment and earlier settings in force.
type Request struct {
	Anonymous string
	Key       string
	Host      string
	Relogin   bool
	Force     bool
	// Verify checks explicit and prompted keys against the server before
	// they are stored.
	Verify bool
}

// Outcome is the result of one login attempt. Resolved is false only in
// offline mode.
type Outcome struct {
	Resolved   bool
	Credential domain.Secret
}

// Orchestrator runs the login state machine.
type Orchestrator struct {
	global     *settings.Global
	source     settings.Source
	store      domain.CredentialStore
	prompter   domain.Prompter
	api        domain.AuthAPI
	terminal   domain.Terminal
	printer    Printer
	propagator Propagator
	channel    domain.SessionChannel
	logger     *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithChannel attaches a running session channel.
func WithChannel(ch domain.SessionChannel) Option {
	return func(o *Orchestrator) {
		o.channel = ch
	}
}

// WithSource sets the environment and settings file layer.
func WithSource(source settings.Source) Option {
	return func(o *Orchestrator) {
		o.source = source
	}
}

// WithPropagator replaces the default propagator.
func WithPropagator(p Propagator) Option {
	return func(o *Orchestrator) {
		o.propagator = p
	}
}

// NewOrchestrator creates a login orchestrator.
func NewOrchestrator(
	global *settings.Global,
	store domain.CredentialStore,
	prompter domain.Prompter,
	api domain.AuthAPI,
	terminal domain.Terminal,
	printer Printer,
	logger *slog.Logger,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		global:     global,
		store:      store,
		prompter:   prompter,
		api:        api,
		terminal:   terminal,
		printer:    printer,
		propagator: session.NewPropagator(session.DefaultNotifyTimeout, logger),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Login resolves a key for this process. It returns the outcome, the
// updated session state, and an error only for failures the caller must
// surface (usage and storage errors).
func (o *Orchestrator) Login(
	ctx context.Context,
	state domain.SessionState,
	req Request,
) (Outcome, domain.SessionState, error) {
	if state.Live && !req.Relogin {
		o.printer.Warn("Calling trackr login after a run has started has no effect; %s", reloginHint)
		return Outcome{Resolved: true, Credential: state.Key}, state, nil
	}

	s := o.global.Apply(o.overrides(req), o.source)
	if s.Offline {
		o.logger.DebugContext(ctx, "Offline mode, skipping login", "host", s.Host())
		return Outcome{}, state, nil
	}

	channelIdentity := ""
	if req.Key == "" && !s.Relogin {
		channelIdentity = o.channelIdentity(ctx)
	}

	var (
		existing    domain.CredentialLookup
		hasExisting bool
	)
	if key, ok := s.ProcessKey(); ok && channelIdentity != "" {
		// The channel already runs with this process's key; the store is not consulted.
		existing = domain.CredentialLookup{Host: s.Host(), Key: key, Source: domain.SourceOverride}
		hasExisting = true
	} else {
		existing, hasExisting = o.lookup(ctx, s)
	}
	loggedIn := hasExisting && !s.Relogin

	o.logger.DebugContext(ctx, "Checked for existing credential",
		"host", s.Host(),
		"found", hasExisting,
		"relogin", s.Relogin,
		"source", string(existing.Source))

	var credential domain.Secret
	switch {
	case req.Key != "":
		key, err := o.persistExplicit(ctx, s, domain.NewSecret(req.Key), req.Verify)
		if err != nil {
			return Outcome{}, state, err
		}
		credential = key
	case loggedIn:
		credential = existing.Key
	default:
		key, resolved, err := o.acquire(ctx, s, hasExisting, req.Verify)
		if err != nil {
			return Outcome{}, state, err
		}
		if !resolved {
			return Outcome{}, state, nil
		}
		credential = key
	}

	identity := ""
	if loggedIn {
		identity = channelIdentity
		if identity == "" {
			identity = o.viewerIdentity(ctx, s, credential)
		}
		if identity != "" {
			o.printer.LogOnce("Currently logged in as: %s (%s)", o.printer.Highlight(identity), reloginHint)
		}
	}

	if err := o.propagator.Propagate(ctx, o.channel, credential); err != nil {
		o.logger.WarnContext(ctx, "Credential propagation failed", "error", err)
		o.printer.Warn("%v", err)
	}

	state.Key = credential
	state.Identity = identity
	return Outcome{Resolved: true, Credential: credential}, state, nil
}

func (o *Orchestrator) overrides(req Request) settings.Overrides {
	overrides := settings.Overrides{
		BaseURL:   req.Host,
		Anonymous: req.Anonymous,
	}
	if req.Relogin {
		overrides.Relogin = boolPtr(true)
	}
	if req.Force {
		overrides.Force = boolPtr(true)
	}
	interactive := o.terminal.IsInteractive()
	overrides.Interactive = &interactive
	return overrides
}

// lookup treats an unreadable store as holding no credential.
func (o *Orchestrator) lookup(ctx context.Context, s domain.Settings) (domain.CredentialLookup, bool) {
	found, ok, err := o.store.Lookup(ctx, s)
	if err != nil {
		o.logger.WarnContext(ctx, "Failed to read stored credential", "host", s.Host(), "error", err)
		return domain.CredentialLookup{}, false
	}
	return found, ok
}

func (o *Orchestrator) persistExplicit(
	ctx context.Context,
	s domain.Settings,
	key domain.Secret,
	verify bool,
) (domain.Secret, error) {
	if s.Notebook {
		o.printer.WarnOnce(notebookHint)
	}

	if err := o.persist(ctx, s, key, false, verify); err != nil {
		return domain.Secret{}, err
	}
	return key, nil
}

// acquire prompts for a key. resolved is false when the operator chose
// offline mode.
func (o *Orchestrator) acquire(
	ctx context.Context,
	s domain.Settings,
	hasExisting bool,
	verify bool,
) (domain.Secret, bool, error) {
	result, err := o.prompter.Prompt(ctx, s, o.api, domain.PromptOptions{
		NoOffline:      s.Force,
		NoCreate:       s.Force,
		HaveCredential: hasExisting,
	})
	if err != nil {
		return domain.Secret{}, false, err
	}

	if result.Choice == domain.ChoiceOffline {
		o.global.Update(func(g *domain.Settings) {
			g.Offline = true
		})
		o.printer.Log("Offline mode; results stay on this machine")
		return domain.Secret{}, false, nil
	}

	if err := o.persist(ctx, s, result.Key, result.Anonymous, verify && !result.Anonymous); err != nil {
		return domain.Secret{}, false, err
	}
	return result.Key, true, nil
}

// persist writes key to the store and makes it the process-wide key.
func (o *Orchestrator) persist(
	ctx context.Context,
	s domain.Settings,
	key domain.Secret,
	anonymous bool,
	verify bool,
) error {
	if verify {
		if err := o.verify(ctx, s, key); err != nil {
			return err
		}
	}

	if err := o.store.Write(ctx, s, key, anonymous); err != nil {
		return err
	}

	o.global.Update(func(g *domain.Settings) {
		g.APIKey = key
		g.APIKeyHost = s.Host()
	})
	return nil
}

func (o *Orchestrator) verify(ctx context.Context, s domain.Settings, key domain.Secret) error {
	if _, err := o.api.Viewer(ctx, s.BaseURL, key); err != nil {
		if errors.IsUnauthorized(err) {
			return errors.NewUsageError(errors.ReasonRejected, fmt.Sprintf("API key rejected by %s", s.Host()), err)
		}
		return fmt.Errorf("failed to verify API key: %w", err)
	}
	return nil
}

// channelIdentity asks the attached session channel for its active identity.
func (o *Orchestrator) channelIdentity(ctx context.Context) string {
	if o.channel == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, identityQueryTimeout)
	defer cancel()

	identity, ok := o.channel.ActiveIdentity(ctx)
	if !ok {
		return ""
	}
	return identity
}

func (o *Orchestrator) viewerIdentity(ctx context.Context, s domain.Settings, key domain.Secret) string {
	ctx, cancel := context.WithTimeout(ctx, identityQueryTimeout)
	defer cancel()

	viewer, err := o.api.Viewer(ctx, s.BaseURL, key)
	if err != nil {
		o.logger.DebugContext(ctx, "Could not resolve identity", "error", err)
		return ""
	}
	return viewer.Name()
}

func boolPtr(b bool) *bool {
	return &b
}
