package app

import (
	"context"
	"io"
	"log/slog"
	"os"

	"trackr/internal/adapters/terminal"
	"trackr/internal/domain"
	"trackr/internal/logging"
	"trackr/internal/services/auth"
	"trackr/internal/services/credentials"
	"trackr/internal/services/login"
	"trackr/internal/services/session"
	"trackr/internal/services/settings"
)

// App contains all application dependencies.
type App struct {
	// Settings
	Global  *settings.Global
	Source  settings.Source
	Session *session.State

	// Credential storage
	ConfigProvider  domain.ConfigProvider
	CredentialStore *credentials.Store

	// Remote API
	HTTP domain.HTTPAdapter
	API  *auth.Client

	// I/O dependencies
	FileSystem domain.FileSystemAdapter
	Terminal   *terminal.Adapter
	Prompter   domain.Prompter
	Printer    *logging.Terminal

	// Logging
	Logger *slog.Logger

	// Configuration
	Config *Config
}

// Config holds application configuration.
type Config struct {
	LogLevel        slog.Level
	Verbose         bool
	CredentialsPath string
	Source          settings.Source

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Option is a functional option for configuring the App.
type Option func(*Config)

// WithLogLevel sets the logging level.
func WithLogLevel(level slog.Level) Option {
	return func(cfg *Config) {
		cfg.LogLevel = level
	}
}

// WithVerbose enables verbose logging.
func WithVerbose(verbose bool) Option {
	return func(cfg *Config) {
		cfg.Verbose = verbose
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}
	}
}

// WithCredentialsPath overrides the credential file location.
func WithCredentialsPath(path string) Option {
	return func(cfg *Config) {
		cfg.CredentialsPath = path
	}
}

// WithSource sets where settings are read from. Defaults to an empty source.
func WithSource(source settings.Source) Option {
	return func(cfg *Config) {
		cfg.Source = source
	}
}

// WithStreams replaces the process standard streams.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(cfg *Config) {
		cfg.Stdin = stdin
		cfg.Stdout = stdout
		cfg.Stderr = stderr
	}
}

// NewApp creates a new App with the given options.
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &Config{
		LogLevel: slog.LevelInfo,
		Verbose:  false,
		Source:   settings.MapSource{},
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}

	// Apply options.
	for _, opt := range opts {
		opt(cfg)
	}

	return NewAppWithConfig(ctx, cfg)
}

// NewLoginOrchestrator builds an orchestrator over the app's services.
func (a *App) NewLoginOrchestrator(opts ...login.Option) *login.Orchestrator {
	opts = append([]login.Option{login.WithSource(a.Source)}, opts...)
	return login.NewOrchestrator(
		a.Global,
		a.CredentialStore,
		a.Prompter,
		a.API,
		a.Terminal,
		a.Printer,
		a.Logger,
		opts...,
	)
}
