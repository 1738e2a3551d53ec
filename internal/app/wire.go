package app

import (
	"context"
	"time"

	"trackr/internal/adapters/filesystem"
	"trackr/internal/adapters/http"
	"trackr/internal/adapters/terminal"
	apperrors "trackr/internal/errors"
	"trackr/internal/logging"
	"trackr/internal/services/auth"
	"trackr/internal/services/config"
	"trackr/internal/services/credentials"
	"trackr/internal/services/prompt"
	"trackr/internal/services/session"
	"trackr/internal/services/settings"
)

const httpTimeout = 30 * time.Second

// NewAppWithConfig creates a new App with the given configuration, wiring all dependencies.
func NewAppWithConfig(ctx context.Context, cfg *Config) (*App, error) {
	// Create logger.
	logger := logging.NewLoggerTo(cfg.Stderr, cfg.LogLevel)

	// Create filesystem adapter.
	fs := filesystem.New()

	source := cfg.Source
	if source == nil {
		source = settings.MapSource{}
	}

	credentialsPath := cfg.CredentialsPath
	if credentialsPath == "" {
		if v, ok := source.Lookup(settings.KeyCredentialsFile); ok {
			credentialsPath = v
		}
	}

	// Create config services.
	configProvider := config.NewProvider(fs, credentialsPath)
	storePath, err := configProvider.GetCredentialsPath()
	if err != nil {
		return nil, apperrors.NewConfigurationError(settings.KeyCredentialsFile, credentialsPath,
			"cannot locate credential file", err)
	}
	store := credentials.NewStore(fs, storePath, logger)

	// Create I/O services.
	printer := logging.NewTerminal(cfg.Stderr)
	term := terminal.NewAdapter(cfg.Stdin, cfg.Stdout, cfg.Stderr)
	prompter := prompt.NewService(term, printer, logger)

	// Create remote API client.
	httpAdapter := http.NewAdapter(httpTimeout, logger)
	api := auth.NewClient(httpAdapter, logger)

	logger.DebugContext(ctx, "Initializing trackr with configuration",
		"logLevel", cfg.LogLevel.String(),
		"verbose", cfg.Verbose,
		"credentialsPath", store.Path())

	return &App{
		Global:          settings.NewGlobal(),
		Source:          source,
		Session:         session.NewState(),
		ConfigProvider:  configProvider,
		CredentialStore: store,
		HTTP:            httpAdapter,
		API:             api,
		FileSystem:      fs,
		Terminal:        term,
		Prompter:        prompter,
		Printer:         printer,
		Logger:          logger,
		Config:          cfg,
	}, nil
}
