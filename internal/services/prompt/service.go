// Package prompt obtains an API key from the operator or, when policy says
// so, from the server as an anonymous key.
package prompt

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"trackr/internal/domain"
	"trackr/internal/errors"
	"trackr/internal/services/credentials"
)

const (
	choicePrompt = "Enter your choice: "
	keyPrompt    = "Paste an API key from your profile and hit enter: "
)

// Printer shows operator-facing messages.
type Printer interface {
	Log(format string, args ...any)
	Warn(format string, args ...any)
}

// Service implements domain.Prompter.
type Service struct {
	terminal domain.Terminal
	printer  Printer
	logger   *slog.Logger
}

var _ domain.Prompter = (*Service)(nil)

// NewService creates a prompt service.
func NewService(terminal domain.Terminal, printer Printer, logger *slog.Logger) *Service {
	return &Service{
		terminal: terminal,
		printer:  printer,
		logger:   logger,
	}
}

// Prompt returns a key for settings.BaseURL. Anonymous issuance and
// interactive entry are exclusive: policy "must" issues anonymously without
// asking, anything else needs a terminal.
func (s *Service) Prompt(
	ctx context.Context,
	settings domain.Settings,
	api domain.AuthAPI,
	opts domain.PromptOptions,
) (domain.PromptResult, error) {
	if settings.Anonymous == domain.AnonymousMust && !settings.Force {
		s.logger.DebugContext(ctx, "Anonymous policy is must, skipping prompt", "host", settings.Host())
		return s.anonymous(ctx, settings, api)
	}

	if !settings.Interactive {
		return domain.PromptResult{}, errors.NewUsageError(
			errors.ReasonNoTTY,
			"API key not configured and no terminal available; run `trackr login [API key]` or set TRACKR_API_KEY",
			errors.ErrNotInteractive,
		)
	}

	choices := Choices(settings, opts)

	choice := choices[0]
	if len(choices) > 1 {
		var err error
		choice, err = s.choose(ctx, choices)
		if err != nil {
			return domain.PromptResult{}, err
		}
	}

	s.logger.DebugContext(ctx, "Login choice", "choice", string(choice))

	switch choice {
	case domain.ChoiceAnonymous:
		return s.anonymous(ctx, settings, api)
	case domain.ChoiceNew:
		s.printer.Log("Create an account here: %s", authorizeURL(settings.BaseURL, true))
		return s.readKey(ctx, choice)
	case domain.ChoiceExisting:
		s.printer.Log("You can find your API key in your browser here: %s", authorizeURL(settings.BaseURL, false))
		return s.readKey(ctx, choice)
	default:
		return domain.PromptResult{Choice: domain.ChoiceOffline}, nil
	}
}

// Choices returns the menu entries allowed by settings and opts, in display order.
// "Use an existing account" is always present.
func Choices(settings domain.Settings, opts domain.PromptOptions) []domain.LoginChoice {
	anonymousAllowed := !settings.Force &&
		!opts.HaveCredential &&
		(settings.Anonymous == domain.AnonymousAllow || settings.Anonymous == domain.AnonymousMust)

	choices := make([]domain.LoginChoice, 0, 4)
	if anonymousAllowed {
		choices = append(choices, domain.ChoiceAnonymous)
	}
	if !settings.Force && !settings.Notebook && !opts.NoCreate {
		choices = append(choices, domain.ChoiceNew)
	}
	choices = append(choices, domain.ChoiceExisting)
	if !settings.Force && !settings.Notebook && !opts.NoOffline {
		choices = append(choices, domain.ChoiceOffline)
	}
	return choices
}

func (s *Service) choose(ctx context.Context, choices []domain.LoginChoice) (domain.LoginChoice, error) {
	for i, choice := range choices {
		s.printer.Log("(%d) %s", i+1, choice)
	}

	for {
		answer, err := s.terminal.ReadLine(ctx, choicePrompt)
		if err != nil {
			return "", fmt.Errorf("failed to read login choice: %w", err)
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(answer))
		if convErr == nil && n >= 1 && n <= len(choices) {
			return choices[n-1], nil
		}
		s.printer.Warn("Invalid choice %q, enter a number between 1 and %d", strings.TrimSpace(answer), len(choices))
	}
}

func (s *Service) readKey(ctx context.Context, choice domain.LoginChoice) (domain.PromptResult, error) {
	raw, err := s.terminal.ReadSecret(ctx, keyPrompt)
	if err != nil {
		return domain.PromptResult{}, fmt.Errorf("failed to read API key: %w", err)
	}

	key := domain.NewSecret(raw)
	if err := credentials.ValidateKey(key.Value()); err != nil {
		return domain.PromptResult{}, err
	}

	return domain.PromptResult{Key: key, Choice: choice}, nil
}

func (s *Service) anonymous(ctx context.Context, settings domain.Settings, api domain.AuthAPI) (domain.PromptResult, error) {
	key, err := api.CreateAnonymousKey(ctx, settings.BaseURL)
	if err != nil {
		return domain.PromptResult{}, fmt.Errorf("anonymous login failed: %w", err)
	}

	s.logger.InfoContext(ctx, "Issued anonymous key", "host", settings.Host(), "key", key)
	return domain.PromptResult{Key: key, Anonymous: true, Choice: domain.ChoiceAnonymous}, nil
}

// authorizeURL points at the web app, which is served from the API host
// without its "api." label.
func authorizeURL(baseURL string, signup bool) string {
	app := appURL(baseURL)
	if signup {
		return app + "/authorize?signup=true"
	}
	return app + "/authorize"
}

func appURL(baseURL string) string {
	normalized := domain.NormalizeBaseURL(baseURL)
	parsed, err := url.Parse(normalized)
	if err != nil || parsed.Host == "" {
		return normalized
	}
	parsed.Host = strings.TrimPrefix(parsed.Host, "api.")
	parsed.Path = ""
	return parsed.String()
}
