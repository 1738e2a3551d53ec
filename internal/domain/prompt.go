package domain

import "context"

// LoginChoice is one entry of the interactive login menu.
type LoginChoice string

const (
	ChoiceAnonymous LoginChoice = "Private dashboard, no account required"
	ChoiceNew       LoginChoice = "Create a trackr account"
	ChoiceExisting  LoginChoice = "Use an existing trackr account"
	ChoiceOffline   LoginChoice = "Don't visualize my results"
)

// PromptOptions narrows the menu offered to the operator.
type PromptOptions struct {
	NoOffline      bool
	NoCreate       bool
	HaveCredential bool
}

// PromptResult is what the operator (or the anonymous issuer) produced.
// Choice is ChoiceOffline when the operator opted out; Key is empty then.
type PromptResult struct {
	Key       Secret
	Anonymous bool
	Choice    LoginChoice
}

// Prompter obtains a key when none is configured.
type Prompter interface {
	Prompt(ctx context.Context, settings Settings, api AuthAPI, opts PromptOptions) (PromptResult, error)
}

// Terminal handles operator input.
type Terminal interface {
	ReadSecret(ctx context.Context, prompt string) (string, error)
	ReadLine(ctx context.Context, prompt string) (string, error)
	IsInteractive() bool
}
