package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackr/internal/domain"
	"trackr/internal/services/login"
	"trackr/internal/services/session"
	"trackr/internal/testutil"
)

type fakeLoginer struct {
	calls   []login.Request
	states  []domain.SessionState
	outcome login.Outcome
	state   domain.SessionState
	err     error
	hook    func(ctx context.Context)
}

func (f *fakeLoginer) Login(
	ctx context.Context,
	state domain.SessionState,
	req login.Request,
) (login.Outcome, domain.SessionState, error) {
	f.calls = append(f.calls, req)
	f.states = append(f.states, state)
	if f.hook != nil {
		f.hook(ctx)
	}
	return f.outcome, f.state, f.err
}

func TestLoginCommand_Execute_PassesRequest(t *testing.T) {
	loginer := &fakeLoginer{
		outcome: login.Outcome{Resolved: true, Credential: domain.NewSecret(testutil.APIKey("a"))},
		state:   domain.SessionState{Identity: "alice"},
	}
	cmd := NewLoginCommand(loginer, session.NewState(), testutil.Logger())

	result, err := cmd.Execute(context.Background(), LoginRequest{
		Key:       "local-key",
		Anonymous: "never",
		Host:      "https://api.example.com",
		Relogin:   true,
		Force:     true,
		Verify:    true,
	})

	require.NoError(t, err)
	assert.True(t, result.Resolved)
	assert.Equal(t, "alice", result.Identity)
	require.Len(t, loginer.calls, 1)
	assert.Equal(t, login.Request{
		Anonymous: "never",
		Key:       "local-key",
		Host:      "https://api.example.com",
		Relogin:   true,
		Force:     true,
		Verify:    true,
	}, loginer.calls[0])
}

func TestLoginCommand_Execute_CarriesStateToNextLogin(t *testing.T) {
	key := domain.NewSecret(testutil.APIKey("c"))
	loginer := &fakeLoginer{
		outcome: login.Outcome{Resolved: true, Credential: key},
		state:   domain.SessionState{Key: key, Identity: "alice"},
	}
	state := session.NewState()
	cmd := NewLoginCommand(loginer, state, testutil.Logger())

	_, err := cmd.Execute(context.Background(), LoginRequest{})
	require.NoError(t, err)
	_, err = cmd.Execute(context.Background(), LoginRequest{})
	require.NoError(t, err)

	require.Len(t, loginer.states, 2)
	assert.Equal(t, domain.SessionState{}, loginer.states[0])
	assert.Equal(t, domain.SessionState{Key: key, Identity: "alice"}, loginer.states[1])
	assert.Equal(t, "alice", state.Load().Identity)
}

func TestLoginCommand_Execute_Unresolved(t *testing.T) {
	cmd := NewLoginCommand(&fakeLoginer{}, session.NewState(), testutil.Logger())

	result, err := cmd.Execute(context.Background(), LoginRequest{})

	require.NoError(t, err)
	assert.False(t, result.Resolved)
}

func TestLoginCommand_Execute_Error(t *testing.T) {
	loginErr := errors.New("boom")
	cmd := NewLoginCommand(&fakeLoginer{err: loginErr}, session.NewState(), testutil.Logger())

	_, err := cmd.Execute(context.Background(), LoginRequest{})

	require.Error(t, err)
	require.ErrorIs(t, err, loginErr)
	assert.Contains(t, err.Error(), "login failed")
}
