package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trackr/internal/domain"
	"trackr/internal/services/session"
	"trackr/internal/testutil"
)

func TestState_LoadStore(t *testing.T) {
	state := session.NewState()
	assert.Equal(t, domain.SessionState{}, state.Load())

	live := domain.SessionState{Live: true, Key: domain.NewSecret(testutil.APIKey("s")), Identity: "alice"}
	state.Store(live)
	assert.Equal(t, live, state.Load())

	loaded := state.Load()
	loaded.Live = false
	assert.True(t, state.Load().Live, "Load returns a copy")
}
