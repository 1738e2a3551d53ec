package session

import (
	"sync"

	"trackr/internal/domain"
)

// State holds the login state of the process between login calls.
type State struct {
	mu      sync.Mutex
	current domain.SessionState
}

// NewState returns an empty state: no key, no live session.
func NewState() *State {
	return &State{}
}

// Load returns a copy of the current state.
func (s *State) Load() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Store replaces the current state.
func (s *State) Store(state domain.SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = state
}
