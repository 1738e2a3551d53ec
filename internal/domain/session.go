package domain

import "context"

// SessionChannel is a long-lived background path that already talks to the
// remote service. Only its owner mutates it; callers may only notify or query.
type SessionChannel interface {
	NotifyCredential(ctx context.Context, key Secret) error
	ActiveIdentity(ctx context.Context) (string, bool)
}

// SessionState tracks login state for one process. It is passed into and
// returned from each login call instead of living in a package global.
type SessionState struct {
	// Live is set once a run session has started with the resolved key.
	Live     bool
	Key      Secret
	Identity string
}
