// Package settings merges call-time overrides, process-wide settings and
// the environment into the effective settings for one login attempt.
package settings

import (
	"strconv"
	"strings"
	"sync"

	"trackr/internal/domain"
)

// Overrides are explicit call-time values. Empty strings and nil pointers
// mean "not given".
type Overrides struct {
	BaseURL     string
	Anonymous   string
	Offline     *bool
	Relogin     *bool
	Force       *bool
	Interactive *bool
}

// Defaults returns the built-in settings.
func Defaults() domain.Settings {
	return domain.Settings{
		BaseURL:   domain.DefaultBaseURL,
		Anonymous: domain.AnonymousUnset,
	}
}

// Resolve merges, highest precedence first: overrides, prior process-wide
// settings, then base (environment and settings file) over the defaults.
// It never fails; malformed values are ignored.
func Resolve(overrides Overrides, prior *domain.Settings, base Source) domain.Settings {
	s := Defaults()
	if base != nil {
		applySource(&s, base)
	}
	if prior != nil {
		applyPrior(&s, *prior)
	}
	applyOverrides(&s, overrides)
	s.BaseURL = domain.NormalizeBaseURL(s.BaseURL)
	return s
}

func applySource(s *domain.Settings, src Source) {
	if v, ok := src.Lookup(KeyBaseURL); ok {
		s.BaseURL = v
	}
	if v, ok := src.Lookup(KeyMode); ok {
		s.Offline = isOfflineMode(v)
	}
	if v, ok := src.Lookup(KeyRelogin); ok {
		s.Relogin = parseBool(v, s.Relogin)
	}
	if v, ok := src.Lookup(KeyForce); ok {
		s.Force = parseBool(v, s.Force)
	}
	if v, ok := src.Lookup(KeyAnonymous); ok {
		s.Anonymous = domain.ParseAnonymousPolicy(v)
	}
	if v, ok := src.Lookup(KeyAPIKey); ok {
		s.EnvAPIKey = domain.NewSecret(v)
	}
	if v, ok := src.Lookup(KeyNotebook); ok {
		// Any value other than an explicit false means a kernel is present.
		s.Notebook = parseBool(v, true)
	}
}

// applyPrior carries the process-wide fields. Relogin and Force are per
// attempt and never inherited.
func applyPrior(s *domain.Settings, prior domain.Settings) {
	if prior.BaseURL != "" {
		s.BaseURL = prior.BaseURL
	}
	if prior.Anonymous != domain.AnonymousUnset {
		s.Anonymous = prior.Anonymous
	}
	if prior.Offline {
		s.Offline = true
	}
	if prior.Notebook {
		s.Notebook = true
	}
	if !prior.APIKey.IsZero() {
		s.APIKey = prior.APIKey
		s.APIKeyHost = prior.APIKeyHost
	}
}

func applyOverrides(s *domain.Settings, o Overrides) {
	if o.BaseURL != "" {
		s.BaseURL = o.BaseURL
	}
	if o.Anonymous != "" {
		s.Anonymous = domain.ParseAnonymousPolicy(o.Anonymous)
	}
	if o.Offline != nil {
		s.Offline = *o.Offline
	}
	if o.Relogin != nil {
		s.Relogin = *o.Relogin
	}
	if o.Force != nil {
		s.Force = *o.Force
	}
	if o.Interactive != nil {
		s.Interactive = *o.Interactive
	}
}

func isOfflineMode(mode string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "offline", "dryrun", "disabled":
		return true
	default:
		return false
	}
}

func parseBool(v string, fallback bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return b
}

// Global is the process-wide settings holder. It starts empty and is
// initialized by the first Apply; it is never torn down.
type Global struct {
	mu      sync.Mutex
	current *domain.Settings
}

// NewGlobal creates an uninitialized holder.
func NewGlobal() *Global {
	return &Global{}
}

// Apply resolves against the current process-wide settings, stores the
// result for later calls and returns it.
func (g *Global) Apply(overrides Overrides, base Source) domain.Settings {
	g.mu.Lock()
	defer g.mu.Unlock()

	effective := Resolve(overrides, g.current, base)
	stored := effective
	stored.Relogin = false
	stored.Force = false
	g.current = &stored
	return effective
}

// Update mutates the process-wide settings, initializing them from the
// defaults if no Apply happened yet.
func (g *Global) Update(fn func(*domain.Settings)) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.current == nil {
		s := Defaults()
		g.current = &s
	}
	fn(g.current)
}

// Snapshot returns a copy of the process-wide settings.
func (g *Global) Snapshot() (domain.Settings, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.current == nil {
		return domain.Settings{}, false
	}
	return *g.current, true
}
