// Package session holds the in-memory application state shared by the
// TUI views: the current plan snapshot and the admin login.
package session

import (
	"errors"
	"sync"

	"github.com/tbickford/agplan/internal/ai"
	"github.com/tbickford/agplan/internal/config"
	"github.com/tbickford/agplan/internal/plan"
)

// ErrInvalidLogin is returned when the password or API key is rejected.
var ErrInvalidLogin = errors.New("invalid password or API key")

// ErrNotAdmin is returned when an admin-only action is attempted
// without a login.
var ErrNotAdmin = errors.New("not logged in. Log in via the Admin tab")

// newClient builds the Gemini client for a login. Replaced in tests.
var newClient = func(apiKey, model string) (ai.Generator, error) {
	return ai.NewClient(apiKey, ai.WithModel(model))
}

// Session is the mutable application state. The plan snapshot is
// replaced wholesale on every mutation; callers never modify it in
// place.
type Session struct {
	mu   sync.Mutex
	cfg  *config.Config
	plan *plan.Plan
	gen  ai.Generator
}

// New creates a session around a plan snapshot.
func New(cfg *config.Config, p *plan.Plan) *Session {
	return &Session{cfg: cfg, plan: p}
}

// Plan returns the current plan snapshot.
func (s *Session) Plan() *plan.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan
}

// SetPlan replaces the plan snapshot.
func (s *Session) SetPlan(p *plan.Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = p
}

// Config returns the workspace configuration the session was built with.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// IsAdmin reports whether an admin login is active.
func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen != nil
}

// Login verifies the admin password and initializes the AI client.
// An empty apiKey falls back to the configured key.
func (s *Session) Login(password, apiKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if password != s.cfg.AdminPassword {
		return ErrInvalidLogin
	}
	if apiKey == "" {
		apiKey = s.cfg.APIKey
	}
	if apiKey == "" {
		return ErrInvalidLogin
	}

	gen, err := newClient(apiKey, s.cfg.Model)
	if err != nil {
		return err
	}
	s.gen = gen
	return nil
}

// Logout drops the admin login and the AI client.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen = nil
}

// Generator returns the AI client, or ErrNotAdmin when not logged in.
func (s *Session) Generator() (ai.Generator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == nil {
		return nil, ErrNotAdmin
	}
	return s.gen, nil
}
