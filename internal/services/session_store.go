package services

import (
	"sync"

	"github.com/kamasanicharan/BoldScholars/internal/models"
)

// SessionState enumerates the session lifecycle.
type SessionState string

const (
	SessionAnonymous      SessionState = "anonymous"
	SessionAuthenticating SessionState = "authenticating"
	SessionAuthenticated  SessionState = "authenticated"
)

// SessionStore holds the current authenticated identity (or none) and its
// resolved profile. Only the auth service writes it. The mutex serializes
// transitions, which mirrors the serial delivery of provider events: at
// most one resolution is in flight at a time.
type SessionStore struct {
	mu      sync.RWMutex
	state   SessionState
	profile *models.UserProfile
}

func NewSessionStore() *SessionStore {
	return &SessionStore{state: SessionAnonymous}
}

// Current returns the state and, when authenticated, the resolved profile.
func (s *SessionStore) Current() (SessionState, *models.UserProfile) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.profile
}

// Role returns the effective role for the session: the authenticated
// profile's role, or guest.
func (s *SessionStore) Role() models.UserRole {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == SessionAuthenticated && s.profile != nil {
		return s.profile.Role
	}
	return models.RoleGuest
}

// BeginAuthentication transitions anonymous -> authenticating. A sign-in
// while already authenticating is rejected; a sign-in while authenticated
// replaces the session (the provider re-issues identity wholesale).
func (s *SessionStore) BeginAuthentication() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == SessionAuthenticating {
		return ErrAuthenticationInFlight
	}
	s.state = SessionAuthenticating
	s.profile = nil
	return nil
}

// CompleteAuthentication transitions authenticating -> authenticated.
func (s *SessionStore) CompleteAuthentication(profile *models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SessionAuthenticated
	s.profile = profile
}

// FailAuthentication returns the session to anonymous after a provider
// failure. The error itself is surfaced by the caller; prior state is not
// otherwise disturbed.
func (s *SessionStore) FailAuthentication() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SessionAnonymous
	s.profile = nil
}

// SignOut transitions any state back to anonymous.
func (s *SessionStore) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SessionAnonymous
	s.profile = nil
}
