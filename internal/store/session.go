package store

import (
	"sync"

	"github.com/Ramavadhoota/fitflow/pkg/models"
)

// TokenVault is the durable storage for the bearer token, the analogue of the
// browser's localStorage slot. Implemented by internal/vault; tests substitute
// an in-memory fake.
type TokenVault interface {
	SaveToken(token string) error
	LoadToken() (string, error)
	DeleteToken() error
}

// Session holds the authenticated user identity and bearer token. Exactly one
// instance exists per process; it is passed as a handle to whatever needs it
// rather than reached through a package global. Reads and writes happen from
// the UI goroutine and from command goroutines, hence the lock.
type Session struct {
	mu    sync.RWMutex
	user  *models.User
	token string
	vault TokenVault
}

// NewSession creates an unauthenticated session. vault may be nil when no
// durable storage is available (tests, ephemeral runs).
func NewSession(vault TokenVault) *Session {
	return &Session{vault: vault}
}

// SetUser stores the identity and marks the session authenticated.
func (s *Session) SetUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user
	s.user = &u
}

// SetToken stores the bearer token in memory only. Durable persistence is the
// login flow's concern, mirroring how logout (not login) owns removal.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Logout clears the identity and token and removes the persisted token.
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	vault := s.vault
	s.mu.Unlock()

	if vault != nil {
		// A failed delete leaves a stale token behind; it is dropped on the
		// next rehydration attempt when the profile fetch rejects it.
		_ = vault.DeleteToken()
	}
}

// User returns the current identity, if authenticated.
func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Token returns the current bearer token. Satisfies api.TokenSource.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether a user identity is set. True iff a non-nil
// user is stored; holding only a token does not count.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// PersistToken writes the token to durable storage under the fixed key.
func (s *Session) PersistToken(token string) error {
	s.mu.RLock()
	vault := s.vault
	s.mu.RUnlock()
	if vault == nil {
		return nil
	}
	return vault.SaveToken(token)
}

// StoredToken loads the persisted token, if any. Used at startup to rehydrate
// the session before the profile fetch confirms the token is still good.
func (s *Session) StoredToken() (string, error) {
	s.mu.RLock()
	vault := s.vault
	s.mu.RUnlock()
	if vault == nil {
		return "", nil
	}
	return vault.LoadToken()
}
