package session

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"sync"
	"time"
)

// CookieName is the name of the session cookie.
const CookieName = "hauskasse_session"

// TTL is how long a session stays valid after login.
const TTL = 30 * 24 * time.Hour

// Store is an in-memory session store.
//
// Sessions do not survive a restart, users simply log in again. The
// zero value is not usable, use New.
type Store struct {
	mu       sync.Mutex
	password string
	sessions map[string]time.Time
}

// New returns a session store gating access with the given password.
// An empty password disables the gate.
func New(password string) *Store {
	return &Store{
		password: password,
		sessions: make(map[string]time.Time),
	}
}

// Enabled reports whether a password is configured.
func (s *Store) Enabled() bool {
	return s.password != ""
}

// Login checks the password and, if it matches, returns a new session
// token. The comparison is constant time.
func (s *Store) Login(password string) (string, bool) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return "", false
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// rand.Read never fails on supported platforms
		return "", false
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = time.Now().Add(TTL)

	return token, true
}

// Valid reports whether the token belongs to an unexpired session.
// Expired sessions are removed on access.
func (s *Store) Valid(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expires, ok := s.sessions[token]
	if !ok {
		return false
	}

	if time.Now().After(expires) {
		delete(s.sessions, token)
		return false
	}

	return true
}

// Logout removes the session for the token.
func (s *Store) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
