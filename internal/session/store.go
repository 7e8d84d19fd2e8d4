package session

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/candidatrack/candidatrack-go/internal/model"
	"github.com/candidatrack/candidatrack-go/internal/token"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// Session is a read-only snapshot of the authenticated-session state.
type Session struct {
	User  *model.UserProfile
	Token string
}

// Authenticated reports whether the snapshot holds a credential.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Store is the single authoritative holder of "who is logged in, with
// what credential" for the process. Every mutation writes through to
// the backing Storage so a restart does not lose the session; storage
// failures degrade to a memory-only session rather than surfacing.
type Store struct {
	mu      sync.Mutex
	storage Storage
	user    *model.UserProfile
	tok     string
}

// New creates a Store and restores any persisted session from storage.
// Restoration is fail safe: unreadable storage, an unparseable user
// profile, or an already-expired JWT all yield an unauthenticated store,
// never an error.
func New(storage Storage) *Store {
	s := &Store{storage: storage}
	s.restore()
	return s
}

func (s *Store) restore() {
	tok, ok, err := s.storage.Get(keyToken)
	if err != nil || !ok || tok == "" {
		return
	}

	rawUser, ok, err := s.storage.Get(keyUser)
	if err != nil || !ok {
		return
	}

	var user model.UserProfile
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		slog.Warn("persisted user profile unreadable, starting unauthenticated", "error", err)
		return
	}

	if token.Expired(tok, time.Now()) {
		slog.Info("persisted token expired, starting unauthenticated")
		return
	}

	s.user = &user
	s.tok = tok
}

// Login persists the credential and profile, then swaps the in-memory
// state. Callers never observe a half-updated session.
func (s *Store) Login(user model.UserProfile, tok string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(keyToken, tok); err != nil {
		slog.Warn("could not persist token, session is memory-only", "error", err)
	} else if raw, err := json.Marshal(user); err == nil {
		if err := s.storage.Set(keyUser, string(raw)); err != nil {
			slog.Warn("could not persist user profile", "error", err)
		}
	}

	u := user
	s.user = &u
	s.tok = tok
}

// Logout removes the persisted keys and clears the in-memory state.
// Calling it while already logged out is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// Invalidate is Logout that reports whether this call performed the
// authenticated-to-unauthenticated transition. Under concurrent
// invalidations exactly one caller observes true, which lets the HTTP
// layer fire its session-invalidated signal exactly once.
func (s *Store) Invalidate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tok == "" {
		return false
	}
	s.clearLocked()
	return true
}

func (s *Store) clearLocked() {
	if err := s.storage.Delete(keyToken); err != nil {
		slog.Warn("could not remove persisted token", "error", err)
	}
	if err := s.storage.Delete(keyUser); err != nil {
		slog.Warn("could not remove persisted user profile", "error", err)
	}
	s.user = nil
	s.tok = ""
}

// Snapshot returns a copy of the current session state.
func (s *Store) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Session{Token: s.tok}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

// Token returns the current bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tok
}

// IsAuthenticated reports whether a credential is present.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}
