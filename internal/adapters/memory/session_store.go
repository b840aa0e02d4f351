package memory

// Package memory provides an in-process session store used in development
// mode and in tests. It mirrors the Redis store's fail-closed semantics but
// keeps everything in a map guarded by a mutex.

import (
	"context"
	"errors"
	"sync"
	"time"

	domainauth "github.com/bankingapplication/bank-ui/internal/domain/auth"
)

// ErrNotFound is returned when a session is not found.
type notFoundError struct{}

func (notFoundError) Error() string { return "session not found" }

var ErrNotFound error = notFoundError{}

type entry struct {
	sess      domainauth.Session
	expiresAt time.Time
}

// SessionStore keeps sessions in process memory. Expired entries are
// removed lazily on Get.
type SessionStore struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time

	sessions map[string]entry
}

// NewSessionStore creates an in-memory session store with the given TTL.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]entry),
	}
}

// WithClock overrides the store's clock. Intended for tests.
func (s *SessionStore) WithClock(now func() time.Time) *SessionStore {
	s.now = now
	return s
}

func (s *SessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if sess.Tokens.AccessToken == "" {
		return errors.New("session has no access token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = entry{
		sess:      sess,
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	if s.now().After(e.expiresAt) {
		delete(s.sessions, id)
		return domainauth.Session{}, ErrNotFound
	}
	return e.sess, nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
