package redis

// Package redis provides Redis-based adapters for the bank UI.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/bankingapplication/bank-ui/internal/domain/auth"
)

// SessionStore is a Redis-based session store for production use.
// Each session is kept as three keys sharing one TTL:
//
//	<prefix><id>:identity       JSON-encoded identity
//	<prefix><id>:access_token   raw access token
//	<prefix><id>:refresh_token  raw refresh token (may be empty)
//
// Restoration is fail-closed: if the identity or access token key is gone
// or the identity JSON does not parse, the remaining keys are deleted and
// the session is reported as not found.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewSessionStore creates a new Redis-based session store.
func NewSessionStore(client redis.UniversalClient, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "bankui:session:",
		ttl:    ttl,
	}
}

// NewSessionStoreWithPrefix creates a Redis session store with a custom key prefix.
func NewSessionStoreWithPrefix(client redis.UniversalClient, ttl time.Duration, prefix string) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *SessionStore) keys(id string) (identity, access, refresh string) {
	base := s.prefix + id
	return base + ":identity", base + ":access_token", base + ":refresh_token"
}

func (s *SessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if sess.Tokens.AccessToken == "" {
		return errors.New("session has no access token")
	}

	data, err := json.Marshal(sess.Identity)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}

	identityKey, accessKey, refreshKey := s.keys(sess.ID)
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, identityKey, data, s.ttl)
	pipe.Set(ctx, accessKey, sess.Tokens.AccessToken, s.ttl)
	pipe.Set(ctx, refreshKey, sess.Tokens.RefreshToken, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}

	identityKey, accessKey, refreshKey := s.keys(id)
	vals, err := s.client.MGet(ctx, identityKey, accessKey, refreshKey).Result()
	if err != nil {
		return domainauth.Session{}, fmt.Errorf("redis get: %w", err)
	}

	identityRaw, identityOK := vals[0].(string)
	accessToken, accessOK := vals[1].(string)
	if !identityOK || !accessOK || accessToken == "" {
		// Partial record; clear the leftovers so it cannot resurrect.
		if deleteErr := s.Delete(ctx, id); deleteErr != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup partial session: %w", deleteErr)
		}
		return domainauth.Session{}, ErrNotFound
	}

	var identity domainauth.Identity
	if unmarshalErr := json.Unmarshal([]byte(identityRaw), &identity); unmarshalErr != nil {
		if deleteErr := s.Delete(ctx, id); deleteErr != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup corrupt session: %w", deleteErr)
		}
		return domainauth.Session{}, ErrNotFound
	}

	refreshToken, _ := vals[2].(string)
	return domainauth.Session{
		ID:       id,
		Identity: identity,
		Tokens: domainauth.TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil // Nothing to delete
	}

	identityKey, accessKey, refreshKey := s.keys(id)
	return s.client.Del(ctx, identityKey, accessKey, refreshKey).Err()
}

// ErrNotFound is returned when a session is not found.
type notFoundError struct{}

func (notFoundError) Error() string { return "session not found" }

var ErrNotFound error = notFoundError{}
