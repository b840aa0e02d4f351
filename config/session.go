package config

import (
	"fmt"
	"strings"
	"time"
)

// SessionStoreKind selects the session persistence backend.
type SessionStoreKind string

const (
	// SessionStoreRedis persists sessions in Redis (production).
	SessionStoreRedis SessionStoreKind = "redis"
	// SessionStoreMemory keeps sessions in process memory (development and tests).
	SessionStoreMemory SessionStoreKind = "memory"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionStoreKind.
func (s *SessionStoreKind) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "redis", "memory":
		*s = SessionStoreKind(v)
		return nil
	default:
		return fmt.Errorf("invalid session store: %q (valid options: redis, memory)", v)
	}
}

// SessionConfig contains session persistence configuration.
type SessionConfig struct {
	// Store selects the session persistence backend.
	Store SessionStoreKind `env:"SESSION_STORE" envDefault:"redis"`

	// TTL is how long a persisted session survives without a new login.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.Store == "" {
		s.Store = SessionStoreRedis
	}
	if s.TTL < time.Minute {
		s.TTL = time.Minute
	}
}

// RedisConfig contains Redis connection configuration.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}
