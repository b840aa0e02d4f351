package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankingapplication/bank-ui/config"
	"github.com/bankingapplication/bank-ui/internal/adapters/memory"
)

func memoryConfig() *config.AppConfig {
	return &config.AppConfig{
		Backends: config.BackendConfig{
			AuthServiceURL:    "http://localhost:8081/api",
			AccountServiceURL: "http://localhost:8082/api",
		},
		Session: config.SessionConfig{
			Store: config.SessionStoreMemory,
			TTL:   time.Hour,
		},
	}
}

func TestNewServices(t *testing.T) {
	t.Run("wires services with memory session store", func(t *testing.T) {
		services, err := NewServices(&ServiceDeps{Config: memoryConfig()})
		require.NoError(t, err)

		assert.NotNil(t, services.Sessions)
		assert.NotNil(t, services.Admin)
		assert.NotNil(t, services.Auth)
		assert.NotNil(t, services.Accounts)
	})

	t.Run("nil deps rejected", func(t *testing.T) {
		_, err := NewServices(nil)
		assert.Error(t, err)
	})

	t.Run("redis store without client fails", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.Session.Store = config.SessionStoreRedis

		_, err := NewServices(&ServiceDeps{Config: cfg})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis")
	})
}

func TestNewSessionStore(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		store, err := newSessionStore(memoryConfig(), nil)
		require.NoError(t, err)
		assert.IsType(t, &memory.SessionStore{}, store)
	})

	t.Run("unknown kind", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.Session.Store = "etcd"

		_, err := newSessionStore(cfg, nil)
		assert.Error(t, err)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.HTTP.Addr)
		assert.Equal(t, config.SessionStoreRedis, cfg.Session.Store)
		assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
		assert.Equal(t, "http://localhost:8081/api", cfg.Backends.AuthServiceURL)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("HTTP_ADDR", ":9090")
		t.Setenv("SESSION_STORE", "memory")
		t.Setenv("AUTH_SERVICE_URL", "http://auth.internal/api/")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.HTTP.Addr)
		assert.Equal(t, config.SessionStoreMemory, cfg.Session.Store)
		// Sanitize strips the trailing slash
		assert.Equal(t, "http://auth.internal/api", cfg.Backends.AuthServiceURL)
	})

	t.Run("invalid session store rejected", func(t *testing.T) {
		t.Setenv("SESSION_STORE", "postgres")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("sub-minute TTL clamped", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "5s")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, time.Minute, cfg.Session.TTL)
	})

	t.Run("NODE_ENV enables dev mode", func(t *testing.T) {
		t.Setenv("NODE_ENV", "development")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.True(t, cfg.IsDev)
	})
}
