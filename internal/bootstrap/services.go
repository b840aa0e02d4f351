package bootstrap

import (
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/bankingapplication/bank-ui/config"
	"github.com/bankingapplication/bank-ui/internal/adapters/memory"
	"github.com/bankingapplication/bank-ui/internal/adapters/redis"
	"github.com/bankingapplication/bank-ui/internal/gateway"
	"github.com/bankingapplication/bank-ui/internal/gateway/accountapi"
	"github.com/bankingapplication/bank-ui/internal/gateway/authapi"
	"github.com/bankingapplication/bank-ui/internal/ports"
	"github.com/bankingapplication/bank-ui/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Sessions *service.SessionService
	Admin    *service.AdminService
	Auth     ports.AuthAPI
	Accounts ports.AccountAPI
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient goredis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires the gateway clients, session persistence, and
// domain services from loaded configuration.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, fmt.Errorf("service deps and config are required")
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	authClient := authapi.New(gateway.NewClient(cfg.Backends.AuthServiceURL, gateway.WithLogger(logger)))
	accountClient := accountapi.New(gateway.NewClient(cfg.Backends.AccountServiceURL, gateway.WithLogger(logger)))

	store, err := newSessionStore(cfg, deps.RedisClient)
	if err != nil {
		return ServiceContainer{}, err
	}

	return ServiceContainer{
		Sessions: service.NewSessionService(service.SessionServiceOptions{
			Auth:     authClient,
			Sessions: store,
			Log:      logger,
		}),
		Admin: service.NewAdminService(service.AdminServiceOptions{
			Auth:     authClient,
			Accounts: accountClient,
			Log:      logger,
		}),
		Auth:     authClient,
		Accounts: accountClient,
	}, nil
}

// newSessionStore selects the session persistence backend per config.
//
//nolint:ireturn // callers program against the SessionStore port.
func newSessionStore(cfg *config.AppConfig, client goredis.UniversalClient) (ports.SessionStore, error) {
	switch cfg.Session.Store {
	case config.SessionStoreMemory:
		return memory.NewSessionStore(cfg.Session.TTL), nil
	case config.SessionStoreRedis:
		if client == nil {
			return nil, fmt.Errorf("session store %q requires a redis connection", cfg.Session.Store)
		}
		return redis.NewSessionStore(client, cfg.Session.TTL), nil
	default:
		return nil, fmt.Errorf("unsupported session store: %q", cfg.Session.Store)
	}
}
