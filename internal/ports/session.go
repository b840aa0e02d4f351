package ports

// Package ports defines interfaces (hexagonal ports) for session and
// backend-gateway behavior. Implementations live in internal/adapters and
// internal/gateway; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/bankingapplication/bank-ui/internal/domain/auth"
)

// SessionStore persists and retrieves browser sessions.
//
// Get must be fail-closed: a record that is missing, expired, or partially
// corrupt is reported as absent and any leftover fragments are removed, so a
// broken session can never resurrect as an authenticated one.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
