package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	domainauth "github.com/bankingapplication/bank-ui/internal/domain/auth"
	"github.com/bankingapplication/bank-ui/internal/domain/model"
	"github.com/bankingapplication/bank-ui/internal/domain/token"
	"github.com/bankingapplication/bank-ui/internal/ports"
)

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	Auth     ports.AuthAPI
	Sessions ports.SessionStore
	Log      *slog.Logger
}

// SessionService orchestrates sign-in flows by coordinating the auth service
// gateway and session persistence. It owns the rule that a session becomes
// usable the moment the auth service issues tokens; profile enrichment is
// best-effort and never blocks or fails a sign-in.
type SessionService struct {
	auth     ports.AuthAPI
	sessions ports.SessionStore
	log      *slog.Logger
}

// NewSessionService constructs a new SessionService.
func NewSessionService(opts SessionServiceOptions) *SessionService {
	return &SessionService{
		auth:     opts.Auth,
		sessions: opts.Sessions,
		log:      opts.Log,
	}
}

func (s *SessionService) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return slog.Default()
}

// Login authenticates against the auth service and persists a new session.
func (s *SessionService) Login(ctx context.Context, req model.LoginRequest) (domainauth.Session, error) {
	res, err := s.auth.Login(ctx, req)
	if err != nil {
		return domainauth.Session{}, fmt.Errorf("login: %w", err)
	}
	return s.establish(ctx, res)
}

// Register creates a new user and signs them in with the issued tokens.
func (s *SessionService) Register(ctx context.Context, req model.RegisterRequest) (domainauth.Session, error) {
	res, err := s.auth.Register(ctx, req)
	if err != nil {
		return domainauth.Session{}, fmt.Errorf("register: %w", err)
	}
	return s.establish(ctx, res)
}

// establish persists a session from an auth response, then enriches the
// identity from the profile endpoint. Enrichment failures are swallowed: the
// minimal identity from the auth response is already signed in and saved.
func (s *SessionService) establish(ctx context.Context, res model.AuthResponse) (domainauth.Session, error) {
	if res.AccessToken == "" {
		return domainauth.Session{}, errors.New("auth service returned no access token")
	}

	sess := domainauth.Session{
		ID: generateSessionID(),
		Identity: domainauth.Identity{
			Username: res.Username,
			Email:    res.Email,
			Roles:    rolesFromToken(res.AccessToken),
		},
		Tokens: domainauth.TokenPair{
			AccessToken:  res.AccessToken,
			RefreshToken: res.RefreshToken,
		},
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return domainauth.Session{}, fmt.Errorf("save session: %w", err)
	}

	if profile, err := s.auth.Me(ctx, res.AccessToken); err != nil {
		s.logger().Warn("profile enrichment failed", "username", res.Username, "error", err)
	} else {
		sess.Identity.FirstName = profile.FirstName
		sess.Identity.LastName = profile.LastName
		if profile.Email != "" {
			sess.Identity.Email = profile.Email
		}
		if saveErr := s.sessions.Save(ctx, sess); saveErr != nil {
			s.logger().Warn("save enriched session failed", "username", res.Username, "error", saveErr)
		}
	}

	return sess, nil
}

// Resolve returns the live session for a cookie value. Any store failure is
// treated as an absent session; a browser with a broken session record is
// simply signed out.
func (s *SessionService) Resolve(ctx context.Context, sessionID string) (domainauth.Session, bool) {
	if sessionID == "" {
		return domainauth.Session{}, false
	}
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domainauth.Session{}, false
	}
	return sess, true
}

// UpdateIdentity replaces the stored identity for a live session, e.g. after
// a profile update. The token pair is preserved.
func (s *SessionService) UpdateIdentity(ctx context.Context, sessionID string, identity domainauth.Identity) error {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	sess.Identity = identity
	if err := s.sessions.Save(ctx, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Logout removes a session.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Snapshot derives the observable session state for handlers and templates.
// The admin flag is recomputed from the access token on every call and is
// never persisted.
func Snapshot(sess *domainauth.Session) domainauth.Snapshot {
	if sess == nil {
		return domainauth.Snapshot{}
	}
	identity := sess.Identity
	return domainauth.Snapshot{
		Identity:        &identity,
		IsAuthenticated: true,
		IsAdmin:         token.IsAdminToken(sess.Tokens.AccessToken),
	}
}

// rolesFromToken extracts roles from the access token for display purposes.
// An undecodable token yields an empty role list, not an error.
func rolesFromToken(accessToken string) []string {
	claims, err := token.Decode(accessToken)
	if err != nil {
		return []string{}
	}
	return claims.Roles
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	// Use UUID for session ID - it's URL-safe and has good entropy
	id := uuid.New()
	return id.String()
}
