package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bankingapplication/bank-ui/internal/adapters/memory"
	domainauth "github.com/bankingapplication/bank-ui/internal/domain/auth"
	"github.com/bankingapplication/bank-ui/internal/domain/model"
	"github.com/bankingapplication/bank-ui/internal/mocks"
)

func signToken(t *testing.T, roles any) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "john"}
	if roles != nil {
		claims["roles"] = roles
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func authResponse(t *testing.T, roles any) model.AuthResponse {
	t.Helper()
	return model.AuthResponse{
		AccessToken:  signToken(t, roles),
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    86400,
		Username:     "john",
		Email:        "john@example.com",
		Success:      true,
	}
}

func newService(t *testing.T, auth *mocks.MockAuthAPI) (*SessionService, *memory.SessionStore) {
	t.Helper()
	store := memory.NewSessionStore(time.Hour)
	svc := NewSessionService(SessionServiceOptions{Auth: auth, Sessions: store})
	return svc, store
}

func TestSessionServiceLogin(t *testing.T) {
	t.Run("success with enrichment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth := mocks.NewMockAuthAPI(ctrl)
		res := authResponse(t, []string{"USER"})
		auth.EXPECT().Login(gomock.Any(), model.LoginRequest{UsernameOrEmail: "john", Password: "pw"}).Return(res, nil)
		auth.EXPECT().Me(gomock.Any(), res.AccessToken).Return(model.UserResponse{
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john@example.com",
		}, nil)

		svc, store := newService(t, auth)

		sess, err := svc.Login(context.Background(), model.LoginRequest{UsernameOrEmail: "john", Password: "pw"})
		require.NoError(t, err)
		assert.NotEmpty(t, sess.ID)
		assert.Equal(t, "john", sess.Identity.Username)
		assert.Equal(t, "John", sess.Identity.FirstName)
		assert.Equal(t, []string{"USER"}, sess.Identity.Roles)

		// The enriched identity must be what was persisted.
		stored, err := store.Get(context.Background(), sess.ID)
		require.NoError(t, err)
		assert.Equal(t, "Doe", stored.Identity.LastName)
		assert.Equal(t, res.AccessToken, stored.Tokens.AccessToken)
	})

	t.Run("enrichment failure still signs in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth := mocks.NewMockAuthAPI(ctrl)
		res := authResponse(t, []string{"USER"})
		auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(res, nil)
		auth.EXPECT().Me(gomock.Any(), gomock.Any()).Return(model.UserResponse{}, errors.New("profile unavailable"))

		svc, store := newService(t, auth)

		sess, err := svc.Login(context.Background(), model.LoginRequest{UsernameOrEmail: "john", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, "john", sess.Identity.Username)
		assert.Empty(t, sess.Identity.FirstName)

		stored, err := store.Get(context.Background(), sess.ID)
		require.NoError(t, err)
		assert.Equal(t, "john@example.com", stored.Identity.Email)
	})

	t.Run("rejected credentials create no session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth := mocks.NewMockAuthAPI(ctrl)
		auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(model.AuthResponse{}, errors.New("invalid credentials"))

		svc, _ := newService(t, auth)

		_, err := svc.Login(context.Background(), model.LoginRequest{UsernameOrEmail: "john", Password: "bad"})
		assert.Error(t, err)
	})

	t.Run("empty access token is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth := mocks.NewMockAuthAPI(ctrl)
		auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(model.AuthResponse{Username: "john"}, nil)

		svc, _ := newService(t, auth)

		_, err := svc.Login(context.Background(), model.LoginRequest{UsernameOrEmail: "john", Password: "pw"})
		assert.Error(t, err)
	})
}

func TestSessionServiceRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mocks.NewMockAuthAPI(ctrl)
	res := authResponse(t, "USER")
	auth.EXPECT().Register(gomock.Any(), model.RegisterRequest{
		Username: "john", Email: "john@example.com", Password: "pw",
	}).Return(res, nil)
	auth.EXPECT().Me(gomock.Any(), gomock.Any()).Return(model.UserResponse{FirstName: "John"}, nil)

	svc, _ := newService(t, auth)

	sess, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "john", Email: "john@example.com", Password: "pw",
	})
	require.NoError(t, err)
	// Scalar roles claim normalizes to a one-element list.
	assert.Equal(t, []string{"USER"}, sess.Identity.Roles)
}

func TestSessionServiceResolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mocks.NewMockAuthAPI(ctrl)
	res := authResponse(t, []string{"USER"})
	auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(res, nil)
	auth.EXPECT().Me(gomock.Any(), gomock.Any()).Return(model.UserResponse{}, errors.New("down"))

	svc, _ := newService(t, auth)

	sess, err := svc.Login(context.Background(), model.LoginRequest{UsernameOrEmail: "john", Password: "pw"})
	require.NoError(t, err)

	resolved, ok := svc.Resolve(context.Background(), sess.ID)
	require.True(t, ok)
	assert.Equal(t, sess.ID, resolved.ID)

	_, ok = svc.Resolve(context.Background(), "unknown")
	assert.False(t, ok)

	_, ok = svc.Resolve(context.Background(), "")
	assert.False(t, ok)
}

func TestSessionServiceLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mocks.NewMockAuthAPI(ctrl)
	res := authResponse(t, []string{"USER"})
	auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(res, nil)
	auth.EXPECT().Me(gomock.Any(), gomock.Any()).Return(model.UserResponse{}, errors.New("down"))

	svc, _ := newService(t, auth)

	sess, err := svc.Login(context.Background(), model.LoginRequest{UsernameOrEmail: "john", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), sess.ID))

	_, ok := svc.Resolve(context.Background(), sess.ID)
	assert.False(t, ok)

	// Logging out an absent session is a no-op.
	assert.NoError(t, svc.Logout(context.Background(), ""))
}

func TestSessionServiceUpdateIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mocks.NewMockAuthAPI(ctrl)
	res := authResponse(t, []string{"USER"})
	auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(res, nil)
	auth.EXPECT().Me(gomock.Any(), gomock.Any()).Return(model.UserResponse{}, errors.New("down"))

	svc, _ := newService(t, auth)

	sess, err := svc.Login(context.Background(), model.LoginRequest{UsernameOrEmail: "john", Password: "pw"})
	require.NoError(t, err)

	updated := sess.Identity
	updated.FirstName = "Johnny"
	require.NoError(t, svc.UpdateIdentity(context.Background(), sess.ID, updated))

	resolved, ok := svc.Resolve(context.Background(), sess.ID)
	require.True(t, ok)
	assert.Equal(t, "Johnny", resolved.Identity.FirstName)
	assert.Equal(t, res.AccessToken, resolved.Tokens.AccessToken)
}

func TestSnapshot(t *testing.T) {
	t.Run("nil session is anonymous", func(t *testing.T) {
		snap := Snapshot(nil)
		assert.False(t, snap.IsAuthenticated)
		assert.False(t, snap.IsAdmin)
		assert.Nil(t, snap.Identity)
	})

	t.Run("admin flag follows the token", func(t *testing.T) {
		sess := &domainauth.Session{
			ID:       "s1",
			Identity: domainauth.Identity{Username: "root"},
			Tokens:   domainauth.TokenPair{AccessToken: signToken(t, []string{"ROLE_ADMIN"})},
		}
		snap := Snapshot(sess)
		assert.True(t, snap.IsAuthenticated)
		assert.True(t, snap.IsAdmin)
		require.NotNil(t, snap.Identity)
		assert.Equal(t, "root", snap.Identity.Username)
	})

	t.Run("plain user is not admin", func(t *testing.T) {
		sess := &domainauth.Session{
			ID:       "s2",
			Identity: domainauth.Identity{Username: "john"},
			Tokens:   domainauth.TokenPair{AccessToken: signToken(t, []string{"USER"})},
		}
		snap := Snapshot(sess)
		assert.True(t, snap.IsAuthenticated)
		assert.False(t, snap.IsAdmin)
	})
}
