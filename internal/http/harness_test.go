package httpx

import (
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bankingapplication/bank-ui/internal/adapters/memory"
	domainauth "github.com/bankingapplication/bank-ui/internal/domain/auth"
	"github.com/bankingapplication/bank-ui/internal/mocks"
	"github.com/bankingapplication/bank-ui/internal/service"
)

// signTestToken issues a signed JWT with the given roles claim. The signature
// key is irrelevant, the UI never verifies signatures.
func signTestToken(t *testing.T, roles any) string {
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

// seedSession persists a ready-made session in the store and returns it.
func seedSession(t *testing.T, store *memory.SessionStore, roles any) domainauth.Session {
	t.Helper()
	sess := domainauth.Session{
		ID: "test-session-id",
		Identity: domainauth.Identity{
			Username: "john",
			Email:    "john@example.com",
		},
		Tokens: domainauth.TokenPair{
			AccessToken:  signTestToken(t, roles),
			RefreshToken: "refresh-token",
		},
	}
	require.NoError(t, store.Save(t.Context(), sess))
	return sess
}

// testRenderer parses the real template set from disk so handler tests render
// the same markup production does.
func testRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS("../../web/templates"),
	})
	require.NoError(t, err)
	return tr
}

// testDeps bundles the mocks and store behind a Handlers under test.
type testDeps struct {
	Auth     *mocks.MockAuthAPI
	Accounts *mocks.MockAccountAPI
	Store    *memory.SessionStore
	Sessions *service.SessionService
}

// newTestHandlers wires a Handlers against gomock backends and an in-memory
// session store.
func newTestHandlers(t *testing.T, ctrl *gomock.Controller) (*Handlers, testDeps) {
	t.Helper()

	deps := testDeps{
		Auth:     mocks.NewMockAuthAPI(ctrl),
		Accounts: mocks.NewMockAccountAPI(ctrl),
		Store:    memory.NewSessionStore(time.Hour),
	}
	deps.Sessions = service.NewSessionService(service.SessionServiceOptions{
		Auth:     deps.Auth,
		Sessions: deps.Store,
	})

	h := &Handlers{
		T:        testRenderer(t),
		Sessions: deps.Sessions,
		Auth:     deps.Auth,
		Accounts: deps.Accounts,
		Admin: service.NewAdminService(service.AdminServiceOptions{
			Auth:     deps.Auth,
			Accounts: deps.Accounts,
		}),
		SessionTTL: time.Hour,
	}
	return h, deps
}

// withSession attaches a session to the request context the way the auth
// middleware would.
func withSession(r *http.Request, sess *domainauth.Session) *http.Request {
	return r.WithContext(SetSessionInContext(r.Context(), sess))
}
