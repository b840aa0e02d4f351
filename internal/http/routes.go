package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/bankingapplication/bank-ui/internal/ports"
	"github.com/bankingapplication/bank-ui/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Sessions *service.SessionService
	Auth     ports.AuthAPI
	Accounts ports.AccountAPI
	Admin    *service.AdminService

	// TemplateFS is the filesystem the renderer parses templates from.
	TemplateFS fs.FS

	// StaticFS serves stylesheets and scripts under /static/. Optional.
	StaticFS fs.FS

	CookieDomain string
	SessionTTL   time.Duration
	IsDev        bool         // Development mode flag for enhanced error reporting
	Logger       *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router with browser middleware.
func NewRouter(services RouterServices) (http.Handler, error) {
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: services.TemplateFS,
		Logger:     services.Logger,
	})
	if err != nil {
		return nil, err
	}

	h := &Handlers{
		T:            tr,
		Sessions:     services.Sessions,
		Auth:         services.Auth,
		Accounts:     services.Accounts,
		Admin:        services.Admin,
		CookieDomain: services.CookieDomain,
		SessionTTL:   services.SessionTTL,
		IsDev:        services.IsDev,
		Logger:       services.Logger,
	}

	mux := http.NewServeMux()
	registerAuthRoutes(mux, h, services)
	registerBankingRoutes(mux, h, services)
	registerAdminRoutes(mux, h, services)
	if services.StaticFS != nil {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(services.StaticFS)))
	}

	mux.Handle("GET /healthz", http.HandlerFunc(Healthz))
	mux.Handle("HEAD /healthz", http.HandlerFunc(Healthz))

	// Everything the mux doesn't know gets the rendered 404 page
	mux.Handle("/", OptionalAuth(services.Sessions)(http.HandlerFunc(h.NotFound)))

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	csrf := CSRFProtection(CSRFConfig{CookieDomain: services.CookieDomain})
	return Recover(logger)(Logging(logger)(csrf(mux))), nil
}

// registerAuthRoutes wires the public sign-in, registration, and sign-out pages.
func registerAuthRoutes(mux *http.ServeMux, h *Handlers, services RouterServices) {
	// Optional auth so an already signed-in browser is bounced off the forms
	wrap := OptionalAuth(services.Sessions)
	mux.Handle("GET /auth/login", wrap(http.HandlerFunc(h.LoginPage)))
	mux.Handle("POST /auth/login", wrap(http.HandlerFunc(h.Login)))
	mux.Handle("GET /auth/register", wrap(http.HandlerFunc(h.RegisterPage)))
	mux.Handle("POST /auth/register", wrap(http.HandlerFunc(h.Register)))
	mux.Handle("POST /auth/logout", wrap(http.HandlerFunc(h.Logout)))
	mux.Handle("GET /auth/signed-out", wrap(http.HandlerFunc(h.SignedOutPage)))
}

// registerBankingRoutes wires the signed-in banking pages.
func registerBankingRoutes(mux *http.ServeMux, h *Handlers, services RouterServices) {
	wrap := RequireAuth(services.Sessions)
	mux.Handle("GET /{$}", wrap(http.HandlerFunc(h.Dashboard)))

	mux.Handle("GET /accounts", wrap(http.HandlerFunc(h.AccountsPage)))
	mux.Handle("GET /accounts/new", wrap(http.HandlerFunc(h.NewAccountPage)))
	mux.Handle("POST /accounts", wrap(http.HandlerFunc(h.CreateAccount)))
	mux.Handle("GET /accounts/{number}", wrap(http.HandlerFunc(h.AccountViewPage)))

	mux.Handle("GET /accounts/{number}/deposit", wrap(http.HandlerFunc(h.DepositPage)))
	mux.Handle("POST /accounts/{number}/deposit", wrap(http.HandlerFunc(h.Deposit)))
	mux.Handle("GET /accounts/{number}/withdraw", wrap(http.HandlerFunc(h.WithdrawPage)))
	mux.Handle("POST /accounts/{number}/withdraw", wrap(http.HandlerFunc(h.Withdraw)))
	mux.Handle("GET /transfer", wrap(http.HandlerFunc(h.TransferPage)))
	mux.Handle("POST /transfer", wrap(http.HandlerFunc(h.Transfer)))
	mux.Handle("GET /transactions", wrap(http.HandlerFunc(h.TransactionsPage)))
	mux.Handle("GET /transactions/{id}", wrap(http.HandlerFunc(h.TransactionViewPage)))

	mux.Handle("GET /profile", wrap(http.HandlerFunc(h.ProfilePage)))
	mux.Handle("POST /profile", wrap(http.HandlerFunc(h.UpdateProfile)))
}

// registerAdminRoutes wires the admin console. Authorization is ultimately
// enforced by the backend services; the guard keeps non-admins out of the UI.
func registerAdminRoutes(mux *http.ServeMux, h *Handlers, services RouterServices) {
	wrap := RequireAdmin(services.Sessions)
	mux.Handle("GET /admin", wrap(http.HandlerFunc(h.AdminPage)))

	mux.Handle("GET /admin/users", wrap(http.HandlerFunc(h.AdminUsersPage)))
	mux.Handle("GET /admin/users/new", wrap(http.HandlerFunc(h.AdminNewUserPage)))
	mux.Handle("POST /admin/users", wrap(http.HandlerFunc(h.AdminCreateUser)))
	mux.Handle("POST /admin/users/{username}/activate", wrap(h.AdminSetUserActive(true)))
	mux.Handle("POST /admin/users/{username}/deactivate", wrap(h.AdminSetUserActive(false)))
	mux.Handle("POST /admin/users/{username}/delete", wrap(http.HandlerFunc(h.AdminDeleteUser)))

	mux.Handle("GET /admin/accounts", wrap(http.HandlerFunc(h.AdminAccountsPage)))
	mux.Handle("POST /admin/accounts/{number}/status", wrap(http.HandlerFunc(h.AdminSetAccountStatus)))
}
