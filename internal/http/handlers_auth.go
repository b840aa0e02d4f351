package httpx

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/bankingapplication/bank-ui/internal/domain/model"
	"github.com/bankingapplication/bank-ui/internal/http/validation"
)

// LoginPage renders the login form.
// GET /auth/login?redirect_uri=<optional_redirect>.
func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if GetSessionFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := basePageData(r, loginMeta())
	data["UsernameOrEmail"] = ""
	data["RedirectURI"] = safeRedirectPath(r.URL.Query().Get("redirect_uri"))
	h.renderPage(w, r, data)
}

// Login handles the login form submission.
// POST /auth/login.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	req := model.LoginRequest{
		UsernameOrEmail: strings.TrimSpace(r.FormValue("usernameOrEmail")),
		Password:        r.FormValue("password"),
	}
	redirectURI := safeRedirectPath(r.FormValue("redirect_uri"))

	fieldErrors := validation.New().
		Validate("usernameOrEmail", req.UsernameOrEmail, validation.Required("Username or email", 120)).
		Validate("password", req.Password, validation.Required("Password", 128)).
		Errors()
	if len(fieldErrors) > 0 {
		RenderError(ErrorOpts{
			W: w, R: r,
			FieldErrors: fieldErrors,
			Renderer:    h.renderPage,
			PageMeta:    loginMeta(),
			Data:        loginFormData(req.UsernameOrEmail, redirectURI),
		})
		return
	}

	sess, err := h.Sessions.Login(r.Context(), req)
	if err != nil {
		RenderError(ErrorOpts{
			W: w, R: r,
			Err:      err,
			Renderer: h.renderPage,
			PageMeta: loginMeta(),
			Data:     loginFormData(req.UsernameOrEmail, redirectURI),
		})
		return
	}

	h.setSessionCookie(w, r, sess.ID)
	h.redirectAfterSignIn(w, r, redirectURI, "Login successful!")
}

// RegisterPage renders the registration form.
// GET /auth/register.
func (h *Handlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if GetSessionFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	data := basePageData(r, registerMeta())
	for _, field := range []string{"Username", "Email", "FirstName", "LastName"} {
		data[field] = ""
	}
	h.renderPage(w, r, data)
}

// Register handles the registration form submission.
// POST /auth/register.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	req := model.RegisterRequest{
		Username:  strings.TrimSpace(r.FormValue("username")),
		Email:     strings.TrimSpace(r.FormValue("email")),
		Password:  r.FormValue("password"),
		FirstName: strings.TrimSpace(r.FormValue("firstName")),
		LastName:  strings.TrimSpace(r.FormValue("lastName")),
	}

	fieldErrors := validation.New().
		Validate("username", req.Username, validation.RequiredRange("Username", 3, 50)).
		Validate("email", req.Email, validation.Email("Email")).
		Validate("password", req.Password, validation.RequiredRange("Password", 6, 40)).
		Validate("firstName", req.FirstName, validation.Optional("First name", 50)).
		Validate("lastName", req.LastName, validation.Optional("Last name", 50)).
		Errors()
	if len(fieldErrors) > 0 {
		RenderError(ErrorOpts{
			W: w, R: r,
			FieldErrors: fieldErrors,
			Renderer:    h.renderPage,
			PageMeta:    registerMeta(),
			Data:        registerFormData(req),
		})
		return
	}

	sess, err := h.Sessions.Register(r.Context(), req)
	if err != nil {
		RenderError(ErrorOpts{
			W: w, R: r,
			Err:      err,
			Renderer: h.renderPage,
			PageMeta: registerMeta(),
			Data:     registerFormData(req),
		})
		return
	}

	h.setSessionCookie(w, r, sess.ID)
	h.redirectAfterSignIn(w, r, "/", "Registration successful!")
}

// Logout handles the logout endpoint.
// POST /auth/logout.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionCookie, err := r.Cookie(SessionCookieName); err == nil {
		if logoutErr := h.Sessions.Logout(r.Context(), sessionCookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}
	h.clearSessionCookie(w, r)

	// Build signed-out URL using url.Values to avoid edge cases
	u := url.URL{Path: "/auth/signed-out"}
	q := url.Values{}
	q.Set("redirect_uri", "/")
	u.RawQuery = q.Encode()
	signedOutURL := u.String()

	if IsHTMX(r) {
		triggerToast(w, "Logged out successfully", "success")
		HTMX(w).Redirect(signedOutURL)
		return
	}
	http.Redirect(w, r, signedOutURL, http.StatusFound)
}

// SignedOutPage renders the post-logout page with a sign-in link back to the
// page the user came from.
// GET /auth/signed-out?redirect_uri=<optional_redirect>.
func (h *Handlers) SignedOutPage(w http.ResponseWriter, r *http.Request) {
	data := basePageData(r, PageMeta{
		Title:       "Signed Out",
		PageTitle:   "Signed Out",
		CurrentPage: PageSignedOut,
	})
	data["RedirectURI"] = safeRedirectPath(r.URL.Query().Get("redirect_uri"))
	h.renderPage(w, r, data)
}

// redirectAfterSignIn sends a freshly signed-in browser to its destination.
func (h *Handlers) redirectAfterSignIn(w http.ResponseWriter, r *http.Request, redirectURI, toast string) {
	if redirectURI == "" {
		redirectURI = "/"
	}
	if IsHTMX(r) {
		triggerToast(w, toast, "success")
		HTMX(w).Redirect(redirectURI)
		return
	}
	http.Redirect(w, r, redirectURI, http.StatusSeeOther)
}

func loginMeta() PageMeta {
	return PageMeta{Title: "Sign In", PageTitle: "Sign In", CurrentPage: PageLogin}
}

func registerMeta() PageMeta {
	return PageMeta{Title: "Create Account", PageTitle: "Create Account", CurrentPage: PageRegister}
}

func loginFormData(usernameOrEmail, redirectURI string) map[string]any {
	return map[string]any{
		"UsernameOrEmail": usernameOrEmail,
		"RedirectURI":     redirectURI,
	}
}

func registerFormData(req model.RegisterRequest) map[string]any {
	return map[string]any{
		"Username":  req.Username,
		"Email":     req.Email,
		"FirstName": req.FirstName,
		"LastName":  req.LastName,
	}
}
