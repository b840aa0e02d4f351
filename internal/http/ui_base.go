package httpx

import (
	"context"
	"errors"
	"html"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bankingapplication/bank-ui/internal/gateway"
	"github.com/bankingapplication/bank-ui/internal/ports"
	"github.com/bankingapplication/bank-ui/internal/service"
)

// Handlers serves browser-facing routes.
type Handlers struct {
	T        *TemplateRenderer
	Sessions *service.SessionService
	Auth     ports.AuthAPI
	Accounts ports.AccountAPI
	Admin    *service.AdminService

	CookieDomain string
	SessionTTL   time.Duration
	IsDev        bool // Development mode flag for enhanced error reporting
	Logger       *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *Handlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	data := map[string]any{
		"Title":           meta.Title,
		"PageTitle":       meta.PageTitle,
		"CurrentPage":     meta.CurrentPage,
		"IsAuthenticated": false,
		"IsAdmin":         false,
		// Always present so templates can index field errors unconditionally
		"Errors": map[string]string{},
		// Always present, possibly empty, so forms can emit the hidden field unconditionally
		"CSRFToken": GetCSRFToken(r),
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		snap := service.Snapshot(session)
		data["IsAuthenticated"] = snap.IsAuthenticated
		data["IsAdmin"] = snap.IsAdmin
		data["User"] = snap.Identity
	}

	if notice, ok := peekFlash(r); ok {
		data["Flash"] = notice.Message
		data["FlashType"] = notice.Type
	}

	return data
}

// triggerToast sends a standardized HX-Trigger payload for toast notifications.
// Centralizing this avoids repeating the boilerplate map construction across handlers.
func triggerToast(w http.ResponseWriter, message, toastType string) {
	if w == nil || strings.TrimSpace(message) == "" {
		return
	}
	HTMX(w).Trigger("showToast", map[string]any{
		"message": message,
		"type":    strings.TrimSpace(toastType),
	})
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta  PageMeta
	Fetch func(ctx context.Context, data map[string]any) error
}

// Page builds base data, optionally fetches content data, and renders.
// A rejected bearer token during fetch tears the session down instead of
// rendering a broken page.
func (h *Handlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	data := basePageData(r, spec.Meta)
	if spec.Fetch != nil {
		if err := spec.Fetch(r.Context(), data); err != nil {
			if h.handleExpiredSession(w, r, err) {
				return
			}
			markPageError(data, err)
		}
	}
	h.renderPage(w, r, data)
}

// renderPage renders a page with proper HTMX partial support.
func (h *Handlers) renderPage(w http.ResponseWriter, r *http.Request, data any) {
	// Handle full page requests first (early return) to reduce nesting
	if !WantsPartial(r) {
		// A pending flash notice renders on this page, so consume it
		clearFlash(w, r)
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	// For HTMX requests, render the content plus out-of-band header updates
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// Hint client JS to update nav active state based on current path
	SetHXTrigger(w, "nav:activate", map[string]string{"path": r.URL.Path})

	title, pageTitle, currentPage := extractLayoutInfo(data)

	// Include a <title> element so htmx updates document.title on partial swaps
	safeDocTitle := html.EscapeString(title)
	if _, err := w.Write([]byte(`<title>` + safeDocTitle + `</title>`)); err != nil {
		h.logger().Error("failed to write partial document title", "error", err)
		return
	}

	// Out-of-band update for the header title
	safeTitle := html.EscapeString(pageTitle)
	if _, err := w.Write([]byte(`<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` + safeTitle + `</h1>`)); err != nil {
		h.logger().Error("failed to write partial header title", "error", err)
		return
	}

	if err := h.T.t.ExecuteTemplate(w, ContentTemplateFor(currentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
		return
	}
}

func markPageError(data map[string]any, err error) {
	data["Error"] = true
	if _, ok := data["ErrorMessage"]; ok {
		return
	}
	data["ErrorMessage"] = processError(err)
}

func extractLayoutInfo(data any) (title, pageTitle, currentPage string) {
	m, ok := data.(map[string]any)
	if !ok {
		return "", "", ""
	}
	if v, titleOK := m["Title"].(string); titleOK {
		title = v
	}
	if v, pageTitleOK := m["PageTitle"].(string); pageTitleOK {
		pageTitle = v
	}
	if v, currentPageOK := m["CurrentPage"].(string); currentPageOK {
		currentPage = v
	}
	return title, pageTitle, currentPage
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *Handlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	// In dev mode, show detailed error in the response
	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		errHTML := html.EscapeString(err.Error())
		pathHTML := html.EscapeString(r.URL.Path)
		contextHTML := html.EscapeString(context)
		if _, writeErr := w.Write([]byte(`
			<div style="padding: 20px; background: #fee; border: 2px solid #c33; border-radius: 4px; margin: 20px; font-family: monospace;">
				<h2 style="color: #c33; margin-top: 0;">Template Rendering Error</h2>
				<p><strong>Context:</strong> ` + contextHTML + `</p>
				<p><strong>Path:</strong> ` + pathHTML + `</p>
				<p><strong>Error:</strong></p>
				<pre style="background: #fff; padding: 10px; border: 1px solid #ccc; overflow-x: auto;">` + errHTML + `</pre>
			</div>
		`)); writeErr != nil {
			h.logger().Error("failed to write template error response", "error", writeErr)
		}
		return
	}

	// In production, show generic error
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// setSessionCookie attaches the session cookie for a freshly signed-in session.
func (h *Handlers) setSessionCookie(w http.ResponseWriter, r *http.Request, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   int(h.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie.
func (h *Handlers) clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// isSecureRequest reports whether the request arrived over HTTPS, directly or
// via a TLS-terminating proxy.
func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || isForwardedHTTPS(r)
}

// isForwardedHTTPS checks X-Forwarded-Proto, honoring only the first hop.
func isForwardedHTTPS(r *http.Request) bool {
	proto := r.Header.Get("X-Forwarded-Proto")
	if proto == "" {
		return false
	}
	if idx := strings.IndexByte(proto, ','); idx != -1 {
		proto = proto[:idx]
	}
	return strings.EqualFold(strings.TrimSpace(proto), "https")
}

// handleExpiredSession tears down the session when an upstream call reports a
// rejected bearer token. The stored session is removed, the cookie cleared,
// and the browser sent back to the login page. Returns true when the error
// was an auth failure and the response has been written.
func (h *Handlers) handleExpiredSession(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, gateway.ErrUnauthorized) {
		return false
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		if logoutErr := h.Sessions.Logout(r.Context(), session.ID); logoutErr != nil {
			h.logger().Warn("session teardown failed", "error", logoutErr)
		}
	}
	h.clearSessionCookie(w, r)

	if IsHTMX(r) {
		triggerToast(w, "Session expired. Please login again.", "error")
		HTMX(w).Redirect("/auth/login")
		return true
	}
	setFlash(w, r, "Session expired. Please login again.", "error")
	http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
	return true
}
