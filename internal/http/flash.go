package httpx

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// FlashCookieName carries a one-shot notice across a plain browser redirect.
// HTMX clients receive the same notice through the Hx-Trigger header instead,
// so the cookie is only set on non-HTMX responses.
const FlashCookieName = "flash"

// flashNotice is the payload stored in the flash cookie.
type flashNotice struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// setFlash stores a notice that the next full page render shows exactly once.
// The payload is base64url-encoded JSON so messages with spaces survive the
// cookie value restrictions.
func setFlash(w http.ResponseWriter, r *http.Request, message, noticeType string) {
	if message == "" {
		return
	}
	b, err := json.Marshal(flashNotice{Message: message, Type: noticeType})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(b),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// peekFlash reads the pending notice without consuming it. Clearing happens
// during the full page render so the notice survives intermediate redirects.
func peekFlash(r *http.Request) (flashNotice, bool) {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil || cookie.Value == "" {
		return flashNotice{}, false
	}
	b, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return flashNotice{}, false
	}
	var notice flashNotice
	if err := json.Unmarshal(b, &notice); err != nil || notice.Message == "" {
		return flashNotice{}, false
	}
	return notice, true
}

// clearFlash expires the flash cookie once the notice has been rendered.
func clearFlash(w http.ResponseWriter, r *http.Request) {
	if _, err := r.Cookie(FlashCookieName); err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
}
