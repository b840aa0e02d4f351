package auth

// Package auth contains domain-level types for sessions and identity.
// It is pure and free of framework/adapter concerns.

// Identity represents the signed-in principal as known to this UI.
// A minimal Identity (username, email) is created on login/registration and
// enriched with profile fields when the auth service returns them.
type Identity struct {
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Roles     []string `json:"roles,omitempty"`
}

// DisplayName returns the best human-readable name available.
func (i Identity) DisplayName() string {
	switch {
	case i.FirstName != "" && i.LastName != "":
		return i.FirstName + " " + i.LastName
	case i.FirstName != "":
		return i.FirstName
	default:
		return i.Username
	}
}

// TokenPair holds the opaque bearer credentials issued by the auth service.
// The refresh token is persisted alongside the access token but no refresh
// flow is implemented; both are overwritten on each login and deleted together.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Session is the server-side record kept for an authenticated browser.
// ID is an opaque session identifier carried in an HttpOnly cookie.
type Session struct {
	ID       string
	Identity Identity
	Tokens   TokenPair
}

// Snapshot is the externally observable session state handed to handlers
// and templates. IsAuthenticated holds iff Identity is present; IsAdmin is
// always recomputed from the current access token, never stored.
type Snapshot struct {
	Identity        *Identity
	IsAuthenticated bool
	IsAdmin         bool
}
