package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Package token decodes JWT access tokens without verifying signatures.
// Signature verification is the backend's job; this UI only inspects the
// payload to derive display state (roles, admin flag). Authorization always
// happens server-side, so a forged token here only changes what the browser
// shows, never what the backend permits.

// Claims is the subset of the access token payload this UI cares about.
type Claims struct {
	Subject string
	Roles   []string
}

// rawClaims mirrors the wire payload. The roles claim may be a single
// string or a list of strings depending on how the issuer serializes it.
type rawClaims struct {
	Subject string `json:"sub"`
	Roles   any    `json:"roles"`
}

func (c rawClaims) GetExpirationTime() (*jwt.NumericDate, error) { return nil, nil }
func (c rawClaims) GetIssuedAt() (*jwt.NumericDate, error)       { return nil, nil }
func (c rawClaims) GetNotBefore() (*jwt.NumericDate, error)      { return nil, nil }
func (c rawClaims) GetIssuer() (string, error)                   { return "", nil }
func (c rawClaims) GetSubject() (string, error)                  { return c.Subject, nil }
func (c rawClaims) GetAudience() (jwt.ClaimStrings, error)       { return nil, nil }

// Decode parses a JWT and extracts the claims this UI uses.
// The roles claim is normalized to a list: absent becomes an empty list,
// a scalar string becomes a one-element list, a list passes through with
// non-string elements dropped.
func Decode(raw string) (Claims, error) {
	parser := jwt.NewParser()
	var rc rawClaims
	if _, _, err := parser.ParseUnverified(raw, &rc); err != nil {
		return Claims{}, fmt.Errorf("decode token: %w", err)
	}
	return Claims{
		Subject: rc.Subject,
		Roles:   normalizeRoles(rc.Roles),
	}, nil
}

func normalizeRoles(v any) []string {
	switch roles := v.(type) {
	case nil:
		return []string{}
	case string:
		return []string{roles}
	case []any:
		out := make([]string, 0, len(roles))
		for _, r := range roles {
			if s, ok := r.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

// HasRole reports whether the claims grant the named role. A claim matches
// either as the bare name ("ADMIN") or with the conventional prefix
// ("ROLE_ADMIN"). Matching is case-sensitive.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role || r == "ROLE_"+role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the claims grant the ADMIN role.
func (c Claims) IsAdmin() bool {
	return c.HasRole("ADMIN")
}

// IsAdminToken decodes a raw token and reports whether it carries the
// ADMIN role. An undecodable or empty token is never admin.
func IsAdminToken(raw string) bool {
	if raw == "" {
		return false
	}
	claims, err := Decode(raw)
	if err != nil {
		return false
	}
	return claims.IsAdmin()
}
