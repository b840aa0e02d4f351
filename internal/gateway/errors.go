package gateway

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when a backend rejects the bearer token on an
// authenticated request. Callers must treat it as a dead session: clear the
// stored session and send the user back to the login page.
var ErrUnauthorized error = unauthorizedError{}

type unauthorizedError struct{}

func (unauthorizedError) Error() string { return "bearer token rejected" }

// APIError is a backend rejection that is not a credential failure.
// Message carries the backend's human-readable message verbatim when one was
// provided; an empty Message means the caller should show a generic error.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error (status %d)", e.Status)
	}
	return fmt.Sprintf("backend error (status %d): %s", e.Status, e.Message)
}

// UserMessage returns the message to surface to the user for any gateway
// error: the backend message when present, otherwise a generic fallback.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "An error occurred. Please try again."
}
