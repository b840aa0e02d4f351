package config

import "strings"

// BackendConfig contains the base URLs of the backend services this UI fronts.
// All business logic (balance mutation, transaction atomicity, authorization)
// lives behind these endpoints; the UI only forwards user input and renders state.
type BackendConfig struct {
	// AuthServiceURL is the base URL of the auth service (login, registration, users).
	AuthServiceURL string `env:"AUTH_SERVICE_URL" envDefault:"http://localhost:8081/api"`

	// AccountServiceURL is the base URL of the account service (accounts, transactions).
	AccountServiceURL string `env:"ACCOUNT_SERVICE_URL" envDefault:"http://localhost:8082/api"`
}

// Sanitize normalizes backend URLs (no trailing slash so path joins stay predictable).
func (b *BackendConfig) Sanitize() {
	b.AuthServiceURL = strings.TrimRight(strings.TrimSpace(b.AuthServiceURL), "/")
	b.AccountServiceURL = strings.TrimRight(strings.TrimSpace(b.AccountServiceURL), "/")
}
