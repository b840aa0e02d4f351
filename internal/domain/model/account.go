package model

// Package model holds the data shapes exchanged with the backend services.
// Field names and JSON tags follow the backend wire format exactly; the UI
// never invents fields and never recomputes balances.
//
// Timestamps stay as strings because the backends emit zone-less
// LocalDateTime values that time.Time refuses to parse.

// Account is a bank account as reported by the account service.
// The canonical activity flag is Active; Status is a legacy string some
// endpoints still emit and is kept only for decoding older payloads.
type Account struct {
	ID            int64   `json:"id"`
	AccountNumber string  `json:"accountNumber"`
	UserID        string  `json:"userId"`
	AccountType   string  `json:"accountType"`
	Balance       float64 `json:"balance"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status,omitempty"`
	Active        bool    `json:"active"`
	CreatedAt     string  `json:"createdAt,omitempty"`
	UpdatedAt     string  `json:"updatedAt,omitempty"`

	DailyTransactionLimit float64 `json:"dailyTransactionLimit,omitempty"`
	DailyWithdrawalLimit  float64 `json:"dailyWithdrawalLimit,omitempty"`
	InterestRate          float64 `json:"interestRate,omitempty"`
	OverdraftLimit        float64 `json:"overdraftLimit,omitempty"`
	MinimumBalance        float64 `json:"minimumBalance,omitempty"`
}

// AccountCreationRequest opens a new account for the signed-in user.
// The owning user is derived server-side from the bearer token.
type AccountCreationRequest struct {
	AccountType    string  `json:"accountType"`
	InitialDeposit float64 `json:"initialDeposit"`
	Currency       string  `json:"currency"`

	DailyTransactionLimit float64 `json:"dailyTransactionLimit,omitempty"`
	DailyWithdrawalLimit  float64 `json:"dailyWithdrawalLimit,omitempty"`
	InterestRate          float64 `json:"interestRate,omitempty"`
	OverdraftLimit        float64 `json:"overdraftLimit,omitempty"`
	MinimumBalance        float64 `json:"minimumBalance,omitempty"`
}
