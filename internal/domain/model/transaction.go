package model

// Transaction is a ledger entry as reported by the account service.
type Transaction struct {
	ID                      int64   `json:"id"`
	TransactionID           string  `json:"transactionId"`
	AccountID               int64   `json:"accountId"`
	AccountNumber           string  `json:"accountNumber"`
	Amount                  float64 `json:"amount"`
	TransactionType         string  `json:"transactionType"`
	Status                  string  `json:"status"`
	SourceAccountNumber     string  `json:"sourceAccountNumber,omitempty"`
	DestinationAccountNumber string `json:"destinationAccountNumber,omitempty"`
	ReferenceNumber         string  `json:"referenceNumber,omitempty"`
	Description             string  `json:"description,omitempty"`
	TransactionDate         string  `json:"transactionDate"`
	BalanceAfterTransaction float64 `json:"balanceAfterTransaction"`
}

// DepositRequest credits an account.
type DepositRequest struct {
	AccountNumber   string  `json:"accountNumber"`
	Amount          float64 `json:"amount"`
	Description     string  `json:"description,omitempty"`
	ReferenceNumber string  `json:"referenceNumber,omitempty"`
}

// WithdrawRequest debits an account.
type WithdrawRequest struct {
	AccountNumber   string  `json:"accountNumber"`
	Amount          float64 `json:"amount"`
	Description     string  `json:"description,omitempty"`
	ReferenceNumber string  `json:"referenceNumber,omitempty"`
}

// TransferRequest moves funds between two accounts.
type TransferRequest struct {
	SourceAccountNumber      string  `json:"sourceAccountNumber"`
	DestinationAccountNumber string  `json:"destinationAccountNumber"`
	Amount                   float64 `json:"amount"`
	Description              string  `json:"description,omitempty"`
	ReferenceNumber          string  `json:"referenceNumber,omitempty"`
}
