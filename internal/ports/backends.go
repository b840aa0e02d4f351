package ports

import (
	"context"

	"github.com/bankingapplication/bank-ui/internal/domain/model"
)

// AuthAPI is the gateway to the auth service (authentication and user
// management). Methods that act on behalf of a signed-in user take the raw
// bearer token; Login and Register are the only unauthenticated calls.
type AuthAPI interface {
	Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error)
	Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error)

	Me(ctx context.Context, token string) (model.UserResponse, error)
	GetUser(ctx context.Context, token, username string) (model.UserResponse, error)
	UpdateUser(ctx context.Context, token, username string, req model.UserUpdateRequest) (model.UserResponse, error)

	// Admin-only operations. Authorization is enforced by the auth service;
	// the UI merely hides the pages from non-admins.
	ListUsers(ctx context.Context, token string) ([]model.UserResponse, error)
	CreateUser(ctx context.Context, token string, req model.UserCreationRequest) (model.UserResponse, error)
	DeleteUser(ctx context.Context, token, username string) error
	SetUserActive(ctx context.Context, token, username string, active bool) error
}

// AccountAPI is the gateway to the account service (accounts and
// transactions). AccountTypes is the only unauthenticated call.
type AccountAPI interface {
	MyAccounts(ctx context.Context, token string) ([]model.Account, error)
	Account(ctx context.Context, token, number string) (model.Account, error)
	CreateAccount(ctx context.Context, token string, req model.AccountCreationRequest) (model.Account, error)
	AccountTypes(ctx context.Context) ([]string, error)

	Deposit(ctx context.Context, token string, req model.DepositRequest) (model.Transaction, error)
	Withdraw(ctx context.Context, token string, req model.WithdrawRequest) (model.Transaction, error)
	Transfer(ctx context.Context, token string, req model.TransferRequest) (model.Transaction, error)
	AccountTransactions(ctx context.Context, token, number string) ([]model.Transaction, error)
	Transaction(ctx context.Context, token, id string) (model.Transaction, error)

	// Admin-only operations.
	AllAccounts(ctx context.Context, token string) ([]model.Account, error)
	SetAccountStatus(ctx context.Context, token, number string, active bool) (model.Account, error)
}
