// Package mocks provides mock implementations for testing the bank UI.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our gateway and
// session interfaces. The mocks are generated using go:generate directives and provide a fluent
// API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockAuth := mocks.NewMockAuthAPI(ctrl)
//	mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(res, nil)
package mocks

// Generate mock for AuthAPI interface from internal/ports.
// This creates MockAuthAPI with methods for all AuthAPI interface methods:
// Login, Register, Me, GetUser, UpdateUser, ListUsers, CreateUser, DeleteUser, SetUserActive
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=auth_api_mock.go github.com/bankingapplication/bank-ui/internal/ports AuthAPI

// Generate mock for AccountAPI interface from internal/ports.
// This creates MockAccountAPI with methods for all AccountAPI interface methods:
// MyAccounts, Account, CreateAccount, AccountTypes, Deposit, Withdraw, Transfer,
// AccountTransactions, Transaction, AllAccounts, SetAccountStatus
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=account_api_mock.go github.com/bankingapplication/bank-ui/internal/ports AccountAPI

// Generate mock for SessionStore interface from internal/ports.
// This creates MockSessionStore with methods for all SessionStore interface methods:
// Save, Get, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go github.com/bankingapplication/bank-ui/internal/ports SessionStore
