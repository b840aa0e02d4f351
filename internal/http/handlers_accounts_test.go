package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bankingapplication/bank-ui/internal/domain/model"
	"github.com/bankingapplication/bank-ui/internal/gateway"
)

func testAccounts() []model.Account {
	return []model.Account{
		{
			AccountNumber: "ACC-1001",
			AccountType:   "CHECKING",
			Balance:       1250.75,
			Currency:      "USD",
			Active:        true,
			CreatedAt:     "2026-01-15T10:00:00",
		},
		{
			AccountNumber: "ACC-1002",
			AccountType:   "SAVINGS",
			Balance:       9800,
			Currency:      "USD",
			Active:        false,
			CreatedAt:     "2026-02-01T09:30:00",
		},
	}
}

func TestDashboard(t *testing.T) {
	t.Run("renders accounts and balance summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, deps := newTestHandlers(t, ctrl)
		sess := seedSession(t, deps.Store, []string{"USER"})

		deps.Accounts.EXPECT().MyAccounts(gomock.Any(), sess.Tokens.AccessToken).
			Return(testAccounts(), nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = withSession(req, &sess)
		w := httptest.NewRecorder()
		h.Dashboard(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "ACC-1001")
		assert.Contains(t, body, "1,250.75")
		assert.Contains(t, body, "11,050.75") // total across both accounts
		assert.Contains(t, body, "Checking")
	})

	t.Run("htmx request gets the content fragment with oob header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, deps := newTestHandlers(t, ctrl)
		sess := seedSession(t, deps.Store, []string{"USER"})

		deps.Accounts.EXPECT().MyAccounts(gomock.Any(), sess.Tokens.AccessToken).
			Return([]model.Account{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Hx-Request", "true")
		req = withSession(req, &sess)
		w := httptest.NewRecorder()
		h.Dashboard(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.NotContains(t, body, "<!DOCTYPE html>")
		assert.Contains(t, body, "<title>Dashboard</title>")
		assert.Contains(t, body, `hx-swap-oob="outerHTML"`)
		assert.Contains(t, body, "No accounts yet")
		assert.Contains(t, w.Header().Get("Hx-Trigger"), "nav:activate")
	})

	t.Run("rejected token tears the session down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, deps := newTestHandlers(t, ctrl)
		sess := seedSession(t, deps.Store, []string{"USER"})

		deps.Accounts.EXPECT().MyAccounts(gomock.Any(), sess.Tokens.AccessToken).
			Return(nil, gateway.ErrUnauthorized)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = withSession(req, &sess)
		w := httptest.NewRecorder()
		h.Dashboard(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/auth/login", w.Header().Get("Location"))

		// The stored session must be gone and the cookie expired
		_, ok := deps.Sessions.Resolve(t.Context(), sess.ID)
		assert.False(t, ok)
		cookie := sessionCookieFrom(t, w)
		require.NotNil(t, cookie)
		assert.Less(t, cookie.MaxAge, 0)
	})

	t.Run("backend failure renders the page with an error banner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, deps := newTestHandlers(t, ctrl)
		sess := seedSession(t, deps.Store, []string{"USER"})

		deps.Accounts.EXPECT().MyAccounts(gomock.Any(), sess.Tokens.AccessToken).
			Return(nil, &gateway.APIError{Status: 503, Message: "Account service unavailable"})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = withSession(req, &sess)
		w := httptest.NewRecorder()
		h.Dashboard(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Account service unavailable")
	})
}

func TestAccountViewPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, deps := newTestHandlers(t, ctrl)
	sess := seedSession(t, deps.Store, []string{"USER"})

	account := testAccounts()[0]
	deps.Accounts.EXPECT().Account(gomock.Any(), sess.Tokens.AccessToken, "ACC-1001").
		Return(account, nil)
	deps.Accounts.EXPECT().AccountTransactions(gomock.Any(), sess.Tokens.AccessToken, "ACC-1001").
		Return([]model.Transaction{
			{
				TransactionID:           "TXN-1",
				TransactionType:         "DEPOSIT",
				Amount:                  500,
				Status:                  "COMPLETED",
				Description:             "Paycheck",
				TransactionDate:         "2026-03-01T08:00:00",
				BalanceAfterTransaction: 1750.75,
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/accounts/ACC-1001", nil)
	req.SetPathValue("number", "ACC-1001")
	req = withSession(req, &sess)
	w := httptest.NewRecorder()
	h.AccountViewPage(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "ACC-1001")
	assert.Contains(t, body, "Paycheck")
	assert.Contains(t, body, "Deposit")
	assert.Contains(t, body, "1,750.75")
}

func TestCreateAccount(t *testing.T) {
	t.Run("success redirects to the new account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, deps := newTestHandlers(t, ctrl)
		sess := seedSession(t, deps.Store, []string{"USER"})

		deps.Accounts.EXPECT().
			CreateAccount(gomock.Any(), sess.Tokens.AccessToken, model.AccountCreationRequest{
				AccountType:    "SAVINGS",
				InitialDeposit: 100,
				Currency:       "USD",
			}).
			Return(model.Account{AccountNumber: "ACC-2001"}, nil)

		form := url.Values{
			"accountType":    {"savings"},
			"initialDeposit": {"100"},
			"currency":       {"usd"},
		}
		req := postForm("/accounts", form)
		req = withSession(req, &sess)
		w := httptest.NewRecorder()
		h.CreateAccount(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/accounts/ACC-2001", w.Header().Get("Location"))
	})

	t.Run("invalid deposit re-renders the form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, deps := newTestHandlers(t, ctrl)
		sess := seedSession(t, deps.Store, []string{"USER"})

		// The form refetches the type list to rebuild the dropdown
		deps.Accounts.EXPECT().AccountTypes(gomock.Any()).
			Return([]string{"CHECKING", "SAVINGS"}, nil)

		form := url.Values{
			"accountType":    {"SAVINGS"},
			"initialDeposit": {"-50"},
		}
		req := postForm("/accounts", form)
		req = withSession(req, &sess)
		w := httptest.NewRecorder()
		h.CreateAccount(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Initial deposit must be greater than zero.")
		assert.Contains(t, body, `value="-50"`)
	})

	t.Run("type list falls back when the service is down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, deps := newTestHandlers(t, ctrl)
		sess := seedSession(t, deps.Store, []string{"USER"})

		deps.Accounts.EXPECT().AccountTypes(gomock.Any()).
			Return(nil, &gateway.APIError{Status: 503})

		req := httptest.NewRequest(http.MethodGet, "/accounts/new", nil)
		req = withSession(req, &sess)
		w := httptest.NewRecorder()
		h.NewAccountPage(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Checking")
		assert.Contains(t, body, "Savings")
	})
}
