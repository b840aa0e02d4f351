package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/bankingapplication/bank-ui/internal/domain/model"
	"github.com/bankingapplication/bank-ui/internal/gateway"
)

func testUsers() []model.UserResponse {
	return []model.UserResponse{
		{UserID: "john", FirstName: "John", LastName: "Doe", Email: "john@example.com", Active: true},
		{UserID: "jane", FirstName: "Jane", LastName: "Roe", Email: "jane@example.com", Active: false},
	}
}

func TestAdminPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, deps := newTestHandlers(t, ctrl)
	sess := seedSession(t, deps.Store, []string{"ROLE_ADMIN"})

	deps.Auth.EXPECT().ListUsers(gomock.Any(), sess.Tokens.AccessToken).Return(testUsers(), nil)
	deps.Accounts.EXPECT().AllAccounts(gomock.Any(), sess.Tokens.AccessToken).Return(testAccounts(), nil)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req = withSession(req, &sess)
	w := httptest.NewRecorder()
	h.AdminPage(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Admin Dashboard")
	assert.Contains(t, body, "11,050.75") // combined balance of both accounts
	assert.Contains(t, body, "Manage Users")
}

func TestAdminUsersPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, deps := newTestHandlers(t, ctrl)
	sess := seedSession(t, deps.Store, []string{"ROLE_ADMIN"})

	deps.Auth.EXPECT().ListUsers(gomock.Any(), sess.Tokens.AccessToken).Return(testUsers(), nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req = withSession(req, &sess)
	w := httptest.NewRecorder()
	h.AdminUsersPage(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "jane@example.com")
	// Active users offer deactivation, inactive ones activation
	assert.Contains(t, body, "/admin/users/john/deactivate")
	assert.Contains(t, body, "/admin/users/jane/activate")
}

func TestAdminCreateUser(t *testing.T) {
	t.Run("admin checkbox grants the role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, deps := newTestHandlers(t, ctrl)
		sess := seedSession(t, deps.Store, []string{"ROLE_ADMIN"})

		deps.Auth.EXPECT().
			CreateUser(gomock.Any(), sess.Tokens.AccessToken, model.UserCreationRequest{
				Username: "newadmin",
				Email:    "admin@example.com",
				Password: "secret1",
				Roles:    []string{"ADMIN"},
			}).
			Return(model.UserResponse{UserID: "newadmin"}, nil)

		form := url.Values{
			"username": {"newadmin"},
			"email":    {"admin@example.com"},
			"password": {"secret1"},
			"admin":    {"on"},
		}
		req := postForm("/admin/users", form)
		req = withSession(req, &sess)
		w := httptest.NewRecorder()
		h.AdminCreateUser(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/admin/users", w.Header().Get("Location"))
	})

	t.Run("validation errors keep the admin checkbox state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, deps := newTestHandlers(t, ctrl)
		sess := seedSession(t, deps.Store, []string{"ROLE_ADMIN"})

		form := url.Values{
			"username": {"x"},
			"email":    {"admin@example.com"},
			"password": {"secret1"},
			"admin":    {"on"},
		}
		req := postForm("/admin/users", form)
		req = withSession(req, &sess)
		w := httptest.NewRecorder()
		h.AdminCreateUser(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Username must be between 3 and 50 characters.")
		assert.Contains(t, body, "checked")
	})
}

func TestAdminSetUserActive(t *testing.T) {
	t.Run("deactivate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, deps := newTestHandlers(t, ctrl)
		sess := seedSession(t, deps.Store, []string{"ROLE_ADMIN"})

		deps.Auth.EXPECT().SetUserActive(gomock.Any(), sess.Tokens.AccessToken, "jane", false).Return(nil)

		req := postForm("/admin/users/jane/deactivate", url.Values{})
		req.SetPathValue("username", "jane")
		req.Header.Set("Hx-Request", "true")
		req = withSession(req, &sess)
		w := httptest.NewRecorder()
		h.AdminSetUserActive(false)(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "/admin/users", w.Header().Get("Hx-Redirect"))
		assert.Contains(t, w.Header().Get("Hx-Trigger"), "User deactivated")
	})

	t.Run("backend failure shows error toast", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, deps := newTestHandlers(t, ctrl)
		sess := seedSession(t, deps.Store, []string{"ROLE_ADMIN"})

		deps.Auth.EXPECT().SetUserActive(gomock.Any(), sess.Tokens.AccessToken, "jane", true).
			Return(&gateway.APIError{Status: 404, Message: "User not found"})

		req := postForm("/admin/users/jane/activate", url.Values{})
		req.SetPathValue("username", "jane")
		req.Header.Set("Hx-Request", "true")
		req = withSession(req, &sess)
		w := httptest.NewRecorder()
		h.AdminSetUserActive(true)(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Hx-Trigger"), "User not found")
	})
}

func TestAdminDeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, deps := newTestHandlers(t, ctrl)
	sess := seedSession(t, deps.Store, []string{"ROLE_ADMIN"})

	deps.Auth.EXPECT().DeleteUser(gomock.Any(), sess.Tokens.AccessToken, "jane").Return(nil)

	req := postForm("/admin/users/jane/delete", url.Values{})
	req.SetPathValue("username", "jane")
	req = withSession(req, &sess)
	w := httptest.NewRecorder()
	h.AdminDeleteUser(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/users", w.Header().Get("Location"))
}

func TestAdminAccountsPage(t *testing.T) {
	get := func(t *testing.T, target string) *httptest.ResponseRecorder {
		t.Helper()
		ctrl := gomock.NewController(t)
		h, deps := newTestHandlers(t, ctrl)
		sess := seedSession(t, deps.Store, []string{"ROLE_ADMIN"})

		deps.Accounts.EXPECT().AllAccounts(gomock.Any(), sess.Tokens.AccessToken).
			Return(testAccounts(), nil)

		req := httptest.NewRequest(http.MethodGet, target, nil)
		req = withSession(req, &sess)
		w := httptest.NewRecorder()
		h.AdminAccountsPage(w, req)
		return w
	}

	t.Run("unfiltered lists everything", func(t *testing.T) {
		w := get(t, "/admin/accounts")
		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "ACC-1001")
		assert.Contains(t, body, "ACC-1002")
	})

	t.Run("status filter keeps only inactive accounts", func(t *testing.T) {
		w := get(t, "/admin/accounts?status=inactive")
		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "ACC-1002")
		assert.NotContains(t, body, "ACC-1001")
	})

	t.Run("type filter is case-insensitive", func(t *testing.T) {
		w := get(t, "/admin/accounts?type=checking")
		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "ACC-1001")
		assert.NotContains(t, body, "ACC-1002")
	})

	t.Run("search matches account number and owner", func(t *testing.T) {
		w := get(t, "/admin/accounts?q=1002")
		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "ACC-1002")
		assert.NotContains(t, body, "ACC-1001")
		// Submitted search term survives in the filter form
		assert.Contains(t, body, `value="1002"`)
	})
}

func TestAdminSetAccountStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, deps := newTestHandlers(t, ctrl)
	sess := seedSession(t, deps.Store, []string{"ROLE_ADMIN"})

	deps.Accounts.EXPECT().
		SetAccountStatus(gomock.Any(), sess.Tokens.AccessToken, "ACC-1002", true).
		Return(model.Account{AccountNumber: "ACC-1002", Active: true}, nil)

	form := url.Values{"active": {"true"}}
	req := postForm("/admin/accounts/ACC-1002/status", form)
	req.SetPathValue("number", "ACC-1002")
	req.Header.Set("Hx-Request", "true")
	req = withSession(req, &sess)
	w := httptest.NewRecorder()
	h.AdminSetAccountStatus(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "/admin/accounts", w.Header().Get("Hx-Redirect"))
	assert.Contains(t, w.Header().Get("Hx-Trigger"), "Account ACC-1002 activated")
}
