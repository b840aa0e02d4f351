package httpx

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/bankingapplication/bank-ui/internal/domain/model"
	"github.com/bankingapplication/bank-ui/internal/http/validation"
)

// AdminPage renders the admin overview with aggregated user and account stats.
// GET /admin.
func (h *Handlers) AdminPage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Admin", PageTitle: "Admin Dashboard", CurrentPage: PageAdmin},
		Fetch: func(ctx context.Context, data map[string]any) error {
			overview, err := h.Admin.Overview(ctx, AccessTokenFromContext(ctx))
			if err != nil {
				return err
			}
			data["Stats"] = overview.Stats
			data["Users"] = overview.Users
			data["Accounts"] = overview.Accounts
			return nil
		},
	})
}

// AdminUsersPage lists all users.
// GET /admin/users.
func (h *Handlers) AdminUsersPage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Users", PageTitle: "User Management", CurrentPage: PageAdminUsers},
		Fetch: func(ctx context.Context, data map[string]any) error {
			users, err := h.Auth.ListUsers(ctx, AccessTokenFromContext(ctx))
			if err != nil {
				return err
			}
			data["Users"] = users
			return nil
		},
	})
}

// AdminNewUserPage renders the create-user form.
// GET /admin/users/new.
func (h *Handlers) AdminNewUserPage(w http.ResponseWriter, r *http.Request) {
	data := basePageData(r, adminUserFormMeta())
	data["Mode"] = string(FormModeCreate)
	h.renderPage(w, r, data)
}

// AdminCreateUser handles the create-user form submission.
// POST /admin/users.
func (h *Handlers) AdminCreateUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	req := model.UserCreationRequest{
		Username:    strings.TrimSpace(r.FormValue("username")),
		Email:       strings.TrimSpace(r.FormValue("email")),
		Password:    r.FormValue("password"),
		FirstName:   strings.TrimSpace(r.FormValue("firstName")),
		LastName:    strings.TrimSpace(r.FormValue("lastName")),
		PhoneNumber: strings.TrimSpace(r.FormValue("phoneNumber")),
	}
	if r.FormValue("admin") == "on" {
		req.Roles = []string{"ADMIN"}
	}

	fieldErrors := validation.New().
		Validate("username", req.Username, validation.RequiredRange("Username", 3, 50)).
		Validate("email", req.Email, validation.Email("Email")).
		Validate("password", req.Password, validation.RequiredRange("Password", 6, 40)).
		Validate("firstName", req.FirstName, validation.Optional("First name", 50)).
		Validate("lastName", req.LastName, validation.Optional("Last name", 50)).
		Errors()

	formData := map[string]any{
		"Mode":        string(FormModeCreate),
		"Username":    req.Username,
		"Email":       req.Email,
		"FirstName":   req.FirstName,
		"LastName":    req.LastName,
		"PhoneNumber": req.PhoneNumber,
		"IsAdminRole": len(req.Roles) > 0,
	}

	if len(fieldErrors) > 0 {
		RenderError(ErrorOpts{
			W: w, R: r,
			FieldErrors: fieldErrors,
			Renderer:    h.renderPage,
			PageMeta:    adminUserFormMeta(),
			Data:        formData,
		})
		return
	}

	if _, err := h.Auth.CreateUser(r.Context(), AccessTokenFromContext(r.Context()), req); err != nil {
		if h.handleExpiredSession(w, r, err) {
			return
		}
		RenderError(ErrorOpts{
			W: w, R: r,
			Err:      err,
			Renderer: h.renderPage,
			PageMeta: adminUserFormMeta(),
			Data:     formData,
		})
		return
	}

	h.redirectWithToast(w, r, "/admin/users", "User created successfully!")
}

// AdminSetUserActive activates or deactivates a user.
// POST /admin/users/{username}/activate and POST /admin/users/{username}/deactivate.
func (h *Handlers) AdminSetUserActive(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.PathValue("username")
		if username == "" {
			h.NotFound(w, r)
			return
		}

		err := h.Auth.SetUserActive(r.Context(), AccessTokenFromContext(r.Context()), username, active)
		if err != nil {
			if h.handleExpiredSession(w, r, err) {
				return
			}
			h.redirectWithError(w, r, "/admin/users", err)
			return
		}

		toast := "User deactivated"
		if active {
			toast = "User activated"
		}
		h.redirectWithToast(w, r, "/admin/users", toast)
	}
}

// AdminDeleteUser removes a user.
// POST /admin/users/{username}/delete.
func (h *Handlers) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if username == "" {
		h.NotFound(w, r)
		return
	}

	if err := h.Auth.DeleteUser(r.Context(), AccessTokenFromContext(r.Context()), username); err != nil {
		if h.handleExpiredSession(w, r, err) {
			return
		}
		h.redirectWithError(w, r, "/admin/users", err)
		return
	}

	h.redirectWithToast(w, r, "/admin/users", "User deleted successfully!")
}

// AdminAccountsPage lists accounts across all users, narrowed by the query
// filters when given: type, status (active/inactive), and a search over
// account number and owner.
// GET /admin/accounts?type=&status=&q=.
func (h *Handlers) AdminAccountsPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filterType := strings.ToUpper(strings.TrimSpace(query.Get("type")))
	filterStatus := strings.ToLower(strings.TrimSpace(query.Get("status")))
	search := strings.TrimSpace(query.Get("q"))

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Accounts", PageTitle: "Account Management", CurrentPage: PageAdminAccounts},
		Fetch: func(ctx context.Context, data map[string]any) error {
			// Filter state first so the controls survive a failed fetch
			data["FilterType"] = filterType
			data["FilterStatus"] = filterStatus
			data["Search"] = search

			accounts, err := h.Accounts.AllAccounts(ctx, AccessTokenFromContext(ctx))
			if err != nil {
				return err
			}
			data["AccountTypes"] = accountTypesOf(accounts)
			data["Accounts"] = filterAccounts(accounts, filterType, filterStatus, search)
			return nil
		},
	})
}

// filterAccounts narrows the account list. Empty filter values match all.
func filterAccounts(accounts []model.Account, accountType, status, search string) []model.Account {
	search = strings.ToLower(search)
	filtered := make([]model.Account, 0, len(accounts))
	for _, account := range accounts {
		if accountType != "" && account.AccountType != accountType {
			continue
		}
		if status == "active" && !account.Active {
			continue
		}
		if status == "inactive" && account.Active {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(account.AccountNumber), search) &&
			!strings.Contains(strings.ToLower(account.UserID), search) {
			continue
		}
		filtered = append(filtered, account)
	}
	return filtered
}

// accountTypesOf collects the distinct account types present, for the
// filter dropdown.
func accountTypesOf(accounts []model.Account) []string {
	seen := make(map[string]bool, 4)
	types := make([]string, 0, 4)
	for _, account := range accounts {
		if t := account.AccountType; t != "" && !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	sort.Strings(types)
	return types
}

// AdminSetAccountStatus toggles an account between active and inactive.
// POST /admin/accounts/{number}/status.
func (h *Handlers) AdminSetAccountStatus(w http.ResponseWriter, r *http.Request) {
	number := r.PathValue("number")
	if number == "" {
		h.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	active := r.FormValue("active") == "true"

	account, err := h.Accounts.SetAccountStatus(r.Context(), AccessTokenFromContext(r.Context()), number, active)
	if err != nil {
		if h.handleExpiredSession(w, r, err) {
			return
		}
		h.redirectWithError(w, r, "/admin/accounts", err)
		return
	}

	toast := "Account " + account.AccountNumber + " deactivated"
	if account.Active {
		toast = "Account " + account.AccountNumber + " activated"
	}
	h.redirectWithToast(w, r, "/admin/accounts", toast)
}

func adminUserFormMeta() PageMeta {
	return PageMeta{Title: "New User", PageTitle: "New User", CurrentPage: PageAdminUserForm}
}
