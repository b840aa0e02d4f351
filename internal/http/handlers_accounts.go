package httpx

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/bankingapplication/bank-ui/internal/domain/model"
	"github.com/bankingapplication/bank-ui/internal/http/validation"
)

// Dashboard renders the landing page with the signed-in user's accounts and
// a balance summary.
// GET /.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Dashboard", PageTitle: "Dashboard", CurrentPage: PageDashboard},
		Fetch: func(ctx context.Context, data map[string]any) error {
			accounts, err := h.Accounts.MyAccounts(ctx, AccessTokenFromContext(ctx))
			if err != nil {
				return err
			}

			var totalBalance float64
			activeCount := 0
			for _, a := range accounts {
				totalBalance += a.Balance
				if a.Active {
					activeCount++
				}
			}

			data["Accounts"] = accounts
			data["TotalBalance"] = totalBalance
			data["ActiveAccounts"] = activeCount
			return nil
		},
	})
}

// AccountsPage lists the signed-in user's accounts.
// GET /accounts.
func (h *Handlers) AccountsPage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "My Accounts", PageTitle: "My Accounts", CurrentPage: PageAccounts},
		Fetch: func(ctx context.Context, data map[string]any) error {
			accounts, err := h.Accounts.MyAccounts(ctx, AccessTokenFromContext(ctx))
			if err != nil {
				return err
			}
			data["Accounts"] = accounts
			return nil
		},
	})
}

// AccountViewPage shows one account with its transaction history.
// GET /accounts/{number}.
func (h *Handlers) AccountViewPage(w http.ResponseWriter, r *http.Request) {
	number := r.PathValue("number")
	if number == "" {
		h.NotFound(w, r)
		return
	}

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Account " + number, PageTitle: "Account Details", CurrentPage: PageAccountView},
		Fetch: func(ctx context.Context, data map[string]any) error {
			token := AccessTokenFromContext(ctx)
			account, err := h.Accounts.Account(ctx, token, number)
			if err != nil {
				return err
			}
			transactions, err := h.Accounts.AccountTransactions(ctx, token, number)
			if err != nil {
				return err
			}
			data["Account"] = account
			data["Transactions"] = transactions
			return nil
		},
	})
}

// NewAccountPage renders the open-account form.
// GET /accounts/new.
func (h *Handlers) NewAccountPage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: accountFormMeta(),
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["AccountTypes"] = h.fetchAccountTypes(ctx)
			data["Mode"] = string(FormModeCreate)
			data["AccountType"] = ""
			data["InitialDeposit"] = ""
			data["Currency"] = "USD"
			return nil
		},
	})
}

// CreateAccount handles the open-account form submission.
// POST /accounts.
func (h *Handlers) CreateAccount(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	accountType := strings.ToUpper(strings.TrimSpace(r.FormValue("accountType")))
	initialDepositRaw := strings.TrimSpace(r.FormValue("initialDeposit"))
	currency := strings.ToUpper(strings.TrimSpace(r.FormValue("currency")))
	if currency == "" {
		currency = "USD"
	}

	v := validation.New().
		Validate("accountType", accountType, validation.Required("Account type", 30)).
		Validate("currency", currency, validation.RequiredRange("Currency", 3, 3))
	if initialDepositRaw != "" {
		v.Validate("initialDeposit", initialDepositRaw, validation.Amount("Initial deposit"))
	}
	fieldErrors := v.Errors()

	formData := func(ctx context.Context) map[string]any {
		return map[string]any{
			"AccountTypes":   h.fetchAccountTypes(ctx),
			"Mode":           string(FormModeCreate),
			"AccountType":    accountType,
			"InitialDeposit": initialDepositRaw,
			"Currency":       currency,
		}
	}

	if len(fieldErrors) > 0 {
		RenderError(ErrorOpts{
			W: w, R: r,
			FieldErrors: fieldErrors,
			Renderer:    h.renderPage,
			PageMeta:    accountFormMeta(),
			Data:        formData(r.Context()),
		})
		return
	}

	req := model.AccountCreationRequest{
		AccountType: accountType,
		Currency:    currency,
	}
	if initialDepositRaw != "" {
		req.InitialDeposit, _ = strconv.ParseFloat(initialDepositRaw, 64)
	}

	account, err := h.Accounts.CreateAccount(r.Context(), AccessTokenFromContext(r.Context()), req)
	if err != nil {
		if h.handleExpiredSession(w, r, err) {
			return
		}
		RenderError(ErrorOpts{
			W: w, R: r,
			Err:      err,
			Renderer: h.renderPage,
			PageMeta: accountFormMeta(),
			Data:     formData(r.Context()),
		})
		return
	}

	h.redirectWithToast(w, r, "/accounts/"+account.AccountNumber, "Account created successfully!")
}

// fetchAccountTypes returns the selectable account types, falling back to a
// static list when the account service is unreachable so the form stays usable.
func (h *Handlers) fetchAccountTypes(ctx context.Context) []string {
	types, err := h.Accounts.AccountTypes(ctx)
	if err != nil || len(types) == 0 {
		if err != nil {
			h.logger().Warn("account types fetch failed", "error", err)
		}
		return []string{"CHECKING", "SAVINGS"}
	}
	return types
}

// redirectWithToast redirects after a successful mutation. HTMX clients get
// the notice as an Hx-Trigger toast; plain browsers get a flash cookie the
// target page renders once.
func (h *Handlers) redirectWithToast(w http.ResponseWriter, r *http.Request, target, toast string) {
	if IsHTMX(r) {
		triggerToast(w, toast, "success")
		HTMX(w).Redirect(target)
		return
	}
	setFlash(w, r, toast, "success")
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// redirectWithError redirects after a failed mutation, carrying the error
// notice the same way redirectWithToast carries a success.
func (h *Handlers) redirectWithError(w http.ResponseWriter, r *http.Request, target string, err error) {
	msg := processError(err)
	if IsHTMX(r) {
		triggerToast(w, msg, "error")
		HTMX(w).Redirect(target)
		return
	}
	setFlash(w, r, msg, "error")
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func accountFormMeta() PageMeta {
	return PageMeta{Title: "Open Account", PageTitle: "Open Account", CurrentPage: PageAccountForm}
}
