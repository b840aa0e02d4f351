package httpx

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/bankingapplication/bank-ui/internal/domain/model"
	"github.com/bankingapplication/bank-ui/internal/http/validation"
)

// DepositPage renders the deposit form for an account.
// GET /accounts/{number}/deposit.
func (h *Handlers) DepositPage(w http.ResponseWriter, r *http.Request) {
	h.moneyFormPage(w, r, depositMeta())
}

// Deposit handles the deposit form submission.
// POST /accounts/{number}/deposit.
func (h *Handlers) Deposit(w http.ResponseWriter, r *http.Request) {
	h.handleMoneyForm(w, r, moneyFormOpts{
		Meta:  depositMeta(),
		Toast: "Deposit successful!",
		Execute: func(ctx context.Context, token, number string, amount float64, description string) error {
			_, err := h.Accounts.Deposit(ctx, token, model.DepositRequest{
				AccountNumber: number,
				Amount:        amount,
				Description:   description,
			})
			return err
		},
	})
}

// WithdrawPage renders the withdrawal form for an account.
// GET /accounts/{number}/withdraw.
func (h *Handlers) WithdrawPage(w http.ResponseWriter, r *http.Request) {
	h.moneyFormPage(w, r, withdrawMeta())
}

// Withdraw handles the withdrawal form submission.
// POST /accounts/{number}/withdraw.
func (h *Handlers) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.handleMoneyForm(w, r, moneyFormOpts{
		Meta:  withdrawMeta(),
		Toast: "Withdrawal successful!",
		Execute: func(ctx context.Context, token, number string, amount float64, description string) error {
			_, err := h.Accounts.Withdraw(ctx, token, model.WithdrawRequest{
				AccountNumber: number,
				Amount:        amount,
				Description:   description,
			})
			return err
		},
	})
}

// TransferPage renders the transfer form with the user's accounts as sources.
// GET /transfer.
func (h *Handlers) TransferPage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: transferMeta(),
		Fetch: func(ctx context.Context, data map[string]any) error {
			accounts, err := h.Accounts.MyAccounts(ctx, AccessTokenFromContext(ctx))
			if err != nil {
				return err
			}
			data["Accounts"] = accounts
			data["SourceAccount"] = r.URL.Query().Get("from")
			return nil
		},
	})
}

// Transfer handles the transfer form submission.
// POST /transfer.
func (h *Handlers) Transfer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	source := strings.TrimSpace(r.FormValue("sourceAccountNumber"))
	destination := strings.TrimSpace(r.FormValue("destinationAccountNumber"))
	amountRaw := strings.TrimSpace(r.FormValue("amount"))
	description := strings.TrimSpace(r.FormValue("description"))

	fieldErrors := validation.New().
		Validate("sourceAccountNumber", source, validation.Required("Source account", 40)).
		Validate("destinationAccountNumber", destination, validation.Required("Destination account", 40)).
		Validate("amount", amountRaw, validation.Amount("Amount")).
		Validate("description", description, validation.Optional("Description", 200)).
		Errors()
	if source != "" && source == destination {
		fieldErrors["destinationAccountNumber"] = "Destination must differ from the source account."
	}

	formData := func(ctx context.Context) map[string]any {
		data := map[string]any{
			"SourceAccount":      source,
			"DestinationAccount": destination,
			"Amount":             amountRaw,
			"Description":        description,
		}
		// Best-effort so the source dropdown survives a failed submit
		if accounts, err := h.Accounts.MyAccounts(ctx, AccessTokenFromContext(ctx)); err == nil {
			data["Accounts"] = accounts
		}
		return data
	}

	if len(fieldErrors) > 0 {
		RenderError(ErrorOpts{
			W: w, R: r,
			FieldErrors: fieldErrors,
			Renderer:    h.renderPage,
			PageMeta:    transferMeta(),
			Data:        formData(r.Context()),
		})
		return
	}

	amount, _ := strconv.ParseFloat(amountRaw, 64)
	_, err := h.Accounts.Transfer(r.Context(), AccessTokenFromContext(r.Context()), model.TransferRequest{
		SourceAccountNumber:      source,
		DestinationAccountNumber: destination,
		Amount:                   amount,
		Description:              description,
	})
	if err != nil {
		if h.handleExpiredSession(w, r, err) {
			return
		}
		RenderError(ErrorOpts{
			W: w, R: r,
			Err:      err,
			Renderer: h.renderPage,
			PageMeta: transferMeta(),
			Data:     formData(r.Context()),
		})
		return
	}

	h.redirectWithToast(w, r, "/accounts/"+source, "Transfer successful!")
}

// TransactionsPage shows transaction history with an account picker. Without
// a picked account the histories of all the user's accounts are merged.
// GET /transactions?account={number}.
func (h *Handlers) TransactionsPage(w http.ResponseWriter, r *http.Request) {
	selected := strings.TrimSpace(r.URL.Query().Get("account"))

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Transactions", PageTitle: "Transaction History", CurrentPage: PageTransactions},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Selected"] = selected

			token := AccessTokenFromContext(ctx)
			accounts, err := h.Accounts.MyAccounts(ctx, token)
			if err != nil {
				return err
			}
			data["Accounts"] = accounts

			numbers := make([]string, 0, len(accounts))
			for _, account := range accounts {
				if selected == "" || account.AccountNumber == selected {
					numbers = append(numbers, account.AccountNumber)
				}
			}

			// A picked account that isn't the user's own renders empty
			transactions := []model.Transaction{}
			for _, number := range numbers {
				txns, err := h.Accounts.AccountTransactions(ctx, token, number)
				if err != nil {
					return err
				}
				transactions = append(transactions, txns...)
			}
			// Backend dates are ISO-8601, so string order is chronological
			sort.Slice(transactions, func(i, j int) bool {
				return transactions[i].TransactionDate > transactions[j].TransactionDate
			})
			data["Transactions"] = transactions
			return nil
		},
	})
}

// TransactionViewPage shows a single transaction.
// GET /transactions/{id}.
func (h *Handlers) TransactionViewPage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Transaction " + id, PageTitle: "Transaction Details", CurrentPage: PageTransactionView},
		Fetch: func(ctx context.Context, data map[string]any) error {
			txn, err := h.Accounts.Transaction(ctx, AccessTokenFromContext(ctx), id)
			if err != nil {
				return err
			}
			data["Transaction"] = txn
			return nil
		},
	})
}

// moneyFormOpts parameterizes the shared deposit/withdraw flow.
type moneyFormOpts struct {
	Meta    PageMeta
	Toast   string
	Execute func(ctx context.Context, token, number string, amount float64, description string) error
}

// moneyFormPage renders a single-account money form (deposit or withdraw).
func (h *Handlers) moneyFormPage(w http.ResponseWriter, r *http.Request, meta PageMeta) {
	number := r.PathValue("number")
	if number == "" {
		h.NotFound(w, r)
		return
	}

	h.Page(w, r, PageSpec{
		Meta: meta,
		Fetch: func(ctx context.Context, data map[string]any) error {
			account, err := h.Accounts.Account(ctx, AccessTokenFromContext(ctx), number)
			if err != nil {
				return err
			}
			data["Account"] = account
			return nil
		},
	})
}

// handleMoneyForm validates and executes a deposit or withdrawal.
func (h *Handlers) handleMoneyForm(w http.ResponseWriter, r *http.Request, opts moneyFormOpts) {
	number := r.PathValue("number")
	if number == "" {
		h.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	amountRaw := strings.TrimSpace(r.FormValue("amount"))
	description := strings.TrimSpace(r.FormValue("description"))

	fieldErrors := validation.New().
		Validate("amount", amountRaw, validation.Amount("Amount")).
		Validate("description", description, validation.Optional("Description", 200)).
		Errors()

	formData := func(ctx context.Context) map[string]any {
		data := map[string]any{
			"Amount":      amountRaw,
			"Description": description,
		}
		if account, err := h.Accounts.Account(ctx, AccessTokenFromContext(ctx), number); err == nil {
			data["Account"] = account
		}
		return data
	}

	if len(fieldErrors) > 0 {
		RenderError(ErrorOpts{
			W: w, R: r,
			FieldErrors: fieldErrors,
			Renderer:    h.renderPage,
			PageMeta:    opts.Meta,
			Data:        formData(r.Context()),
		})
		return
	}

	amount, _ := strconv.ParseFloat(amountRaw, 64)
	err := opts.Execute(r.Context(), AccessTokenFromContext(r.Context()), number, amount, description)
	if err != nil {
		if h.handleExpiredSession(w, r, err) {
			return
		}
		RenderError(ErrorOpts{
			W: w, R: r,
			Err:      err,
			Renderer: h.renderPage,
			PageMeta: opts.Meta,
			Data:     formData(r.Context()),
		})
		return
	}

	h.redirectWithToast(w, r, "/accounts/"+number, opts.Toast)
}

func depositMeta() PageMeta {
	return PageMeta{Title: "Deposit", PageTitle: "Deposit Funds", CurrentPage: PageDeposit}
}

func withdrawMeta() PageMeta {
	return PageMeta{Title: "Withdraw", PageTitle: "Withdraw Funds", CurrentPage: PageWithdraw}
}

func transferMeta() PageMeta {
	return PageMeta{Title: "Transfer", PageTitle: "Transfer Money", CurrentPage: PageTransfer}
}
