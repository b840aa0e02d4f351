package accountapi

// Package accountapi is the typed client for the account service. Every
// endpoint wraps its payload in a {success, message, data} envelope;
// collection endpoints default to empty slices when data is null.

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bankingapplication/bank-ui/internal/domain/model"
	"github.com/bankingapplication/bank-ui/internal/gateway"
	"github.com/bankingapplication/bank-ui/internal/ports"
)

// Client talks to the account service.
type Client struct {
	gw *gateway.Client
}

var _ ports.AccountAPI = (*Client)(nil)

// New creates an account service client on top of a gateway client.
func New(gw *gateway.Client) *Client {
	return &Client{gw: gw}
}

func (c *Client) MyAccounts(ctx context.Context, token string) ([]model.Account, error) {
	out := []model.Account{}
	if err := c.gw.DoEnveloped(ctx, http.MethodGet, "/accounts/my-accounts", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Account(ctx context.Context, token, number string) (model.Account, error) {
	var out model.Account
	if err := c.gw.DoEnveloped(ctx, http.MethodGet, accountPath(number), token, nil, &out); err != nil {
		return model.Account{}, err
	}
	return out, nil
}

func (c *Client) CreateAccount(ctx context.Context, token string, req model.AccountCreationRequest) (model.Account, error) {
	var out model.Account
	if err := c.gw.DoEnveloped(ctx, http.MethodPost, "/accounts/my-account", token, req, &out); err != nil {
		return model.Account{}, err
	}
	return out, nil
}

func (c *Client) AccountTypes(ctx context.Context) ([]string, error) {
	out := []string{}
	if err := c.gw.DoEnveloped(ctx, http.MethodGet, "/accounts/public/account-types", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Deposit(ctx context.Context, token string, req model.DepositRequest) (model.Transaction, error) {
	var out model.Transaction
	if err := c.gw.DoEnveloped(ctx, http.MethodPost, "/transactions/deposit", token, req, &out); err != nil {
		return model.Transaction{}, err
	}
	return out, nil
}

func (c *Client) Withdraw(ctx context.Context, token string, req model.WithdrawRequest) (model.Transaction, error) {
	var out model.Transaction
	if err := c.gw.DoEnveloped(ctx, http.MethodPost, "/transactions/withdraw", token, req, &out); err != nil {
		return model.Transaction{}, err
	}
	return out, nil
}

func (c *Client) Transfer(ctx context.Context, token string, req model.TransferRequest) (model.Transaction, error) {
	var out model.Transaction
	if err := c.gw.DoEnveloped(ctx, http.MethodPost, "/transactions/transfer", token, req, &out); err != nil {
		return model.Transaction{}, err
	}
	return out, nil
}

func (c *Client) AccountTransactions(ctx context.Context, token, number string) ([]model.Transaction, error) {
	out := []model.Transaction{}
	path := "/transactions/account/" + url.PathEscape(number)
	if err := c.gw.DoEnveloped(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Transaction(ctx context.Context, token, id string) (model.Transaction, error) {
	var out model.Transaction
	if err := c.gw.DoEnveloped(ctx, http.MethodGet, "/transactions/"+url.PathEscape(id), token, nil, &out); err != nil {
		return model.Transaction{}, err
	}
	return out, nil
}

func (c *Client) AllAccounts(ctx context.Context, token string) ([]model.Account, error) {
	out := []model.Account{}
	if err := c.gw.DoEnveloped(ctx, http.MethodGet, "/accounts/all", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SetAccountStatus(ctx context.Context, token, number string, active bool) (model.Account, error) {
	var out model.Account
	path := accountPath(number) + "/status?isActive=" + strconv.FormatBool(active)
	if err := c.gw.DoEnveloped(ctx, http.MethodPut, path, token, nil, &out); err != nil {
		return model.Account{}, err
	}
	return out, nil
}

func accountPath(number string) string {
	return "/accounts/" + url.PathEscape(number)
}
