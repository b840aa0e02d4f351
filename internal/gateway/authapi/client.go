package authapi

// Package authapi is the typed client for the auth service. Its endpoints
// return bare JSON payloads (no response envelope).

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bankingapplication/bank-ui/internal/domain/model"
	"github.com/bankingapplication/bank-ui/internal/gateway"
	"github.com/bankingapplication/bank-ui/internal/ports"
)

// Client talks to the auth service.
type Client struct {
	gw *gateway.Client
}

var _ ports.AuthAPI = (*Client)(nil)

// New creates an auth service client on top of a gateway client.
func New(gw *gateway.Client) *Client {
	return &Client{gw: gw}
}

func (c *Client) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	var out model.AuthResponse
	if err := c.gw.Do(ctx, http.MethodPost, "/auth/login", "", req, &out); err != nil {
		return model.AuthResponse{}, err
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	var out model.AuthResponse
	if err := c.gw.Do(ctx, http.MethodPost, "/auth/register", "", req, &out); err != nil {
		return model.AuthResponse{}, err
	}
	return out, nil
}

func (c *Client) Me(ctx context.Context, token string) (model.UserResponse, error) {
	var out model.UserResponse
	if err := c.gw.Do(ctx, http.MethodGet, "/users/me", token, nil, &out); err != nil {
		return model.UserResponse{}, err
	}
	return out, nil
}

func (c *Client) GetUser(ctx context.Context, token, username string) (model.UserResponse, error) {
	var out model.UserResponse
	if err := c.gw.Do(ctx, http.MethodGet, userPath(username), token, nil, &out); err != nil {
		return model.UserResponse{}, err
	}
	return out, nil
}

func (c *Client) UpdateUser(ctx context.Context, token, username string, req model.UserUpdateRequest) (model.UserResponse, error) {
	var out model.UserResponse
	if err := c.gw.Do(ctx, http.MethodPut, userPath(username), token, req, &out); err != nil {
		return model.UserResponse{}, err
	}
	return out, nil
}

func (c *Client) ListUsers(ctx context.Context, token string) ([]model.UserResponse, error) {
	out := []model.UserResponse{}
	if err := c.gw.Do(ctx, http.MethodGet, "/users", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateUser(ctx context.Context, token string, req model.UserCreationRequest) (model.UserResponse, error) {
	var out model.UserResponse
	if err := c.gw.Do(ctx, http.MethodPost, "/users", token, req, &out); err != nil {
		return model.UserResponse{}, err
	}
	return out, nil
}

func (c *Client) DeleteUser(ctx context.Context, token, username string) error {
	return c.gw.Do(ctx, http.MethodDelete, userPath(username), token, nil, nil)
}

func (c *Client) SetUserActive(ctx context.Context, token, username string, active bool) error {
	action := "/deactivate"
	if active {
		action = "/activate"
	}
	return c.gw.Do(ctx, http.MethodPatch, userPath(username)+action, token, nil, nil)
}

func userPath(username string) string {
	return "/users/" + url.PathEscape(username)
}
