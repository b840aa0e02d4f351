package gateway

// Package gateway implements the HTTP client layer for the backend
// services. It owns request construction, bearer-token injection,
// response decoding, and the error taxonomy; the typed clients in the
// authapi and accountapi subpackages build on it.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// maxResponseBytes caps how much of a backend response we read.
const maxResponseBytes = 1 << 20

// Client is a JSON HTTP client bound to one backend base URL.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpc = hc }
}

// WithLogger sets the logger used for request logging.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a client for the given base URL (no trailing slash).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return slog.Default()
}

// envelope is the wrapper the account service puts around every payload.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Do performs a JSON request and decodes the bare response body into out.
// A non-empty token is sent as a bearer credential. out may be nil when the
// caller does not care about the body.
func (c *Client) Do(ctx context.Context, method, path, token string, body, out any) error {
	raw, err := c.roundTrip(ctx, method, path, token, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// DoEnveloped performs a JSON request against an endpoint that wraps its
// payload in a {success, message, data} envelope and decodes the data field
// into out. A null or absent data field leaves out untouched, so callers can
// pre-seed empty collections. A success=false envelope on a 2xx status is
// reported as an APIError carrying the backend message.
func (c *Client) DoEnveloped(ctx context.Context, method, path, token string, body, out any) error {
	raw, err := c.roundTrip(ctx, method, path, token, body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode %s %s envelope: %w", method, path, err)
	}
	if !env.Success {
		return &APIError{Status: http.StatusOK, Message: env.Message}
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s %s data: %w", method, path, err)
	}
	return nil
}

// roundTrip executes the request and returns the raw body for 2xx
// responses. Error statuses are mapped onto the package error taxonomy.
func (c *Client) roundTrip(ctx context.Context, method, path, token string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	res, err := c.httpc.Do(req)
	if err != nil {
		c.logger().Warn("backend request failed",
			"method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	c.logger().Debug("backend request",
		"method", method,
		"path", path,
		"status", res.StatusCode,
		"duration", time.Since(start))

	if res.StatusCode >= 400 {
		return nil, c.statusError(method, path, token, res.StatusCode, raw)
	}
	return raw, nil
}

// statusError maps an error status onto the taxonomy. A 401 on an
// authenticated request means the bearer token was rejected; everything
// else becomes an APIError with the backend message when one was sent.
func (c *Client) statusError(method, path, token string, status int, raw []byte) error {
	msg := extractMessage(raw)

	if status == http.StatusUnauthorized && token != "" {
		c.logger().Info("bearer token rejected", "method", method, "path", path)
		return ErrUnauthorized
	}
	return &APIError{Status: status, Message: msg}
}

// extractMessage pulls the human-readable message out of an error body.
// Both backends use a top-level "message" field; anything else yields "".
func extractMessage(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return payload.Message
}
