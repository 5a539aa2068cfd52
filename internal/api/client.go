package api

// client.go wraps HTTP access to the bookshelf backend: base URL handling,
// header construction, bearer token injection, and envelope decoding.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookshelf/internal/session"
)

// Envelope is the uniform response wrapper every backend endpoint uses.
type Envelope[T any] struct {
	Data       T      `json:"data"`
	Message    string `json:"message"`
	Path       string `json:"path"`
	Status     bool   `json:"status"`
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
}

// Error is a failure reported by the backend. Message is the server-provided
// message when the response body parsed, otherwise a synthesized one.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client performs requests against a fixed base URL. The token is resolved
// from the session store on every call, so a token written moments earlier by
// a sign-in is visible to the next request with no propagation step.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     session.Store
	logger     *zap.Logger
}

func NewClient(baseURL string, tokens session.Store, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		tokens: tokens,
		logger: logger,
	}
}

// SetTimeout overrides the transport timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.httpClient.Timeout = d
}

func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Get(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network-level failure, propagated as-is.
		c.logger.Debug("api request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("api response",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newError(resp.StatusCode, raw)
	}
	return raw, nil
}

// newError prefers the server-provided message when the body parses as an
// envelope, and synthesizes one otherwise.
func newError(statusCode int, raw []byte) *Error {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
		return &Error{StatusCode: statusCode, Message: envelope.Message}
	}
	return &Error{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("Request failed with status %d", statusCode),
	}
}

func decode[T any](raw []byte) (*Envelope[T], error) {
	var result Envelope[T]
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

// Get issues a GET request and decodes the envelope.
func Get[T any](ctx context.Context, c *Client, path string) (*Envelope[T], error) {
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decode[T](raw)
}

// Post issues a POST request with a JSON body and decodes the envelope.
func Post[T any](ctx context.Context, c *Client, path string, body any) (*Envelope[T], error) {
	raw, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}
	return decode[T](raw)
}

// Patch issues a PATCH request with a JSON body and decodes the envelope.
func Patch[T any](ctx context.Context, c *Client, path string, body any) (*Envelope[T], error) {
	raw, err := c.do(ctx, http.MethodPatch, path, body)
	if err != nil {
		return nil, err
	}
	return decode[T](raw)
}

// Delete issues a DELETE request and decodes the envelope.
func Delete[T any](ctx context.Context, c *Client, path string) (*Envelope[T], error) {
	raw, err := c.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return nil, err
	}
	return decode[T](raw)
}
