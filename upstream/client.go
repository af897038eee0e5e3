// Package upstream is the thin facade over the core marketplace API. Every
// method performs exactly one HTTP call and returns decoded JSON or an error
// carrying a user-displayable message. No retries, no caching, no batching:
// callers own their loading and error state.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// APIError is an error returned by the core API, carrying the message the UI
// may show the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("core api: %d: %s", e.StatusCode, e.Message)
}

// errorBody is the shape the core API uses for failures.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type tokenKey struct{}

// WithAuthToken stores the caller's bearer token so it is forwarded verbatim
// on every facade call made with this context.
func WithAuthToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// AuthTokenFromContext returns the bearer token stored by WithAuthToken.
func AuthTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Client is the shared HTTP transport for all facade namespaces.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a facade transport against the given core API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

// do performs one request. A non-2xx response is decoded into an APIError;
// when the body carries no usable message a generic fallback is used.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := AuthTokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("core api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		msg := eb.Message
		if msg == "" {
			msg = eb.Error
		}
		if msg == "" {
			msg = "Something went wrong. Please try again."
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode core api response: %w", err)
	}
	return nil
}

// UserMessage extracts a displayable message from any facade error.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Something went wrong. Please try again."
}
