package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSource supplies the bearer token attached to authenticated
// requests. The second return value is false when no session exists.
type TokenSource interface {
	Token() (string, bool)
}

// Client issues requests against the backend REST API. It normalizes
// every failure into *Error so callers can display a single message.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client for the given base URL. The token source is
// injected explicitly; the client never reads session state from
// anywhere ambient.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorBody is the error shape the backend returns for failed requests.
type errorBody struct {
	Message string `json:"Message"`
}

// do performs one request. Body (if non-nil) is JSON-encoded; a 2xx
// response body is decoded into out (if non-nil). Any failure comes
// back as *Error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	// Request ID for correlating client logs with backend logs.
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return &Error{Status: 0, Message: genericMessage(0)}
	}
	defer resp.Body.Close()

	slog.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		slog.Error("malformed response body", "method", method, "path", path, "request_id", requestID, "error", err)
		return &Error{Status: resp.StatusCode, Message: "the server returned an unreadable response"}
	}
	return nil
}

// errorFromResponse decodes the backend's {Message} error shape,
// falling back to a generic message per status class.
func (c *Client) errorFromResponse(resp *http.Response) *Error {
	apiErr := &Error{Status: resp.StatusCode}

	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	} else {
		apiErr.Message = genericMessage(resp.StatusCode)
	}
	return apiErr
}
