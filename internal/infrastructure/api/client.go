package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultMaxResponseSize is the maximum allowed response size from the backend (10MB)
const defaultMaxResponseSize = 10 * 1024 * 1024

const defaultTimeout = 15 * time.Second

// Error is the typed error the backend returns for rejected requests.
// StatusCode 0 means the request never got an HTTP response (network failure).
type Error struct {
	Message    string
	StatusCode int
	ErrCode    string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("api: connection error: %s", e.Message)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// IsNetworkError reports whether the error is a transport-level failure
func (e *Error) IsNetworkError() bool {
	return e.StatusCode == 0
}

// errorBody is the error shape the backend puts in non-2xx responses
type errorBody struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
}

// envelope is the response wrapper every backend endpoint uses
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	CountData  int             `json:"countData,omitempty"`
	Stats      json.RawMessage `json:"stats,omitempty"`
}

// decode unmarshals the envelope's data block into out. A missing data block
// leaves out untouched.
func (e *envelope) decode(out any) error {
	if out == nil || len(e.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return fmt.Errorf("api: failed to parse response data: %w", err)
	}
	return nil
}

// TokenSource supplies the bearer token attached to every request. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Option is a functional option for configuring the client
type Option func(*Client)

// WithHTTPClient sets a custom http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMaxResponseSize caps the bytes read from a response body
func WithMaxResponseSize(n int64) Option {
	return func(c *Client) {
		c.maxResponseSize = n
	}
}

// Client talks to the store backend. It attaches the bearer token from the
// token source, tags every request with an X-Request-ID, and normalizes error
// shapes into *Error.
type Client struct {
	baseURL         string
	httpClient      *http.Client
	tokens          TokenSource
	logger          *zap.Logger
	maxResponseSize int64
}

// NewClient creates a client for the backend at baseURL
func NewClient(baseURL string, tokens TokenSource, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api: invalid base URL %q", baseURL)
	}

	c := &Client{
		baseURL:         u.String(),
		httpClient:      &http.Client{Timeout: defaultTimeout},
		tokens:          tokens,
		logger:          zap.NewNop(),
		maxResponseSize: defaultMaxResponseSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do performs one request against the backend and parses the response
// envelope. body is JSON-encoded when non-nil; extra headers are merged over
// the defaults.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, headers http.Header) (*envelope, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("api: failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for key, values := range headers {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, &Error{Message: err.Error(), StatusCode: 0}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxResponseSize))
	if err != nil {
		return nil, &Error{Message: "failed to read response: " + err.Error(), StatusCode: 0}
	}

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		if err := json.Unmarshal(raw, &eb); err != nil || eb.Message == "" {
			eb.Message = fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
		}
		if eb.StatusCode == 0 {
			eb.StatusCode = resp.StatusCode
		}
		return nil, &Error{Message: eb.Message, StatusCode: eb.StatusCode, ErrCode: eb.Error}
	}

	env := &envelope{StatusCode: resp.StatusCode}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, env); err != nil {
			return nil, fmt.Errorf("api: failed to parse response: %w", err)
		}
	}
	return env, nil
}
