package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/agentstation/tablesync/pkg/constants"
	"github.com/agentstation/tablesync/pkg/errors"
	"github.com/agentstation/tablesync/pkg/logging"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client provides HTTP client functionality with authentication.
type Client struct {
	http      *http.Client
	auth      Authenticator
	secret    string
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the request timeout. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a new transport client that authenticates with auth and secret.
func New(auth Authenticator, secret string, opts ...Option) *Client {
	if auth == nil {
		auth = &NoAuth{}
	}
	c := &Client{
		http:   &http.Client{Timeout: DefaultHTTPTimeout},
		auth:   auth,
		secret: secret,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DoWithContext performs an HTTP request with authentication applied and context support.
func (c *Client) DoWithContext(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)
	if c.secret != "" {
		c.auth.Apply(req, c.secret)
	}

	// Set common headers
	req.Header.Set("Accept", "application/json")
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	logging.FromContext(ctx).Debug().
		Str("method", req.Method).
		Str("url", req.URL.Redacted()).
		Msg("sending request")

	return c.http.Do(req)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	return c.DoWithContext(ctx, req)
}

// PutJSON encodes payload as JSON and sends it with a PUT request.
func (c *Client) PutJSON(ctx context.Context, url string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WrapResource("encode", "payload", url, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WrapResource("create", "request", "PUT "+url, err)
	}
	return c.DoWithContext(ctx, req)
}

// drain discards what is left of resp.Body and closes it.
func drain(ctx context.Context, resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	if err := resp.Body.Close(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to close response body")
	}
}
