// Package client is the typed SDK for the tratativas REST API.
//
// Every method returns either a decoded value or an *ErrorInfo describing
// a server error, a request that got no response, or an unclassified
// failure. Callers can rely on errors.As(err, new(*ErrorInfo)) for every
// non-nil error.
package client

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/DevIBlogistica/frontend-tratativas/client/internal/api"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL string
	http    *http.Client
	rest    *resty.Client
	apiKey  string // optional bearer token

	retryAttempts int // total attempts for reads; <= 1 disables retry
	retryBase     time.Duration
	retryMax      time.Duration

	closed uint32
}

// ErrClientClosed is returned by every call made after Close.
var ErrClientClosed = errors.New("client closed")

// New constructs a Client for baseURL. Additional options can be provided
// via functional arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("baseURL cannot be empty")
	}

	c := &Client{
		baseURL:   baseURL,
		http:      &http.Client{Timeout: 30 * time.Second},
		retryBase: 200 * time.Millisecond,
		retryMax:  2 * time.Second,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.wrapTransport()

	c.rest = resty.NewWithClient(c.http).
		SetBaseURL(c.baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{})

	return c, nil
}

// wrapTransport installs the request-id and API-key wrappers on top of
// whatever transport the options configured.
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	rt := http.RoundTripper(&requestIDTransport{base: base})
	if c.apiKey != "" {
		rt = &apiKeyTransport{base: rt, apiKey: c.apiKey}
	}
	c.http.Transport = rt
}

// apiKeyTransport wraps an http.RoundTripper to automatically add Authorization header
type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.apiKey)
	return t.base.RoundTrip(cloned)
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// Close marks the client unusable and releases idle connections. Safe to
// call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closed, 0, 1) {
		return nil
	}
	c.http.CloseIdleConnections()
	return nil
}

func (c *Client) checkOpen(operation string) error {
	if atomic.LoadUint32(&c.closed) == 1 {
		return newUnknownError(operation, ErrClientClosed)
	}
	return nil
}

// --------------------------------------------------------------------
// Dashboard
// --------------------------------------------------------------------

// GetDashboardStats returns the dashboard counters (GET /dashboard/stats).
func (c *Client) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	const op = "get dashboard stats"
	if err := c.checkOpen(op); err != nil {
		return nil, err
	}
	return observe(op, func() (*DashboardStats, error) {
		return withRetry(ctx, c, op, func() (*DashboardStats, error) {
			return api.GetDashboardStats(ctx, c.rest)
		})
	})
}

// --------------------------------------------------------------------
// Tratativas
// --------------------------------------------------------------------

// ListTratativas returns every tratativa (GET /tratativas).
func (c *Client) ListTratativas(ctx context.Context) ([]Tratativa, error) {
	const op = "list tratativas"
	if err := c.checkOpen(op); err != nil {
		return nil, err
	}
	return observe(op, func() ([]Tratativa, error) {
		return withRetry(ctx, c, op, func() ([]Tratativa, error) {
			return api.ListTratativas(ctx, c.rest)
		})
	})
}

// GetTratativa retrieves one tratativa (GET /tratativas/{id}).
func (c *Client) GetTratativa(ctx context.Context, id int64) (*Tratativa, error) {
	const op = "get tratativa"
	if err := c.checkOpen(op); err != nil {
		return nil, err
	}
	return observe(op, func() (*Tratativa, error) {
		return withRetry(ctx, c, op, func() (*Tratativa, error) {
			return api.GetTratativa(ctx, c.rest, id)
		})
	})
}

// CreateTratativa creates a tratativa (POST /tratativas). Writes are never
// retried.
func (c *Client) CreateTratativa(ctx context.Context, req CreateTratativaRequest) (*Tratativa, error) {
	const op = "create tratativa"
	if err := c.checkOpen(op); err != nil {
		return nil, err
	}
	return observe(op, func() (*Tratativa, error) {
		return api.CreateTratativa(ctx, c.rest, req)
	})
}

// UpdateTratativa applies a partial update (PATCH /tratativas/{id}).
func (c *Client) UpdateTratativa(ctx context.Context, id int64, req UpdateTratativaRequest) (*Tratativa, error) {
	const op = "update tratativa"
	if err := c.checkOpen(op); err != nil {
		return nil, err
	}
	return observe(op, func() (*Tratativa, error) {
		return api.UpdateTratativa(ctx, c.rest, id, req)
	})
}

// DeleteTratativa deletes a tratativa (DELETE /tratativas/{id}).
func (c *Client) DeleteTratativa(ctx context.Context, id int64) error {
	const op = "delete tratativa"
	if err := c.checkOpen(op); err != nil {
		return err
	}
	_, err := observe(op, func() (struct{}, error) {
		return struct{}{}, api.DeleteTratativa(ctx, c.rest, id)
	})
	return err
}
