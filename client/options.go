package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the request-id and API-key wrappers are
// installed, so transport-related options (like debug logging) end up
// underneath them.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse bound on a single HTTP request. A request that hits it is reported
// as a no-response error. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. hc is copied, and the
// copy's Transport is wrapped, not replaced, so test doubles keep working and
// hc can be reused for other clients.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments as it increases
// verbosity and may include headers and bodies in logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if _, already := c.http.Transport.(*debugTransport); enabled && !already {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithAPIKey sends "Authorization: Bearer <key>" on every request.
func WithAPIKey(key string) Option {
	return func(c *Client) error {
		if key == "" {
			return fmt.Errorf("api key cannot be empty")
		}
		c.apiKey = key
		return nil
	}
}

// WithRetry enables exponential backoff for read operations. attempts is
// the total number of tries including the first; 0 or 1 keeps the default
// single attempt. Only no-response errors and 408/429/5xx answers are
// retried, and writes are never retried.
func WithRetry(attempts int) Option {
	return func(c *Client) error {
		if attempts < 0 {
			return fmt.Errorf("retry attempts must be >= 0")
		}
		c.retryAttempts = attempts
		return nil
	}
}

// WithRetryBackoff tunes the initial and maximum backoff interval used by
// WithRetry.
func WithRetryBackoff(initial, max time.Duration) Option {
	return func(c *Client) error {
		if initial <= 0 || max < initial {
			return fmt.Errorf("invalid retry backoff %s..%s", initial, max)
		}
		c.retryBase = initial
		c.retryMax = max
		return nil
	}
}
