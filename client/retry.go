package client

import (
	"context"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	apierrors "github.com/DevIBlogistica/frontend-tratativas/client/internal/errors"
)

// withRetry runs fn once, or with exponential backoff when the client was
// built with WithRetry. Only retryable *ErrorInfo failures are tried again.
func withRetry[T any](ctx context.Context, c *Client, operation string, fn func() (T, error)) (T, error) {
	if c.retryAttempts <= 1 {
		return fn()
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.retryBase
	exp.Multiplier = 2
	exp.MaxInterval = c.retryMax
	exp.MaxElapsedTime = 0
	exp.Reset()
	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(c.retryAttempts-1)), ctx)

	var (
		out     T
		attempt int
		lastErr error
	)
	err := backoff.Retry(func() error {
		attempt++
		v, err := fn()
		if err == nil {
			out = v
			return nil
		}
		lastErr = err
		if apiErr, ok := apierrors.As(err); ok && apiErr.Retryable() {
			log.Debug().Err(err).Str("operation", operation).Int("attempt", attempt).Msg("retrying request")
			retriesTotal.WithLabelValues(operation).Inc()
			return err
		}
		return backoff.Permanent(err)
	}, policy)
	if err == nil {
		return out, nil
	}

	// Context cancellation surfaces as a bare ctx error; report the last
	// request failure instead so callers always see the uniform shape.
	if _, ok := apierrors.As(err); !ok {
		if lastErr != nil {
			err = lastErr
		}
		err = apierrors.Normalize(err)
	}
	var zero T
	return zero, err
}
