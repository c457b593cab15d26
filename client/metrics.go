package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apierrors "github.com/DevIBlogistica/frontend-tratativas/client/internal/errors"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tratativas_client",
			Name:      "requests_total",
			Help:      "API calls by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tratativas_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of API calls including retries.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	retriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tratativas_client",
			Name:      "retries_total",
			Help:      "Read requests sent again after a retryable failure.",
		},
		[]string{"operation"},
	)
)

// outcome maps a call result to the requests_total outcome label.
func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if apiErr, ok := apierrors.As(err); ok {
		return apiErr.Kind.String()
	}
	return apierrors.KindUnknown.String()
}

// observe times fn and records its outcome.
func observe[T any](operation string, fn func() (T, error)) (T, error) {
	start := time.Now()
	v, err := fn()
	requestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(operation, outcome(err)).Inc()
	return v, err
}
