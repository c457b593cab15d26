package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// newTestClient starts srv and returns a resty client pointed at it.
func newTestClient(t *testing.T, h http.Handler) *resty.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return resty.NewWithClient(srv.Client()).
		SetBaseURL(srv.URL).
		SetHeader("Content-Type", "application/json")
}

// newOfflineClient returns a resty client whose transport always fails.
func newOfflineClient() *resty.Client {
	return resty.NewWithClient(&http.Client{Transport: &errRT{}}).
		SetBaseURL("http://offline.invalid")
}
