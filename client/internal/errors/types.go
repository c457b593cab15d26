// Package errors defines the uniform error shape the client SDK hands to
// callers, and the classification used to decide whether a failed request
// may be retried.
package errors

import (
	"errors"
	"fmt"
)

// Kind tells where in the request lifecycle an error happened.
type Kind int

const (
	// KindServer means the server answered with a non-success status.
	KindServer Kind = iota
	// KindNoResponse means the request was sent but no response arrived
	// (network failure, timeout).
	KindNoResponse
	// KindUnknown covers everything else, including failures before dispatch.
	KindUnknown
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindServer:
		return "ServerError"
	case KindNoResponse:
		return "NoResponseError"
	case KindUnknown:
		return "UnknownError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Codes set by the client itself. Server errors carry whatever code the
// backend sent, possibly none.
const (
	CodeUnknown    = "UNKNOWN_ERROR"
	CodeNoResponse = "SERVER_NO_RESPONSE"
	CodeValidation = "VALIDATION_ERROR"
)

// User-facing messages for the cases where the backend supplies none.
const (
	MessageUnknown    = "Ocorreu um erro inesperado"
	MessageNoResponse = "Servidor não respondeu à requisição"
	MessageRequest    = "Erro na requisição"
)

// APIError is the normalized {message, code} error shape. Kind, StatusCode
// and Underlying are extra context and are not serialized.
type APIError struct {
	Message    string `json:"message"`
	Code       string `json:"code,omitempty"`
	Kind       Kind   `json:"-"`
	StatusCode int    `json:"-"` // 0 unless Kind is KindServer
	Underlying error  `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case e.StatusCode > 0 && e.Code != "":
		return fmt.Sprintf("[%s] HTTP %d %s: %s", e.Kind, e.StatusCode, e.Code, e.Message)
	case e.StatusCode > 0:
		return fmt.Sprintf("[%s] HTTP %d: %s", e.Kind, e.StatusCode, e.Message)
	case e.Code != "":
		return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Code, e.Message)
	default:
		return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	}
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *APIError) Unwrap() error {
	return e.Underlying
}

// Retryable reports whether the same request may succeed if sent again.
// No-response failures and 408/429/5xx answers are retryable; other 4xx and
// anything that never left the client are not.
func (e *APIError) Retryable() bool {
	switch e.Kind {
	case KindNoResponse:
		return true
	case KindServer:
		switch {
		case e.StatusCode == 408, e.StatusCode == 429:
			return true
		case e.StatusCode >= 500 && e.StatusCode < 600:
			return true
		}
	}
	return false
}

// As extracts an *APIError from err's chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
