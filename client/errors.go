package client

import (
	"errors"

	apierrors "github.com/DevIBlogistica/frontend-tratativas/client/internal/errors"
)

// ErrorInfo is the normalized {message, code} error every method returns.
type ErrorInfo = apierrors.APIError

// ErrorKind tells whether an ErrorInfo came from the server, from a request
// without response, or from anything else.
type ErrorKind = apierrors.Kind

const (
	KindServer     = apierrors.KindServer
	KindNoResponse = apierrors.KindNoResponse
	KindUnknown    = apierrors.KindUnknown
)

// Codes the client assigns itself.
const (
	CodeUnknown    = apierrors.CodeUnknown
	CodeNoResponse = apierrors.CodeNoResponse
	CodeValidation = apierrors.CodeValidation
)

// AsErrorInfo extracts the *ErrorInfo from err's chain.
func AsErrorInfo(err error) (*ErrorInfo, bool) { return apierrors.As(err) }

// NormalizeError coerces err into an *ErrorInfo. Errors that already carry
// one are returned unchanged; anything else becomes an UNKNOWN_ERROR whose
// message is err.Error(). Nil stays nil.
func NormalizeError(err error) *ErrorInfo { return apierrors.Normalize(err) }

// IsNotFound reports whether err is a 404 answer from the server.
func IsNotFound(err error) bool {
	var e *ErrorInfo
	return errors.As(err, &e) && e.Kind == KindServer && e.StatusCode == 404
}

// IsNoResponse reports whether err means the server never answered.
func IsNoResponse(err error) bool {
	var e *ErrorInfo
	return errors.As(err, &e) && e.Kind == KindNoResponse
}

func newUnknownError(operation string, err error) *ErrorInfo {
	return apierrors.NewUnknownError(operation, err)
}
