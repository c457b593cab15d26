package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// serverBody is the error payload the backend sends. code is decoded
// loosely because some backends send it as a number.
type serverBody struct {
	Message string `json:"message"`
	Code    any    `json:"code"`
}

// NewServerError builds the error for a response with a non-success status.
// The message and code come from the JSON body when present.
func NewServerError(operation string, statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		Message:    MessageRequest,
		Kind:       KindServer,
		StatusCode: statusCode,
		Underlying: fmt.Errorf("%s failed: HTTP %d", operation, statusCode),
	}
	var sb serverBody
	if len(body) > 0 && json.Unmarshal(body, &sb) == nil {
		if sb.Message != "" {
			apiErr.Message = sb.Message
		}
		apiErr.Code = codeString(sb.Code)
	}
	return apiErr
}

// NewNoResponseError builds the error for a request that got no answer.
func NewNoResponseError(operation string, err error) *APIError {
	return &APIError{
		Message:    MessageNoResponse,
		Code:       CodeNoResponse,
		Kind:       KindNoResponse,
		Underlying: fmt.Errorf("%s network error: %w", operation, err),
	}
}

// NewUnknownError builds the catch-all error.
func NewUnknownError(operation string, err error) *APIError {
	return &APIError{
		Message:    MessageUnknown,
		Code:       CodeUnknown,
		Kind:       KindUnknown,
		Underlying: fmt.Errorf("%s: %w", operation, err),
	}
}

// NewValidationError reports a request rejected before dispatch.
func NewValidationError(operation string, err error) *APIError {
	return &APIError{
		Message:    err.Error(),
		Code:       CodeValidation,
		Kind:       KindUnknown,
		Underlying: fmt.Errorf("%s: %w", operation, err),
	}
}

// FromTransport classifies an error returned while performing a request.
// Errors that already are *APIError pass through; transport failures after
// dispatch become no-response errors; the rest are unknown.
func FromTransport(operation string, err error) *APIError {
	if err == nil {
		return nil
	}
	if apiErr, ok := As(err); ok {
		return apiErr
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Op != "parse" {
		return NewNoResponseError(operation, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewNoResponseError(operation, err)
	}
	return NewUnknownError(operation, err)
}

// Normalize coerces any error into the uniform shape without further
// validation of its contents.
func Normalize(err error) *APIError {
	if err == nil {
		return nil
	}
	if apiErr, ok := As(err); ok {
		return apiErr
	}
	return &APIError{
		Message:    err.Error(),
		Code:       CodeUnknown,
		Kind:       KindUnknown,
		Underlying: err,
	}
}

func codeString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(c)
	default:
		return fmt.Sprint(c)
	}
}
