package api

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"

	apierrors "github.com/DevIBlogistica/frontend-tratativas/client/internal/errors"
)

// do sends one request through rc and decodes a JSON success body into out
// when out is non-nil. Every failure comes back as *apierrors.APIError.
//
// Note: Content-Type and the base URL are configured on rc by the caller.
func do(ctx context.Context, rc *resty.Client, operation, method, path string, pathParams map[string]string, body, out any) error {
	if err := ctx.Err(); err != nil {
		return apierrors.NewUnknownError(operation, err)
	}

	req := rc.R().SetContext(ctx)
	if len(pathParams) > 0 {
		req.SetPathParams(pathParams)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return apierrors.FromTransport(operation, err)
	}
	if !resp.IsSuccess() {
		return apierrors.NewServerError(operation, resp.StatusCode(), resp.Body())
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return apierrors.NewUnknownError(operation, err)
	}
	return nil
}
