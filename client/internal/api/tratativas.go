package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	apierrors "github.com/DevIBlogistica/frontend-tratativas/client/internal/errors"
	"github.com/DevIBlogistica/frontend-tratativas/client/internal/types"
)

const (
	collectionPath = "/tratativas"
	itemPath       = "/tratativas/{id}"
)

func idParam(id int64) map[string]string {
	return map[string]string{"id": strconv.FormatInt(id, 10)}
}

// ListTratativas returns every tratativa.
func ListTratativas(ctx context.Context, rc *resty.Client) ([]types.Tratativa, error) {
	var out []types.Tratativa
	if err := do(ctx, rc, "list tratativas", http.MethodGet, collectionPath, nil, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []types.Tratativa{}
	}
	return out, nil
}

// GetTratativa retrieves a tratativa by id.
func GetTratativa(ctx context.Context, rc *resty.Client, id int64) (*types.Tratativa, error) {
	const op = "get tratativa"
	if err := types.ValidateID(id); err != nil {
		return nil, apierrors.NewValidationError(op, err)
	}
	var t types.Tratativa
	if err := do(ctx, rc, op, http.MethodGet, itemPath, idParam(id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTratativa creates a tratativa. The backend assigns id, status and
// both timestamps.
func CreateTratativa(ctx context.Context, rc *resty.Client, req types.CreateTratativaRequest) (*types.Tratativa, error) {
	const op = "create tratativa"
	if err := types.ValidateCreate(req); err != nil {
		return nil, apierrors.NewValidationError(op, err)
	}
	var t types.Tratativa
	if err := do(ctx, rc, op, http.MethodPost, collectionPath, nil, req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTratativa applies a partial update and returns the stored record.
func UpdateTratativa(ctx context.Context, rc *resty.Client, id int64, req types.UpdateTratativaRequest) (*types.Tratativa, error) {
	const op = "update tratativa"
	if err := types.ValidateID(id); err != nil {
		return nil, apierrors.NewValidationError(op, err)
	}
	if err := types.ValidateUpdate(req); err != nil {
		return nil, apierrors.NewValidationError(op, err)
	}
	var t types.Tratativa
	if err := do(ctx, rc, op, http.MethodPatch, itemPath, idParam(id), req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTratativa deletes a tratativa. Any 2xx is success.
func DeleteTratativa(ctx context.Context, rc *resty.Client, id int64) error {
	const op = "delete tratativa"
	if err := types.ValidateID(id); err != nil {
		return apierrors.NewValidationError(op, err)
	}
	return do(ctx, rc, op, http.MethodDelete, itemPath, idParam(id), nil, nil)
}
