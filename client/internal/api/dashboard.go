package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/DevIBlogistica/frontend-tratativas/client/internal/types"
)

// GetDashboardStats fetches the aggregate counters.
func GetDashboardStats(ctx context.Context, rc *resty.Client) (*types.DashboardStats, error) {
	var stats types.DashboardStats
	if err := do(ctx, rc, "get dashboard stats", http.MethodGet, "/dashboard/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
