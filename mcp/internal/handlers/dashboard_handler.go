package handlers

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/DevIBlogistica/frontend-tratativas/client"
)

// DashboardHandler exposes the dashboard counters.
type DashboardHandler struct {
	client *client.Client
}

func NewDashboardHandler(c *client.Client) *DashboardHandler { return &DashboardHandler{client: c} }

func (dh *DashboardHandler) RegisterTools(s *server.MCPServer) error {
	stats := mcp.NewTool("get_dashboard_stats",
		mcp.WithDescription("Return total, pending and concluded tratativa counts plus the mean resolution time"),
	)
	s.AddTool(stats, dh.handleGetStats)
	return nil
}

func (dh *DashboardHandler) handleGetStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Debug().Msg("get_dashboard_stats invoked")

	start := time.Now()
	stats, err := dh.client.GetDashboardStats(ctx)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("get_dashboard_stats failed")
		return errorResult("get dashboard stats", err), nil
	}
	return jsonResult(stats)
}
