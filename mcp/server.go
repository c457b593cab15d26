// Package mcp serves the tratativas API as Model Context Protocol tools.
package mcp

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/DevIBlogistica/frontend-tratativas/client"
	"github.com/DevIBlogistica/frontend-tratativas/internal/config"
	"github.com/DevIBlogistica/frontend-tratativas/internal/logger"
	"github.com/DevIBlogistica/frontend-tratativas/mcp/internal/handlers"
)

const (
	shutdownTimeout = 10 * time.Second
	readTimeout     = 5 * time.Second
	idleTimeout     = 120 * time.Second
)

// loadConfig reads the environment, then lets command line flags override it.
func loadConfig(args []string) (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("tratativas-mcp-server", flag.ContinueOnError)
	fs.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "Base URL of the tratativas API")
	fs.StringVar(&cfg.MCPHTTPAddr, "http-addr", cfg.MCPHTTPAddr, "Listen address for the streamable HTTP transport")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func initLogger(cfg *config.Config) {
	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = logger.New(cfg.MCPServerName).With().Caller().Logger()
}

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

// NewServer builds an MCP server exposing every tratativa tool backed by c.
func NewServer(c *client.Client, name, version string) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
	)

	for _, h := range []struct {
		name    string
		handler toolRegisterer
	}{
		{"tratativa", handlers.NewTratativaHandler(c)},
		{"dashboard", handlers.NewDashboardHandler(c)},
	} {
		if err := h.handler.RegisterTools(s); err != nil {
			log.Error().Err(err).Msgf("Failed to register %s tools", h.name)
			return nil, err
		}
	}
	return s, nil
}

// RunMCPServer starts the MCP server over stdio or streamable HTTP and
// blocks until it stops.
func RunMCPServer() error {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	initLogger(cfg)

	log.Info().Str("api_url", cfg.APIURL).Msg("Creating tratativas client")
	c, err := client.New(cfg.APIURL, cfg.ClientOptions()...)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Failed to create client")
		return err
	}
	defer func() { _ = c.Close() }()

	s, err := NewServer(c, cfg.MCPServerName, cfg.MCPServerVersion)
	if err != nil {
		return err
	}

	if shouldUseStdio() {
		// Stdio transport (for desktop hosts, launched processes)
		log.Info().Msg("Starting tratativas MCP server (stdio transport)")
		return server.ServeStdio(s)
	}

	log.Info().Str("addr", cfg.MCPHTTPAddr).Msg("Starting tratativas MCP server (Streamable HTTP)")

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)
	srv := &http.Server{
		Addr:        cfg.MCPHTTPAddr,
		Handler:     streamSrv,
		ReadTimeout: readTimeout,
		// No write deadline: SSE streams stay open.
		WriteTimeout: 0,
		IdleTimeout:  idleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownComplete := make(chan struct{})
	go func() {
		defer close(shutdownComplete)
		<-ctx.Done()
		log.Info().Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during HTTP server shutdown")
		}
		if err := streamSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during MCP server shutdown")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("HTTP server error")
		return err
	}

	<-shutdownComplete
	log.Info().Msg("MCP server shutdown complete")
	return nil
}

// shouldUseStdio determines whether to use stdio transport based on environment
func shouldUseStdio() bool {
	// Force stdio mode with environment variable
	if os.Getenv("MCP_STDIO") == "true" {
		return true
	}

	// Force HTTP mode with environment variable
	if os.Getenv("MCP_HTTP") == "true" {
		return false
	}

	// Auto-detect: Use stdio if stdin is not a terminal (launched by another process)
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}

	// Default to HTTP if detection fails
	return false
}
