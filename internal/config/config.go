package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/DevIBlogistica/frontend-tratativas/client"
)

// Prefix is the environment variable prefix, e.g. TRATATIVAS_API_URL.
const Prefix = "TRATATIVAS"

// Config holds settings shared by the CLI, the MCP server and the mock
// backend. Environment variables are parsed from the TRATATIVAS_ prefix.
type Config struct {
	// API
	APIURL      string        `envconfig:"API_URL" default:"http://localhost:3000"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	RetryMax    int           `envconfig:"RETRY_MAX" default:"0"`
	APIKey      string        `envconfig:"API_KEY" default:""` // optional bearer token

	// Logging
	Debug    bool   `envconfig:"DEBUG" default:"false"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Theme preference file; empty means $HOME/.config/tratativas/preferences.yaml
	ThemeFile string `envconfig:"THEME_FILE" default:""`

	// Mock backend
	MockAddr string `envconfig:"MOCK_ADDR" default:":3000"`

	// MCP server
	MCPServerName    string `envconfig:"MCP_SERVER_NAME" default:"tratativas-mcp-server"`
	MCPServerVersion string `envconfig:"MCP_SERVER_VERSION" default:"0.1.0"`
	MCPHTTPAddr      string `envconfig:"MCP_HTTP_ADDR" default:":3001"`
}

// ResolveDefaults validates values and fills derived ones.
func (c *Config) ResolveDefaults() error {
	c.APIURL = strings.TrimRight(strings.TrimSpace(c.APIURL), "/")
	if c.APIURL == "" {
		return fmt.Errorf("API_URL must not be empty")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	if c.RetryMax < 0 {
		return fmt.Errorf("RETRY_MAX must not be negative, got %d", c.RetryMax)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("unsupported LOG_LEVEL: %s", c.LogLevel)
	}
	if c.ThemeFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve THEME_FILE: %w", err)
		}
		c.ThemeFile = filepath.Join(home, ".config", "tratativas", "preferences.yaml")
	}
	return nil
}

// Level returns the zerolog level to run at; Debug wins over LogLevel.
func (c *Config) Level() zerolog.Level {
	if c.Debug {
		return zerolog.DebugLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// New creates a Config by parsing environment variables prefixed with
// TRATATIVAS_, e.g. TRATATIVAS_API_URL, TRATATIVAS_HTTP_TIMEOUT.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("api_url", cfg.APIURL).
		Dur("http_timeout", cfg.HTTPTimeout).
		Int("retry_max", cfg.RetryMax).
		Bool("api_key_present", cfg.APIKey != "").
		Bool("debug", cfg.Debug).
		Str("log_level", cfg.LogLevel).
		Str("theme_file", cfg.ThemeFile).
		Msg("Configuration loaded")

	return &cfg, nil
}

// ClientOptions translates the API settings into client options.
func (c *Config) ClientOptions() []client.Option {
	opts := []client.Option{
		client.WithHTTPTimeout(c.HTTPTimeout),
		client.WithDebugLogging(c.Debug),
	}
	if c.RetryMax > 0 {
		opts = append(opts, client.WithRetry(c.RetryMax+1))
	}
	if c.APIKey != "" {
		opts = append(opts, client.WithAPIKey(c.APIKey))
	}
	return opts
}

// NewForTesting returns a config with defaults that touch nothing outside dir.
func NewForTesting(dir string) *Config {
	return &Config{
		APIURL:           "http://localhost:3000",
		HTTPTimeout:      5 * time.Second,
		LogLevel:         "debug",
		ThemeFile:        filepath.Join(dir, "preferences.yaml"),
		MockAddr:         "127.0.0.1:0",
		MCPServerName:    "tratativas-mcp-server",
		MCPServerVersion: "test",
		MCPHTTPAddr:      "127.0.0.1:0",
	}
}
