package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/DevIBlogistica/frontend-tratativas/async"
	"github.com/DevIBlogistica/frontend-tratativas/client"
	"github.com/DevIBlogistica/frontend-tratativas/internal/config"
	"github.com/DevIBlogistica/frontend-tratativas/notify"
	"github.com/DevIBlogistica/frontend-tratativas/theme"
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// app carries what every sub-command shares.
type app struct {
	apiURL    string
	themeFile string
	debug     bool
	asJSON    bool

	cfg    *config.Config
	center *notify.Center
	system func() theme.SystemSource
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{
		center: notify.Default(),
		system: func() theme.SystemSource { return theme.NewTerminalSource(0) },
	})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tratativas",
		Short:         "Manage tratativas from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Initialize logger
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			cfg, err := config.New()
			if err != nil {
				return err
			}
			// Flags override the environment.
			if a.apiURL != "" {
				cfg.APIURL = a.apiURL
			}
			if a.themeFile != "" {
				cfg.ThemeFile = a.themeFile
			}
			if a.debug {
				cfg.Debug = true
			}
			zerolog.SetGlobalLevel(cfg.Level())
			log.Debug().Str("api_url", cfg.APIURL).Msg("debug logging enabled")
			a.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "Base URL of the tratativas API (default $TRATATIVAS_API_URL or http://localhost:3000)")
	rootCmd.PersistentFlags().StringVar(&a.themeFile, "theme-file", "", "Preferences file holding the theme (default $TRATATIVAS_THEME_FILE)")
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&a.asJSON, "json", false, "Print results as JSON")

	// Sub-commands
	rootCmd.AddCommand(newDashboardCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newGetCmd(a))
	rootCmd.AddCommand(newCreateCmd(a))
	rootCmd.AddCommand(newUpdateCmd(a))
	rootCmd.AddCommand(newDeleteCmd(a))
	rootCmd.AddCommand(newThemeCmd(a))

	return rootCmd
}

func (a *app) newClient() (*client.Client, error) {
	return client.New(a.cfg.APIURL, a.cfg.ClientOptions()...)
}

// preference opens the persisted theme. withSystem attaches the terminal
// color-scheme signal, which only the theme commands need.
func (a *app) preference(withSystem bool) (*theme.Preference, error) {
	var src theme.SystemSource
	if withSystem && a.system != nil {
		src = a.system()
	}
	return theme.New(theme.NewFileStore(a.cfg.ThemeFile), theme.NewDocument(), src)
}

// palette returns the styles for the persisted theme, falling back to the
// default theme when the preferences file cannot be used.
func (a *app) palette() theme.Palette {
	pref, err := a.preference(false)
	if err != nil {
		log.Warn().Err(err).Str("theme_file", a.cfg.ThemeFile).Msg("using default theme")
		return theme.PaletteFor(theme.Default)
	}
	defer pref.Close()
	return theme.PaletteFor(pref.Theme())
}

// hooks returns async hooks that report the outcome through the
// notification center.
func hooks[R any](a *app, success string) async.Hooks[R] {
	return async.Hooks[R]{
		OnSuccess: func(R) {
			if success != "" {
				a.center.Success(success)
			}
		},
		OnError: func(e *client.ErrorInfo) {
			a.center.Error(e.Message)
		},
	}
}

// failure turns a failed async state into the command's error.
func failure[T any](s *async.State[T]) error {
	if e := s.Error.Get(); e != nil {
		return e
	}
	return errors.New("operation failed")
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func elapsedSince(start time.Time) time.Duration { return time.Since(start).Round(time.Millisecond) }
