package mockapi

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/DevIBlogistica/frontend-tratativas/client"
)

// Serve runs the mock backend on addr until ctx is cancelled, then shuts it
// down gracefully. seed records are created before the listener opens.
func Serve(ctx context.Context, addr string, log zerolog.Logger, seed ...client.CreateTratativaRequest) error {
	store := NewStore(nil)
	for _, req := range seed {
		store.Create(req)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error().Stack().Err(err).Str("addr", addr).Msg("listen failed")
		return err
	}

	server := &http.Server{
		Handler:           NewRouter(store),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Int("seeded", len(seed)).Msg("mock api listening")
		if err := server.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down mock api")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}
