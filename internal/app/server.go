package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/heartmarshall/katas-backend/internal/config"
	"github.com/heartmarshall/katas-backend/internal/transport/middleware"
	"github.com/heartmarshall/katas-backend/internal/transport/rest"
)

// NewHandler assembles the REST routes and middleware stack. The returned
// stop function releases background resources and must be called on shutdown.
func NewHandler(cfg *config.Config, logger *slog.Logger, c *Components) (http.Handler, func()) {
	healthHandler := rest.NewHealthHandler(BuildVersion())
	dictionaryHandler := rest.NewDictionaryHandler(c.Glossary, logger)
	shoppingHandler := rest.NewShoppingHandler(c.Shopping, logger)
	wordsHandler := rest.NewWordsHandler(logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /dictionary/{word}", dictionaryHandler.Lookup)
	mux.HandleFunc("PUT /dictionary/{word}", dictionaryHandler.Define)
	mux.HandleFunc("POST /shopping", shoppingHandler.Total)
	mux.HandleFunc("POST /words", wordsHandler.Pick)

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}

	stop := func() {}
	if !cfg.RateLimit.Disabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.CleanupInterval)
		mws = append(mws, rl.Middleware())
		stop = rl.Stop
	}

	return middleware.Chain(mws...)(mux), stop
}

// Serve runs srv on ln until ctx is cancelled, then shuts it down gracefully
// within cfg.ShutdownTimeout.
func Serve(ctx context.Context, srv *http.Server, ln net.Listener, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	logger.Info("http server listening", slog.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server", slog.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
