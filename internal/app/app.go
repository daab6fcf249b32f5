package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/heartmarshall/katas-backend/internal/config"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, builds the services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	components, err := NewComponents(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("components ready",
		slog.Int("glossary_terms", components.Glossary.Len()),
		slog.Int("priced_items", len(cfg.Shopping.Prices)),
		slog.Float64("tax_rate", cfg.Shopping.TaxRate),
	)

	handler, stop := NewHandler(cfg, logger, components)
	defer stop()

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ln, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.Addr(), err)
	}

	return Serve(ctx, srv, ln, cfg.Server, logger)
}
