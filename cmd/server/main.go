package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Simplici0/ammonia-co2/internal/config"
	"github.com/Simplici0/ammonia-co2/internal/emissions"
	"github.com/Simplici0/ammonia-co2/internal/factors"
	"github.com/Simplici0/ammonia-co2/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	logger := logging.Init(cfg.LogLevel, cfg.LogFormat)
	for _, w := range cfg.Warnings() {
		logger.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	constants, err := loadConstants(ctx, cfg, logger)
	if err != nil {
		return err
	}
	calc, err := emissions.NewCalculator(constants)
	if err != nil {
		return fmt.Errorf("build calculator: %w", err)
	}

	srv, err := newServer(calc, logger)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", "addr", httpServer.Addr, "factors", cfg.FactorsSource)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// loadConstants reads the factor catalogue once at startup.
func loadConstants(ctx context.Context, cfg config.Config, logger *slog.Logger) (emissions.Constants, error) {
	if cfg.FactorsSource == config.FactorsFromBuiltin {
		return emissions.DefaultConstants(), nil
	}
	c, _, err := factors.Bootstrap(ctx, cfg.DBPath, logger)
	if err != nil {
		return emissions.Constants{}, fmt.Errorf("load factor catalogue from %s: %w", cfg.DBPath, err)
	}
	return c, nil
}
