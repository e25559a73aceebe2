package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"circulation/internal/account"
	"circulation/internal/app"
	"circulation/internal/catalog"
	"circulation/internal/config"
	"circulation/internal/fine"
	"circulation/internal/httpx"
	"circulation/internal/ingest"
	"circulation/internal/loan"
	"circulation/internal/platform/logging"
	"circulation/internal/platform/postgres"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(true)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Open(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()
	logger.Info("database connection OK", "dsn", config.RedactDSN(cfg.DSN))

	a := app.New(pool, cfg, nil, logger)
	h := handlers{
		catalog:  catalog.NewHTTPHandler(a.Catalog, logger),
		loans:    loan.NewHTTPHandler(a.Loans, logger),
		fines:    fine.NewHTTPHandler(a.Fines, logger),
		accounts: account.NewHTTPHandler(a.Accounts, a.Loans, a.Fines, cfg.JWTSecret, cfg.JWTTTL, logger),
		importer: ingest.NewHTTPHandler(a.Importer, logger),
	}

	limiter := httpx.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustProxy)
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newRouter(h, cfg, pool, a.Accounts, limiter, logger),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	sweeper := fine.NewSweeper(a.Fines, cfg.FineSweepInterval, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", "addr", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down server")
		return httpServer.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return sweeper.Run(gctx)
	})
	g.Go(func() error {
		return limiter.Run(gctx)
	})

	return g.Wait()
}
