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

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/kasir/internal/auth"
	"github.com/mmynk/kasir/internal/config"
	"github.com/mmynk/kasir/internal/metrics"
	"github.com/mmynk/kasir/internal/money"
	"github.com/mmynk/kasir/internal/storage"
	"github.com/mmynk/kasir/internal/storage/postgres"
	"github.com/mmynk/kasir/internal/storage/sqlite"
	"github.com/mmynk/kasir/internal/till"
	"github.com/mmynk/kasir/pkg/logging"
)

const (
	shutdownTimeout   = 5 * time.Second
	tillSweepInterval = time.Minute
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env", os.Args[1:])
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.Setup(os.Stderr, level)
	if cfg.DevSecret() {
		slog.Warn("JWT_SECRET is not set, using the development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	formatter, err := money.NewFormatter(cfg.Locale, cfg.CurrencyPrefix)
	if err != nil {
		return fmt.Errorf("failed to create formatter: %w", err)
	}

	m := metrics.New()
	registry := till.NewRegistry(till.Options{
		ProcessingDelay: cfg.ProcessingDelay,
		SuccessDelay:    cfg.SuccessDelay,
		Formatter:       formatter,
		Observer:        m,
		IdleTimeout:     cfg.TillIdleTimeout,
	})
	if cfg.TillIdleTimeout > 0 {
		go registry.Run(ctx, tillSweepInterval)
	}
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	handler := newRouter(deps{
		store:         store,
		registry:      registry,
		authenticator: auth.NewPasswordAuthenticator(store),
		jwt:           jwtManager,
		metrics:       m,
		formatter:     formatter,
		logger:        logger,
	})

	// h2c serves HTTP/2 without TLS, which Connect's gRPC protocol needs.
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down", "timeout", shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	slog.Info("Server stopped")
	return nil
}

// openStore picks Postgres when a database URL is configured, SQLite otherwise.
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if cfg.UsePostgres() {
		store, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres storage: %w", err)
		}
		slog.Info("Storage initialized", "backend", "postgres")
		return store, nil
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sqlite storage: %w", err)
	}
	slog.Info("Storage initialized", "backend", "sqlite", "database", cfg.DBPath)
	return store, nil
}
