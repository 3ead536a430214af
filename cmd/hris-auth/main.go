package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/odyssey-erp/hris-access/internal/app"
	"github.com/odyssey-erp/hris-access/internal/auth"
	"github.com/odyssey-erp/hris-access/internal/observability"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig(".env")
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	if err := cfg.ValidateServer(); err != nil {
		slog.Default().Error("validate config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg, nil)

	storage, closeStorage, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("open storage", slog.Any("error", err))
		os.Exit(1)
	}
	defer closeStorage()

	accounts, err := auth.SeedAccounts(cfg.BcryptCost, time.Now())
	if err != nil {
		logger.Error("seed accounts", slog.Any("error", err))
		os.Exit(1)
	}
	authRepo := auth.NewMemoryRepository(accounts, auth.SeedRoles())
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTokenTTL)
	authService := auth.NewService(authRepo, tokens, auth.NewRefreshStore(storage, cfg.RefreshTokenTTL), cfg.BcryptCost)

	metrics := observability.NewMetrics()
	authHandler := auth.NewHandler(logger, authService, tokens).
		WithObserver(metrics).
		WithLoginRateLimit(cfg.LoginRateLimit, time.Minute)

	router := app.NewRouter(app.RouterParams{
		Logger:      logger,
		Config:      cfg,
		AuthHandler: authHandler,
		Metrics:     metrics,
	})

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.ServerAddr), slog.String("storage", cfg.StorageDriver))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
