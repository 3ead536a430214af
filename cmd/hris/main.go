package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/odyssey-erp/hris-access/cmd/hris/cli"
	"github.com/odyssey-erp/hris-access/internal/app"
	"github.com/odyssey-erp/hris-access/internal/menu"
	"github.com/odyssey-erp/hris-access/internal/session"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig(".env")
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		return cli.ExitError
	}
	logger := app.NewLogger(cfg, os.Stderr)

	// Every command is its own process; the session has to live on disk.
	if cfg.StorageDriver == "" {
		cfg.StorageDriver = app.StorageFile
	}

	storage, closeStorage, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("open storage", slog.Any("error", err))
		return cli.ExitError
	}
	defer closeStorage()

	store, err := session.Open(ctx, session.Options{
		Backend:     session.NewHTTPBackend(cfg.APIURL, &http.Client{Timeout: cfg.RequestTimeout}),
		Storage:     storage,
		Keys:        cfg.SessionKeys(),
		IdleTimeout: cfg.IdleTimeout,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("open session", slog.Any("error", err))
		return cli.ExitError
	}

	portal, err := cli.New(cli.Options{
		Store:   store,
		Storage: storage,
		Menu:    menu.Default(),
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	})
	if err != nil {
		logger.Error("build portal", slog.Any("error", err))
		return cli.ExitError
	}
	return portal.Run(ctx, os.Args[1:])
}
