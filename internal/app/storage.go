package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/odyssey-erp/hris-access/internal/platform/cache"
	"github.com/odyssey-erp/hris-access/internal/platform/db"
	"github.com/odyssey-erp/hris-access/internal/platform/kv"
	"github.com/odyssey-erp/hris-access/internal/platform/localstore"
)

// OpenStorage connects the configured storage driver. An empty driver means
// memory. The returned close function releases its connections and is
// never nil.
func OpenStorage(ctx context.Context, cfg *Config, logger *slog.Logger) (kv.Storage, func(), error) {
	switch cfg.StorageDriver {
	case StorageRedis:
		client, err := cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, func() {}, err
		}
		logger.Debug("storage connected", slog.String("driver", StorageRedis), slog.String("addr", cfg.RedisAddr))
		return cache.NewRedisStorage(client, cfg.StoragePrefix), func() { _ = client.Close() }, nil
	case StoragePostgres:
		pool, err := db.New(ctx, cfg.PGDSN)
		if err != nil {
			return nil, func() {}, err
		}
		storage := db.NewPostgresStorage(pool)
		if err := storage.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, func() {}, err
		}
		logger.Debug("storage connected", slog.String("driver", StoragePostgres))
		return storage, pool.Close, nil
	case StorageFile:
		path := cfg.StoragePath
		if path == "" {
			var err error
			if path, err = localstore.DefaultPath(); err != nil {
				return nil, func() {}, err
			}
		}
		storage, err := localstore.Open(path)
		if err != nil {
			return nil, func() {}, err
		}
		logger.Debug("storage opened", slog.String("driver", StorageFile), slog.String("path", path))
		return storage, func() { _ = storage.Close() }, nil
	case StorageMemory, "":
		return kv.NewMemory(), func() {}, nil
	default:
		return nil, func() {}, fmt.Errorf("app: unknown storage driver %q", cfg.StorageDriver)
	}
}
