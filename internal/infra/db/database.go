package db

import (
	"context"
	"fmt"
	"log/slog"

	"equipment-rental/internal/infra/recordstore"
	"equipment-rental/internal/pkg/config"
)

// Connect opens the record store selected by STORAGE_DRIVER. The cleanup
// closes it and logs instead of failing.
func Connect(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (recordstore.Store, func(context.Context), error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	store, err := open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Record store ready", "driver", cfg.Driver)

	cleanup := func(ctx context.Context) {
		if err := store.Close(ctx); err != nil {
			logger.Error("Failed to close record store", "driver", cfg.Driver, "error", err)
		}
	}
	return store, cleanup, nil
}

func open(ctx context.Context, cfg config.StorageConfig) (recordstore.Store, error) {
	switch cfg.Driver {
	case config.StorageDriverMemory:
		return recordstore.NewMemoryStore(), nil
	case config.StorageDriverFile, "":
		return recordstore.NewFileStore(cfg.FileDir)
	case config.StorageDriverSQLite:
		return recordstore.OpenSQLite(cfg.SQLitePath)
	case config.StorageDriverPostgres:
		return recordstore.ConnectPostgres(ctx, cfg.Postgres.BuildDSN())
	case config.StorageDriverMongo:
		return recordstore.ConnectMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Driver)
	}
}
