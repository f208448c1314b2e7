package bootstrap

import (
	"context"
	"log/slog"

	"equipment-rental/internal/domain/catalog"
	"equipment-rental/internal/infra/db"
	"equipment-rental/internal/infra/recordstore"
	"equipment-rental/internal/pkg/config"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewRecordStore,
		NewCatalogSeed,
	),
)

func NewRecordStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (recordstore.Store, error) {
	store, cleanup, err := db.Connect(context.Background(), cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			cleanup(ctx)
			return nil
		},
	})

	return store, nil
}

// NewCatalogSeed is what the catalog shows until an admin adds an item.
func NewCatalogSeed(cfg config.Config) ([]*catalog.Item, error) {
	return catalog.LoadSeed(cfg.Storage.CatalogSeed)
}
