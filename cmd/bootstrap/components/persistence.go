package components

import (
	"context"
	"log/slog"

	"equipment-rental/internal/domain/catalog"
	"equipment-rental/internal/infra/recordstore"
	"equipment-rental/internal/infra/repository"
	"equipment-rental/internal/pkg/config"
	"equipment-rental/internal/usecase/commands"
	"equipment-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// Catalog
		fx.Annotate(
			NewCatalogRepository,
			fx.As(new(commands.CatalogRepository)),
			fx.As(new(queries.CatalogReadStore)),
			fx.As(new(queries.CatalogCounter)),
		),
		// Rental requests
		fx.Annotate(
			NewRentalRepository,
			fx.As(new(commands.RentalRepository)),
			fx.As(new(queries.RentalReadStore)),
		),
		// Preferences
		fx.Annotate(
			NewPreferenceRepository,
			fx.As(new(commands.PreferenceRepository)),
			fx.As(new(queries.PreferenceReadStore)),
		),
	),
)

// Each repository loads its record once at startup.

func NewCatalogRepository(cfg config.Config, store recordstore.Store, seed []*catalog.Item, logger *slog.Logger) (*repository.CatalogRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Storage.ConnectTimeout)
	defer cancel()
	return repository.NewCatalogRepository(ctx, store, seed, logger)
}

func NewRentalRepository(cfg config.Config, store recordstore.Store, logger *slog.Logger) (*repository.RentalRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Storage.ConnectTimeout)
	defer cancel()
	return repository.NewRentalRepository(ctx, store, logger)
}

func NewPreferenceRepository(cfg config.Config, store recordstore.Store, logger *slog.Logger) (*repository.PreferenceRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Storage.ConnectTimeout)
	defer cancel()
	return repository.NewPreferenceRepository(ctx, store, logger)
}
