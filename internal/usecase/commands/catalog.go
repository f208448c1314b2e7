package commands

import (
	"context"
	"log/slog"

	"equipment-rental/internal/domain/catalog"
	"equipment-rental/internal/pkg/errs"
	"equipment-rental/internal/pkg/patch"
	"equipment-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type AddItemRequest struct {
	Title       string
	Description *string
	PricePerDay *float64
	Image       *string
	Category    *string
}

type CatalogCommands interface {
	AddItem(ctx context.Context, req AddItemRequest) (*queries.CatalogItemView, error)
}

type catalogCommandsImpl struct {
	repo   CatalogRepository
	logger *slog.Logger
}

func NewCatalogCommands(repo CatalogRepository, logger *slog.Logger) CatalogCommands {
	return &catalogCommandsImpl{repo: repo, logger: logger}
}

// AddItem puts a new item at the front of the catalog. Omitted fields take
// the catalog defaults.
func (uc *catalogCommandsImpl) AddItem(ctx context.Context, req AddItemRequest) (*queries.CatalogItemView, error) {
	item, err := catalog.NewItem(
		"e_"+uuid.NewString(),
		req.Title,
		patch.OptionalString(req.Description),
		patch.Coalesce(req.PricePerDay, 0),
		patch.OptionalString(req.Image),
		catalog.Category(patch.OptionalString(req.Category)),
	)
	if err != nil {
		return nil, validation(err)
	}

	if err := uc.repo.Prepend(ctx, item); err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}

	uc.logger.Info("Catalog item added",
		slog.String("item_id", item.ID()),
		slog.String("category", item.Category().String()))
	return queries.ToCatalogItemView(item), nil
}
