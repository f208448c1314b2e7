package queries

import (
	"context"

	"equipment-rental/internal/domain/catalog"
	"equipment-rental/internal/infra"
	"equipment-rental/internal/pkg/errs"
)

var (
	ErrItemNotFound   = errs.Mark(errs.New("equipment not found"), errs.ErrNotFound)
	ErrCatalogFailure = errs.New("failed to read catalog")
)

type CatalogReadStore interface {
	List(ctx context.Context) ([]*catalog.Item, error)
	FindByID(ctx context.Context, id string) (*catalog.Item, error)
}

type CatalogQueries interface {
	List(ctx context.Context) ([]*CatalogItemView, error)
	Search(ctx context.Context, term string, category catalog.Category) ([]*CatalogItemView, error)
	GetByID(ctx context.Context, id string) (*CatalogItemView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) List(ctx context.Context) ([]*CatalogItemView, error) {
	items, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogFailure)
	}
	return ToCatalogItemViews(items), nil
}

func (q *catalogQueriesImpl) Search(ctx context.Context, term string, category catalog.Category) ([]*CatalogItemView, error) {
	if !category.IsValid() {
		return nil, errs.Mark(catalog.ErrInvalidCategory, errs.ErrValidation)
	}
	items, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogFailure)
	}
	return ToCatalogItemViews(catalog.Filter(items, term, category)), nil
}

func (q *catalogQueriesImpl) GetByID(ctx context.Context, id string) (*CatalogItemView, error) {
	it, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrCatalogFailure)
	}
	return ToCatalogItemView(it), nil
}
