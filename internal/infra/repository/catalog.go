package repository

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"equipment-rental/internal/domain/catalog"
	"equipment-rental/internal/infra"
	"equipment-rental/internal/infra/recordstore"
	"equipment-rental/internal/infra/repository/converter"
)

type CatalogRepository struct {
	snap  snapshot
	mu    sync.RWMutex
	items []*catalog.Item
}

// NewCatalogRepository loads the persisted catalog, or seed when nothing
// usable has been stored yet.
func NewCatalogRepository(ctx context.Context, store recordstore.Store, seed []*catalog.Item, logger *slog.Logger) (*CatalogRepository, error) {
	r := &CatalogRepository{
		snap: snapshot{store: store, name: recordstore.RecordCatalog, logger: logger},
	}

	var records []converter.ItemRecord
	found, err := r.snap.load(ctx, &records)
	if err != nil {
		return nil, err
	}
	if found {
		items, convErr := converter.ItemsFromRecords(records)
		if convErr == nil {
			r.items = items
			return r, nil
		}
		r.snap.malformed(convErr)
	}

	r.items = slices.Clone(seed)
	return r, nil
}

func (r *CatalogRepository) List(_ context.Context) ([]*catalog.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items), nil
}

func (r *CatalogRepository) FindByID(_ context.Context, id string) (*catalog.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.ID() == id {
			return it, nil
		}
	}
	return nil, infra.RepositoryError{Kind: infra.KindNotFound, Record: recordstore.RecordCatalog}
}

func (r *CatalogRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

// Prepend puts item first and persists the whole catalog. The in-memory
// list only changes once the write succeeded.
func (r *CatalogRepository) Prepend(ctx context.Context, item *catalog.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]*catalog.Item, 0, len(r.items)+1)
	next = append(next, item)
	next = append(next, r.items...)

	if err := r.snap.save(ctx, converter.ItemsToRecords(next)); err != nil {
		return err
	}
	r.items = next
	return nil
}
