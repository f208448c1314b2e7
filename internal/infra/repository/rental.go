package repository

import (
	"context"
	"log/slog"
	"sync"

	"equipment-rental/internal/domain/rental"
	"equipment-rental/internal/infra"
	"equipment-rental/internal/infra/recordstore"
	"equipment-rental/internal/infra/repository/converter"
)

type RentalRepository struct {
	snap     snapshot
	mu       sync.RWMutex
	requests []*rental.Request
}

func NewRentalRepository(ctx context.Context, store recordstore.Store, logger *slog.Logger) (*RentalRepository, error) {
	r := &RentalRepository{
		snap:     snapshot{store: store, name: recordstore.RecordRentals, logger: logger},
		requests: []*rental.Request{},
	}

	var records []converter.RentalRecord
	found, err := r.snap.load(ctx, &records)
	if err != nil {
		return nil, err
	}
	if found {
		reqs, convErr := converter.RentalsFromRecords(records)
		if convErr != nil {
			r.snap.malformed(convErr)
			return r, nil
		}
		r.requests = reqs
	}
	return r, nil
}

// List returns copies in store order, newest first.
func (r *RentalRepository) List(_ context.Context) ([]*rental.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneRequests(r.requests), nil
}

func (r *RentalRepository) FindByID(_ context.Context, id string) (*rental.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if idx := r.indexOf(id); idx >= 0 {
		return r.requests[idx].Clone(), nil
	}
	return nil, infra.RepositoryError{Kind: infra.KindNotFound, Record: recordstore.RecordRentals}
}

func (r *RentalRepository) Prepend(ctx context.Context, req *rental.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]*rental.Request, 0, len(r.requests)+1)
	next = append(next, req.Clone())
	next = append(next, r.requests...)

	if err := r.snap.save(ctx, converter.RentalsToRecords(next)); err != nil {
		return err
	}
	r.requests = next
	return nil
}

// Update applies fn to a copy of the request with the given id and replaces
// only that entry. Errors from fn are returned as-is and nothing is written.
func (r *RentalRepository) Update(ctx context.Context, id string, fn func(*rental.Request) error) (*rental.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, infra.RepositoryError{Kind: infra.KindNotFound, Record: recordstore.RecordRentals}
	}

	updated := r.requests[idx].Clone()
	if err := fn(updated); err != nil {
		return nil, err
	}

	next := make([]*rental.Request, len(r.requests))
	copy(next, r.requests)
	next[idx] = updated

	if err := r.snap.save(ctx, converter.RentalsToRecords(next)); err != nil {
		return nil, err
	}
	r.requests = next
	return updated.Clone(), nil
}

func (r *RentalRepository) indexOf(id string) int {
	for i, req := range r.requests {
		if req.ID() == id {
			return i
		}
	}
	return -1
}

func cloneRequests(in []*rental.Request) []*rental.Request {
	out := make([]*rental.Request, len(in))
	for i, req := range in {
		out[i] = req.Clone()
	}
	return out
}
