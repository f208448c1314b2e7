package queries

import (
	"context"

	"equipment-rental/internal/domain/rental"
	"equipment-rental/internal/infra"
	"equipment-rental/internal/pkg/errs"
)

var (
	ErrRentalNotFound = errs.Mark(errs.New("rental request not found"), errs.ErrNotFound)
	ErrRentalFailure  = errs.New("failed to read rental requests")
)

type RentalReadStore interface {
	List(ctx context.Context) ([]*rental.Request, error)
	FindByID(ctx context.Context, id string) (*rental.Request, error)
}

type CatalogCounter interface {
	Count(ctx context.Context) (int, error)
}

type RentalFilters struct {
	Status *rental.Status
}

type RentalQueries interface {
	ListAll(ctx context.Context, filters RentalFilters) ([]*RentalView, error)
	ListByUser(ctx context.Context, email string) ([]*RentalView, error)
	UserSummary(ctx context.Context, email string) (*UserRentalSummary, error)
	GetByID(ctx context.Context, id string) (*RentalView, error)
	Dashboard(ctx context.Context) (*DashboardView, error)
}

type rentalQueriesImpl struct {
	store   RentalReadStore
	catalog CatalogCounter
}

func NewRentalQueries(store RentalReadStore, catalog CatalogCounter) RentalQueries {
	return &rentalQueriesImpl{store: store, catalog: catalog}
}

func (q *rentalQueriesImpl) ListAll(ctx context.Context, filters RentalFilters) ([]*RentalView, error) {
	reqs, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrRentalFailure)
	}
	if filters.Status == nil {
		return ToRentalViews(reqs), nil
	}
	out := make([]*RentalView, 0, len(reqs))
	for _, r := range reqs {
		if r.Status() == *filters.Status {
			out = append(out, ToRentalView(r))
		}
	}
	return out, nil
}

// ListByUser keeps store order, newest first.
func (q *rentalQueriesImpl) ListByUser(ctx context.Context, email string) ([]*RentalView, error) {
	reqs, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrRentalFailure)
	}
	out := make([]*RentalView, 0)
	for _, r := range reqs {
		if r.BelongsTo(email) {
			out = append(out, ToRentalView(r))
		}
	}
	return out, nil
}

func (q *rentalQueriesImpl) UserSummary(ctx context.Context, email string) (*UserRentalSummary, error) {
	reqs, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrRentalFailure)
	}
	sum := &UserRentalSummary{}
	for _, r := range reqs {
		if !r.BelongsTo(email) {
			continue
		}
		sum.Total++
		if r.IsPending() {
			sum.Pending++
		}
	}
	return sum, nil
}

func (q *rentalQueriesImpl) GetByID(ctx context.Context, id string) (*RentalView, error) {
	r, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, errs.Mark(err, ErrRentalFailure)
	}
	return ToRentalView(r), nil
}

func (q *rentalQueriesImpl) Dashboard(ctx context.Context) (*DashboardView, error) {
	reqs, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrRentalFailure)
	}
	size, err := q.catalog.Count(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogFailure)
	}

	d := &DashboardView{TotalRequests: len(reqs), CatalogSize: size}
	for _, r := range reqs {
		switch r.Status() {
		case rental.StatusPending:
			d.Pending++
		case rental.StatusApproved:
			d.Approved++
		case rental.StatusDisapproved:
			d.Disapproved++
		}
	}
	return d, nil
}
