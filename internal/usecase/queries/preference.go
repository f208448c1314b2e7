package queries

import (
	"context"

	"equipment-rental/internal/domain/user"
	"equipment-rental/internal/pkg/errs"
)

var ErrPreferenceFailure = errs.New("failed to read preferences")

type PreferenceReadStore interface {
	Get(ctx context.Context, email string) (user.Preferences, error)
}

type PreferenceQueries interface {
	Get(ctx context.Context, email string) (*PreferenceView, error)
}

type preferenceQueriesImpl struct {
	store PreferenceReadStore
}

func NewPreferenceQueries(store PreferenceReadStore) PreferenceQueries {
	return &preferenceQueriesImpl{store: store}
}

func (q *preferenceQueriesImpl) Get(ctx context.Context, email string) (*PreferenceView, error) {
	p, err := q.store.Get(ctx, email)
	if err != nil {
		return nil, errs.Mark(err, ErrPreferenceFailure)
	}
	return ToPreferenceView(p), nil
}
