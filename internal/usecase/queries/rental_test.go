//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"equipment-rental/internal/domain/rental"
	"equipment-rental/internal/domain/user"
	"equipment-rental/internal/infra"
	"equipment-rental/internal/pkg/errs"
	"equipment-rental/internal/usecase/queries"
	"equipment-rental/internal/usecase/readmodel"
	"equipment-rental/tests/common/builder"
	queriesmock "equipment-rental/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func req(id, email string, status rental.Status) *rental.Request {
	return builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) {
		b.ID = id
		b.UserEmail = email
		b.Status = status
	}).BuildDomain()
}

// newest first, as the repository keeps them
func storedRequests() []*rental.Request {
	return []*rental.Request{
		req("req_4", "bo@example.com", rental.StatusPending),
		req("req_3", "ana@example.com", rental.StatusApproved),
		req("req_2", "ana@example.com", rental.StatusPending),
		req("req_1", "ANA@example.com", rental.StatusDisapproved),
	}
}

func rentalIDs(views []*queries.RentalView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.ID)
	}
	return out
}

func TestRentalQueries_ListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("everything in store order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRentalReadStore(ctrl)
		store.EXPECT().List(gomock.Any()).Return(storedRequests(), nil)

		views, err := queries.NewRentalQueries(store, nil).ListAll(ctx, queries.RentalFilters{})
		require.NoError(t, err)
		assert.Equal(t, []string{"req_4", "req_3", "req_2", "req_1"}, rentalIDs(views))
	})

	t.Run("filtered by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRentalReadStore(ctrl)
		store.EXPECT().List(gomock.Any()).Return(storedRequests(), nil)

		pending := rental.StatusPending
		views, err := queries.NewRentalQueries(store, nil).ListAll(ctx, queries.RentalFilters{Status: &pending})
		require.NoError(t, err)
		assert.Equal(t, []string{"req_4", "req_2"}, rentalIDs(views))
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRentalReadStore(ctrl)
		store.EXPECT().List(gomock.Any()).Return(nil, errors.New("io"))

		_, err := queries.NewRentalQueries(store, nil).ListAll(ctx, queries.RentalFilters{})
		assert.True(t, errs.Is(err, queries.ErrRentalFailure))
	})
}

func TestRentalQueries_ListByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockRentalReadStore(ctrl)
	store.EXPECT().List(gomock.Any()).Return(storedRequests(), nil).Times(2)
	q := queries.NewRentalQueries(store, nil)

	views, err := q.ListByUser(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"req_3", "req_2"}, rentalIDs(views), "email match is exact")

	none, err := q.ListByUser(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestRentalQueries_UserSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockRentalReadStore(ctrl)
	store.EXPECT().List(gomock.Any()).Return(storedRequests(), nil)

	sum, err := queries.NewRentalQueries(store, nil).UserSummary(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, &queries.UserRentalSummary{Total: 2, Pending: 1}, sum)
}

func TestRentalQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockRentalReadStore(ctrl)
	q := queries.NewRentalQueries(store, nil)

	stored := builder.NewRentalBuilder()
	store.EXPECT().FindByID(gomock.Any(), "req_1").Return(stored.BuildDomain(), nil)
	v, err := q.GetByID(ctx, "req_1")
	require.NoError(t, err)
	if diff := cmp.Diff(stored.BuildView(), v); diff != "" {
		t.Errorf("view mismatch (-want +got):\n%s", diff)
	}

	store.EXPECT().FindByID(gomock.Any(), "req_9").Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})
	_, err = q.GetByID(ctx, "req_9")
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestRentalQueries_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockRentalReadStore(ctrl)
	counter := queriesmock.NewMockCatalogCounter(ctrl)
	store.EXPECT().List(gomock.Any()).Return(storedRequests(), nil)
	counter.EXPECT().Count(gomock.Any()).Return(4, nil)

	d, err := queries.NewRentalQueries(store, counter).Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &queries.DashboardView{
		TotalRequests: 4,
		Pending:       2,
		Approved:      1,
		Disapproved:   1,
		CatalogSize:   4,
	}, d)
}

func TestNotificationQueries_Status(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing dispatched yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRentalReadStore(ctrl)
		tracker := queriesmock.NewMockDispatchTracker(ctrl)
		store.EXPECT().FindByID(gomock.Any(), "req_1").Return(builder.NewRentalBuilder().BuildDomain(), nil)
		tracker.EXPECT().Lookup("req_1").Return(readmodel.DispatchRM{}, false)

		v, err := queries.NewNotificationQueries(store, tracker).Status(ctx, "req_1")
		require.NoError(t, err)
		assert.Equal(t, "req_1", v.RequestID)
		assert.Nil(t, v.Dispatch)
	})

	t.Run("dispatched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRentalReadStore(ctrl)
		tracker := queriesmock.NewMockDispatchTracker(ctrl)
		store.EXPECT().FindByID(gomock.Any(), "req_1").Return(builder.NewRentalBuilder().BuildDomain(), nil)
		tracker.EXPECT().Lookup("req_1").Return(readmodel.DispatchRM{RequestID: "req_1", State: readmodel.DispatchSent}, true)

		v, err := queries.NewNotificationQueries(store, tracker).Status(ctx, "req_1")
		require.NoError(t, err)
		require.NotNil(t, v.Dispatch)
		assert.Equal(t, readmodel.DispatchSent, v.Dispatch.State)
	})

	t.Run("unknown request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRentalReadStore(ctrl)
		tracker := queriesmock.NewMockDispatchTracker(ctrl)
		store.EXPECT().FindByID(gomock.Any(), "req_9").Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := queries.NewNotificationQueries(store, tracker).Status(ctx, "req_9")
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestPreferenceQueries_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockPreferenceReadStore(ctrl)
	store.EXPECT().Get(gomock.Any(), "ana@example.com").Return(user.NewPreferences(true), nil)

	v, err := queries.NewPreferenceQueries(store).Get(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.True(t, v.DarkMode)
}

