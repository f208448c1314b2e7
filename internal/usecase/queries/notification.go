package queries

import (
	"context"

	"equipment-rental/internal/infra"
	"equipment-rental/internal/pkg/errs"
	"equipment-rental/internal/usecase/readmodel"
)

// DispatchTracker exposes the notification dispatcher's side channel.
type DispatchTracker interface {
	Lookup(requestID string) (readmodel.DispatchRM, bool)
}

type NotificationStatusView struct {
	RequestID string                `json:"requestId"`
	Dispatch  *readmodel.DispatchRM `json:"dispatch"`
}

type NotificationQueries interface {
	// Status reports the last dispatch for a request; Dispatch is nil when
	// nothing was sent yet.
	Status(ctx context.Context, requestID string) (*NotificationStatusView, error)
}

type notificationQueriesImpl struct {
	rentals RentalReadStore
	tracker DispatchTracker
}

func NewNotificationQueries(rentals RentalReadStore, tracker DispatchTracker) NotificationQueries {
	return &notificationQueriesImpl{rentals: rentals, tracker: tracker}
}

func (q *notificationQueriesImpl) Status(ctx context.Context, requestID string) (*NotificationStatusView, error) {
	if _, err := q.rentals.FindByID(ctx, requestID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, errs.Mark(err, ErrRentalFailure)
	}
	view := &NotificationStatusView{RequestID: requestID}
	if d, ok := q.tracker.Lookup(requestID); ok {
		view.Dispatch = &d
	}
	return view, nil
}
