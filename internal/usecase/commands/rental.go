package commands

import (
	"context"
	"log/slog"

	"equipment-rental/internal/domain/rental"
	"equipment-rental/internal/domain/user"
	"equipment-rental/internal/infra"
	"equipment-rental/internal/pkg/clock"
	"equipment-rental/internal/pkg/errs"
	"equipment-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubmitRentalRequest struct {
	EquipmentID string
	StartDate   string
	EndDate     string
	StartTime   string
	EndTime     string
}

type UpdateStatusRequest struct {
	Status string
	Note   string
}

type RentalPolicy struct {
	RequireTimes bool
}

type RentalCommands interface {
	Submit(ctx context.Context, requester user.Identity, req SubmitRentalRequest) (*queries.RentalView, error)
	UpdateStatus(ctx context.Context, requestID string, req UpdateStatusRequest) (*queries.RentalView, error)
}

type rentalCommandsImpl struct {
	rentals  RentalRepository
	catalog  CatalogRepository
	notifier Notifier
	clock    clock.Clock
	policy   RentalPolicy
	logger   *slog.Logger
}

func NewRentalCommands(
	rentals RentalRepository,
	catalog CatalogRepository,
	notifier Notifier,
	clk clock.Clock,
	policy RentalPolicy,
	logger *slog.Logger,
) RentalCommands {
	return &rentalCommandsImpl{
		rentals:  rentals,
		catalog:  catalog,
		notifier: notifier,
		clock:    clk,
		policy:   policy,
		logger:   logger,
	}
}

func (uc *rentalCommandsImpl) Submit(ctx context.Context, requester user.Identity, req SubmitRentalRequest) (*queries.RentalView, error) {
	if !requester.IsSignedIn() {
		return nil, validation(user.ErrNotSignedIn)
	}
	if req.EquipmentID == "" {
		return nil, validation(rental.ErrNoItemSelected)
	}

	period, err := rental.NewPeriod(req.StartDate, req.EndDate, req.StartTime, req.EndTime, uc.policy.RequireTimes)
	if err != nil {
		return nil, validation(err)
	}

	item, err := uc.catalog.FindByID(ctx, req.EquipmentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}

	r, err := rental.NewRequest("req_"+uuid.NewString(), item, requester, period, uc.clock.Now())
	if err != nil {
		return nil, validation(err)
	}

	if err := uc.rentals.Prepend(ctx, r); err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}

	uc.logger.Info("Rental request submitted",
		slog.String("request_id", r.ID()),
		slog.String("equipment_id", r.EquipmentID()),
		slog.String("user_email", r.UserEmail()))
	return queries.ToRentalView(r), nil
}

// UpdateStatus records the admin decision, then hands the outcome to the
// notifier. Notification problems never undo the decision.
func (uc *rentalCommandsImpl) UpdateStatus(ctx context.Context, requestID string, req UpdateStatusRequest) (*queries.RentalView, error) {
	status, err := rental.NewStatus(req.Status)
	if err != nil {
		return nil, validation(err)
	}
	if !status.IsDecision() {
		return nil, validation(rental.ErrInvalidTransition)
	}
	note := rental.NewNote(req.Note)

	updated, err := uc.rentals.Update(ctx, requestID, func(r *rental.Request) error {
		return r.Resolve(status, note)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrRentalNotFound
		case errs.Is(err, rental.ErrAlreadyResolved):
			return nil, ErrRentalAlreadyResolved
		case errs.Is(err, rental.ErrInvalidTransition):
			return nil, validation(err)
		default:
			return nil, errs.Mark(err, ErrPersistenceFailed)
		}
	}

	uc.logger.Info("Rental request resolved",
		slog.String("request_id", updated.ID()),
		slog.String("status", updated.Status().String()))

	uc.notifier.Notify(ctx, NewStatusNotification(updated))
	return queries.ToRentalView(updated), nil
}
