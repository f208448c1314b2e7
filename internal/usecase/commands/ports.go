package commands

import (
	"context"

	"equipment-rental/internal/domain/catalog"
	"equipment-rental/internal/domain/rental"
	"equipment-rental/internal/domain/user"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

type CatalogRepository interface {
	FindByID(ctx context.Context, id string) (*catalog.Item, error)
	Prepend(ctx context.Context, item *catalog.Item) error
}

type RentalRepository interface {
	Prepend(ctx context.Context, req *rental.Request) error
	// Update runs fn on a copy of the request and persists it only when fn
	// returns nil.
	Update(ctx context.Context, id string, fn func(*rental.Request) error) (*rental.Request, error)
}

type PreferenceRepository interface {
	Save(ctx context.Context, email string, prefs user.Preferences) error
}

// StatusNotification is what the notifier needs to tell a requester about an
// admin decision. It is a snapshot; the request may change afterwards.
type StatusNotification struct {
	RequestID      string
	Status         rental.Status
	Note           string
	UserEmail      string
	UserName       string
	EquipmentTitle string
	StartDate      string
	EndDate        string
	StartTime      string
	EndTime        string
}

func NewStatusNotification(r *rental.Request) StatusNotification {
	p := r.Period()
	return StatusNotification{
		RequestID:      r.ID(),
		Status:         r.Status(),
		Note:           r.AdminNote().String(),
		UserEmail:      r.UserEmail(),
		UserName:       r.UserName(),
		EquipmentTitle: r.EquipmentTitle(),
		StartDate:      p.StartDate(),
		EndDate:        p.EndDate(),
		StartTime:      p.StartTime(),
		EndTime:        p.EndTime(),
	}
}

// Notifier must return quickly; delivery happens in the background and its
// outcome never reaches the caller.
type Notifier interface {
	Notify(ctx context.Context, n StatusNotification)
}
