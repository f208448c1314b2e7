//go:build unit || e2e

package builder

import (
	"time"

	"equipment-rental/internal/domain/rental"
	"equipment-rental/internal/domain/user"
	"equipment-rental/internal/usecase/queries"
)

type RentalBuilder struct {
	ID             string
	EquipmentID    string
	EquipmentTitle string
	UserEmail      string
	UserName       string
	StartDate      string
	EndDate        string
	StartTime      string
	EndTime        string
	Status         rental.Status
	AdminNote      string
	CreatedAt      time.Time
}

func NewRentalBuilder() *RentalBuilder {
	return &RentalBuilder{
		ID:             "req_1",
		EquipmentID:    "e1",
		EquipmentTitle: "Canon EOS R5 Camera Kit",
		UserEmail:      "ana@example.com",
		UserName:       "Ana",
		StartDate:      "2025-03-01",
		EndDate:        "2025-03-03",
		StartTime:      "09:00",
		EndTime:        "17:00",
		Status:         rental.StatusPending,
		CreatedAt:      time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC),
	}
}

func (b *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(b)
	return b
}

func (b *RentalBuilder) BuildDomain() *rental.Request {
	return rental.ReconstructRequest(
		b.ID, b.EquipmentID, b.EquipmentTitle, b.UserEmail, b.UserName,
		rental.ReconstructPeriod(b.StartDate, b.EndDate, b.StartTime, b.EndTime),
		b.Status,
		rental.NewNote(b.AdminNote),
		b.CreatedAt,
	)
}

func (b *RentalBuilder) BuildView() *queries.RentalView {
	return queries.ToRentalView(b.BuildDomain())
}

// Identity returns the signed-in user who owns the request.
func (b *RentalBuilder) Identity() user.Identity {
	id, err := user.NewIdentity(b.UserName, b.UserEmail, "")
	if err != nil {
		panic(err)
	}
	return id
}
