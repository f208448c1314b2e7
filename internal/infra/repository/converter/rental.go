package converter

import (
	"fmt"
	"time"

	"equipment-rental/internal/domain/rental"
)

// RentalRecord is the persisted shape of a rental request.
type RentalRecord struct {
	ID             string    `json:"id"`
	EquipmentID    string    `json:"equipmentId"`
	EquipmentTitle string    `json:"equipmentTitle"`
	UserEmail      string    `json:"userEmail"`
	UserName       string    `json:"userName"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	Status         string    `json:"status"`
	AdminNote      string    `json:"adminNote,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func RentalToRecord(r *rental.Request) RentalRecord {
	p := r.Period()
	return RentalRecord{
		ID:             r.ID(),
		EquipmentID:    r.EquipmentID(),
		EquipmentTitle: r.EquipmentTitle(),
		UserEmail:      r.UserEmail(),
		UserName:       r.UserName(),
		StartDate:      p.StartDate(),
		EndDate:        p.EndDate(),
		StartTime:      p.StartTime(),
		EndTime:        p.EndTime(),
		Status:         r.Status().String(),
		AdminNote:      r.AdminNote().String(),
		CreatedAt:      r.CreatedAt(),
	}
}

func RentalsToRecords(reqs []*rental.Request) []RentalRecord {
	out := make([]RentalRecord, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, RentalToRecord(r))
	}
	return out
}

func RentalsFromRecords(records []RentalRecord) ([]*rental.Request, error) {
	out := make([]*rental.Request, 0, len(records))
	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("request %d: missing id", i)
		}
		switch {
		case r.EquipmentID == "":
			return nil, fmt.Errorf("request %s: missing equipmentId", r.ID)
		case r.UserEmail == "":
			return nil, fmt.Errorf("request %s: missing userEmail", r.ID)
		case r.CreatedAt.IsZero():
			return nil, fmt.Errorf("request %s: missing createdAt", r.ID)
		}
		status, err := rental.NewStatus(r.Status)
		if err != nil {
			return nil, fmt.Errorf("request %s: %w", r.ID, err)
		}
		out = append(out, rental.ReconstructRequest(
			r.ID, r.EquipmentID, r.EquipmentTitle, r.UserEmail, r.UserName,
			rental.ReconstructPeriod(r.StartDate, r.EndDate, r.StartTime, r.EndTime),
			status,
			rental.NewNote(r.AdminNote),
			r.CreatedAt,
		))
	}
	return out, nil
}
