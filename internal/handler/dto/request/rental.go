package request

import (
	"equipment-rental/internal/domain/rental"
	"equipment-rental/internal/usecase/commands"
	"equipment-rental/internal/usecase/queries"
)

// SubmitRentalRequest carries no binding rules; the lifecycle rules produce
// the messages shown on the booking form.
type SubmitRentalRequest struct {
	EquipmentID string `json:"equipmentId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

func (r *SubmitRentalRequest) ToCommand() commands.SubmitRentalRequest {
	return commands.SubmitRentalRequest{
		EquipmentID: r.EquipmentID,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
	}
}

type UpdateStatusRequest struct {
	Status    string `json:"status" binding:"required"`
	AdminNote string `json:"adminNote" binding:"max=2000"`
}

func (r *UpdateStatusRequest) ToCommand() commands.UpdateStatusRequest {
	return commands.UpdateStatusRequest{Status: r.Status, Note: r.AdminNote}
}

type RentalListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved disapproved"`
}

func (q *RentalListQuery) ToFilters() queries.RentalFilters {
	if q.Status == "" {
		return queries.RentalFilters{}
	}
	s := rental.Status(q.Status)
	return queries.RentalFilters{Status: &s}
}
