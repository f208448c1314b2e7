package response

import "equipment-rental/internal/usecase/queries"

type RentalListResponse struct {
	Requests []*queries.RentalView `json:"requests"`
	Count    int                   `json:"count"`
}

func FromRentalViews(views []*queries.RentalView) RentalListResponse {
	if views == nil {
		views = []*queries.RentalView{}
	}
	return RentalListResponse{Requests: views, Count: len(views)}
}
