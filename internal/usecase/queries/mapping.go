package queries

import (
	"equipment-rental/internal/domain/catalog"
	"equipment-rental/internal/domain/rental"
	"equipment-rental/internal/domain/user"
)

func ToCatalogItemView(it *catalog.Item) *CatalogItemView {
	return &CatalogItemView{
		ID:          it.ID(),
		Title:       it.Title(),
		Description: it.Description(),
		PricePerDay: it.PricePerDay(),
		Image:       it.Image(),
		Category:    it.Category().String(),
	}
}

func ToCatalogItemViews(items []*catalog.Item) []*CatalogItemView {
	out := make([]*CatalogItemView, 0, len(items))
	for _, it := range items {
		out = append(out, ToCatalogItemView(it))
	}
	return out
}

func ToRentalView(r *rental.Request) *RentalView {
	p := r.Period()
	return &RentalView{
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

func ToRentalViews(reqs []*rental.Request) []*RentalView {
	out := make([]*RentalView, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, ToRentalView(r))
	}
	return out
}

func ToPreferenceView(p user.Preferences) *PreferenceView {
	return &PreferenceView{DarkMode: p.DarkMode()}
}
