package request

import (
	"equipment-rental/internal/domain/catalog"
	"equipment-rental/internal/usecase/commands"
)

type AddItemRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description *string  `json:"description"`
	PricePerDay *float64 `json:"pricePerDay" binding:"omitempty,min=0"`
	Image       *string  `json:"image" binding:"omitempty,max=2048"`
	Category    *string  `json:"category" binding:"omitempty,category"`
}

func (r *AddItemRequest) ToCommand() commands.AddItemRequest {
	return commands.AddItemRequest{
		Title:       r.Title,
		Description: r.Description,
		PricePerDay: r.PricePerDay,
		Image:       r.Image,
		Category:    r.Category,
	}
}

// CatalogSearchQuery is the storefront search box plus the category tab.
type CatalogSearchQuery struct {
	Q        string `form:"q"`
	Category string `form:"category" binding:"omitempty,category"`
}

func (q *CatalogSearchQuery) CategoryOrDefault() catalog.Category {
	if q.Category == "" {
		return catalog.CategoryEquipment
	}
	return catalog.Category(q.Category)
}
