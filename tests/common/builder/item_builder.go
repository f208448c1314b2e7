//go:build unit || e2e

package builder

import (
	"equipment-rental/internal/domain/catalog"
	"equipment-rental/internal/infra/repository/converter"
	"equipment-rental/internal/usecase/queries"
)

type ItemBuilder struct {
	ID          string
	Title       string
	Description string
	PricePerDay float64
	Image       string
	Category    catalog.Category
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          "e1",
		Title:       "Canon EOS R5 Camera Kit",
		Description: "Full-frame mirrorless camera with 24-105mm lens",
		PricePerDay: 45,
		Image:       "https://example.com/r5.jpg",
		Category:    catalog.CategoryEquipment,
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) BuildDomain() *catalog.Item {
	return catalog.ReconstructItem(b.ID, b.Title, b.Description, b.PricePerDay, b.Image, b.Category)
}

func (b *ItemBuilder) BuildRecord() converter.ItemRecord {
	return converter.ItemRecord{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		PricePerDay: b.PricePerDay,
		Image:       b.Image,
		Category:    b.Category.String(),
	}
}

func (b *ItemBuilder) BuildView() *queries.CatalogItemView {
	return queries.ToCatalogItemView(b.BuildDomain())
}
