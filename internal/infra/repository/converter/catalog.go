package converter

import (
	"fmt"

	"equipment-rental/internal/domain/catalog"
)

// ItemRecord is the persisted shape of a catalog item.
type ItemRecord struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PricePerDay float64 `json:"pricePerDay"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

func ItemToRecord(it *catalog.Item) ItemRecord {
	return ItemRecord{
		ID:          it.ID(),
		Title:       it.Title(),
		Description: it.Description(),
		PricePerDay: it.PricePerDay(),
		Image:       it.Image(),
		Category:    it.Category().String(),
	}
}

func ItemsToRecords(items []*catalog.Item) []ItemRecord {
	out := make([]ItemRecord, 0, len(items))
	for _, it := range items {
		out = append(out, ItemToRecord(it))
	}
	return out
}

// ItemsFromRecords fails on the first record that cannot be a catalog item.
func ItemsFromRecords(records []ItemRecord) ([]*catalog.Item, error) {
	out := make([]*catalog.Item, 0, len(records))
	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("item %d: missing id", i)
		}
		category := catalog.Category(r.Category)
		if category == "" {
			category = catalog.CategoryEquipment
		}
		if !category.IsValid() {
			return nil, fmt.Errorf("item %s: %w", r.ID, catalog.ErrInvalidCategory)
		}
		out = append(out, catalog.ReconstructItem(r.ID, r.Title, r.Description, r.PricePerDay, r.Image, category))
	}
	return out, nil
}
