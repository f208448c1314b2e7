package catalog

import (
	"errors"
	"strings"
)

var (
	ErrEmptyID       = errors.New("item id cannot be empty")
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrTitleTooLong  = errors.New("title is too long (max 255 characters)")
	ErrNegativePrice = errors.New("price per day cannot be negative")
)

const MaxTitleLength = 255

// Item is a rentable catalog entry. Items are never edited once created.
type Item struct {
	id          string
	title       string
	description string
	pricePerDay float64
	image       string
	category    Category
}

// NewItem validates admin input. Empty category falls back to equipment.
func NewItem(id, title, description string, pricePerDay float64, image string, category Category) (*Item, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyID
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if pricePerDay < 0 {
		return nil, ErrNegativePrice
	}
	if category == "" {
		category = CategoryEquipment
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}

	return &Item{
		id:          id,
		title:       title,
		description: strings.TrimSpace(description),
		pricePerDay: pricePerDay,
		image:       strings.TrimSpace(image),
		category:    category,
	}, nil
}

// ReconstructItem rebuilds an item from persisted data without validation.
func ReconstructItem(id, title, description string, pricePerDay float64, image string, category Category) *Item {
	return &Item{
		id:          id,
		title:       title,
		description: description,
		pricePerDay: pricePerDay,
		image:       image,
		category:    category,
	}
}

func (i *Item) ID() string           { return i.id }
func (i *Item) Title() string        { return i.title }
func (i *Item) Description() string  { return i.description }
func (i *Item) PricePerDay() float64 { return i.pricePerDay }
func (i *Item) Image() string        { return i.image }
func (i *Item) Category() Category   { return i.category }
