//go:build unit

package catalog_test

import (
	"strings"
	"testing"

	"equipment-rental/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		it, err := catalog.NewItem("e_1", "  Tripod  ", "", 0, "", "")
		require.NoError(t, err)

		assert.Equal(t, "e_1", it.ID())
		assert.Equal(t, "Tripod", it.Title())
		assert.Equal(t, "", it.Description())
		assert.Equal(t, 0.0, it.PricePerDay())
		assert.Equal(t, "", it.Image())
		assert.Equal(t, catalog.CategoryEquipment, it.Category())
	})

	tests := []struct {
		name     string
		id       string
		title    string
		price    float64
		category catalog.Category
		errIs    error
	}{
		{name: "lab item OK", id: "x", title: "Clean room", price: 10, category: catalog.CategoryLab},
		{name: "empty id", id: " ", title: "Tripod", errIs: catalog.ErrEmptyID},
		{name: "blank title", id: "x", title: "   ", errIs: catalog.ErrEmptyTitle},
		{name: "title too long", id: "x", title: strings.Repeat("a", catalog.MaxTitleLength+1), errIs: catalog.ErrTitleTooLong},
		{name: "negative price", id: "x", title: "Tripod", price: -1, errIs: catalog.ErrNegativePrice},
		{name: "unknown category", id: "x", title: "Tripod", category: "vehicle", errIs: catalog.ErrInvalidCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := catalog.NewItem(tt.id, tt.title, "", tt.price, "", tt.category)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, it)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.category, it.Category())
		})
	}
}

func TestNewCategory(t *testing.T) {
	c, err := catalog.NewCategory("lab")
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryLab, c)

	_, err = catalog.NewCategory("Lab")
	assert.ErrorIs(t, err, catalog.ErrInvalidCategory)
}
