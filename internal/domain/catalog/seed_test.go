//go:build unit

package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"equipment-rental/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeed(t *testing.T) {
	items := catalog.DefaultSeed()

	require.Len(t, items, 4)
	assert.Equal(t, []string{"e1", "e2", "l1", "l2"}, ids(items))
	assert.Len(t, catalog.Filter(items, "", catalog.CategoryEquipment), 2)
	assert.Len(t, catalog.Filter(items, "", catalog.CategoryLab), 2)
}

func TestLoadSeed(t *testing.T) {
	t.Run("empty path uses built-in seed", func(t *testing.T) {
		items, err := catalog.LoadSeed("")
		require.NoError(t, err)
		assert.Len(t, items, 4)
	})

	t.Run("override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		body := "items:\n  - id: m1\n    title: Microscope\n    category: lab\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		items, err := catalog.LoadSeed(path)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Microscope", items[0].Title())
		assert.Equal(t, catalog.CategoryLab, items[0].Category())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := catalog.LoadSeed(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestParseSeed_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not yaml", body: "items: [::"},
		{name: "duplicate id", body: "items:\n  - {id: a, title: A}\n  - {id: a, title: B}\n"},
		{name: "bad category", body: "items:\n  - {id: a, title: A, category: car}\n"},
		{name: "missing title", body: "items:\n  - {id: a}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.ParseSeed([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}
