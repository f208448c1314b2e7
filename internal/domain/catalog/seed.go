package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Items []seedItem `yaml:"items"`
}

type seedItem struct {
	ID          string  `yaml:"id"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	PricePerDay float64 `yaml:"pricePerDay"`
	Image       string  `yaml:"image"`
	Category    string  `yaml:"category"`
}

// DefaultSeed returns the built-in starter catalog.
func DefaultSeed() []*Item {
	items, err := ParseSeed(defaultSeed)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog seed is invalid: %v", err))
	}
	return items
}

// LoadSeed reads an operator-supplied seed file, or the built-in seed when
// path is empty.
func LoadSeed(path string) ([]*Item, error) {
	if path == "" {
		return DefaultSeed(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog seed %s: %w", path, err)
	}
	items, err := ParseSeed(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog seed %s: %w", path, err)
	}
	return items, nil
}

func ParseSeed(data []byte) ([]*Item, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(f.Items))
	items := make([]*Item, 0, len(f.Items))
	for idx, s := range f.Items {
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("item %d: duplicate id %q", idx, s.ID)
		}
		seen[s.ID] = struct{}{}

		it, err := NewItem(s.ID, s.Title, s.Description, s.PricePerDay, s.Image, Category(s.Category))
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", idx, s.ID, err)
		}
		items = append(items, it)
	}
	return items, nil
}
