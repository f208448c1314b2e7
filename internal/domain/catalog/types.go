package catalog

import "errors"

var ErrInvalidCategory = errors.New("category must be equipment or lab")

type Category string

const (
	CategoryEquipment Category = "equipment"
	CategoryLab       Category = "lab"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryEquipment, CategoryLab:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}
