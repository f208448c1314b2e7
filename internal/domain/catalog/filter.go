package catalog

import "strings"

// Filter keeps items of the given category whose title or description
// contains term, ignoring case. A blank term matches every item of the
// category. Input order is preserved and the result is never nil.
func Filter(items []*Item, term string, category Category) []*Item {
	needle := strings.ToLower(strings.TrimSpace(term))

	out := make([]*Item, 0, len(items))
	for _, it := range items {
		if it == nil || it.category != category {
			continue
		}
		if needle == "" ||
			strings.Contains(strings.ToLower(it.title), needle) ||
			strings.Contains(strings.ToLower(it.description), needle) {
			out = append(out, it)
		}
	}
	return out
}
