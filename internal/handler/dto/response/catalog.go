package response

import "equipment-rental/internal/usecase/queries"

type CatalogListResponse struct {
	Items    []*queries.CatalogItemView `json:"items"`
	Count    int                        `json:"count"`
	Category string                     `json:"category"`
	Query    string                     `json:"q,omitempty"`
}

func FromCatalogViews(items []*queries.CatalogItemView, category, q string) CatalogListResponse {
	if items == nil {
		items = []*queries.CatalogItemView{}
	}
	return CatalogListResponse{Items: items, Count: len(items), Category: category, Query: q}
}
