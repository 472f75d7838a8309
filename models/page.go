package models

// PageSize is the fixed number of items per listing page.
const PageSize = 10

// Page is one page of a listing query result.
//
// Count is the total number of matching rows (not the page length), so a
// client can derive the page count without a separate request. Pages are
// numbered from 1.
type Page[T any] struct {
	Count       int64 `json:"count"`
	Results     []T   `json:"results"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// NewPage assembles a Page from one page worth of rows plus the total row
// count and the 1-based page number the rows belong to.
func NewPage[T any](results []T, total int64, page int) Page[T] {
	if results == nil {
		results = []T{}
	}

	return Page[T]{
		Count:       total,
		Results:     results,
		HasNext:     int64(page)*PageSize < total,
		HasPrevious: page > 1 && total > 0,
	}
}
