package model

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	// MaxPageNumber keeps Offset within int range at MaxPageSize.
	MaxPageNumber = math.MaxInt / MaxPageSize
)

// SortDirection orders list results.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// PageQuery holds normalised paging and sorting parameters.
type PageQuery struct {
	PageNumber    int
	PageSize      int
	SortBy        string
	SortDirection SortDirection
}

// Offset returns the number of items to skip. It never goes negative; a
// page too far out to represent saturates at math.MaxInt.
func (q PageQuery) Offset() int {
	if q.PageNumber < 1 || q.PageSize < 1 {
		return 0
	}
	if q.PageNumber-1 > math.MaxInt/q.PageSize {
		return math.MaxInt
	}
	return (q.PageNumber - 1) * q.PageSize
}

// Page is a paginated list response.
type Page[T any] struct {
	PagesCount int `json:"pagesCount"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	Items      []T `json:"items"`
}

// NewPage builds a Page for items out of total matches.
func NewPage[T any](q PageQuery, total int, items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if q.PageSize > 0 {
		pages = (total + q.PageSize - 1) / q.PageSize
	}
	return Page[T]{
		PagesCount: pages,
		Page:       q.PageNumber,
		PageSize:   q.PageSize,
		TotalCount: total,
		Items:      items,
	}
}

// DefaultSortBy is the sort field used when none, or an unknown one, is given.
const DefaultSortBy = "createdAt"
