// Package memory provides map-backed repositories used when no database is
// configured. They follow the same contracts as the MySQL repositories,
// including ErrNotFound and ErrDuplicate.
package memory

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/bloggers/bloggers-api/internal/model"
)

type comparator[T any] func(a, b T) int

func byString[T any](get func(T) string) comparator[T] {
	return func(a, b T) int { return cmp.Compare(get(a), get(b)) }
}

func byBool[T any](get func(T) bool) comparator[T] {
	rank := func(v bool) int {
		if v {
			return 1
		}
		return 0
	}
	return func(a, b T) int { return cmp.Compare(rank(get(a)), rank(get(b))) }
}

func byTime[T any](get func(T) time.Time) comparator[T] {
	return func(a, b T) int { return get(a).Compare(get(b)) }
}

// page sorts items by the whitelisted field (created_at when unknown), with
// the id as tiebreaker, and returns the requested window and total count.
func page[T any](items []T, q model.PageQuery, fields map[string]comparator[T], id func(T) string) ([]T, int) {
	compare, ok := fields[q.SortBy]
	if !ok {
		compare = fields[model.DefaultSortBy]
	}
	slices.SortFunc(items, func(a, b T) int {
		c := compare(a, b)
		if c == 0 {
			c = cmp.Compare(id(a), id(b))
		}
		if q.SortDirection == model.SortAsc {
			return c
		}
		return -c
	})

	total := len(items)
	start := min(q.Offset(), total)
	end := min(start+q.PageSize, total)
	return items[start:end], total
}

func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}
