// Package paging holds the shared pagination contract: query parameters,
// the paged result envelope, and the whitelist of sortable columns.
package paging

import (
	"fmt"
)

// Params come straight from the query string. Pagination applies only when
// BOTH Page and PageSize are non-zero; otherwise the full result set is
// returned (total count is always computed first, before any paging).
type Params struct {
	Page     int
	PageSize int
	SortBy   string
	Desc     bool
}

// Paginated reports whether Params actually slice the result set.
func (p Params) Paginated() bool { return p.Page != 0 && p.PageSize != 0 }

// LimitOffset translates 1-based page parameters into a LIMIT/OFFSET pair.
// The ok flag is false when the params do not paginate at all.
func (p Params) LimitOffset() (limit, offset int, ok bool) {
	if !p.Paginated() {
		return 0, 0, false
	}
	return p.PageSize, (p.Page - 1) * p.PageSize, true
}

type PagedResult[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
}

func (r PagedResult[T]) HasNextPage() bool     { return r.Page*r.PageSize < r.TotalCount }
func (r PagedResult[T]) HasPreviousPage() bool { return r.Page > 1 }

// Map converts the item type of a paged result, keeping the paging metadata.
func Map[T, U any](r PagedResult[T], fn func(T) U) PagedResult[U] {
	items := make([]U, len(r.Items))
	for i, it := range r.Items {
		items[i] = fn(it)
	}
	return PagedResult[U]{
		Items:      items,
		Page:       r.Page,
		PageSize:   r.PageSize,
		TotalCount: r.TotalCount,
	}
}

// SortColumns maps the sort keys a client may pass to the columns they
// resolve to. Unknown keys are rejected instead of being looked up
// dynamically.
type SortColumns map[string]string

func (s SortColumns) Column(sortBy string) (string, error) {
	col, ok := s[sortBy]
	if !ok {
		return "", fmt.Errorf("unknown sort field %q", sortBy)
	}
	return col, nil
}
