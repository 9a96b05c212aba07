package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_LimitOffset(t *testing.T) {
	tests := []struct {
		name       string
		params     Params
		wantLimit  int
		wantOffset int
		wantOK     bool
	}{
		{
			name:   "zero page and size returns everything",
			params: Params{Page: 0, PageSize: 0},
			wantOK: false,
		},
		{
			name:   "page without size still returns everything",
			params: Params{Page: 1, PageSize: 0},
			wantOK: false,
		},
		{
			name:   "size without page still returns everything",
			params: Params{Page: 0, PageSize: 10},
			wantOK: false,
		},
		{
			name:       "first page",
			params:     Params{Page: 1, PageSize: 10},
			wantLimit:  10,
			wantOffset: 0,
			wantOK:     true,
		},
		{
			name:       "second page skips one page",
			params:     Params{Page: 2, PageSize: 10},
			wantLimit:  10,
			wantOffset: 10,
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			limit, offset, ok := tt.params.LimitOffset()
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantLimit, limit)
				assert.Equal(t, tt.wantOffset, offset)
			}
		})
	}
}

func TestPagedResult_PageFlags(t *testing.T) {
	// 25 items, page 2 of size 10: items 11-20, neighbours on both sides
	r := PagedResult[int]{
		Items:      []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
		Page:       2,
		PageSize:   10,
		TotalCount: 25,
	}

	assert.True(t, r.HasNextPage())
	assert.True(t, r.HasPreviousPage())

	last := PagedResult[int]{Page: 3, PageSize: 10, TotalCount: 25}
	assert.False(t, last.HasNextPage())
	assert.True(t, last.HasPreviousPage())

	first := PagedResult[int]{Page: 1, PageSize: 10, TotalCount: 25}
	assert.True(t, first.HasNextPage())
	assert.False(t, first.HasPreviousPage())

	// unpaginated result: the formula still applies, 0*0 < 25
	all := PagedResult[int]{Page: 0, PageSize: 0, TotalCount: 25}
	assert.True(t, all.HasNextPage())
	assert.False(t, all.HasPreviousPage())
}

func TestMap(t *testing.T) {
	in := PagedResult[int]{
		Items:      []int{1, 2, 3},
		Page:       2,
		PageSize:   3,
		TotalCount: 9,
	}

	out := Map(in, func(v int) int { return v * 10 })

	assert.Equal(t, []int{10, 20, 30}, out.Items)
	assert.Equal(t, in.Page, out.Page)
	assert.Equal(t, in.PageSize, out.PageSize)
	assert.Equal(t, in.TotalCount, out.TotalCount)
}

func TestSortColumns_Column(t *testing.T) {
	cols := SortColumns{"userName": "username", "id": "id"}

	col, err := cols.Column("userName")
	require.NoError(t, err)
	assert.Equal(t, "username", col)

	_, err = cols.Column("passwordHash")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sort field")
}
