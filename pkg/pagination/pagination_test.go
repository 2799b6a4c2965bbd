package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceWindows(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name    string
		page    int
		perPage int
		want    []int
		hasNext bool
		hasPrev bool
	}{
		{name: "first page", page: 1, perPage: 2, want: []int{1, 2}, hasNext: true, hasPrev: false},
		{name: "middle page", page: 2, perPage: 2, want: []int{3, 4}, hasNext: true, hasPrev: true},
		{name: "last partial page", page: 3, perPage: 2, want: []int{5}, hasNext: false, hasPrev: true},
		{name: "page past the end", page: 9, perPage: 2, want: []int{}, hasNext: false, hasPrev: true},
		{name: "everything on one page", page: 1, perPage: 50, want: []int{1, 2, 3, 4, 5}, hasNext: false, hasPrev: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slice(items, &PaginationParams{Page: tt.page, PerPage: tt.perPage})

			assert.Equal(t, tt.want, result.Items)
			assert.Equal(t, int64(5), result.Pagination.Total)
			assert.Equal(t, tt.hasNext, result.Pagination.HasNext)
			assert.Equal(t, tt.hasPrev, result.Pagination.HasPrev)
		})
	}
}

func TestSliceValidatesParams(t *testing.T) {
	items := []string{"a", "b"}

	result := Slice(items, &PaginationParams{Page: 0, PerPage: -3})

	assert.Equal(t, []string{"a", "b"}, result.Items)
	assert.Equal(t, 1, result.Pagination.CurrentPage)
	assert.Equal(t, 15, result.Pagination.PerPage)
}

func TestSliceEmptyCollection(t *testing.T) {
	result := Slice([]int{}, DefaultPagination())

	assert.Empty(t, result.Items)
	assert.Equal(t, int64(0), result.Pagination.Total)
	assert.Equal(t, 0, result.Pagination.TotalPages)
}
