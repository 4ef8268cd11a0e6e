package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListQuery(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected ListQuery
	}{
		{
			name:     "defaults",
			url:      "/api/assets",
			expected: ListQuery{Page: 0, Size: DefaultPageSize},
		},
		{
			name:     "all params",
			url:      "/api/assets?search=mac&filter=Returnable&sort=asc&page=2&size=20",
			expected: ListQuery{Search: "mac", Filter: "Returnable", Sort: "asc", Page: 2, Size: 20},
		},
		{
			name:     "size outside the menu falls back to default",
			url:      "/api/assets?size=17",
			expected: ListQuery{Page: 0, Size: DefaultPageSize},
		},
		{
			name:     "negative page clamps to zero",
			url:      "/api/assets?page=-3",
			expected: ListQuery{Page: 0, Size: DefaultPageSize},
		},
		{
			name:     "non-numeric paging is ignored",
			url:      "/api/assets?page=abc&size=xyz",
			expected: ListQuery{Page: 0, Size: DefaultPageSize},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			assert.Equal(t, tt.expected, ParseListQuery(r))
		})
	}
}

func TestLimitOffset(t *testing.T) {
	q := ListQuery{Page: 2, Size: 5}
	limit, offset := q.LimitOffset()
	assert.Equal(t, 5, limit)
	assert.Equal(t, 10, offset)
}

func TestNumberOfPages(t *testing.T) {
	assert.Equal(t, 3, NumberOfPages(25, 10))
	assert.Equal(t, 2, NumberOfPages(20, 10))
	assert.Equal(t, 1, NumberOfPages(1, 10))
	assert.Equal(t, 0, NumberOfPages(0, 10))
}

func TestPageStrip(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		total    int
		expected []int
	}{
		{
			name:     "few pages show everything",
			current:  0,
			total:    3,
			expected: []int{0, 1, 2},
		},
		{
			name:     "middle of a long run",
			current:  5,
			total:    12,
			expected: []int{0, EllipsisMarker, 4, 5, 6, EllipsisMarker, 11},
		},
		{
			name:     "near the start",
			current:  1,
			total:    10,
			expected: []int{0, 1, 2, EllipsisMarker, 9},
		},
		{
			name:     "near the end",
			current:  8,
			total:    10,
			expected: []int{0, EllipsisMarker, 7, 8, 9},
		},
		{
			name:     "single page",
			current:  0,
			total:    1,
			expected: []int{0},
		},
		{
			name:     "no pages",
			current:  0,
			total:    0,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PageStrip(tt.current, tt.total))
		})
	}
}
