package utils

import (
	"net/http"
	"strconv"
)

// Listing query contract: pages are zero-based, sizes come from a fixed
// menu, and the server does all filtering. Any out-of-menu size falls back
// to the default rather than erroring.

const DefaultPageSize = 10

var allowedPageSizes = map[int]bool{5: true, 10: true, 20: true, 50: true}

type ListQuery struct {
	Search string
	Filter string
	Sort   string
	Page   int
	Size   int
}

func ParseListQuery(r *http.Request) ListQuery {
	q := ListQuery{
		Search: r.URL.Query().Get("search"),
		Filter: r.URL.Query().Get("filter"),
		Sort:   r.URL.Query().Get("sort"),
		Size:   DefaultPageSize,
	}

	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page > 0 {
		q.Page = page
	}
	if size, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && allowedPageSizes[size] {
		q.Size = size
	}
	return q
}

func (q ListQuery) LimitOffset() (int, int) {
	return q.Size, q.Page * q.Size
}

func NumberOfPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// EllipsisMarker stands in for a run of hidden pages in a page strip.
const EllipsisMarker = -1

// PageStrip returns the truncated pagination strip: first page, last page
// and a window of one page either side of current, with ellipsis markers
// where pages are skipped.
func PageStrip(current, total int) []int {
	if total <= 0 {
		return nil
	}

	show := make(map[int]bool)
	show[0] = true
	show[total-1] = true
	for p := current - 1; p <= current+1; p++ {
		if p >= 0 && p < total {
			show[p] = true
		}
	}

	strip := make([]int, 0, total)
	prev := -1
	for p := 0; p < total; p++ {
		if !show[p] {
			continue
		}
		if prev >= 0 && p-prev > 1 {
			strip = append(strip, EllipsisMarker)
		}
		strip = append(strip, p)
		prev = p
	}
	return strip
}
