package search

import (
	"github.com/lexcounsel/site-backend/consts"
)

type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
}

type PaginationInfo struct {
	CurrentPage  int  `json:"currentPage"`
	ItemsPerPage int  `json:"itemsPerPage"`
	TotalPages   int  `json:"totalPages"`
	TotalResults int  `json:"totalResults"`
	StartItem    int  `json:"startItem"`
	EndItem      int  `json:"endItem"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

func DefaultPagination() Pagination {
	return Pagination{CurrentPage: 1, ItemsPerPage: consts.DEFAULT_ITEMS_PER_PAGE}
}

func ValidItemsPerPage(n int) bool {
	for _, x := range consts.ITEMS_PER_PAGE {
		if x == n {
			return true
		}
	}
	return false
}

func TotalPages(total, itemsPerPage int) int {
	if total <= 0 || itemsPerPage <= 0 {
		return 0
	}
	return (total + itemsPerPage - 1) / itemsPerPage
}

// ClampPage forces page into [1, totalPages]. With no pages at all it is 1.
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate returns the slice of results shown on the given page.
// page is clamped, so the result holds at most itemsPerPage items.
func Paginate(results []*SearchResult, page, itemsPerPage int) []*SearchResult {
	if itemsPerPage <= 0 || len(results) == 0 {
		return []*SearchResult{}
	}
	page = ClampPage(page, TotalPages(len(results), itemsPerPage))
	start := (page - 1) * itemsPerPage
	end := start + itemsPerPage
	if end > len(results) {
		end = len(results)
	}
	return results[start:end]
}

func NewPaginationInfo(total, page, itemsPerPage int) PaginationInfo {
	totalPages := TotalPages(total, itemsPerPage)
	page = ClampPage(page, totalPages)
	info := PaginationInfo{
		CurrentPage:  page,
		ItemsPerPage: itemsPerPage,
		TotalPages:   totalPages,
		TotalResults: total,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
	if total > 0 {
		info.StartItem = (page-1)*itemsPerPage + 1
		info.EndItem = page * itemsPerPage
		if info.EndItem > total {
			info.EndItem = total
		}
	}
	return info
}

// PageNumbers lays out the page links of the results page.
// 0 stands for an ellipsis.
func PageNumbers(current, totalPages int) []int {
	const maxVisible = 5

	if totalPages <= 0 {
		return []int{}
	}
	if totalPages <= maxVisible {
		pages := make([]int, totalPages)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	current = ClampPage(current, totalPages)
	switch {
	case current <= 3:
		return []int{1, 2, 3, 0, totalPages}
	case current >= totalPages-2:
		return []int{1, 0, totalPages - 2, totalPages - 1, totalPages}
	default:
		return []int{1, 0, current - 1, current, current + 1, 0, totalPages}
	}
}
