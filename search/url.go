package search

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/lexcounsel/site-backend/consts"
)

// ResultsURL builds the shareable results page location.
// Default page and page size are left out.
func ResultsURL(query string, page int, items int) string {
	v := url.Values{}
	v.Set("q", query)
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	if items != consts.DEFAULT_ITEMS_PER_PAGE && ValidItemsPerPage(items) {
		v.Set("items", strconv.Itoa(items))
	}
	return consts.SEARCH_RESULTS_PATH + "?" + v.Encode()
}

// ParseResultsQuery is the inverse of ResultsURL. Garbage falls back to defaults.
func ParseResultsQuery(v url.Values) (query string, page int, items int) {
	query = strings.TrimSpace(v.Get("q"))

	page = 1
	if p, err := strconv.Atoi(v.Get("page")); err == nil && p > 0 {
		page = p
	}

	items = consts.DEFAULT_ITEMS_PER_PAGE
	if n, err := strconv.Atoi(v.Get("items")); err == nil && ValidItemsPerPage(n) {
		items = n
	}

	return
}

// StateFromQuery restores the results page state of a visitor landing on a results URL.
func StateFromQuery(v url.Values, results []*SearchResult) State {
	q, page, items := ParseResultsQuery(v)
	s := NewState().
		Apply(SetQuery{Query: q}).
		Apply(ResultsLoaded{Results: results}).
		Apply(SetItemsPerPage{Items: items})
	return s.Apply(SetCurrentPage{Page: page})
}
