package search_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lexcounsel/site-backend/search"
)

type PaginationSuite struct {
	suite.Suite
}

func TestPagination(t *testing.T) {
	suite.Run(t, new(PaginationSuite))
}

func (suite *PaginationSuite) TestClampPage() {
	r := suite.Require()
	r.Equal(1, search.ClampPage(0, 4))
	r.Equal(1, search.ClampPage(-3, 4))
	r.Equal(4, search.ClampPage(7, 4))
	r.Equal(2, search.ClampPage(2, 4))
	r.Equal(1, search.ClampPage(3, 0))
}

func (suite *PaginationSuite) TestPaginateReconstructs() {
	r := suite.Require()
	corpus := search.Corpus()

	for _, perPage := range []int{5, 10, 20, 3} {
		total := search.TotalPages(len(corpus), perPage)
		all := make([]*search.SearchResult, 0)
		for p := 1; p <= total; p++ {
			page := search.Paginate(corpus, p, perPage)
			r.True(len(page) <= perPage)
			all = append(all, page...)
		}
		r.Equal(ids(corpus), ids(all), "per page %d", perPage)
	}

	r.Empty(search.Paginate(nil, 1, 5))
	r.Len(search.Paginate(corpus, 99, 5), 5)
}

func (suite *PaginationSuite) TestPaginationInfo() {
	r := suite.Require()

	info := search.NewPaginationInfo(20, 7, 5)
	r.Equal(4, info.TotalPages)
	r.Equal(4, info.CurrentPage)
	r.Equal(16, info.StartItem)
	r.Equal(20, info.EndItem)
	r.False(info.HasNextPage)
	r.True(info.HasPrevPage)

	info = search.NewPaginationInfo(12, 1, 10)
	r.Equal(2, info.TotalPages)
	r.Equal(1, info.StartItem)
	r.Equal(10, info.EndItem)
	r.True(info.HasNextPage)
	r.False(info.HasPrevPage)

	info = search.NewPaginationInfo(12, 2, 10)
	r.Equal(11, info.StartItem)
	r.Equal(12, info.EndItem)

	info = search.NewPaginationInfo(0, 3, 5)
	r.Equal(0, info.TotalPages)
	r.Equal(1, info.CurrentPage)
	r.Equal(0, info.StartItem)
	r.Equal(0, info.EndItem)
	r.False(info.HasNextPage)
	r.False(info.HasPrevPage)
}

func (suite *PaginationSuite) TestPageNumbers() {
	r := suite.Require()
	r.Equal([]int{}, search.PageNumbers(1, 0))
	r.Equal([]int{1, 2, 3, 4}, search.PageNumbers(2, 4))
	r.Equal([]int{1, 2, 3, 4, 5}, search.PageNumbers(5, 5))
	r.Equal([]int{1, 2, 3, 0, 10}, search.PageNumbers(2, 10))
	r.Equal([]int{1, 0, 8, 9, 10}, search.PageNumbers(9, 10))
	r.Equal([]int{1, 0, 4, 5, 6, 0, 10}, search.PageNumbers(5, 10))
	r.Equal([]int{1, 0, 8, 9, 10}, search.PageNumbers(42, 10))
}

func (suite *PaginationSuite) TestValidItemsPerPage() {
	r := suite.Require()
	r.True(search.ValidItemsPerPage(5))
	r.True(search.ValidItemsPerPage(10))
	r.True(search.ValidItemsPerPage(20))
	r.False(search.ValidItemsPerPage(0))
	r.False(search.ValidItemsPerPage(7))
}

func (suite *PaginationSuite) TestResultsURL() {
	r := suite.Require()
	r.Equal("/search-results?q=law", search.ResultsURL("law", 1, 5))
	r.Equal("/search-results?page=3&q=law", search.ResultsURL("law", 3, 5))
	r.Equal("/search-results?items=10&page=2&q=tax+law", search.ResultsURL("tax law", 2, 10))

	u, err := url.Parse(search.ResultsURL("تحكيم", 2, 20))
	r.Nil(err)
	q, page, items := search.ParseResultsQuery(u.Query())
	r.Equal("تحكيم", q)
	r.Equal(2, page)
	r.Equal(20, items)
}

func (suite *PaginationSuite) TestParseResultsQueryLenient() {
	r := suite.Require()
	q, page, items := search.ParseResultsQuery(url.Values{
		"q":     {" law "},
		"page":  {"abc"},
		"items": {"7"},
	})
	r.Equal("law", q)
	r.Equal(1, page)
	r.Equal(5, items)

	_, page, _ = search.ParseResultsQuery(url.Values{"page": {"-2"}})
	r.Equal(1, page)
}
