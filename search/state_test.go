package search_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lexcounsel/site-backend/search"
)

type StateSuite struct {
	suite.Suite
	corpus []*search.SearchResult
}

func (suite *StateSuite) SetupTest() {
	suite.corpus = search.Corpus()
}

func TestState(t *testing.T) {
	suite.Run(t, new(StateSuite))
}

func (suite *StateSuite) TestInitial() {
	r := suite.Require()
	s := search.NewState()
	r.Equal("", s.Query)
	r.Empty(s.Results)
	r.Equal(1, s.Pagination.CurrentPage)
	r.Equal(5, s.Pagination.ItemsPerPage)
	r.False(s.Loading)
}

func (suite *StateSuite) TestApplyDoesNotMutate() {
	r := suite.Require()
	s := search.NewState()
	next := s.Apply(search.SetQuery{Query: "law"})
	r.Equal("", s.Query)
	r.Equal("law", next.Query)
}

func (suite *StateSuite) TestEmptyQueryHidesSuggestions() {
	r := suite.Require()
	s := search.NewState().
		Apply(search.SetQuery{Query: "law"}).
		Apply(search.SuggestionsLoaded{Suggestions: []search.SearchSuggestion{suite.corpus[0].Suggestion()}})
	r.True(s.ShowSuggestions)
	r.Len(s.Suggestions, 1)

	s = s.Apply(search.SetQuery{Query: "  "})
	r.False(s.ShowSuggestions)
	r.Empty(s.Suggestions)
}

func (suite *StateSuite) TestResultsLoadedResetsPage() {
	r := suite.Require()
	s := search.NewState().
		Apply(search.ResultsLoaded{Results: suite.corpus}).
		Apply(search.SetCurrentPage{Page: 3})
	r.Equal(3, s.Pagination.CurrentPage)

	s = s.Apply(search.SetShowSuggestions{Show: true}).
		Apply(search.ResultsLoaded{Results: suite.corpus[:7]})
	r.Equal(1, s.Pagination.CurrentPage)
	r.False(s.ShowSuggestions)
	r.Len(s.CurrentPageResults(), 5)
}

func (suite *StateSuite) TestPageClamped() {
	r := suite.Require()
	s := search.NewState().
		Apply(search.ResultsLoaded{Results: suite.corpus}).
		Apply(search.SetCurrentPage{Page: 7})
	r.Equal(4, s.Pagination.CurrentPage)
	r.Equal(4, s.PaginationInfo().TotalPages)
	r.Equal([]int{16, 17, 18, 19, 20}, ids(s.CurrentPageResults()))

	s = s.Apply(search.SetCurrentPage{Page: 0})
	r.Equal(1, s.Pagination.CurrentPage)
}

func (suite *StateSuite) TestItemsPerPageResetsPage() {
	r := suite.Require()
	s := search.NewState().
		Apply(search.ResultsLoaded{Results: suite.corpus}).
		Apply(search.SetCurrentPage{Page: 2}).
		Apply(search.SetItemsPerPage{Items: 10})
	r.Equal(1, s.Pagination.CurrentPage)
	r.Equal(10, s.Pagination.ItemsPerPage)
	r.Equal(2, s.PaginationInfo().TotalPages)

	s = s.Apply(search.SetCurrentPage{Page: 2}).Apply(search.SetItemsPerPage{Items: 7})
	r.Equal(1, s.Pagination.CurrentPage)
	r.Equal(10, s.Pagination.ItemsPerPage)
}

func (suite *StateSuite) TestRequestLifecycle() {
	r := suite.Require()
	s := search.NewState().Apply(search.ResultsLoaded{Results: suite.corpus})

	s = s.Apply(search.RequestStarted{})
	r.True(s.Loading)

	s = s.Apply(search.RequestFailed{Message: "Search failed"})
	r.False(s.Loading)
	r.Equal("Search failed", s.Error)
	r.Empty(s.Results)

	s = s.Apply(search.RequestStarted{})
	r.Equal("", s.Error)
}

func (suite *StateSuite) TestClearAndReset() {
	r := suite.Require()
	s := search.NewState().
		Apply(search.SetQuery{Query: "tax"}).
		Apply(search.ResultsLoaded{Results: suite.corpus}).
		Apply(search.SetItemsPerPage{Items: 20})

	reset := s.Apply(search.ResetPagination{})
	r.Equal(5, reset.Pagination.ItemsPerPage)
	r.Equal("tax", reset.Query)

	cleared := s.Apply(search.ClearSearch{})
	r.Equal(search.NewState(), cleared)
}

func (suite *StateSuite) TestStateFromQuery() {
	r := suite.Require()
	s := search.StateFromQuery(url.Values{"q": {"law"}, "page": {"9"}, "items": {"10"}}, suite.corpus)
	r.Equal("law", s.Query)
	r.Equal(10, s.Pagination.ItemsPerPage)
	r.Equal(2, s.Pagination.CurrentPage)
	r.Equal(ids(suite.corpus[10:]), ids(s.CurrentPageResults()))
}
