package search_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/lexcounsel/site-backend/search"
)

type countingMatcher struct {
	calls int32
}

func (m *countingMatcher) Matches(item *search.SearchResult, term string) bool {
	atomic.AddInt32(&m.calls, 1)
	return search.MatchesSearchTerm(item, term)
}

type EngineSuite struct {
	suite.Suite
	ctx context.Context
}

func (suite *EngineSuite) SetupTest() {
	suite.ctx = context.Background()
}

func TestEngine(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func newInstantEngine(m search.TermMatcher) *search.Engine {
	return search.NewEngine(search.EngineOptions{Matcher: m})
}

func ids(results []*search.SearchResult) []int {
	res := make([]int, len(results))
	for i, r := range results {
		res[i] = r.ID
	}
	return res
}

func (suite *EngineSuite) TestSearchEnglish() {
	r := suite.Require()
	engine := newInstantEngine(nil)

	res, err := engine.Search(suite.ctx, "arbitration")
	r.Nil(err)
	r.Equal([]int{4, 14}, ids(res))

	res, err = engine.Search(suite.ctx, "  TAX ")
	r.Nil(err)
	r.Equal([]int{7}, ids(res))

	res, err = engine.Search(suite.ctx, "law")
	r.Nil(err)
	r.True(len(res) >= 9, "law matches %d records", len(res))
	for i := 1; i < len(res); i++ {
		r.True(res[i-1].ID < res[i].ID, "results keep corpus order")
	}

	res, err = engine.Search(suite.ctx, "zzzzzz")
	r.Nil(err)
	r.NotNil(res)
	r.Empty(res)
}

func (suite *EngineSuite) TestEveryFieldFindsItsRecord() {
	r := suite.Require()
	engine := newInstantEngine(nil)

	for _, item := range search.Corpus() {
		values := []string{item.Title, item.Excerpt, item.Category}
		values = append(values, item.Tags...)
		values = append(values, item.TitleAr.String, item.ExcerptAr.String, item.CategoryAr.String)
		values = append(values, item.TagsAr...)

		for _, v := range values {
			if v == "" {
				continue
			}
			res, err := engine.Search(suite.ctx, v)
			r.Nil(err)
			r.Contains(ids(res), item.ID, "record %d not found by %q", item.ID, v)
		}
	}
}

func (suite *EngineSuite) TestSearchArabic() {
	r := suite.Require()
	engine := newInstantEngine(nil)

	res, err := engine.Search(suite.ctx, "تحكيم")
	r.Nil(err)
	r.NotEmpty(res)
	r.Equal(4, res[0].ID)
	r.Equal("International Arbitration Services", res[0].Title)

	withMarks, err := engine.Search(suite.ctx, "تَحْكِيم")
	r.Nil(err)
	r.Equal(ids(res), ids(withMarks))

	family, err := engine.Search(suite.ctx, "أسرة")
	r.Nil(err)
	r.Contains(ids(family), 9)
}

func (suite *EngineSuite) TestSuggestLimit() {
	r := suite.Require()
	engine := newInstantEngine(nil)

	all, err := engine.Search(suite.ctx, "law")
	r.Nil(err)

	suggestions, err := engine.Suggest(suite.ctx, "law")
	r.Nil(err)
	r.Len(suggestions, 5)
	for i, s := range suggestions {
		r.Equal(all[i].ID, s.ID)
		r.Equal(all[i].Title, s.Title)
		r.Equal(all[i].ReadMoreURL, s.ReadMoreURL)
	}
}

func (suite *EngineSuite) TestEmptyQueryNeverMatches() {
	r := suite.Require()
	m := new(countingMatcher)
	engine := search.NewEngine(search.EngineOptions{
		Matcher:        m,
		SuggestLatency: time.Hour,
		SearchLatency:  time.Hour,
	})

	start := time.Now()
	suggestions, err := engine.Suggest(suite.ctx, "   ")
	r.Nil(err)
	r.NotNil(suggestions)
	r.Empty(suggestions)

	results, err := engine.Search(suite.ctx, "")
	r.Nil(err)
	r.Empty(results)

	r.True(time.Since(start) < time.Second)
	r.Equal(int32(0), atomic.LoadInt32(&m.calls))
}

func (suite *EngineSuite) TestLatencyCancelled() {
	r := suite.Require()
	engine := search.NewEngine(search.EngineOptions{SearchLatency: time.Hour, SuggestLatency: time.Hour})

	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()

	_, err := engine.Search(ctx, "law")
	r.Equal(context.Canceled, err)
	_, err = engine.Suggest(ctx, "law")
	r.Equal(context.Canceled, err)
}

func (suite *EngineSuite) TestLatencyApplied() {
	r := suite.Require()
	engine := search.NewEngine(search.EngineOptions{SuggestLatency: 30 * time.Millisecond})

	start := time.Now()
	_, err := engine.Suggest(suite.ctx, "tax")
	r.Nil(err)
	r.True(time.Since(start) >= 30*time.Millisecond)
}

func (suite *EngineSuite) TestCache() {
	r := suite.Require()
	m := new(countingMatcher)
	cache := search.MakeSearchCache(time.Minute, 10)
	defer cache.Close()
	engine := search.NewEngine(search.EngineOptions{Matcher: m, Cache: cache})

	first, err := engine.Search(suite.ctx, "Tax")
	r.Nil(err)
	calls := atomic.LoadInt32(&m.calls)
	r.Equal(int32(len(search.Corpus())), calls)

	second, err := engine.Search(suite.ctx, " tax ")
	r.Nil(err)
	r.Equal(ids(first), ids(second))
	r.Equal(calls, atomic.LoadInt32(&m.calls))
}
