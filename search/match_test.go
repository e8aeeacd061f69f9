package search_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/volatiletech/null/v8"

	"github.com/lexcounsel/site-backend/search"
)

type MatchSuite struct {
	suite.Suite
}

func TestMatch(t *testing.T) {
	suite.Run(t, new(MatchSuite))
}

func (suite *MatchSuite) TestContainsArabic() {
	r := suite.Require()
	r.True(search.ContainsArabic("قانون"))
	r.True(search.ContainsArabic("law قانون"))
	r.True(search.ContainsArabic("ﻻ"))
	r.True(search.ContainsArabic("ݐ"))
	r.False(search.ContainsArabic("law"))
	r.False(search.ContainsArabic(""))
	r.False(search.ContainsArabic("שלום"))
}

func (suite *MatchSuite) TestNormalizeArabic() {
	r := suite.Require()
	r.Equal("اسره", search.NormalizeArabic("أسرة"))
	r.Equal("اسره", search.NormalizeArabic("إسره"))
	r.Equal("قانون", search.NormalizeArabic("قَانُون"))
	r.Equal("مصطفي", search.NormalizeArabic("مصطفى"))
	r.Equal(search.NormalizeArabic("التحكيم"), search.NormalizeArabic("التَّحْكِيم"))
	r.Equal("law", search.NormalizeArabic("LAW"))
	r.Equal("", search.NormalizeArabic(""))
}

func (suite *MatchSuite) TestMatches() {
	r := suite.Require()
	item := &search.SearchResult{
		ID:         1,
		Title:      "Tax Law & Planning",
		Excerpt:    "Strategic tax planning",
		Category:   "Services",
		Tags:       []string{"Compliance"},
		TitleAr:    null.StringFrom("قانون الضرائب والتخطيط"),
		CategoryAr: null.StringFrom("الخدمات"),
		TagsAr:     []string{"الامتثال"},
	}

	r.True(search.MatchesSearchTerm(item, "tax"))
	r.True(search.MatchesSearchTerm(item, "PLANNING"))
	r.True(search.MatchesSearchTerm(item, "complian"))
	r.True(search.MatchesSearchTerm(item, "services"))
	r.False(search.MatchesSearchTerm(item, "divorce"))

	r.True(search.MatchesSearchTerm(item, "الضرائب"))
	r.True(search.MatchesSearchTerm(item, "امتثال"))
	r.False(search.MatchesSearchTerm(item, "الطلاق"))
}

func (suite *MatchSuite) TestArabicQueryIgnoresEnglish() {
	r := suite.Require()
	item := &search.SearchResult{Title: "قانون", Excerpt: "english only"}
	r.False(search.MatchesSearchTerm(item, "قانون"))
}

func (suite *MatchSuite) TestMissingArabicFields() {
	r := suite.Require()
	item := &search.SearchResult{Title: "Office Hours"}
	r.False(search.MatchesSearchTerm(item, "مكتب"))
	r.True(search.MatchesSearchTerm(item, "office"))
}

func (suite *MatchSuite) TestCrossScript() {
	r := suite.Require()
	item := &search.SearchResult{
		Title:   "Contact",
		TitleAr: null.StringFrom("Contact us - اتصل بنا"),
		TagsAr:  []string{"hotline"},
	}
	r.True(search.Matcher{CrossScript: true}.Matches(item, "hotline"))
	r.False(search.Matcher{CrossScript: false}.Matches(item, "hotline"))
}
