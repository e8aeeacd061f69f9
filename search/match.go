package search

import (
	"strings"
)

// Matcher decides whether a record matches a free text query.
type Matcher struct {
	// CrossScript lets a non Arabic query also match the (non normalized) Arabic fields.
	CrossScript bool
}

var DefaultMatcher = Matcher{CrossScript: true}

func MatchesSearchTerm(item *SearchResult, searchTerm string) bool {
	return DefaultMatcher.Matches(item, searchTerm)
}

func (m Matcher) Matches(item *SearchResult, searchTerm string) bool {
	term := strings.TrimSpace(searchTerm)
	if ContainsArabic(term) {
		return matchArabic(item, NormalizeArabic(term))
	}

	term = strings.ToLower(term)
	if containsFold(item.Title, term) ||
		containsFold(item.Excerpt, term) ||
		anyContainsFold(item.Tags, term) ||
		containsFold(item.Category, term) {
		return true
	}

	if !m.CrossScript {
		return false
	}
	return (item.TitleAr.Valid && containsFold(item.TitleAr.String, term)) ||
		(item.ExcerptAr.Valid && containsFold(item.ExcerptAr.String, term)) ||
		(item.CategoryAr.Valid && containsFold(item.CategoryAr.String, term)) ||
		anyContainsFold(item.TagsAr, term)
}

func matchArabic(item *SearchResult, term string) bool {
	if item.TitleAr.Valid && strings.Contains(NormalizeArabic(item.TitleAr.String), term) {
		return true
	}
	if item.ExcerptAr.Valid && strings.Contains(NormalizeArabic(item.ExcerptAr.String), term) {
		return true
	}
	if item.CategoryAr.Valid && strings.Contains(NormalizeArabic(item.CategoryAr.String), term) {
		return true
	}
	for _, tag := range item.TagsAr {
		if strings.Contains(NormalizeArabic(tag), term) {
			return true
		}
	}
	return false
}

// term is expected to be lower case already
func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), term)
}

func anyContainsFold(list []string, term string) bool {
	for _, s := range list {
		if containsFold(s, term) {
			return true
		}
	}
	return false
}
