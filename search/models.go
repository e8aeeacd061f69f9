package search

import (
	"github.com/volatiletech/null/v8"
)

// SearchResult is one searchable unit of site content (service, team member bio, page).
// Arabic fields are optional parallel translations of the English ones.
type SearchResult struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Excerpt     string      `json:"excerpt"`
	Category    string      `json:"category"`
	ReadMoreURL string      `json:"readMoreUrl"`
	Tags        []string    `json:"tags,omitempty"`
	TitleAr     null.String `json:"titleAr"`
	ExcerptAr   null.String `json:"excerptAr"`
	CategoryAr  null.String `json:"categoryAr"`
	TagsAr      []string    `json:"tagsAr,omitempty"`
}

// SearchSuggestion is the autocomplete projection of a SearchResult.
type SearchSuggestion struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	TitleAr     null.String `json:"titleAr"`
	Category    string      `json:"category"`
	CategoryAr  null.String `json:"categoryAr"`
	ReadMoreURL string      `json:"readMoreUrl"`
}

func (r *SearchResult) Suggestion() SearchSuggestion {
	return SearchSuggestion{
		ID:          r.ID,
		Title:       r.Title,
		TitleAr:     r.TitleAr,
		Category:    r.Category,
		CategoryAr:  r.CategoryAr,
		ReadMoreURL: r.ReadMoreURL,
	}
}
