package api

import (
	"github.com/lexcounsel/site-backend/cms"
	"github.com/lexcounsel/site-backend/search"
)

type BaseRequest struct {
	Locale string `json:"locale" form:"locale" binding:"omitempty,len=2"`
}

type SearchRequest struct {
	BaseRequest
	Query string `json:"q" form:"q" binding:"max=200"`
}

type SubscribeRequest struct {
	Email string `json:"email" form:"email" binding:"max=254"`
}

type CheckSubscriptionRequest struct {
	Email string `json:"email" form:"email" binding:"max=254"`
}

// CMS webhook body. Only the fields we act on.
type WebhookRequest struct {
	Event string `json:"event" binding:"required"`
	Model string `json:"model"`
}

type SuggestResponse struct {
	Query       string                    `json:"query"`
	Language    string                    `json:"language"`
	Suggestions []search.SearchSuggestion `json:"suggestions"`
}

type ResultURLs struct {
	Self  string `json:"self"`
	Share string `json:"share"`
	Next  string `json:"next,omitempty"`
	Prev  string `json:"prev,omitempty"`
}

type SearchResponse struct {
	Query      string                 `json:"query"`
	Language   string                 `json:"language"`
	Locale     string                 `json:"locale"`
	Results    []*search.SearchResult `json:"results"`
	Pagination search.PaginationInfo  `json:"pagination"`
	Pages      []int                  `json:"pages"`
	URLs       ResultURLs             `json:"urls"`
}

type TeamResponse struct {
	Locale  string           `json:"locale"`
	Members []cms.MemberView `json:"members"`
}

type HeroResponse struct {
	Locale string          `json:"locale"`
	Slides []cms.SlideView `json:"slides"`
}

type ClientsResponse struct {
	Locale string `json:"locale"`
	cms.TestimonialsView
}

// HomeResponse carries every section the home page renders. A section that
// failed to load is nil and has its message in Errors.
type HomeResponse struct {
	Locale  string                `json:"locale"`
	Team    []cms.MemberView      `json:"team"`
	Hero    []cms.SlideView       `json:"hero"`
	Clients *cms.TestimonialsView `json:"clients"`
	Errors  map[string]string     `json:"errors,omitempty"`
}

type SubscriptionResponse struct {
	Status  string `json:"status"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type CheckSubscriptionResponse struct {
	Email      string `json:"email"`
	Subscribed bool   `json:"subscribed"`
}

type WebhookResponse struct {
	Status  string `json:"status"`
	Section string `json:"section,omitempty"`
}
