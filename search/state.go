package search

import (
	"strings"
)

// State is the search UI state of a single visitor. It is a value type:
// Apply never mutates the receiver.
type State struct {
	Query           string             `json:"query"`
	Suggestions     []SearchSuggestion `json:"suggestions"`
	Results         []*SearchResult    `json:"results"`
	Loading         bool               `json:"loading"`
	Error           string             `json:"error,omitempty"`
	ShowSuggestions bool               `json:"showSuggestions"`
	Pagination      Pagination         `json:"pagination"`
}

type Action interface {
	apply(s State) State
}

type SetQuery struct{ Query string }
type SetShowSuggestions struct{ Show bool }
type ClearSearch struct{}
type SetCurrentPage struct{ Page int }
type SetItemsPerPage struct{ Items int }
type ResetPagination struct{}
type SuggestionsLoaded struct{ Suggestions []SearchSuggestion }
type ResultsLoaded struct{ Results []*SearchResult }
type RequestStarted struct{}
type RequestFailed struct{ Message string }

func NewState() State {
	return State{
		Suggestions: []SearchSuggestion{},
		Results:     []*SearchResult{},
		Pagination:  DefaultPagination(),
	}
}

func (s State) Apply(a Action) State {
	return a.apply(s)
}

func (s State) TotalPages() int {
	return TotalPages(len(s.Results), s.Pagination.ItemsPerPage)
}

func (s State) CurrentPageResults() []*SearchResult {
	return Paginate(s.Results, s.Pagination.CurrentPage, s.Pagination.ItemsPerPage)
}

func (s State) PaginationInfo() PaginationInfo {
	return NewPaginationInfo(len(s.Results), s.Pagination.CurrentPage, s.Pagination.ItemsPerPage)
}

func (a SetQuery) apply(s State) State {
	s.Query = a.Query
	if strings.TrimSpace(a.Query) == "" {
		s.Suggestions = []SearchSuggestion{}
		s.ShowSuggestions = false
	}
	return s
}

func (a SetShowSuggestions) apply(s State) State {
	s.ShowSuggestions = a.Show
	return s
}

func (ClearSearch) apply(s State) State {
	return NewState()
}

func (a SetCurrentPage) apply(s State) State {
	s.Pagination.CurrentPage = ClampPage(a.Page, s.TotalPages())
	return s
}

func (a SetItemsPerPage) apply(s State) State {
	if ValidItemsPerPage(a.Items) {
		s.Pagination.ItemsPerPage = a.Items
	}
	s.Pagination.CurrentPage = 1
	return s
}

func (ResetPagination) apply(s State) State {
	s.Pagination = DefaultPagination()
	return s
}

func (a SuggestionsLoaded) apply(s State) State {
	s.Loading = false
	s.Error = ""
	s.Suggestions = a.Suggestions
	if s.Suggestions == nil {
		s.Suggestions = []SearchSuggestion{}
	}
	s.ShowSuggestions = len(s.Suggestions) > 0 && strings.TrimSpace(s.Query) != ""
	return s
}

func (a ResultsLoaded) apply(s State) State {
	s.Loading = false
	s.Error = ""
	s.Results = a.Results
	if s.Results == nil {
		s.Results = []*SearchResult{}
	}
	s.ShowSuggestions = false
	s.Pagination.CurrentPage = 1
	return s
}

func (RequestStarted) apply(s State) State {
	s.Loading = true
	s.Error = ""
	return s
}

func (a RequestFailed) apply(s State) State {
	s.Loading = false
	s.Error = a.Message
	s.Results = []*SearchResult{}
	return s
}
