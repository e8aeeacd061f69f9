package search

import (
	"context"
	"strings"
	"time"

	log "github.com/Sirupsen/logrus"

	"github.com/lexcounsel/site-backend/consts"
)

type TermMatcher interface {
	Matches(item *SearchResult, term string) bool
}

type EngineOptions struct {
	Matcher        TermMatcher
	SuggestLatency time.Duration
	SearchLatency  time.Duration
	Cache          *SearchCache
}

// Engine filters the static site corpus. It is safe for concurrent use.
type Engine struct {
	corpus         []*SearchResult
	matcher        TermMatcher
	suggestLatency time.Duration
	searchLatency  time.Duration
	cache          *SearchCache
}

func DefaultEngineOptions() EngineOptions {
	return EngineOptions{
		Matcher:        DefaultMatcher,
		SuggestLatency: consts.DEFAULT_SUGGEST_LATENCY,
		SearchLatency:  consts.DEFAULT_SEARCH_LATENCY,
	}
}

func NewEngine(opts EngineOptions) *Engine {
	if opts.Matcher == nil {
		opts.Matcher = DefaultMatcher
	}
	return &Engine{
		corpus:         Corpus(),
		matcher:        opts.Matcher,
		suggestLatency: opts.SuggestLatency,
		searchLatency:  opts.SearchLatency,
		cache:          opts.Cache,
	}
}

// Suggest returns up to MAX_SUGGESTIONS autocomplete entries in corpus order.
func (e *Engine) Suggest(ctx context.Context, query string) ([]SearchSuggestion, error) {
	if strings.TrimSpace(query) == "" {
		return []SearchSuggestion{}, nil
	}
	if err := wait(ctx, e.suggestLatency); err != nil {
		return nil, err
	}

	matches := e.filter(query)
	if len(matches) > consts.MAX_SUGGESTIONS {
		matches = matches[:consts.MAX_SUGGESTIONS]
	}
	suggestions := make([]SearchSuggestion, len(matches))
	for i, x := range matches {
		suggestions[i] = x.Suggestion()
	}
	return suggestions, nil
}

// Search returns every matching record in corpus order.
func (e *Engine) Search(ctx context.Context, query string) ([]*SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return []*SearchResult{}, nil
	}
	if err := wait(ctx, e.searchLatency); err != nil {
		return nil, err
	}
	return e.filter(query), nil
}

func (e *Engine) filter(query string) []*SearchResult {
	if e.cache != nil {
		if res, ok := e.cache.Get(query); ok {
			return res
		}
	}

	res := make([]*SearchResult, 0)
	for _, x := range e.corpus {
		if e.matcher.Matches(x, query) {
			res = append(res, x)
		}
	}

	if e.cache != nil {
		e.cache.Set(query, res)
	}
	log.Debugf("search.filter %q: %d matches", query, len(res))
	return res
}

// wait blocks for d or until ctx is done, whichever comes first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
