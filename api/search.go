package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	log "github.com/Sirupsen/logrus"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
	"gopkg.in/gin-gonic/gin.v1"

	"github.com/lexcounsel/site-backend/consts"
	"github.com/lexcounsel/site-backend/events"
	"github.com/lexcounsel/site-backend/search"
	"github.com/lexcounsel/site-backend/utils"
)

type Searcher interface {
	Suggest(ctx context.Context, query string) ([]search.SearchSuggestion, error)
	Search(ctx context.Context, query string) ([]*search.SearchResult, error)
}

type SearchLogWriter interface {
	LogSearch(ctx context.Context, sl search.SearchLog) error
	LogSearchError(ctx context.Context, sl search.SearchLog, err error) error
}

var errItemsPerPage = errors.New("items must be one of 5, 10, 20")

func SuggestHandler(c *gin.Context) {
	var r SearchRequest
	if c.Bind(&r) != nil {
		return
	}

	locale := requestLocale(c, r.BaseRequest)
	query := strings.TrimSpace(r.Query)
	engine := c.MustGet("SEARCH_ENGINE").(Searcher)

	suggestions, err := engine.Suggest(c.Request.Context(), query)
	if err != nil {
		abortSearch(c, err)
		return
	}

	language := utils.DetectQueryLanguage(query, locale)
	if query != "" {
		searchesTotal.WithLabelValues(consts.SEARCH_KIND_SUGGEST, language).Inc()
	}
	c.JSON(http.StatusOK, SuggestResponse{
		Query:       query,
		Language:    language,
		Suggestions: suggestions,
	})
}

func SearchHandler(c *gin.Context) {
	var r SearchRequest
	if c.Bind(&r) != nil {
		return
	}

	if raw := c.Query("items"); raw != "" {
		if n, err := strconv.Atoi(raw); err != nil || !search.ValidItemsPerPage(n) {
			NewBadRequestError(errItemsPerPage).Abort(c)
			return
		}
	}

	locale := requestLocale(c, r.BaseRequest)
	query := strings.TrimSpace(r.Query)
	language := utils.DetectQueryLanguage(query, locale)
	engine := c.MustGet("SEARCH_ENGINE").(Searcher)

	sl := search.SearchLog{
		Created:   time.Now(),
		RequestID: null.NewString(utils.RequestID(c), utils.RequestID(c) != ""),
		Query:     query,
		Language:  language,
		Locale:    locale,
		Kind:      consts.SEARCH_KIND_FULL,
	}

	results, err := engine.Search(c.Request.Context(), query)
	sl.Duration = time.Since(sl.Created)
	if err != nil {
		if query != "" {
			logSearch(c, sl, err)
		}
		abortSearch(c, err)
		return
	}

	state := search.StateFromQuery(c.Request.URL.Query(), results)
	info := state.PaginationInfo()
	page := state.CurrentPageResults()

	if query != "" {
		searchesTotal.WithLabelValues(consts.SEARCH_KIND_FULL, language).Inc()
		sl.Total = info.TotalResults
		sl.Page = info.CurrentPage
		sl.Items = info.ItemsPerPage
		sl.ResultIDs = search.ResultIDs(page)
		logSearch(c, sl, nil)
	}

	self := search.ResultsURL(query, info.CurrentPage, info.ItemsPerPage)
	urls := ResultURLs{
		Self:  self,
		Share: utils.AbsoluteURL(c, self),
	}
	if info.HasNextPage {
		urls.Next = search.ResultsURL(query, info.CurrentPage+1, info.ItemsPerPage)
	}
	if info.HasPrevPage {
		urls.Prev = search.ResultsURL(query, info.CurrentPage-1, info.ItemsPerPage)
	}

	c.JSON(http.StatusOK, SearchResponse{
		Query:      query,
		Language:   language,
		Locale:     locale,
		Results:    page,
		Pagination: info,
		Pages:      search.PageNumbers(info.CurrentPage, info.TotalPages),
		URLs:       urls,
	})
}

func abortSearch(c *gin.Context, err error) {
	if cause := errors.Cause(err); cause == context.Canceled || cause == context.DeadlineExceeded {
		NewTimeoutError(errors.Wrap(err, "search")).Abort(c)
		return
	}
	NewInternalError(errors.Wrap(err, "search")).Abort(c)
}

// logSearch writes the search log in the background when a logger is configured.
func logSearch(c *gin.Context, sl search.SearchLog, searchErr error) {
	v, ok := c.Get("SEARCH_LOGGER")
	if !ok || v == nil {
		return
	}
	logger := v.(SearchLogWriter)

	task := events.Task{
		Name: "log search",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if searchErr != nil {
				return logger.LogSearchError(ctx, sl, searchErr)
			}
			return logger.LogSearch(ctx, sl)
		},
	}

	if q, ok := c.Get("QUEUE"); ok && q != nil {
		if !q.(events.WorkQueue).Enqueue(task) {
			log.Warnf("search log dropped: %q", sl.Query)
		}
		return
	}
	task.Do()
}

func requestLocale(c *gin.Context, r BaseRequest) string {
	return utils.ResolveLocale(r.Locale, c.Request.Header.Get("Accept-Language"))
}
