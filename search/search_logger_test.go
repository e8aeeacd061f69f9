package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
	"github.com/volatiletech/null/v8"

	"github.com/lexcounsel/site-backend/search"
)

type SearchLoggerSuite struct {
	suite.Suite
	mock   sqlmock.Sqlmock
	logger *search.SearchLogger
}

func (suite *SearchLoggerSuite) SetupTest() {
	db, mock, err := sqlmock.New()
	suite.Require().Nil(err)
	suite.mock = mock
	suite.logger = search.MakeSearchLogger(db)
}

func (suite *SearchLoggerSuite) TearDownTest() {
	suite.Require().Nil(suite.mock.ExpectationsWereMet())
}

func TestSearchLogger(t *testing.T) {
	suite.Run(t, new(SearchLoggerSuite))
}

func (suite *SearchLoggerSuite) TestEnsureSchema() {
	suite.mock.ExpectExec("CREATE TABLE IF NOT EXISTS search_logs").
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.Require().Nil(suite.logger.EnsureSchema(context.Background()))
}

func (suite *SearchLoggerSuite) TestLogSearch() {
	r := suite.Require()
	results := search.Corpus()[:2]

	suite.mock.ExpectExec("INSERT INTO search_logs").
		WithArgs(sqlmock.AnyArg(), "req-1", "law", "en", "en", "search", 16, 1, 5,
			sqlmock.AnyArg(), int64(12), nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := suite.logger.LogSearch(context.Background(), search.SearchLog{
		RequestID: null.StringFrom("req-1"),
		Query:     "law",
		Language:  "en",
		Locale:    "en",
		Kind:      "search",
		Total:     16,
		Page:      1,
		Items:     5,
		ResultIDs: search.ResultIDs(results),
		Duration:  12 * time.Millisecond,
	})
	r.Nil(err)
}

func (suite *SearchLoggerSuite) TestLogSearchError() {
	r := suite.Require()

	suite.mock.ExpectExec("INSERT INTO search_logs").
		WithArgs(sqlmock.AnyArg(), nil, "tax", "en", "ar", "suggest", 0, 0, 0,
			sqlmock.AnyArg(), int64(0), "context canceled").
		WillReturnError(errors.New("connection refused"))

	err := suite.logger.LogSearchError(context.Background(), search.SearchLog{
		Query:    "tax",
		Language: "en",
		Locale:   "ar",
		Kind:     "suggest",
	}, context.Canceled)
	r.NotNil(err)
	r.Contains(err.Error(), "Log Search")
}

func (suite *SearchLoggerSuite) TestLogs() {
	r := suite.Require()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	rows := sqlmock.NewRows([]string{"created_at", "request_id", "query", "language", "locale", "kind",
		"total", "page", "items", "result_ids", "duration_ms", "error"}).
		AddRow(from.Add(time.Hour), "req-1", "تحكيم", "ar", "ar", "search", 2, 1, 5, "{4,14}", 501, nil).
		AddRow(from.Add(2*time.Hour), nil, "tax", "en", "en", "suggest", 1, 0, 0, "{7}", 300, nil)
	suite.mock.ExpectQuery("SELECT (.+) FROM search_logs").
		WithArgs(from, to).
		WillReturnRows(rows)

	logs, err := suite.logger.Logs(context.Background(), from, to)
	r.Nil(err)
	r.Len(logs, 2)
	r.Equal("تحكيم", logs[0].Query)
	r.Equal([]int64{4, 14}, logs[0].ResultIDs)
	r.Equal(501*time.Millisecond, logs[0].Duration)
	r.True(logs[0].RequestID.Valid)
	r.False(logs[1].RequestID.Valid)
	r.False(logs[1].Error.Valid)
}
