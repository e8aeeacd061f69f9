package search

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
)

const createSearchLogsTable = `
CREATE TABLE IF NOT EXISTS search_logs (
	id          BIGSERIAL PRIMARY KEY,
	created_at  TIMESTAMP WITH TIME ZONE NOT NULL,
	request_id  TEXT,
	query       TEXT NOT NULL,
	language    TEXT NOT NULL,
	locale      TEXT NOT NULL,
	kind        TEXT NOT NULL,
	total       INTEGER NOT NULL,
	page        INTEGER NOT NULL,
	items       INTEGER NOT NULL,
	result_ids  INTEGER[],
	duration_ms BIGINT NOT NULL,
	error       TEXT
)`

const insertSearchLog = `
INSERT INTO search_logs (created_at, request_id, query, language, locale, kind, total, page, items, result_ids, duration_ms, error)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

const selectSearchLogs = `
SELECT created_at, request_id, query, language, locale, kind, total, page, items, result_ids, duration_ms, error
FROM search_logs
WHERE created_at >= $1 AND created_at < $2
ORDER BY created_at`

type SearchLog struct {
	Created   time.Time     `json:"created"`
	RequestID null.String   `json:"request_id"`
	Query     string        `json:"query"`
	Language  string        `json:"language"`
	Locale    string        `json:"locale"`
	Kind      string        `json:"kind"`
	Total     int           `json:"total"`
	Page      int           `json:"page"`
	Items     int           `json:"items"`
	ResultIDs []int64       `json:"result_ids,omitempty"`
	Duration  time.Duration `json:"duration"`
	Error     null.String   `json:"error,omitempty"`
}

// SearchLogger appends one row per served search to Postgres.
type SearchLogger struct {
	db *sql.DB
}

func MakeSearchLogger(db *sql.DB) *SearchLogger {
	return &SearchLogger{db: db}
}

func (l *SearchLogger) EnsureSchema(ctx context.Context) error {
	if _, err := l.db.ExecContext(ctx, createSearchLogsTable); err != nil {
		return errors.Wrap(err, "create search_logs table")
	}
	return nil
}

func (l *SearchLogger) LogSearch(ctx context.Context, sl SearchLog) error {
	return l.logSearch(ctx, sl)
}

func (l *SearchLogger) LogSearchError(ctx context.Context, sl SearchLog, searchErr error) error {
	sl.Error = null.StringFrom(searchErr.Error())
	return l.logSearch(ctx, sl)
}

func (l *SearchLogger) logSearch(ctx context.Context, sl SearchLog) error {
	if sl.Created.IsZero() {
		sl.Created = time.Now()
	}
	_, err := l.db.ExecContext(ctx, insertSearchLog,
		sl.Created,
		sl.RequestID,
		sl.Query,
		sl.Language,
		sl.Locale,
		sl.Kind,
		sl.Total,
		sl.Page,
		sl.Items,
		pq.Array(sl.ResultIDs),
		sl.Duration.Milliseconds(),
		sl.Error,
	)
	if err != nil {
		return errors.Wrap(err, "Log Search")
	}
	return nil
}

// Logs returns the search logs created in [from, to).
func (l *SearchLogger) Logs(ctx context.Context, from, to time.Time) ([]SearchLog, error) {
	rows, err := l.db.QueryContext(ctx, selectSearchLogs, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "query search_logs")
	}
	defer rows.Close()

	logs := make([]SearchLog, 0)
	for rows.Next() {
		var sl SearchLog
		var durationMs int64
		if err := rows.Scan(
			&sl.Created,
			&sl.RequestID,
			&sl.Query,
			&sl.Language,
			&sl.Locale,
			&sl.Kind,
			&sl.Total,
			&sl.Page,
			&sl.Items,
			pq.Array(&sl.ResultIDs),
			&durationMs,
			&sl.Error,
		); err != nil {
			return nil, errors.Wrap(err, "rows.Scan")
		}
		sl.Duration = time.Duration(durationMs) * time.Millisecond
		logs = append(logs, sl)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "rows.Err")
	}
	return logs, nil
}

// ResultIDs collects the ids of results for a log row.
func ResultIDs(results []*SearchResult) []int64 {
	ids := make([]int64, len(results))
	for i, r := range results {
		ids[i] = int64(r.ID)
	}
	return ids
}
