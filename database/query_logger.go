package database

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm/logger"
)

// QueryLog represents a single SQL query log entry
type QueryLog struct {
	ID        int           `json:"id"`
	SQL       string        `json:"sql"`
	Duration  time.Duration `json:"duration"`
	Rows      int64         `json:"rows"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// QueryLogger stores recently executed SQL statements for debugging
type QueryLogger struct {
	mu      sync.RWMutex
	queries []QueryLog
	maxLogs int
	counter int
}

// NewQueryLogger creates a new query logger
func NewQueryLogger(maxLogs int) *QueryLogger {
	return &QueryLogger{
		queries: make([]QueryLog, 0, maxLogs),
		maxLogs: maxLogs,
	}
}

// LogQuery logs a SQL query
func (ql *QueryLogger) LogQuery(sql string, duration time.Duration, rows int64, err error) {
	ql.mu.Lock()
	defer ql.mu.Unlock()

	ql.counter++
	entry := QueryLog{
		ID:        ql.counter,
		SQL:       sql,
		Duration:  duration,
		Rows:      rows,
		Timestamp: time.Now(),
	}

	if err != nil {
		entry.Error = err.Error()
	}

	// Add to beginning to show latest first
	ql.queries = append([]QueryLog{entry}, ql.queries...)

	// Keep only maxLogs entries
	if len(ql.queries) > ql.maxLogs {
		ql.queries = ql.queries[:ql.maxLogs]
	}
}

// GetQueries returns all logged queries
func (ql *QueryLogger) GetQueries() []QueryLog {
	ql.mu.RLock()
	defer ql.mu.RUnlock()

	result := make([]QueryLog, len(ql.queries))
	copy(result, ql.queries)
	return result
}

// Clear removes all logged queries
func (ql *QueryLogger) Clear() {
	ql.mu.Lock()
	defer ql.mu.Unlock()
	ql.queries = ql.queries[:0]
}

// queryLoggerHook is a GORM logger that records every statement into
// the manager's QueryLogger on top of the default logging behavior.
type queryLoggerHook struct {
	logger.Interface
	log *QueryLogger
}

// Trace implements logger.Interface
func (l *queryLoggerHook) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.Interface != nil {
		l.Interface.Trace(ctx, begin, fc, err)
	}

	sql, rows := fc()
	l.log.LogQuery(sql, time.Since(begin), rows, err)
}
