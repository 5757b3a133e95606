package database

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireReusesHandle(t *testing.T) {
	manager := NewWithDialector(sqlite.Open(":memory:"))
	defer manager.Release()

	first, err := manager.Acquire()
	require.NoError(t, err)

	second, err := manager.Acquire()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestReleaseIsIdempotent(t *testing.T) {
	manager := NewWithDialector(sqlite.Open(":memory:"))

	_, err := manager.Acquire()
	require.NoError(t, err)

	require.NoError(t, manager.Release())
	require.NoError(t, manager.Release())
}

func TestAcquireAfterReleaseReopens(t *testing.T) {
	manager := NewWithDialector(sqlite.Open(":memory:"))
	defer manager.Release()

	_, err := manager.Acquire()
	require.NoError(t, err)
	require.NoError(t, manager.Release())

	db, err := manager.Acquire()
	require.NoError(t, err)
	require.NotNil(t, db)
}

func TestAcquireFailureIsConnectionError(t *testing.T) {
	// Opening a missing directory path forces the driver to fail.
	manager := NewWithDialector(sqlite.Open("/nonexistent-dir/nonexistent/inventory.db"))
	defer manager.Release()

	_, err := manager.Acquire()
	require.Error(t, err)

	var cerr *ConnectionError
	assert.True(t, errors.As(err, &cerr))
}

func TestQueryLoggerCapturesStatements(t *testing.T) {
	manager := NewWithDialector(sqlite.Open(":memory:"))
	defer manager.Release()

	db, err := manager.Acquire()
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE sample (id INTEGER PRIMARY KEY)").Error)

	queries := manager.QueryLog().GetQueries()
	require.NotEmpty(t, queries)
	assert.Contains(t, queries[0].SQL, "CREATE TABLE sample")

	manager.QueryLog().Clear()
	assert.Empty(t, manager.QueryLog().GetQueries())
}

func TestQueryLoggerKeepsLatestFirst(t *testing.T) {
	ql := NewQueryLogger(2)
	ql.LogQuery("SELECT 1", time.Millisecond, 1, nil)
	ql.LogQuery("SELECT 2", time.Millisecond, 1, nil)
	ql.LogQuery("SELECT 3", time.Millisecond, 1, errors.New("boom"))

	queries := ql.GetQueries()
	require.Len(t, queries, 2)
	assert.Equal(t, "SELECT 3", queries[0].SQL)
	assert.Equal(t, "boom", queries[0].Error)
	assert.Equal(t, "SELECT 2", queries[1].SQL)
}
