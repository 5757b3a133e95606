package database

import (
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Sandy-me/Inventory-management-system/config"
)

// ConnectionError reports that the store could not be reached or the
// shared handle could not be (re)established.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "database connection: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Manager owns the single shared database handle. The handle is opened
// lazily on first Acquire, reused afterwards, and reopened if the
// underlying connection is found closed. All repositories share one
// Manager; the mutex serializes open/ping/close so concurrent callers
// never race on the handle itself.
type Manager struct {
	mu        sync.Mutex
	dialector gorm.Dialector
	db        *gorm.DB
	queryLog  *QueryLogger
}

// New creates a Manager for the configured postgres store. No
// connection is made until the first Acquire.
func New(cfg *config.DatabaseConfig) *Manager {
	return NewWithDialector(postgres.Open(cfg.GetDSN()))
}

// NewWithDialector creates a Manager on an explicit GORM dialector.
// Tests use this to point the same repositories at in-memory SQLite.
func NewWithDialector(dialector gorm.Dialector) *Manager {
	return &Manager{
		dialector: dialector,
		queryLog:  NewQueryLogger(100),
	}
}

// QueryLog returns the SQL log attached to this manager's handle.
func (m *Manager) QueryLog() *QueryLogger {
	return m.queryLog
}

// Acquire returns the shared handle, opening or reopening it as
// needed. Every failure is a *ConnectionError; nothing is retried.
func (m *Manager) Acquire() (*gorm.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil && sqlDB.Ping() == nil {
			return m.db, nil
		}
		// Handle went stale underneath us; drop it and reopen.
		m.db = nil
	}

	db, err := m.open()
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	m.db = db
	return m.db, nil
}

// Release closes the handle if open. Idempotent.
func (m *Manager) Release() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil
	}
	sqlDB, err := m.db.DB()
	m.db = nil
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (m *Manager) open() (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: &queryLoggerHook{
			Interface: logger.Default.LogMode(logger.Warn),
			log:       m.queryLog,
		},
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	}

	db, err := gorm.Open(m.dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// One logical connection shared by every repository; the store is
	// addressed one statement at a time.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection established successfully")
	return db, nil
}
