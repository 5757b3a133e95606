// Package repository implements the create/update/delete/fetch
// contract for each entity against the relational store. All values
// are bound as statement parameters; generated keys are read back on
// insert and written into the in-memory entity. Repositories share
// one database.Manager and perform no retries: every failure
// propagates to the caller immediately.
package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrIDAssigned is returned when Create receives an entity that
	// already carries a store-assigned id.
	ErrIDAssigned = errors.New("entity already has a store-assigned id")

	// ErrNoID is returned when Update receives an entity that was
	// never persisted.
	ErrNoID = errors.New("entity has no store-assigned id")

	// ErrNoGeneratedKey is returned when an insert succeeds but the
	// store hands back no generated primary key.
	ErrNoGeneratedKey = errors.New("no generated key returned by insert")
)

// PersistenceError reports a failed statement. The underlying store
// error is passed through unchanged.
type PersistenceError struct {
	Entity string
	Op     string
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistence(entity, op string, err error) *PersistenceError {
	return &PersistenceError{Entity: entity, Op: op, Err: err}
}

// BulkResult reports the outcome of a bulk delete, per id. Unlike the
// naive loop that keeps only the last error, every failure is kept.
type BulkResult struct {
	Deleted  int
	NotFound []uint
	Failed   map[uint]error
}

// Ok reports whether every delete succeeded (missing rows count as
// success, matching the single-delete no-op).
func (r BulkResult) Ok() bool {
	return len(r.Failed) == 0
}

// BulkDelete deletes every id through del, continuing past individual
// failures.
func BulkDelete(ids []uint, del func(id uint) (bool, error)) BulkResult {
	result := BulkResult{Failed: make(map[uint]error)}
	for _, id := range ids {
		found, err := del(id)
		if err != nil {
			result.Failed[id] = err
			continue
		}
		if !found {
			result.NotFound = append(result.NotFound, id)
			continue
		}
		result.Deleted++
	}
	return result
}
