// Package repository provides narrow, per-aggregate persistence interfaces
// backed by GORM/Postgres.
package repository

import "errors"

var (
	// ErrNotFound is returned when no active row matches the query.
	ErrNotFound = errors.New("record not found")

	// ErrVersionConflict is returned when an update carrying a stale
	// optimistic-concurrency token matched no rows.
	ErrVersionConflict = errors.New("version conflict")
)
