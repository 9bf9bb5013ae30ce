// Package store holds the two relational collaborators of the grading
// API: the account table and the per-user progress table. Every method
// checks out its own connection from the pool and releases it before
// returning, so no handler holds store state across invocations.
package store

import "errors"

var (
	// ErrNotFound is returned when a keyed read matches no row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint, e.g. a signup with a taken username.
	ErrDuplicate = errors.New("already exists")
)
