// Package store persists the last-used staff identity between runs, the
// way the browser frontend remembered it in local storage. Absence or
// failure of the store must never block the core flow; callers ignore
// its errors beyond logging.
package store

import (
	"context"
	"time"
)

// StaffIdentity is the remembered identity for one library deployment.
type StaffIdentity struct {
	Library   string
	StaffID   string
	Name      string
	Note      string
	UpdatedAt time.Time
}

// Store remembers the last-used staff identity per library.
type Store interface {
	// LastIdentity returns the remembered identity for a library, or nil
	// if none is recorded.
	LastIdentity(ctx context.Context, library string) (*StaffIdentity, error)
	// Remember records the identity after a successful load, replacing
	// any previous record for the same library.
	Remember(ctx context.Context, id StaffIdentity) error
	Close() error
}
