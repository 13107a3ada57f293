// Package store persists session records and the last-used session title.
package store

import "github.com/pomocli/pomo/internal/session"

// Store is the persistence interface for session outcomes and title state.
type Store interface {
	// Append adds a record to the activity log. Records are written in
	// the order sessions end and are never mutated afterwards.
	Append(r *session.Record) error
	// LastTitle returns the most recently saved session title, or an
	// empty string if none was ever saved.
	LastTitle() (string, error)
	// SaveTitle overwrites the persisted session title.
	SaveTitle(title string) error
}
