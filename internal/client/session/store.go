// Package session persists the signed-in user record on the local machine.
//
// A single slot (common.SessionKey) holds the session blob: the JSON encoding
// of the user record, written after every successful login and read once when
// the client starts. Writes are last-write-wins. Two backends exist: a local
// SQLite file (default) and Redis.
package session

import (
	"context"
	"time"
)

// Entry is a stored session blob with its write time.
type Entry struct {
	Data    []byte
	SavedAt time.Time
}

// Store is the durable single-slot session storage.
type Store interface {
	// Save overwrites the slot.
	Save(ctx context.Context, blob []byte) error
	// Load returns (nil, nil) when the slot is empty.
	Load(ctx context.Context) (*Entry, error)
	// Clear empties the slot; clearing an empty slot is not an error.
	Clear(ctx context.Context) error
	Close() error
}
