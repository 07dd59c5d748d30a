// Package metadata stores small named values in the local SQLite database.
// The session store keeps the persisted user record here.
package metadata

import (
	"context"
)

// Repository is a string-keyed blob store. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
