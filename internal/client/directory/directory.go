// Package directory looks up affiliates in the remote users collection.
//
// Two implementations exist: PostgresDirectory talks to the database directly
// through pgx, RESTDirectory goes through a PostgREST (Supabase) endpoint.
// Both filter on role = common.AffiliateRole and dni = identifier and return
// at most two rows, enough for the caller to notice a duplicate identifier.
//
// Errors wrap common.ErrUnavailable for transport failures and
// common.ErrMalformedRecord for rows that cannot be decoded.
package directory

import (
	"context"

	"github.com/integrasalud/affiliate-client/internal/client/models"
)

// lookupLimit caps the rows fetched per lookup.
const lookupLimit = 2

// Directory returns the affiliates registered under identifier, in the
// backend's order. No match is an empty slice, not an error.
type Directory interface {
	FindAffiliates(ctx context.Context, identifier string) ([]models.UserRecord, error)
	Close() error
}
