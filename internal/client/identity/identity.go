// Package identity verifies an email + password pair against a remote
// identity provider.
//
// Implementations return common.ErrInvalidCredentials when the provider
// rejects the pair and common.ErrUnavailable for transport problems or
// unexpected responses. A returned identity with an empty UID is possible and
// must be treated as "not signed in" by the caller.
package identity

import (
	"context"

	"github.com/integrasalud/affiliate-client/internal/client/models"
)

type Provider interface {
	SignIn(ctx context.Context, email string, secret []byte) (*models.Identity, error)
}
