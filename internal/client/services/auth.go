// Package services contains the application services of the affiliate
// client. This file holds the authentication flow: directory lookup,
// identity-provider sign-in, session persistence and the post-login
// navigation.
package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/integrasalud/affiliate-client/internal/client/directory"
	"github.com/integrasalud/affiliate-client/internal/client/identity"
	"github.com/integrasalud/affiliate-client/internal/client/models"
	"github.com/integrasalud/affiliate-client/internal/client/session"
	"github.com/integrasalud/affiliate-client/internal/common"
	"github.com/integrasalud/affiliate-client/internal/logging"
)

// Destination names a screen reachable after a flow completes.
type Destination string

const DestinationHome Destination = "Home"

// Navigator performs the screen transition once a login succeeds.
type Navigator interface {
	Navigate(ctx context.Context, dest Destination, user *models.UserRecord)
}

type noopNavigator struct{}

func (noopNavigator) Navigate(context.Context, Destination, *models.UserRecord) {}

// PersistedSession is the session found in local storage at startup.
type PersistedSession struct {
	User    *models.UserRecord
	SavedAt time.Time
}

// AuthService defines the login screen operations.
//
// Contract:
//   - Submit: validate, look the affiliate up, sign in, persist, navigate Home.
//     Nothing is persisted and no navigation happens unless every step succeeds.
//   - LoadPersisted: read the stored session; (nil, nil) when there is none.
//   - Logout: drop the stored session.
//   - Close: release directory and storage resources.
//
// Errors can be classified with Kind.
type AuthService interface {
	Submit(ctx context.Context, creds models.Credentials) (*models.UserRecord, error)
	LoadPersisted(ctx context.Context) (*PersistedSession, error)
	Logout(ctx context.Context) error
	Close(ctx context.Context) error
}

// Dependencies groups the capabilities the flow is built from.
type Dependencies struct {
	Directory directory.Directory
	Identity  identity.Provider
	Store     session.Store
	Navigator Navigator
	Logger    logging.Logger
	// Timeout bounds each remote call; zero disables the bound.
	Timeout time.Duration
}

type authService struct {
	deps     Dependencies
	inFlight atomic.Bool
}

func NewAuthService(deps Dependencies) AuthService {
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}
	if deps.Navigator == nil {
		deps.Navigator = noopNavigator{}
	}
	return &authService{deps: deps}
}

func (a *authService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.deps.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.deps.Timeout)
}

// Submit runs one login attempt. Concurrent calls are rejected with
// common.ErrInProgress while an attempt is running.
func (a *authService) Submit(ctx context.Context, creds models.Credentials) (*models.UserRecord, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	if !a.inFlight.CompareAndSwap(false, true) {
		return nil, common.ErrInProgress
	}
	defer a.inFlight.Store(false)

	log := a.deps.Logger.With("attempt_id", uuid.NewString())

	user, err := a.lookup(ctx, log, creds.Identifier)
	if err != nil {
		log.Warn(ctx, "directory lookup failed", "kind", Kind(err).String(), "error", err)
		return nil, err
	}

	if err := a.signIn(ctx, user.Email, creds.Secret); err != nil {
		log.Warn(ctx, "sign-in failed", "kind", Kind(err).String(), "error", err)
		return nil, err
	}

	if err := a.persist(ctx, user); err != nil {
		log.Error(ctx, "session not saved", "error", err)
		return nil, err
	}

	log.Info(ctx, "login succeeded", "role", user.Role)
	a.deps.Navigator.Navigate(ctx, DestinationHome, user)
	return user, nil
}

// lookup resolves the identifier to exactly one record. With several matches
// the first one is used.
func (a *authService) lookup(ctx context.Context, log logging.Logger, identifier string) (*models.UserRecord, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	records, err := a.deps.Directory.FindAffiliates(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("directory lookup: %w", err)
	}

	switch len(records) {
	case 0:
		return nil, fmt.Errorf("directory lookup: %w", common.ErrNotFound)
	case 1:
	default:
		log.Warn(ctx, "identifier matches several affiliates, using the first", "matches", len(records))
	}

	user := records[0]
	if user.Email == "" {
		return nil, fmt.Errorf("directory lookup: %w: record has no email", common.ErrMalformedRecord)
	}
	return &user, nil
}

func (a *authService) signIn(ctx context.Context, email string, secret []byte) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	ident, err := a.deps.Identity.SignIn(ctx, email, secret)
	if err != nil {
		return fmt.Errorf("sign-in: %w", err)
	}
	if !ident.SignedIn() {
		return fmt.Errorf("sign-in: %w: provider returned no user id", common.ErrInvalidCredentials)
	}
	return nil
}

func (a *authService) persist(ctx context.Context, user *models.UserRecord) error {
	blob, err := session.EncodeRecord(user)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.deps.Store.Save(ctx, blob); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	return nil
}

func (a *authService) LoadPersisted(ctx context.Context) (*PersistedSession, error) {
	entry, err := a.deps.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	if entry == nil {
		return nil, nil
	}

	user, err := session.DecodeRecord(entry.Data)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &PersistedSession{User: user, SavedAt: entry.SavedAt}, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.deps.Store.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	return nil
}

func (a *authService) Close(ctx context.Context) error {
	var firstErr error
	if a.deps.Directory != nil {
		firstErr = a.deps.Directory.Close()
	}
	if a.deps.Store != nil {
		if err := a.deps.Store.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
