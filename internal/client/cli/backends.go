package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/integrasalud/affiliate-client/internal/client/avatar"
	"github.com/integrasalud/affiliate-client/internal/client/browser"
	"github.com/integrasalud/affiliate-client/internal/client/config"
	"github.com/integrasalud/affiliate-client/internal/client/directory"
	"github.com/integrasalud/affiliate-client/internal/client/identity"
	"github.com/integrasalud/affiliate-client/internal/client/session"
	"github.com/integrasalud/affiliate-client/internal/filex"
	"github.com/integrasalud/affiliate-client/internal/logging"
	"github.com/redis/go-redis/v9"
)

type backends struct {
	directory directory.Directory
	identity  identity.Provider
	store     session.Store
	avatars   avatarResolver
	opener    linkOpener
}

func buildBackends(ctx context.Context, c *config.Config, logger logging.Logger) (*backends, error) {
	httpClient := &http.Client{Timeout: c.RequestTimeout}

	dir, err := newDirectory(c, httpClient)
	if err != nil {
		return nil, err
	}

	idp, err := newIdentityProvider(c, httpClient)
	if err != nil {
		_ = dir.Close()
		return nil, err
	}

	store, err := newSessionStore(ctx, c)
	if err != nil {
		_ = dir.Close()
		return nil, err
	}

	resolver, err := avatar.NewResolver(ctx, avatar.S3Config{
		Bucket:       c.AvatarBucket,
		Region:       c.AvatarRegion,
		BaseEndpoint: c.AvatarEndpoint,
		AccessKey:    c.AvatarAccessKey,
		SecretKey:    c.AvatarSecretKey,
		Expires:      c.AvatarLinkValidity,
	})
	if err != nil {
		_ = dir.Close()
		_ = store.Close()
		return nil, err
	}

	logger.Debug(ctx, "backends ready",
		"directory", c.DirectoryDriver,
		"identity", c.IdentityProvider,
		"session", c.SessionBackend,
	)

	return &backends{
		directory: dir,
		identity:  idp,
		store:     store,
		avatars:   resolver,
		opener:    browser.NewOpener(),
	}, nil
}

func newDirectory(c *config.Config, httpClient *http.Client) (directory.Directory, error) {
	switch c.DirectoryDriver {
	case config.DirectoryPostgres:
		return directory.OpenPostgresDirectory(c.DatabaseDSN)
	case config.DirectoryREST:
		return directory.NewRESTDirectory(c.DirectoryURL, c.DirectoryAPIKey, httpClient), nil
	default:
		return nil, fmt.Errorf("unknown directory driver %q", c.DirectoryDriver)
	}
}

func newIdentityProvider(c *config.Config, httpClient *http.Client) (identity.Provider, error) {
	switch c.IdentityProvider {
	case config.IdentityFirebase:
		return identity.NewFirebaseProvider(c.FirebaseEndpoint, c.FirebaseAPIKey, httpClient), nil
	case config.IdentityKratos:
		return identity.NewKratosProvider(c.KratosPublicURL, httpClient), nil
	default:
		return nil, fmt.Errorf("unknown identity provider %q", c.IdentityProvider)
	}
}

func newSessionStore(ctx context.Context, c *config.Config) (session.Store, error) {
	switch c.SessionBackend {
	case config.SessionSQLite:
		path, err := filex.EnsureParentDir(c.SessionPath)
		if err != nil {
			return nil, err
		}
		return session.OpenSQLiteStore(ctx, path)
	case config.SessionRedis:
		client := redis.NewClient(&redis.Options{Addr: c.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis %s: %w", c.RedisAddr, err)
		}
		return session.NewRedisStore(client, c.SessionTTL), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", c.SessionBackend)
	}
}
