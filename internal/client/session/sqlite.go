package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/integrasalud/affiliate-client/internal/client/migrations"
	"github.com/integrasalud/affiliate-client/internal/client/repositories/metadata"
	"github.com/integrasalud/affiliate-client/internal/common"
	"github.com/integrasalud/affiliate-client/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the session in the metadata table of a local SQLite file.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// RunMigrations applies the embedded goose migrations. It is idempotent.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// OpenSQLiteStore opens (creating if needed) the database at dsn and migrates it.
func OpenSQLiteStore(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return NewSQLiteStore(db), nil
}

// NewSQLiteStore wraps an already migrated database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

// Save writes the blob and its timestamp in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, blob []byte) error {
	savedAt := s.now().UTC().Format(time.RFC3339)

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.SessionKey, blob); err != nil {
			return err
		}
		return repo.Set(ctx, common.SessionSavedAtKey, []byte(savedAt))
	})
}

func (s *SQLiteStore) Load(ctx context.Context) (*Entry, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	data, err := repo.Get(ctx, common.SessionKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	entry := &Entry{Data: data}

	raw, err := repo.Get(ctx, common.SessionSavedAtKey)
	if err != nil {
		return nil, err
	}
	if t, err := time.Parse(time.RFC3339, string(raw)); err == nil {
		entry.SavedAt = t
	}

	return entry, nil
}

// Clear removes the blob and its timestamp in one transaction.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, common.SessionKey, common.SessionSavedAtKey)
	})
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
