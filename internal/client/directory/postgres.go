package directory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/integrasalud/affiliate-client/internal/client/models"
	"github.com/integrasalud/affiliate-client/internal/common"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresDirectory struct {
	db *sql.DB
}

// OpenPostgresDirectory connects with the pgx driver.
func OpenPostgresDirectory(dsn string) (*PostgresDirectory, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}
	return NewPostgresDirectory(db), nil
}

func NewPostgresDirectory(db *sql.DB) *PostgresDirectory {
	return &PostgresDirectory{db: db}
}

func (d *PostgresDirectory) FindAffiliates(ctx context.Context, identifier string) ([]models.UserRecord, error) {
	query :=
		`SELECT email, dni, role, account, avatar_url FROM users
		 WHERE role = $1 AND dni = $2
		 LIMIT $3
		 `

	rows, err := d.db.QueryContext(ctx, query, common.AffiliateRole, identifier, lookupLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: db error: %w", common.ErrUnavailable, err)
	}
	defer rows.Close()

	records := make([]models.UserRecord, 0, lookupLimit)
	for rows.Next() {
		var email, dni, role, account, avatar sql.NullString
		if err := rows.Scan(&email, &dni, &role, &account, &avatar); err != nil {
			return nil, fmt.Errorf("%w: scan users row: %w", common.ErrMalformedRecord, err)
		}
		records = append(records, models.UserRecord{
			Email:      email.String,
			Identifier: dni.String,
			Role:       role.String,
			Account:    account.String,
			AvatarURL:  avatar.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: db error: %w", common.ErrUnavailable, err)
	}

	return records, nil
}

func (d *PostgresDirectory) Close() error {
	return d.db.Close()
}
