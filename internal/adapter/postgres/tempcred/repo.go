// Package tempcred implements the temporary credential repository using PostgreSQL.
package tempcred

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/evekit/synctrack/internal/adapter/postgres"
	"github.com/evekit/synctrack/internal/domain"
)

// Repo provides temporary credential persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new temporary credential repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const credColumns = `id, user_id, purpose, created_at, expires_at`

const createSQL = `
INSERT INTO temp_credentials (id, user_id, purpose, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + credColumns

// takeSQL deletes and returns the credential in one statement, so a
// credential is redeemed at most once.
const takeSQL = `
DELETE FROM temp_credentials
WHERE id = $1
RETURNING ` + credColumns

const deleteExpiredSQL = `DELETE FROM temp_credentials WHERE expires_at <= $1`

// Create inserts a credential.
func (r *Repo) Create(ctx context.Context, c *domain.TempCredential) (*domain.TempCredential, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanCredential(q.QueryRow(ctx, createSQL,
		c.ID, c.UserID, c.Purpose,
		c.CreatedAt.UTC().Truncate(time.Microsecond),
		c.ExpiresAt.UTC().Truncate(time.Microsecond),
	))
	if err != nil {
		return nil, postgres.MapError(err, "temp_credential", c.ID)
	}
	return created, nil
}

// Take deletes the credential and returns it.
// Returns domain.ErrNotFound if it does not exist or was already taken.
func (r *Repo) Take(ctx context.Context, id uuid.UUID) (*domain.TempCredential, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	c, err := scanCredential(q.QueryRow(ctx, takeSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "temp_credential", id)
	}
	return c, nil
}

// DeleteExpired removes every credential expired at now and returns how many
// were removed.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := q.Exec(ctx, deleteExpiredSQL, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete expired temp credentials: %w", err)
	}
	return ct.RowsAffected(), nil
}

func scanCredential(row pgx.Row) (*domain.TempCredential, error) {
	var c domain.TempCredential
	if err := row.Scan(&c.ID, &c.UserID, &c.Purpose, &c.CreatedAt, &c.ExpiresAt); err != nil {
		return nil, err
	}
	return &c, nil
}
