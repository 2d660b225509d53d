// Package account implements the sync account repository using PostgreSQL.
package account

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/evekit/synctrack/internal/adapter/postgres"
	"github.com/evekit/synctrack/internal/domain"
)

// Repo provides sync account persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new account repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const accountColumns = `id, user_id, name, kind, eve_character_id, eve_corporation_id, marked_for_delete_at, created_at`

const createSQL = `
INSERT INTO sync_accounts (id, user_id, name, kind, eve_character_id, eve_corporation_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + accountColumns

const getByIDSQL = `
SELECT ` + accountColumns + `
FROM sync_accounts
WHERE id = $1`

const listByUserSQL = `
SELECT ` + accountColumns + `
FROM sync_accounts
WHERE user_id = $1
ORDER BY name`

const markForDeleteSQL = `
UPDATE sync_accounts
SET marked_for_delete_at = COALESCE(marked_for_delete_at, $2)
WHERE id = $1
RETURNING ` + accountColumns

const listMarkedSQL = `
SELECT ` + accountColumns + `
FROM sync_accounts
WHERE marked_for_delete_at IS NOT NULL AND marked_for_delete_at < $1
ORDER BY marked_for_delete_at
LIMIT $2`

const deleteSQL = `DELETE FROM sync_accounts WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an account by primary key.
// Returns domain.ErrNotFound if the account does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SyncAccount, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	acc, err := scanAccount(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}
	return acc, nil
}

// ListByUser returns the accounts owned by a user, ordered by name.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SyncAccount, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list accounts by user: %w", err)
	}
	return scanAccounts(rows)
}

// ListMarkedBefore returns up to limit accounts marked for delete before the
// given time, oldest mark first.
func (r *Repo) ListMarkedBefore(ctx context.Context, before time.Time, limit int) ([]*domain.SyncAccount, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listMarkedSQL, before, limit)
	if err != nil {
		return nil, fmt.Errorf("list marked accounts: %w", err)
	}
	return scanAccounts(rows)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new account. A second account with the same name for the
// same user results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, acc *domain.SyncAccount) (*domain.SyncAccount, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, createSQL,
		acc.ID,
		acc.UserID,
		acc.Name,
		string(acc.Kind),
		acc.EveCharacterID,
		acc.EveCorporationID,
		acc.CreatedAt.UTC().Truncate(time.Microsecond),
	)

	created, err := scanAccount(row)
	if err != nil {
		return nil, postgres.MapError(err, "account", acc.ID)
	}
	return created, nil
}

// MarkForDelete stamps the delete mark. An existing mark is kept.
func (r *Repo) MarkForDelete(ctx context.Context, id uuid.UUID, at time.Time) (*domain.SyncAccount, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	acc, err := scanAccount(q.QueryRow(ctx, markForDeleteSQL, id, at.UTC().Truncate(time.Microsecond)))
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}
	return acc, nil
}

// Delete removes the account row. Dependent trackers and keys must already
// be gone.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "account", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanAccount(row pgx.Row) (*domain.SyncAccount, error) {
	var (
		acc  domain.SyncAccount
		kind string
	)
	if err := row.Scan(&acc.ID, &acc.UserID, &acc.Name, &kind, &acc.EveCharacterID,
		&acc.EveCorporationID, &acc.MarkedForDeleteAt, &acc.CreatedAt); err != nil {
		return nil, err
	}
	acc.Kind = domain.AccountKind(kind)
	return &acc, nil
}

func scanAccounts(rows pgx.Rows) ([]*domain.SyncAccount, error) {
	defer rows.Close()

	accounts := []*domain.SyncAccount{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return accounts, nil
}
