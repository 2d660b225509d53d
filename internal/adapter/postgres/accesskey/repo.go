// Package accesskey implements the access key repository using PostgreSQL.
// Statements are built with squirrel and rows scanned with scany.
package accesskey

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/evekit/synctrack/internal/adapter/postgres"
	"github.com/evekit/synctrack/internal/domain"
)

const table = "access_keys"

var columns = []string{"id", "account_id", "name", "mask", "expires_at", "limit_at", "seed", "created_at", "updated_at"}

// Repo provides access key persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new access key repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type keyRow struct {
	ID        int64      `db:"id"`
	AccountID uuid.UUID  `db:"account_id"`
	Name      string     `db:"name"`
	Mask      []byte     `db:"mask"`
	ExpiresAt *time.Time `db:"expires_at"`
	LimitAt   *time.Time `db:"limit_at"`
	Seed      int64      `db:"seed"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func (r keyRow) toDomain() *domain.AccessKey {
	return &domain.AccessKey{
		ID:        r.ID,
		AccountID: r.AccountID,
		Name:      r.Name,
		Mask:      domain.AccessMask(r.Mask),
		ExpiresAt: r.ExpiresAt,
		Limit:     r.LimitAt,
		Seed:      r.Seed,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// NextID draws a key id from the global sequence.
func (r *Repo) NextID(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var id int64
	if err := q.QueryRow(ctx, `SELECT nextval('access_key_id_seq')`).Scan(&id); err != nil {
		return 0, fmt.Errorf("next access key id: %w", err)
	}
	return id, nil
}

// GetByID returns a key by its global id.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.AccessKey, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByName returns the account's key with the given name.
func (r *Repo) GetByName(ctx context.Context, accountID uuid.UUID, name string) (*domain.AccessKey, error) {
	return r.getOne(ctx, squirrel.Eq{"account_id": accountID, "name": name}, name)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, id any) (*domain.AccessKey, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row keyRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "access_key", id)
	}
	return row.toDomain(), nil
}

// GetWithOwner returns a key and its account owner's user id in one query.
func (r *Repo) GetWithOwner(ctx context.Context, id int64) (*domain.OwnedKey, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select("k.id", "k.account_id", "k.name", "k.mask", "k.expires_at", "k.limit_at",
			"k.seed", "k.created_at", "k.updated_at", "a.user_id AS owner_user_id").
		From(table + " k").
		Join("sync_accounts a ON a.id = k.account_id").
		Where(squirrel.Eq{"k.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row struct {
		keyRow
		OwnerUserID uuid.UUID `db:"owner_user_id"`
	}
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "access_key", id)
	}
	return &domain.OwnedKey{Key: row.keyRow.toDomain(), OwnerUserID: row.OwnerUserID}, nil
}

// List returns the account's keys ordered by name.
func (r *Repo) List(ctx context.Context, accountID uuid.UUID) ([]*domain.AccessKey, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []keyRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "access_keys of account", accountID)
	}

	keys := make([]*domain.AccessKey, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, row.toDomain())
	}
	return keys, nil
}

// Count returns the number of keys owned by the account.
func (r *Repo) Count(ctx context.Context, accountID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().Select("count(*)").From(table).
		Where(squirrel.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "access_keys of account", accountID)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a key. The id must already be drawn with NextID.
// A duplicate name within the account results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, key *domain.AccessKey) (*domain.AccessKey, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	now := key.CreatedAt.UTC().Truncate(time.Microsecond)
	sql, args, err := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(key.ID, key.AccountID, key.Name, maskBytes(key.Mask), key.ExpiresAt, key.Limit, key.Seed, now, now).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row keyRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "access_key", key.ID)
	}
	return row.toDomain(), nil
}

// Update overwrites the mutable fields of a key: name, mask, expiry and limit.
func (r *Repo) Update(ctx context.Context, key *domain.AccessKey, at time.Time) (*domain.AccessKey, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().Update(table).
		Set("name", key.Name).
		Set("mask", maskBytes(key.Mask)).
		Set("expires_at", key.ExpiresAt).
		Set("limit_at", key.Limit).
		Set("updated_at", at.UTC().Truncate(time.Microsecond)).
		Where(squirrel.Eq{"id": key.ID}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row keyRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "access_key", key.ID)
	}
	return row.toDomain(), nil
}

// Delete removes one key.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	ct, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "access_key", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("access_key %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteBatchByAccount deletes at most limit keys of the account and returns
// how many were removed.
func (r *Repo) DeleteBatchByAccount(ctx context.Context, accountID uuid.UUID, limit int) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := q.Exec(ctx, `
DELETE FROM access_keys
WHERE id IN (SELECT id FROM access_keys WHERE account_id = $1 LIMIT $2)`, accountID, limit)
	if err != nil {
		return 0, postgres.MapError(err, "access_keys of account", accountID)
	}
	return ct.RowsAffected(), nil
}

func joinColumns() string { return strings.Join(columns, ", ") }

// maskBytes keeps an empty mask from being written as NULL.
func maskBytes(m domain.AccessMask) []byte {
	if m == nil {
		return []byte{}
	}
	return m
}
