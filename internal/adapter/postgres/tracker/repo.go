// Package tracker implements the legacy sync tracker repository using
// PostgreSQL. Per-category states live in one JSONB document keyed by
// category name, so a category update touches a single field.
package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/evekit/synctrack/internal/adapter/postgres"
	"github.com/evekit/synctrack/internal/domain"
)

// Repo provides legacy tracker persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new tracker repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const trackerColumns = `id, account_id, family, sync_start, finished, sync_end, states`

const createSQL = `
INSERT INTO sync_trackers (account_id, family, sync_start, states)
VALUES ($1, $2, $3, $4)
RETURNING ` + trackerColumns

const getByIDSQL = `
SELECT ` + trackerColumns + `
FROM sync_trackers
WHERE id = $1`

const getUnfinishedSQL = `
SELECT ` + trackerColumns + `
FROM sync_trackers
WHERE account_id IS NOT DISTINCT FROM $1 AND NOT finished`

const listUnfinishedSQL = getUnfinishedSQL + `
ORDER BY sync_start DESC`

const latestFinishedSQL = `
SELECT ` + trackerColumns + `
FROM sync_trackers
WHERE account_id IS NOT DISTINCT FROM $1 AND finished
ORDER BY sync_start DESC, id DESC
LIMIT 1`

const setCategoryStateSQL = `
UPDATE sync_trackers
SET states = jsonb_set(states, ARRAY[$2::text], jsonb_build_object('status', $3::text, 'detail', $4::text))
WHERE id = $1
RETURNING ` + trackerColumns

const finishSQL = `
UPDATE sync_trackers
SET finished = true, sync_end = COALESCE(sync_end, $2)
WHERE id = $1
RETURNING ` + trackerColumns

const errorCountsSQL = `
SELECT s.key, COALESCE(s.value->>'detail', ''), count(*)
FROM sync_trackers t, jsonb_each(t.states) s
WHERE t.finished AND t.sync_end >= $1 AND t.sync_end < $2
  AND s.value->>'status' = 'SYNC_ERROR'
GROUP BY 1, 2`

const deleteBatchSQL = `
DELETE FROM sync_trackers
WHERE id IN (SELECT id FROM sync_trackers WHERE account_id = $1 LIMIT $2)`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a tracker by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.SyncTracker, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	t, err := scanTracker(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "tracker", id)
	}
	return t, nil
}

// GetUnfinished returns the single unfinished tracker of the account
// (uuid.Nil for reference data). Returns domain.ErrNotFound if none exists.
func (r *Repo) GetUnfinished(ctx context.Context, accountID uuid.UUID) (*domain.SyncTracker, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	t, err := scanTracker(q.QueryRow(ctx, getUnfinishedSQL, postgres.NullableID(accountID)))
	if err != nil {
		return nil, postgres.MapError(err, "unfinished tracker of account", accountID)
	}
	return t, nil
}

// ListUnfinished returns every unfinished tracker of the account. The unique
// index keeps this to at most one row; the list form survives data written
// before the index existed.
func (r *Repo) ListUnfinished(ctx context.Context, accountID uuid.UUID) ([]*domain.SyncTracker, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listUnfinishedSQL, postgres.NullableID(accountID))
	if err != nil {
		return nil, postgres.MapError(err, "unfinished trackers of account", accountID)
	}
	return scanTrackers(rows)
}

// LatestFinished returns the most recently started finished tracker.
// Returns domain.ErrNotFound if the account has none.
func (r *Repo) LatestFinished(ctx context.Context, accountID uuid.UUID) (*domain.SyncTracker, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	t, err := scanTracker(q.QueryRow(ctx, latestFinishedSQL, postgres.NullableID(accountID)))
	if err != nil {
		return nil, postgres.MapError(err, "finished tracker of account", accountID)
	}
	return t, nil
}

// History returns trackers of the account ordered by pass start descending.
// A nil before returns the newest trackers.
func (r *Repo) History(ctx context.Context, accountID uuid.UUID, before *time.Time, limit int) ([]*domain.SyncTracker, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(trackerColumns).
		From("sync_trackers").
		Where(squirrel.Expr("account_id IS NOT DISTINCT FROM ?", postgres.NullableID(accountID))).
		OrderBy("sync_start DESC", "id DESC").
		Limit(uint64(limit))
	if before != nil {
		query = query.Where(squirrel.Lt{"sync_start": *before})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "tracker history of account", accountID)
	}
	return scanTrackers(rows)
}

// ErrorCounts counts SYNC_ERROR states, grouped by category and detail, over
// trackers whose pass ended in [from, to).
func (r *Repo) ErrorCounts(ctx context.Context, from, to time.Time) ([]domain.ErrorCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, errorCountsSQL, from, to)
	if err != nil {
		return nil, fmt.Errorf("tracker error counts: %w", err)
	}
	defer rows.Close()

	var counts []domain.ErrorCount
	for rows.Next() {
		var c domain.ErrorCount
		if err := rows.Scan(&c.Category, &c.Reason, &c.Count); err != nil {
			return nil, fmt.Errorf("tracker error counts: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tracker error counts: %w", err)
	}
	return counts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a tracker. A second unfinished tracker for the same account
// violates the partial unique index and results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, t *domain.SyncTracker) (*domain.SyncTracker, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	states, err := marshalStates(t.States)
	if err != nil {
		return nil, fmt.Errorf("tracker: marshal states: %w", err)
	}

	created, err := scanTracker(q.QueryRow(ctx, createSQL,
		postgres.NullableID(t.AccountID),
		string(t.Family),
		t.SyncStart.UTC().Truncate(time.Microsecond),
		states,
	))
	if err != nil {
		return nil, postgres.MapError(err, "tracker of account", t.AccountID)
	}
	return created, nil
}

// SetCategoryState overwrites the state of one category.
func (r *Repo) SetCategoryState(ctx context.Context, id int64, c domain.SyncCategory, st domain.CategoryState) (*domain.SyncTracker, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	t, err := scanTracker(q.QueryRow(ctx, setCategoryStateSQL, id, string(c), string(st.Status), st.Detail))
	if err != nil {
		return nil, postgres.MapError(err, "tracker", id)
	}
	return t, nil
}

// Finish marks the tracker finished. The end time is stamped only once.
func (r *Repo) Finish(ctx context.Context, id int64, at time.Time) (*domain.SyncTracker, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	t, err := scanTracker(q.QueryRow(ctx, finishSQL, id, at.UTC().Truncate(time.Microsecond)))
	if err != nil {
		return nil, postgres.MapError(err, "tracker", id)
	}
	return t, nil
}

// DeleteBatchByAccount deletes at most limit trackers of the account and
// returns how many were removed.
func (r *Repo) DeleteBatchByAccount(ctx context.Context, accountID uuid.UUID, limit int) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := q.Exec(ctx, deleteBatchSQL, accountID, limit)
	if err != nil {
		return 0, postgres.MapError(err, "trackers of account", accountID)
	}
	return ct.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanTracker(row pgx.Row) (*domain.SyncTracker, error) {
	var (
		t         domain.SyncTracker
		accountID *uuid.UUID
		family    string
		states    []byte
	)
	if err := row.Scan(&t.ID, &accountID, &family, &t.SyncStart, &t.Finished, &t.SyncEnd, &states); err != nil {
		return nil, err
	}
	if accountID != nil {
		t.AccountID = *accountID
	}
	t.Family = domain.Family(family)

	st, err := unmarshalStates(states)
	if err != nil {
		return nil, fmt.Errorf("tracker %d: %w", t.ID, err)
	}
	t.States = st
	return &t, nil
}

func scanTrackers(rows pgx.Rows) ([]*domain.SyncTracker, error) {
	defer rows.Close()

	trackers := []*domain.SyncTracker{}
	for rows.Next() {
		t, err := scanTracker(rows)
		if err != nil {
			return nil, err
		}
		trackers = append(trackers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return trackers, nil
}

// ---------------------------------------------------------------------------
// JSONB serialization helpers for category states
// ---------------------------------------------------------------------------

// stateJSON is the stored form of one domain.CategoryState.
type stateJSON struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}

func marshalStates(states map[domain.SyncCategory]domain.CategoryState) ([]byte, error) {
	out := make(map[string]stateJSON, len(states))
	for c, st := range states {
		out[string(c)] = stateJSON{Status: string(st.Status), Detail: st.Detail}
	}
	return json.Marshal(out)
}

func unmarshalStates(data []byte) (map[domain.SyncCategory]domain.CategoryState, error) {
	var raw map[string]stateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal states: %w", err)
	}
	out := make(map[domain.SyncCategory]domain.CategoryState, len(raw))
	for c, st := range raw {
		out[domain.SyncCategory(c)] = domain.CategoryState{Status: domain.SyncStatus(st.Status), Detail: st.Detail}
	}
	return out, nil
}
