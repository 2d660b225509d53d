// Package endpointtracker implements the per-endpoint tracker repository
// using PostgreSQL. A NULL ended_at marks the one unfinished tracker of an
// (account, endpoint) pair; reference endpoints have a NULL account.
package endpointtracker

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

const table = "endpoint_trackers"

var columns = []string{"id", "account_id", "endpoint", "scheduled_at", "started_at", "ended_at", "status", "detail"}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides endpoint tracker persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new endpoint tracker repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type trackerRow struct {
	ID          int64      `db:"id"`
	AccountID   *uuid.UUID `db:"account_id"`
	Endpoint    string     `db:"endpoint"`
	ScheduledAt time.Time  `db:"scheduled_at"`
	StartedAt   *time.Time `db:"started_at"`
	EndedAt     *time.Time `db:"ended_at"`
	Status      string     `db:"status"`
	Detail      string     `db:"detail"`
}

func (r trackerRow) toDomain() *domain.EndpointTracker {
	return &domain.EndpointTracker{
		ID:          r.ID,
		AccountID:   r.AccountID,
		Endpoint:    domain.Endpoint(r.Endpoint),
		ScheduledAt: r.ScheduledAt,
		StartedAt:   r.StartedAt,
		EndedAt:     r.EndedAt,
		Status:      domain.EndpointStatus(r.Status),
		Detail:      r.Detail,
	}
}

func toDomainList(rows []trackerRow) []*domain.EndpointTracker {
	out := make([]*domain.EndpointTracker, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}

// accountIs matches the account column, NULL for a nil account.
func accountIs(accountID *uuid.UUID) squirrel.Sqlizer {
	return squirrel.Expr("account_id IS NOT DISTINCT FROM ?", accountID)
}

func (r *Repo) get(ctx context.Context, query squirrel.SelectBuilder, id any) (*domain.EndpointTracker, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row trackerRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "endpoint_tracker", id)
	}
	return row.toDomain(), nil
}

func (r *Repo) list(ctx context.Context, query squirrel.SelectBuilder) ([]*domain.EndpointTracker, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []trackerRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list endpoint trackers: %w", err)
	}
	return toDomainList(rows), nil
}

func selectTrackers() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a tracker by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.EndpointTracker, error) {
	return r.get(ctx, selectTrackers().Where(squirrel.Eq{"id": id}), id)
}

// GetUnfinished returns the unfinished tracker of (account, endpoint).
// Returns domain.ErrNotFound if none exists.
func (r *Repo) GetUnfinished(ctx context.Context, accountID *uuid.UUID, endpoint domain.Endpoint) (*domain.EndpointTracker, error) {
	query := selectTrackers().
		Where(accountIs(accountID)).
		Where(squirrel.Eq{"endpoint": string(endpoint), "ended_at": nil})
	return r.get(ctx, query, endpoint)
}

// ListUnfinished returns every unfinished tracker of the account, ordered by
// scheduled time.
func (r *Repo) ListUnfinished(ctx context.Context, accountID *uuid.UUID) ([]*domain.EndpointTracker, error) {
	return r.list(ctx, selectTrackers().
		Where(accountIs(accountID)).
		Where(squirrel.Eq{"ended_at": nil}).
		OrderBy("scheduled_at ASC", "id ASC"))
}

// LatestFinished returns the finished tracker of (account, endpoint) with the
// latest start. Returns domain.ErrNotFound if there is none.
func (r *Repo) LatestFinished(ctx context.Context, accountID *uuid.UUID, endpoint domain.Endpoint) (*domain.EndpointTracker, error) {
	query := selectTrackers().
		Where(accountIs(accountID)).
		Where(squirrel.Eq{"endpoint": string(endpoint)}).
		Where(squirrel.NotEq{"ended_at": nil}).
		OrderBy("started_at DESC NULLS LAST", "id DESC").
		Limit(1)
	return r.get(ctx, query, endpoint)
}

// History returns trackers of (account, endpoint) ordered by start time
// descending. Trackers never started sort last. A nil before returns the
// newest trackers.
func (r *Repo) History(ctx context.Context, accountID *uuid.UUID, endpoint domain.Endpoint, before *time.Time, limit int) ([]*domain.EndpointTracker, error) {
	query := selectTrackers().
		Where(accountIs(accountID)).
		Where(squirrel.Eq{"endpoint": string(endpoint)}).
		OrderBy("started_at DESC NULLS LAST", "id DESC").
		Limit(uint64(limit))
	if before != nil {
		query = query.Where(squirrel.Lt{"COALESCE(started_at, scheduled_at)": *before})
	}
	return r.list(ctx, query)
}

// ErrorCounts counts trackers that ended in [from, to) with status ERROR,
// grouped by endpoint and detail.
func (r *Repo) ErrorCounts(ctx context.Context, from, to time.Time) ([]domain.ErrorCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select("endpoint AS category", "detail AS reason", "count(*) AS count").
		From(table).
		Where(squirrel.Eq{"status": string(domain.EndpointStatusError)}).
		Where(squirrel.GtOrEq{"ended_at": from}).
		Where(squirrel.Lt{"ended_at": to}).
		GroupBy("endpoint", "detail").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []struct {
		Category string `db:"category"`
		Reason   string `db:"reason"`
		Count    int    `db:"count"`
	}
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("endpoint tracker error counts: %w", err)
	}

	counts := make([]domain.ErrorCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, domain.ErrorCount{Category: row.Category, Reason: row.Reason, Count: row.Count})
	}
	return counts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a tracker at NOT_PROCESSED. A second unfinished tracker for
// the same (account, endpoint) results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, t *domain.EndpointTracker) (*domain.EndpointTracker, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().Insert(table).
		Columns("account_id", "endpoint", "scheduled_at", "status", "detail").
		Values(t.AccountID, string(t.Endpoint), t.ScheduledAt.UTC().Truncate(time.Microsecond),
			string(domain.EndpointStatusNotProcessed), "").
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row trackerRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "endpoint_tracker", t.Endpoint)
	}
	return row.toDomain(), nil
}

func (r *Repo) update(ctx context.Context, id int64, set map[string]any) (*domain.EndpointTracker, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row trackerRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "endpoint_tracker", id)
	}
	return row.toDomain(), nil
}

// Start stamps the actual start time once.
func (r *Repo) Start(ctx context.Context, id int64, at time.Time) (*domain.EndpointTracker, error) {
	return r.update(ctx, id, map[string]any{
		"started_at": squirrel.Expr("COALESCE(started_at, ?)", at.UTC().Truncate(time.Microsecond)),
	})
}

// SetStatus overwrites status and detail.
func (r *Repo) SetStatus(ctx context.Context, id int64, status domain.EndpointStatus, detail string) (*domain.EndpointTracker, error) {
	return r.update(ctx, id, map[string]any{
		"status": string(status),
		"detail": detail,
	})
}

// Finish stamps the end time once. A tracker finished without being started
// gets its start stamped too.
func (r *Repo) Finish(ctx context.Context, id int64, at time.Time) (*domain.EndpointTracker, error) {
	ts := at.UTC().Truncate(time.Microsecond)
	return r.update(ctx, id, map[string]any{
		"started_at": squirrel.Expr("COALESCE(started_at, ?)", ts),
		"ended_at":   squirrel.Expr("COALESCE(ended_at, ?)", ts),
	})
}

// DeleteBatchByAccount deletes at most limit trackers of the account and
// returns how many were removed.
func (r *Repo) DeleteBatchByAccount(ctx context.Context, accountID uuid.UUID, limit int) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := q.Exec(ctx, `
DELETE FROM endpoint_trackers
WHERE id IN (SELECT id FROM endpoint_trackers WHERE account_id = $1 LIMIT $2)`, accountID, limit)
	if err != nil {
		return 0, postgres.MapError(err, "endpoint trackers of account", accountID)
	}
	return ct.RowsAffected(), nil
}
