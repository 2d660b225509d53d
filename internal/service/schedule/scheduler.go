// Package schedule answers scheduling triggers: given (account, category,
// scheduled time) it reports whether unfinished work already covers the
// request and otherwise starts a tracker for it. Both tracker designs sit
// behind TrackerQuery.
package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/evekit/synctrack/internal/domain"
)

// WorkRequest asks for a category of an account to be synchronized.
// AccountID is uuid.Nil for reference data.
type WorkRequest struct {
	AccountID   uuid.UUID
	Category    string
	ScheduledAt time.Time
}

// TrackerQuery is the view of one tracker design the scheduler needs.
type TrackerQuery interface {
	// Design names the tracker design for logs and metrics.
	Design() string
	// Accepts reports whether category belongs to this design.
	Accepts(category string) bool
	// Covers reports the id of an unfinished tracker covering req.
	Covers(ctx context.Context, req WorkRequest) (id int64, ok bool, err error)
	// Ensure returns the id of an unfinished tracker covering req,
	// creating one if needed.
	Ensure(ctx context.Context, req WorkRequest) (int64, error)
}

type scheduleMetrics interface {
	WorkRequested(design string, covered bool)
}

// Result tells the caller how a request was served.
type Result struct {
	// Covered is true when an unfinished tracker already existed.
	Covered   bool
	Design    string
	TrackerID int64
}

// Scheduler routes work requests to the tracker design owning the category.
type Scheduler struct {
	log     *slog.Logger
	queries []TrackerQuery
	metrics scheduleMetrics
}

// NewScheduler creates a scheduler over the given tracker designs. A
// category is routed to the first design that accepts it.
func NewScheduler(logger *slog.Logger, metrics scheduleMetrics, queries ...TrackerQuery) *Scheduler {
	return &Scheduler{
		log:     logger.With("service", "schedule"),
		queries: queries,
		metrics: metrics,
	}
}

// Request serves one scheduling trigger.
func (s *Scheduler) Request(ctx context.Context, req WorkRequest) (Result, error) {
	q := s.route(req.Category)
	if q == nil {
		return Result{}, domain.NewValidationError("category", "unknown category")
	}

	id, ok, err := q.Covers(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("check %s trackers: %w", q.Design(), err)
	}
	if ok {
		s.metrics.WorkRequested(q.Design(), true)
		return Result{Covered: true, Design: q.Design(), TrackerID: id}, nil
	}

	id, err = q.Ensure(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("ensure %s tracker: %w", q.Design(), err)
	}

	s.metrics.WorkRequested(q.Design(), false)
	s.log.DebugContext(ctx, "work scheduled",
		slog.String("design", q.Design()),
		slog.String("account_id", req.AccountID.String()),
		slog.String("category", req.Category),
		slog.Int64("tracker_id", id),
	)
	return Result{Design: q.Design(), TrackerID: id}, nil
}

func (s *Scheduler) route(category string) TrackerQuery {
	for _, q := range s.queries {
		if q.Accepts(category) {
			return q
		}
	}
	return nil
}
