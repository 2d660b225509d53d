package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/evekit/synctrack/internal/domain"
	"github.com/evekit/synctrack/internal/service/synctracker"
)

type legacyTrackers interface {
	Unfinished(ctx context.Context, accountID uuid.UUID) ([]*domain.SyncTracker, error)
	GetOrCreateUnfinished(ctx context.Context, accountID uuid.UUID) (*domain.SyncTracker, error)
}

// LegacyQuery adapts the legacy tracker service. One unfinished pass covers
// every category of the account, so the scheduled time is not used.
type LegacyQuery struct {
	trackers legacyTrackers
}

// NewLegacyQuery creates a TrackerQuery over legacy trackers.
func NewLegacyQuery(trackers legacyTrackers) *LegacyQuery {
	return &LegacyQuery{trackers: trackers}
}

func (q *LegacyQuery) Design() string { return synctracker.Design }

func (q *LegacyQuery) Accepts(category string) bool {
	return domain.SyncCategory(category).IsValid()
}

func (q *LegacyQuery) Covers(ctx context.Context, req WorkRequest) (int64, bool, error) {
	if err := checkLegacyFamily(req); err != nil {
		return 0, false, err
	}
	list, err := q.trackers.Unfinished(ctx, req.AccountID)
	if err != nil {
		return 0, false, err
	}
	for _, t := range list {
		if t.Applies(domain.SyncCategory(req.Category)) {
			return t.ID, true, nil
		}
	}
	return 0, false, nil
}

func (q *LegacyQuery) Ensure(ctx context.Context, req WorkRequest) (int64, error) {
	if err := checkLegacyFamily(req); err != nil {
		return 0, err
	}
	t, err := q.trackers.GetOrCreateUnfinished(ctx, req.AccountID)
	if err != nil {
		return 0, err
	}
	if !t.Applies(domain.SyncCategory(req.Category)) {
		return 0, domain.NewValidationError("category", "not synchronized for this account")
	}
	return t.ID, nil
}

func checkLegacyFamily(req WorkRequest) error {
	isRef := domain.SyncCategory(req.Category).Family() == domain.FamilyReference
	if isRef != (req.AccountID == uuid.Nil) {
		return domain.NewValidationError("account_id", "reference categories have no account, others need one")
	}
	return nil
}
