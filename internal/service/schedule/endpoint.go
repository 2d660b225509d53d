package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/evekit/synctrack/internal/domain"
	"github.com/evekit/synctrack/internal/service/endpointtracker"
)

type endpointTrackers interface {
	Unfinished(ctx context.Context, accountID uuid.UUID) ([]*domain.EndpointTracker, error)
	GetOrCreateUnfinished(ctx context.Context, accountID uuid.UUID, endpoint domain.Endpoint, scheduledAt time.Time) (*domain.EndpointTracker, error)
}

// EndpointQuery adapts the endpoint tracker service. Each endpoint of an
// account is scheduled on its own.
type EndpointQuery struct {
	trackers endpointTrackers
}

// NewEndpointQuery creates a TrackerQuery over endpoint trackers.
func NewEndpointQuery(trackers endpointTrackers) *EndpointQuery {
	return &EndpointQuery{trackers: trackers}
}

func (q *EndpointQuery) Design() string { return endpointtracker.Design }

func (q *EndpointQuery) Accepts(category string) bool {
	return domain.Endpoint(category).IsValid()
}

func (q *EndpointQuery) Covers(ctx context.Context, req WorkRequest) (int64, bool, error) {
	list, err := q.trackers.Unfinished(ctx, req.AccountID)
	if err != nil {
		return 0, false, err
	}
	for _, t := range list {
		if t.Endpoint == domain.Endpoint(req.Category) {
			return t.ID, true, nil
		}
	}
	return 0, false, nil
}

func (q *EndpointQuery) Ensure(ctx context.Context, req WorkRequest) (int64, error) {
	t, err := q.trackers.GetOrCreateUnfinished(ctx, req.AccountID, domain.Endpoint(req.Category), req.ScheduledAt)
	if err != nil {
		return 0, err
	}
	return t.ID, nil
}
