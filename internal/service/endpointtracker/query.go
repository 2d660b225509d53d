package endpointtracker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evekit/synctrack/internal/domain"
)

// Get returns a tracker by id.
func (s *Service) Get(ctx context.Context, trackerID int64) (*domain.EndpointTracker, error) {
	t, err := s.trackers.GetByID(ctx, trackerID)
	if err != nil {
		return nil, fmt.Errorf("get tracker: %w", err)
	}
	return t, nil
}

// Unfinished returns every unfinished tracker of the account.
func (s *Service) Unfinished(ctx context.Context, accountID uuid.UUID) ([]*domain.EndpointTracker, error) {
	list, err := s.trackers.ListUnfinished(ctx, accountRef(accountID))
	if err != nil {
		return nil, fmt.Errorf("list unfinished trackers: %w", err)
	}
	return list, nil
}

// History returns trackers of (account, endpoint) that started before the
// given time, newest first.
func (s *Service) History(ctx context.Context, accountID uuid.UUID, endpoint domain.Endpoint, before *time.Time, limit int) ([]*domain.EndpointTracker, error) {
	list, err := s.trackers.History(ctx, accountRef(accountID), endpoint, before, s.clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("tracker history: %w", err)
	}
	return list, nil
}

// LatestFinished returns the most recent finished tracker of (account,
// endpoint). Returns domain.ErrNotFound if there is none.
func (s *Service) LatestFinished(ctx context.Context, accountID uuid.UUID, endpoint domain.Endpoint) (*domain.EndpointTracker, error) {
	t, err := s.trackers.LatestFinished(ctx, accountRef(accountID), endpoint)
	if err != nil {
		return nil, fmt.Errorf("latest finished tracker: %w", err)
	}
	return t, nil
}
