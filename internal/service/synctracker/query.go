package synctracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evekit/synctrack/internal/domain"
)

// Get returns a tracker by id.
func (s *Service) Get(ctx context.Context, trackerID int64) (*domain.SyncTracker, error) {
	t, err := s.trackers.GetByID(ctx, trackerID)
	if err != nil {
		return nil, fmt.Errorf("get tracker: %w", err)
	}
	return t, nil
}

// Unfinished returns every unfinished tracker of the account.
func (s *Service) Unfinished(ctx context.Context, accountID uuid.UUID) ([]*domain.SyncTracker, error) {
	list, err := s.trackers.ListUnfinished(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list unfinished trackers: %w", err)
	}
	return list, nil
}

// History returns the account's trackers that started before the given time,
// newest first. A nil before starts from the newest tracker.
func (s *Service) History(ctx context.Context, accountID uuid.UUID, before *time.Time, limit int) ([]*domain.SyncTracker, error) {
	list, err := s.trackers.History(ctx, accountID, before, s.clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("tracker history: %w", err)
	}
	return list, nil
}

// LatestFinished returns the account's most recent finished tracker, or nil
// if the account has never finished a pass.
func (s *Service) LatestFinished(ctx context.Context, accountID uuid.UUID) (*domain.SyncTracker, error) {
	t, err := s.trackers.LatestFinished(ctx, accountID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest finished tracker: %w", err)
	}
	return t, nil
}
