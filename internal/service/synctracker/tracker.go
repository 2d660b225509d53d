package synctracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/evekit/synctrack/internal/domain"
)

// GetOrCreateUnfinished returns the account's unfinished tracker, creating
// one with every category at NOT_PROCESSED when none exists. Concurrent
// callers for the same account receive the same tracker.
func (s *Service) GetOrCreateUnfinished(ctx context.Context, accountID uuid.UUID) (*domain.SyncTracker, error) {
	family, err := s.familyOf(ctx, accountID)
	if err != nil {
		return nil, err
	}

	var (
		tracker *domain.SyncTracker
		created bool
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.trackers.GetUnfinished(ctx, accountID)
		if err == nil {
			tracker = existing
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get unfinished tracker: %w", err)
		}

		tracker, err = s.trackers.Create(ctx, domain.NewSyncTracker(accountID, family, s.now()))
		if err != nil {
			return fmt.Errorf("create tracker: %w", err)
		}
		created = true
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, err
		}
		// Another worker created it between our check and insert.
		existing, getErr := s.trackers.GetUnfinished(ctx, accountID)
		if getErr != nil {
			return nil, fmt.Errorf("get unfinished tracker after race: %w", getErr)
		}
		s.log.InfoContext(ctx, "tracker race lost, returning existing",
			slog.String("account_id", accountID.String()),
			slog.Int64("tracker_id", existing.ID),
		)
		return existing, nil
	}

	if created {
		s.metrics.TrackerCreated(Design)
		s.log.InfoContext(ctx, "tracker created",
			slog.String("account_id", accountID.String()),
			slog.String("family", family.String()),
			slog.Int64("tracker_id", tracker.ID),
		)
	}
	return tracker, nil
}

// SetCategoryState records the outcome of one category. Repeated calls
// overwrite; NOT_PROCESSED is not a valid outcome.
func (s *Service) SetCategoryState(ctx context.Context, trackerID int64, c domain.SyncCategory, status domain.SyncStatus, detail string) (*domain.SyncTracker, error) {
	if !status.IsValid() || status == domain.SyncStatusNotProcessed {
		return nil, domain.NewValidationError("status", "must be a terminal status")
	}
	if !c.IsValid() {
		return nil, domain.NewValidationError("category", "unknown category")
	}

	tracker, err := s.trackers.GetByID(ctx, trackerID)
	if err != nil {
		return nil, fmt.Errorf("get tracker: %w", err)
	}
	if c.Family() != tracker.Family {
		return nil, domain.NewValidationError("category", fmt.Sprintf("%s is not a %s category", c, tracker.Family))
	}

	updated, err := s.trackers.SetCategoryState(ctx, trackerID, c, domain.CategoryState{Status: status, Detail: detail})
	if err != nil {
		return nil, fmt.Errorf("set category state: %w", err)
	}

	s.metrics.StateRecorded(Design, status.String())
	if status == domain.SyncStatusError {
		s.log.WarnContext(ctx, "category sync error",
			slog.Int64("tracker_id", trackerID),
			slog.String("category", c.String()),
			slog.String("detail", detail),
		)
	}
	return updated, nil
}

// NextIncomplete returns the next category of required the account's
// unfinished tracker can work on. ok is false when nothing is eligible.
// Returns domain.ErrNotFound if the account has no unfinished tracker.
func (s *Service) NextIncomplete(ctx context.Context, accountID uuid.UUID, required []domain.SyncCategory) (domain.SyncCategory, bool, error) {
	tracker, err := s.trackers.GetUnfinished(ctx, accountID)
	if err != nil {
		return "", false, fmt.Errorf("get unfinished tracker: %w", err)
	}
	c, ok := tracker.NextIncomplete(required)
	return c, ok, nil
}

// Finish marks the tracker finished. The end time is stamped once; later
// calls return the tracker unchanged.
func (s *Service) Finish(ctx context.Context, trackerID int64) (*domain.SyncTracker, error) {
	tracker, err := s.trackers.Finish(ctx, trackerID, s.now())
	if err != nil {
		return nil, fmt.Errorf("finish tracker: %w", err)
	}

	s.metrics.TrackerFinished(Design)
	s.log.InfoContext(ctx, "tracker finished",
		slog.Int64("tracker_id", tracker.ID),
		slog.Int("errors", len(tracker.ErrorDetails())),
	)
	return tracker, nil
}
