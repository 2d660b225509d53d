package endpointtracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/evekit/synctrack/internal/domain"
)

// GetOrCreateUnfinished returns the unfinished tracker of (account,
// endpoint), creating one scheduled at scheduledAt when none exists.
// Concurrent callers for the same pair receive the same tracker.
func (s *Service) GetOrCreateUnfinished(ctx context.Context, accountID uuid.UUID, endpoint domain.Endpoint, scheduledAt time.Time) (*domain.EndpointTracker, error) {
	if err := s.checkScope(ctx, accountID, endpoint); err != nil {
		return nil, err
	}
	ref := accountRef(accountID)

	var (
		tracker *domain.EndpointTracker
		created bool
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.trackers.GetUnfinished(ctx, ref, endpoint)
		if err == nil {
			tracker = existing
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get unfinished tracker: %w", err)
		}

		tracker, err = s.trackers.Create(ctx, &domain.EndpointTracker{
			AccountID:   ref,
			Endpoint:    endpoint,
			ScheduledAt: scheduledAt,
			Status:      domain.EndpointStatusNotProcessed,
		})
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
		existing, getErr := s.trackers.GetUnfinished(ctx, ref, endpoint)
		if getErr != nil {
			return nil, fmt.Errorf("get unfinished tracker after race: %w", getErr)
		}
		return existing, nil
	}

	if created {
		s.metrics.TrackerCreated(Design)
		s.log.InfoContext(ctx, "endpoint tracker created",
			slog.String("account_id", accountID.String()),
			slog.String("endpoint", endpoint.String()),
			slog.Int64("tracker_id", tracker.ID),
			slog.Time("scheduled_at", scheduledAt),
		)
	}
	return tracker, nil
}

// Start stamps the actual start time. Later calls keep the first stamp.
func (s *Service) Start(ctx context.Context, trackerID int64) (*domain.EndpointTracker, error) {
	t, err := s.trackers.Start(ctx, trackerID, s.now())
	if err != nil {
		return nil, fmt.Errorf("start tracker: %w", err)
	}
	return t, nil
}

// SetStatus records the outcome and detail message of the attempt.
func (s *Service) SetStatus(ctx context.Context, trackerID int64, status domain.EndpointStatus, detail string) (*domain.EndpointTracker, error) {
	if !status.IsValid() || status == domain.EndpointStatusNotProcessed {
		return nil, domain.NewValidationError("status", "must be a terminal status")
	}

	t, err := s.trackers.SetStatus(ctx, trackerID, status, detail)
	if err != nil {
		return nil, fmt.Errorf("set tracker status: %w", err)
	}

	s.metrics.StateRecorded(Design, status.String())
	if status == domain.EndpointStatusError {
		s.log.WarnContext(ctx, "endpoint sync error",
			slog.Int64("tracker_id", trackerID),
			slog.String("endpoint", t.Endpoint.String()),
			slog.String("detail", detail),
		)
	}
	return t, nil
}

// Finish stamps the end time. The status must have been set first. The end
// time never moves once stamped.
func (s *Service) Finish(ctx context.Context, trackerID int64) (*domain.EndpointTracker, error) {
	var finished *domain.EndpointTracker
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		t, err := s.trackers.GetByID(ctx, trackerID)
		if err != nil {
			return fmt.Errorf("get tracker: %w", err)
		}
		if t.Status == domain.EndpointStatusNotProcessed {
			return domain.NewValidationError("status", "set before finishing")
		}

		finished, err = s.trackers.Finish(ctx, trackerID, s.now())
		if err != nil {
			return fmt.Errorf("finish tracker: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.TrackerFinished(Design)
	s.log.InfoContext(ctx, "endpoint tracker finished",
		slog.Int64("tracker_id", finished.ID),
		slog.String("endpoint", finished.Endpoint.String()),
		slog.String("status", finished.Status.String()),
	)
	return finished, nil
}
