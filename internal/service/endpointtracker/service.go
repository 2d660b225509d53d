// Package endpointtracker runs per-endpoint trackers: one record per
// (account, endpoint) attempt, each scheduled, started and finished on its
// own cadence.
package endpointtracker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/evekit/synctrack/internal/config"
	"github.com/evekit/synctrack/internal/domain"
)

// Design labels endpoint trackers in metrics.
const Design = "endpoint"

type trackerRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.EndpointTracker, error)
	GetUnfinished(ctx context.Context, accountID *uuid.UUID, endpoint domain.Endpoint) (*domain.EndpointTracker, error)
	ListUnfinished(ctx context.Context, accountID *uuid.UUID) ([]*domain.EndpointTracker, error)
	LatestFinished(ctx context.Context, accountID *uuid.UUID, endpoint domain.Endpoint) (*domain.EndpointTracker, error)
	History(ctx context.Context, accountID *uuid.UUID, endpoint domain.Endpoint, before *time.Time, limit int) ([]*domain.EndpointTracker, error)
	Create(ctx context.Context, t *domain.EndpointTracker) (*domain.EndpointTracker, error)
	Start(ctx context.Context, id int64, at time.Time) (*domain.EndpointTracker, error)
	SetStatus(ctx context.Context, id int64, status domain.EndpointStatus, detail string) (*domain.EndpointTracker, error)
	Finish(ctx context.Context, id int64, at time.Time) (*domain.EndpointTracker, error)
}

type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SyncAccount, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type trackerMetrics interface {
	TrackerCreated(design string)
	TrackerFinished(design string)
	StateRecorded(design, status string)
}

// Service implements endpoint tracker operations. Account ids are uuid.Nil
// for reference endpoints.
type Service struct {
	log      *slog.Logger
	trackers trackerRepo
	accounts accountRepo
	tx       txManager
	metrics  trackerMetrics
	cfg      config.SyncConfig
	now      func() time.Time
}

// NewService creates a new endpoint tracker service.
func NewService(
	logger *slog.Logger,
	trackers trackerRepo,
	accounts accountRepo,
	tx txManager,
	metrics trackerMetrics,
	cfg config.SyncConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "endpointtracker"),
		trackers: trackers,
		accounts: accounts,
		tx:       tx,
		metrics:  metrics,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// accountRef maps uuid.Nil to the NULL account of reference trackers.
func accountRef(accountID uuid.UUID) *uuid.UUID {
	if accountID == uuid.Nil {
		return nil
	}
	return &accountID
}

// checkScope verifies the endpoint may be tracked for the account:
// reference endpoints have no account, the others need an account of the
// matching kind.
func (s *Service) checkScope(ctx context.Context, accountID uuid.UUID, endpoint domain.Endpoint) error {
	if !endpoint.IsValid() {
		return domain.NewValidationError("endpoint", "unknown endpoint")
	}
	if endpoint.IsReference() {
		if accountID != uuid.Nil {
			return domain.NewValidationError("account_id", "reference endpoints have no account")
		}
		return nil
	}
	if accountID == uuid.Nil {
		return domain.NewValidationError("account_id", "required")
	}

	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("get account: %w", err)
	}
	if acc.Kind.Scope() != endpoint.Scope() {
		return domain.NewValidationError("endpoint",
			fmt.Sprintf("%s is not a %s endpoint", endpoint, acc.Kind.Scope()))
	}
	return nil
}

func (s *Service) clampLimit(limit int) int {
	if limit <= 0 || limit > s.cfg.HistoryMaxLimit {
		return s.cfg.HistoryMaxLimit
	}
	return limit
}
