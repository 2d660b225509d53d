// Package synctracker runs the legacy one-record-per-pass tracker: one
// unfinished tracker per account carrying a state for every category of the
// account's family.
package synctracker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/evekit/synctrack/internal/config"
	"github.com/evekit/synctrack/internal/domain"
)

// Design labels the legacy tracker in metrics.
const Design = "legacy"

type trackerRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.SyncTracker, error)
	GetUnfinished(ctx context.Context, accountID uuid.UUID) (*domain.SyncTracker, error)
	ListUnfinished(ctx context.Context, accountID uuid.UUID) ([]*domain.SyncTracker, error)
	LatestFinished(ctx context.Context, accountID uuid.UUID) (*domain.SyncTracker, error)
	History(ctx context.Context, accountID uuid.UUID, before *time.Time, limit int) ([]*domain.SyncTracker, error)
	Create(ctx context.Context, t *domain.SyncTracker) (*domain.SyncTracker, error)
	SetCategoryState(ctx context.Context, id int64, c domain.SyncCategory, st domain.CategoryState) (*domain.SyncTracker, error)
	Finish(ctx context.Context, id int64, at time.Time) (*domain.SyncTracker, error)
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

// Service implements legacy tracker operations.
type Service struct {
	log      *slog.Logger
	trackers trackerRepo
	accounts accountRepo
	tx       txManager
	metrics  trackerMetrics
	cfg      config.SyncConfig
	now      func() time.Time
}

// NewService creates a new legacy tracker service.
func NewService(
	logger *slog.Logger,
	trackers trackerRepo,
	accounts accountRepo,
	tx txManager,
	metrics trackerMetrics,
	cfg config.SyncConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "synctracker"),
		trackers: trackers,
		accounts: accounts,
		tx:       tx,
		metrics:  metrics,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// familyOf resolves the category family synchronized for accountID.
// uuid.Nil is the shared reference data set.
func (s *Service) familyOf(ctx context.Context, accountID uuid.UUID) (domain.Family, error) {
	if accountID == uuid.Nil {
		return domain.FamilyReference, nil
	}
	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("get account: %w", err)
	}
	return acc.Kind.Family(), nil
}

func (s *Service) clampLimit(limit int) int {
	if limit <= 0 || limit > s.cfg.HistoryMaxLimit {
		return s.cfg.HistoryMaxLimit
	}
	return limit
}
