// Package account manages sync accounts and their teardown.
package account

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/evekit/synctrack/internal/config"
	"github.com/evekit/synctrack/internal/domain"
)

type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SyncAccount, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SyncAccount, error)
	ListMarkedBefore(ctx context.Context, before time.Time, limit int) ([]*domain.SyncAccount, error)
	Create(ctx context.Context, acc *domain.SyncAccount) (*domain.SyncAccount, error)
	MarkForDelete(ctx context.Context, id uuid.UUID, at time.Time) (*domain.SyncAccount, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// batchDeleter removes at most limit rows owned by an account.
type batchDeleter interface {
	DeleteBatchByAccount(ctx context.Context, accountID uuid.UUID, limit int) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements sync account operations.
type Service struct {
	log       *slog.Logger
	accounts  accountRepo
	trackers  batchDeleter
	endpoints batchDeleter
	keys      batchDeleter
	tx        txManager
	cfg       config.SyncConfig
	now       func() time.Time
}

// NewService creates a new account service. trackers, endpoints and keys
// are emptied, in that order, before an account row is removed.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	trackers batchDeleter,
	endpoints batchDeleter,
	keys batchDeleter,
	tx txManager,
	cfg config.SyncConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "account"),
		accounts:  accounts,
		trackers:  trackers,
		endpoints: endpoints,
		keys:      keys,
		tx:        tx,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
}
