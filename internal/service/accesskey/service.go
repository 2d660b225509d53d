package accesskey

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/evekit/synctrack/internal/auth"
	"github.com/evekit/synctrack/internal/config"
	"github.com/evekit/synctrack/internal/domain"
)

type keyRepo interface {
	NextID(ctx context.Context) (int64, error)
	GetByName(ctx context.Context, accountID uuid.UUID, name string) (*domain.AccessKey, error)
	GetWithOwner(ctx context.Context, id int64) (*domain.OwnedKey, error)
	List(ctx context.Context, accountID uuid.UUID) ([]*domain.AccessKey, error)
	Count(ctx context.Context, accountID uuid.UUID) (int, error)
	Create(ctx context.Context, key *domain.AccessKey) (*domain.AccessKey, error)
	Update(ctx context.Context, key *domain.AccessKey, at time.Time) (*domain.AccessKey, error)
	Delete(ctx context.Context, id int64) error
}

type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SyncAccount, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type keyMetrics interface {
	KeyVerified(outcome string)
}

// Service manages access keys and verifies presented credentials.
type Service struct {
	log      *slog.Logger
	keys     keyRepo
	accounts accountRepo
	tx       txManager
	metrics  keyMetrics
	cfg      config.KeysConfig

	now     func() time.Time
	newSeed func() (int64, error)
}

// NewService creates a new access key service.
func NewService(
	logger *slog.Logger,
	keys keyRepo,
	accounts accountRepo,
	tx txManager,
	metrics keyMetrics,
	cfg config.KeysConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "accesskey"),
		keys:     keys,
		accounts: accounts,
		tx:       tx,
		metrics:  metrics,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
		newSeed:  auth.NewSeed,
	}
}
