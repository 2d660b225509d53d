// Package tempcred issues and redeems short-lived pre-authorization records
// used while a user links an external EVE identity.
package tempcred

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/evekit/synctrack/internal/auth"
	"github.com/evekit/synctrack/internal/config"
	"github.com/evekit/synctrack/internal/domain"
)

type credentialRepo interface {
	Create(ctx context.Context, c *domain.TempCredential) (*domain.TempCredential, error)
	Take(ctx context.Context, id uuid.UUID) (*domain.TempCredential, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type stateSigner interface {
	Sign(c auth.StateClaims, issuedAt, expiresAt time.Time) (string, error)
	Parse(token string) (auth.StateClaims, error)
}

type reapMetrics interface {
	CredentialsReaped(n int64)
}

// Service implements temporary credential operations.
type Service struct {
	log     *slog.Logger
	creds   credentialRepo
	signer  stateSigner
	metrics reapMetrics
	cfg     config.TempCredConfig
	now     func() time.Time
}

// NewService creates a new temporary credential service.
func NewService(
	logger *slog.Logger,
	creds credentialRepo,
	signer stateSigner,
	metrics reapMetrics,
	cfg config.TempCredConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "tempcred"),
		creds:   creds,
		signer:  signer,
		metrics: metrics,
		cfg:     cfg,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Issued is a stored credential plus the state token handed to the client.
type Issued struct {
	Credential *domain.TempCredential
	State      string
}

// Issue stores a credential for the user and returns its signed state token.
func (s *Service) Issue(ctx context.Context, userID uuid.UUID, purpose string) (*Issued, error) {
	purpose = strings.TrimSpace(purpose)
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}
	if purpose == "" {
		return nil, domain.NewValidationError("purpose", "required")
	}

	now := s.now()
	cred, err := s.creds.Create(ctx, &domain.TempCredential{
		ID:        uuid.New(),
		UserID:    userID,
		Purpose:   purpose,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.TTL),
	})
	if err != nil {
		return nil, fmt.Errorf("create temp credential: %w", err)
	}

	state, err := s.signer.Sign(auth.StateClaims{
		CredentialID: cred.ID,
		UserID:       cred.UserID,
		Purpose:      cred.Purpose,
	}, cred.CreatedAt, cred.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("sign state: %w", err)
	}

	return &Issued{Credential: cred, State: state}, nil
}

// Redeem validates the state token and consumes its credential. A token is
// good for one redemption. Invalid, expired, replayed or mismatched tokens
// return domain.ErrUnauthorized.
func (s *Service) Redeem(ctx context.Context, state string) (*domain.TempCredential, error) {
	claims, err := s.signer.Parse(state)
	if err != nil {
		s.log.WarnContext(ctx, "invalid state token", slog.String("error", err.Error()))
		return nil, domain.ErrUnauthorized
	}

	cred, err := s.creds.Take(ctx, claims.CredentialID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("take temp credential: %w", err)
	}

	if cred.UserID != claims.UserID || cred.Purpose != claims.Purpose || cred.IsExpired(s.now()) {
		return nil, domain.ErrUnauthorized
	}
	return cred, nil
}

// CleanupExpired deletes every credential past its expiry and returns how
// many were removed.
func (s *Service) CleanupExpired(ctx context.Context) (int64, error) {
	n, err := s.creds.DeleteExpired(ctx, s.now())
	if err != nil {
		s.log.ErrorContext(ctx, "temp credential cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("delete expired temp credentials: %w", err)
	}

	s.metrics.CredentialsReaped(n)
	if n > 0 {
		s.log.InfoContext(ctx, "cleaned up expired temp credentials", slog.Int64("count", n))
	}
	return n, nil
}
