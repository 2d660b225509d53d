package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/evekit/synctrack/internal/domain"
)

// Create registers a sync account. Names are unique per user.
func (s *Service) Create(ctx context.Context, input CreateAccountInput) (*domain.SyncAccount, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	acc, err := s.accounts.Create(ctx, &domain.SyncAccount{
		ID:               uuid.New(),
		UserID:           input.UserID,
		Name:             strings.TrimSpace(input.Name),
		Kind:             input.Kind,
		EveCharacterID:   input.EveCharacterID,
		EveCorporationID: input.EveCorporationID,
		CreatedAt:        s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.InfoContext(ctx, "account created",
		slog.String("account_id", acc.ID.String()),
		slog.String("user_id", acc.UserID.String()),
		slog.String("kind", acc.Kind.String()),
	)
	return acc, nil
}

// Get returns an account by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.SyncAccount, error) {
	acc, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return acc, nil
}

// ListByUser returns the user's accounts.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SyncAccount, error) {
	list, err := s.accounts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return list, nil
}

// MarkForDelete flags the account for teardown. The first mark time is kept.
func (s *Service) MarkForDelete(ctx context.Context, id uuid.UUID) (*domain.SyncAccount, error) {
	acc, err := s.accounts.MarkForDelete(ctx, id, s.now())
	if err != nil {
		return nil, fmt.Errorf("mark account for delete: %w", err)
	}

	s.log.InfoContext(ctx, "account marked for delete", slog.String("account_id", id.String()))
	return acc, nil
}
