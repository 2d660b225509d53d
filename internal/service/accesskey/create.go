package accesskey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/evekit/synctrack/internal/domain"
)

// Create inserts a new key for the account. The name must be unused within
// the account and the account must be below its key limit.
func (s *Service) Create(ctx context.Context, input CreateKeyInput) (*domain.AccessKey, error) {
	if err := input.Validate(s.cfg.MaxNameLength); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)

	seed, err := s.newSeed()
	if err != nil {
		return nil, fmt.Errorf("generate seed: %w", err)
	}

	var created *domain.AccessKey
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.accounts.GetByID(ctx, input.AccountID); err != nil {
			return fmt.Errorf("get account: %w", err)
		}

		count, err := s.keys.Count(ctx, input.AccountID)
		if err != nil {
			return fmt.Errorf("count keys: %w", err)
		}
		if count >= s.cfg.MaxPerAccount {
			return fmt.Errorf("account has %d keys: %w", count, domain.ErrLimitExceeded)
		}

		_, err = s.keys.GetByName(ctx, input.AccountID, name)
		switch {
		case err == nil:
			return fmt.Errorf("key %q: %w", name, domain.ErrAlreadyExists)
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("get key by name: %w", err)
		}

		id, err := s.keys.NextID(ctx)
		if err != nil {
			return fmt.Errorf("next key id: %w", err)
		}

		now := s.now()
		created, err = s.keys.Create(ctx, &domain.AccessKey{
			ID:        id,
			AccountID: input.AccountID,
			Name:      name,
			Mask:      input.Mask,
			ExpiresAt: input.ExpiresAt,
			Limit:     input.Limit,
			Seed:      seed,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create key: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "access key created",
		slog.String("account_id", created.AccountID.String()),
		slog.Int64("key_id", created.ID),
		slog.String("mask", created.Mask.String()),
	)
	return created, nil
}
