package accesskey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/evekit/synctrack/internal/domain"
)

// Update changes a key in place. A rename checks the new name against the
// account's other keys; id and seed never change.
func (s *Service) Update(ctx context.Context, input UpdateKeyInput) (*domain.AccessKey, error) {
	if err := input.Validate(s.cfg.MaxNameLength); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	newName := strings.TrimSpace(input.NewName)

	var updated *domain.AccessKey
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		key, err := s.keys.GetByName(ctx, input.AccountID, name)
		if err != nil {
			return fmt.Errorf("get key: %w", err)
		}

		if newName != key.Name {
			_, err := s.keys.GetByName(ctx, input.AccountID, newName)
			switch {
			case err == nil:
				return fmt.Errorf("key %q: %w", newName, domain.ErrAlreadyExists)
			case !errors.Is(err, domain.ErrNotFound):
				return fmt.Errorf("get key by name: %w", err)
			}
		}

		next := *key
		next.Name = newName
		next.ExpiresAt = input.ExpiresAt
		next.Limit = input.Limit
		next.Mask = input.Mask

		updated, err = s.keys.Update(ctx, &next, s.now())
		if err != nil {
			return fmt.Errorf("update key: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "access key updated",
		slog.String("account_id", updated.AccountID.String()),
		slog.Int64("key_id", updated.ID),
	)
	return updated, nil
}

// Delete removes the named key of the account.
func (s *Service) Delete(ctx context.Context, accountID uuid.UUID, name string) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		key, err := s.keys.GetByName(ctx, accountID, strings.TrimSpace(name))
		if err != nil {
			return fmt.Errorf("get key: %w", err)
		}
		if err := s.keys.Delete(ctx, key.ID); err != nil {
			return fmt.Errorf("delete key: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "access key deleted",
		slog.String("account_id", accountID.String()),
		slog.String("name", name),
	)
	return nil
}
