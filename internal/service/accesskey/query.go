package accesskey

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/evekit/synctrack/internal/domain"
)

// Get returns the named key of the account.
func (s *Service) Get(ctx context.Context, accountID uuid.UUID, name string) (*domain.AccessKey, error) {
	key, err := s.keys.GetByName(ctx, accountID, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("get key: %w", err)
	}
	return key, nil
}

// List returns the account's keys ordered by name.
func (s *Service) List(ctx context.Context, accountID uuid.UUID) ([]*domain.AccessKey, error) {
	keys, err := s.keys.List(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	return keys, nil
}
