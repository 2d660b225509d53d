package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Remove deletes the account and everything it owns. Owned rows go in
// bounded batches, each batch in its own transaction, so large accounts
// never hold one huge transaction.
func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	if _, err := s.accounts.GetByID(ctx, id); err != nil {
		return fmt.Errorf("get account: %w", err)
	}

	steps := []struct {
		name string
		del  batchDeleter
	}{
		{"trackers", s.trackers},
		{"endpoint_trackers", s.endpoints},
		{"access_keys", s.keys},
	}

	attrs := []any{slog.String("account_id", id.String())}
	for _, step := range steps {
		n, err := s.drain(ctx, id, step.del)
		if err != nil {
			return fmt.Errorf("delete %s: %w", step.name, err)
		}
		attrs = append(attrs, slog.Int64(step.name, n))
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.accounts.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	s.log.InfoContext(ctx, "account removed", attrs...)
	return nil
}

// drain deletes batches until one comes back empty.
func (s *Service) drain(ctx context.Context, id uuid.UUID, del batchDeleter) (int64, error) {
	var total int64
	for {
		var n int64
		err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
			var err error
			n, err = del.DeleteBatchByAccount(ctx, id, s.cfg.TeardownBatchSize)
			return err
		})
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, nil
		}
		total += n
	}
}

// CleanupMarked removes up to limit accounts marked for delete longer than
// the configured retention. It keeps going past individual failures and
// returns how many accounts were removed.
func (s *Service) CleanupMarked(ctx context.Context, limit int) (int, error) {
	cutoff := s.now().Add(-s.cfg.DeleteRetention)

	marked, err := s.accounts.ListMarkedBefore(ctx, cutoff, limit)
	if err != nil {
		return 0, fmt.Errorf("list marked accounts: %w", err)
	}

	var (
		removed int
		errs    []error
	)
	for _, acc := range marked {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := s.Remove(ctx, acc.ID); err != nil {
			s.log.ErrorContext(ctx, "account teardown failed",
				slog.String("account_id", acc.ID.String()),
				slog.String("error", err.Error()),
			)
			errs = append(errs, fmt.Errorf("account %s: %w", acc.ID, err))
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}
