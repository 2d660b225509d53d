package accesskey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/evekit/synctrack/internal/auth"
	"github.com/evekit/synctrack/internal/domain"
)

// Verification outcomes reported to metrics.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeExpired  = "expired"
	OutcomeError    = "error"
)

// Credential recomputes the secret credential of key. It is derived from the
// key id, the owning user and the seed, so rename and mask changes keep it.
func (s *Service) Credential(ctx context.Context, key *domain.AccessKey) (string, error) {
	owned, err := s.keys.GetWithOwner(ctx, key.ID)
	if err != nil {
		return "", fmt.Errorf("get key owner: %w", err)
	}
	return auth.CredentialDigest(owned.Key.ID, owned.OwnerUserID.String(), owned.Key.Seed), nil
}

// Verify returns the key identified by keyID if digest is its credential.
// An unknown key and a wrong digest both return domain.ErrNotFound. A
// matching digest on an expired key returns domain.ErrKeyExpired.
func (s *Service) Verify(ctx context.Context, keyID int64, digest string) (*domain.AccessKey, error) {
	owned, err := s.keys.GetWithOwner(ctx, keyID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.metrics.KeyVerified(OutcomeError)
			return nil, fmt.Errorf("get key: %w", err)
		}
		// Same work as a mismatch.
		auth.DigestEqual(auth.CredentialDigest(keyID, uuid.Nil.String(), 0), digest)
		s.metrics.KeyVerified(OutcomeRejected)
		return nil, domain.ErrNotFound
	}

	want := auth.CredentialDigest(owned.Key.ID, owned.OwnerUserID.String(), owned.Key.Seed)
	if !auth.DigestEqual(want, digest) {
		s.metrics.KeyVerified(OutcomeRejected)
		return nil, domain.ErrNotFound
	}

	if owned.Key.IsExpired(s.now()) {
		s.metrics.KeyVerified(OutcomeExpired)
		s.log.WarnContext(ctx, "expired access key presented", slog.Int64("key_id", keyID))
		return nil, domain.ErrKeyExpired
	}

	s.metrics.KeyVerified(OutcomeOK)
	return owned.Key, nil
}
