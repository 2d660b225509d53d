package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccessKey grants a third party read access to a subset of one account's
// synchronized data. The secret credential is derived from ID, the owning
// user and Seed; it is never stored.
type AccessKey struct {
	ID        int64
	AccountID uuid.UUID
	Name      string
	Mask      AccessMask
	// ExpiresAt is nil for keys that never expire.
	ExpiresAt *time.Time
	// Limit is the oldest data time the key may read; nil means no limit.
	Limit     *time.Time
	Seed      int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpired reports whether the key has expired at now.
func (k AccessKey) IsExpired(now time.Time) bool {
	return k.ExpiresAt != nil && !now.Before(*k.ExpiresAt)
}

// IsAccessAllowed reports whether the key's mask grants c.
func (k AccessKey) IsAccessAllowed(c Capability) bool {
	return IsAccessAllowed(k.Mask, c)
}

// CanRead combines mask, expiry and historical limit: the key may read data
// of capability c recorded at dataTime.
func (k AccessKey) CanRead(c Capability, dataTime, now time.Time) bool {
	if k.IsExpired(now) || !k.IsAccessAllowed(c) {
		return false
	}
	return k.Limit == nil || !dataTime.Before(*k.Limit)
}

// OwnedKey is a key together with the user id owning its account.
type OwnedKey struct {
	Key         *AccessKey
	OwnerUserID uuid.UUID
}
