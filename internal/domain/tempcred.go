package domain

import (
	"time"

	"github.com/google/uuid"
)

// TempCredential is a short-lived pre-authorization record created while a
// user links an external EVE identity. Expired records are reaped.
type TempCredential struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Purpose   string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the credential has expired at now.
func (c TempCredential) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
