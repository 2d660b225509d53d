package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountKind says whether a sync account synchronizes a character or a
// corporation.
type AccountKind string

const (
	AccountKindCharacter   AccountKind = "CHARACTER"
	AccountKindCorporation AccountKind = "CORPORATION"
)

func (k AccountKind) String() string { return string(k) }

func (k AccountKind) IsValid() bool {
	return k == AccountKindCharacter || k == AccountKindCorporation
}

// Family returns the legacy category family synchronized for this kind.
func (k AccountKind) Family() Family {
	if k == AccountKindCorporation {
		return FamilyCorporation
	}
	return FamilyCharacter
}

// Scope returns the endpoint scope synchronized for this kind.
func (k AccountKind) Scope() EndpointScope {
	if k == AccountKindCorporation {
		return ScopeCorporation
	}
	return ScopeCharacter
}

// SyncAccount is an externally synchronized EVE character or corporation
// owned by a user.
type SyncAccount struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Name              string
	Kind              AccountKind
	EveCharacterID    int64
	EveCorporationID  int64
	MarkedForDeleteAt *time.Time
	CreatedAt         time.Time
}

// IsMarkedForDelete reports whether the account awaits teardown.
func (a SyncAccount) IsMarkedForDelete() bool { return a.MarkedForDeleteAt != nil }
