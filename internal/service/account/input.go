package account

import (
	"strings"

	"github.com/google/uuid"

	"github.com/evekit/synctrack/internal/domain"
)

const maxAccountName = 100

// CreateAccountInput holds the parameters for creating a sync account.
type CreateAccountInput struct {
	UserID           uuid.UUID
	Name             string
	Kind             domain.AccountKind
	EveCharacterID   int64
	EveCorporationID int64
}

// Validate checks all fields and collects all errors.
func (i CreateAccountInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxAccountName {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	switch i.Kind {
	case domain.AccountKindCharacter:
		if i.EveCharacterID <= 0 {
			errs = append(errs, domain.FieldError{Field: "eve_character_id", Message: "required for character accounts"})
		}
	case domain.AccountKindCorporation:
		if i.EveCorporationID <= 0 {
			errs = append(errs, domain.FieldError{Field: "eve_corporation_id", Message: "required for corporation accounts"})
		}
	default:
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be CHARACTER or CORPORATION"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
