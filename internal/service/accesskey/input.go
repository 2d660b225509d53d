package accesskey

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/evekit/synctrack/internal/domain"
)

// CreateKeyInput holds the parameters for creating an access key.
type CreateKeyInput struct {
	AccountID uuid.UUID
	Name      string
	ExpiresAt *time.Time
	Limit     *time.Time
	Mask      domain.AccessMask
}

// Validate checks all fields and collects all errors.
func (i CreateKeyInput) Validate(maxName int) error {
	var errs []domain.FieldError
	if i.AccountID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "account_id", Message: "required"})
	}
	errs = append(errs, validateName("name", i.Name, maxName)...)
	if !i.Mask.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mask", Message: "contains unknown capability bits"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateKeyInput holds the parameters for updating an access key. ExpiresAt,
// Limit and Mask always overwrite; a nil ExpiresAt or Limit clears it.
type UpdateKeyInput struct {
	AccountID uuid.UUID
	Name      string
	NewName   string
	ExpiresAt *time.Time
	Limit     *time.Time
	Mask      domain.AccessMask
}

// Validate checks all fields and collects all errors.
func (i UpdateKeyInput) Validate(maxName int) error {
	var errs []domain.FieldError
	if i.AccountID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "account_id", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	errs = append(errs, validateName("new_name", i.NewName, maxName)...)
	if !i.Mask.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mask", Message: "contains unknown capability bits"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateName(field, name string, maxLen int) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if utf8.RuneCountInString(name) > maxLen {
		return []domain.FieldError{{Field: field, Message: "too long"}}
	}
	return nil
}
