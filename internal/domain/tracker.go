package domain

import (
	"time"

	"github.com/google/uuid"
)

// SyncStatus is the per-category outcome recorded on a legacy tracker.
type SyncStatus string

const (
	SyncStatusNotProcessed SyncStatus = "NOT_PROCESSED"
	SyncStatusUpdated      SyncStatus = "UPDATED"
	SyncStatusNotExpired   SyncStatus = "NOT_EXPIRED"
	SyncStatusError        SyncStatus = "SYNC_ERROR"
	SyncStatusWarning      SyncStatus = "SYNC_WARNING"
	SyncStatusNotAllowed   SyncStatus = "NOT_ALLOWED"
)

func (s SyncStatus) String() string { return string(s) }

func (s SyncStatus) IsValid() bool {
	switch s {
	case SyncStatusNotProcessed, SyncStatusUpdated, SyncStatusNotExpired,
		SyncStatusError, SyncStatusWarning, SyncStatusNotAllowed:
		return true
	}
	return false
}

// CategoryState is the status and detail message of one category within a pass.
type CategoryState struct {
	Status SyncStatus
	Detail string
}

// SyncTracker records one synchronization pass of one account in the legacy
// design: a single record holding a state for every applicable category.
type SyncTracker struct {
	ID        int64
	AccountID uuid.UUID
	Family    Family
	SyncStart time.Time
	Finished  bool
	// SyncEnd is set once Finished is true.
	SyncEnd *time.Time
	States  map[SyncCategory]CategoryState
}

// NewSyncTracker returns an unfinished tracker with every category of the
// family at NOT_PROCESSED.
func NewSyncTracker(accountID uuid.UUID, family Family, start time.Time) *SyncTracker {
	cats := CategoriesFor(family)
	states := make(map[SyncCategory]CategoryState, len(cats))
	for _, c := range cats {
		states[c] = CategoryState{Status: SyncStatusNotProcessed}
	}
	return &SyncTracker{
		AccountID: accountID,
		Family:    family,
		SyncStart: start,
		States:    states,
	}
}

// Applies reports whether the category is tracked by this tracker.
func (t *SyncTracker) Applies(c SyncCategory) bool {
	_, ok := t.States[c]
	return ok
}

// State returns the state of c. Categories the tracker does not carry report
// NOT_PROCESSED.
func (t *SyncTracker) State(c SyncCategory) CategoryState {
	st, ok := t.States[c]
	if !ok {
		return CategoryState{Status: SyncStatusNotProcessed}
	}
	return st
}

// SetState records the outcome of c. Later calls overwrite earlier ones.
func (t *SyncTracker) SetState(c SyncCategory, status SyncStatus, detail string) {
	if t.States == nil {
		t.States = make(map[SyncCategory]CategoryState)
	}
	t.States[c] = CategoryState{Status: status, Detail: detail}
}

func (t *SyncTracker) processed(c SyncCategory) bool {
	return t.State(c).Status != SyncStatusNotProcessed
}

// Complete reports whether every category in applicable has left
// NOT_PROCESSED.
func (t *SyncTracker) Complete(applicable []SyncCategory) bool {
	for _, c := range applicable {
		if !t.processed(c) {
			return false
		}
	}
	return true
}

// NextIncomplete returns the first category of required, in the given order,
// that is still NOT_PROCESSED and whose prerequisites have all been
// processed. Categories with unmet prerequisites are skipped for this pass.
func (t *SyncTracker) NextIncomplete(required []SyncCategory) (SyncCategory, bool) {
	for _, c := range required {
		if !t.Applies(c) || t.processed(c) {
			continue
		}
		if !t.prerequisitesMet(c) {
			continue
		}
		return c, true
	}
	return "", false
}

func (t *SyncTracker) prerequisitesMet(c SyncCategory) bool {
	for _, p := range Prerequisites(c) {
		if !t.processed(p) {
			return false
		}
	}
	return true
}

// ErrorDetails returns the detail message of every category in SYNC_ERROR.
func (t *SyncTracker) ErrorDetails() map[SyncCategory]string {
	out := make(map[SyncCategory]string)
	for c, st := range t.States {
		if st.Status == SyncStatusError {
			out[c] = st.Detail
		}
	}
	return out
}
