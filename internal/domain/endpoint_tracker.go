package domain

import (
	"time"

	"github.com/google/uuid"
)

// EndpointStatus is the outcome of one endpoint tracker.
type EndpointStatus string

const (
	EndpointStatusNotProcessed EndpointStatus = "NOT_PROCESSED"
	EndpointStatusFinished     EndpointStatus = "FINISHED"
	EndpointStatusError        EndpointStatus = "ERROR"
	EndpointStatusWarning      EndpointStatus = "WARNING"
)

func (s EndpointStatus) String() string { return string(s) }

func (s EndpointStatus) IsValid() bool {
	switch s {
	case EndpointStatusNotProcessed, EndpointStatusFinished, EndpointStatusError, EndpointStatusWarning:
		return true
	}
	return false
}

// EndpointTracker records one synchronization attempt of one endpoint for one
// account. Reference endpoints have no account.
type EndpointTracker struct {
	ID          int64
	AccountID   *uuid.UUID
	Endpoint    Endpoint
	ScheduledAt time.Time
	// StartedAt is nil until the attempt starts.
	StartedAt *time.Time
	// EndedAt is nil until the attempt finishes.
	EndedAt *time.Time
	Status  EndpointStatus
	Detail  string
}

// IsFinished reports whether the tracker has an end time.
func (t EndpointTracker) IsFinished() bool { return t.EndedAt != nil }

// IsStarted reports whether the tracker has a start time.
func (t EndpointTracker) IsStarted() bool { return t.StartedAt != nil }
