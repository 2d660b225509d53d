package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/evekit/synctrack/internal/service/schedule"
)

type workScheduler interface {
	Request(ctx context.Context, req schedule.WorkRequest) (schedule.Result, error)
}

// WorkHandler accepts scheduling triggers.
type WorkHandler struct {
	scheduler workScheduler
	log       *slog.Logger
	now       func() time.Time
}

// NewWorkHandler creates a WorkHandler.
func NewWorkHandler(scheduler workScheduler, logger *slog.Logger) *WorkHandler {
	return &WorkHandler{
		scheduler: scheduler,
		log:       logger.With("handler", "work"),
		now:       time.Now,
	}
}

// WorkRequestBody is the payload of POST /work-requests. AccountID is
// omitted for reference data; ScheduledAt defaults to now.
type WorkRequestBody struct {
	AccountID   *uuid.UUID `json:"account_id,omitempty"`
	Category    string     `json:"category"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

type WorkResponse struct {
	Design    string `json:"design"`
	TrackerID int64  `json:"tracker_id"`
	Covered   bool   `json:"covered"`
}

// Create asks for a category to be synchronized.
// POST /work-requests
func (h *WorkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body WorkRequestBody
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req := schedule.WorkRequest{Category: body.Category, ScheduledAt: h.now().UTC()}
	if body.AccountID != nil {
		req.AccountID = *body.AccountID
	}
	if body.ScheduledAt != nil {
		req.ScheduledAt = body.ScheduledAt.UTC()
	}

	res, err := h.scheduler.Request(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	status := http.StatusCreated
	if res.Covered {
		status = http.StatusOK
	}
	writeJSON(w, status, WorkResponse{Design: res.Design, TrackerID: res.TrackerID, Covered: res.Covered})
}
