package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/evekit/synctrack/internal/domain"
)

const dayLayout = "2006-01-02"

type errorSummarizer interface {
	Summarize(ctx context.Context, day time.Time) (*domain.ErrorReport, error)
}

// ReportHandler serves the daily sync error report.
type ReportHandler struct {
	summary errorSummarizer
	log     *slog.Logger
	now     func() time.Time
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(summary errorSummarizer, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		summary: summary,
		log:     logger.With("handler", "report"),
		now:     time.Now,
	}
}

// ErrorReportResponse is the JSON form of domain.ErrorReport.
type ErrorReportResponse struct {
	Day        string           `json:"day"`
	Total      int              `json:"total"`
	Categories []CategoryErrors `json:"categories"`
}

// CategoryErrors lists failure reasons of one category, most frequent first.
type CategoryErrors struct {
	Category string        `json:"category"`
	Reasons  []ReasonCount `json:"reasons"`
}

type ReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// Errors returns the error report for one UTC day.
// GET /reports/errors?day=2026-01-31 (default: today)
func (h *ReportHandler) Errors(w http.ResponseWriter, r *http.Request) {
	day := h.now().UTC()
	if v := r.URL.Query().Get("day"); v != "" {
		parsed, err := time.Parse(dayLayout, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "day must be YYYY-MM-DD")
			return
		}
		day = parsed
	}

	report, err := h.summary.Summarize(r.Context(), day)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, NewErrorReportResponse(report))
}

// NewErrorReportResponse converts a report into its JSON form.
func NewErrorReportResponse(report *domain.ErrorReport) ErrorReportResponse {
	resp := ErrorReportResponse{
		Day:        report.Day.Format(dayLayout),
		Total:      report.Total(),
		Categories: []CategoryErrors{},
	}
	for _, name := range report.Sorted() {
		ce := CategoryErrors{Category: name}
		for _, e := range report.Categories[name] {
			ce.Reasons = append(ce.Reasons, ReasonCount{Reason: e.Reason, Count: e.Count})
		}
		resp.Categories = append(resp.Categories, ce)
	}
	return resp
}
