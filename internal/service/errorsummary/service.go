// Package errorsummary aggregates category sync errors of both tracker
// designs over one UTC day.
package errorsummary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/evekit/synctrack/internal/domain"
)

// errorSource counts failures that ended in [from, to).
type errorSource interface {
	ErrorCounts(ctx context.Context, from, to time.Time) ([]domain.ErrorCount, error)
}

// Service builds daily error reports.
type Service struct {
	log       *slog.Logger
	legacy    errorSource
	endpoints errorSource
}

// NewService creates a new error summary service.
func NewService(logger *slog.Logger, legacy, endpoints errorSource) *Service {
	return &Service{
		log:       logger.With("service", "errorsummary"),
		legacy:    legacy,
		endpoints: endpoints,
	}
}

// Summarize reports every (category, detail) failure recorded by trackers
// that ended on the UTC day containing day.
func (s *Service) Summarize(ctx context.Context, day time.Time) (*domain.ErrorReport, error) {
	report := domain.NewErrorReport(day)
	from := report.Day
	to := from.AddDate(0, 0, 1)

	var legacy, endpoints []domain.ErrorCount
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		legacy, err = s.legacy.ErrorCounts(gctx, from, to)
		if err != nil {
			return fmt.Errorf("legacy tracker errors: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		endpoints, err = s.endpoints.ErrorCounts(gctx, from, to)
		if err != nil {
			return fmt.Errorf("endpoint tracker errors: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Add(legacy...)
	report.Add(endpoints...)

	s.log.InfoContext(ctx, "error summary built",
		slog.String("day", from.Format(time.DateOnly)),
		slog.Int("categories", len(report.Categories)),
		slog.Int("total", report.Total()),
	)
	return report, nil
}
