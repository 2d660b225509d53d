// Command error-report prints the sync error summary for one UTC day.
//
// Usage:
//
//	error-report [--day 2026-01-31] [--json]
//
// The day defaults to yesterday.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/evekit/synctrack/internal/adapter/postgres"
	"github.com/evekit/synctrack/internal/app"
	"github.com/evekit/synctrack/internal/config"
	"github.com/evekit/synctrack/internal/domain"
	"github.com/evekit/synctrack/internal/metrics"
	"github.com/evekit/synctrack/internal/transport/rest"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := pflag.NewFlagSet("error-report", pflag.ContinueOnError)
	dayFlag := flags.String("day", "", "UTC day as YYYY-MM-DD (default: yesterday)")
	asJSON := flags.Bool("json", false, "print the report as JSON")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	day := time.Now().UTC().AddDate(0, 0, -1)
	if *dayFlag != "" {
		parsed, err := time.Parse("2006-01-02", *dayFlag)
		if err != nil {
			return fmt.Errorf("--day: %w", err)
		}
		day = parsed
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	c := app.NewComponents(pool, cfg, logger, metrics.New())

	report, err := c.Errors.Summarize(ctx, day)
	if err != nil {
		return err
	}
	logger.Debug("error report built", slog.Int("total", report.Total()))

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rest.NewErrorReportResponse(report))
	}
	return printReport(os.Stdout, report)
}

func printReport(w io.Writer, report *domain.ErrorReport) error {
	fmt.Fprintf(w, "Sync errors for %s: %d\n\n", report.Day.Format("2006-01-02"), report.Total())
	if report.Total() == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tCOUNT\tREASON")
	for _, name := range report.Sorted() {
		for _, e := range report.Categories[name] {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", name, e.Count, e.Reason)
		}
	}
	return tw.Flush()
}
