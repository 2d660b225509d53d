// Command cleanup physically removes sync accounts that were marked for
// deletion longer than sync.delete_retention ago, together with their
// trackers and access keys. It is intended to be invoked by an external
// cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error (including partial failure).
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/evekit/synctrack/internal/adapter/postgres"
	"github.com/evekit/synctrack/internal/app"
	"github.com/evekit/synctrack/internal/config"
	"github.com/evekit/synctrack/internal/metrics"
)

func main() {
	limit := pflag.Int("limit", 100, "maximum accounts removed per run")
	timeout := pflag.Duration("timeout", 30*time.Minute, "overall deadline")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	c := app.NewComponents(pool, cfg, logger, metrics.New())

	removed, err := c.Accounts.CleanupMarked(ctx, *limit)
	if err != nil {
		logger.Error("account cleanup failed",
			slog.String("error", err.Error()),
			slog.Int("removed", removed),
		)
		os.Exit(1)
	}

	logger.Info("account cleanup completed",
		slog.Int("removed", removed),
		slog.Duration("retention", cfg.Sync.DeleteRetention),
	)
}
