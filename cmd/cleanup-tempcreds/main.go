// Command cleanup-tempcreds deletes expired temporary credentials once.
// syncd reaps them periodically; this command is for deployments that
// run the reap from cron instead.
//
// Usage:
//
//	cleanup-tempcreds
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/evekit/synctrack/internal/adapter/postgres"
	"github.com/evekit/synctrack/internal/app"
	"github.com/evekit/synctrack/internal/config"
	"github.com/evekit/synctrack/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	c := app.NewComponents(pool, cfg, logger, metrics.New())

	n, err := c.TempCreds.CleanupExpired(ctx)
	if err != nil {
		os.Exit(1)
	}

	fmt.Printf("Deleted %d expired temporary credentials.\n", n)
}
