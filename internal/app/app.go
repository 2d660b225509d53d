package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/evekit/synctrack/internal/adapter/postgres"
	"github.com/evekit/synctrack/internal/config"
	"github.com/evekit/synctrack/internal/domain"
	"github.com/evekit/synctrack/internal/metrics"
	"github.com/evekit/synctrack/internal/service/tempcred"
	"github.com/evekit/synctrack/internal/transport/middleware"
	"github.com/evekit/synctrack/internal/transport/rest"
)

// Run is the service entry point. It loads configuration, connects to
// PostgreSQL, starts the ops HTTP server and the temporary credential
// reaper, and blocks until ctx is cancelled or a component fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := domain.CheckEndpointCoverage(); err != nil {
		return fmt.Errorf("endpoint registry: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	c := NewComponents(pool, cfg, logger, metrics.New())

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newRouter(cfg, logger, pool, c, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		tempcred.NewReaper(c.TempCreds, cfg.TempCred.ReapInterval).Run(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}

func newRouter(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, c *Components, limiter *middleware.RateLimiter) http.Handler {
	return rest.NewRouter(rest.RouterConfig{
		Logger:   logger,
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
		Reports:  rest.NewReportHandler(c.Errors, logger),
		Work:     rest.NewWorkHandler(c.Scheduler, logger),
		Keys:     rest.NewKeyHandler(),
		Metrics:  c.Metrics.Handler(),
		KeyAuth:  middleware.AccessKey(c.Keys, logger),
		KeyLimit: limiter.Limit(cfg.Server.KeyCheckPerMinute),
	})
}
