package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/evekit/synctrack/internal/adapter/postgres"
	accesskeyrepo "github.com/evekit/synctrack/internal/adapter/postgres/accesskey"
	accountrepo "github.com/evekit/synctrack/internal/adapter/postgres/account"
	endpointrepo "github.com/evekit/synctrack/internal/adapter/postgres/endpointtracker"
	tempcredrepo "github.com/evekit/synctrack/internal/adapter/postgres/tempcred"
	trackerrepo "github.com/evekit/synctrack/internal/adapter/postgres/tracker"
	"github.com/evekit/synctrack/internal/auth"
	"github.com/evekit/synctrack/internal/config"
	"github.com/evekit/synctrack/internal/metrics"
	"github.com/evekit/synctrack/internal/service/accesskey"
	"github.com/evekit/synctrack/internal/service/account"
	"github.com/evekit/synctrack/internal/service/endpointtracker"
	"github.com/evekit/synctrack/internal/service/errorsummary"
	"github.com/evekit/synctrack/internal/service/schedule"
	"github.com/evekit/synctrack/internal/service/synctracker"
	"github.com/evekit/synctrack/internal/service/tempcred"
)

// Components holds the wired services. Commands build only what they use
// from it; construction itself touches neither the network nor the clock.
type Components struct {
	Metrics   *metrics.Metrics
	Accounts  *account.Service
	Keys      *accesskey.Service
	Trackers  *synctracker.Service
	Endpoints *endpointtracker.Service
	Errors    *errorsummary.Service
	Scheduler *schedule.Scheduler
	TempCreds *tempcred.Service
}

// NewComponents wires repositories and services over pool.
func NewComponents(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *Components {
	tx := postgres.NewTxManager(pool, cfg.Database.TxMaxRetries)

	accountRepo := accountrepo.New(pool)
	keyRepo := accesskeyrepo.New(pool)
	trackerRepo := trackerrepo.New(pool)
	endpointRepo := endpointrepo.New(pool)
	credRepo := tempcredrepo.New(pool)

	trackers := synctracker.NewService(logger, trackerRepo, accountRepo, tx, m, cfg.Sync)
	endpoints := endpointtracker.NewService(logger, endpointRepo, accountRepo, tx, m, cfg.Sync)

	return &Components{
		Metrics:   m,
		Accounts:  account.NewService(logger, accountRepo, trackerRepo, endpointRepo, keyRepo, tx, cfg.Sync),
		Keys:      accesskey.NewService(logger, keyRepo, accountRepo, tx, m, cfg.Keys),
		Trackers:  trackers,
		Endpoints: endpoints,
		Errors:    errorsummary.NewService(logger, trackerRepo, endpointRepo),
		Scheduler: schedule.NewScheduler(logger, m,
			schedule.NewLegacyQuery(trackers),
			schedule.NewEndpointQuery(endpoints),
		),
		TempCreds: tempcred.NewService(logger, credRepo,
			auth.NewStateSigner(cfg.TempCred.SigningSecret, cfg.TempCred.Issuer),
			m, cfg.TempCred),
	}
}
