package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/evekit/synctrack/internal/transport/middleware"
)

// RouterConfig carries the handlers and middleware of the ops surface.
type RouterConfig struct {
	Logger  *slog.Logger
	Health  *HealthHandler
	Reports *ReportHandler
	Work    *WorkHandler
	Keys    *KeyHandler
	// Metrics serves the Prometheus exposition; nil disables /metrics.
	Metrics http.Handler
	// KeyAuth authenticates /keys requests.
	KeyAuth middleware.Middleware
	// KeyLimit throttles /keys requests before authentication.
	KeyLimit middleware.Middleware
}

// NewRouter builds the ops HTTP router.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))

	r.Get("/live", cfg.Health.Live)
	r.Get("/ready", cfg.Health.Ready)
	r.Get("/health", cfg.Health.Health)

	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	r.Get("/reports/errors", cfg.Reports.Errors)
	r.Post("/work-requests", cfg.Work.Create)

	r.Route("/keys", func(r chi.Router) {
		if cfg.KeyLimit != nil {
			r.Use(cfg.KeyLimit)
		}
		r.Use(cfg.KeyAuth)
		r.Get("/self", cfg.Keys.Self)
		r.Get("/check", cfg.Keys.Check)
	})

	return r
}
