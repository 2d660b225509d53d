//go:build e2e

package e2e_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/evekit/synctrack/internal/adapter/postgres/testhelper"
	"github.com/evekit/synctrack/internal/app"
	"github.com/evekit/synctrack/internal/config"
	"github.com/evekit/synctrack/internal/domain"
	"github.com/evekit/synctrack/internal/metrics"
	"github.com/evekit/synctrack/internal/service/account"
	"github.com/evekit/synctrack/internal/transport/middleware"
	"github.com/evekit/synctrack/internal/transport/rest"
)

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{TxMaxRetries: 5},
		Keys:     config.KeysConfig{MaxPerAccount: 5, MaxNameLength: 64},
		Sync: config.SyncConfig{
			TeardownBatchSize: 2,
			DeleteRetention:   time.Hour,
			HistoryMaxLimit:   100,
		},
		TempCred: config.TempCredConfig{
			SigningSecret: "e2e-signing-secret-of-at-least-32-chars",
			Issuer:        "synctrack-e2e",
			TTL:           10 * time.Minute,
			ReapInterval:  time.Minute,
		},
	}
}

// stack is the fully wired service layer over a real database.
type stack struct {
	Pool *pgxpool.Pool
	*app.Components
}

func setupStack(t *testing.T) *stack {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return &stack{
		Pool:       pool,
		Components: app.NewComponents(pool, testConfig(), logger, metrics.New()),
	}
}

// testServer wraps the ops HTTP surface for E2E tests.
type testServer struct {
	*stack
	URL    string
	Client *http.Client
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	s := setupStack(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	router := rest.NewRouter(rest.RouterConfig{
		Logger:   logger,
		Health:   rest.NewHealthHandler(s.Pool, "e2e"),
		Reports:  rest.NewReportHandler(s.Errors, logger),
		Work:     rest.NewWorkHandler(s.Scheduler, logger),
		Keys:     rest.NewKeyHandler(),
		Metrics:  s.Metrics.Handler(),
		KeyAuth:  middleware.AccessKey(s.Keys, logger),
		KeyLimit: limiter.Limit(0),
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{stack: s, URL: srv.URL, Client: srv.Client()}
}

// createAccount creates an account of kind for a fresh user.
func (s *stack) createAccount(t *testing.T, kind domain.AccountKind) *domain.SyncAccount {
	t.Helper()
	in := account.CreateAccountInput{
		UserID:         uuid.New(),
		Name:           "pilot-" + uuid.NewString()[:8],
		Kind:           kind,
		EveCharacterID: 90000001,
	}
	if kind == domain.AccountKindCorporation {
		in.EveCorporationID = 98000001
	}
	acc, err := s.Accounts.Create(context.Background(), in)
	require.NoError(t, err)
	return acc
}

// do sends a request with optional access key credentials.
func (ts *testServer) do(t *testing.T, method, path string, body io.Reader, key *domain.AccessKey, digest string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if key != nil {
		req.Header.Set(middleware.KeyIDHeader, strconv.FormatInt(key.ID, 10))
		req.Header.Set(middleware.KeyHashHeader, digest)
	}
	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}
