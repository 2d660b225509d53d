// Package metrics exposes Prometheus instruments for trackers, access keys
// and maintenance jobs.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "synctrack"

// Metrics holds every instrument. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	trackersCreated  *prometheus.CounterVec
	trackersFinished *prometheus.CounterVec
	statesRecorded   *prometheus.CounterVec
	keyVerifications *prometheus.CounterVec
	workRequests     *prometheus.CounterVec
	credsReaped      prometheus.Counter
}

// New creates the instruments on a fresh registry that also carries the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		trackersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trackers_created_total",
			Help:      "Trackers created, by tracker design.",
		}, []string{"design"}),
		trackersFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trackers_finished_total",
			Help:      "Tracker finish calls, by tracker design.",
		}, []string{"design"}),
		statesRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "category_states_total",
			Help:      "Category outcomes recorded, by tracker design and status.",
		}, []string{"design", "status"}),
		keyVerifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "access_key_verifications_total",
			Help:      "Access key credential checks, by outcome.",
		}, []string{"outcome"}),
		workRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "work_requests_total",
			Help:      "Scheduling requests, by tracker design and whether unfinished work already covered them.",
		}, []string{"design", "covered"}),
		credsReaped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "temp_credentials_reaped_total",
			Help:      "Expired temporary credentials deleted.",
		}),
	}

	reg.MustRegister(
		m.trackersCreated,
		m.trackersFinished,
		m.statesRecorded,
		m.keyVerifications,
		m.workRequests,
		m.credsReaped,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) TrackerCreated(design string) {
	if m == nil {
		return
	}
	m.trackersCreated.WithLabelValues(design).Inc()
}

func (m *Metrics) TrackerFinished(design string) {
	if m == nil {
		return
	}
	m.trackersFinished.WithLabelValues(design).Inc()
}

func (m *Metrics) StateRecorded(design, status string) {
	if m == nil {
		return
	}
	m.statesRecorded.WithLabelValues(design, status).Inc()
}

func (m *Metrics) KeyVerified(outcome string) {
	if m == nil {
		return
	}
	m.keyVerifications.WithLabelValues(outcome).Inc()
}

func (m *Metrics) WorkRequested(design string, covered bool) {
	if m == nil {
		return
	}
	m.workRequests.WithLabelValues(design, strconv.FormatBool(covered)).Inc()
}

func (m *Metrics) CredentialsReaped(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.credsReaped.Add(float64(n))
}
