package observability

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is the collection of collectors exported on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	Evaluations  *prometheus.CounterVec
	Symbols      *prometheus.HistogramVec
	Rejections   *prometheus.CounterVec
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.Evaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "automata_evaluations_total",
			Help: "Total number of completed evaluations",
		},
		[]string{"automaton", "accepted"},
	)
	m.Symbols = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "automata_evaluation_symbols",
			Help:    "Length of evaluated inputs in symbols",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"automaton"},
	)
	m.Rejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "automata_rejected_requests_total",
			Help: "Requests refused before evaluation",
		},
		[]string{"reason"},
	)
	m.HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "automata_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	m.HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "automata_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	m.registry.MustRegister(
		m.Evaluations,
		m.Symbols,
		m.Rejections,
		m.HTTPRequests,
		m.HTTPDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Hooks returns lifecycle hooks recording dispatcher events.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnEvaluate: func(_ context.Context, e *domain.EvaluationEvent) {
			id := string(e.Automaton)
			m.Evaluations.WithLabelValues(id, strconv.FormatBool(e.Accepted)).Inc()
			m.Symbols.WithLabelValues(id).Observe(float64(e.Symbols))
		},
		OnReject: func(_ context.Context, e *domain.RejectEvent) {
			m.Rejections.WithLabelValues(RejectReason(e.Reason)).Inc()
		},
	}
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RejectReason maps a dispatcher error to a low-cardinality label.
func RejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return "missing_field"
	case errors.Is(err, domain.ErrUnknownAutomaton):
		return "unknown_automaton"
	default:
		return "other"
	}
}
