package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "kural"

// Question outcomes.
const (
	OutcomeMatched   = "matched"
	OutcomeUnmatched = "unmatched"
	OutcomeEmpty     = "empty"
)

// Metrics holds the Prometheus collectors for the server on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	Questions    *prometheus.CounterVec
	HTTPRequests *prometheus.CounterVec
	GraphEntries prometheus.Gauge
}

// NewMetrics creates and registers all collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	questions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "questions_total",
			Help:      "Questions answered, by outcome",
		},
		[]string{"outcome"},
	)

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	graphEntries := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "graph_entries",
			Help:      "Number of entries in the loaded graph",
		},
	)

	registry.MustRegister(
		questions,
		httpRequests,
		graphEntries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry:     registry,
		Questions:    questions,
		HTTPRequests: httpRequests,
		GraphEntries: graphEntries,
	}
}

// ObserveQuestion counts one question with the given outcome.
func (m *Metrics) ObserveQuestion(outcome string) {
	m.Questions.WithLabelValues(outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
