// Package metrics exposes Prometheus instrumentation for the analysis service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "legalzen"

// Metrics owns a private registry so tests and multiple servers never collide
// on the global default registry.
type Metrics struct {
	registry *prometheus.Registry

	analyses          *prometheus.CounterVec
	fallbacks         prometheus.Counter
	extractionErrors  *prometheus.CounterVec
	questions         *prometheus.CounterVec
	activeSessions    prometheus.Gauge
	sweptSessions     prometheus.Counter
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	analysisDurations prometheus.Histogram
}

// New builds the collectors. Process and Go runtime collectors are added
// when withRuntime is set.
func New(withRuntime bool) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Documents analyzed, by source and detected document type.",
		}, []string{"source", "document_type"}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analysis_fallbacks_total",
			Help:      "Analyses that degraded to the canned fallback result.",
		}),
		extractionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extraction_errors_total",
			Help:      "Uploads whose text could not be extracted, by format.",
		}, []string{"format"}),
		questions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "questions_total",
			Help:      "Questions received, by outcome.",
		}, []string{"outcome"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Sessions currently held in memory.",
		}),
		sweptSessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swept_sessions_total",
			Help:      "Sessions removed by the retention sweep.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests, by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency, by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		analysisDurations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Time spent in the rule engine per document.",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		}),
	}

	m.registry.MustRegister(
		m.analyses, m.fallbacks, m.extractionErrors, m.questions,
		m.activeSessions, m.sweptSessions, m.httpRequests, m.httpDuration,
		m.analysisDurations,
	)
	if withRuntime {
		m.registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace}),
			collectors.NewGoCollector(),
		)
	}
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveAnalysis(source, documentType string, took time.Duration) {
	m.analyses.WithLabelValues(source, documentType).Inc()
	m.analysisDurations.Observe(took.Seconds())
}

func (m *Metrics) IncFallback() { m.fallbacks.Inc() }

func (m *Metrics) IncExtractionError(format string) {
	m.extractionErrors.WithLabelValues(format).Inc()
}

func (m *Metrics) IncQuestion(outcome string) {
	m.questions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SetActiveSessions(n int) { m.activeSessions.Set(float64(n)) }

func (m *Metrics) AddSwept(n int) { m.sweptSessions.Add(float64(n)) }

func (m *Metrics) ObserveRequest(method, route string, status int, took time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(took.Seconds())
}
