// Package metrics holds the Prometheus collectors shared by the numerals
// services.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "numerals"

// Metrics holds all Prometheus metrics for a service process.
type Metrics struct {
	registry           *prometheus.Registry
	conversions        *prometheus.CounterVec
	conversionDuration *prometheus.HistogramVec
	answerChecks       *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
}

// New creates a private registry with the runtime collectors and the
// numerals collectors registered.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		conversions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Conversions by system, direction and outcome code.",
		}, []string{"system", "direction", "outcome"}),
		conversionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "conversion_duration_seconds",
			Help:      "Time spent converting a single value.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}, []string{"system"}),
		answerChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "practice_answer_checks_total",
			Help:      "Practice answers checked by difficulty and result.",
		}, []string{"difficulty", "result"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served by method and status.",
		}, []string{"method", "status"}),
	}
}

// ObserveConversion records one conversion. An empty outcome means success.
func (m *Metrics) ObserveConversion(system, direction, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	if outcome == "" {
		outcome = "OK"
	}
	m.conversions.WithLabelValues(system, direction, outcome).Inc()
	m.conversionDuration.WithLabelValues(system).Observe(elapsed.Seconds())
}

// ObserveAnswerCheck records one checked practice answer.
func (m *Metrics) ObserveAnswerCheck(difficulty string, correct bool) {
	if m == nil {
		return
	}
	result := "incorrect"
	if correct {
		result = "correct"
	}
	m.answerChecks.WithLabelValues(difficulty, result).Inc()
}

// ObserveHTTPRequest records one served HTTP request. Methods outside the
// standard set share the "other" label.
func (m *Metrics) ObserveHTTPRequest(method string, status int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(methodLabel(method), strconv.Itoa(status)).Inc()
}

func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodConnect,
		http.MethodOptions, http.MethodTrace:
		return method
	default:
		return "other"
	}
}

// Registry exposes the underlying registry for tests and custom collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
