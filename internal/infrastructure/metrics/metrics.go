// Package metrics registers the prometheus instruments for the coaching
// service and serves them on the dedicated metrics port.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the service's prometheus instruments.
type Metrics struct {
	registry *prometheus.Registry

	TurnsTotal          *prometheus.CounterVec
	ProviderFailures    *prometheus.CounterVec
	FallbacksTotal      prometheus.Counter
	CompletionDuration  prometheus.Histogram
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New registers every instrument on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		TurnsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coaching_turns_total",
			Help: "Coaching turns processed, labelled by classified phase.",
		}, []string{"phase"}),
		ProviderFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coaching_provider_failures_total",
			Help: "Completion provider failures, labelled by provider.",
		}, []string{"provider"}),
		FallbacksTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "coaching_fallback_responses_total",
			Help: "Turns answered by the canned fallback responder.",
		}),
		CompletionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "coaching_completion_duration_seconds",
			Help:    "Latency of completion provider round trips.",
			Buckets: prometheus.DefBuckets,
		}),
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests, labelled by method, path and status.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// Serve blocks serving /metrics on the given port.
func (m *Metrics) Serve(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
