package middleware

import (
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/jackielii/pageroute"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "pageroute").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "pageroute",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics counts requests and observes their duration per route.
//
// Metrics collected:
//   - pageroute_requests_total: Counter of requests by route and status
//   - pageroute_request_duration_seconds: Histogram of request duration by route
//
// The collectors are registered when Metrics is called, so call it once per
// registry.
func Metrics(opts ...MetricsOption) pageroute.MiddlewareFunc {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	requests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace:   config.Namespace,
		Subsystem:   config.Subsystem,
		Name:        "requests_total",
		Help:        "Total number of page requests",
		ConstLabels: config.ConstLabels,
	}, []string{"route", "status"})

	duration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   config.Namespace,
		Subsystem:   config.Subsystem,
		Name:        "request_duration_seconds",
		Help:        "Page request duration in seconds",
		ConstLabels: config.ConstLabels,
		Buckets:     config.Buckets,
	}, []string{"route"})

	return func(next http.Handler, route *pageroute.Route) http.Handler {
		observer := duration.WithLabelValues(route.Name)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)
			requests.WithLabelValues(route.Name, strconv.Itoa(m.Code)).Inc()
			observer.Observe(m.Duration.Seconds())
		})
	}
}
