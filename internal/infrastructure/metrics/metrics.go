// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry        *prometheus.Registry
	quotesSubmitted *prometheus.CounterVec
	quoteFailures   *prometheus.CounterVec
	recommendations *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		quotesSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quotes_submitted_total",
			Help: "Quotes persisted, by kind.",
		}, []string{"kind"}),
		quoteFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quote_submission_failures_total",
			Help: "Quote submissions rejected, by reason.",
		}, []string{"reason"}),
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Recommendation requests, by outcome.",
		}, []string{"outcome"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	m.registry.MustRegister(m.quotesSubmitted, m.quoteFailures, m.recommendations, m.httpDuration)
	return m
}

func (m *Metrics) QuoteSubmitted(kind string) {
	m.quotesSubmitted.WithLabelValues(kind).Inc()
}

func (m *Metrics) QuoteRejected(reason string) {
	m.quoteFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) Recommendation(outcome string) {
	m.recommendations.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request latency by matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
