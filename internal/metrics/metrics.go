// Package metrics exposes Prometheus instruments for the HTTP surface
// and the billing webhook pipeline.
package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application instruments and their registry.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	webhookEvents   *prometheus.CounterVec
	rateLimitDenied *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reclaim_http_requests_total",
		Help: "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status_code"})

	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "reclaim_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	webhookEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reclaim_webhook_events_total",
		Help: "Billing webhook deliveries by outcome.",
	}, []string{"outcome"})

	rateLimitDenied := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reclaim_rate_limit_denied_total",
		Help: "Public submissions denied by the rate limiter.",
	}, []string{"endpoint"})

	registry.MustRegister(httpRequests, httpDuration, webhookEvents, rateLimitDenied)

	return &Metrics{
		registry:        registry,
		httpRequests:    httpRequests,
		httpDuration:    httpDuration,
		webhookEvents:   webhookEvents,
		rateLimitDenied: rateLimitDenied,
	}
}

// Handler serves the scrape endpoint.
func (m *Metrics) Handler() gin.HandlerFunc {
	handler := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		handler.ServeHTTP(c.Writer, c.Request)
	}
}

// GinMiddleware records request counts and latency per route.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		if route == "/metrics" {
			return
		}

		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())
		m.httpRequests.WithLabelValues(route, method, status).Inc()
		m.httpDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

// RecordWebhookEvent counts a webhook delivery outcome.
func (m *Metrics) RecordWebhookEvent(outcome string) {
	if m == nil {
		return
	}
	m.webhookEvents.WithLabelValues(strings.TrimSpace(outcome)).Inc()
}

// RecordRateLimitDenied counts a denied public submission.
func (m *Metrics) RecordRateLimitDenied(endpoint string) {
	if m == nil {
		return
	}
	m.rateLimitDenied.WithLabelValues(strings.TrimSpace(endpoint)).Inc()
}
