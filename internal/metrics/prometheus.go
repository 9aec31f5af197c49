package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// ItemsCreated tracks new listings by category
	ItemsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exchange_items_created_total",
			Help: "Total number of items listed",
		},
		[]string{"category"},
	)

	// SwapsCreated tracks new swap requests by type
	SwapsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exchange_swaps_created_total",
			Help: "Total number of swap requests created",
		},
		[]string{"type"},
	)

	// SwapsResolved tracks owner decisions by swap type and outcome
	SwapsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exchange_swaps_resolved_total",
			Help: "Total number of swap requests resolved",
		},
		[]string{"type", "decision"},
	)
)

// PrometheusMiddleware records request counts and latencies per route.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestsTotal.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(time.Since(start).Seconds())
	}
}
