// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ExpensesCreated counts expenses recorded since startup.
	ExpensesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tripsplit_expenses_created_total",
		Help: "Number of expenses created.",
	})

	// PlansComputed counts settlement plan computations.
	PlansComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tripsplit_settlement_plans_computed_total",
		Help: "Number of settlement plans computed from an expense set.",
	})

	// SettlementsConfirmed counts payment instructions confirmed paid.
	SettlementsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tripsplit_settlements_confirmed_total",
		Help: "Number of settlement instructions confirmed as paid.",
	})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tripsplit_http_request_duration_seconds",
		Help:    "HTTP request latency by method, route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request latency per route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestDuration.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
