// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "frydays"

var (
	// Labels: method, route (gin full path), status
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests handled",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// Labels: result (hit, miss, error)
	menuCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "menu_cache",
		Name:      "lookups_total",
		Help:      "Menu cache lookups by result",
	}, []string{"result"})

	// Labels: cart (user, guest), op (add, set, remove, clear, merge)
	cartMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cart",
		Name:      "mutations_total",
		Help:      "Cart mutations by cart kind and operation",
	}, []string{"cart", "op"})

	mergedGuestLines = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cart",
		Name:      "merged_guest_lines_total",
		Help:      "Guest cart lines merged into user carts",
	})

	// Labels: route
	rateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "rate_limited_total",
		Help:      "Requests rejected by a rate limiter",
	}, []string{"route"})
)

func RecordMenuCache(result string) {
	menuCacheLookups.WithLabelValues(result).Inc()
}

func RecordCartMutation(cart, op string) {
	cartMutations.WithLabelValues(cart, op).Inc()
}

func RecordMergedLines(n int) {
	mergedGuestLines.Add(float64(n))
}

func RecordRateLimited(route string) {
	rateLimited.WithLabelValues(route).Inc()
}

// Middleware records request count and latency per route template, so
// /api/menu/1 and /api/menu/2 share a series.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
