// Package metrics provides Prometheus instrumentation.
//
// Wire it once in the kernel:
//
//	r.Use(metrics.Middleware())
//	r.HandleFunc("/metrics", metrics.Handler())
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration tracks how long each HTTP request takes,
	// broken down by method, route path, and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "atlas",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts all HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "atlas",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestInFlight tracks how many requests are currently being served.
	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "atlas",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	// CatalogProducts is the number of products currently in the store.
	CatalogProducts = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "atlas",
		Subsystem: "catalog",
		Name:      "products",
		Help:      "Number of products in the catalogue store.",
	})

	// CatalogReloads counts full catalogue reloads by outcome.
	CatalogReloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "atlas",
			Subsystem: "catalog",
			Name:      "reloads_total",
			Help:      "Total catalogue reloads.",
		},
		[]string{"status"}, // "ok" | "error"
	)

	// CatalogRowWarnings counts feed rows that produced a warning.
	CatalogRowWarnings = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "atlas",
		Subsystem: "catalog",
		Name:      "row_warnings_total",
		Help:      "Total product feed rows that produced a warning.",
	})

	// OrdersPlaced counts placed orders.
	OrdersPlaced = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "atlas",
		Subsystem: "orders",
		Name:      "placed_total",
		Help:      "Total orders placed.",
	})

	// CacheHits / CacheMisses track response-cache effectiveness.
	CacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "atlas",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Total cache hits.",
	})
	CacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "atlas",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Total cache misses.",
	})
)

// DefaultRegistry is the Prometheus registry used by the app.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		RequestDuration,
		RequestTotal,
		RequestInFlight,
		CatalogProducts,
		CatalogReloads,
		CatalogRowWarnings,
		OrdersPlaced,
		CacheHits,
		CacheMisses,
	)
}

// responseRecorder wraps http.ResponseWriter to capture status code and size.
type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request duration, total count, and in-flight gauge
// for every request.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			path := r.URL.Path

			RequestInFlight.Inc()
			defer RequestInFlight.Dec()

			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rr, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(rr.status)

			RequestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
			RequestTotal.WithLabelValues(r.Method, path, status).Inc()
		})
	}
}

// Handler returns an http.HandlerFunc that exposes the Prometheus metrics page.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	return h.ServeHTTP
}
