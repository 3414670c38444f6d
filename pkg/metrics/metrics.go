// Package metrics provides Prometheus instrumentation for the storefront.
//
// Wire it up once in the HTTP kernel:
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

// ─── Built-in HTTP metrics ───────────────────────────────────────────────────

var (
	// RequestDuration tracks how long each HTTP request takes.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "digiadda",
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
			Namespace: "digiadda",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestInFlight tracks how many requests are currently being served.
	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "digiadda",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	// ─── Storefront metrics ──────────────────────────────────────────────

	// OrdersCreated counts checkout submissions that produced an order.
	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "digiadda",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total orders created at checkout.",
	})

	// PaymentsInitiated counts gateway order creations.
	PaymentsInitiated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "digiadda",
		Subsystem: "payments",
		Name:      "initiated_total",
		Help:      "Total payment attempts initiated with the gateway.",
	})

	// PaymentsConfirmed counts confirmation outcomes by final status.
	PaymentsConfirmed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "digiadda",
			Subsystem: "payments",
			Name:      "confirmed_total",
			Help:      "Total payment confirmations by status.",
		},
		[]string{"status"}, // "success" | "failed" | "cancelled"
	)

	// GatewayDuration tracks outbound payment-gateway latency.
	GatewayDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "digiadda",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Duration of payment gateway calls in seconds.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"operation"}, // "create_order"
	)

	// PendingSales gauges payment attempts that never got a confirmation.
	// Updated by the scheduled sweep; observational only.
	PendingSales = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "digiadda",
		Subsystem: "sales",
		Name:      "pending",
		Help:      "Sales stuck in pending (no confirmation received).",
	})

	// QueueJobsProcessed counts processed queue jobs by status.
	QueueJobsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "digiadda",
			Subsystem: "queue",
			Name:      "jobs_processed_total",
			Help:      "Total queue jobs processed.",
		},
		[]string{"status"}, // "success" | "failed"
	)

	// CacheHits / CacheMisses track cache effectiveness.
	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "digiadda",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total cache hits.",
		},
		[]string{"driver"},
	)
	CacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "digiadda",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total cache misses.",
		},
		[]string{"driver"},
	)
)

// ─── Registry ────────────────────────────────────────────────────────────────

// DefaultRegistry is the Prometheus registry used by the storefront.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		RequestDuration,
		RequestTotal,
		RequestInFlight,
		OrdersCreated,
		PaymentsInitiated,
		PaymentsConfirmed,
		GatewayDuration,
		PendingSales,
		QueueJobsProcessed,
		CacheHits,
		CacheMisses,
	)
}

// MustRegister adds custom collectors to the registry.
func MustRegister(c ...prometheus.Collector) {
	DefaultRegistry.MustRegister(c...)
}

// ─── HTTP middleware ─────────────────────────────────────────────────────────

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records duration, totals, and in-flight gauge per request.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			path := r.URL.Path // raw path; normalize in high-cardinality APIs

			RequestInFlight.Inc()
			defer RequestInFlight.Dec()

			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rr, r)

			status := strconv.Itoa(rr.status)
			RequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
			RequestTotal.WithLabelValues(r.Method, path, status).Inc()
		})
	}
}

// Handler exposes the Prometheus metrics page; mount on GET /metrics.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	return h.ServeHTTP
}

// ObserveGateway records one payment-gateway call:
//
//	defer metrics.ObserveGateway("create_order", time.Now())
func ObserveGateway(operation string, start time.Time) {
	GatewayDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// RecordQueueJob records a queue job result.
func RecordQueueJob(status string) {
	QueueJobsProcessed.WithLabelValues(status).Inc()
}
