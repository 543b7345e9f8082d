package observability

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// appEnv gates env-dependent instrumentation; set once at boot.
var appEnv string

// SetAppEnv records the runtime environment for env-gated instrumentation.
func SetAppEnv(env string) { appEnv = strings.ToLower(env) }

// IsDevEnvironment reports whether dev-only instrumentation is enabled.
func IsDevEnvironment() bool { return appEnv == "dev" }

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"route", "method"},
	)

	JobsAdmittedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobs_admitted_total",
			Help: "Total number of job admissions by service and outcome",
		},
		[]string{"service", "outcome"},
	)
	JobsClaimedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobs_claimed_total",
			Help: "Total number of jobs handed to polling machines",
		},
		[]string{"service"},
	)
	JobResultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job_results_total",
			Help: "Total number of worker results persisted by type",
		},
		[]string{"service", "result_type"},
	)
	JobsStalledTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobs_stalled_total",
			Help: "Total number of stalled jobs by healing outcome",
		},
		[]string{"outcome"},
	)
	PendingJobs = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pending_jobs",
			Help: "Pending jobs per service as of the last wake-up scan",
		},
		[]string{"service"},
	)
	WakeupNotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wakeup_notifications_total",
			Help: "Total number of wake-up notifications sent per provider",
		},
		[]string{"provider"},
	)

	EventsPublishedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total number of lifecycle events published to the audit stream",
		},
		[]string{"type"},
	)
	EventsDroppedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "events_dropped_total",
			Help: "Total number of lifecycle events dropped under backpressure",
		},
	)

	// Batch status long-polls hold connections up to 20s; the distribution
	// shows how often callers wait the full window.
	StatusLongPollDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "status_long_poll_duration_seconds",
			Help:    "Duration of batch status long-polls in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20},
		},
	)
	ClaimBatchSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "claim_batch_size",
			Help:    "Number of jobs returned per poll request",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
		},
	)

	CircuitBreakerStateGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name", "operation"},
	)
)

func InitMetrics() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(JobsAdmittedTotal)
	prometheus.MustRegister(JobsClaimedTotal)
	prometheus.MustRegister(JobResultsTotal)
	prometheus.MustRegister(JobsStalledTotal)
	prometheus.MustRegister(PendingJobs)
	prometheus.MustRegister(WakeupNotificationsTotal)
	prometheus.MustRegister(EventsPublishedTotal)
	prometheus.MustRegister(EventsDroppedTotal)
	prometheus.MustRegister(StatusLongPollDuration)
	prometheus.MustRegister(ClaimBatchSize)
	prometheus.MustRegister(CircuitBreakerStateGauge)
}

// HTTPMetricsMiddleware records Prometheus metrics for each request.
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		dur := time.Since(start).Seconds()
		// Route pattern may be unavailable outside chi router; guard nil
		var route string
		if rc := chi.RouteContext(r.Context()); rc != nil {
			route = rc.RoutePattern()
		}
		if route == "" {
			// fallback when route pattern is unavailable
			route = r.URL.Path
		}
		method := r.Method
		status := ww.Status()
		HTTPRequestsTotal.WithLabelValues(route, method, http.StatusText(status)).Inc()
		HTTPRequestDuration.WithLabelValues(route, method).Observe(dur)
	})
}

// Admission outcomes.
const (
	AdmitOutcomeCreated = "created"
	AdmitOutcomeDeduped = "deduped"
	AdmitOutcomeCached  = "cached"
)

func AdmitJob(service, outcome string) {
	JobsAdmittedTotal.WithLabelValues(service, outcome).Inc()
}

func ClaimJobs(service string, n int) {
	if n > 0 {
		JobsClaimedTotal.WithLabelValues(service).Add(float64(n))
	}
	ClaimBatchSize.Observe(float64(n))
}

func RecordJobResult(service, resultType string) {
	JobResultsTotal.WithLabelValues(service, resultType).Inc()
}

func StallJob(outcome string, n int) {
	if n > 0 {
		JobsStalledTotal.WithLabelValues(outcome).Add(float64(n))
	}
}

func RecordWakeup(provider string) {
	WakeupNotificationsTotal.WithLabelValues(provider).Inc()
}

func PublishEvent(eventType string) {
	EventsPublishedTotal.WithLabelValues(eventType).Inc()
}

func DropEvent() {
	EventsDroppedTotal.Inc()
}

func ObserveLongPoll(d time.Duration) {
	StatusLongPollDuration.Observe(d.Seconds())
}

// RecordCircuitBreakerStatus exports breaker state transitions.
func RecordCircuitBreakerStatus(name, operation string, state int) {
	CircuitBreakerStateGauge.WithLabelValues(name, operation).Set(float64(state))
}
