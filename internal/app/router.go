package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpserver "github.com/differentialHQ/differential/internal/adapter/httpserver"
	"github.com/differentialHQ/differential/internal/adapter/observability"
	"github.com/differentialHQ/differential/internal/config"
)

// ParseOrigins splits a comma-separated origin list into a slice, trimming spaces.
// If the input is empty, returns ["*"].
func ParseOrigins(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return []string{"*"}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// BuildRouter constructs the HTTP handler with all middlewares and routes.
func BuildRouter(cfg config.Config, srv *httpserver.Server, auth *httpserver.ClusterAuth) http.Handler {
	r := chi.NewRouter()
	// Security & instrumentation middleware
	r.Use(httpserver.Recoverer())
	r.Use(httpserver.RequestID())
	r.Use(httpserver.TraceMiddleware)
	r.Use(httpserver.AccessLog())
	r.Use(observability.HTTPMetricsMiddleware)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ParseOrigins(cfg.CORSAllowOrigins),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Worker polling and batch status. These routes manage their own
	// deadlines (the status long-poll holds connections up to 20s), so the
	// timeout middleware stays off this group.
	r.Group(func(cr chi.Router) {
		cr.Use(auth.Require)
		cr.Post("/jobs-request", srv.NextJobsHandler())
		cr.Post("/jobs-statuses", srv.JobStatusesHandler())
	})

	// Cluster API with the standard request deadline.
	r.Group(func(cr chi.Router) {
		cr.Use(httpserver.TimeoutMiddleware(30 * time.Second))
		cr.Use(auth.Require)
		// Rate limit client-facing admission; worker result writes stay out
		// so a large fleet cannot be throttled into stalling its own jobs.
		cr.Group(func(mr chi.Router) {
			mr.Use(httprate.LimitByIP(cfg.RateLimitPerMin, 1*time.Minute))
			mr.Post("/jobs", srv.CreateJobHandler())
			mr.Post("/metrics", srv.IngestEventsHandler())
		})
		cr.Get("/jobs/{id}", srv.JobStatusHandler())
		cr.Post("/jobs/{id}/result", srv.PersistResultHandler())
		cr.Post("/clusters/{clusterID}/service/{service}/deployments", srv.CreateDeploymentHandler())
		cr.Post("/clusters/{clusterID}/service/{service}/deployments/{deploymentID}/release", srv.ReleaseDeploymentHandler())
		cr.Get("/clusters/{clusterID}/service/{service}/deployments/{deploymentID}", srv.GetDeploymentHandler())
	})

	// Management API
	r.Group(func(mr chi.Router) {
		mr.Use(httpserver.TimeoutMiddleware(30 * time.Second))
		mr.Use(httpserver.ManagementAuth(cfg.ManagementSecret))
		mr.Post("/clusters", srv.CreateClusterHandler())
		mr.Patch("/clusters/{clusterID}", srv.UpdateClusterHandler())
	})

	// Health and metrics
	r.Get("/live", srv.LiveHandler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) { promhttp.Handler().ServeHTTP(w, r) })
	r.Get("/readyz", srv.ReadyzHandler())

	return httpserver.SecurityHeaders(r)
}
