package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/differentialHQ/differential/internal/config"
	"github.com/differentialHQ/differential/internal/domain"
	"github.com/differentialHQ/differential/internal/usecase"
)

// Server aggregates handler dependencies.
type Server struct {
	Cfg         config.Config
	Admission   usecase.AdmissionService
	Dispatch    usecase.DispatchService
	Results     usecase.ResultsService
	Status      usecase.StatusService
	Clusters    usecase.ClusterService
	Deployments usecase.DeploymentService
	Events      domain.EventSink
	DBCheck     func(ctx context.Context) error
	RedisCheck  func(ctx context.Context) error
	KafkaCheck  func(ctx context.Context) error
}

// NewServer constructs an HTTP server with all handlers and checks wired.
func NewServer(cfg config.Config, admission usecase.AdmissionService, dispatch usecase.DispatchService, results usecase.ResultsService, status usecase.StatusService, clusters usecase.ClusterService, deployments usecase.DeploymentService, events domain.EventSink, dbCheck, redisCheck, kafkaCheck func(context.Context) error) *Server {
	return &Server{
		Cfg:         cfg,
		Admission:   admission,
		Dispatch:    dispatch,
		Results:     results,
		Status:      status,
		Clusters:    clusters,
		Deployments: deployments,
		Events:      events,
		DBCheck:     dbCheck,
		RedisCheck:  redisCheck,
		KafkaCheck:  kafkaCheck,
	}
}

// machineID returns the worker identity header sent by SDK agents.
func machineID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("x-machine-id"))
}

// clientIP prefers X-Forwarded-For, falling back to the socket peer.
func clientIP(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		if i := strings.IndexByte(xf, ','); i > 0 {
			return strings.TrimSpace(xf[:i])
		}
		return strings.TrimSpace(xf)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// authorizedCluster pulls the authenticated cluster off the context and, when
// the route carries a {clusterID} segment, enforces that it matches.
func authorizedCluster(w http.ResponseWriter, r *http.Request) (domain.Cluster, bool) {
	c, ok := ClusterFromContext(r.Context())
	if !ok {
		writeError(w, r, fmt.Errorf("%w: no authenticated cluster", domain.ErrUnauthorized), nil)
		return domain.Cluster{}, false
	}
	if pathID := chi.URLParam(r, "clusterID"); pathID != "" && pathID != c.ID {
		writeError(w, r, fmt.Errorf("%w: cluster mismatch", domain.ErrForbidden), nil)
		return domain.Cluster{}, false
	}
	return c, true
}

type callConfigWire struct {
	IdempotencyKey               string `json:"idempotencyKey" validate:"omitempty,max=256"`
	CacheKey                     string `json:"cacheKey" validate:"omitempty,max=256"`
	CacheTTLSeconds              int    `json:"cacheTtlSeconds" validate:"omitempty,min=0"`
	RetryCountOnStall            *int   `json:"retryCountOnStall" validate:"omitempty,min=0,max=10"`
	TimeoutSeconds               int    `json:"timeoutSeconds" validate:"omitempty,min=0,max=86400"`
	PredictiveRetriesOnRejection bool   `json:"predictiveRetriesOnRejection"`
	ExecutionID                  string `json:"executionId" validate:"omitempty,max=128"`
}

type createJobRequest struct {
	Service    string          `json:"service" validate:"required,max=128"`
	TargetFn   string          `json:"targetFn" validate:"required,max=256"`
	TargetArgs []byte          `json:"targetArgs"`
	CallConfig *callConfigWire `json:"callConfig"`
}

// CreateJobHandler admits a function call into the queue.
func (s *Server) CreateJobHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Accept negotiation: only JSON responses supported
		if a := r.Header.Get("Accept"); a != "" && a != "*/*" && !strings.Contains(a, "application/json") {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusNotAcceptable)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"code": "INVALID_ARGUMENT", "message": "not acceptable", "details": map[string]any{"accept": a}}})
			return
		}
		// Cap body size; targetArgs carries packed call arguments.
		r.Body = http.MaxBytesReader(w, r.Body, 4<<20)
		var req createJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
			return
		}
		if err := getValidator().Struct(req); err != nil {
			writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), validationDetails(err))
			return
		}
		cluster, ok := authorizedCluster(w, r)
		if !ok {
			return
		}
		p := usecase.CreateJobParams{
			ClusterID:  cluster.ID,
			Service:    req.Service,
			TargetFn:   req.TargetFn,
			TargetArgs: req.TargetArgs,
		}
		if cc := req.CallConfig; cc != nil {
			p.Config = usecase.CallConfig{
				IdempotencyKey:               cc.IdempotencyKey,
				CacheKey:                     cc.CacheKey,
				CacheTTLSeconds:              cc.CacheTTLSeconds,
				RetryCountOnStall:            cc.RetryCountOnStall,
				TimeoutSeconds:               cc.TimeoutSeconds,
				PredictiveRetriesOnRejection: cc.PredictiveRetriesOnRejection,
				ExecutionID:                  cc.ExecutionID,
			}
		}
		id, err := s.Admission.CreateJob(r.Context(), p)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

type nextJobsRequest struct {
	Service      string                    `json:"service" validate:"required,max=128"`
	Limit        int                       `json:"limit" validate:"omitempty,min=1,max=50"`
	DeploymentID string                    `json:"deploymentId" validate:"omitempty,max=64"`
	Definition   *domain.ServiceDefinition `json:"definition"`
}

type jobEnvelope struct {
	ID         string `json:"id"`
	TargetFn   string `json:"targetFn"`
	TargetArgs []byte `json:"targetArgs"`
}

// NextJobsHandler hands pending jobs to a polling worker and records its
// heartbeat. The x-machine-id header identifies the worker instance.
func (s *Server) NextJobsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		machine := machineID(r)
		if machine == "" {
			writeError(w, r, fmt.Errorf("%w: x-machine-id header required", domain.ErrInvalidArgument), nil)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
		var req nextJobsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
			return
		}
		if req.Limit == 0 {
			req.Limit = 1
		}
		if err := getValidator().Struct(req); err != nil {
			writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), validationDetails(err))
			return
		}
		if req.Definition != nil {
			if err := validateDefinition(*req.Definition); err != nil {
				writeError(w, r, err, nil)
				return
			}
		}
		cluster, ok := authorizedCluster(w, r)
		if !ok {
			return
		}
		jobs, err := s.Dispatch.NextJobs(r.Context(), usecase.NextJobsParams{
			ClusterID:    cluster.ID,
			Service:      req.Service,
			MachineID:    machine,
			MachineIP:    clientIP(r),
			DeploymentID: optionalString(req.DeploymentID),
			Limit:        req.Limit,
			Definition:   req.Definition,
		})
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		out := make([]jobEnvelope, 0, len(jobs))
		for _, j := range jobs {
			out = append(out, jobEnvelope{ID: j.ID, TargetFn: j.TargetFn, TargetArgs: j.TargetArgs})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type jobStatusResponse struct {
	ID         string             `json:"id"`
	Status     domain.JobStatus   `json:"status"`
	Result     []byte             `json:"result,omitempty"`
	ResultType *domain.ResultType `json:"resultType,omitempty"`
}

func toJobStatusResponse(v usecase.JobStatusView) jobStatusResponse {
	return jobStatusResponse{ID: v.ID, Status: v.Status, Result: v.Result, ResultType: v.ResultType}
}

// JobStatusHandler returns the current status and, once resulted, the result.
func (s *Server) JobStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Accept negotiation: only JSON responses supported
		if a := r.Header.Get("Accept"); a != "" && a != "*/*" && !strings.Contains(a, "application/json") {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusNotAcceptable)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"code": "INVALID_ARGUMENT", "message": "not acceptable", "details": map[string]any{"accept": a}}})
			return
		}
		id := chi.URLParam(r, "id")
		if vr := ValidateJobID(id); !vr.Valid {
			writeError(w, r, fmt.Errorf("%w: invalid job id", domain.ErrInvalidArgument), vr.Errors)
			return
		}
		cluster, ok := authorizedCluster(w, r)
		if !ok {
			return
		}
		view, err := s.Status.GetJobStatus(r.Context(), cluster.ID, id)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, toJobStatusResponse(view))
	}
}

type persistResultRequest struct {
	Result                []byte `json:"result"`
	ResultType            string `json:"resultType" validate:"required,oneof=resolution rejection"`
	FunctionExecutionTime *int64 `json:"functionExecutionTime" validate:"omitempty,min=0"`
}

// PersistResultHandler stores a worker's result for a job it is executing.
func (s *Server) PersistResultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		machine := machineID(r)
		if machine == "" {
			writeError(w, r, fmt.Errorf("%w: x-machine-id header required", domain.ErrInvalidArgument), nil)
			return
		}
		id := chi.URLParam(r, "id")
		if vr := ValidateJobID(id); !vr.Valid {
			writeError(w, r, fmt.Errorf("%w: invalid job id", domain.ErrInvalidArgument), vr.Errors)
			return
		}
		// Results can be large; packed payloads are capped well above args.
		r.Body = http.MaxBytesReader(w, r.Body, 8<<20)
		var req persistResultRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
			return
		}
		if err := getValidator().Struct(req); err != nil {
			writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), validationDetails(err))
			return
		}
		cluster, ok := authorizedCluster(w, r)
		if !ok {
			return
		}
		err := s.Results.PersistResult(r.Context(), domain.ResultParams{
			ClusterID:       cluster.ID,
			JobID:           id,
			MachineID:       machine,
			Result:          req.Result,
			ResultType:      domain.ResultType(req.ResultType),
			ExecutionTimeMS: req.FunctionExecutionTime,
		})
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type jobStatusesRequest struct {
	JobIDs []string `json:"jobIds" validate:"required,min=1,max=100,dive,required,max=64"`
	TTLMs  int      `json:"ttlMs" validate:"omitempty,min=0,max=60000"`
}

// JobStatusesHandler long-polls a batch of jobs until any reaches a terminal
// state or the requested ttl elapses.
func (s *Server) JobStatusesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
		var req jobStatusesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
			return
		}
		if err := getValidator().Struct(req); err != nil {
			writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), validationDetails(err))
			return
		}
		cluster, ok := authorizedCluster(w, r)
		if !ok {
			return
		}
		views, err := s.Status.GetJobStatuses(r.Context(), cluster.ID, req.JobIDs, time.Duration(req.TTLMs)*time.Millisecond)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		out := make([]jobStatusResponse, 0, len(views))
		for _, v := range views {
			out = append(out, toJobStatusResponse(v))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type wireEvent struct {
	Type      string            `json:"type" validate:"required,max=64"`
	JobID     string            `json:"jobId" validate:"omitempty,max=64"`
	Service   string            `json:"service" validate:"omitempty,max=128"`
	MachineID string            `json:"machineId" validate:"omitempty,max=64"`
	Meta      map[string]string `json:"meta"`
}

type ingestEventsRequest struct {
	Events []wireEvent `json:"events" validate:"required,min=1,max=1000,dive"`
}

// IngestEventsHandler accepts observability events flushed by SDK workers
// (function invocation timings and the like). Ingestion is best-effort:
// individual publish failures are logged, never surfaced.
func (s *Server) IngestEventsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 2<<20)
		var req ingestEventsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
			return
		}
		if err := getValidator().Struct(req); err != nil {
			writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), validationDetails(err))
			return
		}
		cluster, ok := authorizedCluster(w, r)
		if !ok {
			return
		}
		if s.Events != nil {
			lg := LoggerFrom(r)
			for _, e := range req.Events {
				ev := domain.Event{
					Type:      e.Type,
					ClusterID: cluster.ID,
					JobID:     e.JobID,
					Service:   e.Service,
					MachineID: e.MachineID,
					Meta:      e.Meta,
				}
				if ev.MachineID == "" {
					ev.MachineID = machineID(r)
				}
				if err := s.Events.Publish(r.Context(), ev); err != nil {
					lg.Warn("event ingest publish failed", "type", e.Type, "error", err)
				}
			}
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type createClusterRequest struct {
	Name                 string `json:"name" validate:"required,max=128"`
	Description          string `json:"description" validate:"omitempty,max=1024"`
	PredictiveRetries    bool   `json:"predictiveRetries"`
	AutoRetryStalledJobs *bool  `json:"autoRetryStalledJobs"`
}

// CreateClusterHandler provisions a cluster and returns its API secret. The
// secret is shown exactly once; only its hash is stored.
func (s *Server) CreateClusterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
		var req createClusterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
			return
		}
		if err := getValidator().Struct(req); err != nil {
			writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), validationDetails(err))
			return
		}
		c, secret, err := s.Clusters.Provision(r.Context(), usecase.ProvisionClusterParams{
			Name:                 req.Name,
			Description:          req.Description,
			PredictiveRetries:    req.PredictiveRetries,
			AutoRetryStalledJobs: req.AutoRetryStalledJobs,
		})
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"id": c.ID, "name": c.Name, "apiSecret": secret})
	}
}

type updateClusterRequest struct {
	Disabled *bool `json:"disabled"`
}

// UpdateClusterHandler toggles the cluster kill switch. While disabled, every
// surface refuses the cluster's secrets with 403.
func (s *Server) UpdateClusterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
		var req updateClusterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
			return
		}
		if req.Disabled == nil {
			writeError(w, r, fmt.Errorf("%w: no updatable fields", domain.ErrInvalidArgument), nil)
			return
		}
		if err := s.Clusters.SetDisabled(r.Context(), chi.URLParam(r, "clusterID"), *req.Disabled); err != nil {
			writeError(w, r, err, nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type deploymentResponse struct {
	ID        string    `json:"id"`
	ClusterID string    `json:"clusterId"`
	Service   string    `json:"service"`
	Provider  string    `json:"provider"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func toDeploymentResponse(d domain.Deployment) deploymentResponse {
	return deploymentResponse{
		ID:        d.ID,
		ClusterID: d.ClusterID,
		Service:   d.Service,
		Provider:  d.Provider,
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt,
	}
}

// CreateDeploymentHandler opens a deployment and returns the bundle upload URL.
func (s *Server) CreateDeploymentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cluster, ok := authorizedCluster(w, r)
		if !ok {
			return
		}
		service := chi.URLParam(r, "service")
		d, uploadURL, err := s.Deployments.CreateDeployment(r.Context(), cluster.ID, service)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"deployment":       toDeploymentResponse(d),
			"packageUploadUrl": uploadURL,
		})
	}
}

// ReleaseDeploymentHandler verifies the uploaded bundle, provisions compute
// and flips the deployment active.
func (s *Server) ReleaseDeploymentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cluster, ok := authorizedCluster(w, r)
		if !ok {
			return
		}
		d, err := s.Deployments.Release(r.Context(), cluster.ID, chi.URLParam(r, "service"), chi.URLParam(r, "deploymentID"))
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, toDeploymentResponse(d))
	}
}

// GetDeploymentHandler returns one deployment scoped to its service.
func (s *Server) GetDeploymentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cluster, ok := authorizedCluster(w, r)
		if !ok {
			return
		}
		d, err := s.Deployments.GetDeployment(r.Context(), cluster.ID, chi.URLParam(r, "service"), chi.URLParam(r, "deploymentID"))
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, toDeploymentResponse(d))
	}
}

// LiveHandler answers liveness probes and SDK connectivity checks.
func (s *Server) LiveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// ReadyzHandler returns a readiness handler that probes Postgres, Redis and
// the event broker.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	type check struct {
		Name    string `json:"name"`
		OK      bool   `json:"ok"`
		Details string `json:"details,omitempty"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		checks := make([]check, 0, 3)
		if s.DBCheck != nil {
			if err := s.DBCheck(ctx); err != nil {
				checks = append(checks, check{Name: "db", OK: false, Details: err.Error()})
			} else {
				checks = append(checks, check{Name: "db", OK: true})
			}
		}
		if s.RedisCheck != nil {
			if err := s.RedisCheck(ctx); err != nil {
				checks = append(checks, check{Name: "redis", OK: false, Details: err.Error()})
			} else {
				checks = append(checks, check{Name: "redis", OK: true})
			}
		}
		if s.KafkaCheck != nil {
			if err := s.KafkaCheck(ctx); err != nil {
				checks = append(checks, check{Name: "kafka", OK: false, Details: err.Error()})
			} else {
				checks = append(checks, check{Name: "kafka", OK: true})
			}
		}
		ok := true
		for _, c := range checks {
			if !c.OK {
				ok = false
				break
			}
		}
		st := http.StatusOK
		if !ok {
			st = http.StatusServiceUnavailable
		}
		writeJSON(w, st, map[string]any{"checks": checks})
	}
}
