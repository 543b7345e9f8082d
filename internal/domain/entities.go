// Package domain holds the entities, ports and error taxonomy of the job
// lifecycle engine. It has no dependencies on adapters or transports.
package domain

import (
	"context"
	"errors"
	"io"
	"time"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrRateLimited     = errors.New("rate limited")
	ErrInternal        = errors.New("internal error")
)

//go:generate mockery --config=../../.mockery.yml

type JobStatus string

const (
	JobPending JobStatus = "pending"
	JobRunning JobStatus = "running"
	JobSuccess JobStatus = "success"
	// JobFailure marks a stalled job. It is retryable while ResultedAt is
	// nil and terminal once ResultedAt is set.
	JobFailure JobStatus = "failure"
)

type ResultType string

const (
	ResultResolution ResultType = "resolution"
	ResultRejection  ResultType = "rejection"
)

// Job is one requested function execution.
// Invariants: ID is a ULID (ids sort in admission order); RemainingAttempts
// never increases except through admission; a job in JobSuccess never leaves
// it; (ClusterID, TargetFn, IdempotencyKey) is unique.
type Job struct {
	ID                           string
	ClusterID                    string
	Service                      string
	TargetFn                     string
	TargetArgs                   []byte
	IdempotencyKey               string
	Status                       JobStatus
	CacheKey                     *string
	Result                       []byte
	ResultType                   *ResultType
	RemainingAttempts            int
	TimeoutIntervalSeconds       int
	ExecutingMachineID           *string
	DeploymentID                 *string
	PredictiveRetriesOnRejection bool
	PredictedRetryable           *bool
	ExecutionTimeMS              *int64
	CreatedAt                    time.Time
	UpdatedAt                    time.Time
	LastRetrievedAt              *time.Time
	ResultedAt                   *time.Time
}

// Terminal reports whether the job can no longer change state: either it
// holds a worker result, or it stalled with no attempts left.
func (j Job) Terminal() bool {
	return j.Status == JobSuccess || (j.Status == JobFailure && j.ResultedAt != nil)
}

// StalledAt reports whether a running job has outlived its timeout interval
// as of now.
func (j Job) StalledAt(now time.Time) bool {
	if j.Status != JobRunning || j.LastRetrievedAt == nil {
		return false
	}
	deadline := j.LastRetrievedAt.Add(time.Duration(j.TimeoutIntervalSeconds) * time.Second)
	return now.After(deadline)
}

// Cluster is the tenancy and auth boundary. Jobs, machines, services and
// deployments all hang off exactly one cluster. A disabled cluster keeps its
// data but its secrets stop authenticating until it is re-enabled.
type Cluster struct {
	ID                   string
	Name                 string
	Description          string
	APISecretHash        string
	PredictiveRetries    bool
	AutoRetryStalledJobs bool
	Disabled             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Machine is a polling worker instance, tracked purely through poll-time
// heartbeats. A machine is live when it pinged within the liveness window.
type Machine struct {
	ID           string
	ClusterID    string
	Service      string
	IP           string
	DeploymentID *string
	LastPingAt   time.Time
}

// ServiceDefinition describes the functions a service's workers expose, as
// reported at poll time. Stored as JSON, hence the tags.
type ServiceDefinition struct {
	Name      string               `json:"name"`
	Functions []FunctionDefinition `json:"functions,omitempty"`
}

type FunctionDefinition struct {
	Name string        `json:"name"`
	Rate *FunctionRate `json:"rate,omitempty"`
}

// FunctionRate caps admissions for one function. Per is "minute" or "hour".
type FunctionRate struct {
	Per   string `json:"per"`
	Limit int    `json:"limit"`
}

// Function looks up a function definition by name.
func (d ServiceDefinition) Function(name string) (FunctionDefinition, bool) {
	for _, f := range d.Functions {
		if f.Name == name {
			return f, true
		}
	}
	return FunctionDefinition{}, false
}

type DeploymentStatus string

const (
	DeploymentUploading DeploymentStatus = "uploading"
	DeploymentReady     DeploymentStatus = "ready"
	DeploymentActive    DeploymentStatus = "active"
	DeploymentInactive  DeploymentStatus = "inactive"
)

// Deployment is one released bundle of a service on a compute provider.
// At most one deployment per (cluster, service) is active.
type Deployment struct {
	ID        string
	ClusterID string
	Service   string
	Provider  string
	Status    DeploymentStatus
	BundleKey string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClaimParams selects jobs for one poll request.
type ClaimParams struct {
	ClusterID    string
	Service      string
	MachineID    string
	DeploymentID *string
	Limit        int
}

// ResultParams carries one worker result into the sink.
type ResultParams struct {
	ClusterID       string
	JobID           string
	MachineID       string
	Result          []byte
	ResultType      ResultType
	ExecutionTimeMS *int64
}

// StalledJob identifies a job the self-healer acted on.
type StalledJob struct {
	ID        string
	ClusterID string
	Service   string
	TargetFn  string
}

// ServiceBacklog is a per-(cluster, service) count used by the wake-up scan.
type ServiceBacklog struct {
	ClusterID string
	Service   string
	Count     int
}

// Repositories (ports)

type JobRepository interface {
	// Create inserts j. When a job with the same (cluster, target fn,
	// idempotency key) already exists the stored id is returned and
	// created is false; the existing row always wins.
	Create(ctx Context, j Job) (id string, created bool, err error)
	// FindCached returns the newest job for (cluster, fn, cacheKey) that
	// resolved within ttl, preferring later ResultedAt then larger id.
	FindCached(ctx Context, clusterID, targetFn, cacheKey string, ttl time.Duration) (Job, error)
	// Claim atomically moves up to Limit claimable jobs to running,
	// decrements their attempts and stamps the claiming machine. FIFO by id.
	Claim(ctx Context, p ClaimParams) ([]Job, error)
	Get(ctx Context, clusterID, id string) (Job, error)
	GetBatch(ctx Context, clusterID string, ids []string) ([]Job, error)
	// PersistResult applies the result acceptance rules: terminal failures
	// are a no-op, success rows are overwritten but never leave success.
	PersistResult(ctx Context, p ResultParams) error
	// SetPredictedRetryable stores a retry predictor's verdict on the row.
	SetPredictedRetryable(ctx Context, clusterID, id string, retryable bool) error
	// MarkStalled flags timed-out running jobs with attempts left (on
	// clusters that auto-retry) for re-claim.
	MarkStalled(ctx Context, now time.Time) ([]StalledJob, error)
	// TerminateStalled finalizes timed-out running jobs with no attempts
	// left (or on clusters that opted out of auto-retry) with reason as a
	// synthetic rejection payload.
	TerminateStalled(ctx Context, now time.Time, reason []byte) ([]StalledJob, error)
	// PendingCounts returns pending-job counts per (cluster, service).
	PendingCounts(ctx Context) ([]ServiceBacklog, error)
	// DeleteTerminalBefore removes terminal jobs last updated before cutoff.
	DeleteTerminalBefore(ctx Context, cutoff time.Time) (int64, error)
}

type ClusterRepository interface {
	Create(ctx Context, c Cluster) error
	Get(ctx Context, id string) (Cluster, error)
	// Ensure inserts c when absent and leaves existing rows untouched.
	Ensure(ctx Context, c Cluster) error
	// SetDisabled flips the cluster kill switch.
	SetDisabled(ctx Context, id string, disabled bool) error
}

type MachineRepository interface {
	// Upsert records a poll-time heartbeat.
	Upsert(ctx Context, m Machine) error
	// LiveCounts returns machines per (cluster, service) that pinged at or
	// after since.
	LiveCounts(ctx Context, since time.Time) ([]ServiceBacklog, error)
	// DeleteStaleBefore removes machines whose last ping predates cutoff.
	DeleteStaleBefore(ctx Context, cutoff time.Time) (int64, error)
}

type ServiceRepository interface {
	Upsert(ctx Context, clusterID string, def ServiceDefinition) error
	Get(ctx Context, clusterID, name string) (ServiceDefinition, error)
}

type DeploymentRepository interface {
	Create(ctx Context, d Deployment) error
	Get(ctx Context, clusterID, id string) (Deployment, error)
	SetStatus(ctx Context, clusterID, id string, status DeploymentStatus) error
	// Activate promotes the deployment to active and demotes any other
	// active deployment of the same (cluster, service) in one transaction.
	Activate(ctx Context, clusterID, id string) (Deployment, error)
	ActiveDeployment(ctx Context, clusterID, service string) (Deployment, error)
	// ActiveDeployments lists every active deployment across clusters.
	ActiveDeployments(ctx Context) ([]Deployment, error)
}

// EventSink (port)

// EventSink receives lifecycle events for the audit stream. Publish must not
// block the caller; implementations may drop events under backpressure.
type EventSink interface {
	Publish(ctx Context, e Event) error
}

// BlobStore (port)
// Holds deployment bundles. The control plane never serves bundle bytes; it
// only hands out upload targets and inspects uploaded bundles on release.

type BlobStore interface {
	UploadURL(ctx Context, key string) (string, error)
	Exists(ctx Context, key string) (bool, error)
	Open(ctx Context, key string) (io.ReadCloser, error)
}

// DeploymentProvider (port)

// DeploymentProvider drives compute for released bundles and wakes idle
// services. Implementations register under Name in the provider registry.
type DeploymentProvider interface {
	Name() string
	// Schema describes the provider's config payload for tooling.
	Schema() string
	// MinimumNotificationInterval bounds how often Notify may fire per
	// deployment.
	MinimumNotificationInterval() time.Duration
	Create(ctx Context, d Deployment) error
	Update(ctx Context, d Deployment) error
	Notify(ctx Context, d Deployment, pendingJobs, liveMachines int) error
}

// Context is an alias to allow decoupling from std context in domain.
// Adapters and usecases pass context.Context through unchanged.

type Context = context.Context
