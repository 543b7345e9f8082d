package postgres

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/differentialHQ/differential/internal/domain"
)

// JobRepo persists and claims jobs from PostgreSQL using a minimal pgx pool.
// The jobs table is the queue: there is no separate broker to drift from.
type JobRepo struct{ Pool PgxPool }

// NewJobRepo constructs a JobRepo with the given pool.
func NewJobRepo(p PgxPool) *JobRepo { return &JobRepo{Pool: p} }

const jobColumns = `id, cluster_id, service, target_fn, target_args, idempotency_key, status,
	cache_key, result, result_type, remaining_attempts, timeout_interval_seconds,
	executing_machine_id, deployment_id, predictive_retries_on_rejection,
	predicted_to_be_retryable, function_execution_time_ms, created_at, updated_at,
	last_retrieved_at, resulted_at`

type rowScanner interface{ Scan(dest ...any) error }

func scanJob(row rowScanner) (domain.Job, error) {
	var j domain.Job
	var resultType *string
	err := row.Scan(
		&j.ID, &j.ClusterID, &j.Service, &j.TargetFn, &j.TargetArgs, &j.IdempotencyKey, &j.Status,
		&j.CacheKey, &j.Result, &resultType, &j.RemainingAttempts, &j.TimeoutIntervalSeconds,
		&j.ExecutingMachineID, &j.DeploymentID, &j.PredictiveRetriesOnRejection,
		&j.PredictedRetryable, &j.ExecutionTimeMS, &j.CreatedAt, &j.UpdatedAt,
		&j.LastRetrievedAt, &j.ResultedAt,
	)
	if err != nil {
		return domain.Job{}, err
	}
	if resultType != nil {
		rt := domain.ResultType(*resultType)
		j.ResultType = &rt
	}
	return j, nil
}

// Create inserts a new job, or returns the id of the job already holding the
// same (cluster, target fn, idempotency key). Concurrent admissions with the
// same key converge on one row because the conflict target is the primary key.
func (r *JobRepo) Create(ctx domain.Context, j domain.Job) (string, bool, error) {
	tracer := otel.Tracer("repo.jobs")
	ctx, span := tracer.Start(ctx, "jobs.Create")
	defer span.End()

	id := j.ID
	if id == "" {
		id = ulid.Make().String()
	}
	idemKey := j.IdempotencyKey
	if idemKey == "" {
		// A job without an explicit key is only idempotent with itself.
		idemKey = id
	}
	now := time.Now().UTC()
	q := `INSERT INTO jobs (id, cluster_id, service, target_fn, target_args, idempotency_key,
	        status, cache_key, remaining_attempts, timeout_interval_seconds,
	        predictive_retries_on_rejection, deployment_id, created_at, updated_at)
	      VALUES ($1,$2,$3,$4,$5,$6,'pending',$7,$8,$9,$10,$11,$12,$12)
	      ON CONFLICT (cluster_id, target_fn, idempotency_key) DO NOTHING`
	tag, err := r.Pool.Exec(ctx, q,
		id, j.ClusterID, j.Service, j.TargetFn, j.TargetArgs, idemKey,
		j.CacheKey, j.RemainingAttempts, j.TimeoutIntervalSeconds,
		j.PredictiveRetriesOnRejection, j.DeploymentID, now,
	)
	if err != nil {
		return "", false, fmt.Errorf("op=job.create: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return id, true, nil
	}

	// The key is taken; the existing row wins, whatever state it is in.
	var existing string
	sel := `SELECT id FROM jobs WHERE cluster_id=$1 AND target_fn=$2 AND idempotency_key=$3`
	if err := r.Pool.QueryRow(ctx, sel, j.ClusterID, j.TargetFn, idemKey).Scan(&existing); err != nil {
		return "", false, fmt.Errorf("op=job.create_existing: %w", err)
	}
	return existing, false, nil
}

// FindCached returns the newest job for (cluster, fn, cacheKey) that resolved
// within ttl. Ties on resulted_at break toward the larger id.
func (r *JobRepo) FindCached(ctx domain.Context, clusterID, targetFn, cacheKey string, ttl time.Duration) (domain.Job, error) {
	tracer := otel.Tracer("repo.jobs")
	ctx, span := tracer.Start(ctx, "jobs.FindCached")
	defer span.End()

	q := `SELECT ` + jobColumns + ` FROM jobs
	      WHERE cluster_id=$1 AND target_fn=$2 AND cache_key=$3
	        AND status='success' AND result_type='resolution'
	        AND resulted_at >= $4
	      ORDER BY resulted_at DESC, id DESC
	      LIMIT 1`
	cutoff := time.Now().UTC().Add(-ttl)
	j, err := scanJob(r.Pool.QueryRow(ctx, q, clusterID, targetFn, cacheKey, cutoff))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Job{}, fmt.Errorf("op=job.find_cached: %w", domain.ErrNotFound)
		}
		return domain.Job{}, fmt.Errorf("op=job.find_cached: %w", err)
	}
	return j, nil
}

// Claim atomically hands out up to p.Limit claimable jobs to one machine.
// Claimable means pending or stalled-retryable, with attempts left, no final
// result, and a deployment pin compatible with the claiming machine. SKIP
// LOCKED keeps concurrent pollers from blocking on each other's rows.
func (r *JobRepo) Claim(ctx domain.Context, p domain.ClaimParams) ([]domain.Job, error) {
	tracer := otel.Tracer("repo.jobs")
	ctx, span := tracer.Start(ctx, "jobs.Claim")
	defer span.End()
	span.SetAttributes(
		attribute.String("service", p.Service),
		attribute.Int("limit", p.Limit),
	)

	if p.Limit <= 0 {
		return nil, nil
	}
	q := `UPDATE jobs SET
	        status='running',
	        remaining_attempts = remaining_attempts - 1,
	        last_retrieved_at = NOW(),
	        executing_machine_id = $4,
	        updated_at = NOW()
	      WHERE id IN (
	        SELECT id FROM jobs
	        WHERE cluster_id = $1
	          AND service = $2
	          AND status IN ('pending','failure')
	          AND remaining_attempts > 0
	          AND resulted_at IS NULL
	          AND (deployment_id IS NULL OR deployment_id = $5)
	        ORDER BY id
	        LIMIT $3
	        FOR UPDATE SKIP LOCKED
	      )
	      RETURNING id, target_fn, target_args`
	rows, err := r.Pool.Query(ctx, q, p.ClusterID, p.Service, p.Limit, p.MachineID, p.DeploymentID)
	if err != nil {
		return nil, fmt.Errorf("op=job.claim: %w", err)
	}
	defer rows.Close()

	var claimed []domain.Job
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(&j.ID, &j.TargetFn, &j.TargetArgs); err != nil {
			return nil, fmt.Errorf("op=job.claim_scan: %w", err)
		}
		j.ClusterID = p.ClusterID
		j.Service = p.Service
		j.Status = domain.JobRunning
		claimed = append(claimed, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=job.claim_rows: %w", err)
	}
	// RETURNING order is unspecified; hand out FIFO by id.
	sort.Slice(claimed, func(a, b int) bool { return claimed[a].ID < claimed[b].ID })
	return claimed, nil
}

// Get loads a job by id within one cluster.
func (r *JobRepo) Get(ctx domain.Context, clusterID, id string) (domain.Job, error) {
	tracer := otel.Tracer("repo.jobs")
	ctx, span := tracer.Start(ctx, "jobs.Get")
	defer span.End()

	q := `SELECT ` + jobColumns + ` FROM jobs WHERE cluster_id=$1 AND id=$2`
	j, err := scanJob(r.Pool.QueryRow(ctx, q, clusterID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Job{}, fmt.Errorf("op=job.get: %w", domain.ErrNotFound)
		}
		return domain.Job{}, fmt.Errorf("op=job.get: %w", err)
	}
	return j, nil
}

// GetBatch loads the subset of ids that exist within one cluster. Missing ids
// are simply absent from the result.
func (r *JobRepo) GetBatch(ctx domain.Context, clusterID string, ids []string) ([]domain.Job, error) {
	tracer := otel.Tracer("repo.jobs")
	ctx, span := tracer.Start(ctx, "jobs.GetBatch")
	defer span.End()
	span.SetAttributes(attribute.Int("batch_size", len(ids)))

	if len(ids) == 0 {
		return nil, nil
	}
	q := `SELECT ` + jobColumns + ` FROM jobs WHERE cluster_id=$1 AND id = ANY($2)`
	rows, err := r.Pool.Query(ctx, q, clusterID, ids)
	if err != nil {
		return nil, fmt.Errorf("op=job.get_batch: %w", err)
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("op=job.get_batch_scan: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=job.get_batch_rows: %w", err)
	}
	return jobs, nil
}

// PersistResult records a worker result. Rows already terminal through a
// stall keep their synthetic rejection (late results are dropped); every
// other state accepts the result and lands in success.
func (r *JobRepo) PersistResult(ctx domain.Context, p domain.ResultParams) error {
	tracer := otel.Tracer("repo.jobs")
	ctx, span := tracer.Start(ctx, "jobs.PersistResult")
	defer span.End()

	q := `UPDATE jobs SET
	        status='success',
	        result=$3,
	        result_type=$4,
	        resulted_at=NOW(),
	        function_execution_time_ms=$5,
	        updated_at=NOW()
	      WHERE cluster_id=$1 AND id=$2
	        AND NOT (status='failure' AND resulted_at IS NOT NULL)`
	tag, err := r.Pool.Exec(ctx, q, p.ClusterID, p.JobID, p.Result, string(p.ResultType), p.ExecutionTimeMS)
	if err != nil {
		return fmt.Errorf("op=job.persist_result: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Nothing updated: either the job does not exist in this cluster, or it
	// already stalled terminally and the late result is ignored.
	var exists bool
	sel := `SELECT EXISTS(SELECT 1 FROM jobs WHERE cluster_id=$1 AND id=$2)`
	if err := r.Pool.QueryRow(ctx, sel, p.ClusterID, p.JobID).Scan(&exists); err != nil {
		return fmt.Errorf("op=job.persist_result_check: %w", err)
	}
	if !exists {
		return fmt.Errorf("op=job.persist_result: %w", domain.ErrNotFound)
	}
	return nil
}

// SetPredictedRetryable records a retry predictor's verdict on the row.
func (r *JobRepo) SetPredictedRetryable(ctx domain.Context, clusterID, id string, retryable bool) error {
	tracer := otel.Tracer("repo.jobs")
	ctx, span := tracer.Start(ctx, "jobs.SetPredictedRetryable")
	defer span.End()

	q := `UPDATE jobs SET predicted_to_be_retryable=$3, updated_at=NOW()
	      WHERE cluster_id=$1 AND id=$2`
	tag, err := r.Pool.Exec(ctx, q, clusterID, id, retryable)
	if err != nil {
		return fmt.Errorf("op=job.set_predicted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("op=job.set_predicted: %w", domain.ErrNotFound)
	}
	return nil
}

// MarkStalled flags timed-out running jobs with attempts left for re-claim,
// on clusters that auto-retry stalls. The rows go to failure with no result
// so the claim predicate picks them up again.
func (r *JobRepo) MarkStalled(ctx domain.Context, now time.Time) ([]domain.StalledJob, error) {
	tracer := otel.Tracer("repo.jobs")
	ctx, span := tracer.Start(ctx, "jobs.MarkStalled")
	defer span.End()

	q := `UPDATE jobs j SET
	        status='failure',
	        executing_machine_id=NULL,
	        updated_at=NOW()
	      FROM clusters c
	      WHERE c.id = j.cluster_id
	        AND j.status='running'
	        AND j.last_retrieved_at IS NOT NULL
	        AND j.last_retrieved_at + make_interval(secs => j.timeout_interval_seconds) < $1
	        AND j.remaining_attempts > 0
	        AND c.auto_retry_stalled_jobs
	      RETURNING j.id, j.cluster_id, j.service, j.target_fn`
	return r.collectStalled(ctx, "op=job.mark_stalled", q, now.UTC())
}

// TerminateStalled finalizes timed-out running jobs that have no attempts
// left, or whose cluster opted out of auto-retry. They become terminal
// failures carrying reason as a synthetic rejection payload.
func (r *JobRepo) TerminateStalled(ctx domain.Context, now time.Time, reason []byte) ([]domain.StalledJob, error) {
	tracer := otel.Tracer("repo.jobs")
	ctx, span := tracer.Start(ctx, "jobs.TerminateStalled")
	defer span.End()

	q := `UPDATE jobs j SET
	        status='failure',
	        result=$2,
	        result_type='rejection',
	        resulted_at=$1,
	        executing_machine_id=NULL,
	        updated_at=NOW()
	      FROM clusters c
	      WHERE c.id = j.cluster_id
	        AND j.status='running'
	        AND j.last_retrieved_at IS NOT NULL
	        AND j.last_retrieved_at + make_interval(secs => j.timeout_interval_seconds) < $1
	        AND (j.remaining_attempts <= 0 OR NOT c.auto_retry_stalled_jobs)
	      RETURNING j.id, j.cluster_id, j.service, j.target_fn`
	return r.collectStalled(ctx, "op=job.terminate_stalled", q, now.UTC(), reason)
}

func (r *JobRepo) collectStalled(ctx domain.Context, op, q string, args ...any) ([]domain.StalledJob, error) {
	rows, err := r.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var stalled []domain.StalledJob
	for rows.Next() {
		var s domain.StalledJob
		if err := rows.Scan(&s.ID, &s.ClusterID, &s.Service, &s.TargetFn); err != nil {
			return nil, fmt.Errorf("%s_scan: %w", op, err)
		}
		stalled = append(stalled, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s_rows: %w", op, err)
	}
	return stalled, nil
}

// PendingCounts returns claimable-job counts per (cluster, service). The
// predicate matches Claim so the wake-up scan sees exactly the work a live
// machine could pick up.
func (r *JobRepo) PendingCounts(ctx domain.Context) ([]domain.ServiceBacklog, error) {
	tracer := otel.Tracer("repo.jobs")
	ctx, span := tracer.Start(ctx, "jobs.PendingCounts")
	defer span.End()

	q := `SELECT cluster_id, service, COUNT(*) FROM jobs
	      WHERE status IN ('pending','failure')
	        AND remaining_attempts > 0
	        AND resulted_at IS NULL
	      GROUP BY cluster_id, service`
	rows, err := r.Pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("op=job.pending_counts: %w", err)
	}
	defer rows.Close()

	var backlogs []domain.ServiceBacklog
	for rows.Next() {
		var b domain.ServiceBacklog
		if err := rows.Scan(&b.ClusterID, &b.Service, &b.Count); err != nil {
			return nil, fmt.Errorf("op=job.pending_counts_scan: %w", err)
		}
		backlogs = append(backlogs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=job.pending_counts_rows: %w", err)
	}
	return backlogs, nil
}

// DeleteTerminalBefore removes terminal jobs last updated before cutoff and
// returns how many went away.
func (r *JobRepo) DeleteTerminalBefore(ctx domain.Context, cutoff time.Time) (int64, error) {
	tracer := otel.Tracer("repo.jobs")
	ctx, span := tracer.Start(ctx, "jobs.DeleteTerminalBefore")
	defer span.End()

	q := `DELETE FROM jobs
	      WHERE (status='success' OR (status='failure' AND resulted_at IS NOT NULL))
	        AND updated_at < $1`
	tag, err := r.Pool.Exec(ctx, q, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("op=job.delete_terminal: %w", err)
	}
	return tag.RowsAffected(), nil
}
