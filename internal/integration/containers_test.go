//go:build integration

// Package integration drives the job pipeline against real postgres and
// redis containers: admission, claim, results, stall handling and the
// distributed rate limiter. Run with -tags integration and a local Docker.
package integration

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/differentialHQ/differential/internal/adapter/httpserver"
	"github.com/differentialHQ/differential/internal/adapter/repo/postgres"
	"github.com/differentialHQ/differential/internal/domain"
	"github.com/differentialHQ/differential/internal/service/ratelimiter"
	"github.com/differentialHQ/differential/internal/usecase"
)

func startPostgres(t *testing.T, ctx context.Context) *pgxpool.Pool {
	t.Helper()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16",
		Env:          map[string]string{"POSTGRES_PASSWORD": "postgres", "POSTGRES_USER": "postgres", "POSTGRES_DB": "differential"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(90 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)
	dsn := "postgres://postgres:postgres@" + host + ":" + port.Port() + "/differential?sslmode=disable"

	var pool *pgxpool.Pool
	require.Eventually(t, func() bool {
		pool, err = postgres.NewPool(ctx, dsn)
		return err == nil && pool.Ping(ctx) == nil
	}, 30*time.Second, time.Second)
	t.Cleanup(pool.Close)
	return pool
}

func startRedis(t *testing.T, ctx context.Context) *redis.Client {
	t.Helper()
	req := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
	}
	rdC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	host, err := rdC.Host(ctx)
	require.NoError(t, err)
	port, err := rdC.MappedPort(ctx, "6379")
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: host + ":" + port.Port()})
	require.Eventually(t, func() bool { return rdb.Ping(ctx).Err() == nil }, 30*time.Second, time.Second)
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

// ageLease rewinds a running job's lease so the stall sweeps see it as
// timed out.
func ageLease(t *testing.T, ctx context.Context, pool *pgxpool.Pool, jobID string) {
	t.Helper()
	_, err := pool.Exec(ctx,
		`UPDATE jobs SET last_retrieved_at = NOW() - INTERVAL '1 hour', timeout_interval_seconds = 1 WHERE id = $1`, jobID)
	require.NoError(t, err)
}

func Test_JobPipeline_Postgres(t *testing.T) {
	ctx := context.Background()
	pool := startPostgres(t, ctx)
	require.NoError(t, postgres.Migrate(ctx, pool))

	jobs := postgres.NewJobRepo(pool)
	clusters := postgres.NewClusterRepo(pool)
	machines := postgres.NewMachineRepo(pool)
	services := postgres.NewServiceRepo(pool)

	clusterSvc := usecase.NewClusterService(clusters, httpserver.Argon2Hasher{})
	require.NoError(t, clusterSvc.Ensure(ctx, domain.Cluster{ID: "itest", Name: "integration"}, "sk_itest_secret"))

	// Kill switch round-trips through the real schema.
	require.NoError(t, clusterSvc.SetDisabled(ctx, "itest", true))
	got, err := clusters.Get(ctx, "itest")
	require.NoError(t, err)
	require.True(t, got.Disabled)
	require.NoError(t, clusterSvc.SetDisabled(ctx, "itest", false))

	admission := usecase.NewAdmissionService(jobs, services, nil, nil, 300)
	dispatch := usecase.NewDispatchService(jobs, machines, services, nil)
	results := usecase.NewResultsService(jobs, clusters, nil)

	// Admission is idempotent per key.
	params := usecase.CreateJobParams{
		ClusterID:  "itest",
		Service:    "orders",
		TargetFn:   "send",
		TargetArgs: []byte("packed-args"),
		Config:     usecase.CallConfig{IdempotencyKey: "idem-1"},
	}
	id, err := admission.CreateJob(ctx, params)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	dup, err := admission.CreateJob(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, id, dup)

	counts, err := jobs.PendingCounts(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, domain.ServiceBacklog{ClusterID: "itest", Service: "orders", Count: 1}, counts[0])

	// A worker claims the job and records its machine.
	claimed, err := dispatch.NextJobs(ctx, usecase.NextJobsParams{
		ClusterID: "itest",
		Service:   "orders",
		MachineID: "machine-1",
		MachineIP: "10.0.0.9",
		Limit:     5,
	})
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, id, claimed[0].ID)
	assert.Equal(t, "send", claimed[0].TargetFn)
	assert.Equal(t, []byte("packed-args"), claimed[0].TargetArgs)

	// Nothing left to claim.
	empty, err := dispatch.NextJobs(ctx, usecase.NextJobsParams{
		ClusterID: "itest", Service: "orders", MachineID: "machine-1", MachineIP: "10.0.0.9", Limit: 5,
	})
	require.NoError(t, err)
	assert.Empty(t, empty)

	// The resolution settles the job.
	elapsed := int64(12)
	require.NoError(t, results.PersistResult(ctx, domain.ResultParams{
		ClusterID:       "itest",
		JobID:           id,
		MachineID:       "machine-1",
		Result:          []byte("receipt"),
		ResultType:      domain.ResultResolution,
		ExecutionTimeMS: &elapsed,
	}))
	settled, err := jobs.Get(ctx, "itest", id)
	require.NoError(t, err)
	assert.True(t, settled.Terminal())
	assert.Equal(t, domain.JobSuccess, settled.Status)
	assert.Equal(t, []byte("receipt"), settled.Result)

	// Stalled jobs go back to the queue until attempts run out.
	stallParams := params
	stallParams.Config.IdempotencyKey = "idem-stall"
	stallID, err := admission.CreateJob(ctx, stallParams)
	require.NoError(t, err)

	claimAgain := func() []domain.Job {
		t.Helper()
		batch, err := dispatch.NextJobs(ctx, usecase.NextJobsParams{
			ClusterID: "itest", Service: "orders", MachineID: "machine-2", MachineIP: "10.0.0.10", Limit: 1,
		})
		require.NoError(t, err)
		return batch
	}
	require.Len(t, claimAgain(), 1)

	ageLease(t, ctx, pool, stallID)
	retried, err := jobs.MarkStalled(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, retried, 1)
	assert.Equal(t, stallID, retried[0].ID)

	stalled, err := jobs.Get(ctx, "itest", stallID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobFailure, stalled.Status)
	assert.False(t, stalled.Terminal(), "a retryable stall is not terminal")

	// Second attempt stalls too; no attempts remain, so it terminates.
	require.Len(t, claimAgain(), 1)
	ageLease(t, ctx, pool, stallID)
	retried, err = jobs.MarkStalled(ctx, time.Now())
	require.NoError(t, err)
	assert.Empty(t, retried)

	terminal, err := jobs.TerminateStalled(ctx, time.Now(), []byte("job stalled: no attempts remaining"))
	require.NoError(t, err)
	require.Len(t, terminal, 1)

	dead, err := jobs.Get(ctx, "itest", stallID)
	require.NoError(t, err)
	assert.True(t, dead.Terminal())
	require.NotNil(t, dead.ResultType)
	assert.Equal(t, domain.ResultRejection, *dead.ResultType)
	assert.Equal(t, []byte("job stalled: no attempts remaining"), dead.Result)

	// Retention deletes settled work and silent machines.
	deletedJobs, err := jobs.DeleteTerminalBefore(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deletedJobs)

	deletedMachines, err := machines.DeleteStaleBefore(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, deletedMachines, int64(1))
}

func Test_RateLimiter_RedisWithPostgresMirror(t *testing.T) {
	ctx := context.Background()
	pool := startPostgres(t, ctx)
	require.NoError(t, postgres.Migrate(ctx, pool))
	rdb := startRedis(t, ctx)

	key := ratelimiter.BucketKey("itest", "orders", "send")
	limiter := ratelimiter.NewRedisLuaLimiter(rdb, pool, map[string]ratelimiter.BucketConfig{
		key: ratelimiter.NewBucketConfigFromRate(domain.FunctionRate{Per: "minute", Limit: 2}),
	})
	require.NotNil(t, limiter)

	for i := 0; i < 2; i++ {
		allowed, _, err := limiter.Allow(ctx, key, 1)
		require.NoError(t, err)
		assert.True(t, allowed, "call %d within capacity", i+1)
	}
	allowed, retryAfter, err := limiter.Allow(ctx, key, 1)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))

	// The bucket state is mirrored to postgres and survives a redis wipe.
	var mirrored int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM rate_limit_buckets WHERE bucket_key = $1`, key).Scan(&mirrored))
	assert.Equal(t, 1, mirrored)

	require.NoError(t, rdb.FlushAll(ctx).Err())
	require.NoError(t, limiter.WarmFromPostgres(ctx))

	allowed, _, err = limiter.Allow(ctx, key, 1)
	require.NoError(t, err)
	assert.False(t, allowed, "warmed bucket must still be exhausted")
}
