package postgres

import (
	"context"
	"fmt"
	"log/slog"
)

// schemaSQL is the complete control-plane schema. Every statement is
// idempotent so Migrate can run on every boot.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS clusters (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    api_secret_hash TEXT NOT NULL,
    predictive_retries BOOLEAN NOT NULL DEFAULT FALSE,
    auto_retry_stalled_jobs BOOLEAN NOT NULL DEFAULT TRUE,
    disabled BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS jobs (
    id CHAR(26) NOT NULL UNIQUE,
    cluster_id TEXT NOT NULL,
    service TEXT NOT NULL,
    target_fn TEXT NOT NULL,
    target_args BYTEA NOT NULL,
    idempotency_key TEXT NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('pending','running','success','failure')),
    cache_key TEXT,
    result BYTEA,
    result_type TEXT CHECK (result_type IN ('resolution','rejection')),
    remaining_attempts INT NOT NULL DEFAULT 1,
    timeout_interval_seconds INT NOT NULL DEFAULT 30,
    executing_machine_id TEXT,
    deployment_id TEXT,
    predictive_retries_on_rejection BOOLEAN NOT NULL DEFAULT FALSE,
    predicted_to_be_retryable BOOLEAN,
    function_execution_time_ms BIGINT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    last_retrieved_at TIMESTAMPTZ,
    resulted_at TIMESTAMPTZ,
    PRIMARY KEY (cluster_id, target_fn, idempotency_key)
);

CREATE INDEX IF NOT EXISTS jobs_claim_idx ON jobs (cluster_id, service, status);
CREATE INDEX IF NOT EXISTS jobs_cache_idx ON jobs (cluster_id, target_fn, cache_key)
    WHERE cache_key IS NOT NULL;
CREATE INDEX IF NOT EXISTS jobs_stall_idx ON jobs (last_retrieved_at)
    WHERE status = 'running';

CREATE TABLE IF NOT EXISTS machines (
    id TEXT NOT NULL,
    cluster_id TEXT NOT NULL,
    service TEXT NOT NULL DEFAULT '',
    ip TEXT NOT NULL DEFAULT '',
    deployment_id TEXT,
    last_ping_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (id, cluster_id)
);

CREATE INDEX IF NOT EXISTS machines_liveness_idx ON machines (cluster_id, service, last_ping_at);

CREATE TABLE IF NOT EXISTS services (
    cluster_id TEXT NOT NULL,
    service TEXT NOT NULL,
    definition JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (cluster_id, service)
);

CREATE TABLE IF NOT EXISTS deployments (
    id CHAR(26) PRIMARY KEY,
    cluster_id TEXT NOT NULL,
    service TEXT NOT NULL,
    provider TEXT NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('uploading','ready','active','inactive')),
    bundle_key TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS deployments_service_idx ON deployments (cluster_id, service);
CREATE UNIQUE INDEX IF NOT EXISTS deployments_one_active_idx ON deployments (cluster_id, service)
    WHERE status = 'active';

CREATE TABLE IF NOT EXISTS rate_limit_buckets (
    bucket_key TEXT PRIMARY KEY,
    capacity BIGINT NOT NULL,
    refill_rate DOUBLE PRECISION NOT NULL,
    tokens DOUBLE PRECISION NOT NULL,
    last_refill TIMESTAMPTZ NOT NULL
);
`

// Migrate applies the embedded schema. Safe to run on every boot.
func Migrate(ctx context.Context, pool PgxPool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("op=schema.migrate: %w", err)
	}
	slog.Info("database schema ensured")
	return nil
}
