package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/differentialHQ/differential/internal/domain"
)

//go:generate mockery --config=../../../../.mockery-pgx.yml

// ClusterRepo persists and loads clusters using a minimal pgx pool.
type ClusterRepo struct{ Pool PgxPool }

// PgxPool is a minimal subset of pgxpool used by the repos for easy testing.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// NewClusterRepo constructs a ClusterRepo with the given pool.
func NewClusterRepo(p PgxPool) *ClusterRepo { return &ClusterRepo{Pool: p} }

const clusterColumns = `id, name, description, api_secret_hash, predictive_retries,
	auto_retry_stalled_jobs, disabled, created_at, updated_at`

// Create stores a new cluster. A taken id is a conflict.
func (r *ClusterRepo) Create(ctx domain.Context, c domain.Cluster) error {
	tracer := otel.Tracer("repo.clusters")
	ctx, span := tracer.Start(ctx, "clusters.Create")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.sql.table", "clusters"),
	)

	q := `INSERT INTO clusters (id, name, description, api_secret_hash, predictive_retries, auto_retry_stalled_jobs, disabled, created_at, updated_at)
	      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$8)
	      ON CONFLICT (id) DO NOTHING`
	tag, err := r.Pool.Exec(ctx, q, c.ID, c.Name, c.Description, c.APISecretHash,
		c.PredictiveRetries, c.AutoRetryStalledJobs, c.Disabled, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("op=cluster.create: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("op=cluster.create: %w", domain.ErrConflict)
	}
	return nil
}

// Get loads a cluster by id.
func (r *ClusterRepo) Get(ctx domain.Context, id string) (domain.Cluster, error) {
	tracer := otel.Tracer("repo.clusters")
	ctx, span := tracer.Start(ctx, "clusters.Get")
	defer span.End()

	q := `SELECT ` + clusterColumns + ` FROM clusters WHERE id=$1`
	row := r.Pool.QueryRow(ctx, q, id)
	var c domain.Cluster
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.APISecretHash,
		&c.PredictiveRetries, &c.AutoRetryStalledJobs, &c.Disabled, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Cluster{}, fmt.Errorf("op=cluster.get: %w", domain.ErrNotFound)
		}
		return domain.Cluster{}, fmt.Errorf("op=cluster.get: %w", err)
	}
	return c, nil
}

// Ensure inserts c when absent and leaves an existing row untouched. Used by
// the seed file loader at boot.
func (r *ClusterRepo) Ensure(ctx domain.Context, c domain.Cluster) error {
	tracer := otel.Tracer("repo.clusters")
	ctx, span := tracer.Start(ctx, "clusters.Ensure")
	defer span.End()

	q := `INSERT INTO clusters (id, name, description, api_secret_hash, predictive_retries, auto_retry_stalled_jobs, disabled, created_at, updated_at)
	      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$8)
	      ON CONFLICT (id) DO NOTHING`
	_, err := r.Pool.Exec(ctx, q, c.ID, c.Name, c.Description, c.APISecretHash,
		c.PredictiveRetries, c.AutoRetryStalledJobs, c.Disabled, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("op=cluster.ensure: %w", err)
	}
	return nil
}

// SetDisabled flips the cluster kill switch.
func (r *ClusterRepo) SetDisabled(ctx domain.Context, id string, disabled bool) error {
	tracer := otel.Tracer("repo.clusters")
	ctx, span := tracer.Start(ctx, "clusters.SetDisabled")
	defer span.End()

	q := `UPDATE clusters SET disabled=$2, updated_at=NOW() WHERE id=$1`
	tag, err := r.Pool.Exec(ctx, q, id, disabled)
	if err != nil {
		return fmt.Errorf("op=cluster.set_disabled: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("op=cluster.set_disabled: %w", domain.ErrNotFound)
	}
	return nil
}
