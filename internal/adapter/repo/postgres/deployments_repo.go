package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"

	"github.com/differentialHQ/differential/internal/domain"
)

// DeploymentRepo persists deployments and their lifecycle transitions.
type DeploymentRepo struct{ Pool PgxPool }

// NewDeploymentRepo constructs a DeploymentRepo with the given pool.
func NewDeploymentRepo(p PgxPool) *DeploymentRepo { return &DeploymentRepo{Pool: p} }

const deploymentColumns = `id, cluster_id, service, provider, status, bundle_key, created_at, updated_at`

func scanDeployment(row rowScanner) (domain.Deployment, error) {
	var d domain.Deployment
	err := row.Scan(&d.ID, &d.ClusterID, &d.Service, &d.Provider, &d.Status,
		&d.BundleKey, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

// Create stores a new deployment.
func (r *DeploymentRepo) Create(ctx domain.Context, d domain.Deployment) error {
	tracer := otel.Tracer("repo.deployments")
	ctx, span := tracer.Start(ctx, "deployments.Create")
	defer span.End()

	q := `INSERT INTO deployments (id, cluster_id, service, provider, status, bundle_key, created_at, updated_at)
	      VALUES ($1,$2,$3,$4,$5,$6,$7,$7)`
	_, err := r.Pool.Exec(ctx, q, d.ID, d.ClusterID, d.Service, d.Provider,
		string(d.Status), d.BundleKey, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("op=deployment.create: %w", err)
	}
	return nil
}

// Get loads one deployment within a cluster.
func (r *DeploymentRepo) Get(ctx domain.Context, clusterID, id string) (domain.Deployment, error) {
	tracer := otel.Tracer("repo.deployments")
	ctx, span := tracer.Start(ctx, "deployments.Get")
	defer span.End()

	q := `SELECT ` + deploymentColumns + ` FROM deployments WHERE cluster_id=$1 AND id=$2`
	d, err := scanDeployment(r.Pool.QueryRow(ctx, q, clusterID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Deployment{}, fmt.Errorf("op=deployment.get: %w", domain.ErrNotFound)
		}
		return domain.Deployment{}, fmt.Errorf("op=deployment.get: %w", err)
	}
	return d, nil
}

// SetStatus moves a deployment to status.
func (r *DeploymentRepo) SetStatus(ctx domain.Context, clusterID, id string, status domain.DeploymentStatus) error {
	tracer := otel.Tracer("repo.deployments")
	ctx, span := tracer.Start(ctx, "deployments.SetStatus")
	defer span.End()

	q := `UPDATE deployments SET status=$3, updated_at=NOW() WHERE cluster_id=$1 AND id=$2`
	tag, err := r.Pool.Exec(ctx, q, clusterID, id, string(status))
	if err != nil {
		return fmt.Errorf("op=deployment.set_status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("op=deployment.set_status: %w", domain.ErrNotFound)
	}
	return nil
}

// Activate promotes the deployment to active and demotes any other active
// deployment of the same (cluster, service). One transaction, so the partial
// unique index on active rows never trips.
func (r *DeploymentRepo) Activate(ctx domain.Context, clusterID, id string) (domain.Deployment, error) {
	tracer := otel.Tracer("repo.deployments")
	ctx, span := tracer.Start(ctx, "deployments.Activate")
	defer span.End()

	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Deployment{}, fmt.Errorf("op=deployment.activate_begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var service string
	sel := `SELECT service FROM deployments WHERE cluster_id=$1 AND id=$2 FOR UPDATE`
	if err := tx.QueryRow(ctx, sel, clusterID, id).Scan(&service); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Deployment{}, fmt.Errorf("op=deployment.activate: %w", domain.ErrNotFound)
		}
		return domain.Deployment{}, fmt.Errorf("op=deployment.activate: %w", err)
	}

	demote := `UPDATE deployments SET status='inactive', updated_at=NOW()
	           WHERE cluster_id=$1 AND service=$2 AND status='active' AND id<>$3`
	if _, err := tx.Exec(ctx, demote, clusterID, service, id); err != nil {
		return domain.Deployment{}, fmt.Errorf("op=deployment.activate_demote: %w", err)
	}

	promote := `UPDATE deployments SET status='active', updated_at=NOW()
	            WHERE cluster_id=$1 AND id=$2
	            RETURNING ` + deploymentColumns
	d, err := scanDeployment(tx.QueryRow(ctx, promote, clusterID, id))
	if err != nil {
		return domain.Deployment{}, fmt.Errorf("op=deployment.activate_promote: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Deployment{}, fmt.Errorf("op=deployment.activate_commit: %w", err)
	}
	return d, nil
}

// ActiveDeployment returns the active deployment of (cluster, service).
func (r *DeploymentRepo) ActiveDeployment(ctx domain.Context, clusterID, service string) (domain.Deployment, error) {
	tracer := otel.Tracer("repo.deployments")
	ctx, span := tracer.Start(ctx, "deployments.ActiveDeployment")
	defer span.End()

	q := `SELECT ` + deploymentColumns + ` FROM deployments
	      WHERE cluster_id=$1 AND service=$2 AND status='active'`
	d, err := scanDeployment(r.Pool.QueryRow(ctx, q, clusterID, service))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Deployment{}, fmt.Errorf("op=deployment.active: %w", domain.ErrNotFound)
		}
		return domain.Deployment{}, fmt.Errorf("op=deployment.active: %w", err)
	}
	return d, nil
}

// ActiveDeployments lists every active deployment across clusters for the
// wake-up scan.
func (r *DeploymentRepo) ActiveDeployments(ctx domain.Context) ([]domain.Deployment, error) {
	tracer := otel.Tracer("repo.deployments")
	ctx, span := tracer.Start(ctx, "deployments.ActiveDeployments")
	defer span.End()

	q := `SELECT ` + deploymentColumns + ` FROM deployments WHERE status='active'`
	rows, err := r.Pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("op=deployment.active_all: %w", err)
	}
	defer rows.Close()

	var out []domain.Deployment
	for rows.Next() {
		d, err := scanDeployment(rows)
		if err != nil {
			return nil, fmt.Errorf("op=deployment.active_all_scan: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=deployment.active_all_rows: %w", err)
	}
	return out, nil
}
