package postgres

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/differentialHQ/differential/internal/domain"
)

// MachineRepo tracks polling machines through heartbeats.
type MachineRepo struct{ Pool PgxPool }

// NewMachineRepo constructs a MachineRepo with the given pool.
func NewMachineRepo(p PgxPool) *MachineRepo { return &MachineRepo{Pool: p} }

// Upsert records a poll-time heartbeat. The row is keyed by (id, cluster) so
// a machine re-registering after a redeploy just refreshes in place.
func (r *MachineRepo) Upsert(ctx domain.Context, m domain.Machine) error {
	tracer := otel.Tracer("repo.machines")
	ctx, span := tracer.Start(ctx, "machines.Upsert")
	defer span.End()

	q := `INSERT INTO machines (id, cluster_id, service, ip, deployment_id, last_ping_at)
	      VALUES ($1,$2,$3,$4,$5,NOW())
	      ON CONFLICT (id, cluster_id) DO UPDATE SET
	        service=EXCLUDED.service,
	        ip=EXCLUDED.ip,
	        deployment_id=EXCLUDED.deployment_id,
	        last_ping_at=NOW()`
	_, err := r.Pool.Exec(ctx, q, m.ID, m.ClusterID, m.Service, m.IP, m.DeploymentID)
	if err != nil {
		return fmt.Errorf("op=machine.upsert: %w", err)
	}
	return nil
}

// LiveCounts returns machines per (cluster, service) that pinged at or after
// since.
func (r *MachineRepo) LiveCounts(ctx domain.Context, since time.Time) ([]domain.ServiceBacklog, error) {
	tracer := otel.Tracer("repo.machines")
	ctx, span := tracer.Start(ctx, "machines.LiveCounts")
	defer span.End()

	q := `SELECT cluster_id, service, COUNT(*) FROM machines
	      WHERE last_ping_at >= $1
	      GROUP BY cluster_id, service`
	rows, err := r.Pool.Query(ctx, q, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("op=machine.live_counts: %w", err)
	}
	defer rows.Close()

	var counts []domain.ServiceBacklog
	for rows.Next() {
		var c domain.ServiceBacklog
		if err := rows.Scan(&c.ClusterID, &c.Service, &c.Count); err != nil {
			return nil, fmt.Errorf("op=machine.live_counts_scan: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=machine.live_counts_rows: %w", err)
	}
	return counts, nil
}

// DeleteStaleBefore removes machines whose last ping predates cutoff. A
// machine that comes back later simply re-registers on its next poll.
func (r *MachineRepo) DeleteStaleBefore(ctx domain.Context, cutoff time.Time) (int64, error) {
	tracer := otel.Tracer("repo.machines")
	ctx, span := tracer.Start(ctx, "machines.DeleteStaleBefore")
	defer span.End()

	tag, err := r.Pool.Exec(ctx, `DELETE FROM machines WHERE last_ping_at < $1`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("op=machine.delete_stale: %w", err)
	}
	return tag.RowsAffected(), nil
}
