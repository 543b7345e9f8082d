package postgres

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"

	"github.com/differentialHQ/differential/internal/domain"
)

// ServiceRepo stores service definitions reported by polling workers.
type ServiceRepo struct{ Pool PgxPool }

// NewServiceRepo constructs a ServiceRepo with the given pool.
func NewServiceRepo(p PgxPool) *ServiceRepo { return &ServiceRepo{Pool: p} }

// Upsert replaces the stored definition for (cluster, service). Workers send
// the full definition on every registration, so last write wins.
func (r *ServiceRepo) Upsert(ctx domain.Context, clusterID string, def domain.ServiceDefinition) error {
	tracer := otel.Tracer("repo.services")
	ctx, span := tracer.Start(ctx, "services.Upsert")
	defer span.End()

	raw, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("op=service.upsert_marshal: %w", err)
	}
	q := `INSERT INTO services (cluster_id, service, definition, created_at, updated_at)
	      VALUES ($1,$2,$3,NOW(),NOW())
	      ON CONFLICT (cluster_id, service) DO UPDATE SET
	        definition=EXCLUDED.definition,
	        updated_at=NOW()`
	if _, err := r.Pool.Exec(ctx, q, clusterID, def.Name, raw); err != nil {
		return fmt.Errorf("op=service.upsert: %w", err)
	}
	return nil
}

// Get loads the stored definition of one service.
func (r *ServiceRepo) Get(ctx domain.Context, clusterID, name string) (domain.ServiceDefinition, error) {
	tracer := otel.Tracer("repo.services")
	ctx, span := tracer.Start(ctx, "services.Get")
	defer span.End()

	q := `SELECT definition FROM services WHERE cluster_id=$1 AND service=$2`
	var raw []byte
	if err := r.Pool.QueryRow(ctx, q, clusterID, name).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ServiceDefinition{}, fmt.Errorf("op=service.get: %w", domain.ErrNotFound)
		}
		return domain.ServiceDefinition{}, fmt.Errorf("op=service.get: %w", err)
	}
	var def domain.ServiceDefinition
	if err := json.Unmarshal(raw, &def); err != nil {
		return domain.ServiceDefinition{}, fmt.Errorf("op=service.get_unmarshal: %w", err)
	}
	return def, nil
}
