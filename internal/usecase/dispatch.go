package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/differentialHQ/differential/internal/adapter/observability"
	"github.com/differentialHQ/differential/internal/domain"
)

// NextJobsParams describes one worker poll.
type NextJobsParams struct {
	ClusterID string
	Service   string
	MachineID string
	MachineIP string
	// DeploymentID pins the claim to jobs targeting this deployment or none.
	DeploymentID *string
	Limit        int
	// Definition, when present, is upserted in the background; a broken
	// definition must not cost the worker its batch.
	Definition *domain.ServiceDefinition
}

// DispatchService hands claimable jobs to polling machines. The claim itself
// is a single atomic statement in the job repository; this service wraps it
// with the poll's side effects (machine heartbeat, definition upsert, events).
type DispatchService struct {
	Jobs     domain.JobRepository
	Machines domain.MachineRepository
	Services domain.ServiceRepository
	Events   domain.EventSink
}

// NewDispatchService constructs a DispatchService with its dependencies.
func NewDispatchService(j domain.JobRepository, m domain.MachineRepository, s domain.ServiceRepository, e domain.EventSink) DispatchService {
	return DispatchService{Jobs: j, Machines: m, Services: s, Events: e}
}

// NextJobs records the machine's heartbeat and claims up to Limit jobs for
// it. An empty claim returns promptly; the worker owns its own poll cadence.
func (s DispatchService) NextJobs(ctx domain.Context, p NextJobsParams) ([]domain.Job, error) {
	if p.Service == "" || p.MachineID == "" {
		return nil, fmt.Errorf("%w: service and machine id required", domain.ErrInvalidArgument)
	}
	if p.Limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", domain.ErrInvalidArgument)
	}

	m := domain.Machine{
		ID:           p.MachineID,
		ClusterID:    p.ClusterID,
		Service:      p.Service,
		IP:           p.MachineIP,
		DeploymentID: p.DeploymentID,
		LastPingAt:   time.Now().UTC(),
	}
	if err := s.Machines.Upsert(ctx, m); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.Events, domain.Event{
		Type:      domain.EventMachinePing,
		ClusterID: p.ClusterID,
		Service:   p.Service,
		MachineID: p.MachineID,
	})

	if p.Definition != nil {
		s.upsertDefinition(ctx, p.ClusterID, *p.Definition)
	}

	claimed, err := s.Jobs.Claim(ctx, domain.ClaimParams{
		ClusterID:    p.ClusterID,
		Service:      p.Service,
		MachineID:    p.MachineID,
		DeploymentID: p.DeploymentID,
		Limit:        p.Limit,
	})
	if err != nil {
		return nil, err
	}

	observability.ClaimJobs(p.Service, len(claimed))
	for _, j := range claimed {
		publishEvent(ctx, s.Events, domain.Event{
			Type:      domain.EventJobReceived,
			ClusterID: p.ClusterID,
			JobID:     j.ID,
			Service:   p.Service,
			MachineID: p.MachineID,
		})
	}
	return claimed, nil
}

// upsertDefinition stores the worker-reported definition off the request
// path. Upsert failures are logged only.
func (s DispatchService) upsertDefinition(ctx domain.Context, clusterID string, def domain.ServiceDefinition) {
	if s.Services == nil {
		return
	}
	go func() {
		bctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := s.Services.Upsert(bctx, clusterID, def); err != nil {
			slog.Warn("service definition upsert failed",
				slog.String("cluster_id", clusterID),
				slog.String("service", def.Name),
				slog.Any("error", err))
		}
	}()
}
