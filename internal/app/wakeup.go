package app

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/differentialHQ/differential/internal/adapter/observability"
	"github.com/differentialHQ/differential/internal/domain"
	"github.com/differentialHQ/differential/internal/usecase"
)

// WakeupNotifier scans for services that have claimable jobs but no live
// machines and asks the deployment provider to start compute. Notifications
// are debounced per deployment through redis so restarts and multi-replica
// control planes do not double-fire.
type WakeupNotifier struct {
	jobs      domain.JobRepository
	machines  domain.MachineRepository
	deploys   domain.DeploymentRepository
	providers usecase.ProviderRegistry
	events    domain.EventSink
	redis     *redis.Client

	interval       time.Duration
	debounceFloor  time.Duration
	livenessWindow time.Duration
}

// NewWakeupNotifier builds a notifier; nil core dependencies disable it.
func NewWakeupNotifier(
	jobs domain.JobRepository,
	machines domain.MachineRepository,
	deploys domain.DeploymentRepository,
	providers usecase.ProviderRegistry,
	events domain.EventSink,
	rdb *redis.Client,
	interval, debounceFloor, livenessWindow time.Duration,
) *WakeupNotifier {
	if jobs == nil || machines == nil || deploys == nil || providers == nil {
		return nil
	}
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if debounceFloor <= 0 {
		debounceFloor = 10 * time.Second
	}
	if livenessWindow <= 0 {
		livenessWindow = time.Minute
	}
	return &WakeupNotifier{
		jobs:           jobs,
		machines:       machines,
		deploys:        deploys,
		providers:      providers,
		events:         events,
		redis:          rdb,
		interval:       interval,
		debounceFloor:  debounceFloor,
		livenessWindow: livenessWindow,
	}
}

// Run scans on a fixed cadence until the context is canceled.
func (s *WakeupNotifier) Run(ctx context.Context) {
	if s == nil {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.scanOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("wakeup notifier stopping")
			return
		case <-ticker.C:
			s.scanOnce(ctx)
		}
	}
}

func (s *WakeupNotifier) scanOnce(ctx context.Context) {
	tracer := otel.Tracer("jobs.wakeup")
	ctx, span := tracer.Start(ctx, "WakeupNotifier.scanOnce")
	defer span.End()

	pending, err := s.jobs.PendingCounts(ctx)
	if err != nil {
		span.RecordError(err)
		slog.Error("wakeup scan failed to count pending jobs", slog.Any("error", err))
		return
	}
	observability.PendingJobs.Reset()
	span.SetAttributes(attribute.Int("wakeup.pending_services", len(pending)))
	if len(pending) == 0 {
		return
	}

	live, err := s.machines.LiveCounts(ctx, time.Now().Add(-s.livenessWindow))
	if err != nil {
		span.RecordError(err)
		slog.Error("wakeup scan failed to count live machines", slog.Any("error", err))
		return
	}
	liveByService := make(map[string]int, len(live))
	for _, m := range live {
		liveByService[m.ClusterID+"/"+m.Service] = m.Count
	}

	actives, err := s.deploys.ActiveDeployments(ctx)
	if err != nil {
		span.RecordError(err)
		slog.Error("wakeup scan failed to list active deployments", slog.Any("error", err))
		return
	}
	activeByService := make(map[string]domain.Deployment, len(actives))
	for _, d := range actives {
		activeByService[d.ClusterID+"/"+d.Service] = d
	}

	notified := 0
	for _, b := range pending {
		observability.PendingJobs.WithLabelValues(b.Service).Set(float64(b.Count))
		if b.Count == 0 {
			continue
		}
		key := b.ClusterID + "/" + b.Service
		if liveByService[key] > 0 {
			continue
		}
		d, ok := activeByService[key]
		if !ok {
			// Nothing to wake; self-hosted workers will poll when they start.
			continue
		}
		if s.notify(ctx, d, b.Count) {
			notified++
		}
	}
	span.SetAttributes(attribute.Int("wakeup.notified", notified))
}

// notify fires one provider notification under debounce and breaker control.
func (s *WakeupNotifier) notify(ctx context.Context, d domain.Deployment, pendingJobs int) bool {
	prov, err := s.providers.Lookup(d.Provider)
	if err != nil {
		slog.Warn("wakeup provider lookup failed",
			slog.String("provider", d.Provider), slog.String("deployment_id", d.ID), slog.Any("error", err))
		return false
	}
	ttl := prov.MinimumNotificationInterval()
	if ttl < s.debounceFloor {
		ttl = s.debounceFloor
	}
	if !s.acquireDebounce(ctx, d.ID, ttl) {
		return false
	}

	cb := observability.GetCircuitBreaker("provider:"+prov.Name(), 3, 30*time.Second)
	if err := cb.Call(func() error { return prov.Notify(ctx, d, pendingJobs, 0) }); err != nil {
		slog.Warn("wakeup notify failed",
			slog.String("provider", prov.Name()), slog.String("deployment_id", d.ID), slog.Any("error", err))
		return false
	}

	observability.RecordWakeup(prov.Name())
	slog.Info("deployment woken for pending jobs",
		slog.String("deployment_id", d.ID), slog.String("service", d.Service), slog.Int("pending_jobs", pendingJobs))
	if s.events != nil {
		e := domain.Event{
			Type:         domain.EventDeploymentNotified,
			ClusterID:    d.ClusterID,
			Service:      d.Service,
			DeploymentID: d.ID,
			Meta:         map[string]string{"pendingJobs": strconv.Itoa(pendingJobs)},
		}
		if err := s.events.Publish(ctx, e); err != nil {
			slog.Warn("event publish failed", slog.String("type", e.Type), slog.Any("error", err))
		}
	}
	return true
}

// acquireDebounce takes the per-deployment notification slot. Redis being
// down must not silence wake-ups, so errors fail open.
func (s *WakeupNotifier) acquireDebounce(ctx context.Context, deploymentID string, ttl time.Duration) bool {
	if s.redis == nil {
		return true
	}
	ok, err := s.redis.SetNX(ctx, "wakeup:"+deploymentID, "1", ttl).Result()
	if err != nil {
		slog.Warn("wakeup debounce check failed", slog.String("deployment_id", deploymentID), slog.Any("error", err))
		return true
	}
	return ok
}
