// Package usecase contains the application services of the job lifecycle
// engine: admission, dispatch, results, status, clusters and deployments.
// Services hold domain ports and never touch transports directly.
package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/differentialHQ/differential/internal/adapter/observability"
	"github.com/differentialHQ/differential/internal/domain"
	"github.com/differentialHQ/differential/internal/service/ratelimiter"
)

// CallConfig carries the per-call options recognized at admission. The zero
// value admits with defaults: a generated id, idempotent only with itself,
// no cache probe, two attempts, the cluster-wide timeout.
type CallConfig struct {
	IdempotencyKey string
	CacheKey       string
	// CacheTTLSeconds bounds how old a cached resolution may be. A cache
	// probe happens only when both CacheKey and a positive TTL are set.
	CacheTTLSeconds int
	// RetryCountOnStall sets remaining attempts to value+1. Nil means one
	// retry (two attempts); an explicit zero disables stall retries.
	RetryCountOnStall            *int
	TimeoutSeconds               int
	PredictiveRetriesOnRejection bool
	// ExecutionID is a caller-chosen job id; empty means generate one.
	ExecutionID string
}

// CreateJobParams describes one admission request.
type CreateJobParams struct {
	ClusterID  string
	Service    string
	TargetFn   string
	TargetArgs []byte
	Config     CallConfig
}

// AdmissionService admits function calls as jobs: cache probe, idempotent
// insert, per-function rate limiting from the stored service definition.
type AdmissionService struct {
	Jobs     domain.JobRepository
	Services domain.ServiceRepository
	Events   domain.EventSink
	Limiter  *ratelimiter.RedisLuaLimiter
	// DefaultTimeoutSeconds is the stall threshold applied when the caller
	// sets no per-job timeout.
	DefaultTimeoutSeconds int
}

// NewAdmissionService constructs an AdmissionService with its dependencies.
func NewAdmissionService(j domain.JobRepository, s domain.ServiceRepository, e domain.EventSink, l *ratelimiter.RedisLuaLimiter, defaultTimeoutSeconds int) AdmissionService {
	return AdmissionService{Jobs: j, Services: s, Events: e, Limiter: l, DefaultTimeoutSeconds: defaultTimeoutSeconds}
}

// CreateJob admits one call and returns the job id the caller should track.
// The id may belong to an older row: a fresh cached resolution or a prior
// admission with the same idempotency key both win over a new insert.
func (s AdmissionService) CreateJob(ctx domain.Context, p CreateJobParams) (string, error) {
	if p.Service == "" || p.TargetFn == "" {
		return "", fmt.Errorf("%w: service and function required", domain.ErrInvalidArgument)
	}

	if err := s.checkFunction(ctx, p); err != nil {
		return "", err
	}

	if p.Config.CacheKey != "" && p.Config.CacheTTLSeconds > 0 {
		ttl := time.Duration(p.Config.CacheTTLSeconds) * time.Second
		cached, err := s.Jobs.FindCached(ctx, p.ClusterID, p.TargetFn, p.Config.CacheKey, ttl)
		if err == nil {
			observability.AdmitJob(p.Service, observability.AdmitOutcomeCached)
			return cached.ID, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return "", err
		}
	}

	policy := domain.DefaultRetryPolicy()
	if p.Config.RetryCountOnStall != nil && *p.Config.RetryCountOnStall >= 0 {
		policy.RetryCountOnStall = *p.Config.RetryCountOnStall
	}
	if p.Config.TimeoutSeconds > 0 {
		policy.TimeoutIntervalSeconds = p.Config.TimeoutSeconds
	} else if s.DefaultTimeoutSeconds > 0 {
		policy.TimeoutIntervalSeconds = s.DefaultTimeoutSeconds
	}

	j := domain.Job{
		ID:                           p.Config.ExecutionID,
		ClusterID:                    p.ClusterID,
		Service:                      p.Service,
		TargetFn:                     p.TargetFn,
		TargetArgs:                   p.TargetArgs,
		IdempotencyKey:               p.Config.IdempotencyKey,
		RemainingAttempts:            policy.Attempts(),
		TimeoutIntervalSeconds:       policy.TimeoutIntervalSeconds,
		PredictiveRetriesOnRejection: p.Config.PredictiveRetriesOnRejection,
	}
	if p.Config.CacheKey != "" {
		ck := p.Config.CacheKey
		j.CacheKey = &ck
	}

	id, created, err := s.Jobs.Create(ctx, j)
	if err != nil {
		return "", err
	}
	if !created {
		observability.AdmitJob(p.Service, observability.AdmitOutcomeDeduped)
		return id, nil
	}
	observability.AdmitJob(p.Service, observability.AdmitOutcomeCreated)
	publishEvent(ctx, s.Events, domain.Event{
		Type:      domain.EventJobCreated,
		ClusterID: p.ClusterID,
		JobID:     id,
		Service:   p.Service,
	})
	return id, nil
}

// checkFunction validates the target against the stored service definition
// and applies its rate config. Services without a definition admit everything
// (nothing has polled yet).
func (s AdmissionService) checkFunction(ctx domain.Context, p CreateJobParams) error {
	if s.Services == nil {
		return nil
	}
	def, err := s.Services.Get(ctx, p.ClusterID, p.Service)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	fn, ok := def.Function(p.TargetFn)
	if !ok {
		return fmt.Errorf("%w: unknown function %s for service %s", domain.ErrInvalidArgument, p.TargetFn, p.Service)
	}
	if fn.Rate == nil || s.Limiter == nil {
		return nil
	}
	key := ratelimiter.BucketKey(p.ClusterID, p.Service, p.TargetFn)
	s.Limiter.SetBucketConfig(key, ratelimiter.NewBucketConfigFromRate(*fn.Rate))
	allowed, retryAfter, err := s.Limiter.Allow(ctx, key, 1)
	if err != nil {
		// Allow already failed open and logged the redis error.
		return nil
	}
	if !allowed {
		return fmt.Errorf("%w: %s (retry after %s)", domain.ErrRateLimited, p.TargetFn, retryAfter.Round(time.Millisecond))
	}
	return nil
}

// publishEvent forwards e to the sink, logging instead of failing: losing an
// audit event must never change a job outcome.
func publishEvent(ctx domain.Context, sink domain.EventSink, e domain.Event) {
	if sink == nil {
		return
	}
	if err := sink.Publish(ctx, e); err != nil {
		slog.Warn("event publish failed", slog.String("type", e.Type), slog.Any("error", err))
	}
}
