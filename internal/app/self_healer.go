package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/differentialHQ/differential/internal/adapter/observability"
	"github.com/differentialHQ/differential/internal/domain"
)

// terminalStallReason is stored as the synthetic rejection payload of jobs
// the healer fails permanently.
var terminalStallReason = []byte("job stalled: no attempts remaining")

// SelfHealer recovers jobs whose workers went silent. Timed-out running jobs
// with attempts left are flipped back to claimable; jobs out of attempts (or
// on clusters that opted out of auto-retry) become terminal failures.
type SelfHealer struct {
	jobs     domain.JobRepository
	events   domain.EventSink
	interval time.Duration
}

// NewSelfHealer builds a healer; a nil jobs repository disables it.
func NewSelfHealer(jobs domain.JobRepository, events domain.EventSink, interval time.Duration) *SelfHealer {
	if jobs == nil {
		return nil
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &SelfHealer{jobs: jobs, events: events, interval: interval}
}

// Run sweeps on a fixed cadence until the context is canceled.
func (s *SelfHealer) Run(ctx context.Context) {
	if s == nil || s.jobs == nil {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweepOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("self healer stopping")
			return
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *SelfHealer) sweepOnce(ctx context.Context) {
	tracer := otel.Tracer("jobs.healer")
	ctx, span := tracer.Start(ctx, "SelfHealer.sweepOnce")
	defer span.End()

	now := time.Now().UTC()

	retried, err := s.jobs.MarkStalled(ctx, now)
	if err != nil {
		span.RecordError(err)
		slog.Error("self heal mark stalled failed", slog.Any("error", err))
		return
	}
	if len(retried) > 0 {
		observability.StallJob("retried", len(retried))
		slog.Warn("stalled jobs returned to queue", slog.Int("count", len(retried)))
		for _, j := range retried {
			s.publish(ctx, domain.EventJobStalled, j)
		}
	}

	terminal, err := s.jobs.TerminateStalled(ctx, now, terminalStallReason)
	if err != nil {
		span.RecordError(err)
		slog.Error("self heal terminate stalled failed", slog.Any("error", err))
		return
	}
	if len(terminal) > 0 {
		observability.StallJob("terminal", len(terminal))
		slog.Warn("stalled jobs failed terminally", slog.Int("count", len(terminal)))
		for _, j := range terminal {
			s.publish(ctx, domain.EventJobStalledTerminal, j)
		}
	}

	span.SetAttributes(
		attribute.Int("jobs.stalled_retried", len(retried)),
		attribute.Int("jobs.stalled_terminal", len(terminal)),
	)
}

func (s *SelfHealer) publish(ctx context.Context, eventType string, j domain.StalledJob) {
	if s.events == nil {
		return
	}
	e := domain.Event{
		Type:      eventType,
		ClusterID: j.ClusterID,
		JobID:     j.ID,
		Service:   j.Service,
		Meta:      map[string]string{"targetFn": j.TargetFn},
	}
	if err := s.events.Publish(ctx, e); err != nil {
		slog.Warn("event publish failed", slog.String("type", eventType), slog.Any("error", err))
	}
}
