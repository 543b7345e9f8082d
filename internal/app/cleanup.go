package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/differentialHQ/differential/internal/domain"
)

// Cleaner deletes terminal jobs and silent machines past the retention
// window. Pending and running rows are never touched regardless of age.
type Cleaner struct {
	jobs      domain.JobRepository
	machines  domain.MachineRepository
	retention time.Duration
	interval  time.Duration
}

// NewCleaner builds a cleaner; a nil jobs repository disables it. A nil
// machines repository skips heartbeat pruning.
func NewCleaner(jobs domain.JobRepository, machines domain.MachineRepository, retentionDays int, interval time.Duration) *Cleaner {
	if jobs == nil {
		return nil
	}
	if retentionDays <= 0 {
		retentionDays = 30
	}
	if interval <= 0 {
		interval = time.Hour
	}
	return &Cleaner{
		jobs:      jobs,
		machines:  machines,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		interval:  interval,
	}
}

// Run cleans on a fixed cadence until the context is canceled.
func (c *Cleaner) Run(ctx context.Context) {
	if c == nil || c.jobs == nil {
		return
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.cleanOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("retention cleaner stopping")
			return
		case <-ticker.C:
			c.cleanOnce(ctx)
		}
	}
}

func (c *Cleaner) cleanOnce(ctx context.Context) {
	tracer := otel.Tracer("jobs.cleaner")
	ctx, span := tracer.Start(ctx, "Cleaner.cleanOnce")
	defer span.End()

	cutoff := time.Now().UTC().Add(-c.retention)
	n, err := c.jobs.DeleteTerminalBefore(ctx, cutoff)
	if err != nil {
		span.RecordError(err)
		slog.Error("retention clean failed", slog.Any("error", err))
		return
	}
	span.SetAttributes(attribute.Int64("jobs.deleted", n))
	if n > 0 {
		slog.Info("terminal jobs deleted past retention",
			slog.Int64("count", n), slog.Time("cutoff", cutoff))
	}

	if c.machines == nil {
		return
	}
	m, err := c.machines.DeleteStaleBefore(ctx, cutoff)
	if err != nil {
		span.RecordError(err)
		slog.Error("machine prune failed", slog.Any("error", err))
		return
	}
	span.SetAttributes(attribute.Int64("machines.deleted", m))
	if m > 0 {
		slog.Info("silent machines pruned", slog.Int64("count", m), slog.Time("cutoff", cutoff))
	}
}
