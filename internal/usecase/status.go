package usecase

import (
	"fmt"
	"time"

	"github.com/differentialHQ/differential/internal/adapter/observability"
	"github.com/differentialHQ/differential/internal/domain"
)

// Long-poll bounds for batch status requests. Callers asking for less wait
// at least the floor; callers asking for more are clamped to the ceiling.
const (
	LongPollFloor   = 5 * time.Second
	LongPollCeiling = 20 * time.Second

	defaultStatusTick = 500 * time.Millisecond
)

// JobStatusView is the caller-facing projection of a job's outcome.
type JobStatusView struct {
	ID         string
	Status     domain.JobStatus
	Result     []byte
	ResultType *domain.ResultType
}

// StatusService reads job outcomes. Single reads never block; batch reads
// long-poll until any requested job is terminal or the window closes.
type StatusService struct {
	Jobs   domain.JobRepository
	Events domain.EventSink
	// Tick overrides the 500ms re-read cadence; tests shorten it.
	Tick time.Duration
}

// NewStatusService constructs a StatusService with its dependencies.
func NewStatusService(j domain.JobRepository, e domain.EventSink) StatusService {
	return StatusService{Jobs: j, Events: e}
}

// GetJobStatus returns the status projection for one job.
func (s StatusService) GetJobStatus(ctx domain.Context, clusterID, id string) (JobStatusView, error) {
	if id == "" {
		return JobStatusView{}, fmt.Errorf("%w: job id required", domain.ErrInvalidArgument)
	}
	j, err := s.Jobs.Get(ctx, clusterID, id)
	if err != nil {
		return JobStatusView{}, err
	}
	publishEvent(ctx, s.Events, domain.Event{
		Type:      domain.EventJobStatusRequest,
		ClusterID: clusterID,
		JobID:     j.ID,
		Service:   j.Service,
	})
	return statusView(j), nil
}

// GetJobStatuses long-polls the requested ids for up to timeout. It returns
// as soon as any present job is terminal, re-reading every tick otherwise.
// Missing ids are silently omitted; rows reflect the final read.
func (s StatusService) GetJobStatuses(ctx domain.Context, clusterID string, ids []string, timeout time.Duration) ([]JobStatusView, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: job ids required", domain.ErrInvalidArgument)
	}
	timeout = ClampLongPoll(timeout)
	tick := s.Tick
	if tick <= 0 {
		tick = defaultStatusTick
	}

	start := time.Now()
	deadline := start.Add(timeout)
	defer func() { observability.ObserveLongPoll(time.Since(start)) }()

	var jobs []domain.Job
	for {
		var err error
		jobs, err = s.Jobs.GetBatch(ctx, clusterID, ids)
		if err != nil {
			return nil, err
		}
		if anyTerminal(jobs) {
			break
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		if remaining < tick {
			tick = remaining
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(tick):
		}
	}

	views := make([]JobStatusView, 0, len(jobs))
	for _, j := range jobs {
		views = append(views, statusView(j))
		publishEvent(ctx, s.Events, domain.Event{
			Type:      domain.EventJobStatusRequest,
			ClusterID: clusterID,
			JobID:     j.ID,
			Service:   j.Service,
		})
	}
	return views, nil
}

// ClampLongPoll bounds a caller-supplied long-poll window. Zero or negative
// means the full ceiling.
func ClampLongPoll(d time.Duration) time.Duration {
	if d <= 0 {
		return LongPollCeiling
	}
	if d < LongPollFloor {
		return LongPollFloor
	}
	if d > LongPollCeiling {
		return LongPollCeiling
	}
	return d
}

func anyTerminal(jobs []domain.Job) bool {
	for _, j := range jobs {
		if j.Terminal() {
			return true
		}
	}
	return false
}

func statusView(j domain.Job) JobStatusView {
	return JobStatusView{ID: j.ID, Status: j.Status, Result: j.Result, ResultType: j.ResultType}
}
