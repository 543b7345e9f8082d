package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/differentialHQ/differential/internal/adapter/observability"
	"github.com/differentialHQ/differential/internal/domain"
)

// ResultsService persists worker results. Acceptance rules live in the job
// repository; this service adds the existence check, metrics and the optional
// predictive-retry consult.
type ResultsService struct {
	Jobs     domain.JobRepository
	Clusters domain.ClusterRepository
	// Predictor, when set, scores rejections of opted-in jobs on clusters
	// with predictive retries enabled. No built-in implementation ships.
	Predictor domain.RetryPredictor
}

// NewResultsService constructs a ResultsService with its dependencies.
func NewResultsService(j domain.JobRepository, c domain.ClusterRepository, p domain.RetryPredictor) ResultsService {
	return ResultsService{Jobs: j, Clusters: c, Predictor: p}
}

// PersistResult records one worker result. Re-posting a resulted job is
// accepted (last writer wins) but a job never leaves success; results for
// terminally stalled jobs are dropped by the repository.
func (s ResultsService) PersistResult(ctx domain.Context, p domain.ResultParams) error {
	if p.JobID == "" {
		return fmt.Errorf("%w: job id required", domain.ErrInvalidArgument)
	}
	if p.ResultType != domain.ResultResolution && p.ResultType != domain.ResultRejection {
		return fmt.Errorf("%w: result type %q", domain.ErrInvalidArgument, p.ResultType)
	}

	j, err := s.Jobs.Get(ctx, p.ClusterID, p.JobID)
	if err != nil {
		return err
	}
	if err := s.Jobs.PersistResult(ctx, p); err != nil {
		return err
	}
	observability.RecordJobResult(j.Service, string(p.ResultType))
	s.maybePredictRetry(ctx, j, p)
	return nil
}

// maybePredictRetry consults the retry predictor for a rejection of an
// opted-in job. The prediction is advisory: it lands on the row for the
// caller's tooling and changes no lifecycle state here.
func (s ResultsService) maybePredictRetry(ctx domain.Context, j domain.Job, p domain.ResultParams) {
	if s.Predictor == nil || p.ResultType != domain.ResultRejection || !j.PredictiveRetriesOnRejection {
		return
	}
	if j.PredictedRetryable != nil {
		return
	}
	go func() {
		bctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()

		c, err := s.Clusters.Get(bctx, j.ClusterID)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				slog.Warn("predictive retry cluster lookup failed", slog.String("job_id", j.ID), slog.Any("error", err))
			}
			return
		}
		if !c.PredictiveRetries {
			return
		}
		retryable, err := s.Predictor.PredictRetryable(bctx, j)
		if err != nil {
			slog.Warn("retry prediction failed", slog.String("job_id", j.ID), slog.Any("error", err))
			return
		}
		if err := s.Jobs.SetPredictedRetryable(bctx, j.ClusterID, j.ID, retryable); err != nil {
			slog.Warn("retry prediction store failed", slog.String("job_id", j.ID), slog.Any("error", err))
		}
	}()
}
