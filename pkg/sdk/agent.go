package sdk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const (
	defaultConcurrency       = 100
	pollThrottle             = 2 * time.Second
	maxConsecutivePollErrors = 10
	quitSpinInterval         = 500 * time.Millisecond
	serverlessIdleCycles     = 2
)

// agent is the poll-and-execute loop behind one started Service. It claims
// at most half its free concurrency per poll so a fleet of workers shares a
// backlog instead of one machine vacuuming it up.
type agent struct {
	api        *apiClient
	queue      *taskQueue
	codec      Codec
	cipher     *payloadCipher
	events     *eventRecorder
	service    string
	deployment string
	definition *serviceDefinition
	lookup     func(targetFn string) (registeredFunction, bool)

	maxIdleCycles int
	throttle      time.Duration

	mu          sync.Mutex
	concurrency int
	current     int
	pollCancel  context.CancelFunc

	started       atomic.Bool
	quitRequested atomic.Bool
	aborted       atomic.Bool
}

func newAgent(c *Client, service string, def *serviceDefinition, lookup func(string) (registeredFunction, bool)) *agent {
	concurrency := c.concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &agent{
		api:           c.api,
		queue:         &taskQueue{},
		codec:         c.codec,
		cipher:        c.cipher,
		events:        c.events,
		service:       service,
		deployment:    c.deploymentID,
		definition:    def,
		lookup:        lookup,
		maxIdleCycles: c.maxIdleCycles,
		throttle:      pollThrottle,
		concurrency:   concurrency,
	}
}

// Run polls for jobs until the context ends, Stop is called, the control
// plane revokes the secret, or polling keeps failing. In-flight handlers
// always drain before Run returns.
func (a *agent) Run(ctx context.Context) error {
	a.started.Store(true)
	defer a.aborted.Store(true)
	defer a.queue.Quit()

	errorCount := 0
	idleCycles := 0
	for {
		if ctx.Err() != nil || a.quitRequested.Load() {
			return nil
		}
		free := a.freeCapacity()
		if free <= 0 {
			a.pause(ctx, a.throttle)
			continue
		}
		limit := (free + 1) / 2
		if limit > maxPollLimit {
			limit = maxPollLimit
		}

		// The throttle runs concurrently with the poll so the loop
		// cadence stays at one claim per throttle window.
		throttle := time.NewTimer(a.throttle)
		pollCtx, cancel := context.WithCancel(ctx)
		a.setPollCancel(cancel)
		jobs, err := a.api.NextJobs(pollCtx, nextJobsRequest{
			Service:      a.service,
			Limit:        limit,
			DeploymentID: a.deployment,
			Definition:   a.definition,
		})
		a.setPollCancel(nil)
		cancel()

		switch {
		case err != nil && errors.Is(err, ErrUnauthorized):
			throttle.Stop()
			return fmt.Errorf("op=worker.poll: %w", err)
		case err != nil:
			if ctx.Err() == nil && !a.quitRequested.Load() {
				errorCount++
				slog.Warn("job poll failed", "service", a.service, "attempt", errorCount, "error", err)
				if errorCount >= maxConsecutivePollErrors {
					throttle.Stop()
					return fmt.Errorf("op=worker.poll: %w", ErrTooManyNetworkErrors)
				}
			}
		default:
			errorCount = 0
			if len(jobs) == 0 {
				idleCycles++
				if a.maxIdleCycles > 0 && idleCycles >= a.maxIdleCycles {
					slog.Info("worker idle, shutting down", "service", a.service, "idleCycles", idleCycles)
					throttle.Stop()
					return nil
				}
			} else {
				idleCycles = 0
				for _, j := range jobs {
					a.dispatch(ctx, j)
				}
			}
		}

		select {
		case <-ctx.Done():
		case <-throttle.C:
		}
		throttle.Stop()
	}
}

// dispatch hands one claimed job to the task queue. Jobs that target a
// function this worker never registered settle immediately as rejections
// rather than stalling until the timeout sweep.
func (a *agent) dispatch(ctx context.Context, j jobEnvelope) {
	// Results must outlive the poll loop's context: a draining worker
	// still posts outcomes for work it already claimed.
	taskCtx := context.WithoutCancel(ctx)

	fn, ok := a.lookup(j.TargetFn)
	if !ok {
		slog.Warn("claimed job targets unregistered function", "service", a.service, "job", j.ID, "targetFn", j.TargetFn)
		a.postResult(taskCtx, j, invokeResult{
			resultType: resultTypeRejection,
			payload:    "Function was not registered",
		})
		return
	}

	a.addCurrent(1)
	err := a.queue.Add(func() {
		defer a.addCurrent(-1)
		res := a.execute(taskCtx, fn, j)
		a.postResult(taskCtx, j, res)
		a.events.recordInvocation(a.service, j.ID, j.TargetFn, res.elapsedMS)
	})
	if err != nil {
		// Queue already closed by a quit; the claim stalls and the
		// self-healer re-queues it.
		a.addCurrent(-1)
		slog.Warn("dropped claimed job during shutdown", "service", a.service, "job", j.ID)
	}
}

func (a *agent) execute(ctx context.Context, fn registeredFunction, j jobEnvelope) invokeResult {
	plain, err := a.cipher.Decrypt(j.TargetArgs)
	if err != nil {
		return invokeResult{
			resultType: resultTypeRejection,
			payload:    fmt.Sprintf("arguments could not be decrypted: %v", err),
		}
	}
	return invoke(ctx, fn.handler, Args{raw: plain, codec: a.codec})
}

func (a *agent) postResult(ctx context.Context, j jobEnvelope, res invokeResult) {
	packed, err := a.codec.Marshal(res.payload)
	if err != nil {
		// Pack the failure itself so the job still settles.
		res.resultType = resultTypeRejection
		packed, err = a.codec.Marshal(fmt.Sprintf("result could not be encoded: %v", err))
		if err != nil {
			slog.Error("result encoding failed twice", "job", j.ID, "error", err)
			return
		}
	}
	sealed, err := a.cipher.Encrypt(packed)
	if err != nil {
		slog.Error("result encryption failed", "job", j.ID, "error", err)
		return
	}
	req := resultRequest{Result: sealed, ResultType: res.resultType}
	if res.elapsedMS > 0 || res.resultType == resultTypeResolution {
		elapsed := res.elapsedMS
		req.FunctionExecutionTime = &elapsed
	}
	if err := a.api.PersistResult(ctx, j.ID, req); err != nil {
		// The job will stall and the self-healer decides its fate.
		slog.Error("result delivery failed", "job", j.ID, "error", err)
	}
}

// Stop quits the loop: the in-flight poll aborts, queued handlers drain,
// and the call returns once the loop has fully exited.
func (a *agent) Stop() {
	a.quitRequested.Store(true)
	a.cancelPoll()
	a.queue.Quit()
	if !a.started.Load() {
		return
	}
	for !a.aborted.Load() {
		time.Sleep(quitSpinInterval)
	}
}

func (a *agent) SetConcurrency(n int) error {
	if n < 1 {
		return fmt.Errorf("op=worker.concurrency: must be at least 1, got %d", n)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.concurrency = n
	return nil
}

func (a *agent) freeCapacity() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.concurrency - a.current
}

func (a *agent) addCurrent(delta int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current += delta
}

func (a *agent) setPollCancel(cancel context.CancelFunc) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pollCancel = cancel
}

func (a *agent) cancelPoll() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pollCancel != nil {
		a.pollCancel()
	}
}

func (a *agent) pause(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
