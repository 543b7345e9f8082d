package sdk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const (
	pollerTick      = 100 * time.Millisecond
	rateLimitPause  = 5 * time.Second
	maxStatusCycles = 50
)

type pollOutcome struct {
	status statusEnvelope
	err    error
}

// resultsPoller multiplexes every outstanding Call onto one background loop
// that batches the status endpoint. The endpoint long-polls server side, so
// the tick only spaces consecutive requests; results still land the moment
// a job settles.
type resultsPoller struct {
	api *apiClient

	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	waiters     map[string][]chan pollOutcome
	errorCycles int

	startOnce sync.Once
	stopOnce  sync.Once
	started   bool
	doneCh    chan struct{}
}

func newResultsPoller(api *apiClient) *resultsPoller {
	ctx, cancel := context.WithCancel(context.Background())
	return &resultsPoller{
		api:     api,
		ctx:     ctx,
		cancel:  cancel,
		waiters: make(map[string][]chan pollOutcome),
		doneCh:  make(chan struct{}),
	}
}

// wait blocks until jobID settles or ctx expires. A deadline expiry maps to
// ErrJobTimeout; the job itself keeps running server side.
func (p *resultsPoller) wait(ctx context.Context, jobID string) (statusEnvelope, error) {
	ch := make(chan pollOutcome, 1)
	p.mu.Lock()
	p.waiters[jobID] = append(p.waiters[jobID], ch)
	p.mu.Unlock()
	p.start()

	select {
	case out := <-ch:
		return out.status, out.err
	case <-ctx.Done():
		p.drop(jobID, ch)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return statusEnvelope{}, fmt.Errorf("%w: job %s", ErrJobTimeout, jobID)
		}
		return statusEnvelope{}, ctx.Err()
	}
}

func (p *resultsPoller) start() {
	p.startOnce.Do(func() {
		p.mu.Lock()
		p.started = true
		p.mu.Unlock()
		go p.run()
	})
}

func (p *resultsPoller) run() {
	defer close(p.doneCh)
	t := time.NewTicker(pollerTick)
	defer t.Stop()
	for {
		select {
		case <-p.ctx.Done():
			return
		case <-t.C:
		}
		p.pollOnce()
	}
}

func (p *resultsPoller) pollOnce() {
	ids := p.pendingIDs()
	if len(ids) == 0 {
		return
	}
	statuses, err := p.api.JobStatuses(p.ctx, ids, longPollMillis)
	if err != nil {
		if p.ctx.Err() != nil {
			return
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusTooManyRequests {
			// Rate limited: back off without burning the error budget.
			select {
			case <-p.ctx.Done():
			case <-time.After(rateLimitPause):
			}
			return
		}
		p.mu.Lock()
		p.errorCycles++
		exhausted := p.errorCycles >= maxStatusCycles
		if exhausted {
			p.errorCycles = 0
		}
		p.mu.Unlock()
		if exhausted {
			slog.Warn("status polling gave up", "error", err)
			p.failAll(fmt.Errorf("%w: %v", ErrTooManyNetworkErrors, err))
		}
		return
	}
	p.mu.Lock()
	p.errorCycles = 0
	p.mu.Unlock()
	for _, st := range statuses {
		if st.terminal() {
			p.dispatch(st)
		}
	}
}

// pendingIDs snapshots up to one batch of waiter ids. Map order keeps the
// pick fair when more than a batch is outstanding.
func (p *resultsPoller) pendingIDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	ids := make([]string, 0, len(p.waiters))
	for id := range p.waiters {
		ids = append(ids, id)
		if len(ids) == statusBatchMax {
			break
		}
	}
	return ids
}

func (p *resultsPoller) dispatch(st statusEnvelope) {
	p.mu.Lock()
	chs := p.waiters[st.ID]
	delete(p.waiters, st.ID)
	p.mu.Unlock()
	for _, ch := range chs {
		ch <- pollOutcome{status: st}
	}
}

func (p *resultsPoller) failAll(err error) {
	p.mu.Lock()
	waiters := p.waiters
	p.waiters = make(map[string][]chan pollOutcome)
	p.mu.Unlock()
	for _, chs := range waiters {
		for _, ch := range chs {
			ch <- pollOutcome{err: err}
		}
	}
}

func (p *resultsPoller) drop(jobID string, ch chan pollOutcome) {
	p.mu.Lock()
	defer p.mu.Unlock()
	chs := p.waiters[jobID]
	for i, c := range chs {
		if c == ch {
			chs = append(chs[:i], chs[i+1:]...)
			break
		}
	}
	if len(chs) == 0 {
		delete(p.waiters, jobID)
	} else {
		p.waiters[jobID] = chs
	}
}

// Stop aborts the in-flight status request and waits for the loop to exit.
func (p *resultsPoller) Stop() {
	p.stopOnce.Do(func() {
		p.cancel()
		p.mu.Lock()
		started := p.started
		p.mu.Unlock()
		if started {
			<-p.doneCh
		}
	})
}
