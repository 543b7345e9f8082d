package sdk

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	resultTypeResolution = "resolution"
	resultTypeRejection  = "rejection"
)

var errQueueClosed = errors.New("task queue closed")

// taskQueue tracks in-flight handler executions so a quitting worker can
// drain them. Admission is bounded upstream: the poll loop only claims as
// many jobs as it has free concurrency.
type taskQueue struct {
	mu      sync.Mutex
	wg      sync.WaitGroup
	closed  bool
	running int
}

func (q *taskQueue) Add(run func()) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return errQueueClosed
	}
	q.running++
	q.wg.Add(1)
	q.mu.Unlock()
	go func() {
		defer func() {
			q.mu.Lock()
			q.running--
			q.mu.Unlock()
			q.wg.Done()
		}()
		run()
	}()
	return nil
}

func (q *taskQueue) Running() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.running
}

// Quit closes admission and waits for every in-flight task. Safe to call
// more than once.
func (q *taskQueue) Quit() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.wg.Wait()
}

// invokeResult is the outcome of one handler execution, ready to be packed
// into a result payload.
type invokeResult struct {
	resultType string
	payload    any
	elapsedMS  int64
}

// invoke runs a handler with panic isolation. A panic lands as a rejection
// so the job settles instead of stalling until the timeout sweep.
func invoke(ctx context.Context, h Handler, args Args) (res invokeResult) {
	start := time.Now()
	defer func() {
		res.elapsedMS = time.Since(start).Milliseconds()
		if r := recover(); r != nil {
			res.resultType = resultTypeRejection
			res.payload = fmt.Sprintf("handler panic: %v", r)
		}
	}()
	out, err := h(ctx, args)
	if err != nil {
		return invokeResult{resultType: resultTypeRejection, payload: err.Error()}
	}
	return invokeResult{resultType: resultTypeResolution, payload: out}
}
