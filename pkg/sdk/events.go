package sdk

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"
)

const (
	eventBufferMax     = 256
	eventFlushInterval = 5 * time.Second
	eventFlushTimeout  = 3 * time.Second
)

// eventRecorder buffers invocation timings and ships them to the control
// plane's ingest endpoint. Strictly best effort: a full buffer drops, a
// failed flush logs and moves on.
type eventRecorder struct {
	api       *apiClient
	machineID string

	mu  sync.Mutex
	buf []wireEvent

	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}
	doneCh    chan struct{}
	started   bool
}

func newEventRecorder(api *apiClient, machineID string) *eventRecorder {
	return &eventRecorder{
		api:       api,
		machineID: machineID,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

func (r *eventRecorder) recordInvocation(service, jobID, targetFn string, elapsedMS int64) {
	e := wireEvent{
		Type:      "functionInvocation",
		JobID:     jobID,
		Service:   service,
		MachineID: r.machineID,
		Meta: map[string]string{
			"targetFn":              targetFn,
			"functionExecutionTime": strconv.FormatInt(elapsedMS, 10),
		},
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.buf) >= eventBufferMax {
		return
	}
	r.buf = append(r.buf, e)
}

// start launches the flush loop once. Subsequent calls are no-ops.
func (r *eventRecorder) start() {
	r.startOnce.Do(func() {
		r.mu.Lock()
		r.started = true
		r.mu.Unlock()
		go r.run()
	})
}

func (r *eventRecorder) run() {
	defer close(r.doneCh)
	t := time.NewTicker(eventFlushInterval)
	defer t.Stop()
	for {
		select {
		case <-r.stopCh:
			r.flush()
			return
		case <-t.C:
			r.flush()
		}
	}
}

func (r *eventRecorder) flush() {
	r.mu.Lock()
	batch := r.buf
	r.buf = nil
	r.mu.Unlock()
	if len(batch) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), eventFlushTimeout)
	defer cancel()
	if err := r.api.IngestEvents(ctx, batch); err != nil {
		slog.Debug("event flush failed", "count", len(batch), "error", err)
	}
}

// stop ends the flush loop after one final flush.
func (r *eventRecorder) stop() {
	r.stopOnce.Do(func() {
		r.mu.Lock()
		started := r.started
		r.mu.Unlock()
		close(r.stopCh)
		if started {
			<-r.doneCh
		}
	})
}
