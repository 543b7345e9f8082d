package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statusServer serves /jobs-statuses from a mutable status table.
type statusServer struct {
	t        *testing.T
	mu       sync.Mutex
	statuses map[string]statusEnvelope
	calls    atomic.Int32
}

func newStatusServer(t *testing.T) *statusServer {
	return &statusServer{t: t, statuses: make(map[string]statusEnvelope)}
}

func (s *statusServer) set(env statusEnvelope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[env.ID] = env
}

func (s *statusServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		var req jobStatusesRequest
		assert.NoError(s.t, json.NewDecoder(r.Body).Decode(&req))
		s.mu.Lock()
		out := make([]statusEnvelope, 0, len(req.JobIDs))
		for _, id := range req.JobIDs {
			if env, ok := s.statuses[id]; ok {
				out = append(out, env)
			}
		}
		s.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	}
}

func startStatusServer(t *testing.T) (*statusServer, *resultsPoller) {
	t.Helper()
	ss := newStatusServer(t)
	srv := httptest.NewServer(ss.handler())
	t.Cleanup(srv.Close)
	p := newResultsPoller(newAPIClient(srv.URL, "sk", "m", srv.Client()))
	t.Cleanup(p.Stop)
	return ss, p
}

func TestResultsPollerDeliversTerminalStatus(t *testing.T) {
	ss, p := startStatusServer(t)
	ss.set(statusEnvelope{ID: "01A", Status: "running"})

	go func() {
		time.Sleep(250 * time.Millisecond)
		ss.set(statusEnvelope{ID: "01A", Status: "success", Result: []byte("done")})
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	st, err := p.wait(ctx, "01A")
	require.NoError(t, err)
	assert.Equal(t, "success", st.Status)
	assert.Equal(t, []byte("done"), st.Result)
	assert.GreaterOrEqual(t, ss.calls.Load(), int32(2))
}

func TestResultsPollerIgnoresRetryableStalls(t *testing.T) {
	ss, p := startStatusServer(t)
	// A stall without a rejection payload may still be retried; the poller
	// must keep waiting for the real outcome.
	ss.set(statusEnvelope{ID: "01B", Status: "failure"})

	go func() {
		time.Sleep(250 * time.Millisecond)
		ss.set(statusEnvelope{ID: "01B", Status: "failure", ResultType: "rejection", Result: []byte("gave up")})
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	st, err := p.wait(ctx, "01B")
	require.NoError(t, err)
	assert.Equal(t, "rejection", st.ResultType)
}

func TestResultsPollerTimeoutMapsToErrJobTimeout(t *testing.T) {
	ss, p := startStatusServer(t)
	ss.set(statusEnvelope{ID: "01C", Status: "running"})

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	_, err := p.wait(ctx, "01C")
	require.ErrorIs(t, err, ErrJobTimeout)

	// The abandoned waiter must not leak.
	p.mu.Lock()
	_, leaked := p.waiters["01C"]
	p.mu.Unlock()
	assert.False(t, leaked)
}

func TestResultsPollerFansOutToDuplicateWaiters(t *testing.T) {
	ss, p := startStatusServer(t)
	ss.set(statusEnvelope{ID: "01D", Status: "success", Result: []byte("shared")})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	results := make([]statusEnvelope, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = p.wait(ctx, "01D")
		}(i)
	}
	wg.Wait()

	for i := 0; i < 2; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, []byte("shared"), results[i].Result)
	}
}

func TestResultsPollerFailsWaitersAfterErrorBudget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	p := newResultsPoller(newAPIClient(srv.URL, "sk", "m", srv.Client()))
	t.Cleanup(p.Stop)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_, err := p.wait(ctx, "01E")
	require.ErrorIs(t, err, ErrTooManyNetworkErrors)
}

func TestResultsPollerStopWithoutStart(t *testing.T) {
	p := newResultsPoller(newAPIClient("http://127.0.0.1:0", "sk", "m", nil))
	p.Stop() // must not hang
}
