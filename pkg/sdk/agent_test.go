package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlane is a minimal control plane for SDK tests: one scripted claim
// batch, a status table for pollers and a ledger of persisted results.
type fakePlane struct {
	t   *testing.T
	srv *httptest.Server

	mu          sync.Mutex
	claims      []jobEnvelope
	claimed     bool
	claimBodies []nextJobsRequest
	createBody  *createJobRequest
	createdID   string
	statuses    map[string]statusEnvelope
	results     map[string]resultRequest
	pollStatus  int

	resultCh chan string
}

func newFakePlane(t *testing.T) *fakePlane {
	t.Helper()
	p := &fakePlane{
		t:         t,
		createdID: "01CREATED",
		statuses:  make(map[string]statusEnvelope),
		results:   make(map[string]resultRequest),
		resultCh:  make(chan string, 16),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /jobs-request", p.handleNextJobs)
	mux.HandleFunc("POST /jobs", p.handleCreateJob)
	mux.HandleFunc("POST /jobs/{id}/result", p.handlePersistResult)
	mux.HandleFunc("POST /jobs-statuses", p.handleStatuses)
	mux.HandleFunc("POST /metrics", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	p.srv = httptest.NewServer(mux)
	t.Cleanup(p.srv.Close)
	return p
}

func (p *fakePlane) handleNextJobs(w http.ResponseWriter, r *http.Request) {
	assert.NotEmpty(p.t, r.Header.Get("x-machine-id"))
	var req nextJobsRequest
	assert.NoError(p.t, json.NewDecoder(r.Body).Decode(&req))

	p.mu.Lock()
	p.claimBodies = append(p.claimBodies, req)
	status := p.pollStatus
	batch := []jobEnvelope{}
	if status == 0 && !p.claimed {
		batch = p.claims
		p.claimed = true
	}
	p.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"error":{"code":"unavailable","message":"scripted failure"}}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(batch)
}

func (p *fakePlane) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	assert.NoError(p.t, json.NewDecoder(r.Body).Decode(&req))
	p.mu.Lock()
	p.createBody = &req
	id := p.createdID
	p.mu.Unlock()
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"id": id})
}

func (p *fakePlane) handlePersistResult(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req resultRequest
	assert.NoError(p.t, json.NewDecoder(r.Body).Decode(&req))
	p.mu.Lock()
	p.results[id] = req
	p.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
	p.resultCh <- id
}

func (p *fakePlane) handleStatuses(w http.ResponseWriter, r *http.Request) {
	var req jobStatusesRequest
	assert.NoError(p.t, json.NewDecoder(r.Body).Decode(&req))
	p.mu.Lock()
	out := make([]statusEnvelope, 0, len(req.JobIDs))
	for _, id := range req.JobIDs {
		if env, ok := p.statuses[id]; ok {
			out = append(out, env)
		}
	}
	p.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func (p *fakePlane) setStatus(env statusEnvelope) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statuses[env.ID] = env
}

func (p *fakePlane) result(id string) (resultRequest, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	req, ok := p.results[id]
	return req, ok
}

func (p *fakePlane) claimCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.claimBodies)
}

func (p *fakePlane) awaitResult(t *testing.T, id string) resultRequest {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case got := <-p.resultCh:
			if got == id {
				req, ok := p.result(id)
				require.True(t, ok)
				return req
			}
		case <-deadline:
			t.Fatalf("no result for job %s", id)
		}
	}
}

func newTestClient(t *testing.T, p *fakePlane, opts Options) *Client {
	t.Helper()
	// Keep ambient deployment configuration out of the tests.
	t.Setenv(EnvDeploymentProvider, "")
	t.Setenv(EnvDeploymentID, "")
	opts.Endpoint = p.srv.URL
	if opts.APISecret == "" {
		opts.APISecret = "sk_test_secret"
	}
	if opts.MachineID == "" {
		opts.MachineID = "machine-test"
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = p.srv.Client()
	}
	c, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

// newTestAgent builds the agent behind a service with a fast throttle so
// tests iterate the poll loop quickly.
func newTestAgent(t *testing.T, c *Client, service string) *agent {
	t.Helper()
	c.mu.Lock()
	def := c.definitionLocked(service)
	c.mu.Unlock()
	a := newAgent(c, service, &def, func(fn string) (registeredFunction, bool) {
		return c.lookup(service, fn)
	})
	a.throttle = 20 * time.Millisecond
	return a
}

func TestAgentExecutesClaimedJob(t *testing.T) {
	plane := newFakePlane(t)
	c := newTestClient(t, plane, Options{})

	svc := c.Service("orders")
	type greetArgs struct {
		Name string `msgpack:"name"`
	}
	require.NoError(t, svc.Register("greet", func(_ context.Context, args Args) (any, error) {
		var in greetArgs
		if err := args.Decode(&in); err != nil {
			return nil, err
		}
		return map[string]string{"greeting": "hello " + in.Name}, nil
	}, WithRateLimit("minute", 60)))

	packed, err := c.codec.Marshal(greetArgs{Name: "ada"})
	require.NoError(t, err)
	plane.claims = []jobEnvelope{{ID: "01JOB", TargetFn: "greet", TargetArgs: packed}}

	a := newTestAgent(t, c, "orders")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runDone := make(chan error, 1)
	go func() { runDone <- a.Run(ctx) }()

	res := plane.awaitResult(t, "01JOB")
	assert.Equal(t, resultTypeResolution, res.ResultType)
	require.NotNil(t, res.FunctionExecutionTime)

	var out map[string]string
	require.NoError(t, c.codec.Unmarshal(res.Result, &out))
	assert.Equal(t, "hello ada", out["greeting"])

	cancel()
	require.NoError(t, <-runDone)

	plane.mu.Lock()
	defer plane.mu.Unlock()
	require.NotEmpty(t, plane.claimBodies)
	first := plane.claimBodies[0]
	assert.Equal(t, "orders", first.Service)
	assert.Equal(t, maxPollLimit, first.Limit)
	require.NotNil(t, first.Definition)
	assert.Equal(t, "orders", first.Definition.Name)
	require.Len(t, first.Definition.Functions, 1)
	assert.Equal(t, "greet", first.Definition.Functions[0].Name)
	require.NotNil(t, first.Definition.Functions[0].Rate)
	assert.Equal(t, "minute", first.Definition.Functions[0].Rate.Per)
	assert.Equal(t, 60, first.Definition.Functions[0].Rate.Limit)
}

func TestAgentRejectsUnknownFunction(t *testing.T) {
	plane := newFakePlane(t)
	c := newTestClient(t, plane, Options{})
	svc := c.Service("orders")
	require.NoError(t, svc.Register("greet", func(_ context.Context, _ Args) (any, error) {
		return nil, nil
	}))
	plane.claims = []jobEnvelope{{ID: "01GHOST", TargetFn: "ghost"}}

	a := newTestAgent(t, c, "orders")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runDone := make(chan error, 1)
	go func() { runDone <- a.Run(ctx) }()

	res := plane.awaitResult(t, "01GHOST")
	assert.Equal(t, resultTypeRejection, res.ResultType)
	assert.Nil(t, res.FunctionExecutionTime)

	var msg string
	require.NoError(t, c.codec.Unmarshal(res.Result, &msg))
	assert.Equal(t, "Function was not registered", msg)

	cancel()
	require.NoError(t, <-runDone)
}

func TestAgentStopsWhenUnauthorized(t *testing.T) {
	plane := newFakePlane(t)
	plane.pollStatus = http.StatusUnauthorized
	c := newTestClient(t, plane, Options{})
	svc := c.Service("orders")
	require.NoError(t, svc.Register("noop", func(_ context.Context, _ Args) (any, error) { return nil, nil }))

	a := newTestAgent(t, c, "orders")
	err := a.Run(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, plane.claimCount())
}

func TestAgentQuitsAfterConsecutivePollErrors(t *testing.T) {
	plane := newFakePlane(t)
	plane.pollStatus = http.StatusInternalServerError
	c := newTestClient(t, plane, Options{})
	svc := c.Service("orders")
	require.NoError(t, svc.Register("noop", func(_ context.Context, _ Args) (any, error) { return nil, nil }))

	a := newTestAgent(t, c, "orders")
	a.throttle = 5 * time.Millisecond
	err := a.Run(context.Background())
	require.ErrorIs(t, err, ErrTooManyNetworkErrors)
	assert.Equal(t, maxConsecutivePollErrors, plane.claimCount())
}

func TestAgentIdleShutdown(t *testing.T) {
	plane := newFakePlane(t)
	c := newTestClient(t, plane, Options{})
	svc := c.Service("orders")
	require.NoError(t, svc.Register("noop", func(_ context.Context, _ Args) (any, error) { return nil, nil }))

	a := newTestAgent(t, c, "orders")
	a.throttle = 5 * time.Millisecond
	a.maxIdleCycles = 2
	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, 2, plane.claimCount())
}

func TestAgentPollCarriesDeploymentID(t *testing.T) {
	plane := newFakePlane(t)
	c := newTestClient(t, plane, Options{DeploymentID: "01DEPLOY"})
	svc := c.Service("orders")
	require.NoError(t, svc.Register("noop", func(_ context.Context, _ Args) (any, error) { return nil, nil }))

	a := newTestAgent(t, c, "orders")
	a.throttle = 5 * time.Millisecond
	a.maxIdleCycles = 1
	require.NoError(t, a.Run(context.Background()))

	plane.mu.Lock()
	defer plane.mu.Unlock()
	require.NotEmpty(t, plane.claimBodies)
	assert.Equal(t, "01DEPLOY", plane.claimBodies[0].DeploymentID)
}

func TestAgentStopDrainsInFlightWork(t *testing.T) {
	plane := newFakePlane(t)
	c := newTestClient(t, plane, Options{})
	svc := c.Service("orders")

	started := make(chan struct{})
	release := make(chan struct{})
	require.NoError(t, svc.Register("slow", func(_ context.Context, _ Args) (any, error) {
		close(started)
		<-release
		return "done", nil
	}))
	plane.claims = []jobEnvelope{{ID: "01SLOW", TargetFn: "slow"}}

	a := newTestAgent(t, c, "orders")
	runDone := make(chan error, 1)
	go func() { runDone <- a.Run(context.Background()) }()

	<-started
	go func() {
		time.Sleep(100 * time.Millisecond)
		close(release)
	}()
	a.Stop()

	require.NoError(t, <-runDone)
	res, ok := plane.result("01SLOW")
	require.True(t, ok, "result must land even though the worker quit")
	assert.Equal(t, resultTypeResolution, res.ResultType)
}

func TestAgentConcurrencyGovernsClaimLimit(t *testing.T) {
	plane := newFakePlane(t)
	c := newTestClient(t, plane, Options{Concurrency: 5})
	svc := c.Service("orders")
	require.NoError(t, svc.Register("noop", func(_ context.Context, _ Args) (any, error) { return nil, nil }))

	a := newTestAgent(t, c, "orders")
	a.throttle = 5 * time.Millisecond
	a.maxIdleCycles = 1
	require.NoError(t, a.Run(context.Background()))

	plane.mu.Lock()
	defer plane.mu.Unlock()
	require.NotEmpty(t, plane.claimBodies)
	// Half the free concurrency, rounded up.
	assert.Equal(t, 3, plane.claimBodies[0].Limit)
}

func TestAgentSetConcurrency(t *testing.T) {
	plane := newFakePlane(t)
	c := newTestClient(t, plane, Options{})
	a := newTestAgent(t, c, "orders")

	require.Error(t, a.SetConcurrency(0))
	require.NoError(t, a.SetConcurrency(7))
	assert.Equal(t, 7, a.freeCapacity())
}
