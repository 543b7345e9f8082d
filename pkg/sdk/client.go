// Package sdk embeds differential workers and callers into Go programs.
//
// A Client binds to one cluster on the control plane. Functions register
// under named services; Service.Start turns the process into a worker that
// polls for jobs, while Call and Background submit work from any process
// holding the cluster secret. Arguments and results travel as opaque
// payloads packed by the client codec and, when keys are configured,
// sealed with AES-256-GCM end to end.
package sdk

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Environment fallbacks, typically injected by the deployment provider.
const (
	EnvAPISecret          = "DIFFERENTIAL_API_SECRET"
	EnvDeploymentID       = "DIFFERENTIAL_DEPLOYMENT_ID"
	EnvDeploymentProvider = "DIFFERENTIAL_DEPLOYMENT_PROVIDER"
)

const serverlessProvider = "lambda"

// Handler executes one job. The returned value is packed with the client
// codec and delivered to the caller; a non-nil error settles the job as a
// rejection carrying the error text.
type Handler func(ctx context.Context, args Args) (any, error)

// Args carries the packed arguments of one job.
type Args struct {
	raw   []byte
	codec Codec
}

// Decode unpacks the arguments into v.
func (a Args) Decode(v any) error {
	if len(a.raw) == 0 {
		return nil
	}
	return a.codec.Unmarshal(a.raw, v)
}

// Raw returns the packed argument bytes untouched.
func (a Args) Raw() []byte { return a.raw }

// Options configures a Client.
type Options struct {
	// Endpoint is the control-plane base URL, e.g. "https://api.differential.dev".
	Endpoint string
	// APISecret authenticates against one cluster. Falls back to
	// DIFFERENTIAL_API_SECRET.
	APISecret string
	// MachineID identifies this worker instance in pings and events. A
	// random id is generated when empty.
	MachineID string
	// DeploymentID pins polls to one deployment. Falls back to
	// DIFFERENTIAL_DEPLOYMENT_ID.
	DeploymentID string
	// Codec packs arguments and results. MsgpackCodec when nil.
	Codec Codec
	// EncryptionKeys seals payloads with AES-256-GCM. Every key must be
	// exactly 32 bytes; the first encrypts, all are tried on decrypt.
	EncryptionKeys [][]byte
	// Concurrency caps in-flight handlers per started service. Defaults
	// to 100.
	Concurrency int
	// HTTPClient overrides the default traced client.
	HTTPClient *http.Client
}

type registeredFunction struct {
	service string
	handler Handler
	rate    *RateConfig
}

// Client talks to one differential cluster.
type Client struct {
	api    *apiClient
	codec  Codec
	cipher *payloadCipher
	poller *resultsPoller
	events *eventRecorder

	machineID     string
	deploymentID  string
	maxIdleCycles int
	concurrency   int

	mu       sync.Mutex
	registry map[string]registeredFunction
	services map[string]*Service
}

// New builds a Client. The endpoint and an API secret (directly or via
// environment) are required.
func New(opts Options) (*Client, error) {
	endpoint := strings.TrimSuffix(strings.TrimSpace(opts.Endpoint), "/")
	if endpoint == "" {
		return nil, fmt.Errorf("op=client.new: endpoint is required")
	}
	secret := opts.APISecret
	if secret == "" {
		secret = os.Getenv(EnvAPISecret)
	}
	if secret == "" {
		return nil, fmt.Errorf("op=client.new: api secret is required (set %s)", EnvAPISecret)
	}
	cipher, err := newPayloadCipher(opts.EncryptionKeys)
	if err != nil {
		return nil, err
	}
	codec := opts.Codec
	if codec == nil {
		codec = MsgpackCodec{}
	}
	machineID := opts.MachineID
	if machineID == "" {
		machineID = uuid.NewString()
	}
	deploymentID := opts.DeploymentID
	if deploymentID == "" {
		deploymentID = os.Getenv(EnvDeploymentID)
	}
	maxIdleCycles := 0
	if os.Getenv(EnvDeploymentProvider) == serverlessProvider {
		// Serverless workers exit quickly when the backlog is empty;
		// the wake-up notifier revives them on demand.
		maxIdleCycles = serverlessIdleCycles
	}

	api := newAPIClient(endpoint, secret, machineID, opts.HTTPClient)
	return &Client{
		api:           api,
		codec:         codec,
		cipher:        cipher,
		poller:        newResultsPoller(api),
		events:        newEventRecorder(api, machineID),
		machineID:     machineID,
		deploymentID:  deploymentID,
		maxIdleCycles: maxIdleCycles,
		concurrency:   opts.Concurrency,
		registry:      make(map[string]registeredFunction),
		services:      make(map[string]*Service),
	}, nil
}

// MachineID returns the worker instance id this client reports.
func (c *Client) MachineID() string { return c.machineID }

// Service returns the named service, creating it on first use.
func (c *Client) Service(name string) *Service {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.services[name]; ok {
		return s
	}
	s := &Service{name: name, c: c}
	c.services[name] = s
	return s
}

// Close releases the client's background machinery. Stop started services
// first; Close does not drain them.
func (c *Client) Close() {
	c.poller.Stop()
	c.events.stop()
}

// definitionLocked projects the registered functions of one service into
// the shape advertised on polls. Callers hold c.mu.
func (c *Client) definitionLocked(service string) serviceDefinition {
	def := serviceDefinition{Name: service}
	for name, fn := range c.registry {
		if fn.service != service {
			continue
		}
		def.Functions = append(def.Functions, functionDefinition{Name: name, Rate: fn.rate})
	}
	sort.Slice(def.Functions, func(i, j int) bool { return def.Functions[i].Name < def.Functions[j].Name })
	return def
}

func (c *Client) lookup(service, targetFn string) (registeredFunction, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn, ok := c.registry[targetFn]
	if !ok || fn.service != service {
		return registeredFunction{}, false
	}
	return fn, true
}

func (c *Client) decodeOutcome(st statusEnvelope, out any) error {
	if st.ResultType == resultTypeRejection {
		return &RejectionError{Message: c.rejectionText(st.Result)}
	}
	plain, err := c.cipher.Decrypt(st.Result)
	if err != nil {
		return fmt.Errorf("op=client.result: %w", err)
	}
	if out == nil || len(plain) == 0 {
		return nil
	}
	if err := c.codec.Unmarshal(plain, out); err != nil {
		return fmt.Errorf("op=client.result: %w", err)
	}
	return nil
}

// rejectionText unpacks a rejection payload. Worker rejections are packed
// strings; the control plane's synthetic stall payloads are plain text, so
// anything that fails to unpack is surfaced verbatim.
func (c *Client) rejectionText(raw []byte) string {
	plain, err := c.cipher.Decrypt(raw)
	if err != nil {
		plain = raw
	}
	var msg string
	if err := c.codec.Unmarshal(plain, &msg); err == nil && msg != "" {
		return msg
	}
	return string(plain)
}

// Service groups functions under one name. Zero services are valid callers;
// only services with registered functions can Start.
type Service struct {
	name string
	c    *Client

	mu          sync.Mutex
	agent       *agent
	concurrency int
}

// RegisterOption tunes one registered function.
type RegisterOption func(*registeredFunction)

// WithRateLimit caps cluster-wide executions of the function. Per is
// "minute" or "hour".
func WithRateLimit(per string, limit int) RegisterOption {
	return func(f *registeredFunction) {
		f.rate = &RateConfig{Per: per, Limit: limit}
	}
}

// Register adds a function to the service. Function names are unique across
// the whole client, not just the service, so callers can address them
// without ambiguity.
func (s *Service) Register(name string, h Handler, opts ...RegisterOption) error {
	if name == "" {
		return fmt.Errorf("op=worker.register: function name is required")
	}
	if h == nil {
		return fmt.Errorf("op=worker.register: handler is required")
	}
	s.mu.Lock()
	started := s.agent != nil
	s.mu.Unlock()
	if started {
		return fmt.Errorf("op=worker.register: service %q already started", s.name)
	}
	s.c.mu.Lock()
	defer s.c.mu.Unlock()
	if existing, ok := s.c.registry[name]; ok {
		return fmt.Errorf("op=worker.register: function %q already registered for service %q", name, existing.service)
	}
	fn := registeredFunction{service: s.name, handler: h}
	for _, o := range opts {
		o(&fn)
	}
	s.c.registry[name] = fn
	return nil
}

// Start turns the process into a worker for this service and blocks until
// the context ends, Stop is called, the secret is revoked, or polling keeps
// failing. In-flight handlers drain before it returns.
func (s *Service) Start(ctx context.Context) error {
	s.c.mu.Lock()
	def := s.c.definitionLocked(s.name)
	s.c.mu.Unlock()
	if len(def.Functions) == 0 {
		return fmt.Errorf("op=worker.start: service %q has no registered functions", s.name)
	}

	s.mu.Lock()
	if s.agent != nil {
		s.mu.Unlock()
		return fmt.Errorf("op=worker.start: service %q already started", s.name)
	}
	lookup := func(targetFn string) (registeredFunction, bool) {
		return s.c.lookup(s.name, targetFn)
	}
	a := newAgent(s.c, s.name, &def, lookup)
	if s.concurrency > 0 {
		a.concurrency = s.concurrency
	}
	s.agent = a
	s.mu.Unlock()

	s.c.events.start()
	return a.Run(ctx)
}

// Stop quits a started worker: the in-flight poll aborts, claimed jobs
// drain, and the call returns once the poll loop has exited.
func (s *Service) Stop() {
	s.mu.Lock()
	a := s.agent
	s.mu.Unlock()
	if a != nil {
		a.Stop()
	}
}

// SetConcurrency retunes the in-flight handler cap, before or after Start.
func (s *Service) SetConcurrency(n int) error {
	if n < 1 {
		return fmt.Errorf("op=worker.concurrency: must be at least 1, got %d", n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.concurrency = n
	if s.agent != nil {
		return s.agent.SetConcurrency(n)
	}
	return nil
}

// CallOption tunes one submission.
type CallOption func(*callConfig)

// WithIdempotencyKey makes resubmissions with the same key return the
// original job instead of creating a new one.
func WithIdempotencyKey(key string) CallOption {
	return func(cfg *callConfig) { cfg.IdempotencyKey = key }
}

// WithCache serves repeat submissions of the same key from the cached
// result while it is fresh.
func WithCache(key string, ttl time.Duration) CallOption {
	return func(cfg *callConfig) {
		cfg.CacheKey = key
		cfg.CacheTTLSeconds = int(ttl / time.Second)
	}
}

// WithTimeout bounds one execution attempt before the job counts as stalled.
func WithTimeout(d time.Duration) CallOption {
	return func(cfg *callConfig) { cfg.TimeoutSeconds = int(d / time.Second) }
}

// WithRetryCountOnStall sets how many times a stalled run is re-queued.
// Zero disables retries.
func WithRetryCountOnStall(n int) CallOption {
	return func(cfg *callConfig) { cfg.RetryCountOnStall = &n }
}

// WithExecutionID scopes job dedup to one workflow execution.
func WithExecutionID(id string) CallOption {
	return func(cfg *callConfig) { cfg.ExecutionID = id }
}

// WithPredictiveRetries lets the control plane decide whether a rejection
// looks transient and is worth re-running.
func WithPredictiveRetries() CallOption {
	return func(cfg *callConfig) { cfg.PredictiveRetriesOnRejection = true }
}

// Call submits a job and blocks until its result arrives or ctx expires.
// Worker rejections come back as *RejectionError; a context deadline maps
// to ErrJobTimeout while the job keeps running server side.
func (s *Service) Call(ctx context.Context, targetFn string, args, out any, opts ...CallOption) error {
	id, err := s.Background(ctx, targetFn, args, opts...)
	if err != nil {
		return err
	}
	st, err := s.c.poller.wait(ctx, id)
	if err != nil {
		return err
	}
	return s.c.decodeOutcome(st, out)
}

// Background submits a job and returns its id without waiting.
func (s *Service) Background(ctx context.Context, targetFn string, args any, opts ...CallOption) (string, error) {
	if targetFn == "" {
		return "", fmt.Errorf("op=client.call: target function is required")
	}
	packed, err := s.c.codec.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("op=client.call: %w", err)
	}
	sealed, err := s.c.cipher.Encrypt(packed)
	if err != nil {
		return "", fmt.Errorf("op=client.call: %w", err)
	}
	var cfg *callConfig
	if len(opts) > 0 {
		cfg = &callConfig{}
		for _, o := range opts {
			o(cfg)
		}
	}
	id, err := s.c.api.CreateJob(ctx, createJobRequest{
		Service:    s.name,
		TargetFn:   targetFn,
		TargetArgs: sealed,
		CallConfig: cfg,
	})
	if err != nil {
		return "", fmt.Errorf("op=client.call: %w", err)
	}
	return id, nil
}
