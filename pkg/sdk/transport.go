package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	// maxPollLimit matches the cap the control plane enforces on a single
	// claim batch.
	maxPollLimit = 50
	// statusBatchMax matches the cap on one job-statuses request.
	statusBatchMax = 100
	// longPollMillis asks the status endpoint to hold the request until a
	// job turns terminal or the window lapses.
	longPollMillis = 20000

	maxResponseBytes = 10 << 20
)

// Wire shapes of the control-plane HTTP API. Payload byte slices ride as
// base64 strings, which encoding/json handles on both ends.

type callConfig struct {
	IdempotencyKey               string `json:"idempotencyKey,omitempty"`
	CacheKey                     string `json:"cacheKey,omitempty"`
	CacheTTLSeconds              int    `json:"cacheTtlSeconds,omitempty"`
	RetryCountOnStall            *int   `json:"retryCountOnStall,omitempty"`
	TimeoutSeconds               int    `json:"timeoutSeconds,omitempty"`
	PredictiveRetriesOnRejection bool   `json:"predictiveRetriesOnRejection,omitempty"`
	ExecutionID                  string `json:"executionId,omitempty"`
}

type createJobRequest struct {
	Service    string      `json:"service"`
	TargetFn   string      `json:"targetFn"`
	TargetArgs []byte      `json:"targetArgs"`
	CallConfig *callConfig `json:"callConfig,omitempty"`
}

type createJobResponse struct {
	ID string `json:"id"`
}

type nextJobsRequest struct {
	Service      string             `json:"service"`
	Limit        int                `json:"limit,omitempty"`
	DeploymentID string             `json:"deploymentId,omitempty"`
	Definition   *serviceDefinition `json:"definition,omitempty"`
}

type serviceDefinition struct {
	Name      string               `json:"name"`
	Functions []functionDefinition `json:"functions,omitempty"`
}

type functionDefinition struct {
	Name string      `json:"name"`
	Rate *RateConfig `json:"rate,omitempty"`
}

// RateConfig caps how often the control plane hands out a function.
// Per is "minute" or "hour".
type RateConfig struct {
	Per   string `json:"per"`
	Limit int    `json:"limit"`
}

type jobEnvelope struct {
	ID         string `json:"id"`
	TargetFn   string `json:"targetFn"`
	TargetArgs []byte `json:"targetArgs"`
}

type resultRequest struct {
	Result                []byte `json:"result"`
	ResultType            string `json:"resultType"`
	FunctionExecutionTime *int64 `json:"functionExecutionTime,omitempty"`
}

type jobStatusesRequest struct {
	JobIDs []string `json:"jobIds"`
	TTLMs  int      `json:"ttlMs,omitempty"`
}

type statusEnvelope struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	Result     []byte `json:"result,omitempty"`
	ResultType string `json:"resultType,omitempty"`
}

type wireEvent struct {
	Type      string            `json:"type"`
	JobID     string            `json:"jobId,omitempty"`
	Service   string            `json:"service,omitempty"`
	MachineID string            `json:"machineId,omitempty"`
	Meta      map[string]string `json:"meta,omitempty"`
}

type ingestEventsRequest struct {
	Events []wireEvent `json:"events"`
}

type apiErrorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// terminal mirrors the control plane's notion of a settled job: success, or
// a failure that already carries its final rejection payload. A failure
// without a result type is a stall the self-healer may still retry.
func (s statusEnvelope) terminal() bool {
	return s.Status == "success" || (s.Status == "failure" && s.ResultType != "")
}

// apiClient is the thin HTTP binding to the control plane. Methods that
// mutate state retry transient failures with exponential backoff; the poll
// loops layer their own error accounting on top of the bare calls.
type apiClient struct {
	endpoint  string
	secret    string
	machineID string
	hc        *http.Client
}

func newAPIClient(endpoint, secret, machineID string, hc *http.Client) *apiClient {
	if hc == nil {
		transport := otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return "sdk." + r.Method + " " + r.URL.Path
			}),
		)
		hc = &http.Client{Timeout: 30 * time.Second, Transport: transport}
	}
	return &apiClient{endpoint: endpoint, secret: secret, machineID: machineID, hc: hc}
}

func (c *apiClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("op=api.encode: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return fmt.Errorf("op=api.request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secret)
	req.Header.Set("Content-Type", "application/json")
	if c.machineID != "" {
		req.Header.Set("x-machine-id", c.machineID)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("op=api.call: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("op=api.read: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var envelope apiErrorEnvelope
		if jsonErr := json.Unmarshal(raw, &envelope); jsonErr == nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		return apiErr
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("op=api.decode: %w", err)
		}
	}
	return nil
}

// doRetry wraps do with backoff. Non-retryable API statuses abort
// immediately; everything else backs off until the context or the elapsed
// budget runs out.
func (c *apiClient) doRetry(ctx context.Context, method, path string, in, out any) error {
	op := func() error {
		err := c.do(ctx, method, path, in, out)
		if err == nil {
			return nil
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) && !retryableStatus(apiErr.Status) {
			return backoff.Permanent(err)
		}
		return err
	}
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = 250 * time.Millisecond
	expo.MaxInterval = 5 * time.Second
	expo.MaxElapsedTime = 30 * time.Second
	return backoff.Retry(op, backoff.WithContext(expo, ctx))
}

func (c *apiClient) CreateJob(ctx context.Context, req createJobRequest) (string, error) {
	var resp createJobResponse
	if err := c.doRetry(ctx, http.MethodPost, "/jobs", req, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *apiClient) NextJobs(ctx context.Context, req nextJobsRequest) ([]jobEnvelope, error) {
	var jobs []jobEnvelope
	if err := c.do(ctx, http.MethodPost, "/jobs-request", req, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *apiClient) PersistResult(ctx context.Context, jobID string, req resultRequest) error {
	return c.doRetry(ctx, http.MethodPost, "/jobs/"+jobID+"/result", req, nil)
}

func (c *apiClient) JobStatuses(ctx context.Context, ids []string, ttlMs int) ([]statusEnvelope, error) {
	var statuses []statusEnvelope
	req := jobStatusesRequest{JobIDs: ids, TTLMs: ttlMs}
	if err := c.do(ctx, http.MethodPost, "/jobs-statuses", req, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

func (c *apiClient) IngestEvents(ctx context.Context, events []wireEvent) error {
	return c.doRetry(ctx, http.MethodPost, "/metrics", ingestEventsRequest{Events: events}, nil)
}
