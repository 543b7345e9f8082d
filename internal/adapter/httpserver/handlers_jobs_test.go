package httpserver_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpserver "github.com/differentialHQ/differential/internal/adapter/httpserver"
	"github.com/differentialHQ/differential/internal/adapter/provider"
	"github.com/differentialHQ/differential/internal/config"
	"github.com/differentialHQ/differential/internal/domain"
	"github.com/differentialHQ/differential/internal/domain/mocks"
	"github.com/differentialHQ/differential/internal/usecase"
)

type serverDeps struct {
	jobs     *mocks.MockJobRepository
	machines *mocks.MockMachineRepository
	services *mocks.MockServiceRepository
	clusters *mocks.MockClusterRepository
	deploys  *mocks.MockDeploymentRepository
	blobs    *mocks.MockBlobStore
	events   *mocks.MockEventSink
	provider *provider.Mock
}

func newTestServer(t *testing.T) (*httpserver.Server, *serverDeps) {
	t.Helper()
	d := &serverDeps{
		jobs:     mocks.NewMockJobRepository(t),
		machines: mocks.NewMockMachineRepository(t),
		services: mocks.NewMockServiceRepository(t),
		clusters: mocks.NewMockClusterRepository(t),
		deploys:  mocks.NewMockDeploymentRepository(t),
		blobs:    mocks.NewMockBlobStore(t),
		events:   mocks.NewMockEventSink(t),
		provider: provider.NewMock(),
	}
	cfg := config.Config{Port: 4000, AppEnv: "test"}
	srv := httpserver.NewServer(cfg,
		usecase.NewAdmissionService(d.jobs, d.services, d.events, nil, 30),
		usecase.NewDispatchService(d.jobs, d.machines, d.services, d.events),
		usecase.NewResultsService(d.jobs, d.clusters, nil),
		usecase.NewStatusService(d.jobs, d.events),
		usecase.NewClusterService(d.clusters, httpserver.Argon2Hasher{}),
		usecase.NewDeploymentService(d.deploys, d.blobs, provider.NewRegistry(d.provider), d.events, "mock"),
		d.events,
		nil, nil, nil,
	)
	return srv, d
}

func asCluster(r *http.Request, id string) *http.Request {
	return r.WithContext(httpserver.ContextWithCluster(r.Context(), domain.Cluster{ID: id, Name: id}))
}

// allowEvents lets lifecycle events flow without asserting them; the usecase
// tests pin down exactly which events each operation publishes.
func allowEvents(d *serverDeps) {
	d.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func TestCreateJobHandler_Created(t *testing.T) {
	srv, d := newTestServer(t)
	allowEvents(d)
	d.services.EXPECT().Get(mock.Anything, "c1", "orders").
		Return(domain.ServiceDefinition{}, domain.ErrNotFound).Once()
	d.jobs.EXPECT().Create(mock.Anything, mock.MatchedBy(func(j domain.Job) bool {
		return j.ClusterID == "c1" && j.Service == "orders" && j.TargetFn == "chargeOrder" &&
			bytes.Equal(j.TargetArgs, []byte("packed-args")) && j.TimeoutIntervalSeconds == 90
	})).Return("01J5XQ6BHKE8961H4BT2MEQW00", true, nil).Once()

	body := fmt.Sprintf(`{"service":"orders","targetFn":"chargeOrder","targetArgs":%q,"callConfig":{"timeoutSeconds":90}}`,
		base64.StdEncoding.EncodeToString([]byte("packed-args")))
	r := httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewReader([]byte(body)))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.CreateJobHandler()(w, asCluster(r, "c1"))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "01J5XQ6BHKE8961H4BT2MEQW00", resp["id"])
}

func TestCreateJobHandler_ValidationDetails(t *testing.T) {
	srv, _ := newTestServer(t)

	r := httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewReader([]byte(`{"service":"orders"}`)))
	w := httptest.NewRecorder()
	srv.CreateJobHandler()(w, asCluster(r, "c1"))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "INVALID_ARGUMENT", resp.Error.Code)
	require.Equal(t, "required", resp.Error.Details["targetfn"])
}

func TestCreateJobHandler_RequiresCluster(t *testing.T) {
	srv, _ := newTestServer(t)

	r := httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewReader([]byte(`{"service":"orders","targetFn":"f"}`)))
	w := httptest.NewRecorder()
	srv.CreateJobHandler()(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateJobHandler_NotAcceptable(t *testing.T) {
	srv, _ := newTestServer(t)

	r := httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewReader([]byte(`{}`)))
	r.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	srv.CreateJobHandler()(w, asCluster(r, "c1"))

	require.Equal(t, http.StatusNotAcceptable, w.Code)
}

func TestNextJobsHandler_ReturnsEnvelopes(t *testing.T) {
	srv, d := newTestServer(t)
	allowEvents(d)
	d.machines.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(m domain.Machine) bool {
		return m.ID == "m-1" && m.ClusterID == "c1" && m.Service == "orders" && m.IP != ""
	})).Return(nil).Once()
	d.jobs.EXPECT().Claim(mock.Anything, domain.ClaimParams{
		ClusterID: "c1", Service: "orders", MachineID: "m-1", Limit: 2,
	}).Return([]domain.Job{
		{ID: "j1", TargetFn: "chargeOrder", TargetArgs: []byte("a1")},
		{ID: "j2", TargetFn: "refundOrder", TargetArgs: []byte("a2")},
	}, nil).Once()

	r := httptest.NewRequest(http.MethodPost, "/jobs-request", bytes.NewReader([]byte(`{"service":"orders","limit":2}`)))
	r.Header.Set("x-machine-id", "m-1")
	w := httptest.NewRecorder()
	srv.NextJobsHandler()(w, asCluster(r, "c1"))

	require.Equal(t, http.StatusOK, w.Code)
	var resp []struct {
		ID         string `json:"id"`
		TargetFn   string `json:"targetFn"`
		TargetArgs []byte `json:"targetArgs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	require.Equal(t, "j1", resp[0].ID)
	require.Equal(t, "chargeOrder", resp[0].TargetFn)
	require.Equal(t, []byte("a1"), resp[0].TargetArgs)
}

func TestNextJobsHandler_MissingMachineHeader(t *testing.T) {
	srv, _ := newTestServer(t)

	r := httptest.NewRequest(http.MethodPost, "/jobs-request", bytes.NewReader([]byte(`{"service":"orders"}`)))
	w := httptest.NewRecorder()
	srv.NextJobsHandler()(w, asCluster(r, "c1"))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNextJobsHandler_RejectsBadRate(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `{"service":"orders","definition":{"name":"orders","functions":[{"name":"f","rate":{"per":"second","limit":5}}]}}`
	r := httptest.NewRequest(http.MethodPost, "/jobs-request", bytes.NewReader([]byte(body)))
	r.Header.Set("x-machine-id", "m-1")
	w := httptest.NewRecorder()
	srv.NextJobsHandler()(w, asCluster(r, "c1"))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJobStatusHandler_ReturnsResult(t *testing.T) {
	srv, d := newTestServer(t)
	allowEvents(d)
	rt := domain.ResultResolution
	d.jobs.EXPECT().Get(mock.Anything, "c1", "01J5XQ6BHKE8961H4BT2MEQW00").Return(domain.Job{
		ID: "01J5XQ6BHKE8961H4BT2MEQW00", ClusterID: "c1", Service: "orders",
		Status: domain.JobSuccess, Result: []byte("packed-result"), ResultType: &rt,
	}, nil).Once()

	router := chi.NewRouter()
	router.Get("/jobs/{id}", srv.JobStatusHandler())
	r := httptest.NewRequest(http.MethodGet, "/jobs/01J5XQ6BHKE8961H4BT2MEQW00", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, asCluster(r, "c1"))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		ID         string `json:"id"`
		Status     string `json:"status"`
		Result     []byte `json:"result"`
		ResultType string `json:"resultType"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "success", resp.Status)
	require.Equal(t, []byte("packed-result"), resp.Result)
	require.Equal(t, "resolution", resp.ResultType)
}

func TestJobStatusHandler_BadID(t *testing.T) {
	srv, _ := newTestServer(t)

	router := chi.NewRouter()
	router.Get("/jobs/{id}", srv.JobStatusHandler())
	r := httptest.NewRequest(http.MethodGet, "/jobs/bad%2Fid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, asCluster(r, "c1"))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPersistResultHandler_NoContent(t *testing.T) {
	srv, d := newTestServer(t)
	d.jobs.EXPECT().Get(mock.Anything, "c1", "j1").
		Return(domain.Job{ID: "j1", ClusterID: "c1", Service: "orders", Status: domain.JobRunning}, nil).Once()
	d.jobs.EXPECT().PersistResult(mock.Anything, mock.MatchedBy(func(p domain.ResultParams) bool {
		return p.JobID == "j1" && p.MachineID == "m-1" && p.ResultType == domain.ResultResolution &&
			bytes.Equal(p.Result, []byte("ok"))
	})).Return(nil).Once()

	body := fmt.Sprintf(`{"result":%q,"resultType":"resolution","functionExecutionTime":42}`,
		base64.StdEncoding.EncodeToString([]byte("ok")))
	router := chi.NewRouter()
	router.Post("/jobs/{id}/result", srv.PersistResultHandler())
	r := httptest.NewRequest(http.MethodPost, "/jobs/j1/result", bytes.NewReader([]byte(body)))
	r.Header.Set("x-machine-id", "m-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, asCluster(r, "c1"))

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.Bytes())
}

func TestPersistResultHandler_UnknownJob(t *testing.T) {
	srv, d := newTestServer(t)
	d.jobs.EXPECT().Get(mock.Anything, "c1", "ghost").
		Return(domain.Job{}, domain.ErrNotFound).Once()

	router := chi.NewRouter()
	router.Post("/jobs/{id}/result", srv.PersistResultHandler())
	r := httptest.NewRequest(http.MethodPost, "/jobs/ghost/result", bytes.NewReader([]byte(`{"resultType":"rejection"}`)))
	r.Header.Set("x-machine-id", "m-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, asCluster(r, "c1"))

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestJobStatusesHandler_Batch(t *testing.T) {
	srv, d := newTestServer(t)
	allowEvents(d)
	rt := domain.ResultResolution
	now := domain.Job{ID: "j1", Status: domain.JobSuccess, Result: []byte("r"), ResultType: &rt}
	d.jobs.EXPECT().GetBatch(mock.Anything, "c1", []string{"j1", "j2"}).
		Return([]domain.Job{now}, nil).Once()

	r := httptest.NewRequest(http.MethodPost, "/jobs-statuses", bytes.NewReader([]byte(`{"jobIds":["j1","j2"],"ttlMs":5000}`)))
	w := httptest.NewRecorder()
	srv.JobStatusesHandler()(w, asCluster(r, "c1"))

	require.Equal(t, http.StatusOK, w.Code)
	var resp []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.Equal(t, "j1", resp[0].ID)
	require.Equal(t, "success", resp[0].Status)
}

func TestIngestEventsHandler_PublishesScoped(t *testing.T) {
	srv, d := newTestServer(t)
	d.events.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventFunctionInvocation && e.ClusterID == "c1" &&
			e.Service == "orders" && e.MachineID == "m-1" && e.Meta["durationMs"] == "12"
	})).Return(nil).Once()

	body := `{"events":[{"type":"functionInvocation","service":"orders","meta":{"durationMs":"12"}}]}`
	r := httptest.NewRequest(http.MethodPost, "/metrics", bytes.NewReader([]byte(body)))
	r.Header.Set("x-machine-id", "m-1")
	w := httptest.NewRecorder()
	srv.IngestEventsHandler()(w, asCluster(r, "c1"))

	require.Equal(t, http.StatusNoContent, w.Code)
}
