package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/differentialHQ/differential/internal/domain"
	"github.com/differentialHQ/differential/internal/domain/mocks"
	"github.com/differentialHQ/differential/internal/usecase"
)

func TestDispatch_NextJobs_ClaimsAndEmits(t *testing.T) {
	t.Parallel()
	jobs := mocks.NewMockJobRepository(t)
	machines := mocks.NewMockMachineRepository(t)
	events := mocks.NewMockEventSink(t)

	machines.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(m domain.Machine) bool {
		return m.ID == "m-1" && m.ClusterID == "cl-1" && m.Service == "orders" && m.IP == "10.0.0.9"
	})).Return(nil)
	jobs.EXPECT().Claim(mock.Anything, domain.ClaimParams{
		ClusterID: "cl-1",
		Service:   "orders",
		MachineID: "m-1",
		Limit:     4,
	}).Return([]domain.Job{
		{ID: "01A", TargetFn: "charge", TargetArgs: []byte{0x1}},
		{ID: "01B", TargetFn: "charge", TargetArgs: []byte{0x2}},
	}, nil)
	events.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventMachinePing && e.MachineID == "m-1"
	})).Return(nil).Once()
	events.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventJobReceived && e.MachineID == "m-1"
	})).Return(nil).Twice()

	svc := usecase.NewDispatchService(jobs, machines, nil, events)
	claimed, err := svc.NextJobs(context.Background(), usecase.NextJobsParams{
		ClusterID: "cl-1",
		Service:   "orders",
		MachineID: "m-1",
		MachineIP: "10.0.0.9",
		Limit:     4,
	})
	require.NoError(t, err)
	require.Len(t, claimed, 2)
	assert.Equal(t, "01A", claimed[0].ID)
}

func TestDispatch_NextJobs_InvalidArgs(t *testing.T) {
	t.Parallel()
	svc := usecase.NewDispatchService(mocks.NewMockJobRepository(t), mocks.NewMockMachineRepository(t), nil, nil)

	_, err := svc.NextJobs(context.Background(), usecase.NextJobsParams{Service: "orders", Limit: 1})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.NextJobs(context.Background(), usecase.NextJobsParams{Service: "orders", MachineID: "m-1"})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestDispatch_NextJobs_MachineUpsertFails(t *testing.T) {
	t.Parallel()
	jobs := mocks.NewMockJobRepository(t) // no Claim expected
	machines := mocks.NewMockMachineRepository(t)
	machines.EXPECT().Upsert(mock.Anything, mock.Anything).Return(errors.New("db down"))

	svc := usecase.NewDispatchService(jobs, machines, nil, nil)
	_, err := svc.NextJobs(context.Background(), usecase.NextJobsParams{
		ClusterID: "cl-1",
		Service:   "orders",
		MachineID: "m-1",
		Limit:     1,
	})
	require.Error(t, err)
}

func TestDispatch_NextJobs_UpsertsDefinitionInBackground(t *testing.T) {
	t.Parallel()
	jobs := mocks.NewMockJobRepository(t)
	machines := mocks.NewMockMachineRepository(t)
	services := mocks.NewMockServiceRepository(t)

	machines.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
	jobs.EXPECT().Claim(mock.Anything, mock.Anything).Return(nil, nil)

	upserted := make(chan domain.ServiceDefinition, 1)
	services.EXPECT().Upsert(mock.Anything, "cl-1", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, def domain.ServiceDefinition) error {
			upserted <- def
			return nil
		})

	svc := usecase.NewDispatchService(jobs, machines, services, nil)
	claimed, err := svc.NextJobs(context.Background(), usecase.NextJobsParams{
		ClusterID: "cl-1",
		Service:   "orders",
		MachineID: "m-1",
		Limit:     1,
		Definition: &domain.ServiceDefinition{
			Name:      "orders",
			Functions: []domain.FunctionDefinition{{Name: "charge"}},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, claimed)

	select {
	case def := <-upserted:
		assert.Equal(t, "orders", def.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("definition upsert never happened")
	}
}
