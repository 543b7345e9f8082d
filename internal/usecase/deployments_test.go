package usecase_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/differentialHQ/differential/internal/domain"
	"github.com/differentialHQ/differential/internal/domain/mocks"
	"github.com/differentialHQ/differential/internal/usecase"
)

// fakeRegistry resolves providers from a map, standing in for the adapter
// registry.
type fakeRegistry map[string]domain.DeploymentProvider

func (r fakeRegistry) Lookup(name string) (domain.DeploymentProvider, error) {
	p, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("provider %s not registered", name)
	}
	return p, nil
}

// zipBytes is enough of a zip header for content sniffing.
var zipBytes = append([]byte("PK\x03\x04"), make([]byte, 64)...)

func TestDeployments_CreateDeployment(t *testing.T) {
	t.Parallel()
	deployments := mocks.NewMockDeploymentRepository(t)
	blobs := mocks.NewMockBlobStore(t)
	prov := mocks.NewMockDeploymentProvider(t)

	var created domain.Deployment
	deployments.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, d domain.Deployment) error {
			created = d
			return nil
		})
	blobs.EXPECT().UploadURL(mock.Anything, mock.Anything).Return("file:///tmp/bundle.zip", nil)

	svc := usecase.NewDeploymentService(deployments, blobs, fakeRegistry{"mock": prov}, nil, "mock")
	d, uploadURL, err := svc.CreateDeployment(context.Background(), "cl-1", "orders")
	require.NoError(t, err)

	assert.Equal(t, domain.DeploymentUploading, d.Status)
	assert.Equal(t, "mock", d.Provider)
	assert.Equal(t, "file:///tmp/bundle.zip", uploadURL)
	assert.Equal(t, d.ID, created.ID)
	assert.Contains(t, created.BundleKey, "cl-1/orders/")
}

func TestDeployments_CreateDeployment_UnknownProvider(t *testing.T) {
	t.Parallel()
	svc := usecase.NewDeploymentService(mocks.NewMockDeploymentRepository(t), mocks.NewMockBlobStore(t), fakeRegistry{}, nil, "mock")
	_, _, err := svc.CreateDeployment(context.Background(), "cl-1", "orders")
	require.ErrorIs(t, err, domain.ErrInternal)
}

func TestDeployments_Release_FirstReleaseCreatesCompute(t *testing.T) {
	t.Parallel()
	deployments := mocks.NewMockDeploymentRepository(t)
	blobs := mocks.NewMockBlobStore(t)
	prov := mocks.NewMockDeploymentProvider(t)

	d := domain.Deployment{
		ID:        "01DEP",
		ClusterID: "cl-1",
		Service:   "orders",
		Provider:  "mock",
		Status:    domain.DeploymentUploading,
		BundleKey: "cl-1/orders/01DEP.zip",
	}
	deployments.EXPECT().Get(mock.Anything, "cl-1", "01DEP").Return(d, nil)
	blobs.EXPECT().Exists(mock.Anything, d.BundleKey).Return(true, nil)
	blobs.EXPECT().Open(mock.Anything, d.BundleKey).Return(io.NopCloser(bytes.NewReader(zipBytes)), nil)
	deployments.EXPECT().ActiveDeployment(mock.Anything, "cl-1", "orders").
		Return(domain.Deployment{}, fmt.Errorf("op=deployment.active: %w", domain.ErrNotFound))
	prov.EXPECT().Create(mock.Anything, d).Return(nil)
	activated := d
	activated.Status = domain.DeploymentActive
	deployments.EXPECT().Activate(mock.Anything, "cl-1", "01DEP").Return(activated, nil)

	svc := usecase.NewDeploymentService(deployments, blobs, fakeRegistry{"mock": prov}, nil, "mock")
	out, err := svc.Release(context.Background(), "cl-1", "orders", "01DEP")
	require.NoError(t, err)
	assert.Equal(t, domain.DeploymentActive, out.Status)
}

func TestDeployments_Release_LaterReleaseUpdatesCompute(t *testing.T) {
	t.Parallel()
	deployments := mocks.NewMockDeploymentRepository(t)
	blobs := mocks.NewMockBlobStore(t)
	prov := mocks.NewMockDeploymentProvider(t)

	d := domain.Deployment{
		ID:        "01NEXT",
		ClusterID: "cl-1",
		Service:   "orders",
		Provider:  "mock",
		Status:    domain.DeploymentReady,
		BundleKey: "cl-1/orders/01NEXT.zip",
	}
	deployments.EXPECT().Get(mock.Anything, "cl-1", "01NEXT").Return(d, nil)
	blobs.EXPECT().Exists(mock.Anything, d.BundleKey).Return(true, nil)
	blobs.EXPECT().Open(mock.Anything, d.BundleKey).Return(io.NopCloser(bytes.NewReader(zipBytes)), nil)
	deployments.EXPECT().ActiveDeployment(mock.Anything, "cl-1", "orders").
		Return(domain.Deployment{ID: "01OLD", Status: domain.DeploymentActive}, nil)
	prov.EXPECT().Update(mock.Anything, d).Return(nil)
	deployments.EXPECT().Activate(mock.Anything, "cl-1", "01NEXT").
		Return(domain.Deployment{ID: "01NEXT", Status: domain.DeploymentActive}, nil)

	svc := usecase.NewDeploymentService(deployments, blobs, fakeRegistry{"mock": prov}, nil, "mock")
	out, err := svc.Release(context.Background(), "cl-1", "orders", "01NEXT")
	require.NoError(t, err)
	assert.Equal(t, domain.DeploymentActive, out.Status)
}

func TestDeployments_Release_BundleMissing(t *testing.T) {
	t.Parallel()
	deployments := mocks.NewMockDeploymentRepository(t)
	blobs := mocks.NewMockBlobStore(t)

	d := domain.Deployment{ID: "01DEP", ClusterID: "cl-1", Service: "orders", Provider: "mock", BundleKey: "k"}
	deployments.EXPECT().Get(mock.Anything, "cl-1", "01DEP").Return(d, nil)
	blobs.EXPECT().Exists(mock.Anything, "k").Return(false, nil)

	svc := usecase.NewDeploymentService(deployments, blobs, fakeRegistry{}, nil, "mock")
	_, err := svc.Release(context.Background(), "cl-1", "orders", "01DEP")
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestDeployments_Release_RejectsNonZip(t *testing.T) {
	t.Parallel()
	deployments := mocks.NewMockDeploymentRepository(t)
	blobs := mocks.NewMockBlobStore(t)

	d := domain.Deployment{ID: "01DEP", ClusterID: "cl-1", Service: "orders", Provider: "mock", BundleKey: "k"}
	deployments.EXPECT().Get(mock.Anything, "cl-1", "01DEP").Return(d, nil)
	blobs.EXPECT().Exists(mock.Anything, "k").Return(true, nil)
	blobs.EXPECT().Open(mock.Anything, "k").Return(io.NopCloser(bytes.NewReader([]byte("#!/bin/sh\necho nope"))), nil)

	svc := usecase.NewDeploymentService(deployments, blobs, fakeRegistry{}, nil, "mock")
	_, err := svc.Release(context.Background(), "cl-1", "orders", "01DEP")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestDeployments_Release_ActiveIsNoop(t *testing.T) {
	t.Parallel()
	deployments := mocks.NewMockDeploymentRepository(t)

	d := domain.Deployment{ID: "01DEP", ClusterID: "cl-1", Service: "orders", Status: domain.DeploymentActive}
	deployments.EXPECT().Get(mock.Anything, "cl-1", "01DEP").Return(d, nil)

	svc := usecase.NewDeploymentService(deployments, mocks.NewMockBlobStore(t), fakeRegistry{}, nil, "mock")
	out, err := svc.Release(context.Background(), "cl-1", "orders", "01DEP")
	require.NoError(t, err)
	assert.Equal(t, domain.DeploymentActive, out.Status)
}

func TestDeployments_GetDeployment_ServiceScoped(t *testing.T) {
	t.Parallel()
	deployments := mocks.NewMockDeploymentRepository(t)
	deployments.EXPECT().Get(mock.Anything, "cl-1", "01DEP").
		Return(domain.Deployment{ID: "01DEP", ClusterID: "cl-1", Service: "orders"}, nil).Twice()

	svc := usecase.NewDeploymentService(deployments, mocks.NewMockBlobStore(t), fakeRegistry{}, nil, "mock")

	out, err := svc.GetDeployment(context.Background(), "cl-1", "orders", "01DEP")
	require.NoError(t, err)
	assert.Equal(t, "01DEP", out.ID)

	_, err = svc.GetDeployment(context.Background(), "cl-1", "billing", "01DEP")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
