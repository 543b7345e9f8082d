package usecase

import (
	"errors"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/oklog/ulid/v2"

	"github.com/differentialHQ/differential/internal/domain"
)

// ProviderRegistry resolves deployment providers by name.
type ProviderRegistry interface {
	Lookup(name string) (domain.DeploymentProvider, error)
}

// DeploymentService manages service bundles: upload targets, release to a
// compute provider, activation. Bundle bytes never pass through the control
// plane; only the blob store sees them.
type DeploymentService struct {
	Deployments domain.DeploymentRepository
	Blobs       domain.BlobStore
	Providers   ProviderRegistry
	Events      domain.EventSink
	// DefaultProvider names the provider new deployments target.
	DefaultProvider string
}

// NewDeploymentService constructs a DeploymentService with its dependencies.
func NewDeploymentService(d domain.DeploymentRepository, b domain.BlobStore, p ProviderRegistry, e domain.EventSink, defaultProvider string) DeploymentService {
	return DeploymentService{Deployments: d, Blobs: b, Providers: p, Events: e, DefaultProvider: defaultProvider}
}

// CreateDeployment opens a new deployment in the uploading state and returns
// it with the bundle upload target.
func (s DeploymentService) CreateDeployment(ctx domain.Context, clusterID, service string) (domain.Deployment, string, error) {
	if service == "" {
		return domain.Deployment{}, "", fmt.Errorf("%w: service required", domain.ErrInvalidArgument)
	}
	if _, err := s.Providers.Lookup(s.DefaultProvider); err != nil {
		return domain.Deployment{}, "", fmt.Errorf("%w: provider %s not registered", domain.ErrInternal, s.DefaultProvider)
	}

	id := ulid.Make().String()
	d := domain.Deployment{
		ID:        id,
		ClusterID: clusterID,
		Service:   service,
		Provider:  s.DefaultProvider,
		Status:    domain.DeploymentUploading,
		BundleKey: clusterID + "/" + service + "/" + id + ".zip",
	}
	uploadURL, err := s.Blobs.UploadURL(ctx, d.BundleKey)
	if err != nil {
		return domain.Deployment{}, "", fmt.Errorf("op=deployment.upload_url: %w", err)
	}
	if err := s.Deployments.Create(ctx, d); err != nil {
		return domain.Deployment{}, "", err
	}
	publishEvent(ctx, s.Events, domain.Event{
		Type:         domain.EventDeploymentCreated,
		ClusterID:    clusterID,
		Service:      service,
		DeploymentID: id,
	})
	return d, uploadURL, nil
}

// Release verifies the uploaded bundle, hands the deployment to its provider
// and promotes it to active, demoting any previously active deployment of the
// same service. Releasing an already active deployment is a no-op.
func (s DeploymentService) Release(ctx domain.Context, clusterID, service, id string) (domain.Deployment, error) {
	d, err := s.Deployments.Get(ctx, clusterID, id)
	if err != nil {
		return domain.Deployment{}, err
	}
	if d.Service != service {
		return domain.Deployment{}, fmt.Errorf("%w: deployment %s", domain.ErrNotFound, id)
	}
	if d.Status == domain.DeploymentActive {
		return d, nil
	}

	if err := s.verifyBundle(ctx, d.BundleKey); err != nil {
		return domain.Deployment{}, err
	}

	prov, err := s.Providers.Lookup(d.Provider)
	if err != nil {
		return domain.Deployment{}, fmt.Errorf("%w: provider %s not registered", domain.ErrInternal, d.Provider)
	}
	// First release of a service creates provider-side compute; later
	// releases update it in place.
	if _, err := s.Deployments.ActiveDeployment(ctx, clusterID, service); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return domain.Deployment{}, err
		}
		if err := prov.Create(ctx, d); err != nil {
			return domain.Deployment{}, fmt.Errorf("op=deployment.provider_create: %w", err)
		}
	} else {
		if err := prov.Update(ctx, d); err != nil {
			return domain.Deployment{}, fmt.Errorf("op=deployment.provider_update: %w", err)
		}
	}

	activated, err := s.Deployments.Activate(ctx, clusterID, id)
	if err != nil {
		return domain.Deployment{}, err
	}
	publishEvent(ctx, s.Events, domain.Event{
		Type:         domain.EventDeploymentReleased,
		ClusterID:    clusterID,
		Service:      service,
		DeploymentID: id,
	})
	return activated, nil
}

// GetDeployment fetches one deployment scoped to its cluster and service.
func (s DeploymentService) GetDeployment(ctx domain.Context, clusterID, service, id string) (domain.Deployment, error) {
	d, err := s.Deployments.Get(ctx, clusterID, id)
	if err != nil {
		return domain.Deployment{}, err
	}
	if d.Service != service {
		return domain.Deployment{}, fmt.Errorf("%w: deployment %s", domain.ErrNotFound, id)
	}
	return d, nil
}

// verifyBundle checks that the bundle was uploaded and is a zip archive.
func (s DeploymentService) verifyBundle(ctx domain.Context, key string) error {
	exists, err := s.Blobs.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("op=deployment.bundle_check: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: bundle not uploaded", domain.ErrConflict)
	}
	rc, err := s.Blobs.Open(ctx, key)
	if err != nil {
		return fmt.Errorf("op=deployment.bundle_open: %w", err)
	}
	defer func() { _ = rc.Close() }()
	mtype, err := mimetype.DetectReader(rc)
	if err != nil {
		return fmt.Errorf("op=deployment.bundle_sniff: %w", err)
	}
	if !mtype.Is("application/zip") {
		return fmt.Errorf("%w: bundle is %s, want application/zip", domain.ErrInvalidArgument, mtype.String())
	}
	return nil
}
