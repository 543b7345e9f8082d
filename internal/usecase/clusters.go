package usecase

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/differentialHQ/differential/internal/domain"
)

// SecretHasher hashes cluster API secrets for storage. The HTTP layer's
// argon2id helper implements it; plaintext secrets are never persisted.
type SecretHasher interface {
	Hash(secret string) (string, error)
}

// ProvisionClusterParams describes one cluster to provision.
type ProvisionClusterParams struct {
	Name              string
	Description       string
	PredictiveRetries bool
	// AutoRetryStalledJobs defaults to true when nil.
	AutoRetryStalledJobs *bool
}

// ClusterService provisions and seeds clusters, the tenancy and auth
// boundary of the engine.
type ClusterService struct {
	Clusters domain.ClusterRepository
	Hasher   SecretHasher
}

// NewClusterService constructs a ClusterService with its dependencies.
func NewClusterService(c domain.ClusterRepository, h SecretHasher) ClusterService {
	return ClusterService{Clusters: c, Hasher: h}
}

// Provision creates a cluster and mints its API secret. The plaintext secret
// is returned exactly once; only its hash survives.
func (s ClusterService) Provision(ctx domain.Context, p ProvisionClusterParams) (domain.Cluster, string, error) {
	if strings.TrimSpace(p.Name) == "" {
		return domain.Cluster{}, "", fmt.Errorf("%w: cluster name required", domain.ErrInvalidArgument)
	}

	id := uuid.NewString()
	secret, err := NewClusterSecret(id)
	if err != nil {
		return domain.Cluster{}, "", fmt.Errorf("op=cluster.secret: %w", err)
	}
	hash, err := s.Hasher.Hash(secret)
	if err != nil {
		return domain.Cluster{}, "", fmt.Errorf("op=cluster.hash: %w", err)
	}

	c := domain.Cluster{
		ID:                   id,
		Name:                 strings.TrimSpace(p.Name),
		Description:          p.Description,
		APISecretHash:        hash,
		PredictiveRetries:    p.PredictiveRetries,
		AutoRetryStalledJobs: true,
	}
	if p.AutoRetryStalledJobs != nil {
		c.AutoRetryStalledJobs = *p.AutoRetryStalledJobs
	}

	if err := s.Clusters.Create(ctx, c); err != nil {
		return domain.Cluster{}, "", err
	}
	return c, secret, nil
}

// Ensure inserts a seed cluster with the given plaintext secret unless the id
// already exists. Existing clusters keep their stored secret and flags.
func (s ClusterService) Ensure(ctx domain.Context, c domain.Cluster, apiSecret string) error {
	if c.ID == "" || apiSecret == "" {
		return fmt.Errorf("%w: cluster id and secret required", domain.ErrInvalidArgument)
	}
	if strings.Contains(c.ID, "_") {
		// Secrets embed the cluster id with underscore separators.
		return fmt.Errorf("%w: cluster id must not contain underscores", domain.ErrInvalidArgument)
	}
	hash, err := s.Hasher.Hash(apiSecret)
	if err != nil {
		return fmt.Errorf("op=cluster.hash: %w", err)
	}
	c.APISecretHash = hash
	return s.Clusters.Ensure(ctx, c)
}

// SetDisabled flips the cluster kill switch. A disabled cluster keeps all of
// its data but every surface refuses its secrets until it is re-enabled.
func (s ClusterService) SetDisabled(ctx domain.Context, id string, disabled bool) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: cluster id required", domain.ErrInvalidArgument)
	}
	return s.Clusters.SetDisabled(ctx, id, disabled)
}

// NewClusterSecret mints a bearer secret of the form sk_<clusterID>_<random>.
// Auth parses the cluster id back out of the token, so verification costs one
// row lookup instead of a scan.
func NewClusterSecret(clusterID string) (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "sk_" + clusterID + "_" + hex.EncodeToString(buf), nil
}
