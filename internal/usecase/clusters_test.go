package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/differentialHQ/differential/internal/domain"
	"github.com/differentialHQ/differential/internal/domain/mocks"
	"github.com/differentialHQ/differential/internal/usecase"
)

// prefixHasher marks hashes so tests can tell them from plaintext.
type prefixHasher struct{}

func (prefixHasher) Hash(secret string) (string, error) { return "hashed:" + secret, nil }

func TestClusters_Provision(t *testing.T) {
	t.Parallel()
	clusters := mocks.NewMockClusterRepository(t)

	var created domain.Cluster
	clusters.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, c domain.Cluster) error {
			created = c
			return nil
		})

	svc := usecase.NewClusterService(clusters, prefixHasher{})
	c, secret, err := svc.Provision(context.Background(), usecase.ProvisionClusterParams{
		Name:        "acme",
		Description: "acme production",
	})
	require.NoError(t, err)

	assert.Equal(t, "acme", c.Name)
	assert.True(t, c.AutoRetryStalledJobs)
	assert.False(t, c.PredictiveRetries)
	require.True(t, strings.HasPrefix(secret, "sk_"+c.ID+"_"), "secret embeds the cluster id: %s", secret)
	assert.Equal(t, "hashed:"+secret, created.APISecretHash, "only the hash is stored")
}

func TestClusters_Provision_Flags(t *testing.T) {
	t.Parallel()
	clusters := mocks.NewMockClusterRepository(t)
	clusters.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c domain.Cluster) bool {
		return c.PredictiveRetries && !c.AutoRetryStalledJobs
	})).Return(nil)

	off := false
	svc := usecase.NewClusterService(clusters, prefixHasher{})
	_, _, err := svc.Provision(context.Background(), usecase.ProvisionClusterParams{
		Name:                 "acme",
		PredictiveRetries:    true,
		AutoRetryStalledJobs: &off,
	})
	require.NoError(t, err)
}

func TestClusters_Provision_NameRequired(t *testing.T) {
	t.Parallel()
	svc := usecase.NewClusterService(mocks.NewMockClusterRepository(t), prefixHasher{})
	_, _, err := svc.Provision(context.Background(), usecase.ProvisionClusterParams{Name: "  "})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestClusters_Ensure(t *testing.T) {
	t.Parallel()
	clusters := mocks.NewMockClusterRepository(t)
	clusters.EXPECT().Ensure(mock.Anything, mock.MatchedBy(func(c domain.Cluster) bool {
		return c.ID == "local-dev" && c.APISecretHash == "hashed:sk-local"
	})).Return(nil)

	svc := usecase.NewClusterService(clusters, prefixHasher{})
	err := svc.Ensure(context.Background(), domain.Cluster{ID: "local-dev", Name: "local"}, "sk-local")
	require.NoError(t, err)
}

func TestClusters_Ensure_RejectsUnderscoreID(t *testing.T) {
	t.Parallel()
	svc := usecase.NewClusterService(mocks.NewMockClusterRepository(t), prefixHasher{})
	err := svc.Ensure(context.Background(), domain.Cluster{ID: "local_dev"}, "sk-local")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestClusters_SetDisabled(t *testing.T) {
	t.Parallel()
	clusters := mocks.NewMockClusterRepository(t)
	clusters.EXPECT().SetDisabled(mock.Anything, "c9", true).Return(nil)

	svc := usecase.NewClusterService(clusters, prefixHasher{})
	require.NoError(t, svc.SetDisabled(context.Background(), "c9", true))

	err := svc.SetDisabled(context.Background(), "  ", true)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestNewClusterSecret(t *testing.T) {
	t.Parallel()
	s1, err := usecase.NewClusterSecret("cl-1")
	require.NoError(t, err)
	s2, err := usecase.NewClusterSecret("cl-1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(s1, "sk_cl-1_"))
	assert.NotEqual(t, s1, s2)
}
