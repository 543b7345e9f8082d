package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/differentialHQ/differential/internal/adapter/repo/postgres"
	"github.com/differentialHQ/differential/internal/adapter/repo/postgres/mocks"
	"github.com/differentialHQ/differential/internal/domain"
)

func fillDeploymentRow(dest []any, id string, status domain.DeploymentStatus) {
	now := time.Now().UTC()
	*(dest[0].(*string)) = id
	*(dest[1].(*string)) = "cluster-1"
	*(dest[2].(*string)) = "orders"
	*(dest[3].(*string)) = "lambda"
	*(dest[4].(*domain.DeploymentStatus)) = status
	*(dest[5].(*string)) = "bundles/" + id + ".zip"
	*(dest[6].(*time.Time)) = now
	*(dest[7].(*time.Time)) = now
}

func TestDeploymentRepo_Create(t *testing.T) {
	pool := postgres.NewMockPgxPool(t)
	repo := postgres.NewDeploymentRepo(pool)
	ctx := context.Background()

	dep := domain.Deployment{
		ID:        "dep-1",
		ClusterID: "cluster-1",
		Service:   "orders",
		Provider:  "lambda",
		Status:    domain.DeploymentUploading,
		BundleKey: "bundles/dep-1.zip",
	}

	// Test successful creation
	pool.EXPECT().Exec(mock.Anything, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag("INSERT 0 1"), nil).Once()
	require.NoError(t, repo.Create(ctx, dep))

	// Database error
	pool.EXPECT().Exec(mock.Anything, mock.Anything, mock.Anything).Return(pgconn.CommandTag{}, assert.AnError).Once()
	err := repo.Create(ctx, dep)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "op=deployment.create")
}

func TestDeploymentRepo_Get(t *testing.T) {
	pool := postgres.NewMockPgxPool(t)
	repo := postgres.NewDeploymentRepo(pool)
	ctx := context.Background()

	// Test successful get
	mockRow := mocks.NewMockRow(t)
	mockRow.On("Scan", mock.Anything).Run(func(args mock.Arguments) {
		dest := args[0].([]any)
		fillDeploymentRow(dest, "dep-1", domain.DeploymentReady)
	}).Return(nil).Once()
	pool.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(mockRow).Once()

	dep, err := repo.Get(ctx, "cluster-1", "dep-1")
	require.NoError(t, err)
	assert.Equal(t, "dep-1", dep.ID)
	assert.Equal(t, domain.DeploymentReady, dep.Status)

	// Unknown id maps to not found
	mockRowErr := mocks.NewMockRow(t)
	mockRowErr.On("Scan", mock.Anything).Return(pgx.ErrNoRows).Once()
	pool.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(mockRowErr).Once()
	_, err = repo.Get(ctx, "cluster-1", "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeploymentRepo_SetStatus(t *testing.T) {
	pool := postgres.NewMockPgxPool(t)
	repo := postgres.NewDeploymentRepo(pool)
	ctx := context.Background()

	// Test successful transition
	pool.EXPECT().Exec(mock.Anything, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag("UPDATE 1"), nil).Once()
	require.NoError(t, repo.SetStatus(ctx, "cluster-1", "dep-1", domain.DeploymentReady))

	// Unknown id maps to not found
	pool.EXPECT().Exec(mock.Anything, mock.Anything, mock.Anything).Return(pgconn.CommandTag{}, nil).Once()
	err := repo.SetStatus(ctx, "cluster-1", "missing", domain.DeploymentReady)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "op=deployment.set_status")
}

func TestDeploymentRepo_Activate(t *testing.T) {
	pool := postgres.NewMockPgxPool(t)
	repo := postgres.NewDeploymentRepo(pool)
	ctx := context.Background()

	mockTx := mocks.NewMockTx(t)

	// Successful activation demotes the previous active row in the same tx.
	serviceRow := mocks.NewMockRow(t)
	serviceRow.On("Scan", mock.Anything).Run(func(args mock.Arguments) {
		dest := args[0].([]any)
		*(dest[0].(*string)) = "orders"
	}).Return(nil).Once()
	promotedRow := mocks.NewMockRow(t)
	promotedRow.On("Scan", mock.Anything).Run(func(args mock.Arguments) {
		dest := args[0].([]any)
		fillDeploymentRow(dest, "dep-2", domain.DeploymentActive)
	}).Return(nil).Once()

	pool.EXPECT().BeginTx(mock.Anything, mock.Anything).Return(mockTx, nil).Once()
	mockTx.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(serviceRow).Once()
	mockTx.EXPECT().Exec(mock.Anything, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag("UPDATE 1"), nil).Once()
	mockTx.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(promotedRow).Once()
	mockTx.EXPECT().Commit(mock.Anything).Return(nil).Once()
	mockTx.EXPECT().Rollback(mock.Anything).Return(nil).Once() // Rollback is called in defer after commit

	dep, err := repo.Activate(ctx, "cluster-1", "dep-2")
	require.NoError(t, err)
	assert.Equal(t, "dep-2", dep.ID)
	assert.Equal(t, domain.DeploymentActive, dep.Status)

	// Unknown deployment maps to not found
	missingRow := mocks.NewMockRow(t)
	missingRow.On("Scan", mock.Anything).Return(pgx.ErrNoRows).Once()
	pool.EXPECT().BeginTx(mock.Anything, mock.Anything).Return(mockTx, nil).Once()
	mockTx.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(missingRow).Once()
	mockTx.EXPECT().Rollback(mock.Anything).Return(nil).Once()
	_, err = repo.Activate(ctx, "cluster-1", "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)

	// Begin error
	pool.EXPECT().BeginTx(mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()
	_, err = repo.Activate(ctx, "cluster-1", "dep-2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "op=deployment.activate_begin")
}

func TestDeploymentRepo_ActiveDeployment(t *testing.T) {
	pool := postgres.NewMockPgxPool(t)
	repo := postgres.NewDeploymentRepo(pool)
	ctx := context.Background()

	mockRow := mocks.NewMockRow(t)
	mockRow.On("Scan", mock.Anything).Run(func(args mock.Arguments) {
		dest := args[0].([]any)
		fillDeploymentRow(dest, "dep-1", domain.DeploymentActive)
	}).Return(nil).Once()
	pool.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(mockRow).Once()

	dep, err := repo.ActiveDeployment(ctx, "cluster-1", "orders")
	require.NoError(t, err)
	assert.Equal(t, domain.DeploymentActive, dep.Status)

	// No active deployment maps to not found
	mockRowErr := mocks.NewMockRow(t)
	mockRowErr.On("Scan", mock.Anything).Return(pgx.ErrNoRows).Once()
	pool.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(mockRowErr).Once()
	_, err = repo.ActiveDeployment(ctx, "cluster-1", "orders")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeploymentRepo_ActiveDeployments(t *testing.T) {
	pool := postgres.NewMockPgxPool(t)
	repo := postgres.NewDeploymentRepo(pool)
	ctx := context.Background()

	mockRows := mocks.NewMockRows(t)
	rowCount := 0
	mockRows.On("Next").Return(func() bool {
		rowCount++
		return rowCount <= 1
	}).Times(2)
	mockRows.On("Scan", mock.Anything).Run(func(args mock.Arguments) {
		dest := args[0].([]any)
		fillDeploymentRow(dest, "dep-1", domain.DeploymentActive)
	}).Return(nil).Once()
	mockRows.On("Close").Return().Once()
	mockRows.On("Err").Return(nil).Once()

	pool.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything).Return(mockRows, nil).Once()

	deps, err := repo.ActiveDeployments(ctx)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "dep-1", deps[0].ID)

	// Database error
	pool.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()
	_, err = repo.ActiveDeployments(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "op=deployment.active_all")
}
