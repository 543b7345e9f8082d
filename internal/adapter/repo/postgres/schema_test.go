package postgres_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/differentialHQ/differential/internal/adapter/repo/postgres"
)

func TestMigrate(t *testing.T) {
	pool := postgres.NewMockPgxPool(t)

	pool.EXPECT().Exec(mock.Anything, mock.MatchedBy(func(sql string) bool {
		return len(sql) > 0
	}), mock.Anything).Return(pgconn.NewCommandTag("CREATE TABLE"), nil).Once()
	require.NoError(t, postgres.Migrate(context.Background(), pool))

	pool.EXPECT().Exec(mock.Anything, mock.Anything, mock.Anything).Return(pgconn.CommandTag{}, assert.AnError).Once()
	err := postgres.Migrate(context.Background(), pool)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "op=schema.migrate")
}
