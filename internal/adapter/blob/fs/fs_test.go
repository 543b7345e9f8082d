package fs_test

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/differentialHQ/differential/internal/adapter/blob/fs"
	"github.com/differentialHQ/differential/internal/domain"
)

func TestStore_UploadURLCreatesParent(t *testing.T) {
	store := fs.New(t.TempDir())

	url, err := store.UploadURL(context.Background(), "c1/orders/dep1.zip")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "file://"))

	// The parent directory exists so a client can write the bundle in place.
	path := strings.TrimPrefix(url, "file://")
	require.NoError(t, os.WriteFile(path, []byte("PK\x03\x04bundle"), 0o644))

	ok, err := store.Exists(context.Background(), "c1/orders/dep1.zip")
	require.NoError(t, err)
	require.True(t, ok)

	rc, err := store.Open(context.Background(), "c1/orders/dep1.zip")
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "PK\x03\x04bundle", string(b))
}

func TestStore_MissingKey(t *testing.T) {
	store := fs.New(t.TempDir())

	ok, err := store.Exists(context.Background(), "c1/orders/none.zip")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = store.Open(context.Background(), "c1/orders/none.zip")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_RejectsTraversal(t *testing.T) {
	store := fs.New(t.TempDir())

	_, err := store.UploadURL(context.Background(), "../escape.zip")
	// Keys are cleaned root-relative, so a leading .. cannot escape the root.
	require.NoError(t, err)

	ok, err := store.Exists(context.Background(), "../../etc/passwd")
	require.NoError(t, err)
	require.False(t, ok)
}
