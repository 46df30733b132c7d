package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mangatrade/pkg/storage/sqlite"

	"github.com/stretchr/testify/require"
)

func TestNew_PathWithURIReservedCharacters(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lists?mode=ro#1", "manga 100%.db")

	store, err := sqlite.New(ctx, sqlite.Options{Path: path, BusyTimeout: time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })

	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Ping(ctx))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.False(t, info.IsDir())
}

func TestNew_Memory(t *testing.T) {
	ctx := context.Background()

	store, err := sqlite.New(ctx, sqlite.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })

	require.NoError(t, store.Migrate(ctx))
}
