package recovery_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ignite-kv/ignite/internal/codec"
	"github.com/ignite-kv/ignite/internal/index"
	"github.com/ignite-kv/ignite/internal/recovery"
	"github.com/ignite-kv/ignite/internal/storage"
	"github.com/ignite-kv/ignite/pkg/logger"
	"github.com/ignite-kv/ignite/pkg/options"
)

func TestReplayRebuildsIndexAcrossSegments(t *testing.T) {
	opts := options.NewDefaultOptions()
	opts.Directory = t.TempDir()

	store, err := storage.New(context.Background(), &storage.Config{Options: &opts, Logger: logger.Noop()})
	require.NoError(t, err)

	set := func(k, v string) {
		line, err := codec.EncodeSet(k, v)
		require.NoError(t, err)
		_, err = store.Append(line)
		require.NoError(t, err)
	}
	remove := func(k string) {
		line, err := codec.EncodeRemove(k)
		require.NoError(t, err)
		_, err = store.Append(line)
		require.NoError(t, err)
	}

	set("a", "1")
	set("b", "2")
	_, err = store.Rotate()
	require.NoError(t, err)
	set("a", "3")
	remove("b")
	require.NoError(t, store.Sync())

	idx, err := index.New(context.Background(), &index.Config{DataDir: opts.Directory, Logger: logger.Noop()})
	require.NoError(t, err)

	require.NoError(t, recovery.Replay(store, idx, logger.Noop()))

	require.True(t, idx.Contains("a"))
	require.False(t, idx.Contains("b"))

	pos, ok := idx.Get("a")
	require.True(t, ok)
	line, err := store.ReadAt(pos)
	require.NoError(t, err)
	rec, err := codec.Decode(line)
	require.NoError(t, err)
	require.Equal(t, "3", rec.Set.Value)
}

func TestReplayEmptyDirectorySucceeds(t *testing.T) {
	opts := options.NewDefaultOptions()
	opts.Directory = t.TempDir()

	store, err := storage.New(context.Background(), &storage.Config{Options: &opts, Logger: logger.Noop()})
	require.NoError(t, err)

	idx, err := index.New(context.Background(), &index.Config{DataDir: opts.Directory, Logger: logger.Noop()})
	require.NoError(t, err)

	require.NoError(t, recovery.Replay(store, idx, logger.Noop()))
	require.Equal(t, 0, idx.Len())
}
