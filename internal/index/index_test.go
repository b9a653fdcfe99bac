package index_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ignite-kv/ignite/internal/index"
	"github.com/ignite-kv/ignite/internal/logpos"
	"github.com/ignite-kv/ignite/pkg/logger"
)

func newIndex(t *testing.T) *index.Index {
	t.Helper()
	idx, err := index.New(context.Background(), &index.Config{DataDir: t.TempDir(), Logger: logger.Noop()})
	require.NoError(t, err)
	return idx
}

func TestGetMissingKey(t *testing.T) {
	idx := newIndex(t)
	_, ok := idx.Get("missing")
	require.False(t, ok)
	require.False(t, idx.Contains("missing"))
}

func TestSetThenGet(t *testing.T) {
	idx := newIndex(t)
	pos := logpos.Position{Segment: "seg1", Offset: 42}
	idx.Set("a", pos)

	got, ok := idx.Get("a")
	require.True(t, ok)
	require.Equal(t, pos, got)
	require.True(t, idx.Contains("a"))
	require.Equal(t, 1, idx.Len())
}

func TestSetOverwritesPosition(t *testing.T) {
	idx := newIndex(t)
	idx.Set("a", logpos.Position{Segment: "seg1", Offset: 0})
	idx.Set("a", logpos.Position{Segment: "seg2", Offset: 10})

	got, ok := idx.Get("a")
	require.True(t, ok)
	require.Equal(t, logpos.Position{Segment: "seg2", Offset: 10}, got)
}

func TestRemoveDeletesEntry(t *testing.T) {
	idx := newIndex(t)
	idx.Set("a", logpos.Position{Segment: "seg1", Offset: 0})
	idx.Remove("a")

	_, ok := idx.Get("a")
	require.False(t, ok)
	require.Equal(t, 0, idx.Len())
}

func TestRemoveMissingKeyIsNoop(t *testing.T) {
	idx := newIndex(t)
	require.NotPanics(t, func() { idx.Remove("missing") })
}

func TestCloseClearsEntries(t *testing.T) {
	idx := newIndex(t)
	idx.Set("a", logpos.Position{Segment: "seg1", Offset: 0})
	require.NoError(t, idx.Close())
	require.Equal(t, 0, idx.Len())
	require.Error(t, idx.Close())
}
