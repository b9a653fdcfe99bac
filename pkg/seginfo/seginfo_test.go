package seginfo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ignite-kv/ignite/pkg/seginfo"
	"github.com/stretchr/testify/require"
)

func TestGenerateNameIsStrictlyOrdered(t *testing.T) {
	names := make([]string, 100)
	for i := range names {
		names[i] = seginfo.GenerateName("kvlog", "cmdlog")
	}

	for i := 1; i < len(names); i++ {
		require.Less(t, names[i-1], names[i], "segment names must sort in creation order")
	}
}

func TestListSegmentsIgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()

	want := []string{
		seginfo.GenerateName("kvlog", "cmdlog"),
		seginfo.GenerateName("kvlog", "cmdlog"),
	}
	for _, name := range want {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

	got, err := seginfo.ListSegments(dir, "kvlog", "cmdlog")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, filepath.Join(dir, want[0]), got[0])
	require.Equal(t, filepath.Join(dir, want[1]), got[1])
}

func TestLatestSegmentEmptyDir(t *testing.T) {
	dir := t.TempDir()
	latest, err := seginfo.LatestSegment(dir, "kvlog", "cmdlog")
	require.NoError(t, err)
	require.Empty(t, latest)
}

func TestParseTimestampRoundTrip(t *testing.T) {
	name := seginfo.GenerateName("kvlog", "cmdlog")
	ts, err := seginfo.ParseTimestamp(name, "kvlog", "cmdlog")
	require.NoError(t, err)
	require.Positive(t, ts)
}
