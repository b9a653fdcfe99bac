package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ignite-kv/ignite/internal/storage"
	"github.com/ignite-kv/ignite/pkg/logger"
	"github.com/ignite-kv/ignite/pkg/options"
)

func newStorage(t *testing.T) *storage.Storage {
	t.Helper()
	opts := options.NewDefaultOptions()
	opts.Directory = t.TempDir()

	s, err := storage.New(context.Background(), &storage.Config{Options: &opts, Logger: logger.Noop()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndReadAt(t *testing.T) {
	s := newStorage(t)

	pos1, err := s.Append("line one")
	require.NoError(t, err)
	require.EqualValues(t, 0, pos1.Offset)

	pos2, err := s.Append("line two")
	require.NoError(t, err)
	require.EqualValues(t, len("line one")+1, pos2.Offset)

	require.NoError(t, s.Sync())

	got1, err := s.ReadAt(pos1)
	require.NoError(t, err)
	require.Equal(t, "line one", got1)

	got2, err := s.ReadAt(pos2)
	require.NoError(t, err)
	require.Equal(t, "line two", got2)
}

func TestActiveSizeGrowsWithWrites(t *testing.T) {
	s := newStorage(t)
	require.EqualValues(t, 0, s.ActiveSize())

	_, err := s.Append("abc")
	require.NoError(t, err)
	require.EqualValues(t, 4, s.ActiveSize())
}

func TestRotateSealsAndOpensNewSegment(t *testing.T) {
	s := newStorage(t)
	original := s.ActiveSegment()

	_, err := s.Append("abc")
	require.NoError(t, err)

	next, err := s.Rotate()
	require.NoError(t, err)
	require.NotEqual(t, original, next)
	require.Equal(t, next, s.ActiveSegment())
	require.EqualValues(t, 0, s.ActiveSize())

	segments, err := s.Segments()
	require.NoError(t, err)
	require.Len(t, segments, 2)
}

func TestScanSegmentVisitsEachLineWithResetOffset(t *testing.T) {
	s := newStorage(t)

	_, err := s.Append("one")
	require.NoError(t, err)
	_, err = s.Append("two")
	require.NoError(t, err)
	require.NoError(t, s.Sync())

	segment := s.ActiveSegment()

	var offsets []int64
	var lines []string
	err = s.ScanSegment(segment, func(offset int64, line string) error {
		offsets = append(offsets, offset)
		lines = append(lines, line)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two"}, lines)
	require.Equal(t, []int64{0, 4}, offsets)
}

func TestEvictRemovesSegmentFromDisk(t *testing.T) {
	s := newStorage(t)
	sealed := s.ActiveSegment()

	_, err := s.Append("abc")
	require.NoError(t, err)

	_, err = s.Rotate()
	require.NoError(t, err)

	require.NoError(t, s.Evict([]string{sealed}))

	segments, err := s.Segments()
	require.NoError(t, err)
	require.Len(t, segments, 1)
}

func TestReopenContinuesExistingSegment(t *testing.T) {
	opts := options.NewDefaultOptions()
	opts.Directory = t.TempDir()

	s1, err := storage.New(context.Background(), &storage.Config{Options: &opts, Logger: logger.Noop()})
	require.NoError(t, err)
	_, err = s1.Append("abc")
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := storage.New(context.Background(), &storage.Config{Options: &opts, Logger: logger.Noop()})
	require.NoError(t, err)
	defer s2.Close()

	require.EqualValues(t, 4, s2.ActiveSize())

	segments, err := s2.Segments()
	require.NoError(t, err)
	require.Len(t, segments, 1)
}
