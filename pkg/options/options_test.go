package options_test

import (
	"testing"

	"github.com/ignite-kv/ignite/pkg/options"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := options.NewDefaultOptions()
	require.Equal(t, options.DefaultDirectory, o.Directory)
	require.Equal(t, options.DefaultSegmentPrefix, o.SegmentPrefix)
	require.Equal(t, options.SegmentExtension, o.SegmentExtension)
	require.Equal(t, options.DefaultCompactionThreshold, o.CompactionThreshold)
}

func TestWithCompactionThresholdRejectsTooSmall(t *testing.T) {
	o := options.NewDefaultOptions()
	options.WithCompactionThreshold(1)(&o)
	require.Equal(t, options.DefaultCompactionThreshold, o.CompactionThreshold, "threshold below the minimum must be ignored")

	options.WithCompactionThreshold(4096)(&o)
	require.EqualValues(t, 4096, o.CompactionThreshold)
}

func TestWithDirectoryTrimsAndIgnoresBlank(t *testing.T) {
	o := options.NewDefaultOptions()
	options.WithDirectory("  ")(&o)
	require.Equal(t, options.DefaultDirectory, o.Directory)

	options.WithDirectory(" /tmp/ignite ")(&o)
	require.Equal(t, "/tmp/ignite", o.Directory)
}
