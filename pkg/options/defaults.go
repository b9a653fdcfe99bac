package options

const (
	// DefaultDirectory is the default data directory used when no directory
	// is specified during initialization.
	DefaultDirectory = "./data"

	// DefaultSegmentPrefix is the default prefix for segment file names,
	// e.g. "kvlog_1735689600123456789.cmdlog".
	DefaultSegmentPrefix = "kvlog"

	// SegmentExtension is the fixed file extension for segment files. It is
	// not configurable.
	SegmentExtension = "cmdlog"

	// DefaultCompactionThreshold is the default payload size, in bytes, a
	// segment may reach before the next write triggers compaction.
	DefaultCompactionThreshold uint64 = 1 * 1024 * 1024

	// MinCompactionThreshold is the smallest threshold WithCompactionThreshold
	// will accept.
	MinCompactionThreshold uint64 = 64
)

// defaultOptions holds the default configuration for an Ignite instance.
var defaultOptions = Options{
	Directory:           DefaultDirectory,
	SegmentPrefix:       DefaultSegmentPrefix,
	SegmentExtension:    SegmentExtension,
	CompactionThreshold: DefaultCompactionThreshold,
}

// NewDefaultOptions returns a fresh copy of the default configuration.
func NewDefaultOptions() Options {
	return defaultOptions
}
