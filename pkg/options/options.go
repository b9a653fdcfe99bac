// Package options provides data structures and functions for configuring
// the Ignite database: where its segment files live, what they are named,
// and the payload threshold that triggers compaction.
package options

import "strings"

// Options holds the configuration for an Ignite engine instance.
type Options struct {
	// Directory is the path the engine owns exclusively for the process
	// lifetime; segment files are created directly inside it.
	//
	// Default: "./data"
	Directory string `json:"directory"`

	// SegmentPrefix is the filename prefix shared by every segment file.
	// Final filename: "<prefix>_<nanoseconds>.<extension>".
	//
	// Default: "kvlog"
	SegmentPrefix string `json:"segmentPrefix"`

	// SegmentExtension is the fixed file extension of segment files.
	//
	// Default: "cmdlog"
	SegmentExtension string `json:"segmentExtension"`

	// CompactionThreshold is the payload size, in bytes, a segment may
	// reach before the next write triggers compaction instead of simply
	// appending. It is exposed here as an override point so tests can
	// exercise compaction without writing a literal megabyte.
	//
	// Default: 1 MiB
	CompactionThreshold uint64 `json:"compactionThreshold"`
}

// OptionFunc is a function type that modifies an Options value.
type OptionFunc func(*Options)

// WithDefaultOptions resets every field to its default value.
func WithDefaultOptions() OptionFunc {
	return func(o *Options) {
		*o = NewDefaultOptions()
	}
}

// WithDirectory sets the data directory the engine will own.
func WithDirectory(directory string) OptionFunc {
	return func(o *Options) {
		directory = strings.TrimSpace(directory)
		if directory != "" {
			o.Directory = directory
		}
	}
}

// WithSegmentPrefix sets the filename prefix for segment files.
func WithSegmentPrefix(prefix string) OptionFunc {
	return func(o *Options) {
		prefix = strings.TrimSpace(prefix)
		if prefix != "" {
			o.SegmentPrefix = prefix
		}
	}
}

// WithCompactionThreshold sets the payload size that triggers compaction.
// Values below MinCompactionThreshold are ignored to keep segment rotation
// from thrashing on every write.
func WithCompactionThreshold(threshold uint64) OptionFunc {
	return func(o *Options) {
		if threshold >= MinCompactionThreshold {
			o.CompactionThreshold = threshold
		}
	}
}
