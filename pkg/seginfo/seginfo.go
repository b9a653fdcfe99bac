// Package seginfo names and enumerates segment files.
//
// Filename format: prefix_<nanoseconds-since-epoch>.extension
//
// Where:
//   - prefix: a configurable string identifying the engine's segments
//     (default "kvlog").
//   - nanoseconds-since-epoch: a strictly increasing Unix nanosecond
//     timestamp, serialized through a package-level monotonic counter so
//     two segments generated in the same process can never tie.
//   - extension: a fixed file extension (default "cmdlog").
//
// Because the timestamp component is strictly increasing and has a stable
// digit width for the foreseeable future (19 digits until the year 2262),
// lexicographic filename order is identical to creation order, which is
// exactly the order replay and compaction need.
package seginfo

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ignite-kv/ignite/pkg/filesys"
)

var lastNanos atomic.Int64

// nextNanos returns a Unix nanosecond timestamp strictly greater than any
// previously returned by this process, even under a tight loop where
// time.Now() might not have advanced since the last call.
func nextNanos() int64 {
	for {
		last := lastNanos.Load()
		now := time.Now().UnixNano()
		next := now
		if next <= last {
			next = last + 1
		}
		if lastNanos.CompareAndSwap(last, next) {
			return next
		}
	}
}

// GenerateName returns a new, strictly-ordered-after-every-prior-call
// segment filename for the given prefix and extension.
func GenerateName(prefix, extension string) string {
	return fmt.Sprintf("%s_%d.%s", prefix, nextNanos(), extension)
}

// ListSegments returns the full paths of every segment file in dir whose
// name matches the glob prefix_*.extension, sorted ascending by filename.
// This ordering defines replay order and compaction scan order. Files not
// matching the extension are ignored.
func ListSegments(dir, prefix, extension string) ([]string, error) {
	pattern := filepath.Join(dir, prefix+"_*."+extension)
	matches, err := filesys.ReadDir(pattern)
	if err != nil {
		return nil, err
	}
	slices.Sort(matches)
	return matches, nil
}

// LatestSegment returns the path of the most recently created segment in
// dir, or "" if none exist.
func LatestSegment(dir, prefix, extension string) (string, error) {
	segments, err := ListSegments(dir, prefix, extension)
	if err != nil {
		return "", err
	}
	if len(segments) == 0 {
		return "", nil
	}
	return segments[len(segments)-1], nil
}

// ParseTimestamp extracts the nanosecond timestamp component from a segment
// filename produced by GenerateName.
func ParseTimestamp(name, prefix, extension string) (int64, error) {
	base := filepath.Base(name)
	if !strings.HasPrefix(base, prefix+"_") || !strings.HasSuffix(base, "."+extension) {
		return 0, fmt.Errorf("segment filename %q does not match prefix %q / extension %q", base, prefix, extension)
	}

	core := strings.TrimSuffix(strings.TrimPrefix(base, prefix+"_"), "."+extension)
	ts, err := strconv.ParseInt(core, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse timestamp from segment filename %q: %w", base, err)
	}
	return ts, nil
}
