// Package compaction rewrites live records into fresh segments and deletes
// the originals.
//
// Two correctness rules drive the rewrite: the scan offset used to compare
// a record's position against the key directory resets to 0 at every
// segment boundary (a single counter running across old segments would
// misidentify records in every segment after the first), and every kept
// Set record's new position is written back to the index immediately
// after it is re-appended, so the directory never points at a deleted
// file once compaction finishes.
package compaction

import (
	"go.uber.org/zap"

	"github.com/ignite-kv/ignite/internal/codec"
	"github.com/ignite-kv/ignite/internal/index"
	"github.com/ignite-kv/ignite/internal/logpos"
)

// Store is the subset of *storage.Storage compaction needs.
type Store interface {
	Segments() ([]string, error)
	ScanSegment(segment string, fn func(offset int64, line string) error) error
	ActiveSegment() string
	ActiveSize() int64
	Append(line string) (logpos.Position, error)
	Rotate() (string, error)
	Evict(segments []string) error
}

// Compactor rewrites only the live records across every sealed segment into
// fresh segments, then deletes the originals.
type Compactor struct {
	store     Store
	idx       *index.Index
	threshold uint64
	log       *zap.SugaredLogger
}

// New builds a Compactor over store and idx, using threshold as the payload
// size at which compaction itself allocates a new segment mid-rewrite.
func New(store Store, idx *index.Index, threshold uint64, log *zap.SugaredLogger) *Compactor {
	return &Compactor{store: store, idx: idx, threshold: threshold, log: log}
}

// Run executes one full compaction pass:
//
//  1. Snapshot the segments that exist right now.
//  2. Rotate to a fresh active segment so new writes during/after
//     compaction never land in a segment being rewritten.
//  3. For each old segment, in order, replay its lines with a per-segment
//     offset reset to 0, keeping a Set record only if the key directory
//     still points exactly at (segment, offset) — i.e. it is the live
//     record for that key — and always dropping Remove records.
//  4. Evict every old segment: close its reader and delete the file.
func (c *Compactor) Run() error {
	// Snapshot every segment that exists right now, including the one
	// currently active — once we rotate below it becomes just another
	// sealed segment subject to rewriting like any other.
	rewriteTargets, err := c.store.Segments()
	if err != nil {
		return err
	}

	if len(rewriteTargets) == 0 {
		c.log.Infow("compaction skipped: nothing to rewrite")
		return nil
	}

	if _, err := c.store.Rotate(); err != nil {
		return err
	}

	var kept, dropped int
	for _, segment := range rewriteTargets {
		err := c.store.ScanSegment(segment, func(offset int64, line string) error {
			rec, err := codec.Decode(line)
			if err != nil {
				return err
			}

			if rec.IsRemove() {
				dropped++
				return nil
			}

			key := rec.Set.Key
			current, ok := c.idx.Get(key)
			isLive := ok && current.Segment == segment && current.Offset == offset
			if !isLive {
				dropped++
				return nil
			}

			encoded, err := codec.EncodeSet(rec.Set.Key, rec.Set.Value)
			if err != nil {
				return err
			}

			if c.threshold > 0 && uint64(c.store.ActiveSize())+uint64(len(encoded))+1 >= c.threshold {
				if _, err := c.store.Rotate(); err != nil {
					return err
				}
			}

			newPos, err := c.store.Append(encoded)
			if err != nil {
				return err
			}

			c.idx.Set(key, newPos)
			kept++
			return nil
		})
		if err != nil {
			return err
		}
	}

	if err := c.store.Evict(rewriteTargets); err != nil {
		return err
	}

	c.log.Infow("compaction complete", "segmentsRewritten", len(rewriteTargets), "kept", kept, "dropped", dropped)
	return nil
}
