// Package storage manages the on-disk segment files that back the ignite
// key-value store: an active segment that every write is appended to, and
// any number of sealed segments that remain readable until compaction
// evicts them.
package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ignite-kv/ignite/internal/logpos"
	"github.com/ignite-kv/ignite/pkg/errors"
	"github.com/ignite-kv/ignite/pkg/filesys"
	"github.com/ignite-kv/ignite/pkg/options"
	"github.com/ignite-kv/ignite/pkg/seginfo"
)

// New creates and initializes a new Storage instance: it ensures the data
// directory exists, discovers existing segments, and either continues
// appending to the most recent one or allocates a fresh one.
func New(ctx context.Context, config *Config) (*Storage, error) {
	if config == nil || config.Options == nil || config.Logger == nil {
		return nil, fmt.Errorf("invalid configuration")
	}

	dir := config.Options.Directory
	if err := filesys.CreateDir(dir, 0755, true); err != nil {
		return nil, errors.ClassifyDirectoryCreationError(err, dir)
	}

	prefix := config.Options.SegmentPrefix
	ext := config.Options.SegmentExtension

	config.Logger.Infow("discovering existing segments", "dir", dir, "prefix", prefix, "extension", ext)

	latest, err := seginfo.LatestSegment(dir, prefix, ext)
	if err != nil {
		return nil, errors.NewStorageError(err, errors.ErrorCodeIO, "failed to list segments").WithPath(dir)
	}

	active := latest
	if active == "" {
		active = filepath.Join(dir, seginfo.GenerateName(prefix, ext))
		config.Logger.Infow("no existing segments found, starting fresh", "segment", active)
	} else {
		config.Logger.Infow("continuing with most recent segment", "segment", active)
	}

	writer, err := openWriter(active)
	if err != nil {
		return nil, err
	}

	// The most recently written segment is only adopted as active if it
	// still has room under the compaction threshold; otherwise it is sealed
	// as-is and a fresh segment is allocated, so a reopened engine never
	// keeps appending to an already-oversized segment.
	if latest != "" && config.Options.CompactionThreshold > 0 && uint64(writer.Size()) >= config.Options.CompactionThreshold {
		config.Logger.Infow("most recent segment already at or over compaction threshold, allocating fresh segment",
			"segment", active, "size", writer.Size(), "threshold", config.Options.CompactionThreshold)

		if err := writer.Close(); err != nil {
			return nil, err
		}

		active = filepath.Join(dir, seginfo.GenerateName(prefix, ext))
		writer, err = openWriter(active)
		if err != nil {
			return nil, err
		}
	}

	s := &Storage{
		dir:     dir,
		options: config.Options,
		log:     config.Logger,
		writer:  writer,
		readers: newReaderPool(),
	}

	return s, nil
}

// Append writes line to the active segment and returns where it landed.
func (s *Storage) Append(line string) (logpos.Position, error) {
	return s.writer.Write(line)
}

// ReadAt returns the record stored at pos.
func (s *Storage) ReadAt(pos logpos.Position) (string, error) {
	return s.readers.ReadAt(pos)
}

// ScanSegment streams every record line in segment, in file order.
func (s *Storage) ScanSegment(segment string, fn func(offset int64, line string) error) error {
	return s.readers.Lines(segment, fn)
}

// ActiveSegment returns the path of the segment currently being written to.
func (s *Storage) ActiveSegment() string {
	return s.writer.segment
}

// ActiveSize returns the active segment's current size in bytes.
func (s *Storage) ActiveSize() int64 {
	return s.writer.Size()
}

// Segments returns every segment file on disk, sealed and active, sorted
// ascending by creation order.
func (s *Storage) Segments() ([]string, error) {
	return seginfo.ListSegments(s.dir, s.options.SegmentPrefix, s.options.SegmentExtension)
}

// Rotate seals the current active segment and opens a brand new one as the
// new write target. It returns the path of the newly active segment. Used
// both when the active segment crosses the compaction threshold and by the
// compactor itself, which needs writes to land somewhere other than the
// segments it is busy rewriting.
func (s *Storage) Rotate() (string, error) {
	if err := s.writer.Close(); err != nil {
		return "", err
	}

	next := filepath.Join(s.dir, seginfo.GenerateName(s.options.SegmentPrefix, s.options.SegmentExtension))
	writer, err := openWriter(next)
	if err != nil {
		return "", err
	}

	s.writer = writer
	s.log.Infow("rotated active segment", "segment", next)
	return next, nil
}

// Evict closes and removes the given sealed segments from disk. The active
// segment must never be passed here.
func (s *Storage) Evict(segments []string) error {
	if err := s.readers.Evict(segments); err != nil {
		return err
	}
	for _, segment := range segments {
		if err := filesys.DeleteFile(segment); err != nil {
			return errors.NewStorageError(err, errors.ErrorCodeIO, "failed to remove compacted segment").
				WithPath(segment)
		}
	}
	return nil
}

// Sync flushes and fsyncs the active segment, making every write so far
// durable and visible to fresh file handles.
func (s *Storage) Sync() error {
	return s.writer.Sync()
}

// Close syncs and closes the active segment and every open reader.
func (s *Storage) Close() error {
	werr := s.writer.Close()
	rerr := s.readers.Close()
	if werr != nil {
		return werr
	}
	return rerr
}
