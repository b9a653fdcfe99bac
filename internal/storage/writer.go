package storage

import (
	"io"
	"os"

	"bufio"

	"github.com/ignite-kv/ignite/internal/logpos"
	"github.com/ignite-kv/ignite/pkg/errors"
)

// openWriter opens segment (creating it if needed) for append-only writing
// and positions size at its current length, so a reopened active segment
// picks up exactly where a previous process left off.
func openWriter(segment string) (*Writer, error) {
	file, err := os.OpenFile(segment, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.NewStorageError(err, errors.ErrorCodeIO, "failed to open segment file").
			WithPath(segment)
	}

	size, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		file.Close()
		return nil, errors.NewStorageError(err, errors.ErrorCodeIO, "failed to seek to end of segment").
			WithPath(segment)
	}

	return &Writer{segment: segment, file: file, bw: bufio.NewWriter(file), size: size}, nil
}

// Write appends line followed by a newline to the active segment and
// returns the position the record was written at.
func (w *Writer) Write(line string) (logpos.Position, error) {
	pos := logpos.Position{Segment: w.segment, Offset: w.size}

	n, err := w.bw.WriteString(line)
	if err != nil {
		return logpos.Position{}, errors.NewStorageError(err, errors.ErrorCodeIO, "failed to write record").
			WithPath(w.segment).WithOffset(w.size)
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return logpos.Position{}, errors.NewStorageError(err, errors.ErrorCodeIO, "failed to write record delimiter").
			WithPath(w.segment).WithOffset(w.size)
	}

	w.size += int64(n) + 1
	return pos, nil
}

// Size returns the active segment's current size in bytes, including
// buffered-but-unflushed writes.
func (w *Writer) Size() int64 {
	return w.size
}

// Sync flushes the buffered writer and fsyncs the underlying file, making
// every write durable and visible to readers that open the file fresh.
func (w *Writer) Sync() error {
	if err := w.bw.Flush(); err != nil {
		return errors.NewStorageError(err, errors.ErrorCodeIO, "failed to flush segment writer").WithPath(w.segment)
	}
	if err := w.file.Sync(); err != nil {
		return errors.ClassifySyncError(err, w.segment, w.segment, w.size)
	}
	return nil
}

// Close flushes and closes the active segment file.
func (w *Writer) Close() error {
	if err := w.Sync(); err != nil {
		w.file.Close()
		return err
	}
	if err := w.file.Close(); err != nil {
		return errors.NewStorageError(err, errors.ErrorCodeIO, "failed to close segment file").WithPath(w.segment)
	}
	return nil
}
