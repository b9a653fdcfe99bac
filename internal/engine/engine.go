// Package engine coordinates the index, storage, and compaction subsystems
// into a single-threaded, cooperative key-value engine: New runs recovery
// and takes an exclusive lock on the data directory; Set, Get, and Remove
// assume exclusive access to the instance and must never be called
// concurrently; Close flushes and releases every resource, reporting every
// failure it encounters rather than just the first.
package engine

import (
	"context"
	stdErrors "errors"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ignite-kv/ignite/internal/codec"
	"github.com/ignite-kv/ignite/internal/compaction"
	"github.com/ignite-kv/ignite/internal/index"
	"github.com/ignite-kv/ignite/internal/recovery"
	"github.com/ignite-kv/ignite/internal/storage"
	"github.com/ignite-kv/ignite/pkg/dirlock"
	"github.com/ignite-kv/ignite/pkg/errors"
	"github.com/ignite-kv/ignite/pkg/options"
)

// ErrEngineClosed is returned when attempting to perform operations on a closed engine.
var ErrEngineClosed = stdErrors.New("operation failed: cannot access closed engine")

// Engine coordinates the index, storage, and compaction subsystems and is
// the single entry point every public operation (Get/Set/Remove) flows
// through.
type Engine struct {
	options *options.Options
	log     *zap.SugaredLogger
	closed  bool

	index   *index.Index
	storage *storage.Storage
	compact *compaction.Compactor
	lock    *dirlock.Lock
}

// Config holds the parameters needed to initialize a new Engine instance.
type Config struct {
	Options *options.Options
	Logger  *zap.SugaredLogger
}

// New opens (or creates) the data directory, takes an exclusive lock on it,
// runs recovery to rebuild the key directory from every segment on disk,
// and returns a ready-to-use Engine.
func New(ctx context.Context, config *Config) (*Engine, error) {
	if config == nil || config.Options == nil || config.Logger == nil {
		return nil, errors.NewValidationError(
			nil, errors.ErrorCodeInvalidInput, "engine configuration is required",
		).WithField("config").WithRule("required")
	}

	store, err := storage.New(ctx, &storage.Config{Options: config.Options, Logger: config.Logger})
	if err != nil {
		return nil, err
	}

	lock, err := dirlock.Acquire(config.Options.Directory)
	if err != nil {
		store.Close()
		return nil, err
	}

	idx, err := index.New(ctx, &index.Config{DataDir: config.Options.Directory, Logger: config.Logger})
	if err != nil {
		lock.Unlock()
		store.Close()
		return nil, err
	}

	if err := recovery.Replay(store, idx, config.Logger); err != nil {
		lock.Unlock()
		store.Close()
		return nil, err
	}

	compactor := compaction.New(store, idx, config.Options.CompactionThreshold, config.Logger)

	return &Engine{
		options: config.Options,
		log:     config.Logger,
		index:   idx,
		storage: store,
		compact: compactor,
		lock:    lock,
	}, nil
}

// Get returns the value stored for key and true, or "" and false if key has
// no live entry — a missing key is not an error. The active segment is
// flushed before the read so the read always observes every write issued
// so far by this instance.
func (e *Engine) Get(key string) (string, bool, error) {
	if e.closed {
		return "", false, ErrEngineClosed
	}
	if key == "" {
		return "", false, errors.NewKeyNotProvidedError("Get")
	}

	pos, ok := e.index.Get(key)
	if !ok {
		return "", false, nil
	}

	if err := e.storage.Sync(); err != nil {
		return "", false, err
	}

	line, err := e.storage.ReadAt(pos)
	if err != nil {
		return "", false, err
	}

	rec, err := codec.Decode(line)
	if err != nil {
		return "", false, err
	}
	if !rec.IsSet() {
		// The key directory only ever points at Set records by construction,
		// so this should not occur.
		return "", false, nil
	}
	if rec.Set.Key != key {
		return "", false, errors.NewCorruptionError(nil, "key directory entry points at a record for a different key").
			WithSegment(pos.Segment).WithOffset(pos.Offset).WithLine(line)
	}

	return rec.Set.Value, true, nil
}

// Set writes key=value as a new record and updates the key directory to
// point at it. If the active segment would exceed the compaction threshold
// as a result, compaction runs first.
func (e *Engine) Set(key, value string) error {
	if e.closed {
		return ErrEngineClosed
	}
	if key == "" {
		return errors.NewKeyNotProvidedError("Set")
	}

	encoded, err := codec.EncodeSet(key, value)
	if err != nil {
		return err
	}

	if e.shouldCompact(len(encoded)) {
		if err := e.compact.Run(); err != nil {
			return err
		}
	}

	pos, err := e.storage.Append(encoded)
	if err != nil {
		return err
	}

	e.index.Set(key, pos)
	return nil
}

// Remove deletes key by appending a tombstone record and clearing its key
// directory entry. Removing a key that doesn't exist is KeyNotFound.
func (e *Engine) Remove(key string) error {
	if e.closed {
		return ErrEngineClosed
	}
	if key == "" {
		return errors.NewKeyNotProvidedError("Remove")
	}
	if !e.index.Contains(key) {
		return errors.NewKeyNotFoundError(key)
	}

	encoded, err := codec.EncodeRemove(key)
	if err != nil {
		return err
	}

	if e.shouldCompact(len(encoded)) {
		if err := e.compact.Run(); err != nil {
			return err
		}
	}

	if _, err := e.storage.Append(encoded); err != nil {
		return err
	}

	e.index.Remove(key)
	return nil
}

// shouldCompact reports whether appending a record of addedBytes to the
// active segment would cross the configured compaction threshold.
func (e *Engine) shouldCompact(addedBytes int) bool {
	threshold := e.options.CompactionThreshold
	if threshold == 0 {
		return false
	}
	return uint64(e.storage.ActiveSize())+uint64(addedBytes)+1 >= threshold
}

// Close flushes and releases every resource the engine holds. It aggregates
// every error encountered rather than stopping at the first, so a failure
// to unlock the directory never masks a failure to sync the active segment.
func (e *Engine) Close() error {
	if e.closed {
		return ErrEngineClosed
	}
	e.closed = true

	var err error
	err = multierr.Append(err, e.storage.Sync())
	err = multierr.Append(err, e.storage.Close())
	err = multierr.Append(err, e.index.Close())
	err = multierr.Append(err, e.lock.Unlock())
	return err
}
