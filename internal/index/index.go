// Package index provides the in-memory key directory for the ignite
// key-value store: a hash table mapping every live key to the location of
// its most recent Set record on disk. This is the core Bitcask principle —
// keep all keys in memory, keep values on disk — reduced to just a key and
// a (segment, offset) pair per entry.
package index

import (
	"context"
	stdErrors "errors"

	"github.com/ignite-kv/ignite/internal/logpos"
	"github.com/ignite-kv/ignite/pkg/errors"
)

var ErrIndexClosed = stdErrors.New("operation failed: cannot access closed index")

// New creates and initializes a new Index instance.
func New(ctx context.Context, config *Config) (*Index, error) {
	if config == nil || config.DataDir == "" || config.Logger == nil {
		return nil, errors.NewValidationError(
			nil, errors.ErrorCodeInvalidInput, "Index configuration is required",
		).WithField("config").WithRule("required").WithProvided(config)
	}

	return &Index{
		log:     config.Logger,
		dataDir: config.DataDir,
		entries: make(map[string]logpos.Position, 2048),
	}, nil
}

// Get returns the position of key's most recent Set record and whether it
// is present in the index at all.
func (idx *Index) Get(key string) (logpos.Position, bool) {
	pos, ok := idx.entries[key]
	return pos, ok
}

// Set records or overwrites key's position. Called after every successful
// Set append and, during compaction, after every kept record is rewritten.
func (idx *Index) Set(key string, pos logpos.Position) {
	idx.entries[key] = pos
}

// Remove deletes key from the index. It is a no-op if the key isn't present.
func (idx *Index) Remove(key string) {
	delete(idx.entries, key)
}

// Contains reports whether key currently has a live entry.
func (idx *Index) Contains(key string) bool {
	_, ok := idx.entries[key]
	return ok
}

// Len returns the number of live keys.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Close releases the index's backing map. The index must not be used again
// afterward.
func (idx *Index) Close() error {
	if idx.entries == nil {
		return ErrIndexClosed
	}

	idx.log.Infow("Closing index system", "keys", len(idx.entries))
	clear(idx.entries)
	idx.entries = nil
	return nil
}
