// Package ignite provides a high-performance key/value data store
// designed for fast read and write operations, inspired by Bitcask.
// It combines an in-memory hash table (the key directory) with an
// append-only log structure on disk to achieve high throughput, and is
// meant for applications requiring fast read and write operations such as
// caching, session management, and real-time data processing.
package ignite

import (
	"context"

	"github.com/ignite-kv/ignite/internal/engine"
	"github.com/ignite-kv/ignite/pkg/logger"
	"github.com/ignite-kv/ignite/pkg/options"
)

// Instance is the primary entry point for interacting with the Ignite
// store: it encapsulates the core engine responsible for data handling and
// the configuration options for this specific database instance.
type Instance struct {
	engine  *engine.Engine
	options *options.Options
}

// NewInstance creates and initializes a new Ignite DB instance: it opens
// (or creates) the data directory, runs recovery, and takes exclusive
// ownership of the directory for the lifetime of the instance.
func NewInstance(ctx context.Context, service string, opts ...options.OptionFunc) (*Instance, error) {
	log := logger.New(service)

	defaultOpts := options.NewDefaultOptions()
	for _, opt := range opts {
		opt(&defaultOpts)
	}

	eng, err := engine.New(ctx, &engine.Config{Logger: log, Options: &defaultOpts})
	if err != nil {
		return nil, err
	}

	return &Instance{engine: eng, options: &defaultOpts}, nil
}

// Set stores a key-value pair in the database. If the key already exists,
// its value is overwritten. The write is appended to the active segment
// and becomes visible to Get immediately.
func (i *Instance) Set(ctx context.Context, key, value string) error {
	return i.engine.Set(key, value)
}

// Get retrieves the value associated with key. The second return value
// reports whether the key was found; a missing key is not an error.
func (i *Instance) Get(ctx context.Context, key string) (string, bool, error) {
	return i.engine.Get(key)
}

// Remove deletes key from the database by appending a tombstone record.
// Removing a key that does not exist returns a KeyNotFound error.
func (i *Instance) Remove(ctx context.Context, key string) error {
	return i.engine.Remove(key)
}

// Close gracefully shuts down the Ignite DB instance: it flushes and syncs
// the active segment, closes every open file handle, and releases the
// directory lock.
func (i *Instance) Close(ctx context.Context) error {
	return i.engine.Close()
}
