// Package dirlock takes an advisory exclusive lock on an engine's data
// directory for the lifetime of the process.
//
// The data directory is exclusively owned by one engine instance; opening
// a second instance on the same directory would let two in-memory key
// directories silently diverge from what's actually on disk. Acquire fails
// fast with a clear error instead of letting that happen.
package dirlock

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Lock is a held advisory lock on a directory's lock file. Unlock releases
// it and closes the underlying file handle.
type Lock struct {
	file *os.File
}

// lockFileName is the sentinel file flock is taken on; it is not a segment
// and is never replayed or compacted.
const lockFileName = ".lock"

// Acquire takes a non-blocking exclusive lock on dir/.lock. It returns an
// error immediately if another process already holds it, rather than
// blocking.
func Acquire(dir string) (*Lock, error) {
	path := filepath.Join(dir, lockFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("open lock file %s: %w", path, err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		return nil, fmt.Errorf("directory %s is already owned by another ignite instance: %w", dir, err)
	}

	return &Lock{file: f}, nil
}

// Unlock releases the lock and closes the lock file handle.
func (l *Lock) Unlock() error {
	if l == nil || l.file == nil {
		return nil
	}
	if err := unix.Flock(int(l.file.Fd()), unix.LOCK_UN); err != nil {
		l.file.Close()
		return err
	}
	return l.file.Close()
}
