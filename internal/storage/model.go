package storage

import (
	"bufio"
	"os"

	"go.uber.org/zap"

	"github.com/ignite-kv/ignite/pkg/options"
)

// Storage is the façade over the segment files on disk: one Writer for the
// active segment and a ReaderPool that can seek into any segment, active or
// sealed.
type Storage struct {
	dir     string
	options *options.Options
	log     *zap.SugaredLogger

	writer  *Writer
	readers *ReaderPool
}

// Config encapsulates the configuration parameters required to initialize a
// Storage instance.
type Config struct {
	Options *options.Options
	Logger  *zap.SugaredLogger
}

// Writer owns the single active segment file that new records are appended
// to. Every other segment on disk is sealed and read-only.
type Writer struct {
	segment string
	file    *os.File
	bw      *bufio.Writer
	size    int64
}
