package index

import (
	"go.uber.org/zap"

	"github.com/ignite-kv/ignite/internal/logpos"
)

// Index is the in-memory key directory: a hash table mapping every live key
// to the (segment, offset) of its most recent Set record.
//
// The engine is single-threaded and cooperative: every public method on
// Engine fully completes before the next one starts, so Index carries no
// mutex or atomic guards of its own.
type Index struct {
	dataDir string
	log     *zap.SugaredLogger
	entries map[string]logpos.Position
}

// Config encapsulates the configuration parameters required to initialize an
// Index.
type Config struct {
	DataDir string
	Logger  *zap.SugaredLogger
}
