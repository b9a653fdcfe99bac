// Package logger builds the structured logger every engine component logs
// through. pkg/ignite's public API always constructed one via
// logger.New(service) before this package existed; this fills that gap with
// go.uber.org/zap, the logging library the rest of the tree already depends
// on for its SugaredLogger fields.
package logger

import "go.uber.org/zap"

// New builds a production zap logger tagged with the given service name and
// returns its sugared form, the API internal/storage, internal/index, and
// internal/engine expect.
func New(service string) *zap.SugaredLogger {
	log, err := zap.NewProduction()
	if err != nil {
		// zap.NewProduction only fails on a broken encoder/sink config,
		// which never happens with the default config used here.
		log = zap.NewNop()
	}
	return log.Sugar().With("service", service)
}

// Noop returns a logger that discards everything, useful for tests that
// don't want production log noise.
func Noop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
