package gostreams

import (
	"runtime"

	"go.uber.org/zap"
)

// An Option configures an Executor.
type Option func(e *Executor)

// WithParallelism sets the maximum number of goroutines traversing cursors concurrently.
// If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithParallelism(n int) Option {
	return func(e *Executor) {
		e.parallelism = sanitizeParallelism(n)
	}
}

// WithMinSplitSize sets the estimated size below which cursors are not split any further.
func WithMinSplitSize(n int64) Option {
	return func(e *Executor) {
		e.minSplitSize = max(n, 1)
	}
}

// WithPrefixMode sets the implementation used by the Prefixer returned by PrefixerFor.
func WithPrefixMode(mode PrefixMode) Option {
	return func(e *Executor) {
		e.prefixMode = mode
	}
}

// WithLogger sets the logger used to report decomposition and traversal failures.
// A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Executor) {
		if logger == nil {
			logger = zap.NewNop()
		}

		e.logger = logger
	}
}

// sanitizeParallelism returns n if it is positive, or runtime.GOMAXPROCS(0) otherwise.
func sanitizeParallelism(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return n
}
