package kdtree

import (
	"io"
	"log/slog"
)

type options struct {
	logger   *slog.Logger
	capacity int
}

// Option configures a Tree.
type Option func(*options)

// WithLogger sets the logger used for debug output. Insertions, ignored
// duplicates and rejected arguments are logged at slog.LevelDebug.
//
// If nil is passed, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = noopLogger()
		}
		o.logger = l
	}
}

// WithCapacity pre-sizes the node storage for n points.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// noopLogger discards all output.
func noopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}
