package rbtree

import "log/slog"

// Option configures a Tree.
type Option func(*options)

type options struct {
	logger *slog.Logger
	stats  *Stats
}

// WithLogger routes a debug-level trace of every rotation and fix-up case to
// logger. Without it the tree logs nothing.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStats makes the tree count into stats instead of a private Stats, so
// several trees can share counters or a collector can be attached up front.
func WithStats(stats *Stats) Option {
	return func(o *options) {
		o.stats = stats
	}
}
