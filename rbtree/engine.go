package rbtree

import (
	"context"
	"log/slog"

	"github.com/amp-labs/amp-rbtree/sortable"
)

//nolint:gochecknoglobals
var discard = slog.New(slog.DiscardHandler)

// engine carries the root being rebalanced plus the ambient hooks. The free
// functions build a throwaway engine per call; Tree keeps one.
type engine[K sortable.Sortable[K]] struct {
	root  *Node[K]
	log   *slog.Logger
	trace bool
	stats *Stats
}

func newEngine[K sortable.Sortable[K]](root *Node[K], logger *slog.Logger, stats *Stats) engine[K] {
	if logger == nil {
		logger = discard
	}

	return engine[K]{
		root:  root,
		log:   logger,
		trace: logger.Enabled(context.Background(), slog.LevelDebug),
		stats: stats,
	}
}

// rotate wraps the rotation primitive and takes over the root when the pivot
// was promoted to the top.
func (e *engine[K]) rotate(pivot *Node[K], dir direction, recolor bool) {
	rotate(pivot, dir, recolor)

	if pivot.parent == nil {
		e.root = pivot
	}

	e.stats.rotated()

	if e.trace {
		e.log.Debug("rbtree rotate",
			"pivot", pivot.key,
			"direction", dir.String(),
			"recolor", recolor)
	}
}

func (e *engine[K]) debug(msg string, args ...any) {
	if e.trace {
		e.log.Debug(msg, args...)
	}
}
