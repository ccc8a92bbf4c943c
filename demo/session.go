// Package demo drives an integer red-black tree from scripts and interactive
// commands, printing the tree and reporting duplicates and misses.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/amp-labs/amp-rbtree/cli"
	"github.com/amp-labs/amp-rbtree/logger"
	"github.com/amp-labs/amp-rbtree/rbtree"
	"github.com/amp-labs/amp-rbtree/sortable"
	"github.com/fatih/color"
)

// Config controls a Session.
type Config struct {
	// Out receives tree renderings and banners.
	Out io.Writer
	// Color tags red and black nodes with ANSI colors.
	Color bool
	// Strict turns duplicate inserts and deletes of absent keys into errors
	// instead of logged warnings.
	Strict bool
	// Trace logs every rotation and fix-up case at debug level.
	Trace bool
	// Stats is shared with the tree, e.g. to attach a metrics collector
	// up front. Optional.
	Stats *rbtree.Stats
}

// Session owns one tree of integer keys.
type Session struct {
	ctx     context.Context //nolint:containedctx
	tree    *rbtree.Tree[sortable.Int]
	out     io.Writer
	printer rbtree.Printer[sortable.Int]
	strict  bool

	// pick chooses a key to delete when the REPL gets "delete" alone.
	pick func(label string, choices []string) (int, string, error)
	// confirm guards "clear" in the REPL. Nil means clear without asking.
	confirm func(label string) (bool, error)
}

// NewSession creates an empty session. Logging goes through the logger
// package using ctx.
func NewSession(ctx context.Context, cfg Config) *Session {
	ctx = logger.WithSubsystem(ctx, "rbdemo")

	var opts []rbtree.Option
	if cfg.Stats != nil {
		opts = append(opts, rbtree.WithStats(cfg.Stats))
	}

	if cfg.Trace {
		opts = append(opts, rbtree.WithLogger(logger.Get(logger.With(ctx, "component", "rbtree"))))
	}

	out := cfg.Out
	if out == nil {
		out = io.Discard
	}

	s := &Session{
		ctx:    ctx,
		tree:   rbtree.New[sortable.Int](opts...),
		out:    out,
		strict: cfg.Strict,
	}

	if cfg.Color {
		s.printer.Tag = colorTag()
	}

	return s
}

func colorTag() func(rbtree.Color) string {
	red := color.New(color.FgHiRed, color.Bold)
	black := color.New(color.FgHiBlack, color.Bold)

	red.EnableColor()
	black.EnableColor()

	return func(c rbtree.Color) string {
		if c == rbtree.Red {
			return red.Sprint(c.String())
		}

		return black.Sprint(c.String())
	}
}

// Tree exposes the underlying tree.
func (s *Session) Tree() *rbtree.Tree[sortable.Int] {
	return s.tree
}

func (s *Session) log() *slog.Logger {
	return logger.Get(s.ctx)
}

// Insert adds keys in order. A duplicate is skipped with a warning, or
// returned as an error in strict mode.
func (s *Session) Insert(keys ...int) error {
	for _, key := range keys {
		err := s.tree.Insert(sortable.Int(key))

		switch {
		case err == nil:
			s.log().Debug("inserted", "key", key, "size", s.tree.Len())
		case errors.Is(err, rbtree.ErrDuplicateKey) && !s.strict:
			s.log().Warn("skipping insert", "error", logger.AnnotateError(err, "key", key))
		default:
			return logger.AnnotateError(err, "key", key)
		}
	}

	return nil
}

// Delete removes keys in order. An absent key is skipped with a notice, or
// reported as ErrKeyNotFound in strict mode.
func (s *Session) Delete(keys ...int) error {
	for _, key := range keys {
		if s.tree.Delete(sortable.Int(key)) {
			s.log().Debug("deleted", "key", key, "size", s.tree.Len())

			continue
		}

		err := fmt.Errorf("%w: %d", rbtree.ErrKeyNotFound, key)
		if s.strict {
			return logger.AnnotateError(err, "key", key)
		}

		s.log().Info("skipping delete", "error", logger.AnnotateError(err, "key", key))
	}

	return nil
}

// Print writes the tree sideways, or "(empty)".
func (s *Session) Print() error {
	if s.tree.Len() == 0 {
		_, err := fmt.Fprintln(s.out, "(empty)")

		return err
	}

	return s.printer.Fprint(s.out, s.tree.Root(), 0)
}

// Banner writes title in a box, followed by a blank line when boxed.
func (s *Session) Banner(title string) error {
	_, err := io.WriteString(s.out, cli.BannerAutoWidth(title, cli.AlignLeft))

	return err
}

// Validate checks every invariant and writes a one-line verdict. The error
// lists each violation.
func (s *Session) Validate() error {
	if err := s.tree.Check(); err != nil {
		_, _ = fmt.Fprintln(s.out, "invalid")

		return err
	}

	_, err := fmt.Fprintf(s.out, "valid: %d keys, height %d, black-height %d\n",
		s.tree.Len(), s.tree.Height(), s.tree.BlackHeight())

	return err
}
