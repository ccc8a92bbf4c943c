package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError attaches slog key-value pairs to err. When the result is
// logged through a logger set up by ConfigureLoggingWithOptions, the pairs
// appear as top-level attributes next to the error message. The wrapper is
// transparent to errors.Is and errors.As. Returns nil if err is nil.
//
//	if err := tree.Insert(key); err != nil {
//	    return logger.AnnotateError(err, "key", key, "step", i)
//	}
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	attrs := make([]slog.Attr, 0, r.NumAttrs())

	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)

		return true
	})

	return &slogError{err: err, attrs: attrs}
}

type slogError struct {
	err   error
	attrs []slog.Attr
}

var _ error = (*slogError)(nil)

func (s *slogError) Error() string {
	return s.err.Error()
}

func (s *slogError) Unwrap() error {
	return s.err
}

// slogErrorLogger decorates a handler so annotated errors are logged as the
// underlying error plus their attributes.
type slogErrorLogger struct {
	inner slog.Handler
}

var _ slog.Handler = (*slogErrorLogger)(nil)

func (s *slogErrorLogger) Enabled(ctx context.Context, level slog.Level) bool {
	return s.inner.Enabled(ctx, level)
}

func (s *slogErrorLogger) Handle(ctx context.Context, record slog.Record) error {
	var (
		baseAttrs []slog.Attr
		errAttrs  []slog.Attr
	)

	record.Attrs(func(attr slog.Attr) bool {
		baseAttrs = append(baseAttrs, attr)

		err, ok := attr.Value.Any().(error)
		if !ok {
			return true
		}

		// Outer annotations first, then any nested deeper in the chain.
		var se *slogError
		for errors.As(err, &se) {
			errAttrs = append(errAttrs, se.attrs...)
			err = se.err
		}

		return true
	})

	if len(errAttrs) == 0 {
		return s.inner.Handle(ctx, record)
	}

	r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	r.AddAttrs(baseAttrs...)
	r.AddAttrs(errAttrs...)

	return s.inner.Handle(ctx, r)
}

func (s *slogErrorLogger) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithAttrs(attrs)}
}

func (s *slogErrorLogger) WithGroup(name string) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithGroup(name)}
}
