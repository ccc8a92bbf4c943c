// Package validate runs self-validation on values that know how to check
// themselves. Callers match failures with errors.Is(err, errors.ErrValidation).
package validate

import (
	"context"
	"fmt"
	"reflect"

	"github.com/amp-labs/amp-rbtree/errors"
	"github.com/amp-labs/amp-rbtree/logger"
)

// HasValidate is implemented by types that can check their own invariants.
type HasValidate interface {
	// Validate returns an error describing the first problem found.
	// It must be safe to call more than once.
	Validate() error
}

// HasValidateWithContext is the context-aware variant of HasValidate.
type HasValidateWithContext interface {
	Validate(ctx context.Context) error
}

// Validate calls value's Validate method and wraps any failure with
// errors.ErrValidation. Nil values pass. Values implementing neither
// interface pass too, with a warning logged, since that usually means
// a missing method rather than a valid value.
func Validate(ctx context.Context, value any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := validateInternal(ctx, value); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrValidation, err)
	}

	return nil
}

func validateInternal(ctx context.Context, value any) error {
	if isNilish(value) {
		return nil
	}

	switch v := value.(type) {
	case HasValidate:
		return v.Validate()
	case HasValidateWithContext:
		return v.Validate(ctx)
	default:
		logger.Get(ctx).Warn("Validate called on unsupported type",
			"type", fmt.Sprintf("%T", v))

		return nil
	}
}

// isNilish reports a literal nil or a typed nil behind an interface.
func isNilish(val any) bool {
	if val == nil {
		return true
	}

	v := reflect.ValueOf(val)

	switch v.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return v.IsNil()
	}

	return false
}
