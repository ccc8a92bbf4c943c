// Package errors provides small helpers for accumulating errors.
package errors

import (
	"errors"
	"fmt"
)

// ErrValidation wraps every failure reported through the validate package.
var ErrValidation = errors.New("validation failed")

// Collection is a thread-unsafe utility for accumulating multiple errors.
// The tree validator uses it to report every broken invariant in one pass
// instead of stopping at the first.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Addf wraps base with a formatted detail message and appends it.
// The result still matches base through errors.Is.
func (c *Collection) Addf(base error, format string, args ...any) {
	c.Add(fmt.Errorf("%w: %s", base, fmt.Sprintf(format, args...)))
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
