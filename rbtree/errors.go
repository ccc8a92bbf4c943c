package rbtree

import "errors"

var (
	// ErrDuplicateKey is returned by Insert when the key is already stored.
	// The tree is left untouched.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrKeyNotFound marks a delete of an absent key. The engine treats that
	// case as a no-op; callers that want it to be an error wrap this value.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvariantViolation is the base of every finding reported by Check.
	ErrInvariantViolation = errors.New("red-black invariant violated")
)
