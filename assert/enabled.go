//go:build !assertions_disabled

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = true

// True asserts that the given value is true.
// If the assertion fails, it panics with a message built from args.
func True(value bool, args ...any) {
	if value {
		return
	}

	panic(message(args))
}

// False asserts that the given value is false.
// The optional args are passed to True and follow the same formatting rules.
func False(value bool, args ...any) {
	True(!value, args...)
}

// NotNil asserts that the given pointer is not nil. Taking a typed pointer
// avoids the interface trap where a nil *T stored in an any compares non-nil.
func NotNil[T any](ptr *T, args ...any) {
	True(ptr != nil, args...)
}
