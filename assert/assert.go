// Package assert provides panicking checks for programmer errors.
//
// Assertions are on by default. Building with the assertions_disabled tag turns
// every check into a no-op, removing the cost from hot paths such as tree
// rotations.
package assert

import "fmt"

// message renders the optional panic arguments:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func message(args []any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
