package hll

import "fmt"

// assertf panics with a formatted message when cond is false. It guards the
// InvariantViolation class of §7: conditions that must be unreachable given
// the contracts the rest of the package upholds (an out-of-range linear
// count, a decoded rank past its precision's ceiling, a register histogram
// that doesn't sum to m). These are programming-error assertions, not
// user-facing errors, and are never expected to fire.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
