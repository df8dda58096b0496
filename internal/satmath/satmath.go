// Package satmath provides overflow-checked arithmetic over Go's
// generic integer constraint, used by bytebuffer to detect the
// size-limit condition the spec requires on buffer growth and
// concatenation instead of silently wrapping.
package satmath

import "golang.org/x/exp/constraints"

// AddOverflows reports whether a+b would exceed max. Both a and b must
// be non-negative; callers add separately once they know it is safe.
func AddOverflows[T constraints.Integer](a, b, max T) bool {
	return a > max-b
}
