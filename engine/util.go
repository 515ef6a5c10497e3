package engine

import "golang.org/x/exp/constraints"

// Abs returns |x| for any signed integer type.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
