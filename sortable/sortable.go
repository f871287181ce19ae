package sortable

import (
	"github.com/amp-labs/amp-compare/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare turns the Equals/LessThan pair of a Sortable into a three-way
// result, suitable for building a comparator.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case compare.Equals[T](a, b):
		return 0
	case a.LessThan(b):
		return -1
	default:
		return 1
	}
}
