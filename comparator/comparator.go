package comparator

import (
	"slices"

	"github.com/amp-labs/amp-compare/compare"
)

// Comparator orders two values of type T: negative when a comes first, zero
// when they rank equally, positive when b comes first.
//
// A Comparator is an immutable value. Every combinator returns a new one, so
// a Comparator may be shared and used from several goroutines at once.
//
// A Comparator built from an invalid Extractor somewhere in its chain carries
// that error; Err, Compare and Sort all report it. The zero Comparator
// considers every pair equal.
type Comparator[T any] struct {
	compare func(a, b T) (int, error)
	err     error
}

// New wraps a plain comparison function, such as cmp.Compare[int] or
// strings.Compare.
func New[T any](fn func(a, b T) int) Comparator[T] {
	if fn == nil {
		return Comparator[T]{err: invalidExtractor("null")}
	}

	return Comparator[T]{compare: func(a, b T) (int, error) {
		return fn(a, b), nil
	}}
}

// NewWithError wraps a comparison function that can fail.
func NewWithError[T any](fn func(a, b T) (int, error)) Comparator[T] {
	if fn == nil {
		return Comparator[T]{err: invalidExtractor("null")}
	}

	return Comparator[T]{compare: fn}
}

// A Comparator used as an Extractor is taken as it is; the key comparator
// does not apply to it.
func (c Comparator[T]) comparator(_ KeyComparator) (Comparator[T], error) {
	return c, c.err
}

// Err returns the construction error carried by this Comparator, if any.
func (c Comparator[T]) Err() error {
	return c.err
}

// Compare orders a and b. Errors from extractors and key comparators are
// returned unchanged.
func (c Comparator[T]) Compare(a, b T) (int, error) {
	if c.err != nil {
		return 0, c.err
	}

	if c.compare == nil {
		return 0, nil
	}

	return c.compare(a, b)
}

// Func returns a plain comparison function for use with slices.SortFunc,
// slices.BinarySearchFunc and the like. The function panics with the error
// if a comparison fails; use Sort to get the error back instead.
func (c Comparator[T]) Func() func(a, b T) int {
	return func(a, b T) int {
		res, err := c.Compare(a, b)
		if err != nil {
			panic(err)
		}

		return res
	}
}

// Reverse returns a Comparator imposing the opposite order.
func (c Comparator[T]) Reverse() Comparator[T] {
	if c.err != nil {
		return c
	}

	return NewWithError(func(a, b T) (int, error) {
		res, err := c.Compare(a, b)

		// -math.MinInt overflows to itself.
		return -compare.Sign(res), err
	})
}

// ThenComparing returns a Comparator that orders by c and breaks ties with
// ext. The optional key comparator replaces the default ordering rule for the
// keys ext extracts.
func (c Comparator[T]) ThenComparing(ext Extractor[T], keyCmp ...KeyComparator) Comparator[T] {
	next, err := resolve(ext, keyCmp)

	return c.then(next, err)
}

// ThenComparingReverse is ThenComparing with the tie-break reversed. Only
// the tie-break is reversed, not the order established by c.
func (c Comparator[T]) ThenComparingReverse(ext Extractor[T], keyCmp ...KeyComparator) Comparator[T] {
	next, err := resolve(ext, keyCmp)

	return c.then(next.Reverse(), err)
}

func (c Comparator[T]) then(next Comparator[T], err error) Comparator[T] {
	switch {
	case c.err != nil:
		return c
	case err != nil:
		return Comparator[T]{err: err}
	}

	return NewWithError(func(a, b T) (int, error) {
		res, err := c.Compare(a, b)
		if err != nil || res != 0 {
			return res, err
		}

		return next.Compare(a, b)
	})
}

// Sort returns a sorted copy of items and leaves items untouched. The sort is
// stable. The first comparison error stops the sort and is returned.
func (c Comparator[T]) Sort(items []T) ([]T, error) {
	if c.err != nil {
		return nil, c.err
	}

	sorted := slices.Clone(items)

	var sortErr error

	slices.SortStableFunc(sorted, func(a, b T) int {
		if sortErr != nil {
			return 0
		}

		res, err := c.Compare(a, b)
		if err != nil {
			sortErr = err

			return 0
		}

		return res
	})

	if sortErr != nil {
		return nil, sortErr
	}

	return sorted, nil
}
