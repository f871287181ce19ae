// Package comparator builds composable ordering functions over typed values.
//
// A Comparator is derived from an Extractor (a field name, a position, a key
// function, or another Comparator) and combined with ThenComparing,
// ThenComparingReverse and Reverse:
//
//	byName := comparator.MustComparing(comparator.Field[Person]("FirstName")).
//	    ThenComparing(comparator.Field[Person]("LastName")).
//	    ThenComparingReverse(comparator.Func(func(p Person) int { return p.Age }))
//
//	sorted, err := byName.Sort(people)
//
// # Default ordering rule
//
// Without a KeyComparator, extracted keys are ordered by kind. Finite numbers
// compare numerically, strings by collation (golang.org/x/text/collate, root
// locale), and booleans with true before false. Keys of any other kind,
// including nil, NaN and the infinities, all compare equal to each other.
// Pairing a number, string or boolean with a key of a different kind is an
// error wrapping errors.ErrIncomparableTypes.
//
// # Errors
//
// Invalid extractors (nil, an empty field name, a negative index) are
// reported with errors.ErrInvalidExtractor. Comparing returns the error
// directly; inside a ThenComparing chain it sticks to the resulting
// Comparator and comes back from Err, Compare and Sort. Errors raised by
// caller-supplied key functions and key comparators are passed through
// unwrapped.
package comparator
