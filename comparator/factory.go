package comparator

import (
	"github.com/amp-labs/amp-compare/sortable"
)

// Number is every built-in integer and float type, and named types over them.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Comparing returns a Comparator ordering elements by what ext extracts,
// using keyCmp for the keys if one is given and the default ordering rule
// otherwise. If ext is itself a Comparator it is returned as it is.
//
// For example, to order people by last name with German collation:
//
//	byLastName, err := comparator.Comparing(
//	    comparator.Field[Person]("LastName"),
//	    comparator.LocaleKeyComparator(language.German),
//	)
func Comparing[T any](ext Extractor[T], keyCmp ...KeyComparator) (Comparator[T], error) {
	c, err := resolve(ext, keyCmp)
	if err != nil {
		return Comparator[T]{}, err
	}

	return c, nil
}

// MustComparing is Comparing for extractors known to be valid; it panics
// otherwise.
func MustComparing[T any](ext Extractor[T], keyCmp ...KeyComparator) Comparator[T] {
	c, err := Comparing(ext, keyCmp...)
	if err != nil {
		panic(err)
	}

	return c
}

// ComparingSimpleNumber orders bare numbers, with keyCmp if one is given and
// the default ordering rule otherwise. Under the default rule NaN and the
// infinities cannot be compared with finite numbers.
func ComparingSimpleNumber[N Number](keyCmp ...func(a, b N) int) Comparator[N] {
	return comparingSimple(keyCmp)
}

// ComparingSimpleString orders bare strings, with keyCmp if one is given and
// by root-locale collation otherwise.
func ComparingSimpleString[S ~string](keyCmp ...func(a, b S) int) Comparator[S] {
	return comparingSimple(keyCmp)
}

func comparingSimple[T any](keyCmp []func(a, b T) int) Comparator[T] {
	for _, fn := range keyCmp {
		if fn != nil {
			return New(fn)
		}
	}

	return MustComparing(Identity[T]())
}

// OfSortable orders values by their own Equals and LessThan methods.
func OfSortable[T sortable.Sortable[T]]() Comparator[T] {
	return New(sortable.Compare[T])
}
