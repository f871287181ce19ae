// Package errors holds the sentinel errors returned by the comparator packages.
// Callers should match them with errors.Is, since the returned errors carry
// extra context (the offending value or key kind).
package errors

import "errors"

var (
	// ErrInvalidExtractor is returned when a value-extractor is nil, an empty
	// field name or a negative index.
	ErrInvalidExtractor = errors.New("invalid comparator or value-extractor")

	// ErrIncomparableTypes is returned by the default ordering rule when exactly
	// one of two keys is a number, string or boolean.
	ErrIncomparableTypes = errors.New("uncomparable items")

	ErrWrongType = errors.New("wrong type")
)
