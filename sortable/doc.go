// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, so that they can be ordered by a comparator without
// a key extractor.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and ready-to-use
// implementations for common primitive types: [Int], [Byte], [Float], [Bool]
// and [String]. The Sortable interface extends
// [github.com/amp-labs/amp-compare/compare.Comparable] by adding a LessThan
// method, providing both equality and ordering. [Compare] folds the two into
// the usual negative/zero/positive result.
//
// # Usage
//
//	byValue := comparator.OfSortable[sortable.Int]()
//	sorted, err := byValue.Sort([]sortable.Int{42, 10, 25})
//	// sorted: 10, 25, 42
//
// # Creating Custom Sortable Types
//
//	type Version struct {
//	    Major, Minor int
//	}
//
//	func (v Version) Equals(other Version) bool {
//	    return v == other
//	}
//
//	func (v Version) LessThan(other Version) bool {
//	    if v.Major != other.Major {
//	        return v.Major < other.Major
//	    }
//	    return v.Minor < other.Minor
//	}
//
// # Thread Safety
//
// The wrapper types in this package are value types and are safe for
// concurrent reads.
package sortable
