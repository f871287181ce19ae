package sortable

// String orders by byte-wise comparison. Use a comparator with a collating
// key comparator when locale order matters.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
