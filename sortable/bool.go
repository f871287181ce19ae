package sortable

// Bool orders true before false, the same way the default key rule of the
// comparator package does.
type Bool bool

// Compile-time check that Bool implements Sortable[Bool].
var _ Sortable[Bool] = (*Bool)(nil)

func (b Bool) Equals(other Bool) bool {
	return b == other
}

func (b Bool) LessThan(other Bool) bool {
	return bool(b) && !bool(other)
}
