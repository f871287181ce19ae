//nolint:ireturn
package tuple

// Positional is implemented by every tuple type. It lets the comparator
// package read an element by index, the way a field is read by name.
type Positional interface {
	// Len returns the arity of the tuple.
	Len() int

	// At returns the element at index i, or false if i is out of range.
	At(i int) (any, bool)
}

func NewTuple2[A, B any](first A, second B) Tuple2[A, B] {
	return Tuple2[A, B]{
		first:  first,
		second: second,
	}
}

// Tuple2 is a type that represents a pair of values.
type Tuple2[A any, B any] struct {
	first  A
	second B
}

var _ Positional = Tuple2[int, int]{}

func (t Tuple2[A, B]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple2[A, B]) Second() B { //nolint:ireturn
	return t.second
}

func (t Tuple2[A, B]) Len() int {
	return 2 //nolint:mnd
}

func (t Tuple2[A, B]) At(i int) (any, bool) {
	switch i {
	case 0:
		return t.first, true
	case 1:
		return t.second, true
	default:
		return nil, false
	}
}

func NewTuple3[A, B, C any](first A, second B, third C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{
		first:  first,
		second: second,
		third:  third,
	}
}

// Tuple3 is a type that represents a triple of values.
type Tuple3[A any, B any, C any] struct {
	first  A
	second B
	third  C
}

var _ Positional = Tuple3[int, int, int]{}

func (t Tuple3[A, B, C]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple3[A, B, C]) Second() B { //nolint:ireturn
	return t.second
}

func (t Tuple3[A, B, C]) Third() C { //nolint:ireturn
	return t.third
}

func (t Tuple3[A, B, C]) Len() int {
	return 3 //nolint:mnd
}

func (t Tuple3[A, B, C]) At(i int) (any, bool) {
	switch i {
	case 0:
		return t.first, true
	case 1:
		return t.second, true
	case 2: //nolint:mnd
		return t.third, true
	default:
		return nil, false
	}
}

func NewTuple4[A, B, C, D any](first A, second B, third C, fourth D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{
		first:  first,
		second: second,
		third:  third,
		fourth: fourth,
	}
}

// Tuple4 is a type that represents a quadruple of values.
type Tuple4[A any, B any, C any, D any] struct {
	first  A
	second B
	third  C
	fourth D
}

var _ Positional = Tuple4[int, int, int, int]{}

func (t Tuple4[A, B, C, D]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple4[A, B, C, D]) Second() B { //nolint:ireturn
	return t.second
}

func (t Tuple4[A, B, C, D]) Third() C { //nolint:ireturn
	return t.third
}

func (t Tuple4[A, B, C, D]) Fourth() D { //nolint:ireturn
	return t.fourth
}

func (t Tuple4[A, B, C, D]) Len() int {
	return 4 //nolint:mnd
}

func (t Tuple4[A, B, C, D]) At(i int) (any, bool) {
	switch i {
	case 0:
		return t.first, true
	case 1:
		return t.second, true
	case 2: //nolint:mnd
		return t.third, true
	case 3: //nolint:mnd
		return t.fourth, true
	default:
		return nil, false
	}
}
