package comparator

import (
	"cmp"
	"fmt"
	"math"
	"reflect"

	"github.com/amp-labs/amp-compare/compare"
	"github.com/amp-labs/amp-compare/errors"
)

// Kind classifies a comparison key for the default ordering rule.
type Kind int

const (
	// KindOther is anything that is not a finite number, a string or a bool:
	// nil, structs, slices, NaN and the infinities.
	KindOther Kind = iota
	KindNumber
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KeyComparator orders two extracted keys. Supplying one to Comparing or
// ThenComparing replaces the default ordering rule entirely.
type KeyComparator func(a, b any) (int, error)

// Keys adapts a typed comparison function to a KeyComparator. A key that is
// not a K fails with errors.ErrWrongType. When K is an interface type, a nil
// key (such as a missing field) is passed to fn as a nil K.
func Keys[K any](fn func(a, b K) int) KeyComparator {
	if fn == nil {
		return nil
	}

	return func(a, b any) (int, error) {
		ka, err := keyAs[K](a)
		if err != nil {
			return 0, err
		}

		kb, err := keyAs[K](b)
		if err != nil {
			return 0, err
		}

		return fn(ka, kb), nil
	}
}

func keyAs[K any](v any) (K, error) {
	if k, ok := v.(K); ok {
		return k, nil
	}

	var zero K

	keyType := reflect.TypeFor[K]()
	if v == nil && keyType.Kind() == reflect.Interface {
		return zero, nil
	}

	return zero, fmt.Errorf("%w: expected %v, got %T", errors.ErrWrongType, keyType, v)
}

// DefaultKeyComparator returns the rule used when no key comparator is given:
// finite numbers numerically, strings by root-locale collation, booleans with
// true first, and everything else as equal to everything else that is
// neither. Pairing a number, string or boolean with a key of another kind
// fails with errors.ErrIncomparableTypes.
func DefaultKeyComparator() KeyComparator {
	return defaultRule.compare
}

// keyRule is the default rule with a pluggable string ordering.
type keyRule struct {
	strings func(a, b string) int
}

var defaultRule = keyRule{strings: rootCollation.compare} //nolint:gochecknoglobals

func (r keyRule) compare(a, b any) (int, error) {
	ka, kb := classify(a), classify(b)

	switch ka.kind {
	case KindNumber:
		if kb.kind != KindNumber {
			return 0, incomparable(KindNumber)
		}

		return ka.num.compare(kb.num), nil
	case KindString:
		if kb.kind != KindString {
			return 0, incomparable(KindString)
		}

		return compare.Sign(r.strings(ka.val.String(), kb.val.String())), nil
	case KindBool:
		if kb.kind != KindBool {
			return 0, incomparable(KindBool)
		}

		return compare.Bools(ka.val.Bool(), kb.val.Bool()), nil
	case KindOther:
		if kb.kind != KindOther {
			return 0, incomparable(kb.kind)
		}

		return 0, nil
	default:
		panic(fmt.Sprintf("comparator: unhandled key kind %v", ka.kind))
	}
}

func incomparable(kind Kind) error {
	return fmt.Errorf("%w, only one is of type %s", errors.ErrIncomparableTypes, kind)
}

// KindOf reports how the default ordering rule sees v.
func KindOf(v any) Kind {
	return classify(v).kind
}

type key struct {
	kind Kind
	val  reflect.Value
	num  number
}

func classify(v any) key {
	rv := reflect.ValueOf(v)

	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return key{kind: KindOther}
		}

		rv = rv.Elem()
	}

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return key{kind: KindNumber, val: rv, num: number{form: signed, i: rv.Int()}}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return key{kind: KindNumber, val: rv, num: number{form: unsigned, u: rv.Uint()}}
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return key{kind: KindOther, val: rv}
		}

		return key{kind: KindNumber, val: rv, num: number{form: floating, f: f}}
	case reflect.String:
		return key{kind: KindString, val: rv}
	case reflect.Bool:
		return key{kind: KindBool, val: rv}
	default:
		return key{kind: KindOther, val: rv}
	}
}

type numberForm int

const (
	signed numberForm = iota
	unsigned
	floating
)

// number keeps integers exact so that large int64/uint64 keys never collide
// through a float64 conversion.
type number struct {
	form numberForm
	i    int64
	u    uint64
	f    float64
}

func (n number) float() float64 {
	switch n.form {
	case signed:
		return float64(n.i)
	case unsigned:
		return float64(n.u)
	default:
		return n.f
	}
}

func (n number) compare(o number) int {
	switch {
	case n.form == signed && o.form == signed:
		return cmp.Compare(n.i, o.i)
	case n.form == unsigned && o.form == unsigned:
		return cmp.Compare(n.u, o.u)
	case n.form == signed && o.form == unsigned:
		if n.i < 0 {
			return -1
		}

		return cmp.Compare(uint64(n.i), o.u)
	case n.form == unsigned && o.form == signed:
		return -o.compare(n)
	default:
		return cmp.Compare(n.float(), o.float())
	}
}
