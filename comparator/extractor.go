package comparator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-compare/errors"
	"github.com/amp-labs/amp-compare/tuple"
)

// Extractor says how to order elements of type T: by a named field, by a
// position, by a key function, or by a ready-made Comparator. The set of
// implementations is closed; build one with Field, Index, Func, FuncErr or
// Identity, or pass a Comparator directly.
type Extractor[T any] interface {
	comparator(keyCmp KeyComparator) (Comparator[T], error)
}

func invalidExtractor(repr string) error {
	return fmt.Errorf("%w: %s", errors.ErrInvalidExtractor, repr)
}

// resolve turns an Extractor into a Comparator, validating it first.
func resolve[T any](ext Extractor[T], keyCmps []KeyComparator) (Comparator[T], error) {
	if ext == nil {
		return Comparator[T]{}, invalidExtractor("null")
	}

	return ext.comparator(firstKeyComparator(keyCmps))
}

func firstKeyComparator(keyCmps []KeyComparator) KeyComparator {
	for _, kc := range keyCmps {
		if kc != nil {
			return kc
		}
	}

	return DefaultKeyComparator()
}

// keyed builds the comparator that extracts a key from both elements and
// hands the pair to keyCmp.
func keyed[T any](extract func(T) (any, error), keyCmp KeyComparator) Comparator[T] {
	return NewWithError(func(a, b T) (int, error) {
		ka, err := extract(a)
		if err != nil {
			return 0, err
		}

		kb, err := extract(b)
		if err != nil {
			return 0, err
		}

		return keyCmp(ka, kb)
	})
}

type funcExtractor[T any] struct {
	extract func(T) (any, error)
}

func (f funcExtractor[T]) comparator(keyCmp KeyComparator) (Comparator[T], error) {
	if f.extract == nil {
		return Comparator[T]{}, invalidExtractor("null")
	}

	return keyed(f.extract, keyCmp), nil
}

// Func orders elements by the key fn returns.
func Func[T, K any](fn func(T) K) Extractor[T] {
	if fn == nil {
		return funcExtractor[T]{}
	}

	return funcExtractor[T]{extract: func(v T) (any, error) {
		return fn(v), nil
	}}
}

// FuncErr is Func for key functions that can fail. Their errors reach the
// caller of Compare or Sort as they are.
func FuncErr[T, K any](fn func(T) (K, error)) Extractor[T] {
	if fn == nil {
		return funcExtractor[T]{}
	}

	return funcExtractor[T]{extract: func(v T) (any, error) {
		return fn(v)
	}}
}

// Identity uses each element as its own key.
func Identity[T any]() Extractor[T] {
	return Func(func(v T) T { return v })
}

type fieldExtractor[T any] struct {
	name string
}

// Field orders elements by a named field. For structs the name matches an
// exported field name first and a json tag name second; for maps with string
// keys it is the map key. Pointers are followed. A missing field yields a nil
// key.
func Field[T any](name string) Extractor[T] {
	return fieldExtractor[T]{name: name}
}

func (f fieldExtractor[T]) comparator(keyCmp KeyComparator) (Comparator[T], error) {
	if f.name == "" {
		return Comparator[T]{}, invalidExtractor("")
	}

	return keyed(func(v T) (any, error) {
		return fieldOf(v, f.name), nil
	}, keyCmp), nil
}

func fieldOf(v any, name string) any {
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return nil
	}

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Struct:
		return structField(rv, name)
	case reflect.Map:
		keyType := rv.Type().Key()
		if keyType.Kind() != reflect.String {
			return nil
		}

		return valueOrNil(rv.MapIndex(reflect.ValueOf(name).Convert(keyType)))
	default:
		return nil
	}
}

func structField(rv reflect.Value, name string) any {
	fields := reflect.VisibleFields(rv.Type())

	for _, sf := range fields {
		if sf.IsExported() && sf.Name == name {
			return fieldByIndex(rv, sf.Index)
		}
	}

	for _, sf := range fields {
		if !sf.IsExported() {
			continue
		}

		tagName, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if tagName == name {
			return fieldByIndex(rv, sf.Index)
		}
	}

	return nil
}

func fieldByIndex(rv reflect.Value, index []int) any {
	// Promoted fields behind a nil embedded pointer are simply missing.
	fv, err := rv.FieldByIndexErr(index)
	if err != nil {
		return nil
	}

	return valueOrNil(fv)
}

type indexExtractor[T any] struct {
	index int
}

// Index orders elements by the element at position i of a tuple, slice or
// array. Index(0) is valid; an index past the end yields a nil key.
func Index[T any](i int) Extractor[T] {
	return indexExtractor[T]{index: i}
}

func (x indexExtractor[T]) comparator(keyCmp KeyComparator) (Comparator[T], error) {
	if x.index < 0 {
		return Comparator[T]{}, invalidExtractor(strconv.Itoa(x.index))
	}

	return keyed(func(v T) (any, error) {
		return elementOf(v, x.index), nil
	}, keyCmp), nil
}

func elementOf(v any, i int) any {
	// Tuples have value receivers; At on a nil *TupleN panics.
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return nil
	}

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Slice, reflect.Array:
		if i >= rv.Len() {
			return nil
		}

		return valueOrNil(rv.Index(i))
	default:
		if p, ok := rv.Interface().(tuple.Positional); ok {
			val, _ := p.At(i)

			return val
		}

		return nil
	}
}

// indirect follows pointers and interfaces. It reports false on nil.
func indirect(rv reflect.Value) (reflect.Value, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}

		rv = rv.Elem()
	}

	return rv, rv.IsValid()
}

func valueOrNil(rv reflect.Value) any {
	if !rv.IsValid() || !rv.CanInterface() {
		return nil
	}

	return rv.Interface()
}
