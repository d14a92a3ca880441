// Package comparer resolves the equality used by keyed collections and set-like operators.
//
// Nothing in the engine assumes hashability; a comparer only has to answer Equals and must be
// reflexive, symmetric and transitive.
package comparer

import "reflect"

type (
	// EqualityComparer decides whether two values are the same for lookup purposes.
	EqualityComparer[T any] interface {
		Equals(a, b T) bool
	}

	// Func adapts a plain function to EqualityComparer.
	Func[T any] func(a, b T) bool

	// Equalable is implemented by types with their own notion of equality, e.g. time.Time.
	Equalable[T any] interface {
		Equal(other T) bool
	}

	defaultComparer[T any] struct{}
)

func (f Func[T]) Equals(a, b T) bool {
	return f(a, b)
}

var _ EqualityComparer[int] = defaultComparer[int]{}

// Default returns the fallback comparer: an Equal method when the type has one,
// value equality for comparable values and identity for slices, maps, funcs and chans.
// Structs, arrays and interfaces holding any of those are compared element by element
// with the same rules.
//
// Slice identity is the backing pointer plus length and capacity. Zero-capacity slices have
// no backing array of their own, so two empty non-nil slices may compare equal.
func Default[T any]() EqualityComparer[T] {
	return defaultComparer[T]{}
}

// Resolve returns c, or the default comparer when c is nil.
func Resolve[T any](c EqualityComparer[T]) EqualityComparer[T] {
	if c == nil {
		return Default[T]()
	}
	return c
}

func (defaultComparer[T]) Equals(a, b T) bool {
	if eq, ok := any(a).(Equalable[T]); ok {
		if nilA, nilB := isNilPointer(a), isNilPointer(b); nilA || nilB {
			return nilA && nilB
		}
		return eq.Equal(b)
	}

	return equalValues(reflect.ValueOf(any(a)), reflect.ValueOf(any(b)))
}

func equalValues(va, vb reflect.Value) bool {
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}

	if va.Type() != vb.Type() {
		return false
	}

	if va.Comparable() && vb.Comparable() {
		return va.Equal(vb)
	}

	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len() && va.Cap() == vb.Cap()
	case reflect.Map, reflect.Func, reflect.Chan:
		return va.Pointer() == vb.Pointer()
	case reflect.Interface:
		return equalValues(va.Elem(), vb.Elem())
	case reflect.Array:
		for i := 0; i < va.Len(); i++ {
			if !equalValues(va.Index(i), vb.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < va.NumField(); i++ {
			if !equalValues(va.Field(i), vb.Field(i)) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
