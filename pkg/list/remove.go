package list

import (
	"reflect"

	listerrors "github.com/wehubfusion/listops/pkg/errors"
)

// RemoveAndProcess takes the element at index, removes it from l and passes
// the removed element to fn. It returns l itself so calls can be chained, and
// the static type of l is preserved: a *Slice[int] comes back as a *Slice[int],
// a List[int] as a List[int].
//
// A nil l or nil fn is reported as an invalid argument before anything is
// read or removed. Errors from l.Get and l.RemoveAt are returned unchanged,
// and fn is only invoked after a successful removal.
func RemoveAndProcess[L List[T], T any](l L, index int, fn func(T)) (L, error) {
	if isNil(l) {
		return l, listerrors.InvalidArgument("list")
	}
	if fn == nil {
		return l, listerrors.InvalidArgument("callback")
	}

	element, err := l.Get(index)
	if err != nil {
		return l, err
	}
	if err := l.RemoveAt(index); err != nil {
		return l, err
	}
	fn(element)
	return l, nil
}

// RemoveAndApply is RemoveAndProcess for callbacks that produce a value.
// The value fn returns is discarded; the result is always l.
func RemoveAndApply[L List[T], T, R any](l L, index int, fn func(T) R) (L, error) {
	return RemoveAndProcess(l, index, Discard(fn))
}

// Discard adapts fn into a callback that drops its result.
// Discard(nil) returns nil.
func Discard[T, R any](fn func(T) R) func(T) {
	if fn == nil {
		return nil
	}
	return func(v T) {
		_ = fn(v)
	}
}

// isNil reports whether v is a nil interface or holds a nil pointer-like value
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
