package sets

import "github.com/pkg/errors"

// The helpers below accept values of static type any, such as values decoded
// from a generic source. A value whose dynamic type is not exactly T is
// rejected with an error wrapping ErrTypeMismatch; no conversion is tried,
// so an int is not accepted by a set of int32.

// AddValue adds v to s if v is a T.
func AddValue[T any](s Set[T], v any) (bool, error) {
	x, err := assertType[T](v)
	if err != nil {
		return false, err
	}
	return s.Add(x), nil
}

// RemoveValue removes v from s if v is a T.
func RemoveValue[T any](s Set[T], v any) (bool, error) {
	x, err := assertType[T](v)
	if err != nil {
		return false, err
	}
	return s.Remove(x), nil
}

// ContainsValue reports whether s contains v if v is a T.
func ContainsValue[T any](s Set[T], v any) (bool, error) {
	x, err := assertType[T](v)
	if err != nil {
		return false, err
	}
	return s.Contains(x), nil
}

func assertType[T any](v any) (T, error) {
	x, ok := v.(T)
	if !ok {
		return x, errors.Wrapf(ErrTypeMismatch, "want %T, got %T", x, v)
	}
	return x, nil
}
