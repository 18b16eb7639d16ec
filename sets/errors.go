package sets

import "github.com/pkg/errors"

var (
	// ErrExhausted is returned by Iterator.Next once every element has been
	// returned, and on every later call.
	ErrExhausted = errors.New("sets: iterator exhausted")

	// ErrTypeMismatch is returned by the dynamic helpers when the value is not
	// of the set's element type.
	ErrTypeMismatch = errors.New("sets: value type mismatch")
)
