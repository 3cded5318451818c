package helper

import (
	"fmt"
)

// LoadTyped reads a value from an untyped store and asserts it to T.
//
// A present nil entry is reported as the zero T with ok set, so a cached nil
// interface or nil pointer is still a hit.
func LoadTyped[T any](getFn func() (any, bool)) (res T, ok bool) {
	raw, found := getFn()
	if !found {
		return res, false
	}
	if raw == nil {
		return res, true
	}
	res, ok = raw.(T)
	return
}

// MustLoadTyped is the panic-on-failure variant of LoadTyped. A present entry of
// the wrong type is a programmer error.
func MustLoadTyped[T any](getFn func() (any, bool)) (T, bool) {
	raw, found := getFn()
	if !found {
		var zero T
		return zero, false
	}
	res, ok := LoadTyped[T](func() (any, bool) { return raw, true })
	if !ok {
		panic(fmt.Errorf("unexpected type: %T", raw))
	}
	return res, true
}

var ErrMaxAttempts = fmt.Errorf("max attempts reached")

// Retry calls fn until it returns nil. maxAttempts <= 0 retries forever.
func Retry(maxAttempts int, fn func() error) error {
	numAttempts := 0
	for {
		err := fn()
		if err == nil {
			return nil
		}
		numAttempts++
		if maxAttempts > 0 && numAttempts >= maxAttempts {
			return fmt.Errorf("%w: %d, %w", ErrMaxAttempts, numAttempts, err)
		}
	}
}
