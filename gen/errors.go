package gen

import "errors"

var (
	// ErrInvalidArgument reports constructor parameters outside their domain.
	ErrInvalidArgument = errors.New("gen: invalid argument")
	// ErrEmptyDomain reports a draw from an empty collection.
	ErrEmptyDomain = errors.New("gen: empty domain")
	// ErrRejectionExhausted reports a rejection sampler that ran out of attempts.
	ErrRejectionExhausted = errors.New("gen: rejection sampling exhausted")
	ErrIndexOutOfRange    = errors.New("gen: index out of range")
	ErrKeyNotFound        = errors.New("gen: key not found")
	ErrDivisionByZero     = errors.New("gen: integer division by zero")
)
