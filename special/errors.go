package special

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeFactorial is the sentinel behind every [DomainError].
	ErrNegativeFactorial = errors.New("special: factorial undefined for negative input")

	// ErrFactorialOverflow is returned when n! does not fit in an int64.
	ErrFactorialOverflow = errors.New("special: factorial overflows int64")

	// ErrInvalidOrder is returned for negative Bessel orders where a
	// non-negative one is required.
	ErrInvalidOrder = errors.New("special: invalid bessel order")

	// ErrNonFinite is returned for NaN or infinite arguments.
	ErrNonFinite = errors.New("special: non-finite argument")
)

// DomainError reports an input outside the domain of a function.
// Index is the flat element index for array inputs and -1 for scalars.
type DomainError struct {
	Op    string
	Index int
	Value int
}

func (e *DomainError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s(%d): %v", e.Op, e.Value, ErrNegativeFactorial)
	}

	return fmt.Sprintf("%s: element %d = %d: %v", e.Op, e.Index, e.Value, ErrNegativeFactorial)
}

func (e *DomainError) Unwrap() error {
	return ErrNegativeFactorial
}
