package special

import (
	"fmt"

	"github.com/cwbudde/algo-special/ndarray"
)

// maxInt64Factorial is the largest n with n! <= math.MaxInt64.
const maxInt64Factorial = 20

// Factorial returns n! for n >= 0.
func Factorial(n int) (int64, error) {
	return factorialInt(n, -1)
}

// FactorialArray applies Factorial to every element of n, preserving shape.
// Every element is checked for sign before any product is formed, so a
// negative element fails the call with a *DomainError carrying its flat
// index even when an earlier element would overflow.
func FactorialArray(n *ndarray.Array[int]) (*ndarray.Array[int64], error) {
	for i, v := range n.Data() {
		if v < 0 {
			return nil, &DomainError{Op: "factorial", Index: i, Value: v}
		}
	}

	return ndarray.MapErr(n, func(i, v int) (int64, error) {
		return factorialInt(v, i)
	})
}

// FactorialFloat returns n! as float64. Values above 170! are +Inf.
func FactorialFloat(n int) (float64, error) {
	if n < 0 {
		return 0, &DomainError{Op: "factorial", Index: -1, Value: n}
	}

	result := 1.0
	for k := 2; k <= n; k++ {
		result *= float64(k)
	}

	return result, nil
}

func factorialInt(n, index int) (int64, error) {
	if n < 0 {
		return 0, &DomainError{Op: "factorial", Index: index, Value: n}
	}

	if n > maxInt64Factorial {
		return 0, fmt.Errorf("%w: %d!", ErrFactorialOverflow, n)
	}

	result := int64(1)
	for k := int64(2); k <= int64(n); k++ {
		result *= k
	}

	return result, nil
}

// directFactorials computes every request from scratch.
type directFactorials struct{}

func (directFactorials) Float(n int) (float64, error) {
	return FactorialFloat(n)
}
