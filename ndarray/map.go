package ndarray

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Map applies f to every element of a and returns an array of the same shape.
func Map[T, U Number](a *Array[T], f func(T) U) *Array[U] {
	out := make([]U, len(a.data))
	for i, v := range a.data {
		out[i] = f(v)
	}

	return &Array[U]{shape: cloneShape(a.shape), data: out}
}

// MapErr is like Map but f may fail. The first failure stops the walk and is
// returned wrapped with the flat element index; f also receives that index.
func MapErr[T, U Number](a *Array[T], f func(i int, v T) (U, error)) (*Array[U], error) {
	out := make([]U, len(a.data))
	for i, v := range a.data {
		u, err := f(i, v)
		if err != nil {
			return nil, fmt.Errorf("ndarray: element %d: %w", i, err)
		}
		out[i] = u
	}

	return &Array[U]{shape: cloneShape(a.shape), data: out}, nil
}

// ZerosLike returns a zero-filled array with the shape of a.
func ZerosLike[U, T Number](a *Array[T]) *Array[U] {
	return &Array[U]{shape: cloneShape(a.shape), data: make([]U, len(a.data))}
}

// Complex widens a real array to complex128 with zero imaginary parts.
func Complex(a *Array[float64]) *Array[complex128] {
	return Map(a, func(v float64) complex128 { return complex(v, 0) })
}

// Real keeps the real parts of a complex array.
func Real(a *Array[complex128]) *Array[float64] {
	return Map(a, func(v complex128) float64 { return real(v) })
}

// HasNaN reports whether any element of a is NaN.
func HasNaN(a *Array[float64]) bool {
	return floats.HasNaN(a.data)
}
