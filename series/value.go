package series

import (
	"math"

	"github.com/cwbudde/algo-special/ndarray"
)

// Value is the outcome of a complex-domain evaluation after narrowing.
//
// Evaluators compute every element in complex128 and hand the finished
// collection to [Narrow]. If all imaginary parts are negligible the Value is
// real; a single complex element keeps the whole Value complex.
type Value struct {
	cplx *ndarray.Array[complex128]
	real *ndarray.Array[float64]
}

// Narrow classifies a finished result. Elements with |imag| <= tol count as
// real; a NaN imaginary part never does.
func Narrow(a *ndarray.Array[complex128], tol float64) Value {
	if IsReal(a.Data(), tol) {
		return Value{cplx: a, real: ndarray.Real(a)}
	}

	return Value{cplx: a}
}

// IsReal reports whether every element has |imag| <= tol.
func IsReal(data []complex128, tol float64) bool {
	for _, z := range data {
		im := math.Abs(imag(z))
		if !(im <= tol) {
			return false
		}
	}

	return true
}

// IsReal reports whether the result narrowed to real numbers.
func (v Value) IsReal() bool {
	return v.real != nil
}

// Real returns the real-valued result and true, or nil and false when the
// result stayed complex.
func (v Value) Real() (*ndarray.Array[float64], bool) {
	return v.real, v.real != nil
}

// Complex returns the result in complex form regardless of narrowing.
func (v Value) Complex() *ndarray.Array[complex128] {
	return v.cplx
}

// Shape returns the result dimensions.
func (v Value) Shape() []int {
	return v.cplx.Shape()
}

// Float returns the single element of a real result. It reports false when
// the result is complex or holds more than one element.
func (v Value) Float() (float64, bool) {
	if v.real == nil || v.real.Len() != 1 {
		return 0, false
	}

	return v.real.Data()[0], true
}

// Complex128 returns the single element in complex form. It returns NaN
// when the result does not hold exactly one element.
func (v Value) Complex128() complex128 {
	if v.cplx.Len() != 1 {
		return complex(math.NaN(), math.NaN())
	}

	return v.cplx.Data()[0]
}
