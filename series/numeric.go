package series

import (
	"math"
	"math/cmplx"
)

const defaultEpsilon = 1e-12

// Pow raises base to a real exponent p.
//
// Real bases stay on the real axis when the power is real-valued there:
// non-negative bases, or negative bases with an integer exponent. Everything
// else uses the principal branch of cmplx.Pow, so fractional powers of
// negative reals are complex.
func Pow(base complex128, p float64) complex128 {
	if imag(base) == 0 {
		b := real(base)
		if b >= 0 || p == math.Trunc(p) {
			return complex(math.Pow(b, p), 0)
		}
	}

	return cmplx.Pow(base, complex(p, 0))
}

// IsNonPositiveInteger reports whether z lies on the real axis at 0, -1, -2, ...
func IsNonPositiveInteger(z complex128) bool {
	re := real(z)
	return imag(z) == 0 && re <= 0 && re == math.Trunc(re)
}

// NearlyEqual reports whether a and b are equal within eps, absolute for
// small magnitudes and relative otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}
