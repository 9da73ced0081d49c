package special

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-special/ndarray"
	"github.com/cwbudde/algo-special/series"
)

// Lanczos approximation, g = 5, six coefficients.
var lanczosCoefficients = [6]float64{
	76.18009172947146,
	-86.50532032941677,
	24.01409824083091,
	-1.231739572450155,
	0.1208650973866179e-2,
	-0.5395239384953e-5,
}

const (
	lanczosSeriesBase = 1.000000000190015
	lanczosShift      = 5.5
)

// Gamma evaluates the gamma function at z with the Lanczos approximation.
//
// Arguments with a negative real part go through the reflection formula
// Γ(z) = π / (sin(πz)·Γ(1-z)). At the poles z = 0, -1, -2, ... the result
// is -Inf. This sign is a fixed
// convention of the library; the mathematical limit has no single sign.
// The result narrows to a real number when its imaginary part vanishes.
func Gamma(z complex128, opts ...series.Option) series.Value {
	return GammaArray(ndarray.Scalar(z), opts...)
}

// GammaArray evaluates Gamma elementwise. The result keeps z's shape and is
// real only if every element is.
func GammaArray(z *ndarray.Array[complex128], opts ...series.Option) series.Value {
	cfg := series.ApplyOptions(series.Config{}, opts...)

	return series.Narrow(ndarray.Map(z, lanczos), cfg.NarrowTolerance)
}

// lanczos is the scalar kernel shared by Gamma and the Bessel evaluator.
func lanczos(z complex128) complex128 {
	if series.IsNonPositiveInteger(z) {
		return complex(math.Inf(-1), 0)
	}

	if imag(z) == 0 {
		x := real(z)
		if x < 0 {
			// Reflection keeps real arguments on the real axis and clear of
			// the Lanczos branch cut at z+5.5 <= 0.
			return complex(math.Pi/(math.Sin(math.Pi*x)*lanczosReal(1-x)), 0)
		}

		return complex(lanczosReal(x), 0)
	}

	if real(z) < 0 {
		return complex(math.Pi, 0) / (cmplx.Sin(math.Pi*z) * lanczosComplex(1-z))
	}

	return lanczosComplex(z)
}

func lanczosReal(x float64) float64 {
	tmp := x + lanczosShift
	tmp -= (x + 0.5) * lanczosLog(tmp)

	ser := lanczosSeriesBase
	y := x
	for _, p := range lanczosCoefficients {
		y++
		ser += p / y
	}

	return lanczosExp(-tmp) * lanczosSqrt(2*math.Pi) * ser / x
}

func lanczosComplex(z complex128) complex128 {
	tmp := z + lanczosShift
	tmp -= (z + 0.5) * cmplx.Log(tmp)

	ser := complex(lanczosSeriesBase, 0)
	y := z
	for _, p := range lanczosCoefficients {
		y++
		ser += complex(p, 0) / y
	}

	return cmplx.Exp(-tmp) * complex(math.Sqrt(2*math.Pi), 0) * ser / z
}
