package special

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-special/ndarray"
	"github.com/cwbudde/algo-special/series"
)

// DefaultBesselTerms is the number of series terms summed by Bessel.
const DefaultBesselTerms = 100

// Bessel evaluates the Bessel function of the first kind J_alpha(x) from its
// power series
//
//	J_alpha(x) = Σ_{m=0}^{terms-1} (-1)^m / (m!·Γ(m+alpha+1)) · (x/2)^(2m+alpha)
//
// with terms = DefaultBesselTerms unless overridden by series.WithTerms.
// There is no convergence check; raise terms for large |x|.
//
// Arithmetic is complex throughout. Non-integer alpha with negative real x
// lands on the principal branch and yields a complex result. A pole of
// Γ(m+alpha+1) contributes a zero term, which makes J_{-n} = (-1)^n J_n for
// integer n. terms <= 0 gives zero.
func Bessel(alpha float64, x complex128, opts ...series.Option) series.Value {
	return BesselArray(alpha, ndarray.Scalar(x), opts...)
}

// BesselArray evaluates Bessel elementwise over x. The result keeps x's
// shape and is real only if every element is.
//
// m! comes from series.WithFactorials when given. A factorial source that
// fails turns the affected coefficients, and so every element, into NaN.
func BesselArray(alpha float64, x *ndarray.Array[complex128], opts ...series.Option) series.Value {
	cfg := series.ApplyOptions(series.Config{
		Terms:      DefaultBesselTerms,
		Factorials: directFactorials{},
	}, opts...)

	coeffs := besselCoefficients(alpha, cfg.Terms, cfg.Factorials)

	out := ndarray.Map(x, func(v complex128) complex128 {
		half := v / 2
		var sum complex128
		for m, c := range coeffs {
			if c == 0 {
				continue
			}
			p := series.Pow(half, 2*float64(m)+alpha)
			if imag(c) == 0 && imag(p) == 0 {
				// Real product; complex multiplication would turn 0·Inf into NaN.
				sum += complex(real(c)*real(p), 0)
				continue
			}
			sum += c * p
		}
		return sum
	})

	return series.Narrow(out, cfg.NarrowTolerance)
}

// besselCoefficients returns (-1)^m / (m!·Γ(m+alpha+1)) for m < terms.
func besselCoefficients(alpha float64, terms int, facts series.FactorialSource) []complex128 {
	if terms <= 0 {
		return nil
	}

	coeffs := make([]complex128, terms)
	sign := 1.0
	for m := range coeffs {
		f, err := facts.Float(m)
		if err != nil {
			coeffs[m] = complex(math.NaN(), math.NaN())
			sign = -sign
			continue
		}

		g := lanczos(complex(float64(m)+alpha+1, 0))
		switch {
		case cmplx.IsInf(g):
			// 1/Γ vanishes at the poles.
			coeffs[m] = 0
		case imag(g) == 0:
			coeffs[m] = complex(sign/(f*real(g)), 0)
		default:
			coeffs[m] = complex(sign/f, 0) / g
		}
		sign = -sign
	}

	return coeffs
}
