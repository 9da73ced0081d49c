package special

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-special/ndarray"
	"github.com/cwbudde/algo-special/series"
)

// DefaultEulerTerms is the product length used by GammaEuler.
const DefaultEulerTerms = 1000

// GammaEuler evaluates the gamma function with Euler's infinite product
//
//	Γ(z) = (1/z) · Π_{n=1..N} (1 + 1/n)^z / (1 + z/n)
//
// truncated after N factors (series.WithTerms, default 1000). The relative
// error shrinks like |z(1-z)|/(2N), so it is far slower to converge than
// Gamma and mainly serves as an independent check. Poles follow the same
// -Inf convention as Gamma.
func GammaEuler(z complex128, opts ...series.Option) series.Value {
	return GammaEulerArray(ndarray.Scalar(z), opts...)
}

// GammaEulerArray evaluates GammaEuler elementwise.
func GammaEulerArray(z *ndarray.Array[complex128], opts ...series.Option) series.Value {
	cfg := series.ApplyOptions(series.Config{Terms: DefaultEulerTerms}, opts...)

	out := ndarray.Map(z, func(v complex128) complex128 {
		return eulerProduct(v, cfg.Terms)
	})

	return series.Narrow(out, cfg.NarrowTolerance)
}

func eulerProduct(z complex128, terms int) complex128 {
	if series.IsNonPositiveInteger(z) {
		return complex(math.Inf(-1), 0)
	}

	if imag(z) == 0 {
		x := real(z)
		product := 1.0
		for n := 1; n <= terms; n++ {
			fn := float64(n)
			product *= math.Exp(x*math.Log1p(1/fn)) / (1 + x/fn)
		}
		return complex(product/x, 0)
	}

	product := complex(1, 0)
	for n := 1; n <= terms; n++ {
		fn := float64(n)
		product *= cmplx.Exp(z*complex(math.Log1p(1/fn), 0)) / (1 + z/complex(fn, 0))
	}

	return product / z
}
