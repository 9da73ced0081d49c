package taylor

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-special/ndarray"
	"github.com/cwbudde/algo-special/series"
)

// DefaultExpTerms is the highest power summed by Exp.
const DefaultExpTerms = 200

// Exp approximates e^x as Σ_{n=0..N} x^n/n!, N = DefaultExpTerms unless
// overridden with series.WithTerms.
func Exp(x float64, opts ...series.Option) float64 {
	return ExpArray(ndarray.Scalar(x), opts...).Data()[0]
}

// ExpArray applies Exp elementwise and returns an array of x's shape.
func ExpArray(x *ndarray.Array[float64], opts ...series.Option) *ndarray.Array[float64] {
	cfg := series.ApplyOptions(series.Config{Terms: DefaultExpTerms}, opts...)

	result := ones(x)
	power := ones(x)
	xs := x.Data()
	acc := result.Data()
	pw := power.Data()

	factorial := 1.0
	for n := 1; n <= cfg.Terms; n++ {
		factorial *= float64(n)
		if math.IsInf(factorial, 1) {
			break
		}
		vecmath.MulBlockInPlace(pw, xs)
		floats.AddScaled(acc, 1/factorial, pw)
	}

	return result
}

func ones(x *ndarray.Array[float64]) *ndarray.Array[float64] {
	out := ndarray.ZerosLike[float64](x)
	for i := range out.Data() {
		out.Data()[i] = 1
	}

	return out
}
