package taylor

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-special/ndarray"
	"github.com/cwbudde/algo-special/series"
)

// DefaultTrigTerms is the number of term pairs summed by Sin, Cos and Tan.
const DefaultTrigTerms = 20

// PoleThreshold is the |cos x| below which Tan reports NaN.
const PoleThreshold = 1e-10

// maxTrigTerms bounds the term pairs: 172! overflows float64, so later
// terms are zero anyway.
const maxTrigTerms = 86

// ReduceAngle maps x into [-π, π) as ((x + π) mod 2π) − π with a floored
// modulo. Non-finite input yields NaN.
func ReduceAngle(x float64) float64 {
	r := math.Mod(x+math.Pi, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}

	return r - math.Pi
}

// Sin approximates sin(x) from the odd Maclaurin series of the reduced angle.
func Sin(x float64, opts ...series.Option) float64 {
	return SinArray(ndarray.Scalar(x), opts...).Data()[0]
}

// SinArray applies Sin elementwise and returns an array of x's shape.
func SinArray(x *ndarray.Array[float64], opts ...series.Option) *ndarray.Array[float64] {
	cfg := series.ApplyOptions(series.Config{Terms: DefaultTrigTerms}, opts...)

	reduced := ndarray.Map(x, ReduceAngle)
	result := reduced.Clone()
	power := reduced.Clone()

	// x -> x^3 -> x^5 ...
	return alternatingSum(result, power, reduced.Data(), 3, cfg.Terms)
}

// Cos approximates cos(x) from the even Maclaurin series of the reduced angle.
func Cos(x float64, opts ...series.Option) float64 {
	return CosArray(ndarray.Scalar(x), opts...).Data()[0]
}

// CosArray applies Cos elementwise and returns an array of x's shape.
func CosArray(x *ndarray.Array[float64], opts ...series.Option) *ndarray.Array[float64] {
	cfg := series.ApplyOptions(series.Config{Terms: DefaultTrigTerms}, opts...)

	reduced := ndarray.Map(x, ReduceAngle)

	// 1 -> x^2 -> x^4 ...
	return alternatingSum(ones(reduced), ones(reduced), reduced.Data(), 2, cfg.Terms)
}

// Tan approximates tan(x) as Sin/Cos. Near a pole the result is NaN.
func Tan(x float64, opts ...series.Option) float64 {
	return TanArray(ndarray.Scalar(x), opts...).Data()[0]
}

// TanArray applies Tan elementwise. Elements whose cosine magnitude is below
// PoleThreshold become NaN without affecting the others.
func TanArray(x *ndarray.Array[float64], opts ...series.Option) *ndarray.Array[float64] {
	s := SinArray(x, opts...)
	c := CosArray(x, opts...)

	out := s.Data()
	for i, cv := range c.Data() {
		if math.Abs(cv) < PoleThreshold {
			out[i] = math.NaN()
			continue
		}
		out[i] /= cv
	}

	return s
}

// alternatingSum adds sign·power/n! for n = first, first+2, ..., 2·terms,
// starting with sign -1. result holds the leading term and power its power
// of x; both are updated in place.
func alternatingSum(result, power *ndarray.Array[float64], x []float64, first, terms int) *ndarray.Array[float64] {
	x2 := make([]float64, len(x))
	vecmath.MulBlock(x2, x, x)

	acc := result.Data()
	pw := power.Data()
	terms = min(terms, maxTrigTerms)

	// 0! and 1! are both 1, so one start value serves cos and sin.
	factorial := 1.0
	sign := -1.0

	for n := first; n <= 2*terms; n += 2 {
		factorial *= float64(n * (n - 1))
		if math.IsInf(factorial, 1) {
			break
		}
		vecmath.MulBlockInPlace(pw, x2)
		floats.AddScaled(acc, sign/factorial, pw)
		sign = -sign
	}

	return result
}
