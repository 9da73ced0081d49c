//go:build fastmath

package special

import "github.com/meko-christian/algo-approx"

// lanczosLog computes ln(x) using fast approximation.
func lanczosLog(x float64) float64 {
	return approx.FastLog(x)
}

// lanczosExp computes e^x using fast approximation.
func lanczosExp(x float64) float64 {
	return approx.FastExp(x)
}

// lanczosSqrt computes sqrt(x) using fast approximation.
func lanczosSqrt(x float64) float64 {
	return approx.FastSqrt(x)
}
