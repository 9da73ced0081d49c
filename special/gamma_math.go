//go:build !fastmath

package special

import "math"

// lanczosLog computes ln(x) using standard library math.
func lanczosLog(x float64) float64 {
	return math.Log(x)
}

// lanczosExp computes e^x using standard library math.
func lanczosExp(x float64) float64 {
	return math.Exp(x)
}

// lanczosSqrt computes sqrt(x) using standard library math.
func lanczosSqrt(x float64) float64 {
	return math.Sqrt(x)
}
