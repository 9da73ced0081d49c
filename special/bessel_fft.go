package special

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-special/ndarray"
	"github.com/cwbudde/algo-special/taylor"
)

// besselGuardBins keeps aliased orders far enough out to be negligible.
const besselGuardBins = 64

// BesselOrders returns J_0(x) .. J_maxOrder(x) for real x in one pass.
//
// It samples the Jacobi–Anger expansion
//
//	e^{i x cos τ} = Σ_n i^n J_n(x) e^{i n τ}
//
// on an evenly spaced τ grid and reads J_k from DFT bin k divided by N·i^k.
// The coefficients of e^{±i n τ} are equal, so the result does not depend on
// the transform's sign convention. Samples come from the Taylor evaluators,
// which makes this an independent check on the power-series Bessel.
func BesselOrders(x float64, maxOrder int) ([]float64, error) {
	if maxOrder < 0 {
		return nil, fmt.Errorf("%w: max order %d", ErrInvalidOrder, maxOrder)
	}

	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, fmt.Errorf("%w: x=%v", ErrNonFinite, x)
	}

	n := nextPowerOf2(2*(maxOrder+int(math.Ceil(math.Abs(x)))) + besselGuardBins)

	tau := make([]float64, n)
	for j := range tau {
		tau[j] = 2 * math.Pi * float64(j) / float64(n)
	}

	phase := ndarray.Map(taylor.CosArray(ndarray.Vector(tau...)), func(c float64) float64 {
		return x * c
	})
	re := taylor.CosArray(phase).Data()
	im := taylor.SinArray(phase).Data()

	samples := make([]complex128, n)
	for j := range samples {
		samples[j] = complex(re[j], im[j])
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("special: failed to create FFT plan: %w", err)
	}

	spectrum := make([]complex128, n)
	if err := plan.Forward(spectrum, samples); err != nil {
		return nil, fmt.Errorf("special: forward FFT: %w", err)
	}

	out := make([]float64, maxOrder+1)
	rot := complex(1, 0) // (-i)^k
	scale := 1 / float64(n)
	for k := range out {
		out[k] = real(spectrum[k]*rot) * scale
		rot *= complex(0, -1)
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
