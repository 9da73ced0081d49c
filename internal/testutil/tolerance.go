package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"
)

// Close reports whether |got-want| <= atol + rtol·|want|. Equal infinities
// and two NaNs count as close.
func Close(got, want, atol, rtol float64) bool {
	if got == want {
		return true
	}

	if math.IsNaN(got) && math.IsNaN(want) {
		return true
	}

	if math.IsInf(got, 0) || math.IsInf(want, 0) {
		return false
	}

	return math.Abs(got-want) <= atol+rtol*math.Abs(want)
}

// RequireClose fails t unless got is Close to want.
func RequireClose(t *testing.T, got, want, atol, rtol float64) {
	t.Helper()
	if !Close(got, want, atol, rtol) {
		t.Fatalf("got %v, want %v (diff %v > atol %v + rtol %v)", got, want, math.Abs(got-want), atol, rtol)
	}
}

// RequireComplexClose fails t unless |got-want| <= atol + rtol·|want|.
func RequireComplexClose(t *testing.T, got, want complex128, atol, rtol float64) {
	t.Helper()
	diff := cmplx.Abs(got - want)
	if diff > atol+rtol*cmplx.Abs(want) || math.IsNaN(diff) {
		t.Fatalf("got %v, want %v (diff %v > atol %v + rtol %v)", got, want, diff, atol, rtol)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance). Matching NaNs and
// equal infinities pass.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !Close(got[i], want[i], eps, 0) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], math.Abs(got[i]-want[i]), eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff, nil
}
