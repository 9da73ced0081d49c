package special

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-special/internal/testutil"
	"github.com/cwbudde/algo-special/ndarray"
	"github.com/cwbudde/algo-special/series"
)

// referenceBessel sums the series with exact factorials and math.Gamma.
func referenceBessel(alpha float64, x complex128) complex128 {
	var sum complex128
	fact := 1.0
	for m := range 60 {
		if m > 0 {
			fact *= float64(m)
		}
		g := float64(m) + alpha + 1
		if g <= 0 && g == math.Trunc(g) {
			continue
		}
		c := math.Pow(-1, float64(m)) / (fact * math.Gamma(g))
		sum += complex(c, 0) * cmplx.Pow(x/2, complex(2*float64(m)+alpha, 0))
	}
	return sum
}

func besselFloat(t *testing.T, alpha float64, x complex128, opts ...series.Option) float64 {
	t.Helper()
	v, ok := Bessel(alpha, x, opts...).Float()
	require.True(t, ok, "J_%v(%v) did not narrow to real", alpha, x)
	return v
}

func TestBesselMatchesIntegerOrderReference(t *testing.T) {
	tests := []struct {
		order int
		x     float64
	}{
		{0, 1},
		{1, 1},
		{2, 10},
		{10, 2},
		{3, 0.25},
		{0, 5},
	}

	for _, tt := range tests {
		got := besselFloat(t, float64(tt.order), complex(tt.x, 0))
		testutil.RequireClose(t, got, math.Jn(tt.order, tt.x), 1e-10, 1e-8)
	}
}

func TestBesselHalfOrder(t *testing.T) {
	// J_{1/2}(x) = sqrt(2/(πx))·sin x
	for _, x := range []float64{0.5, 1, 3} {
		want := math.Sqrt(2/(math.Pi*x)) * math.Sin(x)
		testutil.RequireClose(t, besselFloat(t, 0.5, complex(x, 0)), want, 1e-12, 1e-10)
	}
}

func TestBesselComplexArgument(t *testing.T) {
	v := Bessel(1, complex(1, 1))
	require.False(t, v.IsReal())
	testutil.RequireComplexClose(t, v.Complex128(), referenceBessel(1, complex(1, 1)), 1e-12, 1e-10)
	testutil.RequireComplexClose(t, v.Complex128(), complex(0.6141603349229036, 0.36502802882708785), 1e-12, 0)
}

func TestBesselFractionalOrderNegativeArgumentIsComplex(t *testing.T) {
	v := Bessel(0.5, -2)
	require.False(t, v.IsReal())
	testutil.RequireComplexClose(t, v.Complex128(), referenceBessel(0.5, -2), 1e-12, 1e-10)
	assert.InDelta(t, 0, real(v.Complex128()), 1e-12)
}

func TestBesselIntegerOrderSymmetry(t *testing.T) {
	for order := range 6 {
		for _, x := range []float64{0.3, 1.5, 4, 7.25} {
			pos := besselFloat(t, float64(order), complex(x, 0))
			neg := besselFloat(t, float64(order), complex(-x, 0))
			sign := math.Pow(-1, float64(order))
			assert.InDelta(t, sign*pos, neg, 1e-15, "order=%d x=%v", order, x)
		}
	}
}

func TestBesselNegativeIntegerOrder(t *testing.T) {
	for n := 1; n <= 4; n++ {
		pos := besselFloat(t, float64(n), 1.5)
		neg := besselFloat(t, -float64(n), 1.5)
		assert.InDelta(t, math.Pow(-1, float64(n))*pos, neg, 1e-14, "n=%d", n)
	}
}

func TestBesselAtZero(t *testing.T) {
	assert.InDelta(t, 1, besselFloat(t, 0, 0), 1e-15)
	assert.Equal(t, 0.0, besselFloat(t, 1, 0))
	assert.Equal(t, 0.0, besselFloat(t, 2.5, 0))
}

func TestBesselZeroTermsIsZero(t *testing.T) {
	for _, terms := range []int{0, -1} {
		v := BesselArray(0, ndarray.Vector[complex128](1, 2, complex(0, 1)), series.WithTerms(terms))
		got, ok := v.Real()
		require.True(t, ok)
		assert.Equal(t, []float64{0, 0, 0}, got.Data())
	}
}

func TestBesselArrayShapes(t *testing.T) {
	x, err := ndarray.FromSlice([]complex128{0.5, 1, 1.5, 2, 2.5, 3}, 2, 3)
	require.NoError(t, err)

	v := BesselArray(1, x)
	got, ok := v.Real()
	require.True(t, ok)
	require.Equal(t, []int{2, 3}, got.Shape())
	for i, xv := range x.Data() {
		testutil.RequireClose(t, got.Data()[i], math.J1(real(xv)), 1e-10, 1e-8)
	}

	empty := BesselArray(0, ndarray.Vector[complex128]())
	assert.True(t, empty.IsReal())
	assert.Equal(t, []int{0}, empty.Shape())

	assert.Equal(t, 0, Bessel(0, 1).Complex().Rank())
}

func TestBesselMixedArrayStaysComplex(t *testing.T) {
	v := BesselArray(0.5, ndarray.Vector[complex128](1, -1))
	assert.False(t, v.IsReal())

	c := v.Complex().Data()
	assert.Zero(t, imag(c[0]))
	assert.NotZero(t, imag(c[1]))
}

func TestBesselConvergesWithTerms(t *testing.T) {
	x := 10.0
	want := math.Jn(2, x)
	prev := math.Inf(1)
	for _, terms := range []int{5, 10, 15, 20, 30} {
		diff := math.Abs(besselFloat(t, 2, complex(x, 0), series.WithTerms(terms)) - want)
		assert.Less(t, diff, prev, "terms=%d", terms)
		prev = diff
	}

	for _, tolerance := range []float64{1e-5, 1e-8, 1e-10} {
		assert.InDelta(t, want, besselFloat(t, 2, complex(x, 0)), tolerance)
	}
}

func TestBesselWithFactorialCache(t *testing.T) {
	cache := NewFactorialCache(200)
	x := ndarray.Vector[complex128](0.5, 1, 2)

	direct := BesselArray(2, x)
	cached := BesselArray(2, x, series.WithFactorials(cache))

	assert.Equal(t, direct.Complex().Data(), cached.Complex().Data())
	assert.Equal(t, DefaultBesselTerms, cache.Len())
}

type failingFactorials struct{}

func (failingFactorials) Float(n int) (float64, error) {
	return 0, ErrNegativeFactorial
}

func TestBesselFailingFactorialSourceYieldsNaN(t *testing.T) {
	v := Bessel(0, 1, series.WithFactorials(failingFactorials{}))
	assert.True(t, cmplx.IsNaN(v.Complex128()))
}

func TestBesselOrdersMatchesMathJn(t *testing.T) {
	for _, x := range []float64{0, 0.5, 1, 2.5, 10, -3, 25} {
		got, err := BesselOrders(x, 8)
		if err != nil {
			t.Fatalf("BesselOrders(%v, 8): %v", x, err)
		}
		if len(got) != 9 {
			t.Fatalf("len = %d, want 9", len(got))
		}
		testutil.RequireFinite(t, got)

		for n, v := range got {
			assert.InDelta(t, math.Jn(n, x), v, 1e-10, "n=%d x=%v", n, x)
		}
	}
}

func TestBesselOrdersAgreesWithSeries(t *testing.T) {
	orders, err := BesselOrders(3.5, 5)
	require.NoError(t, err)

	for n, v := range orders {
		assert.InDelta(t, besselFloat(t, float64(n), 3.5), v, 1e-9, "n=%d", n)
	}
}

func TestBesselOrdersErrors(t *testing.T) {
	_, err := BesselOrders(1, -1)
	require.ErrorIs(t, err, ErrInvalidOrder)

	_, err = BesselOrders(math.NaN(), 3)
	require.ErrorIs(t, err, ErrNonFinite)

	_, err = BesselOrders(math.Inf(-1), 3)
	require.ErrorIs(t, err, ErrNonFinite)
}
