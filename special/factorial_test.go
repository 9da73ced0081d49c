package special

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-special/ndarray"
)

func TestFactorialSingleValues(t *testing.T) {
	tests := []struct {
		n    int
		want int64
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}

	for _, tt := range tests {
		got, err := Factorial(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "n=%d", tt.n)
	}
}

func TestFactorialNegative(t *testing.T) {
	_, err := Factorial(-1)
	require.ErrorIs(t, err, ErrNegativeFactorial)

	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, -1, de.Value)
	assert.Equal(t, -1, de.Index)
	assert.Contains(t, err.Error(), "factorial undefined for negative input")
}

func TestFactorialOverflow(t *testing.T) {
	_, err := Factorial(21)
	require.ErrorIs(t, err, ErrFactorialOverflow)
}

func TestFactorialArray(t *testing.T) {
	got, err := FactorialArray(ndarray.Vector(3, 4, 5))
	require.NoError(t, err)
	assert.Equal(t, []int64{6, 24, 120}, got.Data())
	assert.Equal(t, []int{3}, got.Shape())

	m, err := ndarray.FromSlice([]int{0, 1, 2, 3, 4, 5}, 2, 3)
	require.NoError(t, err)
	got, err = FactorialArray(m)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, got.Shape())
	assert.Equal(t, []int64{1, 1, 2, 6, 24, 120}, got.Data())

	got, err = FactorialArray(ndarray.Scalar(6))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Rank())
	assert.Equal(t, int64(720), got.Data()[0])

	got, err = FactorialArray(ndarray.Vector[int]())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestFactorialArrayChecksEveryElement(t *testing.T) {
	_, err := FactorialArray(ndarray.Vector(3, 4, -2, 5))
	require.ErrorIs(t, err, ErrNegativeFactorial)

	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 2, de.Index)
	assert.Equal(t, -2, de.Value)
}

func TestFactorialArrayNegativeTakesPrecedenceOverOverflow(t *testing.T) {
	_, err := FactorialArray(ndarray.Vector(25, -1))
	require.ErrorIs(t, err, ErrNegativeFactorial)
	require.NotErrorIs(t, err, ErrFactorialOverflow)

	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 1, de.Index)
	assert.Equal(t, -1, de.Value)

	_, err = FactorialArray(ndarray.Vector(3, 25))
	require.ErrorIs(t, err, ErrFactorialOverflow)
}

func TestFactorialFloat(t *testing.T) {
	f, err := FactorialFloat(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)

	f, err = FactorialFloat(20)
	require.NoError(t, err)
	assert.Equal(t, float64(2432902008176640000), f)

	f, err = FactorialFloat(170)
	require.NoError(t, err)
	assert.False(t, math.IsInf(f, 0))

	f, err = FactorialFloat(171)
	require.NoError(t, err)
	assert.True(t, math.IsInf(f, 1))

	_, err = FactorialFloat(-3)
	require.ErrorIs(t, err, ErrNegativeFactorial)
}

func TestFactorialCacheMatchesDirect(t *testing.T) {
	c := NewFactorialCache(120)
	assert.Equal(t, 120, c.Limit())
	assert.Equal(t, 0, c.Len())

	for _, n := range []int{7, 3, 120, 0, 99, 150} {
		got, err := c.Float(n)
		require.NoError(t, err)

		want, err := FactorialFloat(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "n=%d", n)
	}

	// 150 is above the limit and is not stored.
	assert.Equal(t, 121, c.Len())

	_, err := c.Float(-1)
	require.ErrorIs(t, err, ErrNegativeFactorial)
}

func TestFactorialCacheNegativeLimit(t *testing.T) {
	c := NewFactorialCache(-5)
	v, err := c.Float(4)
	require.NoError(t, err)
	assert.Equal(t, 24.0, v)
	assert.Equal(t, 0, c.Len())

	v, err = c.Float(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, 1, c.Len())
}

func TestFactorialCacheConcurrent(t *testing.T) {
	c := NewFactorialCache(170)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for g := range 16 {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := range 171 {
				n := (i*7 + offset) % 171
				got, err := c.Float(n)
				if err != nil {
					errs <- err
					return
				}
				want, _ := FactorialFloat(n)
				if got != want {
					errs <- errors.New("cache value differs from FactorialFloat")
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatal(err)
	}
	assert.Equal(t, 171, c.Len())
}
