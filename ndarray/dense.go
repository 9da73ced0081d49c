package ndarray

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromDense copies a gonum matrix into a rank-2 array.
func FromDense(m mat.Matrix) *Array[float64] {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	for i := range r {
		for j := range c {
			out = append(out, m.At(i, j))
		}
	}

	return &Array[float64]{shape: []int{r, c}, data: out}
}

// ToDense copies a rank-2 array into a gonum dense matrix.
// gonum does not support empty matrices, so zero-sized arrays are rejected.
func ToDense(a *Array[float64]) (*mat.Dense, error) {
	if a.Rank() != 2 {
		return nil, fmt.Errorf("%w: dense conversion needs rank 2, have %d", ErrRank, a.Rank())
	}

	if a.Len() == 0 {
		return nil, fmt.Errorf("%w: empty shape %v", ErrShapeMismatch, a.shape)
	}

	data := make([]float64, len(a.data))
	copy(data, a.data)

	return mat.NewDense(a.shape[0], a.shape[1], data), nil
}
