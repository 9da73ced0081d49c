// Package ndarray provides a minimal n-dimensional numeric container used by
// the series evaluators.
//
// An [Array] is a shape plus a flat, row-major data slice. Rank 0 arrays hold
// exactly one element and stand in for bare scalars, so every evaluator has a
// single elementwise code path:
//
//	x := ndarray.Scalar(1.5)              // rank 0
//	v := ndarray.Vector(0, 1, 2)          // rank 1, shape [3]
//	m, err := ndarray.FromSlice(data, 2, 3) // rank 2, shape [2 3]
//
// Zero-length dimensions are allowed; such arrays have no elements and map to
// arrays of the same shape.
//
// Rank-2 arrays convert to and from gonum matrices with [FromDense] and
// [Array.Dense].
package ndarray
