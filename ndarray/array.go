package ndarray

import "fmt"

// Number is the set of element types an Array can hold.
type Number interface {
	~int | ~int64 | ~float64 | ~complex128
}

// Array is an n-dimensional, row-major array of numbers.
//
// The zero value is not usable; construct arrays with [New], [FromSlice],
// [Scalar] or [Vector].
type Array[T Number] struct {
	shape []int
	data  []T
}

// New returns a zero-filled array with the given shape.
// An empty shape yields a rank-0 array holding one element.
func New[T Number](shape ...int) (*Array[T], error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}

	return &Array[T]{shape: cloneShape(shape), data: make([]T, n)}, nil
}

// FromSlice copies data into a new array with the given shape.
func FromSlice[T Number](data []T, shape ...int) (*Array[T], error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}

	if n != len(data) {
		return nil, fmt.Errorf("%w: %d elements for shape %v", ErrShapeMismatch, len(data), shape)
	}

	out := make([]T, n)
	copy(out, data)

	return &Array[T]{shape: cloneShape(shape), data: out}, nil
}

// Scalar returns a rank-0 array holding v.
func Scalar[T Number](v T) *Array[T] {
	return &Array[T]{shape: []int{}, data: []T{v}}
}

// Vector returns a rank-1 array holding a copy of values.
func Vector[T Number](values ...T) *Array[T] {
	out := make([]T, len(values))
	copy(out, values)

	return &Array[T]{shape: []int{len(values)}, data: out}
}

// Shape returns a copy of the array dimensions.
func (a *Array[T]) Shape() []int {
	return cloneShape(a.shape)
}

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int {
	return len(a.shape)
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Data returns the flat row-major backing slice. Writes are visible through a.
func (a *Array[T]) Data() []T {
	return a.data
}

// IsScalar reports whether a has rank 0.
func (a *Array[T]) IsScalar() bool {
	return len(a.shape) == 0
}

// Item returns the single element of a rank-0 or one-element array.
func (a *Array[T]) Item() (T, error) {
	if len(a.data) != 1 {
		var zero T
		return zero, fmt.Errorf("%w: Item needs exactly one element, have %d", ErrShapeMismatch, len(a.data))
	}

	return a.data[0], nil
}

// At returns the element at the given multi-index.
func (a *Array[T]) At(idx ...int) (T, error) {
	off, err := a.offset(idx)
	if err != nil {
		var zero T
		return zero, err
	}

	return a.data[off], nil
}

// Set stores v at the given multi-index.
func (a *Array[T]) Set(v T, idx ...int) error {
	off, err := a.offset(idx)
	if err != nil {
		return err
	}

	a.data[off] = v

	return nil
}

// Reshape returns an array sharing a's data with a new shape of equal size.
func (a *Array[T]) Reshape(shape ...int) (*Array[T], error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}

	if n != len(a.data) {
		return nil, fmt.Errorf("%w: cannot reshape %v into %v", ErrShapeMismatch, a.shape, shape)
	}

	return &Array[T]{shape: cloneShape(shape), data: a.data}, nil
}

// Clone returns a deep copy of a.
func (a *Array[T]) Clone() *Array[T] {
	out := make([]T, len(a.data))
	copy(out, a.data)

	return &Array[T]{shape: cloneShape(a.shape), data: out}
}

// HasShape reports whether a's dimensions equal shape.
func (a *Array[T]) HasShape(shape []int) bool {
	return SameShape(a.shape, shape)
}

// String formats the array as shape and flat data.
func (a *Array[T]) String() string {
	return fmt.Sprintf("Array%v%v", a.shape, a.data)
}

// SameShape reports whether two shapes are identical.
func SameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func (a *Array[T]) offset(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("%w: %d indices for rank %d", ErrIndexOutOfRange, len(idx), len(a.shape))
	}

	off := 0
	for i, k := range idx {
		if k < 0 || k >= a.shape[i] {
			return 0, fmt.Errorf("%w: index %d out of [0,%d) on axis %d", ErrIndexOutOfRange, k, a.shape[i], i)
		}
		off = off*a.shape[i] + k
	}

	return off, nil
}

func sizeOf(shape []int) (int, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: %v", ErrNegativeDimension, shape)
		}
		n *= d
	}

	return n, nil
}

func cloneShape(shape []int) []int {
	out := make([]int, len(shape))
	copy(out, shape)

	return out
}
