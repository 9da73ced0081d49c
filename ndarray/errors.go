package ndarray

import "errors"

var (
	// ErrNegativeDimension is returned when a shape contains a negative size.
	ErrNegativeDimension = errors.New("ndarray: negative dimension")

	// ErrShapeMismatch is returned when data length and shape disagree.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrRank is returned when an operation requires a specific rank.
	ErrRank = errors.New("ndarray: unsupported rank")

	// ErrIndexOutOfRange is returned for indices outside the shape.
	ErrIndexOutOfRange = errors.New("ndarray: index out of range")
)
