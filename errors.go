package vecmath

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroLength is returned when an operation has to divide by the
	// length of a zero-length vector or quaternion.
	ErrZeroLength = errors.New("zero-length vector")

	// ErrSingularMatrix is returned when inverting a matrix whose
	// determinant is zero.
	ErrSingularMatrix = errors.New("singular matrix")

	// ErrIndexOutOfRange is returned when a component index is outside
	// [0, Dim()).
	ErrIndexOutOfRange = errors.New("component index out of range")
)

// ErrDimensionMismatch indicates that two buffers hold a different number
// of components.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

// NewDimensionMismatch returns an *ErrDimensionMismatch wrapping cause.
func NewDimensionMismatch(expected, actual int, cause error) *ErrDimensionMismatch {
	return &ErrDimensionMismatch{Expected: expected, Actual: actual, cause: cause}
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidDimension indicates a vector dimension that is not positive or
// does not evenly divide a flattened buffer.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidDimension struct {
	Dimension int
	cause     error
}

// NewInvalidDimension returns an *ErrInvalidDimension wrapping cause.
func NewInvalidDimension(dim int, cause error) *ErrInvalidDimension {
	return &ErrInvalidDimension{Dimension: dim, cause: cause}
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return e.cause }
