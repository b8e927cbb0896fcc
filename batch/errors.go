package batch

import (
	"fmt"

	"github.com/hupe1980/vecmath"
)

// ZeroLengthError reports the first zero-length vector met by a strict
// batch operation.
//
// It unwraps to vecmath.ErrZeroLength.
type ZeroLengthError struct {
	Index int
}

func (e *ZeroLengthError) Error() string {
	return fmt.Sprintf("vector %d: %v", e.Index, vecmath.ErrZeroLength)
}

func (e *ZeroLengthError) Unwrap() error { return vecmath.ErrZeroLength }

// validate checks that data holds whole vectors of dimension dim and
// returns the vector count.
func validate(dim int, data int) (int, error) {
	if dim <= 0 {
		return 0, vecmath.NewInvalidDimension(dim, nil)
	}
	if data%dim != 0 {
		return 0, vecmath.NewInvalidDimension(dim, fmt.Errorf("buffer length %d is not a multiple of %d", data, dim))
	}
	return data / dim, nil
}

// validatePair checks two buffers of equal length holding whole vectors.
func validatePair(dim int, a, b int) (int, error) {
	if a != b {
		return 0, vecmath.NewDimensionMismatch(a, b, nil)
	}
	return validate(dim, a)
}
