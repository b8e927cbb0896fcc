package kernel

import (
	"math"

	"golang.org/x/exp/constraints"
)

// ============================================================================
// Public API - dispatch on the kind selected at init
// ============================================================================

// Dot returns the dot product of a and b.
//
// SAFETY: Assumes len(a) == len(b). Caller MUST ensure lengths match.
func Dot[T constraints.Float](a, b []T) T {
	if active == FMA {
		return dotFMA(a, b)
	}
	return dotPlain(a, b)
}

// SumSquares returns the sum of squares of a.
func SumSquares[T constraints.Float](a []T) T {
	return Dot(a, a)
}

// DotStrided computes out[i] = dot(a[i*dim:(i+1)*dim], b[i*dim:(i+1)*dim])
// for every i in [0, len(out)).
func DotStrided[T constraints.Float](a, b []T, dim int, out []T) {
	for i := range out {
		off := i * dim
		out[i] = Dot(a[off:off+dim], b[off:off+dim])
	}
}

// ScaleInPlace multiplies all elements of a by s.
func ScaleInPlace[T constraints.Float](a []T, s T) {
	i := 0
	for ; i+4 <= len(a); i += 4 {
		a[i] *= s
		a[i+1] *= s
		a[i+2] *= s
		a[i+3] *= s
	}
	for ; i < len(a); i++ {
		a[i] *= s
	}
}

// Axpy computes dst[i] += s * x[i], with one rounding per element on the
// FMA kernel.
//
// SAFETY: Assumes len(dst) == len(x).
func Axpy[T constraints.Float](dst, x []T, s T) {
	if active == FMA {
		for i := range dst {
			dst[i] = FusedMulAdd(x[i], s, dst[i])
		}
		return
	}
	for i := range dst {
		dst[i] += s * x[i]
	}
}

// MulAdd computes dst[i] += a[i] * b[i], with one rounding per element on
// the FMA kernel.
//
// SAFETY: Assumes len(dst) == len(a) == len(b).
func MulAdd[T constraints.Float](dst, a, b []T) {
	if active == FMA {
		for i := range dst {
			dst[i] = FusedMulAdd(a[i], b[i], dst[i])
		}
		return
	}
	for i := range dst {
		dst[i] += a[i] * b[i]
	}
}

// Add computes dst[i] = a[i] + b[i]. dst may alias a or b.
func Add[T constraints.Float](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Sub computes dst[i] = a[i] - b[i]. dst may alias a or b.
func Sub[T constraints.Float](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// ============================================================================
// Implementations
// ============================================================================

func dotPlain[T constraints.Float](a, b []T) T {
	var s0, s1, s2, s3 T
	i := 0
	for ; i+4 <= len(a); i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	for ; i < len(a); i++ {
		s0 += a[i] * b[i]
	}
	return (s0 + s1) + (s2 + s3)
}

// dotFMA accumulates in float64 regardless of T.
func dotFMA[T constraints.Float](a, b []T) T {
	var s0, s1 float64
	i := 0
	for ; i+2 <= len(a); i += 2 {
		s0 = math.FMA(float64(a[i]), float64(b[i]), s0)
		s1 = math.FMA(float64(a[i+1]), float64(b[i+1]), s1)
	}
	for ; i < len(a); i++ {
		s0 = math.FMA(float64(a[i]), float64(b[i]), s0)
	}
	return T(s0 + s1)
}
