package vecmath

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/vecmath/internal/kernel"
)

// Float is the element type constraint of every vecmath type.
type Float interface {
	constraints.Float
}

// Tolerance returns the default absolute tolerance for T.
//
// Safe variants treat a value whose squared length is at most Tolerance²
// as zero.
func Tolerance[T Float]() T {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return T(1e-6)
	}
	return T(1e-12)
}

func isZeroLengthSq[T Float](lengthSq T) bool {
	tol := Tolerance[T]()
	return lengthSq <= tol*tol
}

// Sqrt returns the square root of x, using float32 arithmetic for float32.
func Sqrt[T Float](x T) T {
	return sqrt(x)
}

func sqrt[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(x)))
}

func abs[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Abs(f))
	}
	return T(math.Abs(float64(x)))
}

// fma computes x*y + z with a single rounding to T.
func fma[T Float](x, y, z T) T {
	return kernel.FusedMulAdd(x, y, z)
}

func sincos[T Float](angle T) (T, T) {
	if f, ok := any(angle).(float32); ok {
		s, c := math32.Sincos(f)
		return T(s), T(c)
	}
	s, c := math.Sincos(float64(angle))
	return T(s), T(c)
}

func acos[T Float](x T) T {
	x = clamp(x, -1, 1)
	if f, ok := any(x).(float32); ok {
		return T(math32.Acos(f))
	}
	return T(math.Acos(float64(x)))
}

func atan2[T Float](y, x T) T {
	if fy, ok := any(y).(float32); ok {
		return T(math32.Atan2(fy, float32(x)))
	}
	return T(math.Atan2(float64(y), float64(x)))
}

func tan[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Tan(f))
	}
	return T(math.Tan(float64(x)))
}

// length returns sqrt(l2), recomputing from the components c when the plain
// sum of squares l2 overflowed or underflowed.
func length[T Float](l2 T, c []T) T {
	if kernel.SafeSumSquares(l2) {
		return sqrt(l2)
	}
	return kernel.NormWide(c)
}

func clamp[T Float](x, lo, hi T) T {
	return min(max(x, lo), hi)
}

func isFinite[T Float](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ApproxEqual reports whether a and b differ by at most tol.
func ApproxEqual[T Float](a, b, tol T) bool {
	return abs(a-b) <= tol
}
