package kernel

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Below these bounds a sum of squares may have lost non-negligible terms to
// underflow: smallest normal / machine epsilon, rounded up.
const (
	minSafeSumSquares32 = 0x1p-100
	minSafeSumSquares64 = 0x1p-968
)

// SafeSumSquares reports whether ss, a plain sum of squares, is finite and
// large enough that no significant term underflowed. Outside that range
// callers switch to NormWide, UnitWide or ReciprocalWide.
func SafeSumSquares[T constraints.Float](ss T) bool {
	lo := minSafeSumSquares64
	if _, ok := any(ss).(float32); ok {
		lo = minSafeSumSquares32
	}
	f := float64(ss)
	return f >= lo && !math.IsInf(f, 1)
}

// Norm returns the Euclidean length of a without intermediate overflow or
// underflow.
func Norm[T constraints.Float](a []T) T {
	if ss := SumSquares(a); SafeSumSquares(ss) {
		return sqrt(ss)
	}
	return NormWide(a)
}

// Unit scales a to unit length given ss = SumSquares(a). It reports false,
// leaving a unchanged, when every element of a is zero.
func Unit[T constraints.Float](a []T, ss T) bool {
	if SafeSumSquares(ss) {
		ScaleInPlace(a, 1/sqrt(ss))
		return true
	}
	return UnitWide(a)
}

// NormWide returns the Euclidean length of a computed in float64 after
// dividing every element by the largest magnitude, as math.Hypot does.
func NormWide[T constraints.Float](a []T) T {
	m, l := scaleWide(a)
	if l == 0 {
		// zero, infinite or NaN
		return T(m)
	}
	return T(m * l)
}

// UnitWide is the slow path of Unit. It reports false for a zero a.
func UnitWide[T constraints.Float](a []T) bool {
	m, l := scaleWide(a)
	if m == 0 {
		return false
	}
	if l == 0 {
		l = 1
	}
	for i, x := range a {
		a[i] = T(float64(x) / m / l)
	}
	return true
}

// ReciprocalWide replaces a with a / |a|². It reports false, leaving a
// unchanged, when every element of a is zero.
func ReciprocalWide[T constraints.Float](a []T) bool {
	m, l := scaleWide(a)
	if m == 0 {
		return false
	}
	if l == 0 {
		l = 1
	}
	for i, x := range a {
		a[i] = T(float64(x) / m / l / m / l)
	}
	return true
}

// scaleWide returns the largest magnitude m in a and the length of a/m.
// l is 0 when m is zero, infinite or NaN.
func scaleWide[T constraints.Float](a []T) (m, l float64) {
	for _, x := range a {
		m = max(m, math.Abs(float64(x)))
	}
	if m == 0 || math.IsInf(m, 1) || math.IsNaN(m) {
		return m, 0
	}
	var s float64
	for _, x := range a {
		y := float64(x) / m
		s += y * y
	}
	return m, math.Sqrt(s)
}

func sqrt[T constraints.Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(x)))
}

// FusedMulAdd returns x*y + z rounded once to T.
func FusedMulAdd[T constraints.Float](x, y, z T) T {
	if f, ok := any(x).(float32); ok {
		return T(fma32(f, float32(y), float32(z)))
	}
	return T(math.FMA(float64(x), float64(y), float64(z)))
}

// fma32 rounds x*y + z once to float32. The float64 product of two float32
// values is exact. Rounding the float64 sum to odd before the final
// conversion avoids the double rounding of float32(math.FMA(...)).
func fma32(x, y, z float32) float32 {
	p := float64(x) * float64(y)
	s := p + float64(z)
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}
	// two-sum error of p + z
	zz := s - p
	e := (p - (s - zz)) + (float64(z) - zz)
	if e != 0 && math.Float64bits(s)&1 == 0 {
		s = math.Nextafter(s, math.Copysign(math.Inf(1), e))
	}
	return float32(s)
}
