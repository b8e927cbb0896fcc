package vecmath

import (
	"fmt"

	"github.com/hupe1980/vecmath/internal/kernel"
)

// Vec4 is a 4D vector, typically a homogeneous point or an RGBA value.
type Vec4[T Float] struct {
	X, Y, Z, W T
}

type (
	// Vec4f is a 4D vector of float32.
	Vec4f = Vec4[float32]
	// Vec4d is a 4D vector of float64.
	Vec4d = Vec4[float64]
)

// V4 returns the vector (x, y, z, w).
func V4[T Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// Splat4 returns a vector with every component set to s.
func Splat4[T Float](s T) Vec4[T] {
	return Vec4[T]{X: s, Y: s, Z: s, W: s}
}

// Dim returns 4.
func (v Vec4[T]) Dim() int { return 4 }

// At returns component i (0=X, 1=Y, 2=Z, 3=W).
func (v Vec4[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	indexPanic(i, 4)
	return 0
}

// SetAt sets component i (0=X, 1=Y, 2=Z, 3=W).
func (v *Vec4[T]) SetAt(i int, c T) {
	switch i {
	case 0:
		v.X = c
	case 1:
		v.Y = c
	case 2:
		v.Z = c
	case 3:
		v.W = c
	default:
		indexPanic(i, 4)
	}
}

// Set sets all components.
func (v *Vec4[T]) Set(x, y, z, w T) *Vec4[T] {
	v.X, v.Y, v.Z, v.W = x, y, z, w
	return v
}

// Array returns the components as an array.
func (v Vec4[T]) Array() [4]T { return [4]T{v.X, v.Y, v.Z, v.W} }

// XYZ drops the W component.
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{X: v.X, Y: v.Y, Z: v.Z} }

// Project3 divides X, Y and Z by W (perspective divide), or ErrZeroLength
// when W is zero.
func (v Vec4[T]) Project3() (Vec3[T], error) {
	if v.W == 0 {
		return Vec3[T]{}, ErrZeroLength
	}
	inv := 1 / v.W
	return Vec3[T]{X: v.X * inv, Y: v.Y * inv, Z: v.Z * inv}, nil
}

func (v Vec4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// Add returns v + o.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] { return v.AddXYZW(o.X, o.Y, o.Z, o.W) }

// AddScalar adds s to every component.
func (v Vec4[T]) AddScalar(s T) Vec4[T] { return v.AddXYZW(s, s, s, s) }

// AddXYZW returns v + (x, y, z, w).
func (v Vec4[T]) AddXYZW(x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: v.X + x, Y: v.Y + y, Z: v.Z + z, W: v.W + w}
}

// AddTo stores v + o in dst and returns dst.
func (v Vec4[T]) AddTo(o Vec4[T], dst *Vec4[T]) *Vec4[T] {
	*dst = v.Add(o)
	return dst
}

// AddInPlace sets v to v + o.
func (v *Vec4[T]) AddInPlace(o Vec4[T]) *Vec4[T] {
	*v = v.Add(o)
	return v
}

// Sub returns v - o.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] { return v.SubXYZW(o.X, o.Y, o.Z, o.W) }

// SubScalar subtracts s from every component.
func (v Vec4[T]) SubScalar(s T) Vec4[T] { return v.SubXYZW(s, s, s, s) }

// SubXYZW returns v - (x, y, z, w).
func (v Vec4[T]) SubXYZW(x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: v.X - x, Y: v.Y - y, Z: v.Z - z, W: v.W - w}
}

// SubTo stores v - o in dst and returns dst.
func (v Vec4[T]) SubTo(o Vec4[T], dst *Vec4[T]) *Vec4[T] {
	*dst = v.Sub(o)
	return dst
}

// SubInPlace sets v to v - o.
func (v *Vec4[T]) SubInPlace(o Vec4[T]) *Vec4[T] {
	*v = v.Sub(o)
	return v
}

// RevSub returns o - v.
func (v Vec4[T]) RevSub(o Vec4[T]) Vec4[T] { return o.Sub(v) }

// RevSubScalar returns (s, s, s, s) - v.
func (v Vec4[T]) RevSubScalar(s T) Vec4[T] { return Splat4(s).Sub(v) }

// RevSubXYZW returns (x, y, z, w) - v.
func (v Vec4[T]) RevSubXYZW(x, y, z, w T) Vec4[T] { return V4(x, y, z, w).Sub(v) }

// RevSubInPlace sets v to o - v.
func (v *Vec4[T]) RevSubInPlace(o Vec4[T]) *Vec4[T] {
	*v = o.Sub(*v)
	return v
}

// Mul returns the componentwise product of v and o.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] { return v.MulXYZW(o.X, o.Y, o.Z, o.W) }

// Scale returns v * s.
func (v Vec4[T]) Scale(s T) Vec4[T] { return v.MulXYZW(s, s, s, s) }

// MulXYZW returns the componentwise product of v and (x, y, z, w).
func (v Vec4[T]) MulXYZW(x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: v.X * x, Y: v.Y * y, Z: v.Z * z, W: v.W * w}
}

// MulTo stores the componentwise product of v and o in dst and returns dst.
func (v Vec4[T]) MulTo(o Vec4[T], dst *Vec4[T]) *Vec4[T] {
	*dst = v.Mul(o)
	return dst
}

// ScaleTo stores v * s in dst and returns dst.
func (v Vec4[T]) ScaleTo(s T, dst *Vec4[T]) *Vec4[T] {
	*dst = v.Scale(s)
	return dst
}

// MulInPlace sets v to the componentwise product of v and o.
func (v *Vec4[T]) MulInPlace(o Vec4[T]) *Vec4[T] {
	*v = v.Mul(o)
	return v
}

// ScaleInPlace sets v to v * s.
func (v *Vec4[T]) ScaleInPlace(s T) *Vec4[T] {
	*v = v.Scale(s)
	return v
}

// Div returns the componentwise quotient v / o.
func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] { return v.DivXYZW(o.X, o.Y, o.Z, o.W) }

// DivScalar returns v / s.
func (v Vec4[T]) DivScalar(s T) Vec4[T] { return v.Scale(1 / s) }

// DivXYZW returns the componentwise quotient v / (x, y, z, w).
func (v Vec4[T]) DivXYZW(x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: v.X / x, Y: v.Y / y, Z: v.Z / z, W: v.W / w}
}

// DivTo stores v / o in dst and returns dst.
func (v Vec4[T]) DivTo(o Vec4[T], dst *Vec4[T]) *Vec4[T] {
	*dst = v.Div(o)
	return dst
}

// DivInPlace sets v to v / o.
func (v *Vec4[T]) DivInPlace(o Vec4[T]) *Vec4[T] {
	*v = v.Div(o)
	return v
}

// RevDiv returns the componentwise quotient o / v.
func (v Vec4[T]) RevDiv(o Vec4[T]) Vec4[T] { return o.Div(v) }

// RevDivScalar returns (s, s, s, s) / v.
func (v Vec4[T]) RevDivScalar(s T) Vec4[T] { return Splat4(s).Div(v) }

// RevDivInPlace sets v to o / v.
func (v *Vec4[T]) RevDivInPlace(o Vec4[T]) *Vec4[T] {
	*v = o.Div(*v)
	return v
}

// Fma returns v + a*b computed with a fused multiply-add per component.
func (v Vec4[T]) Fma(a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: fma(a.X, b.X, v.X),
		Y: fma(a.Y, b.Y, v.Y),
		Z: fma(a.Z, b.Z, v.Z),
		W: fma(a.W, b.W, v.W),
	}
}

// FmaScalar returns v + a*s computed with a fused multiply-add per component.
func (v Vec4[T]) FmaScalar(a Vec4[T], s T) Vec4[T] {
	return Vec4[T]{
		X: fma(a.X, s, v.X),
		Y: fma(a.Y, s, v.Y),
		Z: fma(a.Z, s, v.Z),
		W: fma(a.W, s, v.W),
	}
}

// FmaTo stores v + a*b in dst and returns dst.
func (v Vec4[T]) FmaTo(a, b Vec4[T], dst *Vec4[T]) *Vec4[T] {
	*dst = v.Fma(a, b)
	return dst
}

// FmaInPlace sets v to v + a*b.
func (v *Vec4[T]) FmaInPlace(a, b Vec4[T]) *Vec4[T] {
	*v = v.Fma(a, b)
	return v
}

// FmaScalarInPlace sets v to v + a*s.
func (v *Vec4[T]) FmaScalarInPlace(a Vec4[T], s T) *Vec4[T] {
	*v = v.FmaScalar(a, s)
	return v
}

// Negate returns -v.
func (v Vec4[T]) Negate() Vec4[T] { return Vec4[T]{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W} }

// NegateInPlace sets v to -v.
func (v *Vec4[T]) NegateInPlace() *Vec4[T] {
	*v = v.Negate()
	return v
}

// Abs returns the componentwise absolute value.
func (v Vec4[T]) Abs() Vec4[T] {
	return Vec4[T]{X: abs(v.X), Y: abs(v.Y), Z: abs(v.Z), W: abs(v.W)}
}

// Min returns the componentwise minimum of v and o.
func (v Vec4[T]) Min(o Vec4[T]) Vec4[T] {
	return Vec4[T]{X: min(v.X, o.X), Y: min(v.Y, o.Y), Z: min(v.Z, o.Z), W: min(v.W, o.W)}
}

// Max returns the componentwise maximum of v and o.
func (v Vec4[T]) Max(o Vec4[T]) Vec4[T] {
	return Vec4[T]{X: max(v.X, o.X), Y: max(v.Y, o.Y), Z: max(v.Z, o.Z), W: max(v.W, o.W)}
}

// MinComponent returns the smallest component and its index.
// Ties resolve to the lowest index.
func (v Vec4[T]) MinComponent() (T, int) { return MinComponent[T](v) }

// MaxComponent returns the greatest component and its index.
// Ties resolve to the lowest index.
func (v Vec4[T]) MaxComponent() (T, int) { return MaxComponent[T](v) }

// Dot returns the dot product of v and o.
func (v Vec4[T]) Dot(o Vec4[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W }

// DotXYZW returns the dot product of v and (x, y, z, w).
func (v Vec4[T]) DotXYZW(x, y, z, w T) T { return v.X*x + v.Y*y + v.Z*z + v.W*w }

// LengthSquared returns the squared Euclidean length.
func (v Vec4[T]) LengthSquared() T { return v.Dot(v) }

// Length returns the Euclidean length. Components whose squares would
// overflow or underflow are rescaled first.
func (v Vec4[T]) Length() T {
	a := v.Array()
	return length(v.LengthSquared(), a[:])
}

// InvLength returns 1 / Length. It is +Inf for the zero vector.
func (v Vec4[T]) InvLength() T { return 1 / v.Length() }

// InvLengthSafe returns 1 / Length, or 0 when v is within Tolerance of zero.
func (v Vec4[T]) InvLengthSafe() T {
	if v.IsZero() {
		return 0
	}
	return 1 / v.Length()
}

// Distance returns the Euclidean distance between v and o.
func (v Vec4[T]) Distance(o Vec4[T]) T { return v.Sub(o).Length() }

// DistanceSquared returns the squared Euclidean distance between v and o.
func (v Vec4[T]) DistanceSquared(o Vec4[T]) T { return v.Sub(o).LengthSquared() }

// Normalize returns v scaled to unit length, or ErrZeroLength.
func (v Vec4[T]) Normalize() (Vec4[T], error) {
	l2 := v.LengthSquared()
	if kernel.SafeSumSquares(l2) {
		return v.Scale(1 / sqrt(l2)), nil
	}
	a := v.Array()
	if !kernel.UnitWide(a[:]) {
		return Vec4[T]{}, ErrZeroLength
	}
	return Vec4[T]{X: a[0], Y: a[1], Z: a[2], W: a[3]}, nil
}

// NormalizeSafe returns v scaled to unit length, or the zero vector when v
// is within Tolerance of zero.
func (v Vec4[T]) NormalizeSafe() Vec4[T] {
	if v.IsZero() {
		return Vec4[T]{}
	}
	n, _ := v.Normalize()
	return n
}

// NormalizeTo stores the normalized v in dst and returns dst. dst is left
// untouched on error.
func (v Vec4[T]) NormalizeTo(dst *Vec4[T]) (*Vec4[T], error) {
	n, err := v.Normalize()
	if err != nil {
		return dst, err
	}
	*dst = n
	return dst, nil
}

// NormalizeInPlace scales v to unit length. v is left untouched on error.
func (v *Vec4[T]) NormalizeInPlace() error {
	n, err := v.Normalize()
	if err != nil {
		return err
	}
	*v = n
	return nil
}

// NormalizeSafeInPlace scales v to unit length, zeroing it when it is
// within Tolerance of zero. It reports whether v was non-zero.
func (v *Vec4[T]) NormalizeSafeInPlace() bool {
	if v.IsZero() {
		*v = Vec4[T]{}
		return false
	}
	*v, _ = v.Normalize()
	return true
}

// Lerp linearly interpolates between v (t=0) and o (t=1).
func (v Vec4[T]) Lerp(o Vec4[T], t T) Vec4[T] { return v.FmaScalar(o.Sub(v), t) }

// ApproxEqual reports whether every component of v is within tol of o.
func (v Vec4[T]) ApproxEqual(o Vec4[T], tol T) bool {
	return ApproxEqual(v.X, o.X, tol) && ApproxEqual(v.Y, o.Y, tol) &&
		ApproxEqual(v.Z, o.Z, tol) && ApproxEqual(v.W, o.W, tol)
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec4[T]) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z) && isFinite(v.W)
}

// IsZero reports whether v is within Tolerance of the zero vector.
func (v Vec4[T]) IsZero() bool { return isZeroLengthSq(v.LengthSquared()) }
