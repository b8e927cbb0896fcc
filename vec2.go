package vecmath

import (
	"fmt"

	"github.com/hupe1980/vecmath/internal/kernel"
)

// Vec2 is a 2D vector.
type Vec2[T Float] struct {
	X, Y T
}

type (
	// Vec2f is a 2D vector of float32.
	Vec2f = Vec2[float32]
	// Vec2d is a 2D vector of float64.
	Vec2d = Vec2[float64]
)

// V2 returns the vector (x, y).
func V2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Splat2 returns a vector with both components set to s.
func Splat2[T Float](s T) Vec2[T] {
	return Vec2[T]{X: s, Y: s}
}

// Vec2FromAngle returns the vector of the given length pointing at angle
// radians from the positive X axis.
func Vec2FromAngle[T Float](angle, length T) Vec2[T] {
	s, c := sincos(angle)
	return Vec2[T]{X: length * c, Y: length * s}
}

// Dim returns 2.
func (v Vec2[T]) Dim() int { return 2 }

// At returns component i (0=X, 1=Y).
func (v Vec2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	indexPanic(i, 2)
	return 0
}

// SetAt sets component i (0=X, 1=Y).
func (v *Vec2[T]) SetAt(i int, c T) {
	switch i {
	case 0:
		v.X = c
	case 1:
		v.Y = c
	default:
		indexPanic(i, 2)
	}
}

// Set sets both components.
func (v *Vec2[T]) Set(x, y T) *Vec2[T] {
	v.X, v.Y = x, y
	return v
}

// Array returns the components as an array.
func (v Vec2[T]) Array() [2]T { return [2]T{v.X, v.Y} }

// Vec3 extends v with z.
func (v Vec2[T]) Vec3(z T) Vec3[T] { return Vec3[T]{X: v.X, Y: v.Y, Z: z} }

func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y} }

// AddScalar adds s to both components.
func (v Vec2[T]) AddScalar(s T) Vec2[T] { return Vec2[T]{X: v.X + s, Y: v.Y + s} }

// AddXY returns v + (x, y).
func (v Vec2[T]) AddXY(x, y T) Vec2[T] { return Vec2[T]{X: v.X + x, Y: v.Y + y} }

// AddTo stores v + o in dst and returns dst.
func (v Vec2[T]) AddTo(o Vec2[T], dst *Vec2[T]) *Vec2[T] {
	*dst = v.Add(o)
	return dst
}

// AddInPlace sets v to v + o.
func (v *Vec2[T]) AddInPlace(o Vec2[T]) *Vec2[T] {
	*v = v.Add(o)
	return v
}

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y} }

// SubScalar subtracts s from both components.
func (v Vec2[T]) SubScalar(s T) Vec2[T] { return Vec2[T]{X: v.X - s, Y: v.Y - s} }

// SubXY returns v - (x, y).
func (v Vec2[T]) SubXY(x, y T) Vec2[T] { return Vec2[T]{X: v.X - x, Y: v.Y - y} }

// SubTo stores v - o in dst and returns dst.
func (v Vec2[T]) SubTo(o Vec2[T], dst *Vec2[T]) *Vec2[T] {
	*dst = v.Sub(o)
	return dst
}

// SubInPlace sets v to v - o.
func (v *Vec2[T]) SubInPlace(o Vec2[T]) *Vec2[T] {
	*v = v.Sub(o)
	return v
}

// RevSub returns o - v.
func (v Vec2[T]) RevSub(o Vec2[T]) Vec2[T] { return o.Sub(v) }

// RevSubScalar returns (s, s) - v.
func (v Vec2[T]) RevSubScalar(s T) Vec2[T] { return Vec2[T]{X: s - v.X, Y: s - v.Y} }

// RevSubXY returns (x, y) - v.
func (v Vec2[T]) RevSubXY(x, y T) Vec2[T] { return Vec2[T]{X: x - v.X, Y: y - v.Y} }

// RevSubInPlace sets v to o - v.
func (v *Vec2[T]) RevSubInPlace(o Vec2[T]) *Vec2[T] {
	*v = o.Sub(*v)
	return v
}

// Mul returns the componentwise product of v and o.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X * o.X, Y: v.Y * o.Y} }

// Scale returns v * s.
func (v Vec2[T]) Scale(s T) Vec2[T] { return Vec2[T]{X: v.X * s, Y: v.Y * s} }

// MulXY returns the componentwise product of v and (x, y).
func (v Vec2[T]) MulXY(x, y T) Vec2[T] { return Vec2[T]{X: v.X * x, Y: v.Y * y} }

// MulTo stores the componentwise product of v and o in dst and returns dst.
func (v Vec2[T]) MulTo(o Vec2[T], dst *Vec2[T]) *Vec2[T] {
	*dst = v.Mul(o)
	return dst
}

// ScaleTo stores v * s in dst and returns dst.
func (v Vec2[T]) ScaleTo(s T, dst *Vec2[T]) *Vec2[T] {
	*dst = v.Scale(s)
	return dst
}

// MulInPlace sets v to the componentwise product of v and o.
func (v *Vec2[T]) MulInPlace(o Vec2[T]) *Vec2[T] {
	*v = v.Mul(o)
	return v
}

// ScaleInPlace sets v to v * s.
func (v *Vec2[T]) ScaleInPlace(s T) *Vec2[T] {
	*v = v.Scale(s)
	return v
}

// Div returns the componentwise quotient v / o.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X / o.X, Y: v.Y / o.Y} }

// DivScalar returns v / s.
func (v Vec2[T]) DivScalar(s T) Vec2[T] { return v.Scale(1 / s) }

// DivXY returns the componentwise quotient v / (x, y).
func (v Vec2[T]) DivXY(x, y T) Vec2[T] { return Vec2[T]{X: v.X / x, Y: v.Y / y} }

// DivTo stores v / o in dst and returns dst.
func (v Vec2[T]) DivTo(o Vec2[T], dst *Vec2[T]) *Vec2[T] {
	*dst = v.Div(o)
	return dst
}

// DivInPlace sets v to v / o.
func (v *Vec2[T]) DivInPlace(o Vec2[T]) *Vec2[T] {
	*v = v.Div(o)
	return v
}

// RevDiv returns the componentwise quotient o / v.
func (v Vec2[T]) RevDiv(o Vec2[T]) Vec2[T] { return o.Div(v) }

// RevDivScalar returns (s, s) / v.
func (v Vec2[T]) RevDivScalar(s T) Vec2[T] { return Vec2[T]{X: s / v.X, Y: s / v.Y} }

// RevDivXY returns (x, y) / v.
func (v Vec2[T]) RevDivXY(x, y T) Vec2[T] { return Vec2[T]{X: x / v.X, Y: y / v.Y} }

// RevDivInPlace sets v to o / v.
func (v *Vec2[T]) RevDivInPlace(o Vec2[T]) *Vec2[T] {
	*v = o.Div(*v)
	return v
}

// Fma returns v + a*b computed with a fused multiply-add per component.
func (v Vec2[T]) Fma(a, b Vec2[T]) Vec2[T] {
	return Vec2[T]{X: fma(a.X, b.X, v.X), Y: fma(a.Y, b.Y, v.Y)}
}

// FmaScalar returns v + a*s computed with a fused multiply-add per component.
func (v Vec2[T]) FmaScalar(a Vec2[T], s T) Vec2[T] {
	return Vec2[T]{X: fma(a.X, s, v.X), Y: fma(a.Y, s, v.Y)}
}

// FmaTo stores v + a*b in dst and returns dst.
func (v Vec2[T]) FmaTo(a, b Vec2[T], dst *Vec2[T]) *Vec2[T] {
	*dst = v.Fma(a, b)
	return dst
}

// FmaInPlace sets v to v + a*b.
func (v *Vec2[T]) FmaInPlace(a, b Vec2[T]) *Vec2[T] {
	*v = v.Fma(a, b)
	return v
}

// FmaScalarInPlace sets v to v + a*s.
func (v *Vec2[T]) FmaScalarInPlace(a Vec2[T], s T) *Vec2[T] {
	*v = v.FmaScalar(a, s)
	return v
}

// Negate returns -v.
func (v Vec2[T]) Negate() Vec2[T] { return Vec2[T]{X: -v.X, Y: -v.Y} }

// NegateInPlace sets v to -v.
func (v *Vec2[T]) NegateInPlace() *Vec2[T] {
	*v = v.Negate()
	return v
}

// Abs returns the componentwise absolute value.
func (v Vec2[T]) Abs() Vec2[T] { return Vec2[T]{X: abs(v.X), Y: abs(v.Y)} }

// Min returns the componentwise minimum of v and o.
func (v Vec2[T]) Min(o Vec2[T]) Vec2[T] { return Vec2[T]{X: min(v.X, o.X), Y: min(v.Y, o.Y)} }

// Max returns the componentwise maximum of v and o.
func (v Vec2[T]) Max(o Vec2[T]) Vec2[T] { return Vec2[T]{X: max(v.X, o.X), Y: max(v.Y, o.Y)} }

// MinComponent returns the smallest component and its index.
// Ties resolve to the lowest index.
func (v Vec2[T]) MinComponent() (T, int) { return MinComponent[T](v) }

// MaxComponent returns the greatest component and its index.
// Ties resolve to the lowest index.
func (v Vec2[T]) MaxComponent() (T, int) { return MaxComponent[T](v) }

// Dot returns the dot product of v and o.
func (v Vec2[T]) Dot(o Vec2[T]) T { return v.X*o.X + v.Y*o.Y }

// DotXY returns the dot product of v and (x, y).
func (v Vec2[T]) DotXY(x, y T) T { return v.X*x + v.Y*y }

// Cross returns the z component of the 3D cross product of (v, 0) and (o, 0).
func (v Vec2[T]) Cross(o Vec2[T]) T { return v.X*o.Y - v.Y*o.X }

// Perp returns v rotated by +90 degrees.
func (v Vec2[T]) Perp() Vec2[T] { return Vec2[T]{X: -v.Y, Y: v.X} }

// LengthSquared returns the squared Euclidean length.
func (v Vec2[T]) LengthSquared() T { return v.Dot(v) }

// Length returns the Euclidean length. Components whose squares would
// overflow or underflow are rescaled first.
func (v Vec2[T]) Length() T {
	a := v.Array()
	return length(v.LengthSquared(), a[:])
}

// InvLength returns 1 / Length. It is +Inf for the zero vector.
func (v Vec2[T]) InvLength() T { return 1 / v.Length() }

// InvLengthSafe returns 1 / Length, or 0 when v is within Tolerance of zero.
func (v Vec2[T]) InvLengthSafe() T {
	if v.IsZero() {
		return 0
	}
	return 1 / v.Length()
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2[T]) Distance(o Vec2[T]) T { return v.Sub(o).Length() }

// DistanceSquared returns the squared Euclidean distance between v and o.
func (v Vec2[T]) DistanceSquared(o Vec2[T]) T { return v.Sub(o).LengthSquared() }

// Normalize returns v scaled to unit length, or ErrZeroLength.
func (v Vec2[T]) Normalize() (Vec2[T], error) {
	l2 := v.LengthSquared()
	if kernel.SafeSumSquares(l2) {
		return v.Scale(1 / sqrt(l2)), nil
	}
	a := v.Array()
	if !kernel.UnitWide(a[:]) {
		return Vec2[T]{}, ErrZeroLength
	}
	return Vec2[T]{X: a[0], Y: a[1]}, nil
}

// NormalizeSafe returns v scaled to unit length, or the zero vector when v
// is within Tolerance of zero.
func (v Vec2[T]) NormalizeSafe() Vec2[T] {
	if v.IsZero() {
		return Vec2[T]{}
	}
	n, _ := v.Normalize()
	return n
}

// NormalizeTo stores the normalized v in dst and returns dst. dst is left
// untouched on error.
func (v Vec2[T]) NormalizeTo(dst *Vec2[T]) (*Vec2[T], error) {
	n, err := v.Normalize()
	if err != nil {
		return dst, err
	}
	*dst = n
	return dst, nil
}

// NormalizeInPlace scales v to unit length. v is left untouched on error.
func (v *Vec2[T]) NormalizeInPlace() error {
	n, err := v.Normalize()
	if err != nil {
		return err
	}
	*v = n
	return nil
}

// NormalizeSafeInPlace scales v to unit length, zeroing it when it is
// within Tolerance of zero. It reports whether v was non-zero.
func (v *Vec2[T]) NormalizeSafeInPlace() bool {
	if v.IsZero() {
		*v = Vec2[T]{}
		return false
	}
	*v, _ = v.Normalize()
	return true
}

// Reflect reflects v about the line with unit normal n.
func (v Vec2[T]) Reflect(n Vec2[T]) Vec2[T] { return v.Sub(n.Scale(2 * v.Dot(n))) }

// Project returns the projection of v onto o, or ErrZeroLength when o is
// within Tolerance of zero.
func (v Vec2[T]) Project(o Vec2[T]) (Vec2[T], error) {
	l2 := o.LengthSquared()
	if isZeroLengthSq(l2) {
		return Vec2[T]{}, ErrZeroLength
	}
	return o.Scale(v.Dot(o) / l2), nil
}

// ProjectNormalized returns the projection of v onto the unit vector n.
func (v Vec2[T]) ProjectNormalized(n Vec2[T]) Vec2[T] { return n.Scale(v.Dot(n)) }

// Rotate rotates v counter-clockwise by angle radians.
func (v Vec2[T]) Rotate(angle T) Vec2[T] {
	s, c := sincos(angle)
	return Vec2[T]{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// RotateInPlace rotates v counter-clockwise by angle radians.
func (v *Vec2[T]) RotateInPlace(angle T) *Vec2[T] {
	*v = v.Rotate(angle)
	return v
}

// Heading returns the angle of v from the positive X axis in (-π, π].
func (v Vec2[T]) Heading() T { return atan2(v.Y, v.X) }

// Angle returns the signed angle from v to o in radians.
func (v Vec2[T]) Angle(o Vec2[T]) T {
	return atan2(v.Cross(o), v.Dot(o))
}

// Lerp linearly interpolates between v (t=0) and o (t=1).
func (v Vec2[T]) Lerp(o Vec2[T], t T) Vec2[T] { return v.FmaScalar(o.Sub(v), t) }

// ApproxEqual reports whether every component of v is within tol of o.
func (v Vec2[T]) ApproxEqual(o Vec2[T], tol T) bool {
	return ApproxEqual(v.X, o.X, tol) && ApproxEqual(v.Y, o.Y, tol)
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec2[T]) IsFinite() bool { return isFinite(v.X) && isFinite(v.Y) }

// IsZero reports whether v is within Tolerance of the zero vector.
func (v Vec2[T]) IsZero() bool { return isZeroLengthSq(v.LengthSquared()) }
