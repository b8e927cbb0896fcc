package vecmath

import (
	"fmt"

	"github.com/hupe1980/vecmath/internal/kernel"
)

// Vec3 is a 3D vector.
type Vec3[T Float] struct {
	X, Y, Z T
}

type (
	// Vec3f is a 3D vector of float32.
	Vec3f = Vec3[float32]
	// Vec3d is a 3D vector of float64.
	Vec3d = Vec3[float64]
)

// V3 returns the vector (x, y, z).
func V3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Splat3 returns a vector with every component set to s.
func Splat3[T Float](s T) Vec3[T] {
	return Vec3[T]{X: s, Y: s, Z: s}
}

// Vec3FromTuple returns the first three components of t, padding with zero.
func Vec3FromTuple[T Float](t Tuple[T]) Vec3[T] {
	var v Vec3[T]
	CopyTuple[T](&v, t)
	return v
}

// Dim returns 3.
func (v Vec3[T]) Dim() int { return 3 }

// At returns component i (0=X, 1=Y, 2=Z).
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	indexPanic(i, 3)
	return 0
}

// SetAt sets component i (0=X, 1=Y, 2=Z).
func (v *Vec3[T]) SetAt(i int, c T) {
	switch i {
	case 0:
		v.X = c
	case 1:
		v.Y = c
	case 2:
		v.Z = c
	default:
		indexPanic(i, 3)
	}
}

// Set sets all components.
func (v *Vec3[T]) Set(x, y, z T) *Vec3[T] {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// Array returns the components as an array.
func (v Vec3[T]) Array() [3]T { return [3]T{v.X, v.Y, v.Z} }

// XY drops the Z component.
func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{X: v.X, Y: v.Y} }

// Vec4 extends v with w.
func (v Vec3[T]) Vec4(w T) Vec4[T] { return Vec4[T]{X: v.X, Y: v.Y, Z: v.Z, W: w} }

func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// AddScalar adds s to every component.
func (v Vec3[T]) AddScalar(s T) Vec3[T] { return v.AddXYZ(s, s, s) }

// AddXYZ returns v + (x, y, z).
func (v Vec3[T]) AddXYZ(x, y, z T) Vec3[T] {
	return Vec3[T]{X: v.X + x, Y: v.Y + y, Z: v.Z + z}
}

// AddTo stores v + o in dst and returns dst.
func (v Vec3[T]) AddTo(o Vec3[T], dst *Vec3[T]) *Vec3[T] {
	*dst = v.Add(o)
	return dst
}

// AddInPlace sets v to v + o.
func (v *Vec3[T]) AddInPlace(o Vec3[T]) *Vec3[T] {
	*v = v.Add(o)
	return v
}

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// SubScalar subtracts s from every component.
func (v Vec3[T]) SubScalar(s T) Vec3[T] { return v.SubXYZ(s, s, s) }

// SubXYZ returns v - (x, y, z).
func (v Vec3[T]) SubXYZ(x, y, z T) Vec3[T] {
	return Vec3[T]{X: v.X - x, Y: v.Y - y, Z: v.Z - z}
}

// SubTo stores v - o in dst and returns dst.
func (v Vec3[T]) SubTo(o Vec3[T], dst *Vec3[T]) *Vec3[T] {
	*dst = v.Sub(o)
	return dst
}

// SubInPlace sets v to v - o.
func (v *Vec3[T]) SubInPlace(o Vec3[T]) *Vec3[T] {
	*v = v.Sub(o)
	return v
}

// RevSub returns o - v.
func (v Vec3[T]) RevSub(o Vec3[T]) Vec3[T] { return o.Sub(v) }

// RevSubScalar returns (s, s, s) - v.
func (v Vec3[T]) RevSubScalar(s T) Vec3[T] { return v.RevSubXYZ(s, s, s) }

// RevSubXYZ returns (x, y, z) - v.
func (v Vec3[T]) RevSubXYZ(x, y, z T) Vec3[T] {
	return Vec3[T]{X: x - v.X, Y: y - v.Y, Z: z - v.Z}
}

// RevSubInPlace sets v to o - v.
func (v *Vec3[T]) RevSubInPlace(o Vec3[T]) *Vec3[T] {
	*v = o.Sub(*v)
	return v
}

// Mul returns the componentwise product of v and o.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

// Scale returns v * s.
func (v Vec3[T]) Scale(s T) Vec3[T] { return v.MulXYZ(s, s, s) }

// MulXYZ returns the componentwise product of v and (x, y, z).
func (v Vec3[T]) MulXYZ(x, y, z T) Vec3[T] {
	return Vec3[T]{X: v.X * x, Y: v.Y * y, Z: v.Z * z}
}

// MulTo stores the componentwise product of v and o in dst and returns dst.
func (v Vec3[T]) MulTo(o Vec3[T], dst *Vec3[T]) *Vec3[T] {
	*dst = v.Mul(o)
	return dst
}

// ScaleTo stores v * s in dst and returns dst.
func (v Vec3[T]) ScaleTo(s T, dst *Vec3[T]) *Vec3[T] {
	*dst = v.Scale(s)
	return dst
}

// MulInPlace sets v to the componentwise product of v and o.
func (v *Vec3[T]) MulInPlace(o Vec3[T]) *Vec3[T] {
	*v = v.Mul(o)
	return v
}

// ScaleInPlace sets v to v * s.
func (v *Vec3[T]) ScaleInPlace(s T) *Vec3[T] {
	*v = v.Scale(s)
	return v
}

// Div returns the componentwise quotient v / o.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X / o.X, Y: v.Y / o.Y, Z: v.Z / o.Z}
}

// DivScalar returns v / s.
func (v Vec3[T]) DivScalar(s T) Vec3[T] { return v.Scale(1 / s) }

// DivXYZ returns the componentwise quotient v / (x, y, z).
func (v Vec3[T]) DivXYZ(x, y, z T) Vec3[T] {
	return Vec3[T]{X: v.X / x, Y: v.Y / y, Z: v.Z / z}
}

// DivTo stores v / o in dst and returns dst.
func (v Vec3[T]) DivTo(o Vec3[T], dst *Vec3[T]) *Vec3[T] {
	*dst = v.Div(o)
	return dst
}

// DivInPlace sets v to v / o.
func (v *Vec3[T]) DivInPlace(o Vec3[T]) *Vec3[T] {
	*v = v.Div(o)
	return v
}

// DivScalarInPlace sets v to v / s.
func (v *Vec3[T]) DivScalarInPlace(s T) *Vec3[T] {
	*v = v.DivScalar(s)
	return v
}

// RevDiv returns the componentwise quotient o / v.
func (v Vec3[T]) RevDiv(o Vec3[T]) Vec3[T] { return o.Div(v) }

// RevDivScalar returns (s, s, s) / v.
func (v Vec3[T]) RevDivScalar(s T) Vec3[T] { return v.RevDivXYZ(s, s, s) }

// RevDivXYZ returns (x, y, z) / v.
func (v Vec3[T]) RevDivXYZ(x, y, z T) Vec3[T] {
	return Vec3[T]{X: x / v.X, Y: y / v.Y, Z: z / v.Z}
}

// RevDivInPlace sets v to o / v.
func (v *Vec3[T]) RevDivInPlace(o Vec3[T]) *Vec3[T] {
	*v = o.Div(*v)
	return v
}

// Fma returns v + a*b computed with a fused multiply-add per component.
func (v Vec3[T]) Fma(a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{X: fma(a.X, b.X, v.X), Y: fma(a.Y, b.Y, v.Y), Z: fma(a.Z, b.Z, v.Z)}
}

// FmaScalar returns v + a*s computed with a fused multiply-add per component.
func (v Vec3[T]) FmaScalar(a Vec3[T], s T) Vec3[T] {
	return Vec3[T]{X: fma(a.X, s, v.X), Y: fma(a.Y, s, v.Y), Z: fma(a.Z, s, v.Z)}
}

// FmaTo stores v + a*b in dst and returns dst.
func (v Vec3[T]) FmaTo(a, b Vec3[T], dst *Vec3[T]) *Vec3[T] {
	*dst = v.Fma(a, b)
	return dst
}

// FmaInPlace sets v to v + a*b.
func (v *Vec3[T]) FmaInPlace(a, b Vec3[T]) *Vec3[T] {
	*v = v.Fma(a, b)
	return v
}

// FmaScalarInPlace sets v to v + a*s.
func (v *Vec3[T]) FmaScalarInPlace(a Vec3[T], s T) *Vec3[T] {
	*v = v.FmaScalar(a, s)
	return v
}

// Negate returns -v.
func (v Vec3[T]) Negate() Vec3[T] { return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z} }

// NegateInPlace sets v to -v.
func (v *Vec3[T]) NegateInPlace() *Vec3[T] {
	*v = v.Negate()
	return v
}

// Abs returns the componentwise absolute value.
func (v Vec3[T]) Abs() Vec3[T] { return Vec3[T]{X: abs(v.X), Y: abs(v.Y), Z: abs(v.Z)} }

// Min returns the componentwise minimum of v and o.
func (v Vec3[T]) Min(o Vec3[T]) Vec3[T] {
	return Vec3[T]{X: min(v.X, o.X), Y: min(v.Y, o.Y), Z: min(v.Z, o.Z)}
}

// Max returns the componentwise maximum of v and o.
func (v Vec3[T]) Max(o Vec3[T]) Vec3[T] {
	return Vec3[T]{X: max(v.X, o.X), Y: max(v.Y, o.Y), Z: max(v.Z, o.Z)}
}

// MinComponent returns the smallest component and its index.
// Ties resolve to the lowest index.
func (v Vec3[T]) MinComponent() (T, int) { return MinComponent[T](v) }

// MaxComponent returns the greatest component and its index.
// Ties resolve to the lowest index.
func (v Vec3[T]) MaxComponent() (T, int) { return MaxComponent[T](v) }

// Dot returns the dot product of v and o.
func (v Vec3[T]) Dot(o Vec3[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// DotXYZ returns the dot product of v and (x, y, z).
func (v Vec3[T]) DotXYZ(x, y, z T) T { return v.X*x + v.Y*y + v.Z*z }

// LengthSquared returns the squared Euclidean length.
func (v Vec3[T]) LengthSquared() T { return v.Dot(v) }

// Length returns the Euclidean length. Components whose squares would
// overflow or underflow are rescaled first.
func (v Vec3[T]) Length() T {
	a := v.Array()
	return length(v.LengthSquared(), a[:])
}

// InvLength returns 1 / Length. It is +Inf for the zero vector.
func (v Vec3[T]) InvLength() T { return 1 / v.Length() }

// InvLengthSafe returns 1 / Length, or 0 when v is within Tolerance of zero.
func (v Vec3[T]) InvLengthSafe() T {
	if v.IsZero() {
		return 0
	}
	return 1 / v.Length()
}

// Distance returns the Euclidean distance between v and o.
func (v Vec3[T]) Distance(o Vec3[T]) T { return v.Sub(o).Length() }

// DistanceSquared returns the squared Euclidean distance between v and o.
func (v Vec3[T]) DistanceSquared(o Vec3[T]) T { return v.Sub(o).LengthSquared() }

// Normalize returns v scaled to unit length, or ErrZeroLength.
func (v Vec3[T]) Normalize() (Vec3[T], error) {
	l2 := v.LengthSquared()
	if kernel.SafeSumSquares(l2) {
		return v.Scale(1 / sqrt(l2)), nil
	}
	a := v.Array()
	if !kernel.UnitWide(a[:]) {
		return Vec3[T]{}, ErrZeroLength
	}
	return Vec3[T]{X: a[0], Y: a[1], Z: a[2]}, nil
}

// NormalizeSafe returns v scaled to unit length, or the zero vector when v
// is within Tolerance of zero.
func (v Vec3[T]) NormalizeSafe() Vec3[T] {
	if v.IsZero() {
		return Vec3[T]{}
	}
	n, _ := v.Normalize()
	return n
}

// NormalizeTo stores the normalized v in dst and returns dst. dst is left
// untouched on error.
func (v Vec3[T]) NormalizeTo(dst *Vec3[T]) (*Vec3[T], error) {
	n, err := v.Normalize()
	if err != nil {
		return dst, err
	}
	*dst = n
	return dst, nil
}

// NormalizeInPlace scales v to unit length. v is left untouched on error.
func (v *Vec3[T]) NormalizeInPlace() error {
	n, err := v.Normalize()
	if err != nil {
		return err
	}
	*v = n
	return nil
}

// NormalizeSafeInPlace scales v to unit length, zeroing it when it is
// within Tolerance of zero. It reports whether v was non-zero.
func (v *Vec3[T]) NormalizeSafeInPlace() bool {
	if v.IsZero() {
		*v = Vec3[T]{}
		return false
	}
	*v, _ = v.Normalize()
	return true
}

// Cross returns the right-handed cross product v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// CrossLH returns the left-handed cross product, o × v in right-handed
// terms, which equals -v.Cross(o).
func (v Vec3[T]) CrossLH(o Vec3[T]) Vec3[T] { return o.Cross(v) }

// CrossXYZ returns the right-handed cross product v × (x, y, z).
func (v Vec3[T]) CrossXYZ(x, y, z T) Vec3[T] { return v.Cross(Vec3[T]{X: x, Y: y, Z: z}) }

// CrossTo stores v × o in dst and returns dst.
func (v Vec3[T]) CrossTo(o Vec3[T], dst *Vec3[T]) *Vec3[T] {
	*dst = v.Cross(o)
	return dst
}

// CrossInPlace sets v to v × o.
func (v *Vec3[T]) CrossInPlace(o Vec3[T]) *Vec3[T] {
	*v = v.Cross(o)
	return v
}

// Reflect reflects v about the plane with unit normal n.
func (v Vec3[T]) Reflect(n Vec3[T]) Vec3[T] {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// ReflectInPlace reflects v about the plane with unit normal n.
func (v *Vec3[T]) ReflectInPlace(n Vec3[T]) *Vec3[T] {
	*v = v.Reflect(n)
	return v
}

// Project returns the projection of v onto o, or ErrZeroLength when o is
// within Tolerance of zero.
func (v Vec3[T]) Project(o Vec3[T]) (Vec3[T], error) {
	l2 := o.LengthSquared()
	if isZeroLengthSq(l2) {
		return Vec3[T]{}, ErrZeroLength
	}
	return o.Scale(v.Dot(o) / l2), nil
}

// ProjectNormalized returns the projection of v onto the unit vector n.
func (v Vec3[T]) ProjectNormalized(n Vec3[T]) Vec3[T] { return n.Scale(v.Dot(n)) }

// Reject returns the component of v orthogonal to the unit vector n.
func (v Vec3[T]) Reject(n Vec3[T]) Vec3[T] { return v.Sub(v.ProjectNormalized(n)) }

// RotateAxis rotates v by angle radians around the unit vector axis,
// counter-clockwise when looking down the axis.
func (v Vec3[T]) RotateAxis(angle T, axis Vec3[T]) Vec3[T] {
	s, c := sincos(angle)
	// Rodrigues: v*c + (k × v)*s + k*(k·v)*(1-c)
	return v.Scale(c).
		Add(axis.Cross(v).Scale(s)).
		Add(axis.Scale(axis.Dot(v) * (1 - c)))
}

// RotateAxisInPlace rotates v by angle radians around the unit vector axis.
func (v *Vec3[T]) RotateAxisInPlace(angle T, axis Vec3[T]) *Vec3[T] {
	*v = v.RotateAxis(angle, axis)
	return v
}

// Angle returns the unsigned angle between v and o in radians.
// It is 0 when either vector is zero.
func (v Vec3[T]) Angle(o Vec3[T]) T {
	d := sqrt(v.LengthSquared() * o.LengthSquared())
	if d == 0 {
		return 0
	}
	return acos(v.Dot(o) / d)
}

// Lerp linearly interpolates between v (t=0) and o (t=1).
func (v Vec3[T]) Lerp(o Vec3[T], t T) Vec3[T] {
	return v.FmaScalar(o.Sub(v), t)
}

// ApproxEqual reports whether every component of v is within tol of o.
func (v Vec3[T]) ApproxEqual(o Vec3[T], tol T) bool {
	return ApproxEqual(v.X, o.X, tol) && ApproxEqual(v.Y, o.Y, tol) && ApproxEqual(v.Z, o.Z, tol)
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3[T]) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// IsZero reports whether v is within Tolerance of the zero vector.
func (v Vec3[T]) IsZero() bool { return isZeroLengthSq(v.LengthSquared()) }
