package vecmath

import (
	"fmt"

	"github.com/hupe1980/vecmath/internal/kernel"
)

// Quat is a quaternion x*i + y*j + z*k + w. Rotations are represented by
// unit quaternions.
type Quat[T Float] struct {
	X, Y, Z, W T
}

type (
	// Quatf is a quaternion of float32.
	Quatf = Quat[float32]
	// Quatd is a quaternion of float64.
	Quatd = Quat[float64]
)

// QuatIdent returns the identity rotation.
func QuatIdent[T Float]() Quat[T] {
	return Quat[T]{W: 1}
}

// QuatAxisAngle returns the rotation of angle radians around the unit
// vector axis.
func QuatAxisAngle[T Float](axis Vec3[T], angle T) Quat[T] {
	s, c := sincos(angle / 2)
	return Quat[T]{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: c}
}

// QuatRotationX returns the rotation of angle radians around the X axis.
func QuatRotationX[T Float](angle T) Quat[T] {
	s, c := sincos(angle / 2)
	return Quat[T]{X: s, W: c}
}

// QuatRotationY returns the rotation of angle radians around the Y axis.
func QuatRotationY[T Float](angle T) Quat[T] {
	s, c := sincos(angle / 2)
	return Quat[T]{Y: s, W: c}
}

// QuatRotationZ returns the rotation of angle radians around the Z axis.
func QuatRotationZ[T Float](angle T) Quat[T] {
	s, c := sincos(angle / 2)
	return Quat[T]{Z: s, W: c}
}

// QuatEuler returns the rotation that applies rx around X, then ry around
// Y, then rz around Z.
func QuatEuler[T Float](rx, ry, rz T) Quat[T] {
	return QuatRotationZ(rz).Mul(QuatRotationY(ry)).Mul(QuatRotationX(rx))
}

// QuatBetween returns the shortest rotation taking the unit vector from
// onto the unit vector to.
func QuatBetween[T Float](from, to Vec3[T]) Quat[T] {
	d := from.Dot(to)
	if d < -1+Tolerance[T]() {
		// Opposite vectors: rotate half a turn around any orthogonal axis.
		axis := Vec3[T]{X: 1}.Cross(from)
		if axis.IsZero() {
			axis = Vec3[T]{Y: 1}.Cross(from)
		}
		axis = axis.NormalizeSafe()
		return Quat[T]{X: axis.X, Y: axis.Y, Z: axis.Z}
	}
	c := from.Cross(to)
	q := Quat[T]{X: c.X, Y: c.Y, Z: c.Z, W: 1 + d}
	return q.NormalizeSafe()
}

// Dim returns 4.
func (q Quat[T]) Dim() int { return 4 }

// At returns component i (0=X, 1=Y, 2=Z, 3=W).
func (q Quat[T]) At(i int) T {
	return Vec4[T](q).At(i)
}

// SetAt sets component i (0=X, 1=Y, 2=Z, 3=W).
func (q *Quat[T]) SetAt(i int, c T) {
	(*Vec4[T])(q).SetAt(i, c)
}

// Set sets all components.
func (q *Quat[T]) Set(x, y, z, w T) *Quat[T] {
	q.X, q.Y, q.Z, q.W = x, y, z, w
	return q
}

// Array returns the components as an array in x, y, z, w order.
func (q Quat[T]) Array() [4]T { return [4]T{q.X, q.Y, q.Z, q.W} }

// Vec returns the vector part (x, y, z).
func (q Quat[T]) Vec() Vec3[T] { return Vec3[T]{X: q.X, Y: q.Y, Z: q.Z} }

func (q Quat[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.X, q.Y, q.Z, q.W)
}

// Add returns the componentwise sum q + o.
func (q Quat[T]) Add(o Quat[T]) Quat[T] { return Quat[T](Vec4[T](q).Add(Vec4[T](o))) }

// Sub returns the componentwise difference q - o.
func (q Quat[T]) Sub(o Quat[T]) Quat[T] { return Quat[T](Vec4[T](q).Sub(Vec4[T](o))) }

// Scale returns q * s.
func (q Quat[T]) Scale(s T) Quat[T] { return Quat[T](Vec4[T](q).Scale(s)) }

// Negate returns -q, which represents the same rotation as q.
func (q Quat[T]) Negate() Quat[T] { return Quat[T]{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W} }

// Mul returns the Hamilton product q ⊗ o: the rotation o followed by q.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	return Quat[T]{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// MulXYZW returns the Hamilton product of q and (x, y, z, w).
func (q Quat[T]) MulXYZW(x, y, z, w T) Quat[T] {
	return q.Mul(Quat[T]{X: x, Y: y, Z: z, W: w})
}

// Premul returns o ⊗ q.
func (q Quat[T]) Premul(o Quat[T]) Quat[T] { return o.Mul(q) }

// MulTo stores q ⊗ o in dst and returns dst.
func (q Quat[T]) MulTo(o Quat[T], dst *Quat[T]) *Quat[T] {
	*dst = q.Mul(o)
	return dst
}

// MulInPlace sets q to q ⊗ o.
func (q *Quat[T]) MulInPlace(o Quat[T]) *Quat[T] {
	*q = q.Mul(o)
	return q
}

// PremulInPlace sets q to o ⊗ q.
func (q *Quat[T]) PremulInPlace(o Quat[T]) *Quat[T] {
	*q = o.Mul(*q)
	return q
}

// Conjugate returns q with its vector part negated.
func (q Quat[T]) Conjugate() Quat[T] { return Quat[T]{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W} }

// ConjugateTo stores the conjugate of q in dst and returns dst.
func (q Quat[T]) ConjugateTo(dst *Quat[T]) *Quat[T] {
	*dst = q.Conjugate()
	return dst
}

// ConjugateInPlace negates the vector part of q.
func (q *Quat[T]) ConjugateInPlace() *Quat[T] {
	*q = q.Conjugate()
	return q
}

// Dot returns the four-component dot product of q and o.
func (q Quat[T]) Dot(o Quat[T]) T { return Vec4[T](q).Dot(Vec4[T](o)) }

// LengthSquared returns x²+y²+z²+w².
func (q Quat[T]) LengthSquared() T { return q.Dot(q) }

// Length returns the norm of q.
func (q Quat[T]) Length() T { return Vec4[T](q).Length() }

// Inverse returns the multiplicative inverse conj(q) / |q|², or
// ErrZeroLength for the zero quaternion.
func (q Quat[T]) Inverse() (Quat[T], error) {
	l2 := q.LengthSquared()
	if kernel.SafeSumSquares(l2) && kernel.SafeSumSquares(1/l2) {
		return q.Conjugate().Scale(1 / l2), nil
	}
	a := q.Conjugate().Array()
	if !kernel.ReciprocalWide(a[:]) {
		return Quat[T]{}, ErrZeroLength
	}
	return Quat[T]{X: a[0], Y: a[1], Z: a[2], W: a[3]}, nil
}

// InverseSafe returns the inverse of q, or the zero quaternion when q is
// within Tolerance of zero.
func (q Quat[T]) InverseSafe() Quat[T] {
	if isZeroLengthSq(q.LengthSquared()) {
		return Quat[T]{}
	}
	inv, _ := q.Inverse()
	return inv
}

// InverseTo stores the inverse of q in dst and returns dst. dst is left
// untouched on error.
func (q Quat[T]) InverseTo(dst *Quat[T]) (*Quat[T], error) {
	inv, err := q.Inverse()
	if err != nil {
		return dst, err
	}
	*dst = inv
	return dst, nil
}

// InvertInPlace sets q to its inverse. q is left untouched on error.
func (q *Quat[T]) InvertInPlace() error {
	inv, err := q.Inverse()
	if err != nil {
		return err
	}
	*q = inv
	return nil
}

// Normalize returns q scaled to unit length, or ErrZeroLength.
func (q Quat[T]) Normalize() (Quat[T], error) {
	n, err := Vec4[T](q).Normalize()
	return Quat[T](n), err
}

// NormalizeSafe returns q scaled to unit length, or the zero quaternion
// when q is within Tolerance of zero.
func (q Quat[T]) NormalizeSafe() Quat[T] { return Quat[T](Vec4[T](q).NormalizeSafe()) }

// NormalizeTo stores the normalized q in dst and returns dst. dst is left
// untouched on error.
func (q Quat[T]) NormalizeTo(dst *Quat[T]) (*Quat[T], error) {
	n, err := q.Normalize()
	if err != nil {
		return dst, err
	}
	*dst = n
	return dst, nil
}

// NormalizeInPlace scales q to unit length. q is left untouched on error.
func (q *Quat[T]) NormalizeInPlace() error {
	return (*Vec4[T])(q).NormalizeInPlace()
}

// IsUnit reports whether |q|² is within tol of 1.
func (q Quat[T]) IsUnit(tol T) bool { return ApproxEqual(q.LengthSquared(), 1, tol) }

// Rotate rotates v by the unit quaternion q.
func (q Quat[T]) Rotate(v Vec3[T]) Vec3[T] {
	u := q.Vec()
	t := u.Cross(v).Scale(2)
	return v.FmaScalar(t, q.W).Add(u.Cross(t))
}

// RotateTo stores the rotation of v by q in dst and returns dst.
func (q Quat[T]) RotateTo(v Vec3[T], dst *Vec3[T]) *Vec3[T] {
	*dst = q.Rotate(v)
	return dst
}

// RotateInverse rotates v by the inverse of the unit quaternion q.
func (q Quat[T]) RotateInverse(v Vec3[T]) Vec3[T] { return q.Conjugate().Rotate(v) }

// Nlerp interpolates between q (t=0) and o (t=1) along the shortest path
// and normalizes the result.
func (q Quat[T]) Nlerp(o Quat[T], t T) Quat[T] {
	if q.Dot(o) < 0 {
		o = o.Negate()
	}
	return Quat[T](Vec4[T](q).Lerp(Vec4[T](o), t)).NormalizeSafe()
}

// Slerp spherically interpolates between the unit quaternions q (t=0) and
// o (t=1) along the shortest path.
func (q Quat[T]) Slerp(o Quat[T], t T) Quat[T] {
	cos := q.Dot(o)
	if cos < 0 {
		o = o.Negate()
		cos = -cos
	}
	if cos > 1-Tolerance[T]() {
		return q.Nlerp(o, t)
	}
	theta := acos(cos)
	sinTheta := sqrt(1 - cos*cos)
	s0, _ := sincos((1 - t) * theta)
	s1, _ := sincos(t * theta)
	return q.Scale(s0 / sinTheta).Add(o.Scale(s1 / sinTheta))
}

// AxisAngle decomposes the unit quaternion q into a unit rotation axis and
// an angle in [0, 2π]. The identity yields the X axis and angle 0.
func (q Quat[T]) AxisAngle() (Vec3[T], T) {
	w := clamp(q.W, -1, 1)
	angle := 2 * acos(w)
	s := sqrt(1 - w*w)
	if s < Tolerance[T]() {
		return Vec3[T]{X: 1}, angle
	}
	return q.Vec().Scale(1 / s), angle
}

// Mat3 returns the rotation matrix of the unit quaternion q.
func (q Quat[T]) Mat3() Mat3[T] {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3[T]{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

// Mat4 returns the homogeneous rotation matrix of the unit quaternion q.
func (q Quat[T]) Mat4() Mat4[T] { return q.Mat3().Mat4() }

// ApproxEqual reports whether every component of q is within tol of o.
func (q Quat[T]) ApproxEqual(o Quat[T], tol T) bool {
	return Vec4[T](q).ApproxEqual(Vec4[T](o), tol)
}

// SameRotation reports whether q and o represent the same rotation within
// tol, accounting for q and -q being equivalent.
func (q Quat[T]) SameRotation(o Quat[T], tol T) bool {
	return q.ApproxEqual(o, tol) || q.ApproxEqual(o.Negate(), tol)
}

// IsFinite reports whether no component is NaN or infinite.
func (q Quat[T]) IsFinite() bool { return Vec4[T](q).IsFinite() }
