package vecmath

import "fmt"

// Mat3 is a 3x3 matrix in row-major order: m[3*r+c] is the element in row
// r and column c. Matrices multiply column vectors: m.MulVec(v) is m·v.
type Mat3[T Float] [9]T

type (
	// Mat3f is a 3x3 matrix of float32.
	Mat3f = Mat3[float32]
	// Mat3d is a 3x3 matrix of float64.
	Mat3d = Mat3[float64]
)

// Ident3 returns the 3x3 identity matrix.
func Ident3[T Float]() Mat3[T] {
	return Mat3[T]{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3FromRows builds a matrix from its rows.
func Mat3FromRows[T Float](r0, r1, r2 Vec3[T]) Mat3[T] {
	return Mat3[T]{
		r0.X, r0.Y, r0.Z,
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
	}
}

// Mat3FromCols builds a matrix from its columns.
func Mat3FromCols[T Float](c0, c1, c2 Vec3[T]) Mat3[T] {
	return Mat3FromRows(c0, c1, c2).Transpose()
}

// Mat3Scale returns a scaling matrix.
func Mat3Scale[T Float](s Vec3[T]) Mat3[T] {
	return Mat3[T]{
		s.X, 0, 0,
		0, s.Y, 0,
		0, 0, s.Z,
	}
}

// Mat3RotationX returns a rotation of angle radians around the X axis.
func Mat3RotationX[T Float](angle T) Mat3[T] {
	s, c := sincos(angle)
	return Mat3[T]{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// Mat3RotationY returns a rotation of angle radians around the Y axis.
func Mat3RotationY[T Float](angle T) Mat3[T] {
	s, c := sincos(angle)
	return Mat3[T]{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// Mat3RotationZ returns a rotation of angle radians around the Z axis.
func Mat3RotationZ[T Float](angle T) Mat3[T] {
	s, c := sincos(angle)
	return Mat3[T]{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// At returns the element in row r and column c.
func (m Mat3[T]) At(r, c int) T { return m[3*r+c] }

// Set sets the element in row r and column c.
func (m *Mat3[T]) Set(r, c int, v T) { m[3*r+c] = v }

// Row returns row i.
func (m Mat3[T]) Row(i int) Vec3[T] { return Vec3[T]{X: m[3*i], Y: m[3*i+1], Z: m[3*i+2]} }

// Col returns column i.
func (m Mat3[T]) Col(i int) Vec3[T] { return Vec3[T]{X: m[i], Y: m[3+i], Z: m[6+i]} }

func (m Mat3[T]) String() string {
	return fmt.Sprintf("[%v %v %v]", m.Row(0), m.Row(1), m.Row(2))
}

// Mul returns the matrix product m·o.
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	var r Mat3[T]
	for i := range 3 {
		for j := range 3 {
			r[3*i+j] = m[3*i]*o[j] + m[3*i+1]*o[3+j] + m[3*i+2]*o[6+j]
		}
	}
	return r
}

// MulTo stores m·o in dst and returns dst.
func (m Mat3[T]) MulTo(o Mat3[T], dst *Mat3[T]) *Mat3[T] {
	*dst = m.Mul(o)
	return dst
}

// MulInPlace sets m to m·o.
func (m *Mat3[T]) MulInPlace(o Mat3[T]) *Mat3[T] {
	*m = m.Mul(o)
	return m
}

// MulVec returns m·v.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Scale returns m with every element multiplied by s.
func (m Mat3[T]) Scale(s T) Mat3[T] {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Transpose returns the transpose of m.
func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// TransposeInPlace transposes m.
func (m *Mat3[T]) TransposeInPlace() *Mat3[T] {
	*m = m.Transpose()
	return m
}

// Determinant returns the determinant of m.
func (m Mat3[T]) Determinant() T {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse returns the inverse of m, or ErrSingularMatrix when the
// determinant is zero.
func (m Mat3[T]) Inverse() (Mat3[T], error) {
	det := m.Determinant()
	if det == 0 {
		return Mat3[T]{}, ErrSingularMatrix
	}
	inv := 1 / det
	return Mat3[T]{
		(m[4]*m[8] - m[5]*m[7]) * inv,
		(m[2]*m[7] - m[1]*m[8]) * inv,
		(m[1]*m[5] - m[2]*m[4]) * inv,
		(m[5]*m[6] - m[3]*m[8]) * inv,
		(m[0]*m[8] - m[2]*m[6]) * inv,
		(m[2]*m[3] - m[0]*m[5]) * inv,
		(m[3]*m[7] - m[4]*m[6]) * inv,
		(m[1]*m[6] - m[0]*m[7]) * inv,
		(m[0]*m[4] - m[1]*m[3]) * inv,
	}, nil
}

// InvertInPlace sets m to its inverse. m is left untouched on error.
func (m *Mat3[T]) InvertInPlace() error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	*m = inv
	return nil
}

// Mat4 embeds m in the upper-left corner of a 4x4 identity matrix.
func (m Mat3[T]) Mat4() Mat4[T] {
	return Mat4[T]{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

// Quat returns the unit quaternion of the rotation matrix m.
func (m Mat3[T]) Quat() Quat[T] {
	m00, m01, m02 := m[0], m[1], m[2]
	m10, m11, m12 := m[3], m[4], m[5]
	m20, m21, m22 := m[6], m[7], m[8]

	var q Quat[T]
	switch trace := m00 + m11 + m22; {
	case trace > 0:
		s := sqrt(trace+1) * 2
		q = Quat[T]{X: (m21 - m12) / s, Y: (m02 - m20) / s, Z: (m10 - m01) / s, W: s / 4}
	case m00 > m11 && m00 > m22:
		s := sqrt(1+m00-m11-m22) * 2
		q = Quat[T]{X: s / 4, Y: (m01 + m10) / s, Z: (m02 + m20) / s, W: (m21 - m12) / s}
	case m11 > m22:
		s := sqrt(1+m11-m00-m22) * 2
		q = Quat[T]{X: (m01 + m10) / s, Y: s / 4, Z: (m12 + m21) / s, W: (m02 - m20) / s}
	default:
		s := sqrt(1+m22-m00-m11) * 2
		q = Quat[T]{X: (m02 + m20) / s, Y: (m12 + m21) / s, Z: s / 4, W: (m10 - m01) / s}
	}
	return q.NormalizeSafe()
}

// ApproxEqual reports whether every element of m is within tol of o.
func (m Mat3[T]) ApproxEqual(o Mat3[T], tol T) bool {
	for i := range m {
		if !ApproxEqual(m[i], o[i], tol) {
			return false
		}
	}
	return true
}
