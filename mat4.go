package vecmath

import "fmt"

// Mat4 is a 4x4 matrix in row-major order: m[4*r+c] is the element in row
// r and column c. Matrices multiply column vectors and translations live in
// the last column.
type Mat4[T Float] [16]T

type (
	// Mat4f is a 4x4 matrix of float32.
	Mat4f = Mat4[float32]
	// Mat4d is a 4x4 matrix of float64.
	Mat4d = Mat4[float64]
)

// Ident4 returns the 4x4 identity matrix.
func Ident4[T Float]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Translation returns a translation by t.
func Mat4Translation[T Float](t Vec3[T]) Mat4[T] {
	return Mat4[T]{
		1, 0, 0, t.X,
		0, 1, 0, t.Y,
		0, 0, 1, t.Z,
		0, 0, 0, 1,
	}
}

// Mat4Scale returns a scaling matrix.
func Mat4Scale[T Float](s Vec3[T]) Mat4[T] {
	return Mat4[T]{
		s.X, 0, 0, 0,
		0, s.Y, 0, 0,
		0, 0, s.Z, 0,
		0, 0, 0, 1,
	}
}

// Mat4TRS returns translation·rotation·scale.
func Mat4TRS[T Float](t Vec3[T], r Quat[T], s Vec3[T]) Mat4[T] {
	m := r.Mat3().Mul(Mat3Scale(s)).Mat4()
	m[3], m[7], m[11] = t.X, t.Y, t.Z
	return m
}

// Mat4Perspective returns a right-handed perspective projection mapping
// depth to [-1, 1]. fovy is the vertical field of view in radians.
func Mat4Perspective[T Float](fovy, aspect, near, far T) Mat4[T] {
	f := 1 / tan(fovy/2)
	nf := 1 / (near - far)
	return Mat4[T]{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, 2 * far * near * nf,
		0, 0, -1, 0,
	}
}

// Mat4Ortho returns a right-handed orthographic projection mapping depth
// to [-1, 1].
func Mat4Ortho[T Float](left, right, bottom, top, near, far T) Mat4[T] {
	rl, tb, fn := 1/(right-left), 1/(top-bottom), 1/(far-near)
	return Mat4[T]{
		2 * rl, 0, 0, -(right + left) * rl,
		0, 2 * tb, 0, -(top + bottom) * tb,
		0, 0, -2 * fn, -(far + near) * fn,
		0, 0, 0, 1,
	}
}

// Mat4LookAt returns a right-handed view matrix for a camera at eye looking
// at center. It returns ErrZeroLength when eye equals center or up is
// parallel to the viewing direction.
func Mat4LookAt[T Float](eye, center, up Vec3[T]) (Mat4[T], error) {
	f, err := center.Sub(eye).Normalize()
	if err != nil {
		return Mat4[T]{}, err
	}
	s := f.Cross(up)
	if s.IsZero() {
		return Mat4[T]{}, ErrZeroLength
	}
	s = s.NormalizeSafe()
	u := s.Cross(f)
	return Mat4[T]{
		s.X, s.Y, s.Z, -s.Dot(eye),
		u.X, u.Y, u.Z, -u.Dot(eye),
		-f.X, -f.Y, -f.Z, f.Dot(eye),
		0, 0, 0, 1,
	}, nil
}

// At returns the element in row r and column c.
func (m Mat4[T]) At(r, c int) T { return m[4*r+c] }

// Set sets the element in row r and column c.
func (m *Mat4[T]) Set(r, c int, v T) { m[4*r+c] = v }

// Row returns row i.
func (m Mat4[T]) Row(i int) Vec4[T] {
	return Vec4[T]{X: m[4*i], Y: m[4*i+1], Z: m[4*i+2], W: m[4*i+3]}
}

// Col returns column i.
func (m Mat4[T]) Col(i int) Vec4[T] {
	return Vec4[T]{X: m[i], Y: m[4+i], Z: m[8+i], W: m[12+i]}
}

// Translation returns the translation part of an affine m.
func (m Mat4[T]) Translation() Vec3[T] { return Vec3[T]{X: m[3], Y: m[7], Z: m[11]} }

// Mat3 returns the upper-left 3x3 block of m.
func (m Mat4[T]) Mat3() Mat3[T] {
	return Mat3[T]{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

func (m Mat4[T]) String() string {
	return fmt.Sprintf("[%v %v %v %v]", m.Row(0), m.Row(1), m.Row(2), m.Row(3))
}

// Mul returns the matrix product m·o.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	var r Mat4[T]
	for i := range 4 {
		for j := range 4 {
			r[4*i+j] = m[4*i]*o[j] + m[4*i+1]*o[4+j] + m[4*i+2]*o[8+j] + m[4*i+3]*o[12+j]
		}
	}
	return r
}

// MulTo stores m·o in dst and returns dst.
func (m Mat4[T]) MulTo(o Mat4[T], dst *Mat4[T]) *Mat4[T] {
	*dst = m.Mul(o)
	return dst
}

// MulInPlace sets m to m·o.
func (m *Mat4[T]) MulInPlace(o Mat4[T]) *Mat4[T] {
	*m = m.Mul(o)
	return m
}

// MulVec returns m·v.
func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		W: m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// TransformPoint applies m to the point p (w = 1) without a perspective
// divide.
func (m Mat4[T]) TransformPoint(p Vec3[T]) Vec3[T] {
	return m.MulVec(p.Vec4(1)).XYZ()
}

// TransformVector applies m to the direction d (w = 0), ignoring
// translation.
func (m Mat4[T]) TransformVector(d Vec3[T]) Vec3[T] {
	return m.MulVec(d.Vec4(0)).XYZ()
}

// Transpose returns the transpose of m.
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// TransposeInPlace transposes m.
func (m *Mat4[T]) TransposeInPlace() *Mat4[T] {
	*m = m.Transpose()
	return m
}

// adjugate returns the transposed cofactor matrix of m.
func (m Mat4[T]) adjugate() Mat4[T] {
	var inv Mat4[T]
	inv[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	inv[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	inv[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	inv[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	inv[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	inv[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] + m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	inv[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] - m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	inv[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] + m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]
	inv[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	inv[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] - m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	inv[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] + m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	inv[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] - m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]
	inv[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	inv[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] + m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]
	inv[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] - m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]
	inv[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] + m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]
	return inv
}

// Determinant returns the determinant of m.
func (m Mat4[T]) Determinant() T {
	adj := m.adjugate()
	return m[0]*adj[0] + m[1]*adj[4] + m[2]*adj[8] + m[3]*adj[12]
}

// Inverse returns the inverse of m, or ErrSingularMatrix when the
// determinant is zero.
func (m Mat4[T]) Inverse() (Mat4[T], error) {
	adj := m.adjugate()
	det := m[0]*adj[0] + m[1]*adj[4] + m[2]*adj[8] + m[3]*adj[12]
	if det == 0 {
		return Mat4[T]{}, ErrSingularMatrix
	}
	return adj.Scale(1 / det), nil
}

// InvertInPlace sets m to its inverse. m is left untouched on error.
func (m *Mat4[T]) InvertInPlace() error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	*m = inv
	return nil
}

// Scale returns m with every element multiplied by s.
func (m Mat4[T]) Scale(s T) Mat4[T] {
	for i := range m {
		m[i] *= s
	}
	return m
}

// ApproxEqual reports whether every element of m is within tol of o.
func (m Mat4[T]) ApproxEqual(o Mat4[T], tol T) bool {
	for i := range m {
		if !ApproxEqual(m[i], o[i], tol) {
			return false
		}
	}
	return true
}
