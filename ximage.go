package vecmath

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Conversions to and from the array types of golang.org/x/image/math. Both
// packages store matrices in row-major order, so matrices convert
// element-wise.

// Vec2FromF32 converts an f32.Vec2.
func Vec2FromF32[T Float](v f32.Vec2) Vec2[T] { return Vec2[T]{X: T(v[0]), Y: T(v[1])} }

// Vec2FromF64 converts an f64.Vec2.
func Vec2FromF64[T Float](v f64.Vec2) Vec2[T] { return Vec2[T]{X: T(v[0]), Y: T(v[1])} }

// Vec2ToF32 converts v to an f32.Vec2.
func Vec2ToF32[T Float](v Vec2[T]) f32.Vec2 { return f32.Vec2{float32(v.X), float32(v.Y)} }

// Vec2ToF64 converts v to an f64.Vec2.
func Vec2ToF64[T Float](v Vec2[T]) f64.Vec2 { return f64.Vec2{float64(v.X), float64(v.Y)} }

// Vec3FromF32 converts an f32.Vec3.
func Vec3FromF32[T Float](v f32.Vec3) Vec3[T] {
	return Vec3[T]{X: T(v[0]), Y: T(v[1]), Z: T(v[2])}
}

// Vec3FromF64 converts an f64.Vec3.
func Vec3FromF64[T Float](v f64.Vec3) Vec3[T] {
	return Vec3[T]{X: T(v[0]), Y: T(v[1]), Z: T(v[2])}
}

// Vec3ToF32 converts v to an f32.Vec3.
func Vec3ToF32[T Float](v Vec3[T]) f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Vec3ToF64 converts v to an f64.Vec3.
func Vec3ToF64[T Float](v Vec3[T]) f64.Vec3 {
	return f64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Vec4FromF32 converts an f32.Vec4.
func Vec4FromF32[T Float](v f32.Vec4) Vec4[T] {
	return Vec4[T]{X: T(v[0]), Y: T(v[1]), Z: T(v[2]), W: T(v[3])}
}

// Vec4FromF64 converts an f64.Vec4.
func Vec4FromF64[T Float](v f64.Vec4) Vec4[T] {
	return Vec4[T]{X: T(v[0]), Y: T(v[1]), Z: T(v[2]), W: T(v[3])}
}

// Vec4ToF32 converts v to an f32.Vec4.
func Vec4ToF32[T Float](v Vec4[T]) f32.Vec4 {
	return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

// Vec4ToF64 converts v to an f64.Vec4.
func Vec4ToF64[T Float](v Vec4[T]) f64.Vec4 {
	return f64.Vec4{float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)}
}

// Mat3FromF32 converts an f32.Mat3.
func Mat3FromF32[T Float](m f32.Mat3) Mat3[T] {
	var r Mat3[T]
	for i, e := range m {
		r[i] = T(e)
	}
	return r
}

// Mat3FromF64 converts an f64.Mat3.
func Mat3FromF64[T Float](m f64.Mat3) Mat3[T] {
	var r Mat3[T]
	for i, e := range m {
		r[i] = T(e)
	}
	return r
}

// Mat3ToF32 converts m to an f32.Mat3.
func Mat3ToF32[T Float](m Mat3[T]) f32.Mat3 {
	var r f32.Mat3
	for i, e := range m {
		r[i] = float32(e)
	}
	return r
}

// Mat3ToF64 converts m to an f64.Mat3.
func Mat3ToF64[T Float](m Mat3[T]) f64.Mat3 {
	var r f64.Mat3
	for i, e := range m {
		r[i] = float64(e)
	}
	return r
}

// Mat4FromF32 converts an f32.Mat4.
func Mat4FromF32[T Float](m f32.Mat4) Mat4[T] {
	var r Mat4[T]
	for i, e := range m {
		r[i] = T(e)
	}
	return r
}

// Mat4FromF64 converts an f64.Mat4.
func Mat4FromF64[T Float](m f64.Mat4) Mat4[T] {
	var r Mat4[T]
	for i, e := range m {
		r[i] = T(e)
	}
	return r
}

// Mat4ToF32 converts m to an f32.Mat4.
func Mat4ToF32[T Float](m Mat4[T]) f32.Mat4 {
	var r f32.Mat4
	for i, e := range m {
		r[i] = float32(e)
	}
	return r
}

// Mat4ToF64 converts m to an f64.Mat4.
func Mat4ToF64[T Float](m Mat4[T]) f64.Mat4 {
	var r f64.Mat4
	for i, e := range m {
		r[i] = float64(e)
	}
	return r
}

// Mat3FromAff3 converts a 2D affine transform into a homogeneous 3x3
// matrix.
func Mat3FromAff3[T Float](a f64.Aff3) Mat3[T] {
	return Mat3[T]{
		T(a[0]), T(a[1]), T(a[2]),
		T(a[3]), T(a[4]), T(a[5]),
		0, 0, 1,
	}
}

// Mat3ToAff3 returns the top two rows of m as a 2D affine transform. The
// bottom row of m is assumed to be (0, 0, 1).
func Mat3ToAff3[T Float](m Mat3[T]) f64.Aff3 {
	return f64.Aff3{
		float64(m[0]), float64(m[1]), float64(m[2]),
		float64(m[3]), float64(m[4]), float64(m[5]),
	}
}
