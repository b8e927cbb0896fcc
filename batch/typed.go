package batch

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/internal/kernel"
)

// Flatten2 returns the components of vs as a flat buffer sharing memory
// with vs.
func Flatten2[T vecmath.Float](vs []vecmath.Vec2[T]) []T {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice(&vs[0].X, 2*len(vs)) //nolint:gosec // Vec2 is two packed T
}

// Flatten3 returns the components of vs as a flat buffer sharing memory
// with vs.
func Flatten3[T vecmath.Float](vs []vecmath.Vec3[T]) []T {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice(&vs[0].X, 3*len(vs)) //nolint:gosec // Vec3 is three packed T
}

// Flatten4 returns the components of vs as a flat buffer sharing memory
// with vs.
func Flatten4[T vecmath.Float](vs []vecmath.Vec4[T]) []T {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice(&vs[0].X, 4*len(vs)) //nolint:gosec // Vec4 is four packed T
}

// Vec3s views a flat buffer as 3D vectors without copying.
func Vec3s[T vecmath.Float](data []T) ([]vecmath.Vec3[T], error) {
	n, err := validate(3, len(data))
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return unsafe.Slice((*vecmath.Vec3[T])(unsafe.Pointer(&data[0])), n), nil //nolint:gosec // see Flatten3
}

// NormalizeVec3s normalizes vs in place, zeroing vectors within
// vecmath.Tolerance of zero. It returns the number of zeroed vectors.
func NormalizeVec3s[T vecmath.Float](ctx context.Context, vs []vecmath.Vec3[T], opts ...Option) (int, error) {
	return NormalizeSafe(ctx, Flatten3(vs), 3, opts...)
}

// DotVec3s returns a[i]·b[i] for every i.
func DotVec3s[T vecmath.Float](ctx context.Context, a, b []vecmath.Vec3[T], opts ...Option) ([]T, error) {
	if len(a) != len(b) {
		return nil, vecmath.NewDimensionMismatch(len(a), len(b), fmt.Errorf("vector counts differ"))
	}
	return Dot(ctx, Flatten3(a), Flatten3(b), 3, opts...)
}

// CrossVec3s stores a[i] × b[i] in dst[i] for every i. dst may alias a or b.
func CrossVec3s[T vecmath.Float](ctx context.Context, dst, a, b []vecmath.Vec3[T], opts ...Option) error {
	if len(a) != len(b) {
		return vecmath.NewDimensionMismatch(len(a), len(b), nil)
	}
	if len(dst) != len(a) {
		return vecmath.NewDimensionMismatch(len(a), len(dst), nil)
	}
	return mapVec3s(ctx, "cross", dst, opts, func(i int) vecmath.Vec3[T] {
		return a[i].Cross(b[i])
	})
}

// RotateVec3s rotates every vector in vs by the unit quaternion q in place.
func RotateVec3s[T vecmath.Float](ctx context.Context, q vecmath.Quat[T], vs []vecmath.Vec3[T], opts ...Option) error {
	return mapVec3s(ctx, "rotate", vs, opts, func(i int) vecmath.Vec3[T] {
		return q.Rotate(vs[i])
	})
}

// TransformPoints applies the affine matrix m to every point in ps in
// place.
func TransformPoints[T vecmath.Float](ctx context.Context, m vecmath.Mat4[T], ps []vecmath.Vec3[T], opts ...Option) error {
	return mapVec3s(ctx, "transform_points", ps, opts, func(i int) vecmath.Vec3[T] {
		return m.TransformPoint(ps[i])
	})
}

// ReflectVec3s reflects every vector in vs about the plane with unit
// normal n in place.
func ReflectVec3s[T vecmath.Float](ctx context.Context, n vecmath.Vec3[T], vs []vecmath.Vec3[T], opts ...Option) error {
	return mapVec3s(ctx, "reflect", vs, opts, func(i int) vecmath.Vec3[T] {
		return vs[i].Reflect(n)
	})
}

// mapVec3s sets dst[i] = fn(i) for every i.
func mapVec3s[T vecmath.Float](ctx context.Context, op string, dst []vecmath.Vec3[T], opts []Option, fn func(i int) vecmath.Vec3[T]) error {
	o := applyOptions(opts)
	workers, err := parallelFor(ctx, len(dst), o, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = fn(i)
		}
	})
	o.logger.WithOp(op).WithDimension(3).LogBatch(ctx, len(dst), 0, workers, kernel.Active().String(), err)
	return err
}
