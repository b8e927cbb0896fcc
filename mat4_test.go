package vecmath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/testutil"
)

func TestMat4Transforms(t *testing.T) {
	p := vecmath.V3(1.0, 2.0, 3.0)

	tr := vecmath.Mat4Translation(vecmath.V3(10.0, 20.0, 30.0))
	assert.Equal(t, vecmath.V3(11.0, 22.0, 33.0), tr.TransformPoint(p))
	assert.Equal(t, p, tr.TransformVector(p))
	assert.Equal(t, vecmath.V3(10.0, 20.0, 30.0), tr.Translation())

	sc := vecmath.Mat4Scale(vecmath.V3(2.0, 3.0, 4.0))
	assert.Equal(t, vecmath.V3(2.0, 6.0, 12.0), sc.TransformPoint(p))

	assert.Equal(t, vecmath.V4(1.0, 2.0, 3.0, 1.0), vecmath.Ident4[float64]().MulVec(p.Vec4(1)))
}

func TestMat4TRS(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for range 20 {
		tv := testutil.Vec3[float64](rng, -10, 10)
		r := testutil.UnitQuat[float64](rng)
		s := testutil.Vec3[float64](rng, 0.5, 2)
		p := testutil.Vec3[float64](rng, -1, 1)

		m := vecmath.Mat4TRS(tv, r, s)
		want := r.Rotate(p.Mul(s)).Add(tv)
		assert.True(t, m.TransformPoint(p).ApproxEqual(want, 1e-12))

		composed := vecmath.Mat4Translation(tv).Mul(r.Mat4()).Mul(vecmath.Mat4Scale(s))
		assert.True(t, m.ApproxEqual(composed, 1e-12))
	}
}

func TestMat4Inverse(t *testing.T) {
	rng := testutil.NewRNG(4711)
	ident := vecmath.Ident4[float64]()

	for range 50 {
		m := vecmath.Mat4TRS(
			testutil.Vec3[float64](rng, -10, 10),
			testutil.UnitQuat[float64](rng),
			testutil.Vec3[float64](rng, 0.5, 2),
		)

		inv, err := m.Inverse()
		require.NoError(t, err)
		assert.True(t, m.Mul(inv).ApproxEqual(ident, 1e-9))
		assert.True(t, inv.Mul(m).ApproxEqual(ident, 1e-9))

		c := m
		require.NoError(t, c.InvertInPlace())
		assert.Equal(t, inv, c)
	}

	t.Run("determinant", func(t *testing.T) {
		m := vecmath.Mat4Scale(vecmath.V3(2.0, 3.0, 4.0))
		assert.Equal(t, 24.0, m.Determinant())
		assert.Equal(t, 1.0, vecmath.Ident4[float64]().Determinant())
	})

	t.Run("singular", func(t *testing.T) {
		m := vecmath.Mat4Scale(vecmath.V3(1.0, 0.0, 1.0))

		_, err := m.Inverse()
		assert.ErrorIs(t, err, vecmath.ErrSingularMatrix)

		orig := m
		assert.ErrorIs(t, m.InvertInPlace(), vecmath.ErrSingularMatrix)
		assert.Equal(t, orig, m)
	})
}

func TestMat4LookAt(t *testing.T) {
	eye := vecmath.V3(0.0, 0.0, 5.0)
	up := vecmath.V3(0.0, 1.0, 0.0)

	view, err := vecmath.Mat4LookAt(eye, vecmath.Vec3d{}, up)
	require.NoError(t, err)

	assert.True(t, view.TransformPoint(eye).ApproxEqual(vecmath.Vec3d{}, 1e-12))
	assert.True(t, view.TransformPoint(vecmath.Vec3d{}).ApproxEqual(vecmath.V3(0.0, 0.0, -5.0), 1e-12))
	assert.True(t, view.TransformPoint(vecmath.V3(1.0, 0.0, 5.0)).ApproxEqual(vecmath.V3(1.0, 0.0, 0.0), 1e-12))

	_, err = vecmath.Mat4LookAt(eye, eye, up)
	assert.ErrorIs(t, err, vecmath.ErrZeroLength)

	_, err = vecmath.Mat4LookAt(eye, vecmath.V3(0.0, 0.0, 10.0), vecmath.V3(0.0, 0.0, 1.0))
	assert.ErrorIs(t, err, vecmath.ErrZeroLength)
}

func TestMat4Projection(t *testing.T) {
	near, far := 1.0, 100.0

	t.Run("perspective", func(t *testing.T) {
		m := vecmath.Mat4Perspective(math.Pi/2, 1.0, near, far)

		n, err := m.MulVec(vecmath.V4(0.0, 0.0, -near, 1.0)).Project3()
		require.NoError(t, err)
		assert.InDelta(t, -1.0, n.Z, 1e-12)

		f, err := m.MulVec(vecmath.V4(0.0, 0.0, -far, 1.0)).Project3()
		require.NoError(t, err)
		assert.InDelta(t, 1.0, f.Z, 1e-12)

		// 90° field of view: the frustum edge maps to y = 1.
		e, err := m.MulVec(vecmath.V4(0.0, 2.0, -2.0, 1.0)).Project3()
		require.NoError(t, err)
		assert.InDelta(t, 1.0, e.Y, 1e-12)
	})

	t.Run("perspective float32", func(t *testing.T) {
		m := vecmath.Mat4Perspective[float32](math.Pi/2, 2, 1, 100)

		assert.InDelta(t, float32(1), m.At(1, 1), 1e-6)
		assert.InDelta(t, float32(0.5), m.At(0, 0), 1e-6)
	})

	t.Run("ortho", func(t *testing.T) {
		m := vecmath.Mat4Ortho(-2.0, 2.0, -1.0, 1.0, near, far)

		assert.True(t, m.TransformPoint(vecmath.V3(2.0, 1.0, -near)).ApproxEqual(vecmath.V3(1.0, 1.0, -1.0), 1e-12))
		assert.True(t, m.TransformPoint(vecmath.V3(-2.0, -1.0, -far)).ApproxEqual(vecmath.V3(-1.0, -1.0, 1.0), 1e-12))
	})
}

func TestMat4Access(t *testing.T) {
	var m vecmath.Mat4f
	for i := range m {
		m[i] = float32(i)
	}

	assert.Equal(t, float32(6), m.At(1, 2))
	assert.Equal(t, vecmath.V4[float32](4, 5, 6, 7), m.Row(1))
	assert.Equal(t, vecmath.V4[float32](2, 6, 10, 14), m.Col(2))
	assert.Equal(t, vecmath.Mat3f{0, 1, 2, 4, 5, 6, 8, 9, 10}, m.Mat3())
	assert.Equal(t, m, m.Transpose().Transpose())

	tr := m
	tr.TransposeInPlace()
	assert.Equal(t, m.Col(3), tr.Row(3))

	m.Set(3, 3, -1)
	assert.Equal(t, float32(-1), m[15])

	var dst vecmath.Mat4f
	id := vecmath.Ident4[float32]()
	assert.Equal(t, m, *m.MulTo(id, &dst))
	assert.Equal(t, m, *id.MulInPlace(m))
}
