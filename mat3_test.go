package vecmath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/testutil"
)

func TestMat3Layout(t *testing.T) {
	m := vecmath.Mat3FromRows(
		vecmath.V3(1.0, 2.0, 3.0),
		vecmath.V3(4.0, 5.0, 6.0),
		vecmath.V3(7.0, 8.0, 9.0),
	)

	assert.Equal(t, vecmath.Mat3d{1, 2, 3, 4, 5, 6, 7, 8, 9}, m)
	assert.Equal(t, 6.0, m.At(1, 2))
	assert.Equal(t, vecmath.V3(4.0, 5.0, 6.0), m.Row(1))
	assert.Equal(t, vecmath.V3(3.0, 6.0, 9.0), m.Col(2))
	assert.Equal(t, m.Transpose(), vecmath.Mat3FromCols(m.Row(0), m.Row(1), m.Row(2)))
	assert.Equal(t, vecmath.V3(14.0, 32.0, 50.0), m.MulVec(vecmath.V3(1.0, 2.0, 3.0)))

	m.Set(0, 0, -1)
	assert.Equal(t, -1.0, m[0])

	tr := m
	tr.TransposeInPlace()
	assert.Equal(t, m.Transpose(), tr)
}

func TestMat3Mul(t *testing.T) {
	a := vecmath.Mat3d{1, 2, 0, 0, 1, 0, 0, 0, 2}
	b := vecmath.Mat3d{1, 0, 0, 3, 1, 0, 0, 0, 1}

	assert.Equal(t, vecmath.Mat3d{7, 2, 0, 3, 1, 0, 0, 0, 2}, a.Mul(b))
	assert.Equal(t, a, a.Mul(vecmath.Ident3[float64]()))
	assert.Equal(t, a, vecmath.Ident3[float64]().Mul(a))

	var dst vecmath.Mat3d
	assert.Same(t, &dst, a.MulTo(b, &dst))
	assert.Equal(t, a.Mul(b), dst)

	c := a
	c.MulInPlace(b)
	assert.Equal(t, a.Mul(b), c)
	assert.Equal(t, a.Scale(2), a.Mul(vecmath.Mat3Scale(vecmath.Splat3(2.0))))
}

func TestMat3Inverse(t *testing.T) {
	rng := testutil.NewRNG(4711)
	ident := vecmath.Ident3[float64]()

	for range 50 {
		var m vecmath.Mat3d
		for i := range m {
			m[i] = testutil.Scalar[float64](rng, -2, 2)
		}
		if math.Abs(m.Determinant()) < 1e-3 {
			continue
		}

		inv, err := m.Inverse()
		require.NoError(t, err)
		assert.True(t, m.Mul(inv).ApproxEqual(ident, 1e-9), "m·m⁻¹ = %v", m.Mul(inv))
		assert.True(t, inv.Mul(m).ApproxEqual(ident, 1e-9))
	}

	t.Run("singular", func(t *testing.T) {
		m := vecmath.Mat3d{1, 2, 3, 2, 4, 6, 0, 0, 1}
		assert.Zero(t, m.Determinant())

		_, err := m.Inverse()
		assert.ErrorIs(t, err, vecmath.ErrSingularMatrix)

		orig := m
		assert.ErrorIs(t, m.InvertInPlace(), vecmath.ErrSingularMatrix)
		assert.Equal(t, orig, m)
	})
}

func TestMat3Rotation(t *testing.T) {
	tests := []struct {
		name string
		m    vecmath.Mat3d
		q    vecmath.Quatd
	}{
		{"X", vecmath.Mat3RotationX(0.5), vecmath.QuatRotationX(0.5)},
		{"Y", vecmath.Mat3RotationY(-1.2), vecmath.QuatRotationY(-1.2)},
		{"Z", vecmath.Mat3RotationZ(3.0), vecmath.QuatRotationZ(3.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.q.Mat3().ApproxEqual(tt.m, 1e-12))
			assert.True(t, tt.m.Quat().SameRotation(tt.q, 1e-12))
			assert.InDelta(t, 1.0, tt.m.Determinant(), 1e-12)

			inv, err := tt.m.Inverse()
			require.NoError(t, err)
			assert.True(t, inv.ApproxEqual(tt.m.Transpose(), 1e-12))
		})
	}

	assert.True(t, vecmath.Mat3RotationZ(math.Pi/2).MulVec(vecmath.V3(1.0, 0.0, 0.0)).ApproxEqual(vecmath.V3(0.0, 1.0, 0.0), 1e-12))
}

func TestMat3Mat4(t *testing.T) {
	m := vecmath.Mat3d{1, 2, 3, 4, 5, 6, 7, 8, 9}
	m4 := m.Mat4()

	assert.Equal(t, m, m4.Mat3())
	assert.Equal(t, 1.0, m4.At(3, 3))
	assert.Equal(t, vecmath.Vec3d{}, m4.Translation())
}
