package vecmath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/testutil"
)

func TestVec2Arithmetic(t *testing.T) {
	a := vecmath.V2[float32](1, 2)
	b := vecmath.V2[float32](4, -8)

	tests := []struct {
		name     string
		got      vecmath.Vec2f
		expected vecmath.Vec2f
	}{
		{"Add", a.Add(b), vecmath.V2[float32](5, -6)},
		{"AddXY", a.AddXY(1, 1), vecmath.V2[float32](2, 3)},
		{"Sub", a.Sub(b), vecmath.V2[float32](-3, 10)},
		{"SubXY", a.SubXY(1, 2), vecmath.Vec2f{}},
		{"RevSub", a.RevSub(b), vecmath.V2[float32](3, -10)},
		{"RevSubXY", a.RevSubXY(0, 0), vecmath.V2[float32](-1, -2)},
		{"Mul", a.Mul(b), vecmath.V2[float32](4, -16)},
		{"MulXY", a.MulXY(3, 0.5), vecmath.V2[float32](3, 1)},
		{"Div", b.Div(a), vecmath.V2[float32](4, -4)},
		{"DivXY", b.DivXY(2, 4), vecmath.V2[float32](2, -2)},
		{"RevDiv", a.RevDiv(b), vecmath.V2[float32](4, -4)},
		{"RevDivXY", a.RevDivXY(1, 1), vecmath.V2[float32](1, 0.5)},
		{"Fma", a.Fma(a, b), vecmath.V2[float32](5, -14)},
		{"Min", a.Min(b), vecmath.V2[float32](1, -8)},
		{"Max", a.Max(b), vecmath.V2[float32](4, 2)},
		{"Perp", a.Perp(), vecmath.V2[float32](-2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.expected.ApproxEqual(tt.got, 1e-6), "expected %v, got %v", tt.expected, tt.got)
		})
	}
}

func TestVec2InPlace(t *testing.T) {
	v := vecmath.V2(1.0, 2.0)

	v.AddInPlace(vecmath.V2(1.0, 1.0)).MulInPlace(vecmath.V2(2.0, 3.0)).DivInPlace(vecmath.V2(4.0, 9.0))
	assert.Equal(t, vecmath.V2(1.0, 1.0), v)

	var dst vecmath.Vec2d
	assert.Same(t, &dst, v.ScaleTo(3, &dst))
	assert.Equal(t, vecmath.V2(3.0, 3.0), dst)

	v.RevSubInPlace(vecmath.V2(0.0, 5.0))
	assert.Equal(t, vecmath.V2(-1.0, 4.0), v)

	v.RevDivInPlace(vecmath.V2(2.0, 2.0))
	assert.Equal(t, vecmath.V2(-2.0, 0.5), v)

	assert.Same(t, &dst, vecmath.V2(1.0, 2.0).FmaTo(vecmath.V2(3.0, 4.0), vecmath.V2(2.0, 0.5), &dst))
	assert.Equal(t, vecmath.V2(7.0, 4.0), dst)

	dst.FmaScalarInPlace(vecmath.V2(1.0, 1.0), 2)
	assert.Equal(t, vecmath.V2(9.0, 6.0), dst)

	_, err := vecmath.Vec2d{}.NormalizeTo(&dst)
	require.ErrorIs(t, err, vecmath.ErrZeroLength)
	assert.Equal(t, vecmath.V2(9.0, 6.0), dst)

	got, err := vecmath.V2(3.0, -4.0).NormalizeTo(&dst)
	require.NoError(t, err)
	assert.Same(t, &dst, got)
	assert.True(t, dst.ApproxEqual(vecmath.V2(0.6, -0.8), 1e-12))
}

func TestVec2Normalize(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for range 100 {
		v := testutil.Vec2[float64](rng, -10, 10)
		n, err := v.Normalize()
		require.NoError(t, err)
		assert.InDelta(t, 1.0, n.Length(), 1e-12)
		assert.InDelta(t, 1.0, v.NormalizeSafe().Length(), 1e-12)
	}

	var zero vecmath.Vec2f
	_, err := zero.Normalize()
	assert.ErrorIs(t, err, vecmath.ErrZeroLength)
	assert.Equal(t, vecmath.Vec2f{}, zero.NormalizeSafe())
	assert.ErrorIs(t, zero.NormalizeInPlace(), vecmath.ErrZeroLength)
	assert.False(t, zero.NormalizeSafeInPlace())

	t.Run("range limits", func(t *testing.T) {
		big := vecmath.V2(math.MaxFloat64, -math.MaxFloat64)
		n, err := big.Normalize()
		require.NoError(t, err)
		assert.True(t, n.ApproxEqual(vecmath.V2(math.Sqrt2/2, -math.Sqrt2/2), 1e-15))
		assert.True(t, math.IsInf(big.Length(), 1))
		assert.Equal(t, n, big.NormalizeSafe())

		tiny := vecmath.V2[float32](1e-30, 1e-30)
		n32, err := tiny.Normalize()
		require.NoError(t, err)
		assert.True(t, n32.ApproxEqual(vecmath.Splat2[float32](0.70710677), 1e-6))
		assert.InEpsilon(t, float32(1.4142135e-30), tiny.Length(), 1e-6)
		assert.Equal(t, vecmath.Vec2f{}, tiny.NormalizeSafe())
	})
}

func TestVec2Rotation(t *testing.T) {
	x := vecmath.V2(1.0, 0.0)

	assert.True(t, x.Rotate(math.Pi/2).ApproxEqual(vecmath.V2(0.0, 1.0), 1e-12))
	assert.True(t, vecmath.Vec2FromAngle(math.Pi, 2.0).ApproxEqual(vecmath.V2(-2.0, 0.0), 1e-12))
	assert.InDelta(t, math.Pi/2, vecmath.V2(0.0, 3.0).Heading(), 1e-12)

	assert.InDelta(t, math.Pi/2, x.Angle(vecmath.V2(0.0, 1.0)), 1e-12)
	assert.InDelta(t, -math.Pi/2, x.Angle(vecmath.V2(0.0, -1.0)), 1e-12)

	assert.Equal(t, 1.0, x.Cross(vecmath.V2(0.0, 1.0)))
	assert.Equal(t, -1.0, vecmath.V2(0.0, 1.0).Cross(x))

	v := x
	v.RotateInPlace(math.Pi)
	assert.True(t, v.ApproxEqual(vecmath.V2(-1.0, 0.0), 1e-12))

	x32 := vecmath.V2[float32](1, 0)
	assert.True(t, x32.Rotate(math.Pi/2).ApproxEqual(vecmath.V2[float32](0, 1), 1e-6))
	assert.InDelta(t, float32(math.Pi/2), x32.Angle(vecmath.V2[float32](0, 2)), 1e-6)
}

func TestVec2Geometry(t *testing.T) {
	v := vecmath.V2(3.0, -4.0)

	assert.Equal(t, vecmath.V2(3.0, 4.0), v.Reflect(vecmath.V2(0.0, 1.0)))
	assert.Equal(t, 5.0, v.Length())
	assert.Equal(t, 25.0, v.LengthSquared())
	assert.InDelta(t, 0.2, v.InvLength(), 1e-15)

	p, err := v.Project(vecmath.V2(2.0, 0.0))
	require.NoError(t, err)
	assert.Equal(t, vecmath.V2(3.0, 0.0), p)

	_, err = v.Project(vecmath.Vec2d{})
	assert.ErrorIs(t, err, vecmath.ErrZeroLength)

	assert.Equal(t, vecmath.V2(0.0, -4.0), v.ProjectNormalized(vecmath.V2(0.0, 1.0)))
	assert.Equal(t, 5.0, v.Distance(vecmath.Vec2d{}))
	assert.Equal(t, vecmath.V2(1.5, -2.0), v.Lerp(vecmath.Vec2d{}, 0.5))
}

func TestVec2MinMaxComponent(t *testing.T) {
	val, idx := vecmath.V2(2.0, 2.0).MinComponent()
	assert.Equal(t, 2.0, val)
	assert.Equal(t, 0, idx)

	val, idx = vecmath.V2(-1.0, 3.0).MaxComponent()
	assert.Equal(t, 3.0, val)
	assert.Equal(t, 1, idx)
}

func TestVec2Access(t *testing.T) {
	v := vecmath.V2[float32](1, 2)

	assert.Equal(t, 2, v.Dim())
	assert.Equal(t, float32(2), v.At(1))
	assert.Equal(t, vecmath.V3[float32](1, 2, 5), v.Vec3(5))
	assert.Equal(t, [2]float32{1, 2}, v.Array())
	assert.Equal(t, vecmath.Splat2[float32](7), *v.Set(7, 7))
	assert.Equal(t, "(7, 7)", v.String())
	assert.Panics(t, func() { v.At(2) })
	assert.True(t, vecmath.V2[float32](1e-7, 0).IsZero())
}
