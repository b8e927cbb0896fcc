package vecmath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmath"
)

// sliceTuple adapts a slice to vecmath.MutableTuple.
type sliceTuple []float64

func (s sliceTuple) Dim() int               { return len(s) }
func (s sliceTuple) At(i int) float64       { return s[i] }
func (s sliceTuple) SetAt(i int, v float64) { s[i] = v }

func TestTupleMinMax(t *testing.T) {
	tests := []struct {
		name           string
		tuple          vecmath.Tuple[float64]
		minVal, maxVal float64
		minIdx, maxIdx int
	}{
		{"Vec2", vecmath.V2(1.0, -1.0), -1, 1, 1, 0},
		{"Vec3 ties", vecmath.V3(0.0, 0.0, 0.0), 0, 0, 0, 0},
		{"Vec4", vecmath.V4(2.0, 5.0, -3.0, 5.0), -3, 5, 2, 1},
		{"Quat", vecmath.QuatIdent[float64](), 0, 1, 0, 3},
		{"slice", sliceTuple{4, 1, 1, 9, 9}, 1, 9, 1, 3},
		{"empty", sliceTuple{}, 0, 0, -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minVal, minIdx := vecmath.MinComponent(tt.tuple)
			maxVal, maxIdx := vecmath.MaxComponent(tt.tuple)
			assert.Equal(t, tt.minVal, minVal)
			assert.Equal(t, tt.minIdx, minIdx)
			assert.Equal(t, tt.maxVal, maxVal)
			assert.Equal(t, tt.maxIdx, maxIdx)
		})
	}
}

func TestTupleDot(t *testing.T) {
	got, err := vecmath.Dot[float64](vecmath.V3(1.0, 2.0, 3.0), sliceTuple{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 32.0, got)

	_, err = vecmath.Dot[float64](vecmath.V3(1.0, 2.0, 3.0), vecmath.V2(1.0, 2.0))
	var mismatch *vecmath.ErrDimensionMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 3, mismatch.Expected)
	assert.Equal(t, 2, mismatch.Actual)
}

func TestTupleComponent(t *testing.T) {
	v := vecmath.V3(1.0, 2.0, 3.0)

	c, err := vecmath.Component[float64](v, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, c)

	_, err = vecmath.Component[float64](v, 3)
	assert.ErrorIs(t, err, vecmath.ErrIndexOutOfRange)

	require.NoError(t, vecmath.SetComponent[float64](&v, 0, 7))
	assert.Equal(t, 7.0, v.X)

	assert.ErrorIs(t, vecmath.SetComponent[float64](&v, -1, 7), vecmath.ErrIndexOutOfRange)
}

func TestCopyTuple(t *testing.T) {
	var v vecmath.Vec3d
	n := vecmath.CopyTuple[float64](&v, vecmath.V4(1.0, 2.0, 3.0, 4.0))
	assert.Equal(t, 3, n)
	assert.Equal(t, vecmath.V3(1.0, 2.0, 3.0), v)

	assert.Equal(t, vecmath.V3(5.0, 6.0, 0.0), vecmath.Vec3FromTuple[float64](vecmath.V2(5.0, 6.0)))

	dst := sliceTuple{0, 0, 0, 0, 0}
	assert.Equal(t, 4, vecmath.CopyTuple[float64](dst, vecmath.Quatd{X: 1, Y: 2, Z: 3, W: 4}))
	assert.Equal(t, sliceTuple{1, 2, 3, 4, 0}, dst)
}

func TestTolerance(t *testing.T) {
	assert.Equal(t, float32(1e-6), vecmath.Tolerance[float32]())
	assert.Equal(t, 1e-12, vecmath.Tolerance[float64]())

	assert.True(t, vecmath.ApproxEqual(1.0, 1.0+1e-13, 1e-12))
	assert.False(t, vecmath.ApproxEqual(1.0, 1.1, 1e-12))
	assert.Equal(t, float32(3), vecmath.Sqrt[float32](9))
}
