package kernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeSumSquares(t *testing.T) {
	assert.True(t, SafeSumSquares[float32](1))
	assert.True(t, SafeSumSquares[float32](math.MaxFloat32))
	assert.False(t, SafeSumSquares[float32](0))
	assert.False(t, SafeSumSquares[float32](1e-31))
	assert.False(t, SafeSumSquares(float32(math.Inf(1))))
	assert.False(t, SafeSumSquares(float32(math.NaN())))

	assert.True(t, SafeSumSquares(1e-290))
	assert.False(t, SafeSumSquares(1e-295))
	assert.False(t, SafeSumSquares(math.Inf(1)))
}

func TestNorm(t *testing.T) {
	t.Run("float32", func(t *testing.T) {
		assert.Equal(t, float32(5), Norm([]float32{3, 4}))
		assert.Equal(t, float32(0), Norm([]float32{0, 0, 0}))
		assert.InEpsilon(t, float32(1.7320508e20), Norm([]float32{1e20, 1e20, 1e20}), 1e-6)
		assert.Equal(t, float32(1e-23), Norm([]float32{1e-23, 0, 0}))
		assert.Equal(t, float32(math.SmallestNonzeroFloat32), Norm([]float32{0, math.SmallestNonzeroFloat32}))
	})

	t.Run("float64", func(t *testing.T) {
		assert.Equal(t, 1e200, Norm([]float64{1e200, 0, 0}))
		assert.InEpsilon(t, math.Sqrt2*1e200, Norm([]float64{1e200, -1e200}), 1e-15)
		assert.Equal(t, math.SmallestNonzeroFloat64, Norm([]float64{math.SmallestNonzeroFloat64, 0}))
		assert.True(t, math.IsInf(Norm([]float64{math.MaxFloat64, math.MaxFloat64}), 1))
		assert.True(t, math.IsNaN(Norm([]float64{1, math.NaN()})))
	})
}

func TestUnit(t *testing.T) {
	tests := []struct {
		name string
		in   []float32
		want []float32
	}{
		{"moderate", []float32{3, 4}, []float32{0.6, 0.8}},
		{"overflowing squares", []float32{1e20, 1e20, 1e20}, []float32{0.57735026, 0.57735026, 0.57735026}},
		{"near max", []float32{math.MaxFloat32, 0, -math.MaxFloat32}, []float32{0.70710677, 0, -0.70710677}},
		{"underflowing squares", []float32{1e-23, 0, 0}, []float32{1, 0, 0}},
		{"subnormal", []float32{0, -math.SmallestNonzeroFloat32}, []float32{0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := append([]float32(nil), tt.in...)
			assert.True(t, Unit(a, SumSquares(a)))
			assert.InDeltaSlice(t, tt.want, a, 1e-6)
		})
	}

	t.Run("float64 extremes", func(t *testing.T) {
		a := []float64{1e200, 0, 0, 1e200}
		assert.True(t, Unit(a, SumSquares(a)))
		assert.InDeltaSlice(t, []float64{math.Sqrt2 / 2, 0, 0, math.Sqrt2 / 2}, a, 1e-15)

		a = []float64{0, -1e-300, 0}
		assert.True(t, Unit(a, SumSquares(a)))
		assert.Equal(t, []float64{0, -1, 0}, a)
	})

	t.Run("zero", func(t *testing.T) {
		a := []float64{0, 0}
		assert.False(t, Unit(a, 0))
		assert.Equal(t, []float64{0, 0}, a)
	})
}

func TestReciprocalWide(t *testing.T) {
	a := []float32{1e20, 0, 0, 0}
	assert.True(t, ReciprocalWide(a))
	assert.InEpsilon(t, float32(1e-20), a[0], 1e-6)

	b := []float32{0, 2e-23}
	assert.True(t, ReciprocalWide(b))
	assert.InEpsilon(t, float32(5e22), b[1], 1e-6)

	z := []float64{0, 0}
	assert.False(t, ReciprocalWide(z))
}

func TestFusedMulAdd(t *testing.T) {
	// x*y = 2^-24 + 2^-60, so x*y + 1 rounds up to 1 + 2^-23 in float32,
	// while rounding through float64 first lands on the tie 1 + 2^-24.
	x := float32(1 + 0x1p-12)
	y := float32(0x1p-24 * (1 - 0x1p-12 + 0x1p-24))
	want := float32(1 + 0x1p-23)

	assert.Equal(t, want, FusedMulAdd(x, y, 1))
	assert.Equal(t, float32(1), float32(math.FMA(float64(x), float64(y), 1)))

	assert.Equal(t, math.FMA(0.1, 10, -1), FusedMulAdd(0.1, 10.0, -1))
	assert.Equal(t, float32(7), FusedMulAdd[float32](2, 3, 1))

	t.Run("fma kernel", func(t *testing.T) {
		prev := active
		active = FMA
		t.Cleanup(func() { active = prev })

		dst := []float32{1, 1}
		MulAdd(dst, []float32{x, 2}, []float32{y, 3})
		assert.Equal(t, []float32{want, 7}, dst)

		dst = []float32{1}
		Axpy(dst, []float32{y}, x)
		assert.Equal(t, []float32{want}, dst)
	})
}
