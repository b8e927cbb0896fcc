package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/vecmath"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Range returns a pseudo-random number in [minVal, maxVal).
func (r *RNG) Range(minVal, maxVal float64) float64 {
	return minVal + r.Float64()*(maxVal-minVal)
}

// gaussian fills dst with standard normal samples and returns their sum of
// squares. Locks only once per call.
func (r *RNG) gaussian(dst []float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	var norm float64
	for {
		norm = 0
		for i := range dst {
			dst[i] = r.rand.NormFloat64()
			norm += dst[i] * dst[i]
		}
		if norm > 1e-12 {
			return norm
		}
	}
}

// Scalar returns a pseudo-random T in [minVal, maxVal).
func Scalar[T vecmath.Float](r *RNG, minVal, maxVal float64) T {
	return T(r.Range(minVal, maxVal))
}

// Vec2 returns a vector with components uniform in [minVal, maxVal).
func Vec2[T vecmath.Float](r *RNG, minVal, maxVal float64) vecmath.Vec2[T] {
	return vecmath.Vec2[T]{
		X: Scalar[T](r, minVal, maxVal),
		Y: Scalar[T](r, minVal, maxVal),
	}
}

// Vec3 returns a vector with components uniform in [minVal, maxVal).
func Vec3[T vecmath.Float](r *RNG, minVal, maxVal float64) vecmath.Vec3[T] {
	return vecmath.Vec3[T]{
		X: Scalar[T](r, minVal, maxVal),
		Y: Scalar[T](r, minVal, maxVal),
		Z: Scalar[T](r, minVal, maxVal),
	}
}

// Vec4 returns a vector with components uniform in [minVal, maxVal).
func Vec4[T vecmath.Float](r *RNG, minVal, maxVal float64) vecmath.Vec4[T] {
	return vecmath.Vec4[T]{
		X: Scalar[T](r, minVal, maxVal),
		Y: Scalar[T](r, minVal, maxVal),
		Z: Scalar[T](r, minVal, maxVal),
		W: Scalar[T](r, minVal, maxVal),
	}
}

// UnitVec3 returns a vector uniformly distributed on the unit sphere.
// Uses Gaussian sampling for uniform distribution on the sphere.
func UnitVec3[T vecmath.Float](r *RNG) vecmath.Vec3[T] {
	var g [3]float64
	inv := 1 / math.Sqrt(r.gaussian(g[:]))
	return vecmath.Vec3[T]{X: T(g[0] * inv), Y: T(g[1] * inv), Z: T(g[2] * inv)}
}

// UnitQuat returns a uniformly distributed rotation.
func UnitQuat[T vecmath.Float](r *RNG) vecmath.Quat[T] {
	var g [4]float64
	inv := 1 / math.Sqrt(r.gaussian(g[:]))
	return vecmath.Quat[T]{X: T(g[0] * inv), Y: T(g[1] * inv), Z: T(g[2] * inv), W: T(g[3] * inv)}
}

// Vec3s generates num random vectors with components in [minVal, maxVal).
func Vec3s[T vecmath.Float](r *RNG, num int, minVal, maxVal float64) []vecmath.Vec3[T] {
	vs := make([]vecmath.Vec3[T], num)
	for i := range vs {
		vs[i] = Vec3[T](r, minVal, maxVal)
	}
	return vs
}

// Buffer returns a flat buffer of n values in [-1, 1).
func Buffer[T vecmath.Float](r *RNG, n int) []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf := make([]T, n)
	for i := range buf {
		buf[i] = T(r.rand.Float64()*2 - 1)
	}
	return buf
}
