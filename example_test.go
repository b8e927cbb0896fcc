package vecmath_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/batch"
)

// Example_resultPolicies demonstrates the three ways an operation can
// deliver its result.
func Example_resultPolicies() {
	a := vecmath.V3(1.0, 2.0, 3.0)
	b := vecmath.V3(3.0, 2.0, 1.0)

	// New value, receiver untouched
	sum := a.Add(b)

	// Caller-supplied destination
	var dst vecmath.Vec3d
	a.SubTo(b, &dst)

	// In place, chainable
	a.AddInPlace(b).ScaleInPlace(0.5)

	fmt.Println(sum, dst, a)
	// Output: (4, 4, 4) (-2, 0, 2) (2, 2, 2)
}

// Example_normalize demonstrates strict and safe normalization.
func Example_normalize() {
	var zero vecmath.Vec3f

	if _, err := zero.Normalize(); errors.Is(err, vecmath.ErrZeroLength) {
		fmt.Println("strict:", err)
	}
	fmt.Println("safe:", zero.NormalizeSafe())

	n, err := vecmath.V3[float32](0, 3, 4).Normalize()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(n)
	// Output:
	// strict: zero-length vector
	// safe: (0, 0, 0)
	// (0, 0.6, 0.8)
}

// Example_quaternion rotates a vector a quarter turn around Z.
func Example_quaternion() {
	q := vecmath.QuatAxisAngle(vecmath.V3(0.0, 0.0, 1.0), math.Pi/2)
	v := q.Rotate(vecmath.V3(1.0, 0.0, 0.0))

	fmt.Println(v.ApproxEqual(vecmath.V3(0.0, 1.0, 0.0), 1e-12))
	// Output: true
}

// Example_batch normalizes a flat buffer of 2D vectors.
func Example_batch() {
	data := []float64{0, 5, 0, 0, -2, 0}

	zeroed, err := batch.NormalizeSafe(context.Background(), data, 2)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(data, zeroed)
	// Output: [0 1 0 0 -1 0] 1
}
