// Package testutil provides testing utilities for vecmath.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, goroutine-safe RNG that generates random vectors,
// unit vectors, unit quaternions and flat buffers.
//
// # Random Generation
//
//	rng := testutil.NewRNG(seed)
//	v := testutil.Vec3[float64](rng, -10, 10)   // uniform components
//	n := testutil.UnitVec3[float32](rng)         // uniform on the sphere
//	q := testutil.UnitQuat[float64](rng)         // uniform rotation
//	buf := testutil.Buffer[float32](rng, 1024*3) // flat [-1, 1) buffer
package testutil
