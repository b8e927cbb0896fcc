// Package kernel provides flat float32/float64 slice kernels used by the
// batch package.
//
// # Implementations
//
//   - plain: four-way unrolled loops with independent accumulators
//   - fma:   math.FMA accumulation, selected when the CPU has a hardware
//     fused multiply-add (x86-64 FMA3, ARM64)
//
// math.FMA falls back to a slow software path on CPUs without FMA, so the
// fma kernels are only selected when the instruction is available. Set
// VECMATH_KERNEL=plain or VECMATH_KERNEL=fma to override the choice; an
// override naming an unavailable kernel is ignored.
//
// # Safety
//
// Binary kernels assume equal slice lengths. Callers validate lengths.
package kernel
