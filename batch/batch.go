package batch

import (
	"context"
	"sync/atomic"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/internal/kernel"
)

// Dot returns the dot product of every pair of vectors in a and b.
// Both buffers hold vectors of dimension dim.
func Dot[T vecmath.Float](ctx context.Context, a, b []T, dim int, opts ...Option) ([]T, error) {
	o := applyOptions(opts)
	n, err := validatePair(dim, len(a), len(b))
	if err != nil {
		return nil, err
	}

	out := make([]T, n)
	workers, err := parallelFor(ctx, n, o, func(lo, hi int) {
		kernel.DotStrided(a[lo*dim:hi*dim], b[lo*dim:hi*dim], dim, out[lo:hi])
	})
	o.logger.WithOp("dot").WithDimension(dim).LogBatch(ctx, n, 0, workers, kernel.Active().String(), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LengthsSquared returns the squared Euclidean length of every vector in
// data.
func LengthsSquared[T vecmath.Float](ctx context.Context, data []T, dim int, opts ...Option) ([]T, error) {
	o := applyOptions(opts)
	n, err := validate(dim, len(data))
	if err != nil {
		return nil, err
	}

	out := make([]T, n)
	workers, err := parallelFor(ctx, n, o, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = kernel.SumSquares(data[i*dim : (i+1)*dim])
		}
	})
	o.logger.WithOp("lengths_squared").WithDimension(dim).LogBatch(ctx, n, 0, workers, kernel.Active().String(), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Lengths returns the Euclidean length of every vector in data. Unlike
// the square root of LengthsSquared, it does not overflow or underflow for
// finite vectors whose length is representable.
func Lengths[T vecmath.Float](ctx context.Context, data []T, dim int, opts ...Option) ([]T, error) {
	o := applyOptions(opts)
	n, err := validate(dim, len(data))
	if err != nil {
		return nil, err
	}

	out := make([]T, n)
	workers, err := parallelFor(ctx, n, o, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = kernel.Norm(data[i*dim : (i+1)*dim])
		}
	})
	o.logger.WithOp("lengths").WithDimension(dim).LogBatch(ctx, n, 0, workers, kernel.Active().String(), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Normalize scales every vector in data to unit length.
//
// If any vector has zero length, Normalize returns a *ZeroLengthError for
// the first such vector and leaves data untouched. Cancellation is only
// observed before scaling starts, so a returned context error also means
// data is untouched.
func Normalize[T vecmath.Float](ctx context.Context, data []T, dim int, opts ...Option) error {
	o := applyOptions(opts)
	log := o.logger.WithOp("normalize").WithDimension(dim)

	n, err := validate(dim, len(data))
	if err != nil {
		return err
	}

	sumSquares := make([]T, n)
	workers, err := parallelFor(ctx, n, o, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			sumSquares[i] = kernel.SumSquares(data[i*dim : (i+1)*dim])
		}
	})
	if err != nil {
		log.LogBatch(ctx, n, 0, workers, kernel.Active().String(), err)
		return err
	}
	for i, ss := range sumSquares {
		// ss underflows to zero for tiny non-zero vectors
		if ss == 0 && kernel.Norm(data[i*dim:(i+1)*dim]) == 0 {
			err = &ZeroLengthError{Index: i}
			log.LogBatch(ctx, n, 0, workers, kernel.Active().String(), err)
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		log.LogBatch(ctx, n, 0, workers, kernel.Active().String(), err)
		return err
	}

	workers, err = parallelFor(context.WithoutCancel(ctx), n, o, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			kernel.Unit(data[i*dim:(i+1)*dim], sumSquares[i])
		}
	})
	log.LogBatch(ctx, n, 0, workers, kernel.Active().String(), err)
	return err
}

// NormalizeSafe scales every vector in data to unit length and zeroes the
// vectors within vecmath.Tolerance of zero. It returns the number of zeroed
// vectors.
func NormalizeSafe[T vecmath.Float](ctx context.Context, data []T, dim int, opts ...Option) (int, error) {
	o := applyOptions(opts)
	n, err := validate(dim, len(data))
	if err != nil {
		return 0, err
	}

	tol := vecmath.Tolerance[T]()
	var zeroed atomic.Int64
	workers, err := parallelFor(ctx, n, o, func(lo, hi int) {
		var z int64
		for i := lo; i < hi; i++ {
			v := data[i*dim : (i+1)*dim]
			ss := kernel.SumSquares(v)
			if ss <= tol*tol {
				clear(v)
				z++
				continue
			}
			kernel.Unit(v, ss)
		}
		zeroed.Add(z)
	})
	o.logger.WithOp("normalize_safe").WithDimension(dim).LogBatch(ctx, n, int(zeroed.Load()), workers, kernel.Active().String(), err)
	return int(zeroed.Load()), err
}

// Scale multiplies every component in data by s.
func Scale[T vecmath.Float](ctx context.Context, data []T, s T, opts ...Option) error {
	o := applyOptions(opts)
	workers, err := parallelFor(ctx, len(data), o, func(lo, hi int) {
		kernel.ScaleInPlace(data[lo:hi], s)
	})
	o.logger.WithOp("scale").LogBatch(ctx, len(data), 0, workers, kernel.Active().String(), err)
	return err
}

// Add computes dst = a + b componentwise. dst may alias a or b.
func Add[T vecmath.Float](ctx context.Context, dst, a, b []T, opts ...Option) error {
	return elementwise(ctx, "add", dst, a, b, kernel.Add[T], opts)
}

// Sub computes dst = a - b componentwise. dst may alias a or b.
func Sub[T vecmath.Float](ctx context.Context, dst, a, b []T, opts ...Option) error {
	return elementwise(ctx, "sub", dst, a, b, kernel.Sub[T], opts)
}

// Fma computes dst += a * b componentwise. When the CPU has a hardware
// fused multiply-add each element is rounded once.
func Fma[T vecmath.Float](ctx context.Context, dst, a, b []T, opts ...Option) error {
	return elementwise(ctx, "fma", dst, a, b, kernel.MulAdd[T], opts)
}

// Axpy computes dst += s * x componentwise.
func Axpy[T vecmath.Float](ctx context.Context, dst, x []T, s T, opts ...Option) error {
	o := applyOptions(opts)
	if len(dst) != len(x) {
		return vecmath.NewDimensionMismatch(len(dst), len(x), nil)
	}
	workers, err := parallelFor(ctx, len(dst), o, func(lo, hi int) {
		kernel.Axpy(dst[lo:hi], x[lo:hi], s)
	})
	o.logger.WithOp("axpy").LogBatch(ctx, len(dst), 0, workers, kernel.Active().String(), err)
	return err
}

func elementwise[T vecmath.Float](ctx context.Context, op string, dst, a, b []T, fn func(dst, a, b []T), opts []Option) error {
	o := applyOptions(opts)
	if len(a) != len(b) {
		return vecmath.NewDimensionMismatch(len(a), len(b), nil)
	}
	if len(dst) != len(a) {
		return vecmath.NewDimensionMismatch(len(a), len(dst), nil)
	}
	workers, err := parallelFor(ctx, len(dst), o, func(lo, hi int) {
		fn(dst[lo:hi], a[lo:hi], b[lo:hi])
	})
	o.logger.WithOp(op).LogBatch(ctx, len(dst), 0, workers, kernel.Active().String(), err)
	return err
}
