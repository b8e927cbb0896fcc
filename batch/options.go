package batch

import (
	"runtime"

	"github.com/hupe1980/vecmath"
)

// DefaultParallelThreshold is the number of vectors below which batches run
// on the calling goroutine.
const DefaultParallelThreshold = 4096

type options struct {
	parallelism int
	threshold   int
	chunkSize   int
	logger      *vecmath.Logger
}

// Option configures a batch operation.
type Option func(*options)

func applyOptions(opts []Option) *options {
	o := &options{
		parallelism: runtime.GOMAXPROCS(0),
		threshold:   DefaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = vecmath.DefaultLogger()
	}
	return o
}

// WithParallelism limits the number of goroutines working on one batch.
// Values <= 1 run the batch on the calling goroutine.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithParallelThreshold sets the minimum number of vectors for which work
// is fanned out. Defaults to DefaultParallelThreshold.
func WithParallelThreshold(n int) Option {
	return func(o *options) {
		o.threshold = n
	}
}

// WithChunkSize sets the number of vectors handed to a goroutine at a
// time. By default each worker receives about four chunks.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithLogger overrides the logger for a single call.
//
// If nil is passed, vecmath.DefaultLogger is used.
func WithLogger(l *vecmath.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// workers returns the number of goroutines to use for n vectors.
func (o *options) workers(n int) int {
	if o.parallelism <= 1 || n < o.threshold || n < 2 {
		return 1
	}
	return min(o.parallelism, n)
}

// chunk returns the number of vectors per task for n vectors and w
// workers.
func (o *options) chunk(n, w int) int {
	if o.chunkSize > 0 {
		return o.chunkSize
	}
	return max(1, (n+4*w-1)/(4*w))
}
