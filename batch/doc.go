// Package batch applies vecmath operations to many vectors at once.
//
// Vectors are stored as flattened component buffers: n vectors of dimension
// dim occupy data[i*dim:(i+1)*dim]. Typed slices such as []vecmath.Vec3f
// can be viewed as flat buffers without copying via Flatten3 and friends.
//
// Large batches are split into chunks and processed concurrently. Use
// WithParallelism and WithParallelThreshold to tune this:
//
//	zeroed, err := batch.NormalizeSafe(ctx, data, 3, batch.WithParallelism(4))
//
// Every call takes a context and stops scheduling chunks once it is
// cancelled. Operations log a summary through vecmath.DefaultLogger unless
// WithLogger supplies another logger.
package batch
