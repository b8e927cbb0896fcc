// Package vecmath provides small fixed-size vector, quaternion and matrix
// types for Go.
//
// All types are generic over float32 and float64 and come with short
// aliases:
//
//	Vec2f, Vec3f, Vec4f, Quatf, Mat3f, Mat4f  // float32
//	Vec2d, Vec3d, Vec4d, Quatd, Mat3d, Mat4d  // float64
//
// # Result Policies
//
// Every arithmetic operation is offered in up to three shapes:
//
//	w := v.Add(o)        // returns a new value, v is untouched
//	v.AddInPlace(o)      // mutates v
//	v.AddTo(o, &dst)     // writes into a caller-supplied value, returns &dst
//
// Operand shapes are encoded in the method suffix:
//
//	v.Add(o)             // another vector
//	v.AddScalar(s)       // a scalar applied to every component
//	v.AddXYZ(x, y, z)    // explicit components
//
// "Rev" variants swap the operands of non-commutative operations:
// v.RevSub(o) computes o - v and v.RevDiv(o) computes o / v.
//
// # Zero-Length Inputs
//
// Normalize, Inverse and Project return ErrZeroLength when asked to divide
// by a zero-length value. The Safe variants return the zero value instead:
//
//	n, err := v.Normalize()   // err == ErrZeroLength for the zero vector
//	n := v.NormalizeSafe()    // zero vector in, zero vector out
//
// "Zero" means within Tolerance of zero, see Tolerance.
//
// # Read-Only and Mutable Views
//
// Tuple is the read-only capability shared by all vectors and quaternions.
// MutableTuple adds SetAt and is satisfied by pointers to them. Generic
// helpers such as MinComponent and MaxComponent accept any Tuple.
//
// # Batches
//
// The batch sub-package applies the same operations to large slices of
// vectors, optionally in parallel.
//
// # Logging
//
// vecmath is silent by default. Call SetLogger to receive diagnostics from
// the batch package.
package vecmath
