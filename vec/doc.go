// Package vec provides structure-of-arrays containers for columns of scalars
// (Vec1) and columns of 2-component vectors (Vec2).
//
// All arithmetic is elementwise and in place. Every operator is a closure
// passed to one of the zip combinators, which are the only place that pairs
// indices across containers:
//
//	ZipToValue, ZipToVec1, ZipToVec2, ZipToVec1AndVec1, ZipToVec1AndValue
//	ZipEachTo*  (Vec2 target, one function applied to X then Y)
//	ZipBothTo*  (Vec2 target, X and Y updated together)
//
// # Deferred products
//
// VMul and VDiv borrow two operands and describe a product or quotient that is
// never materialized. Accumulating methods consume them in a single pass:
//
//	pos.AddMulScalar(vel.ScaledBy(dt)) // pos[i] += vel[i] * dt
//	pos.AddMul(vec.NewVMul(&vel, &dt)) // pos[i] += vel[i] * dt[i]
//
// # Shapes
//
// Paired operations require equal lengths. A mismatch is a programming error
// and panics with a *ShapeError. Building with -tags unitvec_nocheck elides
// the check; paired traversals then stop at the shortest operand, which is
// unspecified behavior rather than a supported mode of operation.
//
// Out-of-range reads report absence. Insert past the end is a silent no-op:
// containers grow by exactly one element at a time and never create gaps.
package vec
