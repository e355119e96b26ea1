// Package typed attaches compile-time unit tags to vec containers and scalars.
//
// A Typed[V, U] stores only its value; the unit U is a type parameter that
// never reaches the runtime representation. Arithmetic is exposed as generic
// functions whose constraints encode the unit rules:
//
//	pos := typed.New[unit.Meters](vec.FromSlice([]float64{0, 1, 2}))
//	speed := typed.New[unit.MetersPerSecond](vec.FromSlice([]float64{2, 3, 5}))
//	dt := typed.New[unit.Seconds](2.0)
//
//	typed.AddMulScalar(&pos, typed.Mul(&speed, &dt)) // pos = [4 7 12] m
//
// Mul and Div only borrow their operands; the product is evaluated inside the
// accumulating call in a single pass. Passing a product whose unit rule is
// missing, or accumulating it into a value of the wrong unit, does not
// compile:
//
//	typed.AddMulScalar(&pos, typed.Mul(&pos, &dt)) // Meters does not implement Times[Seconds, Meters]
//	typed.Add(&pos, &speed)                       // unit mismatch
package typed
