// Package unit defines the dimensional tags used by package typed.
//
// A unit is a zero-sized struct type implementing Unit. Composition rules are
// ordinary methods on the tag types:
//
//	func (MetersPerSecond) Times(Seconds) Meters
//	func (Meters) Per(Seconds) MetersPerSecond
//
// Generic code asks for a rule through the Times and Per constraints, so an
// undefined combination is a compile error, not a runtime check. Tags carry no
// state; the method bodies only exist to give the compiler a relation to check.
//
// Go has no method overloading, so a tag declares at most one Times and one
// Per rule. Rules are written with the left operand as receiver; B ⊗ A is a
// separate rule on B and is not derived from A ⊗ B.
//
// Users add their own units the same way:
//
//	type Kilograms struct{}
//
//	func (Kilograms) Symbol() string { return "kg" }
package unit
