// Package function defines the Function capability shared by every callable in
// tabula, plus the small combinators built on top of it.
//
// A Function maps one real argument to one real result and may fail:
//
//	type Function interface {
//		Apply(x float64) (float64, error)
//	}
//
// Plain closures become Functions through the Func adaptor. Functions chain with
// AndThen (apply f, then after) or with Compose, which additionally rejects nil
// operands up front.
//
// Elementary functions:
//
//	Identity     x ↦ x
//	Sqr          x ↦ x²
//	Constant(c)  x ↦ c
//	Zero         x ↦ 0
//	Unit         x ↦ 1
//
// Errors:
//
//	ErrNilFunction - a required Function operand is nil.
package function
