// Package solver finds roots and fixed points of function.Function values.
//
// Two iterative methods are provided:
//
//   - Newton: Newton–Raphson root finding with a caller-supplied derivative.
//     A *Newton is itself a function.Function: Apply(x) treats x as the
//     initial guess and returns the root, so solvers compose and chain like
//     any other function.
//
//   - FixedPoint: plain fixed-point iteration x ← φ(x), stopping when two
//     successive iterates agree within the tolerance.
//
// Both take functional options (WithTolerance, WithMaxIterations, WithLogger).
// Invalid settings are all reported at once, joined with go.uber.org/multierr,
// so errors.Is matches every violated sentinel.
//
// Iteration bounds are the only timeout: nothing here blocks, spawns
// goroutines or takes a context.
//
// Example:
//
//	f := function.Func(func(x float64) float64 { return x*x - 2 })
//	df := function.Func(func(x float64) float64 { return 2 * x })
//	n, _ := solver.NewNewton(f, df)
//	root, err := n.Solve(1) // 1.41421356...
//
//	phi := function.Func(func(x float64) float64 { return (x + 2/x) / 2 })
//	fp, err := solver.FixedPoint(phi, 1)
package solver
