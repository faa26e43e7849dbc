// Package tabula is a small in-memory toolkit for working with real functions
// of one variable: tabulate them, evaluate them between and beyond their
// samples, combine them, and find their roots.
//
// What is inside:
//
//	• function/    the Function capability, closures as functions, composition,
//	               and a handful of elementary functions (Identity, Sqr, Constant…)
//	• tabulated/   tabulated functions: an ordered table of (x, y) samples with
//	               piecewise-linear interpolation and extrapolation, backed either
//	               by arrays (Array, RemovableArray) or by a circular doubly-linked
//	               list (LinkedList)
//	• solver/      Newton–Raphson and fixed-point iteration
//	• operations/  factories, point-wise arithmetic over tables, numeric derivatives
//
// Every callable returns (float64, error): nothing in the library panics on bad
// user input. Errors are package-level sentinels matched with errors.Is.
//
// Quick example:
//
//	sq := function.Sqr
//	tf, _ := tabulated.SampleArray(sq, 0, 4, 5) // samples at 0,1,2,3,4
//	y, _ := tf.Apply(2.5)                       // 6.5, linear between (2,4) and (3,9)
//
//	f := function.Func(func(x float64) float64 { return x*x - 2 })
//	df := function.Func(func(x float64) float64 { return 2 * x })
//	n, _ := solver.NewNewton(f, df)
//	root, _ := n.Solve(1) // 1.41421356…
//
// Nothing here is safe for concurrent mutation; guard a shared table with your
// own lock.
//
//	go get github.com/katalvlaran/tabula
package tabula
