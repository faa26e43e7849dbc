// Package operations builds new functions out of existing ones.
//
// The package offers the following key components:
//
//   - Factories: Factory creates a tabulated.TabulatedFunction from raw
//     coordinates. ArrayFactory and LinkedListFactory pick the storage;
//     FactoryFunc adapts any constructor.
//   - Service: point-wise Add, Subtract, Multiply and Divide of two tables
//     sampled on the same x grid. The result storage is chosen by the
//     Service's factory (ArrayFactory by default).
//   - Differentiators:
//     – SteppingDifferentiator: numeric derivative of any function.Function
//     with a fixed step, using the Left, Right or Middle difference scheme.
//     – TabulatedDifferentiator: forward differences over the samples of a
//     table; the last sample repeats the previous slope.
//
// Every operation returns a fresh value; inputs are never modified.
//
// Errors are sentinels from errors.go, wrapped with the operation name.
// Tabulated construction errors from a factory (ErrTooFewPoints, …) are
// passed through unchanged for errors.Is.
package operations
