// SPDX-License-Identifier: MIT

package tabulated

import (
	"iter"

	"github.com/katalvlaran/tabula/function"
	"go.uber.org/zap"
)

// TabulatedFunction is a Function defined by a finite table of samples,
// unique and strictly increasing by x.
//
// Apply interpolates linearly between neighbouring samples and extrapolates
// along the boundary segment outside [LeftBound, RightBound].
//
// Implementations are not safe for concurrent mutation. Iterating with Points
// while another goroutine calls SetY or Insert is undefined behavior.
type TabulatedFunction interface {
	function.Function

	// Count returns the number of samples.
	Count() int

	// X returns the argument of sample i, or ErrIndexOutOfRange.
	X(i int) (float64, error)

	// Y returns the value of sample i, or ErrIndexOutOfRange.
	Y(i int) (float64, error)

	// SetY replaces the value of sample i. The x grid never changes.
	SetY(i int, y float64) error

	// IndexOfX returns the index of the sample whose x is within
	// PointTolerance of x, or NotFound.
	IndexOfX(x float64) int

	// IndexOfY returns the first index whose y is within PointTolerance of y,
	// or NotFound.
	IndexOfY(y float64) int

	// LeftBound returns the smallest x, or ErrEmpty.
	LeftBound() (float64, error)

	// RightBound returns the largest x, or ErrEmpty.
	RightBound() (float64, error)

	// Points returns a lazy forward sequence of samples from index 0 upward.
	// Each call yields a fresh sequence.
	Points() iter.Seq[Point]

	// String renders "<Type> size = <n>" followed by one "[x; y]" line per sample.
	String() string
}

// Insertable is a TabulatedFunction that can grow.
type Insertable interface {
	TabulatedFunction

	// Insert sets y at x: it overwrites the value when x is already sampled,
	// otherwise it adds a sample in x order. A NaN x returns ErrNaN.
	Insert(x, y float64) error
}

// Removable is a TabulatedFunction that can shrink, never below two samples.
type Removable interface {
	TabulatedFunction

	// Remove deletes sample i. Returns ErrIndexOutOfRange or ErrDegenerate.
	Remove(i int) error
}

// segments is the storage-specific half of evaluation. Every storage type in
// this package implements it and hands itself to evaluate.
type segments interface {
	TabulatedFunction

	// floorIndexOfX returns the largest i with x[i] <= x, clamped to
	// [0, Count()-1]: 0 below the first sample, Count()-1 at or past the last.
	floorIndexOfX(x float64) int

	// extrapolateLeft continues the first segment to the left.
	extrapolateLeft(x float64) float64

	// extrapolateRight continues the last segment to the right.
	extrapolateRight(x float64) float64

	// interpolateAt evaluates on segment [floor, floor+1].
	interpolateAt(x float64, floor int) (float64, error)

	// logger returns the trace sink (never nil).
	logger() *zap.Logger
}
