// SPDX-License-Identifier: MIT

// Package tabulated - array-backed storage.
//
// Purpose:
//   - Hold samples in two parallel, contiguous slices (xs[i], ys[i]).
//   - Guarantee safety at the public surface: X/Y/SetY return errors instead of panicking.
//   - Own the data: constructors copy their inputs, Clone copies again.
//
// The logical length n may be shorter than the backing slices; RemovableArray
// shrinks n without reallocating.
//
// Complexity quicksheet:
//   - NewArray / SampleArray: O(n); X/Y/SetY: O(1); IndexOfX/IndexOfY/floorIndexOfX: O(n).

package tabulated

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/tabula/function"
	"go.uber.org/zap"
)

// ---------- error context tags ----------

const (
	ctxX     = "X"
	ctxY     = "Y"
	ctxSetY  = "SetY"
	ctxRem   = "Remove"
	ctxInter = "interpolate"
)

// storageErrorf wraps err with the storage name, method and index.
func storageErrorf(kind, method string, i int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", kind, method, i, err)
}

// Array is a fixed-size tabulated function stored in contiguous slices.
//   - xs, ys hold the samples; only the first n entries are live.
//   - log receives evaluation traces.
type Array struct {
	xs, ys []float64
	n      int
	log    *zap.Logger
}

// Compile-time assertions.
var (
	_ TabulatedFunction = (*Array)(nil)
	_ segments          = (*Array)(nil)
	_ fmt.Stringer      = (*Array)(nil)
)

// NewArray builds an Array from two coordinate slices.
//
// Errors (checked in this order, before anything is stored):
//   - ErrLengthMismatch if len(xs) != len(ys).
//   - ErrTooFewPoints if fewer than MinArrayPoints samples.
//   - ErrUnsorted if any xs[i] <= xs[i-1].
//
// Both slices are copied; later changes by the caller do not leak in.
// Complexity: O(n).
func NewArray(xs, ys []float64, opts ...Option) (*Array, error) {
	a, err := newArray(xs, ys, opts)
	if err != nil {
		return nil, fmt.Errorf("NewArray: %w", err)
	}

	return a, nil
}

func newArray(xs, ys []float64, opts []Option) (*Array, error) {
	if err := checkLengths(xs, ys, MinArrayPoints); err != nil {
		return nil, err
	}
	if err := checkSorted(xs); err != nil {
		return nil, err
	}
	o := gatherOptions(opts)

	return &Array{
		xs:  append([]float64(nil), xs...),
		ys:  append([]float64(nil), ys...),
		n:   len(xs),
		log: o.logger,
	}, nil
}

// SampleArray tabulates f at count evenly spaced points of [xFrom, xTo].
//
// Behavior highlights:
//   - Bounds given in descending order are swapped.
//   - Step is (xTo-xFrom)/(count-1); sample i sits at xFrom + i*step.
//   - An error from f aborts construction and is returned wrapped.
//
// Errors:
//   - ErrNilFunction, ErrTooFewPoints (count < 2), ErrNaN (NaN bound).
//   - ErrDegenerateRange (xFrom == xTo, or a step too small to separate samples).
func SampleArray(f function.Function, xFrom, xTo float64, count int, opts ...Option) (*Array, error) {
	a, err := sampleArray(f, xFrom, xTo, count, opts)
	if err != nil {
		return nil, fmt.Errorf("SampleArray: %w", err)
	}

	return a, nil
}

func sampleArray(f function.Function, xFrom, xTo float64, count int, opts []Option) (*Array, error) {
	if f == nil {
		return nil, ErrNilFunction
	}
	if count < MinArrayPoints {
		return nil, fmt.Errorf("count %d: %w", count, ErrTooFewPoints)
	}
	if err := checkBounds(xFrom, xTo); err != nil {
		return nil, err
	}
	if xFrom > xTo {
		xFrom, xTo = xTo, xFrom
	}
	if xFrom == xTo {
		return nil, fmt.Errorf("[%g, %g]: %w", xFrom, xTo, ErrDegenerateRange)
	}

	xs := make([]float64, count)
	ys := make([]float64, count)
	step := (xTo - xFrom) / float64(count-1)
	for i := range xs {
		xs[i] = xFrom + float64(i)*step
		y, err := f.Apply(xs[i])
		if err != nil {
			return nil, fmt.Errorf("f(%g): %w", xs[i], err)
		}
		ys[i] = y
	}
	// A step below the float spacing of the bounds collapses neighbours.
	if err := checkSorted(xs); err != nil {
		return nil, fmt.Errorf("step %g too small: %w", step, ErrDegenerateRange)
	}
	o := gatherOptions(opts)

	return &Array{xs: xs, ys: ys, n: count, log: o.logger}, nil
}

// Apply evaluates the table at x. See the package documentation for the rules.
func (a *Array) Apply(x float64) (float64, error) { return evaluate(a, x) }

// Count returns the number of live samples.
func (a *Array) Count() int { return a.n }

// X returns xs[i].
func (a *Array) X(i int) (float64, error) {
	if err := checkIndex(i, a.n); err != nil {
		return 0, storageErrorf("Array", ctxX, i, err)
	}

	return a.xs[i], nil
}

// Y returns ys[i].
func (a *Array) Y(i int) (float64, error) {
	if err := checkIndex(i, a.n); err != nil {
		return 0, storageErrorf("Array", ctxY, i, err)
	}

	return a.ys[i], nil
}

// SetY overwrites ys[i].
func (a *Array) SetY(i int, y float64) error {
	if err := checkIndex(i, a.n); err != nil {
		return storageErrorf("Array", ctxSetY, i, err)
	}
	a.ys[i] = y

	return nil
}

// IndexOfX scans for x within PointTolerance.
func (a *Array) IndexOfX(x float64) int {
	for i := 0; i < a.n; i++ {
		if withinTolerance(a.xs[i], x) {
			return i
		}
	}

	return NotFound
}

// IndexOfY scans for the first y within PointTolerance.
func (a *Array) IndexOfY(y float64) int {
	for i := 0; i < a.n; i++ {
		if withinTolerance(a.ys[i], y) {
			return i
		}
	}

	return NotFound
}

// LeftBound returns xs[0].
func (a *Array) LeftBound() (float64, error) {
	if a.n == 0 {
		return 0, ErrEmpty
	}

	return a.xs[0], nil
}

// RightBound returns xs[n-1].
func (a *Array) RightBound() (float64, error) {
	if a.n == 0 {
		return 0, ErrEmpty
	}

	return a.xs[a.n-1], nil
}

// Points yields the live samples in order.
func (a *Array) Points() iter.Seq[Point] { return points(a) }

// Clone returns a deep copy sized to the live samples.
func (a *Array) Clone() *Array {
	return &Array{
		xs:  append([]float64(nil), a.xs[:a.n]...),
		ys:  append([]float64(nil), a.ys[:a.n]...),
		n:   a.n,
		log: a.log,
	}
}

// Equal reports structural equality with other (see Equal).
func (a *Array) Equal(other TabulatedFunction) bool { return Equal(a, other) }

// Hash returns the structural hash (see Hash).
func (a *Array) Hash() uint64 { return Hash(a) }

// String implements fmt.Stringer.
func (a *Array) String() string { return Format("Array", a) }

func (a *Array) floorIndexOfX(x float64) int {
	if a.n == 0 || x < a.xs[0] {
		return 0
	}
	for i := 0; i < a.n-1; i++ {
		if x < a.xs[i+1] {
			return i
		}
	}

	return a.n - 1
}

func (a *Array) extrapolateLeft(x float64) float64 {
	return Interpolate(x, a.xs[0], a.xs[1], a.ys[0], a.ys[1])
}

func (a *Array) extrapolateRight(x float64) float64 {
	l := a.n - 1

	return Interpolate(x, a.xs[l-1], a.xs[l], a.ys[l-1], a.ys[l])
}

func (a *Array) interpolateAt(x float64, floor int) (float64, error) {
	if err := checkIndex(floor, a.n-1); err != nil {
		return 0, storageErrorf("Array", ctxInter, floor, err)
	}

	return Interpolate(x, a.xs[floor], a.xs[floor+1], a.ys[floor], a.ys[floor+1]), nil
}

func (a *Array) logger() *zap.Logger { return nopIfNil(a.log) }
