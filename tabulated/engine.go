// SPDX-License-Identifier: MIT

// Package tabulated - shared evaluation engine.
//
// Purpose:
//   - Answer Apply(x) once for every storage: exact match, left/right
//     extrapolation, or interior interpolation on the floor segment.
//   - Derive structural equality, hashing, the string form and the forward
//     iterator from the indexed-access contract alone.
//
// Storage types contribute only the primitives declared by segments
// (floorIndexOfX, extrapolateLeft, extrapolateRight, interpolateAt); nothing
// in this file knows whether samples live in arrays or in list nodes.
//
// Complexity quicksheet (n = Count()):
//   - evaluate: O(n) for the array (linear scans), O(n) for the list.
//   - Equal / Hash / Format / Collect: O(n) through Points.

package tabulated

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// evaluate is the Apply algorithm shared by every storage.
//
// Implementation:
//   - Stage 1: reject an empty table with ErrEmpty and a NaN x with ErrNaN.
//   - Stage 2: x left of the domain → extrapolateLeft; right of it → extrapolateRight.
//   - Stage 3: an existing sample within PointTolerance → its y, untouched by arithmetic.
//   - Stage 4: otherwise interpolate on the segment starting at floorIndexOfX(x).
func evaluate(s segments, x float64) (float64, error) {
	if s.Count() == 0 {
		return 0, fmt.Errorf("Apply(%g): %w", x, ErrEmpty)
	}
	if math.IsNaN(x) {
		return 0, fmt.Errorf("Apply: %w", ErrNaN)
	}
	log := s.logger()

	left, _ := s.LeftBound()
	if x < left {
		if ce := log.Check(zap.DebugLevel, "extrapolate left"); ce != nil {
			ce.Write(zap.Float64("x", x), zap.Float64("leftBound", left))
		}

		return s.extrapolateLeft(x), nil
	}
	right, _ := s.RightBound()
	if x > right {
		if ce := log.Check(zap.DebugLevel, "extrapolate right"); ce != nil {
			ce.Write(zap.Float64("x", x), zap.Float64("rightBound", right))
		}

		return s.extrapolateRight(x), nil
	}

	if i := s.IndexOfX(x); i != NotFound {
		if ce := log.Check(zap.DebugLevel, "exact sample"); ce != nil {
			ce.Write(zap.Float64("x", x), zap.Int("index", i))
		}

		return s.Y(i)
	}

	floor := s.floorIndexOfX(x)
	if ce := log.Check(zap.DebugLevel, "interpolate"); ce != nil {
		ce.Write(zap.Float64("x", x), zap.Int("floorIndex", floor))
	}

	return s.interpolateAt(x, floor)
}

// Interpolate evaluates at x the straight line through (leftX, leftY) and
// (rightX, rightY). The same formula extrapolates when x lies outside
// [leftX, rightX].
//
// A degenerate segment (leftX == rightX) has no slope; the mean of leftY and
// rightY is returned instead of dividing by zero.
func Interpolate(x, leftX, rightX, leftY, rightY float64) float64 {
	if leftX == rightX {
		return (leftY + rightY) / 2
	}

	return leftY + (rightY-leftY)*(x-leftX)/(rightX-leftX)
}

// points walks any TabulatedFunction through its indexed accessors.
// The sequence stops early if the table shrinks underneath it.
func points(f TabulatedFunction) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := 0; i < f.Count(); i++ {
			x, err := f.X(i)
			if err != nil {
				return
			}
			y, err := f.Y(i)
			if err != nil {
				return
			}
			if !yield(Point{X: x, Y: y}) {
				return
			}
		}
	}
}

// Collect materializes every sample of f in index order.
func Collect(f TabulatedFunction) []Point {
	out := make([]Point, 0, f.Count())
	for p := range f.Points() {
		out = append(out, p)
	}

	return out
}

// Equal reports whether a and b hold the same samples: equal counts and
// bit-identical x and y at every index. The storage kind is not compared, so
// an Array and a LinkedList with the same table are equal.
//
// Comparison is exact (no PointTolerance) so that Equal agrees with Hash.
func Equal(a, b TabulatedFunction) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Count() != b.Count() {
		return false
	}
	pa, pb := Collect(a), Collect(b)
	for i := range pa {
		if math.Float64bits(pa[i].X) != math.Float64bits(pb[i].X) ||
			math.Float64bits(pa[i].Y) != math.Float64bits(pb[i].Y) {
			return false
		}
	}

	return true
}

// Hash digests the IEEE-754 bit patterns of x0, y0, x1, y1, … in index order.
// Equal tables hash equally.
func Hash(f TabulatedFunction) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for p := range f.Points() {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(p.X))
		_, _ = d.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(p.Y))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// Format renders "<name> size = <n>" followed by one "[x; y]" line per sample.
func Format(name string, f TabulatedFunction) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString(" size = ")
	sb.WriteString(strconv.Itoa(f.Count()))
	for p := range f.Points() {
		sb.WriteString("\n[")
		sb.WriteString(formatFloat(p.X))
		sb.WriteString("; ")
		sb.WriteString(formatFloat(p.Y))
		sb.WriteString("]")
	}

	return sb.String()
}

// ---------- validation shared by constructors ----------

// checkLengths rejects xs/ys of different lengths, then too short tables.
func checkLengths(xs, ys []float64, minPoints int) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("len(xs)=%d len(ys)=%d: %w", len(xs), len(ys), ErrLengthMismatch)
	}
	if len(xs) < minPoints {
		return fmt.Errorf("got %d points, need %d: %w", len(xs), minPoints, ErrTooFewPoints)
	}

	return nil
}

// checkSorted rejects any x[i] <= x[i-1].
func checkSorted(xs []float64) error {
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return fmt.Errorf("x[%d]=%g after x[%d]=%g: %w", i, xs[i], i-1, xs[i-1], ErrUnsorted)
		}
	}

	return nil
}

// checkBounds rejects NaN sampling bounds.
func checkBounds(xFrom, xTo float64) error {
	if math.IsNaN(xFrom) || math.IsNaN(xTo) {
		return fmt.Errorf("[%g, %g]: %w", xFrom, xTo, ErrNaN)
	}

	return nil
}

// checkIndex reports ErrIndexOutOfRange for i outside [0, n).
func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("index %d, count %d: %w", i, n, ErrIndexOutOfRange)
	}

	return nil
}

// withinTolerance is the matching rule of IndexOfX / IndexOfY.
func withinTolerance(a, b float64) bool {
	return math.Abs(a-b) < PointTolerance
}
