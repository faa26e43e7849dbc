// SPDX-License-Identifier: MIT

package operations

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tabula/function"
	"github.com/katalvlaran/tabula/tabulated"
)

// Differentiator derives a function of type T into another T.
type Differentiator[T function.Function] interface {
	Derive(f T) (T, error)
}

var (
	_ Differentiator[function.Function]           = (*SteppingDifferentiator)(nil)
	_ Differentiator[tabulated.TabulatedFunction] = (*TabulatedDifferentiator)(nil)
)

// Scheme selects the finite difference used by SteppingDifferentiator.
type Scheme int

const (
	// Left is the backward difference (f(x) - f(x-h)) / h.
	Left Scheme = iota
	// Right is the forward difference (f(x+h) - f(x)) / h.
	Right
	// Middle is the central difference (f(x+h) - f(x-h)) / 2h.
	Middle
)

// String returns the scheme name.
func (s Scheme) String() string {
	switch s {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Middle:
		return "Middle"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// SteppingDifferentiator approximates f' with a fixed step h.
type SteppingDifferentiator struct {
	scheme Scheme
	step   float64
}

// NewSteppingDifferentiator validates scheme and step.
//
// Errors:
//   - ErrUnknownScheme for a scheme other than Left, Right, Middle.
//   - ErrInvalidStep unless step is positive and finite.
func NewSteppingDifferentiator(scheme Scheme, step float64) (*SteppingDifferentiator, error) {
	if scheme < Left || scheme > Middle {
		return nil, fmt.Errorf("NewSteppingDifferentiator: %v: %w", scheme, ErrUnknownScheme)
	}
	if !(step > 0) || math.IsInf(step, 1) {
		return nil, fmt.Errorf("NewSteppingDifferentiator: step %g: %w", step, ErrInvalidStep)
	}

	return &SteppingDifferentiator{scheme: scheme, step: step}, nil
}

// Scheme returns the difference scheme.
func (d *SteppingDifferentiator) Scheme() Scheme { return d.scheme }

// Step returns h.
func (d *SteppingDifferentiator) Step() float64 { return d.step }

// Derive returns the numeric derivative of f. Errors of f surface on Apply.
func (d *SteppingDifferentiator) Derive(f function.Function) (function.Function, error) {
	if f == nil {
		return nil, fmt.Errorf("Derive: %w", ErrNilFunction)
	}

	return stepped{f: f, scheme: d.scheme, h: d.step}, nil
}

// stepped evaluates one finite difference of f.
type stepped struct {
	f      function.Function
	scheme Scheme
	h      float64
}

func (s stepped) Apply(x float64) (float64, error) {
	lo, hi, width := x-s.h, x+s.h, 2*s.h
	switch s.scheme {
	case Left:
		hi, width = x, s.h
	case Right:
		lo, width = x, s.h
	}
	fHi, err := s.f.Apply(hi)
	if err != nil {
		return 0, err
	}
	fLo, err := s.f.Apply(lo)
	if err != nil {
		return 0, err
	}

	return (fHi - fLo) / width, nil
}

// TabulatedDifferentiator derives tables by forward differences on their own
// grid and builds the result with its Factory.
// The zero value uses ArrayFactory.
type TabulatedDifferentiator struct {
	factory Factory
}

// NewTabulatedDifferentiator returns a differentiator creating results with f
// (ArrayFactory if nil).
func NewTabulatedDifferentiator(f Factory) *TabulatedDifferentiator {
	return &TabulatedDifferentiator{factory: orDefault(f)}
}

// Factory returns the factory used for results.
func (d *TabulatedDifferentiator) Factory() Factory { return orDefault(d.factory) }

// Derive returns a table on the same x grid whose y[i] is the slope of
// segment [i, i+1]. The last sample repeats the previous slope; a single
// sample gets slope 0.
//
// Complexity: O(n) plus the factory's construction cost.
func (d *TabulatedDifferentiator) Derive(f tabulated.TabulatedFunction) (tabulated.TabulatedFunction, error) {
	if f == nil {
		return nil, fmt.Errorf("Derive: %w", ErrNilFunction)
	}
	pts := tabulated.Collect(f)
	n := len(pts)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range pts {
		xs[i] = pts[i].X
	}
	for i := 0; i < n-1; i++ {
		ys[i] = (pts[i+1].Y - pts[i].Y) / (pts[i+1].X - pts[i].X)
	}
	if n > 1 {
		ys[n-1] = ys[n-2]
	}

	out, err := d.Factory().Create(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("Derive: %w", err)
	}

	return out, nil
}
