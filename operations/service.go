// SPDX-License-Identifier: MIT

// Package operations - point-wise arithmetic on tabulated functions.
//
// Purpose:
//   - Combine two tables sampled on the same grid sample by sample:
//     out.y[i] = op(a.y[i], b.y[i]), out.x[i] = a.x[i].
//   - Hand the result coordinates to a Factory so callers choose the storage.
//
// Contract:
//   - Grids must agree exactly: same Count and bit-identical x at every index.
//     No tolerance is applied; resample first if grids only nearly match.
//   - Divide rejects any zero divisor sample before building the result.
//
// Complexity: O(n) plus the factory's construction cost.

package operations

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tabula/tabulated"
)

// Method names for error context.
const (
	methodAdd      = "Add"
	methodSubtract = "Subtract"
	methodMultiply = "Multiply"
	methodDivide   = "Divide"
)

// Service performs point-wise arithmetic and builds results with its Factory.
// The zero value uses ArrayFactory.
type Service struct {
	factory Factory
}

// NewService returns a Service creating results with f (ArrayFactory if nil).
func NewService(f Factory) *Service {
	return &Service{factory: orDefault(f)}
}

// Factory returns the factory used for results.
func (s *Service) Factory() Factory { return orDefault(s.factory) }

// Add returns a + b.
func (s *Service) Add(a, b tabulated.TabulatedFunction) (tabulated.TabulatedFunction, error) {
	return s.combine(methodAdd, a, b, func(u, v float64) float64 { return u + v })
}

// Subtract returns a - b.
func (s *Service) Subtract(a, b tabulated.TabulatedFunction) (tabulated.TabulatedFunction, error) {
	return s.combine(methodSubtract, a, b, func(u, v float64) float64 { return u - v })
}

// Multiply returns a · b.
func (s *Service) Multiply(a, b tabulated.TabulatedFunction) (tabulated.TabulatedFunction, error) {
	return s.combine(methodMultiply, a, b, func(u, v float64) float64 { return u * v })
}

// Divide returns a / b. Any zero y in b yields ErrDivisionByZero.
func (s *Service) Divide(a, b tabulated.TabulatedFunction) (tabulated.TabulatedFunction, error) {
	if b != nil {
		i := 0
		for p := range b.Points() {
			if p.Y == 0 {
				return nil, fmt.Errorf("%s: divisor y[%d] at x=%g: %w", methodDivide, i, p.X, ErrDivisionByZero)
			}
			i++
		}
	}

	return s.combine(methodDivide, a, b, func(u, v float64) float64 { return u / v })
}

// combine checks grid consistency, applies op per sample and builds the result.
//
// Implementation:
//   - Stage 1: reject nil operands and differing counts.
//   - Stage 2: walk both tables once; any x mismatch → ErrInconsistent.
//   - Stage 3: pass the new coordinates to the factory.
func (s *Service) combine(method string, a, b tabulated.TabulatedFunction, op func(u, v float64) float64) (tabulated.TabulatedFunction, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilFunction)
	}
	if a.Count() != b.Count() {
		return nil, fmt.Errorf("%s: counts %d and %d: %w", method, a.Count(), b.Count(), ErrInconsistent)
	}

	pa, pb := tabulated.Collect(a), tabulated.Collect(b)
	xs := make([]float64, len(pa))
	ys := make([]float64, len(pa))
	for i := range pa {
		if math.Float64bits(pa[i].X) != math.Float64bits(pb[i].X) {
			return nil, fmt.Errorf("%s: x[%d] is %g and %g: %w", method, i, pa[i].X, pb[i].X, ErrInconsistent)
		}
		xs[i] = pa[i].X
		ys[i] = op(pa[i].Y, pb[i].Y)
	}

	out, err := s.Factory().Create(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return out, nil
}
