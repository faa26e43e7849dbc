// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tabula/function"
	"go.uber.org/zap"
)

// FixedPoint iterates x ← phi(x) from start and returns the first iterate
// that differs from its predecessor by less than the tolerance.
//
// Defaults: DefaultTolerance and DefaultFixedPointSteps; override with
// WithTolerance and WithMaxIterations.
//
// Errors:
//   - ErrNilFunction for a nil phi.
//   - ErrInvalidTolerance / ErrInvalidIterations for bad options.
//   - ErrNotConverged once the step budget is spent.
//   - Any error of phi, wrapped.
func FixedPoint(phi function.Function, start float64, opts ...Option) (float64, error) {
	if phi == nil {
		return 0, fmt.Errorf("FixedPoint: %w", ErrNilFunction)
	}
	o, err := gatherOptions(DefaultFixedPointSteps, opts)
	if err != nil {
		return 0, fmt.Errorf("FixedPoint: %w", err)
	}

	x := start
	for i := 0; i < o.maxIterations; i++ {
		next, err := phi.Apply(x)
		if err != nil {
			return 0, fmt.Errorf("FixedPoint: phi(%g): %w", x, err)
		}
		if ce := o.logger.Check(zap.DebugLevel, "fixed point step"); ce != nil {
			ce.Write(zap.Int("iteration", i), zap.Float64("x", next))
		}
		if math.Abs(next-x) < o.tolerance {
			return next, nil
		}
		x = next
	}
	o.logger.Warn("not converged", zap.Int("maxIterations", o.maxIterations), zap.Float64("x", x))

	return 0, fmt.Errorf("FixedPoint: %d steps from %g: %w", o.maxIterations, start, ErrNotConverged)
}
