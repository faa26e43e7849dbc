// SPDX-License-Identifier: MIT

// Package solver - Newton–Raphson root finding.
//
// Purpose:
//   - Find x with f(x) = 0 from an initial guess, given f and f'.
//   - Act as a function.Function itself (Apply == Solve) so a solver can be
//     composed, tabulated or fed into another solver.
//
// Implementation (per iteration):
//   - Stage 1: fx = f(x), fpx = f'(x); |fpx| < tol → ErrFlatDerivative.
//   - Stage 2: xNew = x - fx/fpx; fxNew = f(xNew).
//   - Stage 3: stop with xNew when |xNew - x| < tol or |fxNew| < tol.
//   - Stage 4 (strict only): |fxNew| > DivergenceFactor·previous → ErrDiverged.
//
// The residual of the previous step lives in a local of one call; a *Newton
// never changes after construction.
//
// Complexity: O(maxIterations) evaluations of f and f'.

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tabula/function"
	"go.uber.org/zap"
)

// Newton is an immutable Newton–Raphson solver.
//
// Build it with NewNewton. A zero Newton has no target and solves to
// ErrNilFunction; unset tolerance, budget and logger fall back to the defaults.
type Newton struct {
	f, df         function.Function
	tolerance     float64
	maxIterations int
	log           *zap.Logger
}

var _ function.Function = (*Newton)(nil)

// NewNewton validates its inputs and returns a solver for f with derivative df.
//
// Errors:
//   - ErrNilFunction if f or df is nil.
//   - ErrInvalidTolerance and/or ErrInvalidIterations for bad options (joined).
func NewNewton(f, df function.Function, opts ...Option) (*Newton, error) {
	if f == nil || df == nil {
		return nil, fmt.Errorf("NewNewton: %w", ErrNilFunction)
	}
	o, err := gatherOptions(DefaultNewtonIterations, opts)
	if err != nil {
		return nil, fmt.Errorf("NewNewton: %w", err)
	}

	return &Newton{
		f:             f,
		df:            df,
		tolerance:     o.tolerance,
		maxIterations: o.maxIterations,
		log:           o.logger,
	}, nil
}

// Apply treats x as the initial guess and returns the root.
func (n *Newton) Apply(x float64) (float64, error) { return n.Solve(x) }

// Solve runs Newton's method from initialGuess.
func (n *Newton) Solve(initialGuess float64) (float64, error) {
	return n.solve(initialGuess, false)
}

// SolveStrict is Solve plus divergence detection: it fails with ErrDiverged
// as soon as |f(x)| grows by more than DivergenceFactor in one step.
func (n *Newton) SolveStrict(initialGuess float64) (float64, error) {
	return n.solve(initialGuess, true)
}

// settings returns the effective tolerance, budget and logger, filling in
// defaults for a Newton that did not come from NewNewton.
func (n *Newton) settings() options {
	o := options{tolerance: n.tolerance, maxIterations: n.maxIterations, logger: n.log}
	if !(o.tolerance > 0) {
		o.tolerance = DefaultTolerance
	}
	if o.maxIterations <= 0 {
		o.maxIterations = DefaultNewtonIterations
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return o
}

func (n *Newton) solve(x float64, strict bool) (float64, error) {
	if n == nil || n.f == nil || n.df == nil {
		return 0, fmt.Errorf("Newton: %w", ErrNilFunction)
	}
	o := n.settings()
	previous := math.Inf(1)

	for i := 0; i < o.maxIterations; i++ {
		fx, err := n.f.Apply(x)
		if err != nil {
			return 0, fmt.Errorf("Newton: f(%g): %w", x, err)
		}
		fpx, err := n.df.Apply(x)
		if err != nil {
			return 0, fmt.Errorf("Newton: f'(%g): %w", x, err)
		}
		if math.Abs(fpx) < o.tolerance {
			o.logger.Warn("flat derivative", zap.Int("iteration", i), zap.Float64("x", x), zap.Float64("df", fpx))

			return 0, fmt.Errorf("Newton: f'(%g)=%g at iteration %d: %w", x, fpx, i, ErrFlatDerivative)
		}

		xNew := x - fx/fpx
		fxNew, err := n.f.Apply(xNew)
		if err != nil {
			return 0, fmt.Errorf("Newton: f(%g): %w", xNew, err)
		}
		if ce := o.logger.Check(zap.DebugLevel, "newton step"); ce != nil {
			ce.Write(zap.Int("iteration", i), zap.Float64("x", xNew), zap.Float64("residual", fxNew))
		}

		if math.Abs(xNew-x) < o.tolerance || math.Abs(fxNew) < o.tolerance {
			return xNew, nil
		}

		if strict {
			residual := math.Abs(fxNew)
			if residual > previous*DivergenceFactor {
				o.logger.Warn("diverging", zap.Int("iteration", i), zap.Float64("residual", residual), zap.Float64("previous", previous))

				return 0, fmt.Errorf("Newton: residual %g after %g at iteration %d: %w", residual, previous, i, ErrDiverged)
			}
			previous = residual
		}

		x = xNew
	}

	o.logger.Warn("not converged", zap.Int("maxIterations", o.maxIterations), zap.Float64("x", x))

	return 0, fmt.Errorf("Newton: %d iterations from last x=%g: %w", o.maxIterations, x, ErrNotConverged)
}

// Function returns the target f.
func (n *Newton) Function() function.Function { return n.f }

// Derivative returns f'.
func (n *Newton) Derivative() function.Function { return n.df }

// Tolerance returns the convergence threshold.
func (n *Newton) Tolerance() float64 { return n.tolerance }

// MaxIterations returns the iteration budget.
func (n *Newton) MaxIterations() int { return n.maxIterations }
