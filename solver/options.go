// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Defaults.
const (
	// DefaultTolerance is the convergence threshold of both methods.
	DefaultTolerance = 1e-10

	// DefaultNewtonIterations bounds a Newton solve.
	DefaultNewtonIterations = 100

	// DefaultFixedPointSteps bounds a fixed-point iteration.
	DefaultFixedPointSteps = 1000

	// DivergenceFactor is the residual growth tolerated per step in strict mode.
	DivergenceFactor = 1.1
)

// Option configures a solver.
type Option func(*options)

type options struct {
	tolerance     float64
	maxIterations int
	logger        *zap.Logger
}

// WithTolerance sets the convergence threshold. Must be positive and finite.
func WithTolerance(tol float64) Option {
	return func(o *options) { o.tolerance = tol }
}

// WithMaxIterations sets the iteration budget. Must be positive.
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIterations = n }
}

// WithLogger sends a Debug entry per iteration and a Warn on failure to l.
// A nil logger keeps the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// gatherOptions applies opts over the given iteration default and validates
// the result. Every violation is reported.
func gatherOptions(maxIterations int, opts []Option) (options, error) {
	o := options{
		tolerance:     DefaultTolerance,
		maxIterations: maxIterations,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.validate()
}

func (o options) validate() error {
	var err error
	if !(o.tolerance > 0) || math.IsInf(o.tolerance, 1) {
		err = multierr.Append(err, fmt.Errorf("tolerance %g: %w", o.tolerance, ErrInvalidTolerance))
	}
	if o.maxIterations <= 0 {
		err = multierr.Append(err, fmt.Errorf("max iterations %d: %w", o.maxIterations, ErrInvalidIterations))
	}

	return err
}
