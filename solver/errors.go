// SPDX-License-Identifier: MIT
// Package solver: sentinel error set.
// Errors are wrapped with call-site context (iteration, current x) and should
// be matched with errors.Is.

package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tabula/function"
)

var (
	// ErrNilFunction is returned when the target function or its derivative is nil.
	// It wraps function.ErrNilFunction.
	ErrNilFunction = fmt.Errorf("solver: %w", function.ErrNilFunction)

	// ErrInvalidTolerance is returned for a tolerance that is not a positive finite number.
	ErrInvalidTolerance = errors.New("solver: tolerance must be positive and finite")

	// ErrInvalidIterations is returned for a non-positive iteration bound.
	ErrInvalidIterations = errors.New("solver: max iterations must be positive")

	// ErrFlatDerivative is returned when |f'(x)| drops below the tolerance, so
	// the Newton step cannot be trusted.
	ErrFlatDerivative = errors.New("solver: derivative too close to zero")

	// ErrNotConverged is returned when the iteration budget runs out.
	ErrNotConverged = errors.New("solver: did not converge")

	// ErrDiverged is returned in strict mode when the residual grows by more
	// than DivergenceFactor between consecutive iterations.
	ErrDiverged = errors.New("solver: iteration diverges")
)
