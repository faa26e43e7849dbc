// SPDX-License-Identifier: MIT

package operations

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tabula/function"
)

var (
	// ErrNilFunction is returned when an operand is nil. It wraps
	// function.ErrNilFunction.
	ErrNilFunction = fmt.Errorf("operations: %w", function.ErrNilFunction)

	// ErrInconsistent is returned when two tables differ in count or in x at some index.
	ErrInconsistent = errors.New("operations: functions are sampled on different grids")

	// ErrDivisionByZero is returned by Divide when a divisor sample is zero.
	ErrDivisionByZero = errors.New("operations: division by zero")

	// ErrInvalidStep is returned for a step that is not a positive finite number.
	ErrInvalidStep = errors.New("operations: step must be positive and finite")

	// ErrUnknownScheme is returned for a Scheme outside Left, Right, Middle.
	ErrUnknownScheme = errors.New("operations: unknown difference scheme")
)
