// SPDX-License-Identifier: MIT
// Package tabulated: sentinel error set.
// Every constructor, accessor and mutator in this package returns one of these
// sentinels (possibly wrapped with call-site context via fmt.Errorf("...: %w")).
// Callers match them with errors.Is. Nothing here panics on user input.

package tabulated

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tabula/function"
)

var (
	// ErrLengthMismatch is returned when the x and y sequences differ in length.
	ErrLengthMismatch = errors.New("tabulated: x and y lengths differ")

	// ErrTooFewPoints is returned when a constructor gets fewer samples than the
	// variant requires (2 for arrays, 1 for the linked list).
	ErrTooFewPoints = errors.New("tabulated: too few points")

	// ErrUnsorted is returned when x values are not strictly increasing.
	ErrUnsorted = errors.New("tabulated: x values are not strictly increasing")

	// ErrDegenerateRange is returned when an array variant is asked to sample
	// an empty range (xFrom == xTo). Only LinkedList accepts that collapsed form.
	ErrDegenerateRange = errors.New("tabulated: sampling range is degenerate")

	// ErrNilFunction is returned when a sampling constructor gets a nil source.
	// It wraps function.ErrNilFunction, so either sentinel matches.
	ErrNilFunction = fmt.Errorf("tabulated: source %w", function.ErrNilFunction)

	// ErrNaN is returned when an x argument is NaN: NaN has no place in an
	// ordered grid and brackets no segment.
	ErrNaN = errors.New("tabulated: x is NaN")

	// ErrIndexOutOfRange is returned by indexed accessors for i outside [0, Count()).
	ErrIndexOutOfRange = errors.New("tabulated: index out of range")

	// ErrEmpty is returned when a function with no samples is evaluated or bounded.
	ErrEmpty = errors.New("tabulated: function has no samples")

	// ErrDegenerate is returned when a mutation would leave fewer than two samples.
	ErrDegenerate = errors.New("tabulated: mutation would leave fewer than two points")
)
