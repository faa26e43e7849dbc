package solver_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/tabula/function"
	"github.com/katalvlaran/tabula/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedPoint_SqrtTwo(t *testing.T) {
	phi := function.Func(func(x float64) float64 { return (x + 2/x) / 2 })
	got, err := solver.FixedPoint(phi, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, got, 1e-9)
}

func TestFixedPoint_Cosine(t *testing.T) {
	// Dottie number: the unique real solution of cos(x) = x.
	got, err := solver.FixedPoint(function.Func(math.Cos), 0, solver.WithTolerance(1e-12))
	require.NoError(t, err)
	assert.InDelta(t, 0.7390851332151607, got, 1e-10)
}

func TestFixedPoint_Errors(t *testing.T) {
	_, err := solver.FixedPoint(nil, 0)
	require.ErrorIs(t, err, solver.ErrNilFunction)

	shift := function.Func(func(x float64) float64 { return x + 1 })
	_, err = solver.FixedPoint(shift, 0, solver.WithMaxIterations(10))
	require.ErrorIs(t, err, solver.ErrNotConverged)

	_, err = solver.FixedPoint(shift, 0, solver.WithMaxIterations(0), solver.WithTolerance(-1))
	require.ErrorIs(t, err, solver.ErrInvalidIterations)
	require.ErrorIs(t, err, solver.ErrInvalidTolerance)

	boom := errors.New("boom")
	failing := function.AndThen(function.Identity, errFunc{boom})
	_, err = solver.FixedPoint(failing, 0)
	require.ErrorIs(t, err, boom)
}

// errFunc always fails with err.
type errFunc struct{ err error }

func (e errFunc) Apply(float64) (float64, error) { return 0, e.err }
