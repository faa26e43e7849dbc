// SPDX-License-Identifier: MIT
// Package tabulated_test contains shared fixtures.
//
// Purpose:
//   • Provide the canonical 4-sample table used across storage tests.
//   • Build the same table in every storage so behaviour can be compared side by side.

package tabulated_test

import (
	"testing"

	"github.com/katalvlaran/tabula/tabulated"
	"github.com/stretchr/testify/require"
)

// Tolerance for floating comparisons in tests.
const eps = 1e-9

// Canonical table: y = x² sampled at -3, 0, 4, 6.
var (
	scenarioX = []float64{-3, 0, 4, 6}
	scenarioY = []float64{9, 0, 16, 36}
)

// storage names a constructor so table-driven tests can run against every variant.
type storage struct {
	name string
	make func(t *testing.T, xs, ys []float64) tabulated.TabulatedFunction
}

// storages lists every TabulatedFunction implementation in the package.
func storages() []storage {
	return []storage{
		{"Array", func(t *testing.T, xs, ys []float64) tabulated.TabulatedFunction {
			f, err := tabulated.NewArray(xs, ys)
			require.NoError(t, err)

			return f
		}},
		{"RemovableArray", func(t *testing.T, xs, ys []float64) tabulated.TabulatedFunction {
			f, err := tabulated.NewRemovableArray(xs, ys)
			require.NoError(t, err)

			return f
		}},
		{"LinkedList", func(t *testing.T, xs, ys []float64) tabulated.TabulatedFunction {
			f, err := tabulated.NewLinkedList(xs, ys)
			require.NoError(t, err)

			return f
		}},
	}
}

// MustY reads sample i or fails the test.
func MustY(t *testing.T, f tabulated.TabulatedFunction, i int) float64 {
	t.Helper()
	y, err := f.Y(i)
	require.NoError(t, err)

	return y
}

// MustX reads sample i or fails the test.
func MustX(t *testing.T, f tabulated.TabulatedFunction, i int) float64 {
	t.Helper()
	x, err := f.X(i)
	require.NoError(t, err)

	return x
}

// MustApply evaluates f at x or fails the test.
func MustApply(t *testing.T, f tabulated.TabulatedFunction, x float64) float64 {
	t.Helper()
	y, err := f.Apply(x)
	require.NoError(t, err)

	return y
}

// requireStrictlyIncreasing asserts the x grid invariant.
func requireStrictlyIncreasing(t *testing.T, f tabulated.TabulatedFunction) {
	t.Helper()
	for i := 1; i < f.Count(); i++ {
		require.Less(t, MustX(t, f, i-1), MustX(t, f, i), "x[%d] must exceed x[%d]", i, i-1)
	}
}
