package tabulated_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/tabula/function"
	"github.com/katalvlaran/tabula/tabulated"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLinkedList_Validation(t *testing.T) {
	_, err := tabulated.NewLinkedList([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, tabulated.ErrLengthMismatch)

	_, err = tabulated.NewLinkedList(nil, nil)
	require.ErrorIs(t, err, tabulated.ErrTooFewPoints)

	_, err = tabulated.NewLinkedList([]float64{0, 2, 1}, []float64{0, 0, 0})
	require.ErrorIs(t, err, tabulated.ErrUnsorted)

	one, err := tabulated.NewLinkedList([]float64{3}, []float64{7})
	require.NoError(t, err)
	assert.Equal(t, 1, one.Count())

	_, err = tabulated.NewLinkedList([]float64{math.NaN()}, []float64{7})
	require.ErrorIs(t, err, tabulated.ErrNaN)
}

// TestLinkedList_SinglePoint: one sample is a constant everywhere.
func TestLinkedList_SinglePoint(t *testing.T) {
	l, err := tabulated.NewLinkedList([]float64{3}, []float64{7})
	require.NoError(t, err)
	for _, x := range []float64{-100, 2.9, 3, 3.1, 1e9} {
		assert.Equal(t, 7.0, MustApply(t, l, x), "Apply(%g)", x)
	}
}

func TestLinkedList_Insert(t *testing.T) {
	l, err := tabulated.NewLinkedList(scenarioX, scenarioY)
	require.NoError(t, err)

	require.NoError(t, l.Insert(2, 5))    // interior
	require.NoError(t, l.Insert(-10, 1))  // new head
	require.NoError(t, l.Insert(100, -1)) // new tail
	require.NoError(t, l.Insert(0, 42))   // existing x: overwrite

	want := []tabulated.Point{
		{X: -10, Y: 1}, {X: -3, Y: 9}, {X: 0, Y: 42}, {X: 2, Y: 5},
		{X: 4, Y: 16}, {X: 6, Y: 36}, {X: 100, Y: -1},
	}
	assert.Equal(t, want, tabulated.Collect(l))
	requireStrictlyIncreasing(t, l)

	left, err := l.LeftBound()
	require.NoError(t, err)
	right, err := l.RightBound()
	require.NoError(t, err)
	assert.Equal(t, -10.0, left)
	assert.Equal(t, 100.0, right)
	assert.Equal(t, 5.0, MustApply(t, l, 2))
}

func TestLinkedList_InsertIntoEmpty(t *testing.T) {
	var l tabulated.LinkedList
	require.NoError(t, l.Insert(1, 2))
	require.NoError(t, l.Insert(0, 1))
	require.NoError(t, l.Insert(0.5, 1.5))
	assert.Equal(t, 3, l.Count())
	assert.Equal(t, []tabulated.Point{{X: 0, Y: 1}, {X: 0.5, Y: 1.5}, {X: 1, Y: 2}}, tabulated.Collect(&l))
	assert.InDelta(t, 1.75, MustApply(t, &l, 0.75), eps)
}

// TestLinkedList_InsertNaN leaves the list untouched.
func TestLinkedList_InsertNaN(t *testing.T) {
	l, err := tabulated.NewLinkedList(scenarioX, scenarioY)
	require.NoError(t, err)
	before := tabulated.Collect(l)

	require.ErrorIs(t, l.Insert(math.NaN(), 5), tabulated.ErrNaN)
	assert.Equal(t, before, tabulated.Collect(l))
	left, err := l.LeftBound()
	require.NoError(t, err)
	assert.Equal(t, -3.0, left)

	var empty tabulated.LinkedList
	require.ErrorIs(t, empty.Insert(math.NaN(), 1), tabulated.ErrNaN)
	assert.Equal(t, 0, empty.Count())
}

// TestLinkedList_InsertRandomOrder keeps the x invariant under arbitrary inserts
// and agrees with an Array built from the same sorted table.
func TestLinkedList_InsertRandomOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	var l tabulated.LinkedList
	for _, k := range rng.Perm(64) {
		x := float64(k)
		require.NoError(t, l.Insert(x, x*x))
	}
	require.Equal(t, 64, l.Count())
	requireStrictlyIncreasing(t, &l)

	a, err := tabulated.SampleArray(function.Sqr, 0, 63, 64)
	require.NoError(t, err)
	assert.True(t, tabulated.Equal(a, &l))
	assert.Equal(t, a.Hash(), l.Hash())
	for _, x := range []float64{-1, 0.5, 31.25, 62.9, 70} {
		assert.InDelta(t, MustApply(t, a, x), MustApply(t, &l, x), eps)
	}
}

// TestLinkedList_IndexFromBothEnds reads every index so both walk directions run.
func TestLinkedList_IndexFromBothEnds(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5, 6}
	ys := []float64{10, 11, 12, 13, 14, 15, 16}
	l, err := tabulated.NewLinkedList(xs, ys)
	require.NoError(t, err)
	for i := range xs {
		assert.Equal(t, xs[i], MustX(t, l, i))
		assert.Equal(t, ys[i], MustY(t, l, i))
	}
	require.NoError(t, l.SetY(5, -5))
	assert.Equal(t, -5.0, MustY(t, l, 5))
	assert.Equal(t, 5, l.IndexOfY(-5))
	assert.Equal(t, 6, l.IndexOfX(6))
	assert.Equal(t, tabulated.NotFound, l.IndexOfX(6.5))

	_, err = l.X(7)
	require.ErrorIs(t, err, tabulated.ErrIndexOutOfRange)
	require.ErrorIs(t, l.SetY(-1, 0), tabulated.ErrIndexOutOfRange)
}

func TestSampleLinkedList(t *testing.T) {
	l, err := tabulated.SampleLinkedList(function.Sqr, 2, -2, 5)
	require.NoError(t, err)
	assert.Equal(t, []tabulated.Point{
		{X: -2, Y: 4}, {X: -1, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 4},
	}, tabulated.Collect(l))
}

// TestSampleLinkedList_Degenerate: a collapsed range repeats one sample.
func TestSampleLinkedList_Degenerate(t *testing.T) {
	l, err := tabulated.SampleLinkedList(function.Sqr, 3, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, l.Count())
	for p := range l.Points() {
		assert.Equal(t, tabulated.Point{X: 3, Y: 9}, p)
	}
	for _, x := range []float64{-1, 3, 10} {
		assert.Equal(t, 9.0, MustApply(t, l, x))
	}

	single, err := tabulated.SampleLinkedList(function.Sqr, 1, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, []tabulated.Point{{X: 1, Y: 1}}, tabulated.Collect(single))
}

func TestSampleLinkedList_Errors(t *testing.T) {
	_, err := tabulated.SampleLinkedList(nil, 0, 1, 2)
	require.ErrorIs(t, err, tabulated.ErrNilFunction)

	_, err = tabulated.SampleLinkedList(function.Sqr, 0, 1, 0)
	require.ErrorIs(t, err, tabulated.ErrTooFewPoints)

	_, err = tabulated.SampleLinkedList(function.Sqr, math.NaN(), 1, 3)
	require.ErrorIs(t, err, tabulated.ErrNaN)
}

// TestSampleLinkedList_StepBelowSpacing: samples closer than float spacing
// would collide, so the range counts as degenerate.
func TestSampleLinkedList_StepBelowSpacing(t *testing.T) {
	_, err := tabulated.SampleLinkedList(function.Identity, 1, 1+1e-15, 50)
	require.ErrorIs(t, err, tabulated.ErrDegenerateRange)

	l, err := tabulated.SampleLinkedList(function.Identity, 1, 1+1e-12, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, l.Count())
	requireStrictlyIncreasing(t, l)
}

func TestLinkedList_Clone(t *testing.T) {
	var l tabulated.LinkedList
	for _, x := range []float64{3, 1, 2} {
		require.NoError(t, l.Insert(x, -x))
	}
	c := l.Clone()
	require.True(t, l.Equal(c))

	require.NoError(t, c.Insert(0, 0))
	assert.Equal(t, 3, l.Count())
	assert.Equal(t, 4, c.Count())
	assert.False(t, l.Equal(c))
}
