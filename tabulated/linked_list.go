// SPDX-License-Identifier: MIT

// Package tabulated - circular doubly-linked storage.
//
// Purpose:
//   - Keep samples in a circular doubly-linked chain so that sorted insertion
//     is a constant-time splice once the position is known.
//   - Reach any index from the nearer end: forward from head for the first
//     half, backward from the tail (head.prev) for the second.
//
// Representation:
//   - Nodes live in an arena slice and refer to each other by index, so the
//     cycle needs no pointer aliasing. next/prev of a lone node point at itself.
//   - The arena only grows (there is no removal), so len(nodes) == count.
//   - The zero value is an empty list ready for Insert.
//
// Complexity quicksheet:
//   - Insert: O(n) search + O(1) splice; node(i): O(min(i, n-i)).

package tabulated

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/tabula/function"
	"go.uber.org/zap"
)

// node is one arena slot.
type node struct {
	x, y       float64
	next, prev int // arena indices
}

// LinkedList is a tabulated function over a circular doubly-linked list.
type LinkedList struct {
	nodes []node
	head  int // arena index of the smallest x; meaningless when count == 0
	count int
	log   *zap.Logger
}

var (
	_ Insertable   = (*LinkedList)(nil)
	_ segments     = (*LinkedList)(nil)
	_ fmt.Stringer = (*LinkedList)(nil)
)

// NewLinkedList builds a list from two coordinate slices.
//
// Unlike the array variants a single point is enough.
//
// Errors:
//   - ErrLengthMismatch, ErrTooFewPoints (empty input), ErrUnsorted.
//   - ErrNaN for a lone NaN x (longer inputs report NaN as ErrUnsorted).
func NewLinkedList(xs, ys []float64, opts ...Option) (*LinkedList, error) {
	if err := checkLengths(xs, ys, 1); err != nil {
		return nil, fmt.Errorf("NewLinkedList: %w", err)
	}
	if math.IsNaN(xs[0]) {
		return nil, fmt.Errorf("NewLinkedList: %w", ErrNaN)
	}
	if err := checkSorted(xs); err != nil {
		return nil, fmt.Errorf("NewLinkedList: %w", err)
	}
	o := gatherOptions(opts)
	l := &LinkedList{nodes: make([]node, 0, len(xs)), log: o.logger}
	for i := range xs {
		l.pushBack(xs[i], ys[i])
	}

	return l, nil
}

// SampleLinkedList tabulates f at count evenly spaced points of [xFrom, xTo].
//
// Behavior highlights:
//   - Bounds given in descending order are swapped.
//   - xFrom == xTo samples f once and repeats that sample count times; the
//     resulting table evaluates to that value everywhere.
//   - count == 1 on a real range keeps the single sample at xFrom.
//   - Only xFrom == xTo may collapse: a step too small to separate
//     neighbouring samples is ErrDegenerateRange, as for SampleArray.
//
// Errors:
//   - ErrNilFunction, ErrTooFewPoints (count < 1), ErrNaN (NaN bound),
//     ErrDegenerateRange, or the wrapped error of f.
func SampleLinkedList(f function.Function, xFrom, xTo float64, count int, opts ...Option) (*LinkedList, error) {
	if f == nil {
		return nil, fmt.Errorf("SampleLinkedList: %w", ErrNilFunction)
	}
	if count < 1 {
		return nil, fmt.Errorf("SampleLinkedList: count %d: %w", count, ErrTooFewPoints)
	}
	if err := checkBounds(xFrom, xTo); err != nil {
		return nil, fmt.Errorf("SampleLinkedList: %w", err)
	}
	if xFrom > xTo {
		xFrom, xTo = xTo, xFrom
	}
	o := gatherOptions(opts)
	l := &LinkedList{nodes: make([]node, 0, count), log: o.logger}

	if xFrom == xTo || count == 1 {
		y, err := f.Apply(xFrom)
		if err != nil {
			return nil, fmt.Errorf("SampleLinkedList: f(%g): %w", xFrom, err)
		}
		for i := 0; i < count; i++ {
			l.pushBack(xFrom, y)
		}

		return l, nil
	}

	step := (xTo - xFrom) / float64(count-1)
	xs := make([]float64, count)
	for i := range xs {
		xs[i] = xFrom + float64(i)*step
	}
	if err := checkSorted(xs); err != nil {
		return nil, fmt.Errorf("SampleLinkedList: step %g too small: %w", step, ErrDegenerateRange)
	}
	for _, x := range xs {
		y, err := f.Apply(x)
		if err != nil {
			return nil, fmt.Errorf("SampleLinkedList: f(%g): %w", x, err)
		}
		l.pushBack(x, y)
	}

	return l, nil
}

// pushBack appends a sample after the tail without any ordering check.
func (l *LinkedList) pushBack(x, y float64) {
	if l.count == 0 {
		l.nodes = append(l.nodes[:0], node{x: x, y: y})
		l.head = 0
		l.count = 1

		return
	}
	l.linkBefore(l.head, x, y)
}

// linkBefore splices a new node in front of at and returns its arena index.
// Splicing before head appends at the tail; the caller moves head if needed.
func (l *LinkedList) linkBefore(at int, x, y float64) int {
	prev := l.nodes[at].prev
	idx := len(l.nodes)
	l.nodes = append(l.nodes, node{x: x, y: y, next: at, prev: prev})
	l.nodes[prev].next = idx
	l.nodes[at].prev = idx
	l.count++

	return idx
}

// Insert sets y at x. A NaN x is rejected with ErrNaN and leaves the list
// unchanged.
//
// Implementation:
//   - Stage 0: NaN x → ErrNaN.
//   - Stage 1: empty list → x becomes the lone, self-linked node.
//   - Stage 2: a node with exactly this x → overwrite its y; nothing moves.
//   - Stage 3: splice before the first node with a larger x. Smaller than all
//     → the new node becomes head; larger than all → it becomes the tail.
func (l *LinkedList) Insert(x, y float64) error {
	if math.IsNaN(x) {
		return fmt.Errorf("LinkedList.Insert: %w", ErrNaN)
	}
	if l.count == 0 {
		l.pushBack(x, y)

		return nil
	}

	cur := l.head
	for i := 0; i < l.count; i++ {
		if l.nodes[cur].x == x {
			l.nodes[cur].y = y

			return nil
		}
		cur = l.nodes[cur].next
	}

	cur, pos := l.head, 0
	for pos < l.count && l.nodes[cur].x < x {
		cur = l.nodes[cur].next
		pos++
	}
	idx := l.linkBefore(cur, x, y)
	if pos == 0 {
		l.head = idx
	}
	if ce := l.logger().Check(zap.DebugLevel, "insert"); ce != nil {
		ce.Write(zap.Float64("x", x), zap.Int("index", pos), zap.Int("count", l.count))
	}

	return nil
}

// node returns the arena index of sample i, walking from the nearer end.
// i must already be validated.
func (l *LinkedList) node(i int) int {
	if i < l.count/2 {
		cur := l.head
		for k := 0; k < i; k++ {
			cur = l.nodes[cur].next
		}

		return cur
	}
	cur := l.nodes[l.head].prev
	for k := l.count - 1; k > i; k-- {
		cur = l.nodes[cur].prev
	}

	return cur
}

// Apply evaluates the table at x.
func (l *LinkedList) Apply(x float64) (float64, error) { return evaluate(l, x) }

// Count returns the number of samples.
func (l *LinkedList) Count() int { return l.count }

// X returns the argument of sample i.
func (l *LinkedList) X(i int) (float64, error) {
	if err := checkIndex(i, l.count); err != nil {
		return 0, storageErrorf("LinkedList", ctxX, i, err)
	}

	return l.nodes[l.node(i)].x, nil
}

// Y returns the value of sample i.
func (l *LinkedList) Y(i int) (float64, error) {
	if err := checkIndex(i, l.count); err != nil {
		return 0, storageErrorf("LinkedList", ctxY, i, err)
	}

	return l.nodes[l.node(i)].y, nil
}

// SetY overwrites the value of sample i.
func (l *LinkedList) SetY(i int, y float64) error {
	if err := checkIndex(i, l.count); err != nil {
		return storageErrorf("LinkedList", ctxSetY, i, err)
	}
	l.nodes[l.node(i)].y = y

	return nil
}

// IndexOfX walks from head for x within PointTolerance.
func (l *LinkedList) IndexOfX(x float64) int {
	cur := l.head
	for i := 0; i < l.count; i++ {
		if withinTolerance(l.nodes[cur].x, x) {
			return i
		}
		cur = l.nodes[cur].next
	}

	return NotFound
}

// IndexOfY walks from head for the first y within PointTolerance.
func (l *LinkedList) IndexOfY(y float64) int {
	cur := l.head
	for i := 0; i < l.count; i++ {
		if withinTolerance(l.nodes[cur].y, y) {
			return i
		}
		cur = l.nodes[cur].next
	}

	return NotFound
}

// LeftBound returns the head's x.
func (l *LinkedList) LeftBound() (float64, error) {
	if l.count == 0 {
		return 0, ErrEmpty
	}

	return l.nodes[l.head].x, nil
}

// RightBound returns the tail's x.
func (l *LinkedList) RightBound() (float64, error) {
	if l.count == 0 {
		return 0, ErrEmpty
	}

	return l.nodes[l.nodes[l.head].prev].x, nil
}

// Points follows next links from head, one node per step.
func (l *LinkedList) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		cur := l.head
		for i := 0; i < l.count; i++ {
			n := l.nodes[cur]
			if !yield(Point{X: n.x, Y: n.y}) {
				return
			}
			cur = n.next
		}
	}
}

// Clone returns a deep copy whose arena is laid out in index order.
func (l *LinkedList) Clone() *LinkedList {
	c := &LinkedList{nodes: make([]node, 0, l.count), log: l.log}
	for p := range l.Points() {
		c.pushBack(p.X, p.Y)
	}

	return c
}

// Equal reports structural equality with other (see Equal).
func (l *LinkedList) Equal(other TabulatedFunction) bool { return Equal(l, other) }

// Hash returns the structural hash (see Hash).
func (l *LinkedList) Hash() uint64 { return Hash(l) }

// String implements fmt.Stringer.
func (l *LinkedList) String() string { return Format("LinkedList", l) }

func (l *LinkedList) floorIndexOfX(x float64) int {
	if l.count == 0 || x < l.nodes[l.head].x {
		return 0
	}
	cur, i := l.head, 0
	for i < l.count-1 {
		next := l.nodes[cur].next
		if x < l.nodes[next].x {
			return i
		}
		cur = next
		i++
	}

	return l.count - 1
}

func (l *LinkedList) extrapolateLeft(x float64) float64 {
	h := l.nodes[l.head]
	if l.count == 1 {
		return h.y
	}
	s := l.nodes[h.next]

	return Interpolate(x, h.x, s.x, h.y, s.y)
}

func (l *LinkedList) extrapolateRight(x float64) float64 {
	t := l.nodes[l.nodes[l.head].prev]
	if l.count == 1 {
		return t.y
	}
	p := l.nodes[t.prev]

	return Interpolate(x, p.x, t.x, p.y, t.y)
}

func (l *LinkedList) interpolateAt(x float64, floor int) (float64, error) {
	if err := checkIndex(floor, l.count-1); err != nil {
		return 0, storageErrorf("LinkedList", ctxInter, floor, err)
	}
	left := l.nodes[l.node(floor)]
	right := l.nodes[left.next]

	return Interpolate(x, left.x, right.x, left.y, right.y), nil
}

func (l *LinkedList) logger() *zap.Logger { return nopIfNil(l.log) }
