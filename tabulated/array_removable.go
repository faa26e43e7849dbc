// SPDX-License-Identifier: MIT

package tabulated

import (
	"fmt"

	"github.com/katalvlaran/tabula/function"
)

// RemovableArray is an Array that can drop samples, down to MinArrayPoints.
// Removal shifts the tail left and shortens the logical length; the backing
// slices keep their capacity.
type RemovableArray struct {
	Array
}

var (
	_ Removable    = (*RemovableArray)(nil)
	_ fmt.Stringer = (*RemovableArray)(nil)
)

// NewRemovableArray validates and copies like NewArray.
func NewRemovableArray(xs, ys []float64, opts ...Option) (*RemovableArray, error) {
	a, err := newArray(xs, ys, opts)
	if err != nil {
		return nil, fmt.Errorf("NewRemovableArray: %w", err)
	}

	return &RemovableArray{Array: *a}, nil
}

// SampleRemovableArray tabulates f like SampleArray.
func SampleRemovableArray(f function.Function, xFrom, xTo float64, count int, opts ...Option) (*RemovableArray, error) {
	a, err := sampleArray(f, xFrom, xTo, count, opts)
	if err != nil {
		return nil, fmt.Errorf("SampleRemovableArray: %w", err)
	}

	return &RemovableArray{Array: *a}, nil
}

// Remove deletes sample i and keeps the rest in order.
//
// Errors:
//   - ErrIndexOutOfRange for i outside [0, Count()).
//   - ErrDegenerate when only MinArrayPoints samples remain.
//
// Nothing is modified on error. Complexity: O(n-i).
func (r *RemovableArray) Remove(i int) error {
	if err := checkIndex(i, r.n); err != nil {
		return storageErrorf("RemovableArray", ctxRem, i, err)
	}
	if r.n <= MinArrayPoints {
		return storageErrorf("RemovableArray", ctxRem, i, ErrDegenerate)
	}
	copy(r.xs[i:r.n], r.xs[i+1:r.n])
	copy(r.ys[i:r.n], r.ys[i+1:r.n])
	r.n--
	r.xs[r.n], r.ys[r.n] = 0, 0

	return nil
}

// Capacity reports the length of the backing storage, which Remove never shrinks.
func (r *RemovableArray) Capacity() int { return len(r.xs) }

// Clone returns a deep copy sized to the live samples.
func (r *RemovableArray) Clone() *RemovableArray {
	return &RemovableArray{Array: *r.Array.Clone()}
}

// Equal reports structural equality with other (see Equal).
func (r *RemovableArray) Equal(other TabulatedFunction) bool { return Equal(r, other) }

// Hash returns the structural hash (see Hash).
func (r *RemovableArray) Hash() uint64 { return Hash(r) }

// String implements fmt.Stringer.
func (r *RemovableArray) String() string { return Format("RemovableArray", r) }
