// SPDX-License-Identifier: MIT

package operations

import "github.com/katalvlaran/tabula/tabulated"

// Factory creates a tabulated function from coordinate slices.
// Implementations validate and copy like the tabulated constructors.
type Factory interface {
	Create(xs, ys []float64) (tabulated.TabulatedFunction, error)
}

// FactoryFunc adapts an ordinary constructor to Factory.
type FactoryFunc func(xs, ys []float64) (tabulated.TabulatedFunction, error)

// Create implements Factory.
func (f FactoryFunc) Create(xs, ys []float64) (tabulated.TabulatedFunction, error) {
	return f(xs, ys)
}

// ArrayFactory creates *tabulated.Array values.
// Opts are passed to every constructor call.
type ArrayFactory struct {
	Opts []tabulated.Option
}

// Create implements Factory.
func (f ArrayFactory) Create(xs, ys []float64) (tabulated.TabulatedFunction, error) {
	a, err := tabulated.NewArray(xs, ys, f.Opts...)
	if err != nil {
		return nil, err
	}

	return a, nil
}

// LinkedListFactory creates *tabulated.LinkedList values.
type LinkedListFactory struct {
	Opts []tabulated.Option
}

// Create implements Factory.
func (f LinkedListFactory) Create(xs, ys []float64) (tabulated.TabulatedFunction, error) {
	l, err := tabulated.NewLinkedList(xs, ys, f.Opts...)
	if err != nil {
		return nil, err
	}

	return l, nil
}

var (
	_ Factory = ArrayFactory{}
	_ Factory = LinkedListFactory{}
	_ Factory = FactoryFunc(nil)
)

// orDefault returns f, or ArrayFactory when f is nil.
func orDefault(f Factory) Factory {
	if f == nil {
		return ArrayFactory{}
	}

	return f
}
