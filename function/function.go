package function

import (
	"errors"
	"fmt"
)

// ErrNilFunction indicates that a required Function operand is nil.
var ErrNilFunction = errors.New("function: function is nil")

// Function is a single-argument, real-valued callable.
//
// Apply returns an error instead of panicking when the value cannot be
// produced (an empty table, a solver that did not converge, …).
type Function interface {
	Apply(x float64) (float64, error)
}

// Func adapts an ordinary closure to the Function capability.
// A Func never returns an error.
type Func func(x float64) float64

// Compile-time assertion.
var _ Function = Func(nil)

// Apply implements Function.
func (f Func) Apply(x float64) (float64, error) {
	if f == nil {
		return 0, ErrNilFunction
	}

	return f(x), nil
}

// AndThen returns a Function that applies f and then after to the result.
func (f Func) AndThen(after Function) Function {
	return AndThen(f, after)
}

// chain is the result of AndThen. Nil operands surface on Apply.
type chain struct {
	first, then Function
}

// AndThen returns a Function computing after(f(x)).
// The first error short-circuits the chain.
// Complexity: O(1) plus the cost of both operands.
func AndThen(f, after Function) Function {
	return chain{first: f, then: after}
}

// Apply implements Function.
func (c chain) Apply(x float64) (float64, error) {
	if c.first == nil || c.then == nil {
		return 0, ErrNilFunction
	}
	y, err := c.first.Apply(x)
	if err != nil {
		return 0, err
	}

	return c.then.Apply(y)
}

// Composite is g∘f: Apply(x) = g(f(x)).
//
// It carries no state beyond the two operands, so it behaves exactly like
// AndThen(f, g); the difference is that Compose validates the operands once,
// at construction.
type Composite struct {
	first  Function // applied first
	second Function // applied to the first result
}

var _ Function = (*Composite)(nil)

// Compose builds the composite g∘f.
// Returns ErrNilFunction if either operand is nil.
func Compose(f, g Function) (*Composite, error) {
	if f == nil || g == nil {
		return nil, fmt.Errorf("Compose: %w", ErrNilFunction)
	}

	return &Composite{first: f, second: g}, nil
}

// Apply implements Function.
// A zero Composite (or a nil receiver) returns ErrNilFunction.
func (c *Composite) Apply(x float64) (float64, error) {
	if c == nil || c.first == nil || c.second == nil {
		return 0, fmt.Errorf("Composite.Apply: %w", ErrNilFunction)
	}
	y, err := c.first.Apply(x)
	if err != nil {
		return 0, err
	}

	return c.second.Apply(y)
}

// First returns the inner function f.
func (c *Composite) First() Function { return c.first }

// Second returns the outer function g.
func (c *Composite) Second() Function { return c.second }
