package function

// Identity maps x to itself.
var Identity Function = Func(func(x float64) float64 { return x })

// Sqr maps x to x*x.
var Sqr Function = Func(func(x float64) float64 { return x * x })

// Zero is the constant 0.
var Zero = Constant(0)

// Unit is the constant 1.
var Unit = Constant(1)

// ConstantFunction returns the same value for every argument, including NaN and ±Inf.
type ConstantFunction struct {
	value float64
}

// Constant returns a ConstantFunction that always yields c.
func Constant(c float64) ConstantFunction {
	return ConstantFunction{value: c}
}

// Apply implements Function.
func (c ConstantFunction) Apply(float64) (float64, error) {
	return c.value, nil
}

// Value reports the constant.
func (c ConstantFunction) Value() float64 { return c.value }
