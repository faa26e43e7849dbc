// Package tabulated represents a real function by a finite table of (x, y)
// samples and evaluates it anywhere on the real line.
//
// 🚀 What is a tabulated function?
//
//	An ordered set of samples, unique and strictly increasing by x:
//
//	    x:  -3    0    4    6
//	    y:   9    0   16   36
//
//	Apply(x) answers in four steps:
//	  1. x < LeftBound   → extend the first segment  (extrapolate left)
//	  2. x > RightBound  → extend the last segment   (extrapolate right)
//	  3. x is a sample   → that sample's y, exactly
//	  4. otherwise       → straight line between the two bracketing samples
//
//	With the table above Apply(2) = 8, Apply(-5) = 15 and Apply(10) = 76.
//
// ✨ Storage strategies (one shared algorithm):
//   - Array: two contiguous slices; fixed size; O(1) indexed access.
//   - RemovableArray: Array plus Remove(i), never below two samples.
//   - LinkedList: circular doubly-linked nodes; sorted Insert; reaches an
//     index from whichever end is closer; a single sample is allowed.
//
// All three satisfy TabulatedFunction (and thus function.Function), so they
// can be composed and handed to the solvers.
//
// ⚙️ Usage:
//
//	tf, err := tabulated.NewArray([]float64{-3, 0, 4, 6}, []float64{9, 0, 16, 36})
//	if err != nil {
//		// ErrLengthMismatch, ErrTooFewPoints or ErrUnsorted
//	}
//	y, _ := tf.Apply(2) // 8
//
//	ll, _ := tabulated.SampleLinkedList(function.Sqr, 0, 2, 3)
//	_ = ll.Insert(1.5, 2.25) // ErrNaN for a NaN x
//	for p := range ll.Points() {
//		fmt.Println(p)
//	}
//
// Equality and hashing are exact over the IEEE-754 bits of every sample;
// Point.Equal, IndexOfX and IndexOfY use an absolute PointTolerance of 1e-12.
// The two policies are deliberately separate.
//
// None of the types is safe for concurrent mutation. Iterating while another
// goroutine mutates the same table is undefined behavior; wrap shared tables
// in your own sync.RWMutex.
//
// Evaluation traces are emitted at Debug level to the zap.Logger given via
// WithLogger (a no-op logger by default).
package tabulated
