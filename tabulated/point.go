package tabulated

import (
	"math"
	"strconv"
)

// Point is one (x, y) sample as seen through an iterator.
// It is a value copy: changing a Point never changes the table it came from.
type Point struct {
	X float64
	Y float64
}

// Equal reports whether p and q agree in both coordinates within PointTolerance.
func (p Point) Equal(q Point) bool {
	return math.Abs(p.X-q.X) < PointTolerance && math.Abs(p.Y-q.Y) < PointTolerance
}

// String renders the point as "(x, y)".
func (p Point) String() string {
	return "(" + formatFloat(p.X) + ", " + formatFloat(p.Y) + ")"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
