package linkage

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

func (p Point) vec() r3.Vec {
	return r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

// Distance returns the Euclidean (L2) distance between a and b.
func Distance(a, b Point) float64 {
	return math.Sqrt(ReducedDistance(a, b))
}

// ReducedDistance returns the squared Euclidean distance between a and b.
// It skips the sqrt and orders pairs the same way Distance does. For
// coordinates below 2^26 in magnitude the result is exact, so equal
// distances compare equal regardless of the order of a and b.
func ReducedDistance(a, b Point) float64 {
	d := r3.Sub(a.vec(), b.vec())
	return r3.Dot(d, d)
}
