package linkage

import "fmt"

// Point is an integer coordinate in 3-D space. Points compare by value, so
// two input entries with identical coordinates are the same point to the
// engine and share a single cluster-membership entry.
type Point struct {
	X, Y, Z int
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}
