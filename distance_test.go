package linkage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const floatTol = 1e-10

func TestDistance_IdenticalPoints(t *testing.T) {
	p := Point{1, 2, 3}
	assert.Equal(t, 0.0, Distance(p, p))
	assert.Equal(t, 0.0, ReducedDistance(p, p))
}

func TestDistance_UnitAxes(t *testing.T) {
	a := Point{1, 0, 0}
	b := Point{0, 1, 0}
	// sqrt((1-0)^2 + (0-1)^2 + (0-0)^2) = sqrt(2)
	assert.InDelta(t, math.Sqrt(2), Distance(a, b), floatTol)
}

func TestDistance_HandComputed(t *testing.T) {
	a := Point{1, 2, 3}
	b := Point{4, 6, 3}
	// sqrt(9+16+0) = 5
	assert.InDelta(t, 5.0, Distance(a, b), floatTol)
	assert.Equal(t, 25.0, ReducedDistance(a, b))
}

func TestDistance_NegativeCoordinates(t *testing.T) {
	a := Point{-3, -4, 0}
	b := Point{0, 0, -12}
	// sqrt(9+16+144) = 13
	assert.InDelta(t, 13.0, Distance(a, b), floatTol)
}

func TestDistance_Symmetric(t *testing.T) {
	a := Point{162, 817, 812}
	b := Point{425, 690, 689}
	assert.Equal(t, Distance(a, b), Distance(b, a))
	assert.Equal(t, ReducedDistance(a, b), ReducedDistance(b, a))
}

func TestReducedDistance_ExactForLargeCoordinates(t *testing.T) {
	a := Point{100000, 0, 0}
	b := Point{0, 100000, 100000}
	assert.Equal(t, 3e10, ReducedDistance(a, b))
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "1,-2,3", Point{1, -2, 3}.String())
}
