package linkage

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// primMSTWeight computes the total weight of a minimum spanning tree of
// points with dense Prim's algorithm. It is an independent oracle for the
// engine: single-linkage over all pairs links exactly along an MST.
func primMSTWeight(points []Point) float64 {
	n := len(points)
	if n <= 1 {
		return 0
	}

	inTree := make([]bool, n)
	currentDistances := make([]float64, n)
	for j := range currentDistances {
		currentDistances[j] = math.Inf(1)
	}

	// Start from node 0.
	currentNode := 0
	inTree[0] = true
	total := 0.0

	for i := 0; i < n-1; i++ {
		// Update distances for remaining non-tree nodes.
		for k := 0; k < n; k++ {
			if !inTree[k] {
				if d := Distance(points[currentNode], points[k]); d < currentDistances[k] {
					currentDistances[k] = d
				}
			}
		}

		// Find the nearest node not yet in the tree.
		minDist := math.Inf(1)
		minNode := -1
		for j := 0; j < n; j++ {
			if !inTree[j] && currentDistances[j] < minDist {
				minDist = currentDistances[j]
				minNode = j
			}
		}

		inTree[minNode] = true
		currentNode = minNode
		total += minDist
	}
	return total
}

func TestPrimMSTWeight_HandComputed(t *testing.T) {
	// Collinear points 0, 1, 10: MST edges 1 and 9.
	assert.InDelta(t, 10.0, primMSTWeight([]Point{{0, 0, 0}, {1, 0, 0}, {10, 0, 0}}), floatTol)
	assert.Equal(t, 0.0, primMSTWeight(nil))
	assert.Equal(t, 0.0, primMSTWeight([]Point{{1, 1, 1}}))
}

func TestEngine_SpanLengthMatchesMST(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 5; trial++ {
		points := randomDistinctPoints(rng, 40, 1000)
		want := primMSTWeight(points)

		for _, strategy := range strategies {
			e := newTestEngine(t, points, strategy)
			for e.Advance() {
			}
			require.Equal(t, len(points)-1, e.Links())
			assert.InDelta(t, want, e.SpanLength(), 1e-6, "trial %d %s", trial, strategy)
		}
	}
}

func TestEngine_SpanLengthTwoSquares(t *testing.T) {
	e := newTestEngine(t, twoSquares(), StrategyRelabel)
	for e.Advance() {
	}
	// Three unit sides per square plus the 99-long bridge.
	assert.InDelta(t, 105.0, e.SpanLength(), floatTol)
}
